package layout

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/termtext"
	"github.com/npillmayer/termtext/style"
	"github.com/npillmayer/termtext/styled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgbBg(t *testing.T, r, g, b int) style.Style {
	a, err := style.BgRGB(r, g, b)
	require.NoError(t, err)
	return style.New(a)
}

func centered(t *testing.T, text string, bg style.Style) *Layout {
	return buildBlock(t, NewBlock(styled.TextFromString(text)).
		Align(Center).
		LeftIndentWidth(1).
		RightIndentWidth(1).
		Style(bg))
}

// oneTwoThree creates three blocks of one, two and three lines.
func oneTwoThree(t *testing.T) (*Layout, *Layout, *Layout) {
	one := centered(t, "one line", rgbBg(t, 245, 245, 255))
	two := centered(t, "two\nlines", rgbBg(t, 245, 255, 245))
	three := centered(t, "and\nthree\nlines", rgbBg(t, 255, 245, 245))
	require.Equal(t, " one line ", one.Content())
	require.Equal(t, rows("  two  ", " lines "), two.Content())
	require.Equal(t, rows("  and  ", " three ", " lines "), three.Content())
	return one, two, three
}

func TestHorizontal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	one, two, three := oneTwoThree(t)
	top := Horizontal(Top, one, two, three)
	assert.Equal(t, rows(
		" one line   two    and  ",
		"           lines  three ",
		"                  lines ",
	), top.Content())
	middle := Horizontal(Middle, one, two, three)
	assert.Equal(t, rows(
		"            two    and  ",
		" one line  lines  three ",
		"                  lines ",
	), middle.Content())
	bottom := Horizontal(Bottom, one, two, three)
	assert.Equal(t, rows(
		"                   and  ",
		"            two   three ",
		" one line  lines  lines ",
	), bottom.Content())
	for _, l := range []*Layout{top, middle, bottom} {
		assert.Equal(t, 3, l.Height())
		assert.Equal(t, 24, l.Width())
	}
	// padding below a block does not carry the style of the block
	assert.Equal(t, []style.Style{
		rgbBg(t, 245, 245, 255), rgbBg(t, 245, 255, 245), rgbBg(t, 255, 245, 245),
	}, top.LineAt(0).SpanStylesOpen())
	assert.Equal(t, []style.Style{
		style.Empty(), rgbBg(t, 245, 255, 245), rgbBg(t, 255, 245, 245),
	}, top.LineAt(1).SpanStylesOpen())
}

func TestVertical(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	one, two, three := oneTwoThree(t)
	left := Vertical(Left, one, two, three)
	assert.Equal(t, rows(
		" one line ",
		"  two     ",
		" lines    ",
		"  and     ",
		" three    ",
		" lines    ",
	), left.Content())
	center := Vertical(Center, one, two, three)
	assert.Equal(t, rows(
		" one line ",
		"   two    ",
		"  lines   ",
		"   and    ",
		"  three   ",
		"  lines   ",
	), center.Content())
	right := Vertical(Right, one, two, three)
	assert.Equal(t, rows(
		" one line ",
		"     two  ",
		"    lines ",
		"     and  ",
		"    three ",
		"    lines ",
	), right.Content())
	for _, l := range []*Layout{left, center, right} {
		assert.Equal(t, 6, l.Height())
		assert.Equal(t, 10, l.Width())
	}
}

func TestNestedGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	one, two, three := oneTwoThree(t)
	topCenter := Horizontal(Top, Vertical(Center, one, two), three)
	assert.Equal(t, rows(
		" one line   and  ",
		"   two     three ",
		"  lines    lines ",
	), topCenter.Content())
	topRight := Horizontal(Top, Vertical(Right, one, two), three)
	assert.Equal(t, rows(
		" one line   and  ",
		"     two   three ",
		"    lines  lines ",
	), topRight.Content())
	for _, l := range []*Layout{topCenter, topRight} {
		assert.Equal(t, 3, l.Height())
		assert.Equal(t, 17, l.Width())
	}
	centerTop := Vertical(Center, one, Horizontal(Top, two, three))
	assert.Equal(t, rows(
		"   one line   ",
		"  two    and  ",
		" lines  three ",
		"        lines ",
	), centerTop.Content())
	rightBottom := Vertical(Right, one, Horizontal(Bottom, two, three))
	assert.Equal(t, rows(
		"     one line ",
		"         and  ",
		"  two   three ",
		" lines  lines ",
	), rightBottom.Content())
	for _, l := range []*Layout{centerTop, rightBottom} {
		assert.Equal(t, 4, l.Height())
		assert.Equal(t, 14, l.Width())
	}
}

func TestReusedLayoutsCascadeFromNewParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	x := buildBlock(t, NewBlock(styled.TextFromString("x")))
	blue := style.New(style.Fg(style.Blue))
	g, err := NewHorizontal(Top).Style(blue).Append(FromLayout(x), FromLayout(x)).Build()
	require.NoError(t, err)
	assert.Equal(t, "xx", g.Content())
	assert.Equal(t, []style.Style{blue}, g.LineAt(0).SpanStylesOpen())
	assert.Equal(t, []style.Style{style.Empty()}, x.LineAt(0).SpanStylesOpen())
}

func TestFramedGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	text := styled.TextFromString
	l, err := NewVertical(Left).Border(ASCII).Append(NewBlock(text("one line"))).Build()
	require.NoError(t, err)
	assert.Equal(t, rows(
		"+--------+",
		"|one line|",
		"+--------+",
	), l.Content())
	l, err = NewHorizontal(Top).Border(ASCII).Append(
		NewBlock(text("ab")), NewBlock(text("c\nd"))).Build()
	require.NoError(t, err)
	assert.Equal(t, rows(
		"+----+",
		"|ab|c|",
		"|  |d|",
		"+----+",
	), l.Content())
	l, err = NewHorizontal(Top).Border(Square).Append(
		NewBlock(text("ab")), NewBlock(text("c\nd"))).Build()
	require.NoError(t, err)
	assert.Equal(t, rows(
		"┌──┬─┐",
		"│ab│c│",
		"│  │d│",
		"└──┴─┘",
	), l.Content())
	assert.Equal(t, 4, l.Height())
	assert.Equal(t, 6, l.Width())
	l, err = NewVertical(Left).Border(Square).Append(
		NewBlock(text("ab")), NewBlock(text("c"))).Build()
	require.NoError(t, err)
	assert.Equal(t, rows(
		"┌──┐",
		"│ab│",
		"├──┤",
		"│c │",
		"└──┘",
	), l.Content())
}

func TestInheritedBorderDrawsGridOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	text := styled.TextFromString
	inner := NewHorizontal(Top).Append(NewBlock(text("a")), NewBlock(text("b")))
	l, err := NewVertical(Left).Border(Square).Append(inner, NewBlock(text("c"))).Build()
	require.NoError(t, err)
	assert.Equal(t, rows(
		"┌─┬─┐",
		"│a│b│",
		"├─┴─┤",
		"│c  │",
		"└───┘",
	), l.Content())
	// a nested group may switch borders off again
	inner = NewHorizontal(Top).Border(NoBorder).Append(NewBlock(text("a")), NewBlock(text("b")))
	l, err = NewVertical(Left).Border(ASCII).Append(inner).Build()
	require.NoError(t, err)
	assert.Equal(t, rows("+--+", "|ab|", "+--+"), l.Content())
}

func TestNestedGridLinesJoinFrame(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	text := styled.TextFromString
	l, err := NewVertical(Left).Border(Square).Append(
		NewBlock(text("aaaa")),
		NewHorizontal(Top).Append(NewBlock(text("bb")), NewBlock(text("c"))),
		NewHorizontal(Top).Append(NewBlock(text("dd")), NewBlock(text("e"))),
	).Build()
	require.NoError(t, err)
	assert.Equal(t, rows(
		"┌────┐",
		"│aaaa│",
		"├──┬─┤",
		"│bb│c│",
		"├──┼─┤",
		"│dd│e│",
		"└──┴─┘",
	), l.Content())
	// horizontal grid lines of a nested vertical group meet vertical bars
	l, err = NewHorizontal(Top).Border(Square).Append(
		NewVertical(Left).Append(NewBlock(text("a")), NewBlock(text("b"))),
		NewBlock(text("c")),
	).Build()
	require.NoError(t, err)
	assert.Equal(t, rows(
		"┌─┬─┐",
		"│a│c│",
		"├─┤ │",
		"│b│ │",
		"└─┴─┘",
	), l.Content())
	// padding keeps a grid line away from the frame
	l, err = NewVertical(Left).Border(Square).Append(
		NewVertical(Left).Append(NewBlock(text("a")), NewBlock(text("b"))),
		NewBlock(text("ccc")),
	).Build()
	require.NoError(t, err)
	assert.Equal(t, rows(
		"┌───┐",
		"│a  │",
		"├─  │",
		"│b  │",
		"├───┤",
		"│ccc│",
		"└───┘",
	), l.Content())
}

func TestFrameStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	blue := style.New(style.Fg(style.Blue))
	bold := style.New(style.ApplyBold)
	l, err := NewHorizontal(Top).Style(blue).Border(ASCII).Append(
		NewBlock(styled.TextFromString("x")).Style(bold)).Build()
	require.NoError(t, err)
	assert.Equal(t, rows(
		"\x1b[34m+-+\x1b[39m",
		"\x1b[34m|\x1b[1mx\x1b[22m|\x1b[39m",
		"\x1b[34m+-+\x1b[39m",
	), l.RenderANSI(termtext.DefaultContext()))
	ctx := termtext.RenderContext{LinePrefixResetAll: true}
	assert.Equal(t, "\x1b[0m\x1b[34m+-+\x1b[39m", l.LineAt(0).RenderANSI(ctx))
}

func TestPadding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	text := styled.TextFromString
	l, err := NewVertical(Right).Padding('.').Append(
		NewBlock(text("abc")), NewBlock(text("d")), NewBlock(text("e")).Padding('_')).Build()
	require.NoError(t, err)
	assert.Equal(t, rows("abc", "..d", "..e"), l.Content())
	l, err = NewVertical(Left).Padding('.').Append(
		NewBlock(text("e")).ContentWidth(3).Padding('_'), NewBlock(text("f")).ContentWidth(2)).Build()
	require.NoError(t, err)
	assert.Equal(t, rows("e__", "f.."), l.Content())
}

func TestEmptyGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	l, err := NewHorizontal(Top).Build()
	require.NoError(t, err)
	assert.True(t, l.IsEmpty())
	assert.Same(t, Empty(), l)
	assert.Equal(t, "", l.Content())
	assert.Empty(t, l.Lines())
	l, err = NewVertical(Left).Border(Square).Append(NewBlock(nil), NewHorizontal(Top)).Build()
	require.NoError(t, err)
	assert.True(t, l.IsEmpty())
	assert.True(t, l.LineAt(0).IsEmpty())
}

func TestGroupIsSingleUse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	child := NewBlock(styled.TextFromString("x"))
	_, err := NewVertical(Left).Append(child).Build()
	require.NoError(t, err)
	_, err = NewVertical(Left).Append(child).Build()
	assert.True(t, errors.Is(err, termtext.ErrAlreadyBuilt))
	g := NewHorizontal(Top).Append(NewBlock(styled.TextFromString("y")))
	_, err = g.Build()
	require.NoError(t, err)
	_, err = g.Build()
	assert.True(t, errors.Is(err, termtext.ErrAlreadyBuilt))
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	text := styled.TextFromString
	l, err := NewVertical(Left).Append(NewBlock(text("ab")), NewBlock(text("c"))).Build()
	require.NoError(t, err)
	assert.Equal(t, "Vertical(h:2;w:2; 2 children)\n"+
		"  Block(h:1;w:2)\n"+
		"  Horizontal(h:1;w:2; 2 children)\n"+
		"    Block(h:1;w:1)\n"+
		"    Blank(h:1;w:1)\n", l.Dump())
	//
	var buf bytes.Buffer
	require.NoError(t, Layout2Dot(l, &buf))
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "strict digraph {"))
	assert.Contains(t, dot, `"1" -> "2";`)
	assert.Contains(t, dot, `"3" -> "4";`)
	assert.Equal(t, 4, strings.Count(dot, "->"))
}

func TestAlignmentNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	a, err := ParseAlignH("center")
	require.NoError(t, err)
	assert.Equal(t, Center, a)
	assert.Equal(t, "right", Right.String())
	v, err := ParseAlignV("bottom")
	require.NoError(t, err)
	assert.Equal(t, Bottom, v)
	_, err = ParseAlignV("diagonal")
	assert.True(t, errors.Is(err, termtext.ErrIllegalArguments))
	lead, trail := Center.split(5)
	assert.Equal(t, 2, lead)
	assert.Equal(t, 3, trail)
	lead, trail = Middle.split(1)
	assert.Equal(t, 0, lead)
	assert.Equal(t, 1, trail)
}

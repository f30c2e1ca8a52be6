package styled

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/termtext"
	"github.com/npillmayer/termtext/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fg(c style.Color) style.Style {
	return style.New(style.Fg(c))
}

func span(t *testing.T, st style.Style, content string) Span {
	s, err := NewSpan(st, content)
	require.NoError(t, err)
	return s
}

func joinInts(from, to, step int) string {
	var parts []string
	for i := from; i <= to; i += step {
		parts = append(parts, fmt.Sprint(i))
	}
	return strings.Join(parts, ",")
}

// testLine is a line of 9 spans with alternating colored and plain content.
func testLine(t *testing.T) Line {
	plain := style.Empty()
	return NewLine(
		span(t, fg(style.Red), joinInts(3, 33, 3)),
		span(t, plain, ";"),
		span(t, fg(style.Cyan), "123"),
		span(t, plain, ";"),
		span(t, fg(style.Blue), joinInts(-4, 2, 1)),
		span(t, plain, ";"),
		span(t, fg(style.Green), "-456"),
		span(t, plain, ";"),
		span(t, fg(style.Magenta), joinInts(175, 375, 25)),
	)
}

func TestSpanBasics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	_, err := NewSpan(style.Empty(), "")
	assert.True(t, errors.Is(err, termtext.ErrEmptySpan))
	s := span(t, fg(style.Red), "Hello")
	assert.Equal(t, 5, s.Width())
	assert.Equal(t, "Hello", s.Content())
	assert.Nil(t, s.Parent())
	assert.Equal(t, fg(style.Red), s.OpenStyle())
	assert.Equal(t, `"Hello"ansi-style<fg(red)>`, s.Dump())
	s = span(t, style.Empty(), "-©-")
	assert.Equal(t, 3, s.Width())
}

func TestSpanCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	root := style.NewNode(nil, style.New(style.ApplyBold, style.Fg(style.Red)))
	s, err := NewSpanWithParent(root, style.New(style.ResetBold, style.Bg(style.White)), "x")
	require.NoError(t, err)
	assert.Equal(t, style.New(style.Fg(style.Red), style.Bg(style.White)), s.OpenStyle())
	s = s.WithParent(nil)
	assert.Equal(t, style.New(style.Bg(style.White)), s.OpenStyle())
}

func TestSubSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	s := span(t, fg(style.Red), "a-©-b")
	sub, ok := s.SubSpan(1, 4)
	require.True(t, ok)
	assert.Equal(t, "-©-", sub.Content())
	assert.Equal(t, 3, sub.Width())
	assert.Equal(t, s.OpenStyle(), sub.OpenStyle())
	_, ok = s.SubSpan(5, 9)
	assert.False(t, ok)
	sub, ok = s.SubSpan(-3, 99)
	require.True(t, ok)
	assert.Equal(t, s.Content(), sub.Content())
}

func TestLineMergesEqualStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	l := NewLine(span(t, fg(style.Red), "ab"), span(t, fg(style.Red), "cd"),
		span(t, style.Empty(), "e"))
	assert.Len(t, l.Spans(), 2)
	assert.Equal(t, "abcde", l.Content())
	assert.Equal(t, 5, l.Width())
	l = l.Append(span(t, style.Empty(), "f"), span(t, fg(style.Red), "g"))
	assert.Len(t, l.Spans(), 3)
	spans := l.Spans()
	for i := 1; i < len(spans); i++ {
		assert.NotEqual(t, spans[i-1].OpenStyle(), spans[i].OpenStyle())
	}
}

func TestLineRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	var contents []string
	for content, st := range testLine(t).Runs() {
		contents = append(contents, content)
		if content == ";" {
			assert.True(t, st.IsEmpty())
		}
	}
	assert.Len(t, contents, 9)
}

func TestSubLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	line := testLine(t)
	w := line.Width()
	//
	sub := line.SubLine(0, 10)
	assert.Equal(t, "3,6,9,12,1", sub.Content())
	assert.Equal(t, []style.Style{fg(style.Red)}, sub.SpanStylesOpen())
	//
	sub = line.SubLine(-5, 45)
	assert.Equal(t, "3,6,9,12,15,18,21,24,27,30,33;123;-4,-3,-2,-1", sub.Content())
	assert.Equal(t, 45, sub.Width())
	assert.Equal(t, []style.Style{fg(style.Red), style.Empty(), fg(style.Cyan),
		style.Empty(), fg(style.Blue)}, sub.SpanStylesOpen())
	//
	assert.Equal(t, line.Content(), line.SubLine(-1, w+1).Content())
	for _, r := range [][2]int{{-100, -200}, {200, 300}, {100, -200}, {w, w},
		{w, w + 1}, {-1, 0}, {0, 0}, {1, 1}} {
		assert.Equal(t, 0, line.SubLine(r[0], r[1]).Width(), "range %v", r)
		assert.True(t, line.SubLine(r[0], r[1]).IsEmpty())
	}
	for _, r := range [][2]int{{w - 1, w}, {-1, 1}, {0, 1}} {
		assert.Equal(t, 1, line.SubLine(r[0], r[1]).Width(), "range %v", r)
	}
	assert.Equal(t, "5", line.SubLine(w-1, w).Content())
}

func TestSubLineCutsEveryRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	line := testLine(t).Append(span(t, style.New(style.ResetFg), "©ä"), span(t, fg(style.Red), "ö"))
	chars := []rune(line.Content()) // one rune per character
	w := line.Width()
	require.Equal(t, len(chars), w)
	for i := 0; i <= w; i++ {
		for j := i; j <= w; j++ {
			sub := line.SubLine(i, j)
			require.Equal(t, j-i, sub.Width(), "range [%d,%d)", i, j)
			require.Equal(t, string(chars[i:j]), sub.Content(), "range [%d,%d)", i, j)
			styles := sub.SpanStylesOpen()
			for k := 1; k < len(styles); k++ {
				require.NotEqual(t, styles[k-1], styles[k], "range [%d,%d)", i, j)
			}
		}
	}
}

func TestResetSpanSurvivesNewParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	line := NewLine(span(t, style.Empty(), "x "), span(t, style.New(style.ResetFg), "y"))
	assert.Len(t, line.Spans(), 1) // equal effective styles without a parent
	red := style.NewNode(nil, fg(style.Red))
	moved := line.WithParent(red)
	assert.Equal(t, "x y", moved.Content())
	assert.Equal(t, []style.Style{fg(style.Red), style.Empty()}, moved.SpanStylesOpen())
	assert.Equal(t, "\x1b[31mx \x1b[39my", moved.RenderANSI(termtext.DefaultContext()))
	// cuts and concatenation keep the reset, too
	assert.Equal(t, []style.Style{fg(style.Red), style.Empty()},
		line.SubLine(1, 3).WithParent(red).SpanStylesOpen())
	assert.Equal(t, []style.Style{fg(style.Red), style.Empty()},
		Line{}.Concat(line).WithParent(red).SpanStylesOpen())
}

func TestLineRenderANSI(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	italic := style.New(style.ApplyItalic)
	l := NewLine(
		span(t, fg(style.Green), "continues "),
		span(t, fg(style.Green).Accept(style.ApplyItalic), "at this line "),
		span(t, italic, "and ends without color"),
	)
	ctx := termtext.DefaultContext()
	assert.Equal(t, "\x1b[32mcontinues \x1b[3mat this line \x1b[39mand ends without color\x1b[23m",
		l.RenderANSI(ctx))
	ctx.SiblingStylesSquash = false
	assert.Equal(t, "\x1b[32mcontinues \x1b[39m\x1b[3;32mat this line \x1b[23;39m"+
		"\x1b[3mand ends without color\x1b[23m", l.RenderANSI(ctx))
	ctx = termtext.RenderContext{SiblingStylesSquash: true, LinePrefixResetAll: true,
		LineSuffixResetAll: true}
	assert.Equal(t, "\x1b[0mplain\x1b[0m", NewLine(PlainSpan("plain")).RenderANSI(ctx))
	assert.Equal(t, "", Line{}.RenderANSI(termtext.DefaultContext()))
}

func TestLineWithParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	l := NewLine(span(t, fg(style.Red), "red"), span(t, style.Empty(), "plain"))
	assert.Len(t, l.Spans(), 2)
	l = l.WithParent(style.NewNode(nil, fg(style.Red)))
	assert.Len(t, l.Spans(), 1)
	assert.Equal(t, "redplain", l.Content())
	assert.Equal(t, []style.Style{fg(style.Red)}, l.SpanStylesOpen())
}

func TestBlankLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	assert.True(t, BlankLine(nil, 0, ' ').IsEmpty())
	l := BlankLine(style.NewNode(nil, style.New(style.Bg(style.Blue))), 3, '.')
	assert.Equal(t, "...", l.Content())
	assert.Equal(t, "\x1b[44m...\x1b[49m", l.RenderANSI(termtext.DefaultContext()))
}

func TestTextBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	b := NewTextBuilder()
	require.NoError(t, b.SetOuterStyle(style.New(style.ApplyBold)))
	require.NoError(t, b.Append("Hello ", style.Empty()))
	require.NoError(t, b.Append("World\r\nsecond", fg(style.Red)))
	require.NoError(t, b.Newline())
	require.NoError(t, b.Append("", fg(style.Red)))
	text := b.Text()
	assert.Equal(t, 3, text.Height())
	assert.Equal(t, 11, text.Width())
	assert.Equal(t, "Hello World\nsecond\n", text.Content())
	assert.Equal(t, 0, text.LineWidthAt(2))
	assert.Equal(t, 0, text.LineWidthAt(7))
	assert.Same(t, text, b.Text())
	assert.True(t, errors.Is(b.Append("x", style.Empty()), termtext.ErrTextCompleted))
	assert.True(t, errors.Is(b.Newline(), termtext.ErrTextCompleted))
	//
	bold := style.New(style.ApplyBold)
	assert.Equal(t, []style.Style{bold, bold.Accept(style.Fg(style.Red)),
		bold.Accept(style.Fg(style.Red))}, text.SpanStylesOpen())
	assert.Equal(t, "\x1b[1mHello \x1b[31mWorld\x1b[22;39m\n\x1b[1;31msecond\x1b[22;39m\n",
		text.RenderANSI(termtext.DefaultContext()))
}

func TestTextFromString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	text := TextFromString("")
	assert.Equal(t, 1, text.Height())
	assert.Equal(t, 0, text.Width())
	text = TextFromString("a\nbcd")
	assert.Equal(t, 2, text.Height())
	assert.Equal(t, 3, text.Width())
	assert.Equal(t, "a\nbcd", text.RenderANSI(termtext.DefaultContext()))
	framed := text.WithStyle(fg(style.Red)).Frame(style.NewNode(nil, style.New(style.ApplyDim)))
	assert.Equal(t, []style.Style{style.New(style.ApplyDim, style.Fg(style.Red))},
		framed[1].SpanStylesOpen())
}

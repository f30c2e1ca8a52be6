package style

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/termtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyAndResetAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	assert.Equal(t, "", Empty().Render())
	assert.Equal(t, "ansi-style-empty", Empty().Dump())
	assert.Equal(t, "\x1b[0m", ResetAllStyle().Render())
	assert.Equal(t, "ansi-style<!!>", ResetAllStyle().Dump())
}

func TestColor16(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	for c := Black; c <= White; c++ {
		assert.Equal(t, 30+int(c), Fg(c).Code())
		assert.Equal(t, 40+int(c), Bg(c).Code())
		assert.Equal(t, 90+int(c), FgBright(c).Code())
		assert.Equal(t, 100+int(c), BgBright(c).Code())
	}
	assert.Equal(t, "31", Fg(Red).CodeSeq())
	assert.Equal(t, "107", BgBright(White).CodeSeq())
	assert.Equal(t, "fg(red)", Fg(Red).Name())
	assert.Equal(t, "fg(^green)", FgBright(Green).Name())
	assert.Equal(t, "bg(yellow)", Bg(Yellow).Name())
	assert.Equal(t, "bg(^blue)", BgBright(Blue).Name())
}

func TestColor256(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	fg, err := Fg256(123)
	require.NoError(t, err)
	bg, err := Bg256(234)
	require.NoError(t, err)
	assert.Equal(t, "38;5;123", fg.CodeSeq())
	assert.Equal(t, "48;5;234", bg.CodeSeq())
	assert.Equal(t, "fg(#7B)", fg.Name())
	assert.Equal(t, "bg(#EA)", bg.Name())
	//
	_, err = Fg256(345)
	require.Error(t, err)
	assert.True(t, errors.Is(err, termtext.ErrInvalidColorValue))
	assert.Contains(t, err.Error(), "foreground 256-color")
	assert.Contains(t, err.Error(), "was 345")
	_, err = Bg256(456)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "background 256-color")
	assert.Contains(t, err.Error(), "was 456")
}

func TestColorRGB(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	fg, err := FgRGB(12, 34, 56)
	require.NoError(t, err)
	bg, err := BgRGB(23, 45, 67)
	require.NoError(t, err)
	assert.Equal(t, "38;2;12;34;56", fg.CodeSeq())
	assert.Equal(t, "48;2;23;45;67", bg.CodeSeq())
	assert.Equal(t, "fg(#0C2238)", fg.Name())
	assert.Equal(t, "bg(#172D43)", bg.Name())
	//
	for _, tc := range []struct {
		r, g, b int
		msg     string
		val     string
	}{
		{-2, 34, 56, "Red part of foreground true-color", "was -2"},
		{12, 534, 56, "Green part of foreground true-color", "was 534"},
		{12, 34, 0x123, "Blue part of foreground true-color", "was 291"},
	} {
		_, err := FgRGB(tc.r, tc.g, tc.b)
		require.Error(t, err)
		assert.ErrorIs(t, err, termtext.ErrInvalidColorValue)
		assert.Contains(t, err.Error(), tc.msg)
		assert.Contains(t, err.Error(), tc.val)
	}
}

func TestColorRGBValues(t *testing.T) {
	r, g, b, ok := Fg(Red).RGB()
	assert.True(t, ok)
	assert.Equal(t, [3]uint8{0xAA, 0, 0}, [3]uint8{r, g, b})
	a, _ := Bg256(196)
	r, g, b, _ = a.RGB()
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
	a, _ = Fg256(244)
	r, g, b, _ = a.RGB()
	assert.Equal(t, [3]uint8{128, 128, 128}, [3]uint8{r, g, b})
	_, _, _, ok = ApplyBold.RGB()
	assert.False(t, ok)
}

func TestLookupByName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	_, ok := LookupByName("la-la-la")
	assert.False(t, ok)
	for name, expected := range map[string]Attr{
		"dim":    ApplyDim,
		"italic": ApplyItalic,
		"!bold":  ResetBold,
		"!dim":   ResetDim,
		"!!":     ResetAll,
		"!fg":    ResetFg,
		"!bg":    ResetBg,
		"red":    Fg(Red),
		"^red":   FgBright(Red),
		"fg(red)": Fg(Red),
		"bg(^blue)": BgBright(Blue),
		"Bold":   ApplyBold,
	} {
		a, ok := LookupByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, expected, a, name)
	}
	a, ok := LookupByName("fg(#f4)")
	require.True(t, ok)
	assert.Equal(t, "fg(#F4)", a.Name())
	assert.Equal(t, "38;5;244", a.CodeSeq())
	a, ok = LookupByName("bg(#FAFA00)")
	require.True(t, ok)
	assert.Equal(t, "48;2;250;250;0", a.CodeSeq())
	for _, bad := range []string{"fg(#F)", "fg(#GG)", "fg(pink)", "bg()", "fg(#1234567)"} {
		_, ok = LookupByName(bad)
		assert.False(t, ok, bad)
	}
}

func TestStyleBuilding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	bg, _ := Bg256(123)
	fg, _ := Fg256(45)
	st := New(ApplyBold, bg, fg, ResetItalic)
	assert.Equal(t, "\x1b[1;23;38;5;45;48;5;123m", st.Render())
	assert.Equal(t, "ansi-style<bold,!italic,fg(#2D),bg(#7B)>", st.Dump())
	//
	st, unknown := Empty().AcceptByName("underline", "strikethrough", "no-such-thing")
	assert.Equal(t, "\x1b[4;9m", st.Render())
	assert.Equal(t, "ansi-style<underline,strikethrough>", st.Dump())
	assert.Equal(t, []string{"no-such-thing"}, unknown)
}

func TestAcceptLastWins(t *testing.T) {
	bgFA, _ := BgRGB(0xFA, 0xFA, 0)
	st := New(bgFA, Fg(Red), FgBright(Green), ResetBg, Fg(Blue))
	assert.Equal(t, "ansi-style<fg(blue),!bg>", st.Dump())
	st = New(ApplyBold, Fg(Red), ResetAll, ApplyItalic)
	assert.Equal(t, "ansi-style<!!,italic>", st.Dump())
	assert.Equal(t, "\x1b[0;3m", st.Render())
	assert.True(t, New(ApplyBold, Fg(Red)).Equal(New(Fg(Red), ApplyBold)))
	assert.False(t, New(ApplyBold).Equal(New(ApplyDim)))
}

func TestApplyAndMerge(t *testing.T) {
	base := New(ApplyBold, Fg(Red))
	other := New(ResetBold, Bg(Blue))
	assert.Equal(t, "ansi-style<bold,fg(red),bg(blue)>", base.Apply(other).Dump())
	assert.Equal(t, "ansi-style<fg(red),bg(blue)>", base.Merge(other).Dump())
	assert.True(t, base.Merge(ResetAllStyle()).IsEmpty())
	assert.Equal(t, "ansi-style<italic>", base.Merge(New(ResetAll, ApplyItalic)).Dump())
}

var diffSamples = func() []Style {
	c256, _ := Fg256(244)
	rgb, _ := BgRGB(1, 2, 3)
	return []Style{
		Empty(),
		New(ApplyBold),
		New(ApplyBold, Fg(Red)),
		New(ApplyDim, Fg(Red), Bg(Yellow)),
		New(ApplyItalic, ApplyUnderline, c256),
		New(ApplyBold, rgb),
		New(Fg(Blue)),
		New(ApplyStrikethrough, ApplyHidden, ApplyInverse, ApplyBlinking),
	}
}()

func TestDiffIdentity(t *testing.T) {
	for _, a := range diffSamples {
		assert.True(t, Diff(a, a).IsEmpty(), a.Dump())
	}
}

func TestDiffRoundTrip(t *testing.T) {
	for _, before := range diffSamples {
		for _, after := range diffSamples {
			d := Diff(after, before)
			assert.Equal(t, after, before.Merge(d), "%s -> %s", before, after)
		}
	}
}

func TestDiffMinimal(t *testing.T) {
	before := New(ApplyBold, Fg(Red))
	after := New(ApplyBold, Fg(Blue), ApplyItalic)
	assert.Equal(t, "ansi-style<italic,fg(blue)>", Diff(after, before).Dump())
	assert.Equal(t, "\x1b[22;39m", Diff(Empty(), before).Render())
	assert.Equal(t, "\x1b[22;39m", before.Close().Render())
	assert.Equal(t, "ansi-style<!bold>", Diff(New(Fg(Red)), before).Dump())
}

func TestDiffKeepsOtherIntensity(t *testing.T) {
	both := New(ApplyBold, ApplyDim)
	assert.Equal(t, "\x1b[22;2m", Diff(New(ApplyDim), both).Render())
	assert.Equal(t, "\x1b[22;1m", Diff(New(ApplyBold), both).Render())
	assert.Equal(t, "\x1b[22;1m", Diff(New(ApplyBold), New(ApplyDim)).Render())
	assert.Equal(t, "\x1b[22;2m", Diff(New(ApplyDim), New(ApplyBold)).Render())
	assert.Equal(t, "\x1b[22;22m", both.Close().Render())
	assert.Equal(t, "\x1b[1m", Diff(both, New(ApplyDim)).Render())
}

func TestDecodeSGR(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	st := New(DecodeSGR("2;5;3;4;1")...)
	assert.Equal(t, "ansi-style<bold,dim,italic,underline,blinking>", st.Dump())
	st = New(DecodeSGR("25;23;4;1;0;9")...)
	assert.Equal(t, "ansi-style<!!,strikethrough>", st.Dump())
	st = New(DecodeSGR("38;5;123;48;2;1;2;3")...)
	assert.Equal(t, "ansi-style<fg(#7B),bg(#010203)>", st.Dump())
	st = New(DecodeSGR("91;39;104")...)
	assert.Equal(t, "ansi-style<!fg,bg(^blue)>", st.Dump())
	assert.Equal(t, []Attr{ResetAll}, DecodeSGR(""))
	assert.Empty(t, DecodeSGR("x;38;5"))
}

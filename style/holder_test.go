package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func dumps(styles []Style) []string {
	d := make([]string, len(styles))
	for i, st := range styles {
		d[i] = st.Dump()
	}
	return d
}

func colors256(fg, bg int) Style {
	f, _ := Fg256(fg)
	b, _ := Bg256(bg)
	return New(f, b)
}

func toggleStyle(bold, underline bool) Style {
	st := Empty()
	if bold {
		st = st.Accept(ApplyBold)
	} else {
		st = st.Accept(ResetBold)
	}
	if underline {
		return st.Accept(ApplyUnderline)
	}
	return st.Accept(ResetUnderline)
}

func TestChainWithoutStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	h1 := NewNode(nil, Empty())
	h11 := NewNode(h1, Empty())
	h111 := NewNode(h11, Empty())
	assert.Nil(t, h1.Parent())
	assert.Same(t, h1, h11.Parent())
	assert.Same(t, h11, h111.Parent())
	assert.Empty(t, Chain(h1))
	assert.Empty(t, Chain(h111))
	assert.True(t, OpenStyle(h111).IsEmpty())
	assert.True(t, CloseStyle(h111).IsEmpty())
}

func TestChainWithStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	h1 := NewNode(nil, toggleStyle(true, true))
	h11 := NewNode(h1, colors256(1, 1))
	h2 := NewNode(nil, Empty())
	h22 := NewNode(h2, colors256(2, 2))
	h221 := NewNode(h22, colors256(221, 221))
	h222 := NewNode(h22, toggleStyle(false, true))
	h2210 := NewNode(h221, toggleStyle(true, false))

	assert.Equal(t, []string{"ansi-style<bold,underline>"}, dumps(Chain(h1)))
	assert.Equal(t, []string{"ansi-style<bold,underline>", "ansi-style<fg(#01),bg(#01)>"},
		dumps(Chain(h11)))
	assert.Empty(t, Chain(h2))
	assert.Equal(t, []string{"ansi-style<fg(#02),bg(#02)>", "ansi-style<fg(#DD),bg(#DD)>"},
		dumps(Chain(h221)))
	assert.Equal(t, []string{"ansi-style<fg(#02),bg(#02)>", "ansi-style<!bold,underline>"},
		dumps(Chain(h222)))
	assert.Equal(t, []string{"ansi-style<fg(#02),bg(#02)>", "ansi-style<fg(#DD),bg(#DD)>",
		"ansi-style<bold,!underline>"}, dumps(Chain(h2210)))
	//
	assert.Equal(t, "ansi-style<bold,underline,fg(#01),bg(#01)>", OpenStyle(h11).Dump())
	assert.Equal(t, "ansi-style<bold,underline>", ParentStyle(h11).Dump())
	assert.Equal(t, "ansi-style<underline,fg(#02),bg(#02)>", OpenStyle(h222).Dump())
	assert.Equal(t, "ansi-style<bold,fg(#DD),bg(#DD)>", OpenStyle(h2210).Dump())
	assert.Equal(t, "\x1b[22;39;49m", CloseStyle(h2210).Render())
}

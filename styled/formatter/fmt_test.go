package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/termtext"
	"github.com/npillmayer/termtext/markup"
	"github.com/npillmayer/termtext/style"
	"github.com/npillmayer/termtext/styled"
	"github.com/npillmayer/uax/uax11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "plain @|bold bold|@\n@|red <red>|@"

func TestRenderModes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	text := markup.Parse(sample)
	ctx := termtext.DefaultContext()
	s, err := Render(text, termtext.Content, ctx)
	require.NoError(t, err)
	assert.Equal(t, "plain bold\n<red>", s)
	s, err = Render(text, termtext.ANSI, ctx)
	require.NoError(t, err)
	assert.Equal(t, "plain \x1b[1mbold\x1b[22m\n\x1b[31m<red>\x1b[39m", s)
	s, err = Render(text, termtext.Debug, ctx)
	require.NoError(t, err)
	assert.Equal(t, text.Dump(), s)
	s, err = Render(text.LineAt(1), termtext.HTML, ctx)
	require.NoError(t, err)
	assert.Equal(t, "<pre>\n<span style=\"color:#AA0000\">&lt;red&gt;</span>\n</pre>\n", s)
}

func TestRenderUnsupported(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	_, err := Render(42, termtext.ANSI, termtext.DefaultContext())
	assert.True(t, errors.Is(err, termtext.ErrUnsupportedRenderMode))
	assert.Contains(t, err.Error(), "int")
	_, err = Render(style.New(style.ApplyBold), termtext.HTML, termtext.DefaultContext())
	assert.True(t, errors.Is(err, termtext.ErrUnsupportedRenderMode))
	_, err = Render(styled.PlainSpan("x"), termtext.RenderMode(17), termtext.DefaultContext())
	assert.True(t, errors.Is(err, termtext.ErrUnsupportedRenderMode))
}

func TestConsoleMatchesLineRendering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	text := markup.Parse(sample + "\n\n@|underline,blue u|@ and @|italic i|@")
	for _, ctx := range []termtext.RenderContext{
		termtext.DefaultContext(),
		{LinePrefixResetAll: true, LineSuffixResetAll: true},
		{SiblingStylesSquash: true, LinePrefixResetAll: true},
	} {
		var sb strings.Builder
		config := &Config{Mode: termtext.ANSI, Render: ctx}
		require.NoError(t, Fprint(&sb, text, config))
		assert.Equal(t, text.RenderANSI(ctx)+"\n", sb.String(), "context %v", ctx)
	}
}

func TestConsoleContentAndDebug(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()
	//
	text := markup.Parse(sample)
	var sb strings.Builder
	require.NoError(t, Fprint(&sb, text, &Config{Mode: termtext.Content}))
	assert.Equal(t, "plain bold\n<red>\n", sb.String())
	sb.Reset()
	require.NoError(t, Fprint(&sb, text.LineAt(0), &Config{Mode: termtext.Debug}))
	assert.Equal(t, "[plain ][bold]"+style.New(style.ApplyBold).Dump()+"\n", sb.String())
}

func TestOutputArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	err := Output(nil, &strings.Builder{}, DefaultConfig(), NewHTML())
	assert.True(t, errors.Is(err, termtext.ErrIllegalArguments))
	var sb strings.Builder
	line := markup.ParseLine("a much too long line")
	require.NoError(t, Output(line, &sb, &Config{LineWidth: 5}, NewHTML()))
	assert.Equal(t, "<pre>\na much too long line\n</pre>\n", sb.String())
}

func TestDisplayWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "termtext")
	defer teardown()
	//
	assert.Equal(t, 0, DisplayWidth("", nil))
	assert.Equal(t, 5, DisplayWidth("Hello", uax11.LatinContext))
	assert.Equal(t, 4, DisplayWidth("日本", uax11.LatinContext))
}

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/termtext"
	"github.com/npillmayer/termtext/layout"
	"github.com/npillmayer/termtext/markup"
	"github.com/npillmayer/termtext/style"
	"github.com/npillmayer/termtext/styled"
	"github.com/npillmayer/termtext/styled/formatter"
	"github.com/npillmayer/termtext/textfile"
	"github.com/spf13/cobra"
)

var renderFlags struct {
	border     string
	align      string
	valign     string
	mode       string
	theme      string
	width      int
	padding    int
	horizontal bool
}

var renderCmd = &cobra.Command{
	Use:   "render [files...]",
	Short: "Render markup files as boxes",
	Long: `render reads every file given (or stdin, if there is none) as markup text
and prints each one as a box. Boxes are stacked from top to bottom, or tiled
from left to right with --horizontal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}
		applyRenderFlags(cmd, &conf)
		return render(cmd.InOrStdin(), cmd.OutOrStdout(), args, conf)
	},
}

func init() {
	f := renderCmd.Flags()
	f.StringVarP(&renderFlags.border, "border", "b", "", "border name (see command borders)")
	f.StringVarP(&renderFlags.align, "align", "a", "", "horizontal alignment: left, center or right")
	f.StringVar(&renderFlags.valign, "valign", "", "vertical alignment: top, middle or bottom")
	f.StringVarP(&renderFlags.mode, "mode", "m", "", "output mode: auto, content, ansi, debug or html")
	f.StringVarP(&renderFlags.theme, "theme", "t", "", "YAML file with style aliases")
	f.IntVarP(&renderFlags.width, "width", "w", 0, "content width of boxes (0 = width of text)")
	f.IntVarP(&renderFlags.padding, "padding", "p", 0, "blank columns left and right of the text")
	f.BoolVarP(&renderFlags.horizontal, "horizontal", "H", false, "tile boxes from left to right")
}

// applyRenderFlags lets flags given on the command line override the
// configuration.
func applyRenderFlags(cmd *cobra.Command, conf *Config) {
	f := cmd.Flags()
	if f.Changed("border") {
		conf.Box.Border = renderFlags.border
	}
	if f.Changed("align") {
		conf.Box.Align = renderFlags.align
	}
	if f.Changed("valign") {
		conf.Box.Valign = renderFlags.valign
	}
	if f.Changed("mode") {
		conf.Render.Mode = renderFlags.mode
	}
	if f.Changed("theme") {
		conf.Theme = renderFlags.theme
	}
	if f.Changed("width") {
		conf.Box.Width = renderFlags.width
	}
	if f.Changed("padding") {
		conf.Box.Padding = renderFlags.padding
	}
	if f.Changed("horizontal") {
		conf.Box.Horizontal = renderFlags.horizontal
	}
}

func render(in io.Reader, out io.Writer, files []string, conf Config) error {
	opts, err := conf.boxOptions()
	if err != nil {
		return err
	}
	var texts []*styled.Text
	if len(files) == 0 {
		data, err := io.ReadAll(in)
		if err != nil {
			return err
		}
		texts = append(texts, markup.Parse(strings.TrimRight(string(data), "\n"), opts.markup...))
	}
	loader := textfile.NewLoader(nil, opts.markup...)
	defer loader.Close()
	if progress, err := loader.Subscribe(context.Background()); err == nil {
		go logProgress(progress)
	}
	for _, name := range files {
		text, err := loader.Load(name)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		texts = append(texts, text)
	}
	boxStyle, err := parseStyle(conf.Box.Style)
	if err != nil {
		return err
	}
	l, err := boxes(texts, opts, boxStyle)
	if err != nil {
		return err
	}
	fconf, err := conf.formatterConfig()
	if err != nil {
		return err
	}
	return formatter.Fprint(out, l, fconf)
}

func logProgress(progress <-chan textfile.Progress) {
	for p := range progress {
		if p.Done() {
			tracer().Infof("ansibox: loaded %s (%d bytes)", p.Path, p.Size)
		} else {
			tracer().Debugf("ansibox: loading %s, %d of %d bytes", p.Path, p.Loaded, p.Size)
		}
	}
}

// boxes arranges texts as a group of blocks.
func boxes(texts []*styled.Text, opts boxOptions, st style.Style) (*layout.Layout, error) {
	var group *layout.GroupBuilder
	if opts.horizontal {
		group = layout.NewHorizontal(opts.alignV)
	} else {
		group = layout.NewVertical(opts.alignH)
	}
	for _, text := range texts {
		block := layout.NewBlock(text).Align(opts.alignH).
			LeftIndentWidth(opts.padding).
			RightIndentWidth(opts.padding)
		if opts.width > 0 {
			block.ContentWidth(opts.width)
		}
		group.Append(block)
	}
	return group.Border(opts.border).Style(st).Build()
}

// parseStyle reads a comma separated list of attribute names.
func parseStyle(list string) (style.Style, error) {
	if strings.TrimSpace(list) == "" {
		return style.Empty(), nil
	}
	names := strings.Split(list, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	st, unknown := style.Empty().AcceptByName(names...)
	if len(unknown) > 0 {
		return st, fmt.Errorf("%w: unknown style attributes %v", termtext.ErrIllegalArguments, unknown)
	}
	return st, nil
}

func (conf Config) formatterConfig() (*formatter.Config, error) {
	var fconf *formatter.Config
	if conf.Render.Mode == "" || conf.Render.Mode == "auto" {
		fconf = formatter.ConfigFromTerminal()
	} else {
		mode, err := termtext.ParseRenderMode(conf.Render.Mode)
		if err != nil {
			return nil, err
		}
		fconf = formatter.DefaultConfig()
		fconf.Mode = mode
	}
	fconf.Render = conf.renderContext()
	return fconf, nil
}

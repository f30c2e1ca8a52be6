package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/termtext"
	"github.com/npillmayer/termtext/layout"
	"github.com/npillmayer/termtext/styled"
	"github.com/npillmayer/termtext/styled/formatter"
	"github.com/spf13/cobra"
)

var bordersCmd = &cobra.Command{
	Use:   "borders",
	Short: "Show all predefined borders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showBorders(cmd.OutOrStdout())
	},
}

// showBorders prints a sample grid for every named border.
func showBorders(out io.Writer) error {
	conf := formatter.DefaultConfig()
	conf.Mode = termtext.Content
	for _, name := range layout.BorderNames() {
		b, _ := layout.BorderByName(name)
		if b.IsNone() {
			continue
		}
		cell := func(s string) layout.Builder {
			return layout.NewBlock(styled.TextFromString(s)).LeftIndentWidth(1).RightIndentWidth(1)
		}
		sample, err := layout.NewVertical(layout.Left).
			Append(
				layout.NewHorizontal(layout.Top).Append(cell("a"), cell("b")),
				layout.NewHorizontal(layout.Top).Append(cell("c"), cell("d")),
			).
			Border(b).Build()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%s\n", name); err != nil {
			return err
		}
		if err := formatter.Fprint(out, sample, conf); err != nil {
			return err
		}
	}
	return nil
}

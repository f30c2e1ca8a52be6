/*
Package layout arranges styled text on a rectangular grid of terminal cells.

A Block wraps a styled text, aligning each of its lines within a given width
and adding left and right indents. Blocks (and other layouts) are tiled into
horizontal and vertical groups. Children of a group are aligned to the
group's extent on the cross axis, and groups may be separated and framed by
borders.

Layouts are created by builders. Building proceeds top-down, handing a build
context to every child: the border and padding character to inherit and the
parent layout. Every layout is a style holder, thus the style of a group
cascades into its blocks and from there into the spans of the blocks' texts.

	block := layout.NewBlock(text).Align(layout.Center).LeftIndentWidth(1)
	box := layout.NewVertical(layout.Left).Border(layout.Rounded).Append(block)
	l, err := box.Build()

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'termtext'
func tracer() tracing.Trace {
	return tracing.Select("termtext")
}

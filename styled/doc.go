/*
Package styled makes styled text.

A Span is a run of characters with a single style. Lines are sequences of
spans, and a Text is a sequence of lines with an optional outer style.
Spans know their parent holder in a style cascade (see package style), which
is how blocks and layouts decorate the texts they contain.

Lines never contain two adjacent spans with equal effective style; such spans
are merged on construction. Sub-ranges of lines are cut by character
positions, where characters are user-perceived characters (grapheme
clusters), not bytes or runes.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package styled

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'termtext'
func tracer() tracing.Trace {
	return tracing.Select("termtext")
}

/*
Package style holds the building blocks of text styles for terminals.

An Attr is an atomic style fact, e.g. “bold”, “reset italic” or “foreground
color #7B”. Attributes belong to families; a Style holds at most one attribute
per family, ordered by family. Styles are small comparable values.

Diff computes the minimal style which switches a terminal from one style to
another. Together with the style cascade (see Holder) this makes it possible to
emit only the escape codes which are actually needed between two runs of text.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'termtext'
func tracer() tracing.Trace {
	return tracing.Select("termtext")
}

/*
Package formatter outputs styled text on devices with fixed-width fonts.
Think of this package in terms of `fmt.Println` for styled text.

Output of styled text differs in many aspects from simple string output. We
need an output device which is capable of displaying text styles, and
applications want to select the flavour of output depending on the device:
escape sequences for an interactive terminal, plain content when output is
redirected, and HTML for documentation. This package helps performing the
following tasks:

▪︎ Render any styled value in a given mode (Render)

▪︎ Create a suitable configuration for the current terminal (ConfigFromTerminal)

▪︎ Stream styled lines to an output device through a format driver (Output, Print)

Render dispatches on the capabilities of a value: content for everything
with a `Content() string` method, ANSI for everything with a
`RenderANSI(termtext.RenderContext) string` method, and so on. Values which
lack the capability for a mode are rejected with
termtext.ErrUnsupportedRenderMode.

	text := markup.Parse("The @|bold quick|@ brown fox")
	s, err := formatter.Render(text, termtext.ANSI, termtext.DefaultContext())

Format drivers receive runs of uniformly styled text. This package offers two
implementations, one for console output and one for HTML output.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'termtext'
func tracer() tracing.Trace {
	return tracing.Select("termtext")
}

/*
Package markup parses a compact inline markup for styled terminal text.

A style scope is opened by "@|", immediately followed by a list of attribute
names, and closed by "|@":

	some text @|bold,red;warning|@ continues

The attribute list is separated from the content by a single space or
semicolon; both are consumed. Scopes nest, an inner scope is styled on top of
the enclosing one. "@||" and "||@" stand for a literal "@|" and "|@". A "@|"
without a valid attribute list and a "|@" without an open scope are literal
text as well. Scopes left open at the end of the input style the remainder of
the text.

Attribute names are the ones understood by style.LookupByName. Unknown names
are ignored, unless a theme (see WithTheme) knows them as an alias.
Raw SGR escape sequences within the input are decoded and change the style
of the current scope.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'termtext'
func tracer() tracing.Trace {
	return tracing.Select("termtext")
}

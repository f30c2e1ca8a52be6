/*
Package termtext renders styled text for terminals.

Text is written in a compact inline markup, e.g.

	this is @|bold,red important|@ and this is not

and is turned into lines of styled spans. Every span knows its own style and
the chain of style holders above it (text frames, blocks, layouts), which lets
the renderer emit just the minimal escape sequences needed to switch from one
span to the next.

Styled texts may be wrapped into blocks (aligned, indented, padded) and blocks
may be composed into layouts, i.e. horizontal and vertical groups, optionally
framed by borders.

Sub-packages:

	style     style attributes, styles, minimal-diff and the style cascade
	styled    spans, lines and texts
	markup    the markup parser
	layout    blocks, layouts and borders
	theme     named style aliases, loaded from YAML

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–24, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package termtext

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TextError is an error type for the termtext module
type TextError string

func (e TextError) Error() string {
	return string(e)
}

// ErrInvalidColorValue is flagged for color indices or RGB channels outside [0..255].
const ErrInvalidColorValue = TextError("invalid color value")

// ErrEmptySpan is flagged when creating a span without content.
const ErrEmptySpan = TextError("span content must not be empty")

// ErrMalformedBorder is flagged for border tables which are not 8 rows of 4 glyphs.
const ErrMalformedBorder = TextError("malformed border table")

// ErrAlreadyBuilt signals that a builder has already produced its value and
// must not be used again.
const ErrAlreadyBuilt = TextError("builder has already been built")

// ErrTextCompleted signals that a text builder has already completed a text and
// it's illegal to further add fragments.
const ErrTextCompleted = TextError("forbidden to add fragments; text has been completed")

// ErrUnsupportedRenderMode is flagged whenever a value cannot be rendered in
// the requested mode.
const ErrUnsupportedRenderMode = TextError("unsupported render mode")

// ErrUnsupportedOperation is flagged for operations a node kind does not support.
const ErrUnsupportedOperation = TextError("unsupported operation")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TextError("illegal arguments")

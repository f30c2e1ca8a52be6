package termtext

import "fmt"

/*
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

// RenderMode selects an output flavour for styled values.
type RenderMode int

// Render modes. Content never contains escape sequences, ANSI decorates the
// content with SGR sequences, Debug dumps styles and span boundaries.
const (
	Content RenderMode = iota
	ANSI
	Debug
	HTML
)

var renderModeNames = [...]string{"content", "ansi", "debug", "html"}

func (m RenderMode) String() string {
	if m < 0 || int(m) >= len(renderModeNames) {
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
	return renderModeNames[m]
}

// ParseRenderMode maps a mode name (as printed by String) to a RenderMode.
func ParseRenderMode(name string) (RenderMode, error) {
	for i, n := range renderModeNames {
		if n == name {
			return RenderMode(i), nil
		}
	}
	return Content, fmt.Errorf("%w: no render mode named %q", ErrUnsupportedRenderMode, name)
}

// RenderContext holds options for rendering escape sequences. It is a plain
// value; every render call gets its own copy.
//
// The options change only the economy and framing of escape sequences, never
// the content.
type RenderContext struct {
	SiblingStylesSquash bool // emit minimal differences between adjacent spans
	LinePrefixResetAll  bool // start every line with ESC[0m
	LineSuffixResetAll  bool // end every line with ESC[0m
}

// DefaultContext returns the default render options: squashing on, no
// framing reset sequences.
func DefaultContext() RenderContext {
	return RenderContext{SiblingStylesSquash: true}
}

func (ctx RenderContext) String() string {
	return fmt.Sprintf("render-ctx<squash=%v,prefix-reset=%v,suffix-reset=%v>",
		ctx.SiblingStylesSquash, ctx.LinePrefixResetAll, ctx.LineSuffixResetAll)
}

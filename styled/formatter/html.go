package formatter

import (
	"io"

	"github.com/npillmayer/termtext/style"
	"github.com/npillmayer/termtext/styled/inline"
	"golang.org/x/net/html"
)

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

// HTML is a format for simple HTML output. Lines are enclosed in a `pre`
// element, and every styled run becomes a `span` with inline CSS.
type HTML struct{}

// NewHTML creates an HTML formatter.
func NewHTML() *HTML {
	return &HTML{}
}

// Preamble is called by the output driver before any text will be formatted.
// It outputs a `pre` tag.
// (Part of interface Format)
func (h *HTML) Preamble(w io.Writer) {
	io.WriteString(w, "<pre>\n")
}

// Postamble will be called after all the text has been formatted.
// It outputs a closing `</pre>` tag.
// (Part of interface Format)
func (h *HTML) Postamble(w io.Writer) {
	io.WriteString(w, "</pre>\n")
}

// StyledText is called by the formatting driver to output a sequence of
// uniformly styled text (item).
// (Part of interface Format)
func (h *HTML) StyledText(s string, st style.Style, w io.Writer) {
	css := inline.CSS(st)
	if css == "" {
		io.WriteString(w, html.EscapeString(s))
		return
	}
	io.WriteString(w, `<span style="`)
	io.WriteString(w, html.EscapeString(css))
	io.WriteString(w, `">`)
	io.WriteString(w, html.EscapeString(s))
	io.WriteString(w, "</span>")
}

// Newline will be called at the end of every formatted line of text.
// (Part of interface Format)
func (h *HTML) Newline(w io.Writer) {
	io.WriteString(w, "\n")
}

package formatter

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/npillmayer/termtext"
	"github.com/npillmayer/termtext/style"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
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

// ConsoleFixedWidth is a type for outputting formatted text to a console with
// a fixed width font.
//
// In ANSI mode, runs are decorated with SGR escape sequences the same way
// styled.Line.RenderANSI does it, but streaming. In Content mode, styles are
// dropped. Debug mode marks the boundaries of runs and prints their styles.
type ConsoleFixedWidth struct {
	mode    termtext.RenderMode
	ctx     termtext.RenderContext
	prev    style.Style // style in effect on the device
	bol     bool        // at the beginning of a line
	markers *color.Color
}

// NewConsoleFixedWidthFormat creates a new formatter for consoles with a fixed
// width font. Mode HTML is not supported by consoles and falls back to ANSI.
func NewConsoleFixedWidthFormat(mode termtext.RenderMode, ctx termtext.RenderContext) *ConsoleFixedWidth {
	if mode == termtext.HTML {
		mode = termtext.ANSI
	}
	return &ConsoleFixedWidth{
		mode:    mode,
		ctx:     ctx,
		bol:     true,
		markers: color.New(color.FgHiBlack),
	}
}

// Preamble is called by the output driver before any text will be formatted.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Preamble(w io.Writer) {
	fw.prev, fw.bol = style.Empty(), true
}

// Postamble will be called after all the text has been formatted.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Postamble(w io.Writer) {}

// StyledText is called by the formatting driver to output a sequence of
// uniformly styled text (item).
// (Part of interface Format)
func (fw *ConsoleFixedWidth) StyledText(s string, st style.Style, w io.Writer) {
	switch fw.mode {
	case termtext.Content:
		io.WriteString(w, s)
	case termtext.Debug:
		fw.markers.Fprint(w, "[")
		io.WriteString(w, s)
		if st.IsEmpty() {
			fw.markers.Fprint(w, "]")
		} else {
			fw.markers.Fprint(w, "]"+st.Dump())
		}
	default:
		if fw.bol && fw.ctx.LinePrefixResetAll {
			io.WriteString(w, style.ResetAllStyle().Render())
		}
		if fw.ctx.SiblingStylesSquash {
			io.WriteString(w, style.Diff(st, fw.prev).Render())
			io.WriteString(w, s)
			fw.prev = st
		} else {
			io.WriteString(w, st.Render())
			io.WriteString(w, s)
			io.WriteString(w, st.Close().Render())
		}
	}
	fw.bol = false
}

// Newline will be called at the end of every formatted line of text.
// It restores the unstyled state of the device and outputs a newline.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Newline(w io.Writer) {
	if fw.mode == termtext.ANSI {
		if fw.bol && fw.ctx.LinePrefixResetAll {
			io.WriteString(w, style.ResetAllStyle().Render())
		}
		io.WriteString(w, style.Diff(style.Empty(), fw.prev).Render())
		if fw.ctx.LineSuffixResetAll {
			io.WriteString(w, style.ResetAllStyle().Render())
		}
	}
	fw.prev, fw.bol = style.Empty(), true
	io.WriteString(w, "\n")
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating an output Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Output to terminals
// uses ANSI mode, unless colors are switched off (see package
// github.com/fatih/color, which respects NO_COLOR) or the terminal does not
// support colors; other output is plain content.
func ConfigFromTerminal() *Config {
	config := DefaultConfig()
	config.Context = uax11.ContextFromEnvironment()
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		if w, _, err := term.GetSize(int(fd)); err == nil && w > 0 {
			config.LineWidth = w
		}
	} else {
		config.Mode = termtext.Content
	}
	if color.NoColor || termenv.ColorProfile() == termenv.Ascii {
		config.Mode = termtext.Content
	}
	tracer().Infof("console output: mode %v, line width %d", config.Mode, config.LineWidth)
	return config
}

package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/termtext"
	"github.com/npillmayer/termtext/style"
	"github.com/npillmayer/termtext/styled"
	"github.com/npillmayer/termtext/styled/itemized"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
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

// Config represents a set of configuration parameters for output.
type Config struct {
	LineWidth int                    // display width of the device; lines exceeding it are reported
	Mode      termtext.RenderMode    // flavour of output
	Render    termtext.RenderContext // options for escape sequences
	Context   *uax11.Context         // for display widths of characters
}

// DefaultConfig returns a configuration for ANSI output to a device 80
// characters wide.
func DefaultConfig() *Config {
	return &Config{
		LineWidth: 80,
		Mode:      termtext.ANSI,
		Render:    termtext.DefaultContext(),
		Context:   uax11.LatinContext,
	}
}

// Format is an interface for formatting drivers, given an io.Writer.
type Format interface {
	Preamble(io.Writer)
	Postamble(io.Writer)
	StyledText(string, style.Style, io.Writer)
	Newline(io.Writer)
}

// Output formats styled lines using a given format driver.
//
// Neither of the arguments may be nil. However, it is safe to have config.Context
// set to nil. In this case, uax11.LatinContext is used.
func Output(p styled.LineProvider, out io.Writer, config *Config, format Format) error {
	if p == nil || out == nil || config == nil || format == nil {
		return fmt.Errorf("%w: nil argument for output", termtext.ErrIllegalArguments)
	}
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	w := &errWriter{w: out}
	format.Preamble(w)
	it := itemized.IterateLines(p)
	var line strings.Builder
	for it.Next() {
		if it.EndOfLine() {
			if width := DisplayWidth(line.String(), ctx); config.LineWidth > 0 && width > config.LineWidth {
				tracer().Infof("line %d has display width %d, exceeding %d", it.Line(), width, config.LineWidth)
			}
			line.Reset()
			format.Newline(w)
			continue
		}
		st, _, _ := it.Style()
		line.WriteString(it.Text())
		format.StyledText(it.Text(), st, w)
	}
	format.Postamble(w)
	if err := it.LastError(); err != nil {
		return err
	}
	return w.err
}

// Print outputs styled lines to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func Print(p styled.LineProvider, config *Config) error {
	return Fprint(os.Stdout, p, config)
}

// Fprint outputs styled lines to w. For config == nil, see Print.
func Fprint(w io.Writer, p styled.LineProvider, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	var format Format
	switch config.Mode {
	case termtext.HTML:
		format = NewHTML()
	default:
		format = NewConsoleFixedWidthFormat(config.Mode, config.Render)
	}
	return Output(p, w, config, format)
}

// errWriter remembers the first error of a sequence of writes, and drops all
// writes after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

var setupGraphemes sync.Once

// DisplayWidth returns the number of fixed-width positions s occupies on a
// device, with East Asian wide characters taking two positions.
func DisplayWidth(s string, ctx *uax11.Context) int {
	if s == "" {
		return 0
	}
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

// --- Rendering by mode -----------------------------------------------------

type contentRenderer interface {
	Content() string
}

type ansiRenderer interface {
	RenderANSI(termtext.RenderContext) string
}

type debugRenderer interface {
	Dump() string
}

// Render returns a string representation of x for an output mode. Which
// modes are available depends on the methods x has:
//
//	Content   Content() string
//	ANSI      RenderANSI(termtext.RenderContext) string
//	Debug     Dump() string
//	HTML      Lines() []styled.Line
//
// If x lacks the method for mode, Render fails with
// termtext.ErrUnsupportedRenderMode.
func Render(x any, mode termtext.RenderMode, ctx termtext.RenderContext) (string, error) {
	switch mode {
	case termtext.Content:
		if r, ok := x.(contentRenderer); ok {
			return r.Content(), nil
		}
	case termtext.ANSI:
		if r, ok := x.(ansiRenderer); ok {
			return r.RenderANSI(ctx), nil
		}
	case termtext.Debug:
		if r, ok := x.(debugRenderer); ok {
			return r.Dump(), nil
		}
	case termtext.HTML:
		if p, ok := x.(styled.LineProvider); ok {
			var sb strings.Builder
			err := Output(p, &sb, &Config{Render: ctx}, NewHTML())
			return sb.String(), err
		}
	}
	return "", fmt.Errorf("%w: mode %v for type %T", termtext.ErrUnsupportedRenderMode, mode, x)
}

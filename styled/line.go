package styled

import (
	"iter"
	"strings"

	"github.com/npillmayer/termtext"
	"github.com/npillmayer/termtext/style"
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

// LineProvider is implemented by everything which materializes as a sequence
// of styled lines.
type LineProvider interface {
	Lines() []Line
}

// Line is a sequence of spans, rendered as one row of terminal output.
// No two adjacent spans of a line share the same effective style.
//
// The zero Line is the empty line.
type Line struct {
	runs  []Span // adjacent runs differ in own or effective style
	spans []Span // runs merged by effective style
	width int
}

// NewLine creates a line from spans, merging adjacent spans with equal
// effective styles.
func NewLine(spans ...Span) Line {
	return Line{}.Append(spans...)
}

// BlankLine creates a line of width pad characters, below a parent holder.
// It is empty for width ≤ 0.
func BlankLine(parent style.Holder, width int, pad rune) Line {
	if width <= 0 {
		return Line{}
	}
	s, _ := NewSpanWithParent(parent, style.Empty(), strings.Repeat(string(pad), width))
	return NewLine(s)
}

// Append returns a new line with spans appended. A span with the same
// effective style as its predecessor is merged into it; the merged span keeps
// the style and parent of the predecessor.
//
// Spans differing in their own styles are remembered separately, as a
// different parent may separate their effective styles again (see
// WithParent).
func (l Line) Append(spans ...Span) Line {
	runs := make([]Span, len(l.runs), len(l.runs)+len(spans))
	copy(runs, l.runs)
	merged := make([]Span, len(l.spans), len(l.spans)+len(spans))
	copy(merged, l.spans)
	w := l.width
	for _, s := range spans {
		if s.width == 0 && s.content == "" {
			continue
		}
		w += s.width
		runs = appendMerging(runs, s, func(last Span) bool {
			return last.style == s.style && last.open == s.open
		})
		merged = appendMerging(merged, s, func(last Span) bool {
			return last.open == s.open
		})
	}
	return Line{runs: runs, spans: merged, width: w}
}

func appendMerging(spans []Span, s Span, mergeable func(Span) bool) []Span {
	if n := len(spans); n > 0 && mergeable(spans[n-1]) {
		spans[n-1].content += s.content
		spans[n-1].width += s.width
		return spans
	}
	return append(spans, s)
}

// Concat returns a new line with the spans of other lines appended.
func (l Line) Concat(others ...Line) Line {
	for _, o := range others {
		l = l.Append(o.runs...)
	}
	return l
}

// Spans returns the spans of l.
func (l Line) Spans() []Span {
	spans := make([]Span, len(l.spans))
	copy(spans, l.spans)
	return spans
}

// Width returns the number of characters of l.
func (l Line) Width() int {
	return l.width
}

// IsEmpty is true for lines without spans.
func (l Line) IsEmpty() bool {
	return len(l.spans) == 0
}

// Lines is part of interface LineProvider.
func (l Line) Lines() []Line {
	return []Line{l}
}

// Content returns the text of l without any styling.
func (l Line) Content() string {
	var sb strings.Builder
	for _, s := range l.spans {
		sb.WriteString(s.content)
	}
	return sb.String()
}

// WithParent returns a copy of l with every span moved below a parent holder.
// Spans are merged again, as effective styles may have changed.
func (l Line) WithParent(parent style.Holder) Line {
	runs := make([]Span, len(l.runs))
	for i, s := range l.runs {
		runs[i] = s.WithParent(parent)
	}
	return NewLine(runs...)
}

// SubLine cuts the characters [from,to) out of l. The result has width
// max(0, min(to,w) − max(from,0)) for a line of width w.
func (l Line) SubLine(from, to int) Line {
	from, to = max(from, 0), min(to, l.width)
	if from >= to {
		return Line{}
	}
	var sub Line
	pos := 0
	for _, s := range l.runs {
		if pos >= to {
			break
		}
		if pos+s.width > from {
			if cut, ok := s.SubSpan(from-pos, to-pos); ok {
				sub = sub.Append(cut)
			}
		}
		pos += s.width
	}
	return sub
}

// Runs iterates over the spans of l, yielding content and effective style.
func (l Line) Runs() iter.Seq2[string, style.Style] {
	return func(yield func(string, style.Style) bool) {
		for _, s := range l.spans {
			if !yield(s.content, s.open) {
				return
			}
		}
	}
}

// SpanStyles returns the own styles of the spans of l.
func (l Line) SpanStyles() []style.Style {
	styles := make([]style.Style, len(l.spans))
	for i, s := range l.spans {
		styles[i] = s.style
	}
	return styles
}

// SpanStylesOpen returns the effective styles of the spans of l.
func (l Line) SpanStylesOpen() []style.Style {
	styles := make([]style.Style, len(l.spans))
	for i, s := range l.spans {
		styles[i] = s.open
	}
	return styles
}

var resetAllSeq = style.ResetAllStyle().Render()

// RenderANSI renders l with SGR escape sequences.
//
// With ctx.SiblingStylesSquash set, only the difference to the previous span's
// style is emitted before a span, and the line ends with the difference back
// to the unstyled state. Without it, every span is enclosed in its full open
// and close sequences.
func (l Line) RenderANSI(ctx termtext.RenderContext) string {
	var sb strings.Builder
	if ctx.LinePrefixResetAll {
		sb.WriteString(resetAllSeq)
	}
	if ctx.SiblingStylesSquash {
		prev := style.Empty()
		for _, s := range l.spans {
			sb.WriteString(style.Diff(s.open, prev).Render())
			sb.WriteString(s.content)
			prev = s.open
		}
		sb.WriteString(style.Diff(style.Empty(), prev).Render())
	} else {
		for _, s := range l.spans {
			sb.WriteString(s.open.Render())
			sb.WriteString(s.content)
			sb.WriteString(s.open.Close().Render())
		}
	}
	if ctx.LineSuffixResetAll {
		sb.WriteString(resetAllSeq)
	}
	return sb.String()
}

// Dump returns a debug representation of l, showing span boundaries and
// effective styles.
func (l Line) Dump() string {
	var sb strings.Builder
	sb.WriteString("line[")
	for i, s := range l.spans {
		if i > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(s.Dump())
	}
	sb.WriteString("]")
	return sb.String()
}

func (l Line) String() string {
	return l.Dump()
}

package styled

import (
	"strings"

	"github.com/npillmayer/termtext"
	"github.com/npillmayer/termtext/style"
)

// TextBuilder is for building styled text from runs of styled content.
type TextBuilder struct {
	lines   [][]Span
	current []Span
	outer   style.Style
	text    *Text
	done    bool
}

// NewTextBuilder creates a new and empty builder for styled.Text.
func NewTextBuilder() *TextBuilder {
	return &TextBuilder{}
}

// SetOuterStyle sets a style for the text as a whole.
func (b *TextBuilder) SetOuterStyle(st style.Style) error {
	if b.done {
		return termtext.ErrTextCompleted
	}
	b.outer = st
	return nil
}

// Append appends a run of content with a style at the end of the current
// line. Line breaks within content start new lines.
// Empty content is silently skipped.
func (b *TextBuilder) Append(content string, st style.Style) error {
	if b.done {
		return termtext.ErrTextCompleted
	}
	for i, part := range strings.Split(content, "\n") {
		if i > 0 {
			b.newline()
		}
		part = strings.TrimSuffix(part, "\r")
		if part == "" {
			continue
		}
		s, err := NewSpan(st, part)
		if err != nil {
			return err
		}
		b.current = append(b.current, s)
	}
	return nil
}

// Newline ends the current line.
func (b *TextBuilder) Newline() error {
	if b.done {
		return termtext.ErrTextCompleted
	}
	b.newline()
	return nil
}

func (b *TextBuilder) newline() {
	b.lines = append(b.lines, b.current)
	b.current = nil
}

// Text returns the styled text which this builder is holding up to now.
// It is illegal to continue adding fragments after `Text` has been called,
// but `Text` may be called multiple times.
func (b *TextBuilder) Text() *Text {
	if b.done {
		return b.text
	}
	b.done = true
	lines := make([]Line, 0, len(b.lines)+1)
	for _, spans := range append(b.lines, b.current) {
		lines = append(lines, NewLine(spans...))
	}
	b.text = NewText(b.outer, lines...)
	tracer().Debugf("text builder: completed text with %d lines", len(lines))
	b.lines, b.current = nil, nil
	return b.text
}

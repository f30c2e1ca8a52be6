package styled

import (
	"strings"

	"github.com/npillmayer/termtext"
	"github.com/npillmayer/termtext/style"
)

// --- Styled Text -----------------------------------------------------------

// Text is a sequence of styled lines with an optional outer style. A Text is
// the parent holder of its spans; the outer style therefore cascades into
// every span.
//
// Texts are immutable once built, see TextBuilder.
type Text struct {
	lines []Line
	outer style.Style
}

// NewText creates a text from lines. The spans of the lines are moved below
// the new text.
func NewText(outer style.Style, lines ...Line) *Text {
	t := &Text{outer: outer, lines: make([]Line, len(lines))}
	for i, l := range lines {
		t.lines[i] = l.WithParent(t)
	}
	return t
}

// TextFromString creates an unstyled text, splitting s at line breaks.
func TextFromString(s string) *Text {
	b := NewTextBuilder()
	_ = b.Append(s, style.Empty())
	return b.Text()
}

// Parent is part of interface style.Holder. Texts are top-level holders;
// to place a text below another holder use a frame, see Frame.
func (t *Text) Parent() style.Holder {
	return nil
}

// OwnStyle is part of interface style.Holder.
func (t *Text) OwnStyle() (style.Style, bool) {
	return t.outer, !t.outer.IsEmpty()
}

// OuterStyle returns the style applied to the whole text.
func (t *Text) OuterStyle() style.Style {
	return t.outer
}

// WithStyle returns a copy of t with another outer style.
func (t *Text) WithStyle(outer style.Style) *Text {
	return NewText(outer, t.lines...)
}

// Frame returns the lines of t, moved below a new holder which carries the
// outer style of t and has parent as its parent.
func (t *Text) Frame(parent style.Holder) []Line {
	frame := style.NewNode(parent, t.outer)
	lines := make([]Line, len(t.lines))
	for i, l := range t.lines {
		lines[i] = l.WithParent(frame)
	}
	return lines
}

// Height returns the number of lines of t.
func (t *Text) Height() int {
	return len(t.lines)
}

// Width returns the width of the widest line of t.
func (t *Text) Width() int {
	w := 0
	for _, l := range t.lines {
		w = max(w, l.Width())
	}
	return w
}

// LineAt returns line number i, or an empty line if i is out of range.
func (t *Text) LineAt(i int) Line {
	if i < 0 || i >= len(t.lines) {
		return Line{}
	}
	return t.lines[i]
}

// LineWidthAt returns the width of line number i, or 0 if i is out of range.
func (t *Text) LineWidthAt(i int) int {
	return t.LineAt(i).Width()
}

// Lines is part of interface LineProvider.
func (t *Text) Lines() []Line {
	lines := make([]Line, len(t.lines))
	copy(lines, t.lines)
	return lines
}

// Content returns the text without any styling, lines separated by '\n'.
func (t *Text) Content() string {
	return joinLines(t.lines, Line.Content)
}

// RenderANSI renders the lines of t with SGR escape sequences, separated
// by '\n'.
func (t *Text) RenderANSI(ctx termtext.RenderContext) string {
	return joinLines(t.lines, func(l Line) string {
		return l.RenderANSI(ctx)
	})
}

// Dump returns a debug representation of t, one line per line.
func (t *Text) Dump() string {
	return "text" + t.outer.Dump() + "\n" + joinLines(t.lines, Line.Dump)
}

// SpanStyles returns the own styles of all spans of t.
func (t *Text) SpanStyles() []style.Style {
	var styles []style.Style
	for _, l := range t.lines {
		styles = append(styles, l.SpanStyles()...)
	}
	return styles
}

// SpanStylesOpen returns the effective styles of all spans of t.
func (t *Text) SpanStylesOpen() []style.Style {
	var styles []style.Style
	for _, l := range t.lines {
		styles = append(styles, l.SpanStylesOpen()...)
	}
	return styles
}

func joinLines(lines []Line, f func(Line) string) string {
	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(f(l))
	}
	return sb.String()
}

var _ style.Holder = &Text{}
var _ LineProvider = &Text{}

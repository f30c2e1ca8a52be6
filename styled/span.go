package styled

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/termtext"
	"github.com/npillmayer/termtext/style"
	"github.com/npillmayer/uax/grapheme"
)

var setupGraphemes sync.Once

// graphemes splits s into user-perceived characters.
func graphemes(s string) grapheme.String {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return grapheme.StringFromString(s)
}

// CharCount returns the number of user-perceived characters of s.
func CharCount(s string) int {
	if s == "" {
		return 0
	}
	return graphemes(s).Len()
}

// --- Span ------------------------------------------------------------------

// Span is a non-empty run of text with a single style. Spans are values;
// all operations return new spans.
//
// A span is a style.Holder: its effective style is its own style cascaded
// over the styles of its parent chain.
type Span struct {
	content string
	style   style.Style
	parent  style.Holder
	open    style.Style // cached effective style
	width   int
}

// NewSpan creates a span. Empty content is an error (ErrEmptySpan).
func NewSpan(st style.Style, content string) (Span, error) {
	return NewSpanWithParent(nil, st, content)
}

// NewSpanWithParent creates a span below a parent holder, which may be nil.
func NewSpanWithParent(parent style.Holder, st style.Style, content string) (Span, error) {
	if content == "" {
		return Span{}, termtext.ErrEmptySpan
	}
	s := Span{
		content: content,
		style:   st,
		width:   CharCount(content),
	}
	return s.WithParent(parent), nil
}

// PlainSpan creates a span without style. It panics on empty content.
func PlainSpan(content string) Span {
	s, err := NewSpan(style.Empty(), content)
	if err != nil {
		panic(err)
	}
	return s
}

// Content returns the text of s.
func (s Span) Content() string {
	return s.content
}

// Width returns the number of characters of s.
func (s Span) Width() int {
	return s.width
}

// Style returns the own style of s.
func (s Span) Style() style.Style {
	return s.style
}

// Parent is part of interface style.Holder.
func (s Span) Parent() style.Holder {
	return s.parent
}

// OwnStyle is part of interface style.Holder.
func (s Span) OwnStyle() (style.Style, bool) {
	return s.style, !s.style.IsEmpty()
}

// OpenStyle returns the effective style of s.
func (s Span) OpenStyle() style.Style {
	return s.open
}

// WithParent returns a copy of s below another parent holder.
func (s Span) WithParent(parent style.Holder) Span {
	s.parent = parent
	s.open = style.OpenStyle(s)
	return s
}

// SubSpan cuts the characters [from,to) out of s. The range is clipped to the
// span; if nothing remains, the second result is false.
func (s Span) SubSpan(from, to int) (Span, bool) {
	from, to = max(from, 0), min(to, s.width)
	if from >= to {
		return Span{}, false
	}
	if from == 0 && to == s.width {
		return s, true
	}
	gstr := graphemes(s.content)
	var sb strings.Builder
	for i := from; i < to; i++ {
		sb.WriteString(gstr.Nth(i))
	}
	sub := s
	sub.content = sb.String()
	sub.width = to - from
	return sub, true
}

// Dump returns a debug representation of s.
func (s Span) Dump() string {
	return fmt.Sprintf("%q%s", s.content, s.open.Dump())
}

func (s Span) String() string {
	return s.Dump()
}

var _ style.Holder = Span{}

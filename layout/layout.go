package layout

import (
	"fmt"
	"strings"

	"github.com/npillmayer/termtext"
	"github.com/npillmayer/termtext/style"
	"github.com/npillmayer/termtext/styled"
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

// Kind is the variant of a layout node.
type Kind int8

// Layout kinds.
const (
	KindEmpty      Kind = iota // no cells at all
	KindBlank                  // filled with a single padding glyph
	KindBlock                  // lines of a block
	KindHorizontal             // children tiled left to right
	KindVertical               // children stacked top to bottom
)

var kindNames = [...]string{"Empty", "Blank", "Block", "Horizontal", "Vertical"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Layout is a rectangular area of styled terminal cells. Layouts are
// immutable once built. Each layout is a style.Holder: its style cascades into
// all of its children.
type Layout struct {
	kind     Kind
	name     string  // role in a border frame, for dumps
	parent   *Layout // non-owning
	style    style.Style
	pad      rune
	height   int
	width    int
	block    *blockSpec    // KindBlock
	lines    []styled.Line // KindBlock, materialized from block
	children []*Layout     // KindHorizontal, KindVertical
}

var emptyLayout = &Layout{kind: KindEmpty, name: "Empty"}

// Empty returns the shared layout without any cells.
func Empty() *Layout {
	return emptyLayout
}

func newNode(kind Kind, parent *Layout) *Layout {
	return &Layout{kind: kind, parent: parent, pad: ' '}
}

// newBlank creates a blank layout, or the empty layout for non-positive sizes.
func newBlank(parent *Layout, height, width int, pad rune, name string) *Layout {
	if height <= 0 || width <= 0 {
		return emptyLayout
	}
	l := newNode(KindBlank, parent)
	l.height, l.width, l.pad, l.name = height, width, pad, name
	return l
}

// setChildren sets the children of a group node, dropping empty ones, and
// computes its size.
func (l *Layout) setChildren(children ...*Layout) *Layout {
	l.children = l.children[:0]
	l.height, l.width = 0, 0
	for _, c := range children {
		if c.IsEmpty() {
			continue
		}
		l.children = append(l.children, c)
		if l.kind == KindHorizontal {
			l.width += c.width
			l.height = max(l.height, c.height)
		} else {
			l.height += c.height
			l.width = max(l.width, c.width)
		}
	}
	return l
}

// Kind returns the variant of l.
func (l *Layout) Kind() Kind {
	return l.kind
}

// Height returns the number of rows of l.
func (l *Layout) Height() int {
	return l.height
}

// Width returns the number of columns of l.
func (l *Layout) Width() int {
	return l.width
}

// IsEmpty is true for layouts without cells.
func (l *Layout) IsEmpty() bool {
	return l == nil || l.height <= 0 || l.width <= 0
}

// Children returns the child layouts of a group.
func (l *Layout) Children() []*Layout {
	children := make([]*Layout, len(l.children))
	copy(children, l.children)
	return children
}

// Style returns the own style of l.
func (l *Layout) Style() style.Style {
	return l.style
}

// Parent is part of interface style.Holder.
func (l *Layout) Parent() style.Holder {
	if l.parent == nil {
		return nil
	}
	return l.parent
}

// OwnStyle is part of interface style.Holder.
func (l *Layout) OwnStyle() (style.Style, bool) {
	return l.style, !l.style.IsEmpty()
}

// LineAt returns row number row of l. Rows out of range are empty lines.
func (l *Layout) LineAt(row int) styled.Line {
	if l.IsEmpty() || row < 0 || row >= l.height {
		return styled.Line{}
	}
	switch l.kind {
	case KindBlank:
		return styled.BlankLine(l, l.width, l.pad)
	case KindBlock:
		return l.lines[row]
	case KindHorizontal:
		var line styled.Line
		for _, c := range l.children {
			line = line.Concat(c.LineAt(row))
		}
		return line
	case KindVertical:
		for _, c := range l.children {
			if row < c.height {
				return c.LineAt(row)
			}
			row -= c.height
		}
	}
	return styled.Line{}
}

// Lines is part of interface styled.LineProvider.
func (l *Layout) Lines() []styled.Line {
	lines := make([]styled.Line, l.height)
	for i := range lines {
		lines[i] = l.LineAt(i)
	}
	return lines
}

// Content returns the rows of l without styling, separated by '\n'.
func (l *Layout) Content() string {
	return l.join(styled.Line.Content)
}

// RenderANSI returns the rows of l with escape sequences, separated by '\n'.
func (l *Layout) RenderANSI(ctx termtext.RenderContext) string {
	return l.join(func(line styled.Line) string {
		return line.RenderANSI(ctx)
	})
}

func (l *Layout) join(f func(styled.Line) string) string {
	var sb strings.Builder
	for i := 0; i < l.height; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(f(l.LineAt(i)))
	}
	return sb.String()
}

// SpanStylesOpen returns the effective styles of all spans of all rows.
func (l *Layout) SpanStylesOpen() []style.Style {
	var styles []style.Style
	for i := 0; i < l.height; i++ {
		styles = append(styles, l.LineAt(i).SpanStylesOpen()...)
	}
	return styles
}

// String returns a one-line description of l.
func (l *Layout) String() string {
	switch l.kind {
	case KindEmpty:
		return "Empty"
	case KindBlank:
		if l.name != "" {
			return fmt.Sprintf("%s(h:%d;w:%d;'%c')", l.name, l.height, l.width, l.pad)
		}
		return fmt.Sprintf("Blank(h:%d;w:%d)", l.height, l.width)
	case KindBlock:
		return fmt.Sprintf("Block(h:%d;w:%d)", l.height, l.width)
	}
	name := l.kind.String()
	if l.name != "" {
		name = l.name
	}
	return fmt.Sprintf("%s(h:%d;w:%d; %d children)", name, l.height, l.width, len(l.children))
}

// Dump returns an indented tree of the layout nodes below and including l.
func (l *Layout) Dump() string {
	var sb strings.Builder
	l.dump(&sb, 0)
	return sb.String()
}

func (l *Layout) dump(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(l.String())
	if !l.style.IsEmpty() {
		sb.WriteByte(' ')
		sb.WriteString(l.style.Dump())
	}
	sb.WriteByte('\n')
	for _, c := range l.children {
		c.dump(sb, depth+1)
	}
}

// clone copies l and its subtree below a new parent. Lines of blocks are
// materialized again, as effective styles depend on the parent chain.
func (l *Layout) clone(parent *Layout) *Layout {
	if l.IsEmpty() {
		return emptyLayout
	}
	c := *l
	c.parent = parent
	if l.block != nil {
		c.lines = l.block.materialize(&c)
	}
	if l.children != nil {
		c.children = make([]*Layout, len(l.children))
		for i, child := range l.children {
			c.children[i] = child.clone(&c)
		}
	}
	return &c
}

var _ style.Holder = &Layout{}
var _ styled.LineProvider = &Layout{}

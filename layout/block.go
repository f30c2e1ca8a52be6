package layout

import (
	"github.com/npillmayer/termtext"
	"github.com/npillmayer/termtext/style"
	"github.com/npillmayer/termtext/styled"
)

// IndentFunc produces the indent for a line of a block, given the line number.
type IndentFunc func(lineNum int) styled.Line

// blockSpec holds everything needed to materialize the lines of a block.
type blockSpec struct {
	text         *styled.Text
	align        AlignH
	contentWidth int
	leftWidth    int
	rightWidth   int
	left, right  IndentFunc
	pad          rune
}

func (spec *blockSpec) width() int {
	return spec.leftWidth + spec.contentWidth + spec.rightWidth
}

// materialize creates the lines of a block below a layout node. Text lines are
// framed by the outer style of the text; indents and padding belong to the
// node itself.
func (spec *blockSpec) materialize(node *Layout) []styled.Line {
	frame := spec.text.Frame(node)
	lines := make([]styled.Line, len(frame))
	for i, content := range frame {
		line := fitLine(spec.indent(spec.left, i, node), spec.leftWidth, Right, node, spec.pad)
		line = line.Concat(fitLine(content, spec.contentWidth, spec.align, node, spec.pad))
		line = line.Concat(fitLine(spec.indent(spec.right, i, node), spec.rightWidth, Left, node, spec.pad))
		lines[i] = line
	}
	return lines
}

func (spec *blockSpec) indent(f IndentFunc, lineNum int, node *Layout) styled.Line {
	if f == nil {
		return styled.Line{}
	}
	return f(lineNum).WithParent(node)
}

// fitLine aligns a line within width cells, padding it with blanks below
// parent. A line wider than width is cut: left alignment keeps its head,
// right alignment its tail and centering its middle.
func fitLine(line styled.Line, width int, align AlignH, parent style.Holder, pad rune) styled.Line {
	if width <= 0 {
		return styled.Line{}
	}
	w := line.Width()
	if w > width {
		from := 0
		switch align {
		case Right:
			from = w - width
		case Center:
			from = (w - width) / 2
		}
		return line.SubLine(from, from+width)
	}
	lead, trail := align.split(width - w)
	return styled.BlankLine(parent, lead, pad).Concat(line, styled.BlankLine(parent, trail, pad))
}

// --- Block builder ---------------------------------------------------------

// BlockBuilder builds a block layout from a styled text. Every line of the
// text is aligned within the content width, with a left indent before it and
// a right indent after it.
//
// A BlockBuilder is single-use.
type BlockBuilder struct {
	spec   blockSpec
	style  style.Style
	pad    rune
	hasPad bool
	built  bool
}

var _ Builder = &BlockBuilder{}

// NewBlock creates a block builder for a text. By default lines are aligned
// to the left and the content width is the width of the text.
func NewBlock(text *styled.Text) *BlockBuilder {
	if text == nil {
		text = styled.TextFromString("")
	}
	return &BlockBuilder{spec: blockSpec{text: text}}
}

// Align sets the horizontal alignment of the lines.
func (b *BlockBuilder) Align(align AlignH) *BlockBuilder {
	b.spec.align = align
	return b
}

// ContentWidth sets the width available for the text. Longer lines are cut
// according to the alignment. A width ≤ 0 selects the width of the text.
func (b *BlockBuilder) ContentWidth(width int) *BlockBuilder {
	b.spec.contentWidth = width
	return b
}

// LeftIndentWidth sets the width of the left indent.
func (b *BlockBuilder) LeftIndentWidth(width int) *BlockBuilder {
	b.spec.leftWidth = max(0, width)
	return b
}

// LeftIndent sets a producer for left indents. Indents are right-aligned
// within the left indent width.
func (b *BlockBuilder) LeftIndent(f IndentFunc) *BlockBuilder {
	b.spec.left = f
	return b
}

// RightIndentWidth sets the width of the right indent.
func (b *BlockBuilder) RightIndentWidth(width int) *BlockBuilder {
	b.spec.rightWidth = max(0, width)
	return b
}

// RightIndent sets a producer for right indents. Indents are left-aligned
// within the right indent width.
func (b *BlockBuilder) RightIndent(f IndentFunc) *BlockBuilder {
	b.spec.right = f
	return b
}

// Style sets the style of the block.
func (b *BlockBuilder) Style(st style.Style) *BlockBuilder {
	b.style = st
	return b
}

// Padding sets the glyph to fill unused cells with. If unset, it is inherited.
func (b *BlockBuilder) Padding(pad rune) *BlockBuilder {
	b.pad, b.hasPad = pad, true
	return b
}

// Build creates the block layout. Building twice is an error
// (termtext.ErrAlreadyBuilt).
func (b *BlockBuilder) Build() (*Layout, error) {
	return b.build(defaultContext())
}

func (b *BlockBuilder) size(ctx buildContext) (int, int) {
	spec := b.resolved(ctx)
	return spec.text.Height(), spec.width()
}

func (b *BlockBuilder) resolved(ctx buildContext) blockSpec {
	spec := b.spec
	if spec.contentWidth <= 0 {
		spec.contentWidth = spec.text.Width()
	}
	spec.pad = ctx.pad
	if b.hasPad {
		spec.pad = b.pad
	}
	return spec
}

func (b *BlockBuilder) build(ctx buildContext) (*Layout, error) {
	if b.built {
		return emptyLayout, termtext.ErrAlreadyBuilt
	}
	b.built = true
	spec := b.resolved(ctx)
	if spec.text.Height() <= 0 || spec.width() <= 0 {
		return emptyLayout, nil
	}
	node := newNode(KindBlock, ctx.parent)
	node.style = b.style
	node.pad = spec.pad
	node.height, node.width = spec.text.Height(), spec.width()
	node.block = &spec
	node.lines = spec.materialize(node)
	tracer().Debugf("layout: built %s", node)
	return node, nil
}

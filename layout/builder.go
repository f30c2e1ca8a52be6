package layout

import (
	"github.com/npillmayer/termtext"
	"github.com/npillmayer/termtext/style"
)

// Builder is implemented by everything which builds into a layout. A builder
// is single-use: calling Build a second time fails with
// termtext.ErrAlreadyBuilt.
type Builder interface {
	Build() (*Layout, error)
	size(ctx buildContext) (height, width int)
	build(ctx buildContext) (*Layout, error)
}

// buildContext is handed down from parents to children while building.
type buildContext struct {
	parent *Layout
	border Border
	pad    rune
}

func defaultContext() buildContext {
	return buildContext{border: NoBorder, pad: ' '}
}

func (ctx buildContext) below(parent *Layout) buildContext {
	ctx.parent = parent
	return ctx
}

// --- Groups ----------------------------------------------------------------

// GroupBuilder builds a horizontal or vertical group of layouts.
//
// A border set on a group draws an outer frame around it and grid lines
// between its children. Nested groups inherit the border, but draw grid
// lines only.
type GroupBuilder struct {
	kind      Kind
	alignH    AlignH
	alignV    AlignV
	items     []Builder
	style     style.Style
	border    Border
	hasBorder bool
	pad       rune
	hasPad    bool
	built     bool
}

var _ Builder = &GroupBuilder{}

// NewHorizontal creates a builder for children tiled from left to right,
// aligned vertically within the height of the tallest child.
func NewHorizontal(align AlignV) *GroupBuilder {
	return &GroupBuilder{kind: KindHorizontal, alignV: align}
}

// NewVertical creates a builder for children stacked from top to bottom,
// aligned horizontally within the width of the widest child.
func NewVertical(align AlignH) *GroupBuilder {
	return &GroupBuilder{kind: KindVertical, alignH: align}
}

// Append adds children to the group.
func (g *GroupBuilder) Append(items ...Builder) *GroupBuilder {
	g.items = append(g.items, items...)
	return g
}

// Style sets the style of the group, cascading into all of its children.
func (g *GroupBuilder) Style(st style.Style) *GroupBuilder {
	g.style = st
	return g
}

// Border sets the border of the group.
func (g *GroupBuilder) Border(b Border) *GroupBuilder {
	g.border, g.hasBorder = b, true
	return g
}

// Padding sets the glyph to fill unused cells with.
func (g *GroupBuilder) Padding(pad rune) *GroupBuilder {
	g.pad, g.hasPad = pad, true
	return g
}

// Build creates the group layout.
func (g *GroupBuilder) Build() (*Layout, error) {
	return g.build(defaultContext())
}

// derive creates the context for the children of g.
func (g *GroupBuilder) derive(ctx buildContext) buildContext {
	if g.hasBorder {
		ctx.border = g.border
	}
	if g.hasPad {
		ctx.pad = g.pad
	}
	return ctx
}

func (g *GroupBuilder) framed(ctx buildContext) bool {
	return g.hasBorder && !ctx.border.IsNone()
}

type extent struct{ height, width int }

// sizedItems returns the children with non-empty extent.
func (g *GroupBuilder) sizedItems(ctx buildContext) ([]Builder, []extent) {
	var items []Builder
	var sizes []extent
	for _, item := range g.items {
		h, w := item.size(ctx)
		if h <= 0 || w <= 0 {
			continue
		}
		items = append(items, item)
		sizes = append(sizes, extent{h, w})
	}
	return items, sizes
}

func (g *GroupBuilder) size(parentCtx buildContext) (int, int) {
	ctx := g.derive(parentCtx)
	_, sizes := g.sizedItems(ctx)
	if len(sizes) == 0 {
		return 0, 0
	}
	grid := ctx.border.Width() * (len(sizes) - 1)
	frame := 0
	if g.framed(ctx) {
		frame = 2 * ctx.border.Width()
	}
	sum, maxExt := extent{}, extent{}
	for _, s := range sizes {
		sum.height += s.height
		sum.width += s.width
		maxExt.height = max(maxExt.height, s.height)
		maxExt.width = max(maxExt.width, s.width)
	}
	if g.kind == KindHorizontal {
		return maxExt.height + frame, sum.width + grid + frame
	}
	return sum.height + grid + frame, maxExt.width + frame
}

func (g *GroupBuilder) build(parentCtx buildContext) (*Layout, error) {
	if g.built {
		return emptyLayout, termtext.ErrAlreadyBuilt
	}
	g.built = true
	ctx := g.derive(parentCtx)
	items, sizes := g.sizedItems(ctx)
	if len(items) == 0 {
		return emptyLayout, nil
	}
	node := newNode(g.kind, parentCtx.parent)
	node.style = g.style
	node.pad = ctx.pad
	var err error
	if g.kind == KindHorizontal {
		err = g.buildHorizontal(node, ctx, items, sizes)
	} else {
		err = g.buildVertical(node, ctx, items, sizes)
	}
	if err != nil {
		return emptyLayout, err
	}
	tracer().Debugf("layout: built %s", node)
	return node, nil
}

func (g *GroupBuilder) buildHorizontal(node *Layout, ctx buildContext, items []Builder, sizes []extent) error {
	b, framed := ctx.border, g.framed(ctx)
	height := 0
	for _, s := range sizes {
		height = max(height, s.height)
	}
	body := node
	if framed {
		node.kind = KindVertical
		body = newNode(KindHorizontal, node)
	}
	var children []*Layout
	var widths []int
	for i, item := range items {
		child, err := alignVertically(item, g.alignV, height, sizes[i], ctx.below(body))
		if err != nil {
			return err
		}
		children = append(children, child)
		widths = append(widths, child.width)
	}
	first, last := children[0], children[len(children)-1]
	var cells []*Layout
	if framed {
		j := joints(height, nil, gridRows(first, 0), 0, b.LeftLink(), 0)
		cells = append(cells, jointedLine(body, KindVertical, height, b.LeftBar(), j, "LeftBar"))
	}
	for i, child := range children {
		if i > 0 && !b.IsNone() {
			prev := children[i-1]
			j := joints(height, gridRows(prev, prev.width-1), gridRows(child, 0),
				b.RightLink(), b.LeftLink(), b.Cross())
			cells = append(cells, jointedLine(body, KindVertical, height, b.CenterBar(), j, "CenterBar"))
		}
		cells = append(cells, child)
	}
	if framed {
		j := joints(height, gridRows(last, last.width-1), nil, b.RightLink(), 0, 0)
		cells = append(cells, jointedLine(body, KindVertical, height, b.RightBar(), j, "RightBar"))
	}
	body.setChildren(cells...)
	if !framed {
		return nil
	}
	top, bottom := map[int]bool{}, map[int]bool{}
	x := 0
	for i, child := range children {
		if i > 0 {
			x++
		}
		shift(gridColumns(child, 0), x, top)
		shift(gridColumns(child, child.height-1), x, bottom)
		x += child.width
	}
	node.setChildren(
		frameRow(node, widths, b.TopLeft(), b.TopBar(), b.TopLink(), b.TopRight(),
			joints(x, nil, top, 0, b.TopLink(), 0), "Top"),
		body,
		frameRow(node, widths, b.BottomLeft(), b.BottomBar(), b.BottomLink(), b.BottomRight(),
			joints(x, bottom, nil, b.BottomLink(), 0, 0), "Bottom"),
	)
	return nil
}

func (g *GroupBuilder) buildVertical(node *Layout, ctx buildContext, items []Builder, sizes []extent) error {
	b, framed := ctx.border, g.framed(ctx)
	width := 0
	for _, s := range sizes {
		width = max(width, s.width)
	}
	var children, frames []*Layout
	for i, item := range items {
		parent := node
		if framed {
			parent = newNode(KindHorizontal, node)
			frames = append(frames, parent)
		}
		child, err := alignHorizontally(item, g.alignH, width, sizes[i], ctx.below(parent))
		if err != nil {
			return err
		}
		children = append(children, child)
	}
	first, last := children[0], children[len(children)-1]
	var rows []*Layout
	if framed {
		j := joints(width, nil, gridColumns(first, 0), 0, b.TopLink(), 0)
		rows = append(rows, frameRow(node, []int{width}, b.TopLeft(), b.TopBar(), 0, b.TopRight(), j, "Top"))
	}
	for i, child := range children {
		if i > 0 && !b.IsNone() {
			prev := children[i-1]
			j := joints(width, gridColumns(prev, prev.height-1), gridColumns(child, 0),
				b.BottomLink(), b.TopLink(), b.Cross())
			if framed {
				rows = append(rows, frameRow(node, []int{width}, b.LeftLink(), b.MiddleBar(), 0, b.RightLink(), j, "Separator"))
			} else {
				rows = append(rows, jointedLine(node, KindHorizontal, width, b.MiddleBar(), j, "MiddleBar"))
			}
		}
		if !framed {
			rows = append(rows, child)
			continue
		}
		row, h := frames[i], child.height
		rows = append(rows, row.setChildren(
			jointedLine(row, KindVertical, h, b.LeftBar(),
				joints(h, nil, gridRows(child, 0), 0, b.LeftLink(), 0), "LeftBar"),
			child,
			jointedLine(row, KindVertical, h, b.RightBar(),
				joints(h, gridRows(child, width-1), nil, b.RightLink(), 0, 0), "RightBar"),
		))
	}
	if framed {
		j := joints(width, gridColumns(last, last.height-1), nil, b.BottomLink(), 0, 0)
		rows = append(rows, frameRow(node, []int{width}, b.BottomLeft(), b.BottomBar(), 0, b.BottomRight(), j, "Bottom"))
	}
	node.setChildren(rows...)
	return nil
}

// frameRow creates a horizontal frame line: a left glyph, bars of the given
// widths joined by link glyphs, and a right glyph. Joints are positions
// within the line between the left and right glyph.
func frameRow(parent *Layout, widths []int, left, fill, link, right rune, j map[int]rune, name string) *Layout {
	row := newNode(KindHorizontal, parent)
	row.name = name
	cells := []*Layout{newBlank(row, 1, 1, left, name+"Left")}
	x := 0
	for i, w := range widths {
		if i > 0 {
			cells = append(cells, newBlank(row, 1, 1, link, name+"Link"))
			x++
		}
		cells = append(cells, segments(row, KindHorizontal, x, w, fill, j, name+"Bar")...)
		x += w
	}
	cells = append(cells, newBlank(row, 1, 1, right, name+"Right"))
	return row.setChildren(cells...)
}

// alignVertically builds item and pads it to height rows.
func alignVertically(item Builder, align AlignV, height int, size extent, ctx buildContext) (*Layout, error) {
	if size.height >= height {
		return item.build(ctx)
	}
	wrapper := newNode(KindVertical, ctx.parent)
	child, err := item.build(ctx.below(wrapper))
	if err != nil {
		return emptyLayout, err
	}
	top, bottom := align.split(height - size.height)
	return wrapper.setChildren(
		newBlank(wrapper, top, size.width, ctx.pad, ""),
		child,
		newBlank(wrapper, bottom, size.width, ctx.pad, ""),
	), nil
}

// alignHorizontally builds item and pads it to width columns.
func alignHorizontally(item Builder, align AlignH, width int, size extent, ctx buildContext) (*Layout, error) {
	if size.width >= width {
		return item.build(ctx)
	}
	wrapper := newNode(KindHorizontal, ctx.parent)
	child, err := item.build(ctx.below(wrapper))
	if err != nil {
		return emptyLayout, err
	}
	left, right := align.split(width - size.width)
	return wrapper.setChildren(
		newBlank(wrapper, size.height, left, ctx.pad, ""),
		child,
		newBlank(wrapper, size.height, right, ctx.pad, ""),
	), nil
}

// --- Built layouts as builders ---------------------------------------------

type layoutBuilder struct {
	layout *Layout
}

// FromLayout wraps a built layout for use in a group. The layout may be used
// any number of times; every use gets its own copy below its new parent.
func FromLayout(l *Layout) Builder {
	return layoutBuilder{layout: l}
}

func (lb layoutBuilder) Build() (*Layout, error) {
	return lb.layout.clone(nil), nil
}

func (lb layoutBuilder) size(buildContext) (int, int) {
	if lb.layout.IsEmpty() {
		return 0, 0
	}
	return lb.layout.height, lb.layout.width
}

func (lb layoutBuilder) build(ctx buildContext) (*Layout, error) {
	return lb.layout.clone(ctx.parent), nil
}

// Horizontal tiles built layouts from left to right.
func Horizontal(align AlignV, layouts ...*Layout) *Layout {
	return group(NewHorizontal(align), layouts)
}

// Vertical stacks built layouts from top to bottom.
func Vertical(align AlignH, layouts ...*Layout) *Layout {
	return group(NewVertical(align), layouts)
}

func group(g *GroupBuilder, layouts []*Layout) *Layout {
	for _, l := range layouts {
		g.Append(FromLayout(l))
	}
	l, err := g.Build()
	if err != nil { // cannot happen for a fresh builder of built layouts
		tracer().Errorf("layout: %v", err)
	}
	return l
}

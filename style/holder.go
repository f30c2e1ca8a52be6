package style

// Holder is anything carrying an (optional) own style and an (optional)
// parent. Parents are looked up, never owned: a holder must not be kept alive
// by its children.
//
// Implementations must return a literal nil from Parent if there is no
// parent, not a typed nil pointer.
type Holder interface {
	Parent() Holder
	OwnStyle() (Style, bool)
}

// Chain returns the styles along the parent chain of h, from the topmost
// ancestor down to h itself. Absent and empty styles are skipped.
func Chain(h Holder) []Style {
	var chain []Style
	for ; h != nil; h = h.Parent() {
		if st, ok := h.OwnStyle(); ok && !st.IsEmpty() {
			chain = append(chain, st)
		}
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// ParentStyle is the cascaded style of the ancestors of h.
func ParentStyle(h Holder) Style {
	if h == nil {
		return Empty()
	}
	return OpenStyle(h.Parent())
}

// OpenStyle is the effective style of h: the styles of its ancestors and its
// own style merged top-down, nearer holders winning per family.
func OpenStyle(h Holder) Style {
	open := Empty()
	for _, st := range Chain(h) {
		open = open.Merge(st)
	}
	return open
}

// CloseStyle is the style which undoes the effective style of h, i.e. the
// reset of every family present in OpenStyle(h). It never resets blindly.
func CloseStyle(h Holder) Style {
	return OpenStyle(h).Close()
}

// --- Nodes -----------------------------------------------------------------

// Node is a plain Holder. It is used to insert frames into a style cascade,
// e.g. for the outer style of a text.
type Node struct {
	parent Holder
	style  Style
}

// NewNode creates a holder with a given parent (which may be nil) and style.
func NewNode(parent Holder, st Style) *Node {
	return &Node{parent: parent, style: st}
}

// Parent is part of interface Holder.
func (n *Node) Parent() Holder {
	if n == nil || n.parent == nil {
		return nil
	}
	return n.parent
}

// OwnStyle is part of interface Holder.
func (n *Node) OwnStyle() (Style, bool) {
	if n == nil {
		return Empty(), false
	}
	return n.style, !n.style.IsEmpty()
}

var _ Holder = &Node{}

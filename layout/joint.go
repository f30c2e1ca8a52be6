package layout

import "strings"

// Nested groups inheriting a border draw grid lines which end on the frame or
// grid lines of an enclosing group. The cells where they meet get link glyphs.

// cellName returns the name of the blank covering cell (row, col) of l. It is
// "" for text cells and cells outside of l.
func cellName(l *Layout, row, col int) string {
	for l != nil && !l.IsEmpty() {
		if row < 0 || col < 0 || row >= l.height || col >= l.width {
			return ""
		}
		switch l.kind {
		case KindBlank:
			return l.name
		case KindHorizontal:
			var next *Layout
			for _, c := range l.children {
				if col < c.width {
					next = c
					break
				}
				col -= c.width
			}
			l = next
		case KindVertical:
			var next *Layout
			for _, c := range l.children {
				if row < c.height {
					next = c
					break
				}
				row -= c.height
			}
			l = next
		default:
			return ""
		}
	}
	return ""
}

func isVerticalGrid(name string) bool   { return strings.HasPrefix(name, "CenterBar") }
func isHorizontalGrid(name string) bool { return strings.HasPrefix(name, "MiddleBar") }

// gridColumns returns the columns of l where a vertical grid line crosses row.
func gridColumns(l *Layout, row int) map[int]bool {
	cols := map[int]bool{}
	for c := 0; c < l.width; c++ {
		if isVerticalGrid(cellName(l, row, c)) {
			cols[c] = true
		}
	}
	return cols
}

// gridRows returns the rows of l where a horizontal grid line crosses col.
func gridRows(l *Layout, col int) map[int]bool {
	rows := map[int]bool{}
	for r := 0; r < l.height; r++ {
		if isHorizontalGrid(cellName(l, r, col)) {
			rows[r] = true
		}
	}
	return rows
}

// joints picks the glyphs for a line of length n met by grid lines from
// before (above or left), from after (below or right), or from both sides.
func joints(n int, before, after map[int]bool, fromBefore, fromAfter, both rune) map[int]rune {
	j := map[int]rune{}
	for i := 0; i < n; i++ {
		switch {
		case before[i] && after[i]:
			j[i] = both
		case before[i]:
			j[i] = fromBefore
		case after[i]:
			j[i] = fromAfter
		}
	}
	return j
}

// shift moves the positions of cells by offset.
func shift(cells map[int]bool, offset int, into map[int]bool) {
	for i := range cells {
		into[i+offset] = true
	}
}

// jointedLine creates a grid or frame line of length n. A KindHorizontal line
// is a single row, a KindVertical line a single column.
func jointedLine(parent *Layout, kind Kind, n int, fill rune, j map[int]rune, name string) *Layout {
	if len(j) == 0 {
		return segment(parent, kind, n, fill, name)
	}
	line := newNode(kind, parent)
	line.name = name
	return line.setChildren(segments(line, kind, 0, n, fill, j, name)...)
}

// segments splits a line of length n at the joints found at offset+i.
func segments(parent *Layout, kind Kind, offset, n int, fill rune, j map[int]rune, name string) []*Layout {
	var cells []*Layout
	start := 0
	for i := 0; i < n; i++ {
		g, ok := j[offset+i]
		if !ok {
			continue
		}
		cells = append(cells,
			segment(parent, kind, i-start, fill, name),
			segment(parent, kind, 1, g, name+"Joint"))
		start = i + 1
	}
	return append(cells, segment(parent, kind, n-start, fill, name))
}

func segment(parent *Layout, kind Kind, n int, fill rune, name string) *Layout {
	if kind == KindHorizontal {
		return newBlank(parent, 1, n, fill, name)
	}
	return newBlank(parent, n, 1, fill, name)
}

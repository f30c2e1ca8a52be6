package layout

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/termtext"
)

// Border is a set of box-drawing glyphs. A border is defined by eight rows of
// four glyphs each:
//
//	┌─┬┐ top
//	│ ││ head
//	├─┼┤ head row
//	│ ││ mid
//	├─┼┤ row
//	├─┼┤ foot row
//	│ ││ foot
//	└─┴┘ bottom
//
// Within a row, glyph 0 is the left edge, glyph 1 the horizontal fill, glyph 2
// the inner connector and glyph 3 the right edge.
//
// The zero border (see NoBorder) has no glyphs and zero width.
type Border struct {
	name  string
	rows  [8][4]rune
	ascii bool
	valid bool
}

// Row indices of a border definition.
const (
	RowTop = iota
	RowHead
	RowHeadRow
	RowMid
	RowRow
	RowFootRow
	RowFoot
	RowBottom
)

// NewBorder creates a border from exactly eight rows of exactly four glyphs.
// A malformed definition results in termtext.ErrMalformedBorder.
func NewBorder(name string, rows []string, ascii bool) (Border, error) {
	if len(rows) != 8 {
		return Border{}, fmt.Errorf("%w: border %q has %d rows, must have 8",
			termtext.ErrMalformedBorder, name, len(rows))
	}
	b := Border{name: name, ascii: ascii, valid: true}
	for i, row := range rows {
		if n := utf8.RuneCountInString(row); n != 4 {
			return Border{}, fmt.Errorf("%w: row %d of border %q has %d glyphs, must have 4",
				termtext.ErrMalformedBorder, i, name, n)
		}
		j := 0
		for _, r := range row {
			b.rows[i][j] = r
			j++
		}
	}
	return b, nil
}

func mustBorder(name string, ascii bool, rows ...string) Border {
	b, err := NewBorder(name, rows, ascii)
	if err != nil {
		panic(err)
	}
	return b
}

// NoBorder is the absence of any inner and outer borders.
var NoBorder = Border{name: "none"}

// Predefined borders.
var (
	ASCII = mustBorder("ascii", true,
		"+--+", "| ||", "|-+|", "| ||", "|-+|", "|-+|", "| ||", "+--+")
	ASCII2 = mustBorder("ascii2", true,
		"+-++", "| ||", "+-++", "| ||", "+-++", "+-++", "| ||", "+-++")
	ASCIIDoubleHead = mustBorder("ascii_double_head", true,
		"+-++", "| ||", "+=++", "| ||", "+-++", "+-++", "| ||", "+-++")
	Square = mustBorder("square", false,
		"┌─┬┐", "│ ││", "├─┼┤", "│ ││", "├─┼┤", "├─┼┤", "│ ││", "└─┴┘")
	SquareDoubleHead = mustBorder("square_double_head", false,
		"┌─┬┐", "│ ││", "╞═╪╡", "│ ││", "├─┼┤", "├─┼┤", "│ ││", "└─┴┘")
	Minimal = mustBorder("minimal", false,
		"  ╷ ", "  │ ", "╶─┼╴", "  │ ", "╶─┼╴", "╶─┼╴", "  │ ", "  ╵ ")
	MinimalHeavyHead = mustBorder("minimal_heavy_head", false,
		"  ╷ ", "  │ ", "╺━┿╸", "  │ ", "╶─┼╴", "╶─┼╴", "  │ ", "  ╵ ")
	MinimalDoubleHead = mustBorder("minimal_double_head", false,
		"  ╷ ", "  │ ", " ═╪ ", "  │ ", " ─┼ ", " ─┼ ", "  │ ", "  ╵ ")
	Simple = mustBorder("simple", false,
		"    ", "    ", " ── ", "    ", "    ", " ── ", "    ", "    ")
	SimpleHead = mustBorder("simple_head", false,
		"    ", "    ", " ── ", "    ", "    ", "    ", "    ", "    ")
	SimpleHeavy = mustBorder("simple_heavy", false,
		"    ", "    ", " ━━ ", "    ", "    ", " ━━ ", "    ", "    ")
	Horizontals = mustBorder("horizontals", false,
		" ── ", "    ", " ── ", "    ", " ── ", " ── ", "    ", " ── ")
	Rounded = mustBorder("rounded", false,
		"╭─┬╮", "│ ││", "├─┼┤", "│ ││", "├─┼┤", "├─┼┤", "│ ││", "╰─┴╯")
	Heavy = mustBorder("heavy", false,
		"┏━┳┓", "┃ ┃┃", "┣━╋┫", "┃ ┃┃", "┣━╋┫", "┣━╋┫", "┃ ┃┃", "┗━┻┛")
	HeavyEdge = mustBorder("heavy_edge", false,
		"┏━┯┓", "┃ │┃", "┠─┼┨", "┃ │┃", "┠─┼┨", "┠─┼┨", "┃ │┃", "┗━┷┛")
	HeavyHead = mustBorder("heavy_head", false,
		"┏━┳┓", "┃ ┃┃", "┡━╇┩", "│ ││", "├─┼┤", "├─┼┤", "│ ││", "└─┴┘")
	Double = mustBorder("double", false,
		"╔═╦╗", "║ ║║", "╠═╬╣", "║ ║║", "╠═╬╣", "╠═╬╣", "║ ║║", "╚═╩╝")
	DoubleEdge = mustBorder("double_edge", false,
		"╔═╤╗", "║ │║", "╟─┼╢", "║ │║", "╟─┼╢", "╟─┼╢", "║ │║", "╚═╧╝")
	Markdown = mustBorder("markdown", true,
		"    ", "| ||", "|-||", "| ||", "|-||", "|-||", "| ||", "    ")
)

var borders = map[string]Border{}

func init() {
	for _, b := range []Border{NoBorder, ASCII, ASCII2, ASCIIDoubleHead, Square,
		SquareDoubleHead, Minimal, MinimalHeavyHead, MinimalDoubleHead, Simple,
		SimpleHead, SimpleHeavy, Horizontals, Rounded, Heavy, HeavyEdge, HeavyHead,
		Double, DoubleEdge, Markdown} {
		borders[b.name] = b
	}
}

// BorderByName finds a predefined border. Names are case-insensitive, and
// dashes may be used instead of underscores.
func BorderByName(name string) (Border, bool) {
	name = strings.ReplaceAll(strings.ToLower(name), "-", "_")
	b, ok := borders[name]
	return b, ok
}

// BorderNames lists the names of all predefined borders.
func BorderNames() []string {
	names := make([]string, 0, len(borders))
	for name := range borders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the name of b.
func (b Border) Name() string {
	return b.name
}

// IsNone is true for a border without glyphs.
func (b Border) IsNone() bool {
	return !b.valid
}

// IsASCII is true if b uses ASCII glyphs only.
func (b Border) IsASCII() bool {
	return !b.valid || b.ascii
}

// Width is the number of cells a border line takes, i.e. 0 or 1.
func (b Border) Width() int {
	if b.valid {
		return 1
	}
	return 0
}

// Row returns row i of the border definition, e.g. RowTop.
func (b Border) Row(i int) string {
	if !b.valid || i < 0 || i >= len(b.rows) {
		return ""
	}
	return string(b.rows[i][:])
}

func (b Border) glyph(row, i int) rune {
	if !b.valid {
		return 0
	}
	return b.rows[row][i]
}

// Corners and frame glyphs.
func (b Border) TopLeft() rune     { return b.glyph(RowTop, 0) }
func (b Border) TopRight() rune    { return b.glyph(RowTop, 3) }
func (b Border) BottomLeft() rune  { return b.glyph(RowBottom, 0) }
func (b Border) BottomRight() rune { return b.glyph(RowBottom, 3) }

// TopBar is the fill of the top frame.
func (b Border) TopBar() rune { return b.glyph(RowTop, 1) }

// BottomBar is the fill of the bottom frame.
func (b Border) BottomBar() rune { return b.glyph(RowBottom, 1) }

// MiddleBar is the fill of horizontal grid lines between vertically stacked
// children.
func (b Border) MiddleBar() rune { return b.glyph(RowRow, 1) }

// LeftBar and RightBar are the fills of the left and right frame.
func (b Border) LeftBar() rune  { return b.glyph(RowMid, 0) }
func (b Border) RightBar() rune { return b.glyph(RowMid, 3) }

// CenterBar is the fill of vertical grid lines between horizontally tiled
// children.
func (b Border) CenterBar() rune { return b.glyph(RowMid, 2) }

// TopLink and BottomLink join a vertical grid line to the top and bottom
// frame.
func (b Border) TopLink() rune    { return b.glyph(RowTop, 2) }
func (b Border) BottomLink() rune { return b.glyph(RowBottom, 2) }

// LeftLink and RightLink join a horizontal grid line to the left and right
// frame.
func (b Border) LeftLink() rune  { return b.glyph(RowRow, 0) }
func (b Border) RightLink() rune { return b.glyph(RowRow, 3) }

// Cross joins a horizontal and a vertical grid line.
func (b Border) Cross() rune { return b.glyph(RowRow, 2) }

func (b Border) String() string {
	return b.name
}

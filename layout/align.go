package layout

import (
	"fmt"
	"strings"

	"github.com/npillmayer/termtext"
)

// AlignH is a horizontal alignment.
type AlignH int

// Horizontal alignments.
const (
	Left AlignH = iota
	Center
	Right
)

func (a AlignH) String() string {
	switch a {
	case Center:
		return "center"
	case Right:
		return "right"
	}
	return "left"
}

// AlignV is a vertical alignment.
type AlignV int

// Vertical alignments.
const (
	Top AlignV = iota
	Middle
	Bottom
)

func (a AlignV) String() string {
	switch a {
	case Middle:
		return "middle"
	case Bottom:
		return "bottom"
	}
	return "top"
}

// ParseAlignH parses "left", "center" or "right".
func ParseAlignH(s string) (AlignH, error) {
	switch strings.ToLower(s) {
	case "left":
		return Left, nil
	case "center", "centre":
		return Center, nil
	case "right":
		return Right, nil
	}
	return Left, fmt.Errorf("%w: unknown horizontal alignment %q", termtext.ErrIllegalArguments, s)
}

// ParseAlignV parses "top", "middle" or "bottom".
func ParseAlignV(s string) (AlignV, error) {
	switch strings.ToLower(s) {
	case "top":
		return Top, nil
	case "middle":
		return Middle, nil
	case "bottom":
		return Bottom, nil
	}
	return Top, fmt.Errorf("%w: unknown vertical alignment %q", termtext.ErrIllegalArguments, s)
}

// split distributes total padding cells to the leading and trailing side of
// content aligned to the start, to the end or (if neither) centered.
// Centering puts an odd remainder on the trailing side.
func split(total int, atStart, atEnd bool) (int, int) {
	switch {
	case total <= 0:
		return 0, 0
	case atStart:
		return 0, total
	case atEnd:
		return total, 0
	}
	lead := total / 2
	return lead, total - lead
}

func (a AlignH) split(total int) (int, int) {
	return split(total, a == Left, a == Right)
}

func (a AlignV) split(total int) (int, int) {
	return split(total, a == Top, a == Bottom)
}

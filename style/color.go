package style

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/termtext"
)

// Color is one of the 8 basic terminal colors.
type Color uint8

// The basic colors. Each of them has a bright variant.
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return "color(" + strconv.Itoa(int(c)) + ")"
	}
	return colorNames[c]
}

// colorByName resolves "red" or "^red".
func colorByName(name string) (Color, bool, bool) {
	bright := false
	if len(name) > 1 && name[0] == '^' {
		bright, name = true, name[1:]
	}
	for i, n := range colorNames {
		if n == name {
			return Color(i), bright, true
		}
	}
	return 0, false, false
}

type colorKind uint8

const (
	noColor colorKind = iota
	colorStandard
	colorIndexed
	colorTrue
)

// colorValue remembers the color an attribute selects, for output formats
// other than SGR.
type colorValue struct {
	kind    colorKind
	index   uint8 // 0…15 for standard colors, 0…255 for indexed
	r, g, b uint8
}

// Fg returns the foreground attribute for a basic color.
func Fg(c Color) Attr { return colorAttr(c, false, FamilyForeground) }

// Bg returns the background attribute for a basic color.
func Bg(c Color) Attr { return colorAttr(c, false, FamilyBackground) }

// FgBright returns the foreground attribute for the bright variant of a basic color.
func FgBright(c Color) Attr { return colorAttr(c, true, FamilyForeground) }

// BgBright returns the background attribute for the bright variant of a basic color.
func BgBright(c Color) Attr { return colorAttr(c, true, FamilyBackground) }

func colorAttr(c Color, bright bool, family Family) Attr {
	c &= 7
	name, base, index := c.String(), 30, uint8(c)
	if bright {
		name, base, index = "^"+name, 90, index+8
	}
	prefix := "fg"
	if family == FamilyBackground {
		prefix = "bg"
		base += 10
	}
	return Attr{
		op:     Apply,
		family: family,
		name:   prefix + "(" + name + ")",
		code:   base + int(c),
		color:  colorValue{kind: colorStandard, index: index},
	}
}

// Fg256 returns a foreground attribute for a color of the 256-color palette.
func Fg256(n int) (Attr, error) {
	if err := checkColorValue("foreground 256-color", n); err != nil {
		return Attr{}, err
	}
	return color256(FamilyForeground, n), nil
}

// Bg256 returns a background attribute for a color of the 256-color palette.
func Bg256(n int) (Attr, error) {
	if err := checkColorValue("background 256-color", n); err != nil {
		return Attr{}, err
	}
	return color256(FamilyBackground, n), nil
}

// FgRGB returns a foreground attribute for a true color.
func FgRGB(r, g, b int) (Attr, error) {
	if err := checkRGB("foreground", r, g, b); err != nil {
		return Attr{}, err
	}
	return colorRGB(FamilyForeground, r, g, b), nil
}

// BgRGB returns a background attribute for a true color.
func BgRGB(r, g, b int) (Attr, error) {
	if err := checkRGB("background", r, g, b); err != nil {
		return Attr{}, err
	}
	return colorRGB(FamilyBackground, r, g, b), nil
}

func checkColorValue(what string, n int) error {
	if n < 0 || n > 255 {
		return fmt.Errorf("%w: %s must be in range [0..255], but it was %d",
			termtext.ErrInvalidColorValue, what, n)
	}
	return nil
}

func checkRGB(ground string, r, g, b int) error {
	if err := checkColorValue("Red part of "+ground+" true-color", r); err != nil {
		return err
	}
	if err := checkColorValue("Green part of "+ground+" true-color", g); err != nil {
		return err
	}
	return checkColorValue("Blue part of "+ground+" true-color", b)
}

func color256(family Family, n int) Attr {
	prefix, code := "fg", 38
	if family == FamilyBackground {
		prefix, code = "bg", 48
	}
	return Attr{
		op:     Apply,
		family: family,
		name:   fmt.Sprintf("%s(#%02X)", prefix, n),
		code:   code,
		ext:    ";5;" + strconv.Itoa(n),
		color:  colorValue{kind: colorIndexed, index: uint8(n)},
	}
}

func colorRGB(family Family, r, g, b int) Attr {
	prefix, code := "fg", 38
	if family == FamilyBackground {
		prefix, code = "bg", 48
	}
	return Attr{
		op:     Apply,
		family: family,
		name:   fmt.Sprintf("%s(#%02X%02X%02X)", prefix, r, g, b),
		code:   code,
		ext:    fmt.Sprintf(";2;%d;%d;%d", r, g, b),
		color:  colorValue{kind: colorTrue, r: uint8(r), g: uint8(g), b: uint8(b)},
	}
}

// --- Color values ----------------------------------------------------------

// vgaPalette holds the VGA hardware values for the 16 standard colors.
var vgaPalette = [16][3]uint8{
	{0x00, 0x00, 0x00}, {0xAA, 0x00, 0x00}, {0x00, 0xAA, 0x00}, {0xAA, 0x55, 0x00},
	{0x00, 0x00, 0xAA}, {0xAA, 0x00, 0xAA}, {0x00, 0xAA, 0xAA}, {0xAA, 0xAA, 0xAA},
	{0x55, 0x55, 0x55}, {0xFF, 0x55, 0x55}, {0x55, 0xFF, 0x55}, {0xFF, 0xFF, 0x55},
	{0x55, 0x55, 0xFF}, {0xFF, 0x55, 0xFF}, {0x55, 0xFF, 0xFF}, {0xFF, 0xFF, 0xFF},
}

// RGB returns the red, green and blue components of the color a color
// attribute selects. Standard colors map to the VGA palette, indexed colors
// to the xterm 256-color palette. ok is false for attributes without a color.
func (a Attr) RGB() (r, g, b uint8, ok bool) {
	switch a.color.kind {
	case colorStandard:
		c := vgaPalette[a.color.index&15]
		return c[0], c[1], c[2], true
	case colorIndexed:
		r, g, b = xterm256(a.color.index)
		return r, g, b, true
	case colorTrue:
		return a.color.r, a.color.g, a.color.b, true
	}
	return 0, 0, 0, false
}

func xterm256(n uint8) (uint8, uint8, uint8) {
	switch {
	case n < 16:
		c := vgaPalette[n]
		return c[0], c[1], c[2]
	case n < 232: // 6×6×6 color cube
		n -= 16
		level := func(v uint8) uint8 {
			if v == 0 {
				return 0
			}
			return 55 + v*40
		}
		return level(n / 36), level(n / 6 % 6), level(n % 6)
	}
	gray := 8 + (n-232)*10
	return gray, gray, gray
}

package style

import (
	"strconv"
	"strings"
)

// Op tells whether an attribute applies or resets a family.
type Op uint8

// Attributes either switch a feature on or reset it.
const (
	Apply Op = iota
	Reset
)

// Family is a category of mutually exclusive attributes. Families are
// sorted; the sort order is the order of attributes in a style.
type Family uint8

// Families of attributes. FamilyAll is the family of the reset-all attribute
// and sorts first, so that a reset-all code precedes anything set together
// with it.
const (
	FamilyAll Family = iota
	FamilyBold
	FamilyDim
	FamilyItalic
	FamilyUnderline
	FamilyBlinking
	FamilyInverse
	FamilyHidden
	FamilyStrikethrough
	FamilyForeground
	FamilyBackground
	familyCount
)

var familyNames = [...]string{"all", "bold", "dim", "italic", "underline", "blinking",
	"inverse", "hidden", "strikethrough", "fg", "bg"}

func (f Family) String() string {
	if f >= familyCount {
		return "family(" + strconv.Itoa(int(f)) + ")"
	}
	return familyNames[f]
}

// Attr is an atomic style attribute. Attributes are immutable values; they are
// either predefined variables of this package or created by the color
// factories.
//
// The zero Attr is invalid and will be ignored by styles.
type Attr struct {
	op     Op
	family Family
	name   string
	code   int
	ext    string // extended code suffix for indexed and true colors
	color  colorValue
}

// Op returns the operation of a.
func (a Attr) Op() Op { return a.op }

// Family returns the family of a.
func (a Attr) Family() Family { return a.family }

// Name returns the display name of a, e.g. "!bold" or "fg(#7B)".
func (a Attr) Name() string { return a.name }

// Code returns the base SGR code of a.
func (a Attr) Code() int { return a.code }

// IsValid is false for the zero Attr.
func (a Attr) IsValid() bool { return a.name != "" }

// IsReset is true for attributes resetting their family.
func (a Attr) IsReset() bool { return a.op == Reset }

// CodeSeq returns the SGR parameters of a, e.g. "38;5;123".
func (a Attr) CodeSeq() string {
	return strconv.Itoa(a.code) + a.ext
}

func (a Attr) String() string {
	return a.name
}

// Predefined attributes.
var (
	ResetAll = Attr{op: Reset, family: FamilyAll, name: "!!", code: 0}

	ApplyBold          = Attr{op: Apply, family: FamilyBold, name: "bold", code: 1}
	ApplyDim           = Attr{op: Apply, family: FamilyDim, name: "dim", code: 2}
	ApplyItalic        = Attr{op: Apply, family: FamilyItalic, name: "italic", code: 3}
	ApplyUnderline     = Attr{op: Apply, family: FamilyUnderline, name: "underline", code: 4}
	ApplyBlinking      = Attr{op: Apply, family: FamilyBlinking, name: "blinking", code: 5}
	ApplyInverse       = Attr{op: Apply, family: FamilyInverse, name: "inverse", code: 7}
	ApplyHidden        = Attr{op: Apply, family: FamilyHidden, name: "hidden", code: 8}
	ApplyStrikethrough = Attr{op: Apply, family: FamilyStrikethrough, name: "strikethrough", code: 9}

	ResetBold          = Attr{op: Reset, family: FamilyBold, name: "!bold", code: 22}
	ResetDim           = Attr{op: Reset, family: FamilyDim, name: "!dim", code: 22}
	ResetItalic        = Attr{op: Reset, family: FamilyItalic, name: "!italic", code: 23}
	ResetUnderline     = Attr{op: Reset, family: FamilyUnderline, name: "!underline", code: 24}
	ResetBlinking      = Attr{op: Reset, family: FamilyBlinking, name: "!blinking", code: 25}
	ResetInverse       = Attr{op: Reset, family: FamilyInverse, name: "!inverse", code: 27}
	ResetHidden        = Attr{op: Reset, family: FamilyHidden, name: "!hidden", code: 28}
	ResetStrikethrough = Attr{op: Reset, family: FamilyStrikethrough, name: "!strikethrough", code: 29}

	ResetFg = Attr{op: Reset, family: FamilyForeground, name: "!fg", code: 39}
	ResetBg = Attr{op: Reset, family: FamilyBackground, name: "!bg", code: 49}
)

// canonicalReset holds the reset attribute for every family. FamilyAll has
// none.
var canonicalReset = [familyCount]Attr{
	FamilyBold:          ResetBold,
	FamilyDim:           ResetDim,
	FamilyItalic:        ResetItalic,
	FamilyUnderline:     ResetUnderline,
	FamilyBlinking:      ResetBlinking,
	FamilyInverse:       ResetInverse,
	FamilyHidden:        ResetHidden,
	FamilyStrikethrough: ResetStrikethrough,
	FamilyForeground:    ResetFg,
	FamilyBackground:    ResetBg,
}

// ResetOf returns the canonical reset attribute of a family.
func ResetOf(f Family) (Attr, bool) {
	if f >= familyCount {
		return Attr{}, false
	}
	a := canonicalReset[f]
	return a, a.IsValid()
}

var staticAttrs = map[string]Attr{}

func init() {
	for _, a := range []Attr{ResetAll,
		ApplyBold, ApplyDim, ApplyItalic, ApplyUnderline, ApplyBlinking, ApplyInverse,
		ApplyHidden, ApplyStrikethrough,
		ResetBold, ResetDim, ResetItalic, ResetUnderline, ResetBlinking, ResetInverse,
		ResetHidden, ResetStrikethrough, ResetFg, ResetBg} {
		staticAttrs[a.name] = a
	}
}

// LookupByName resolves an attribute name as it is used in markup.
// Recognized are
//
//	bold, dim, italic, … and their resets !bold, !dim, !italic, …
//	red, ^red                    foreground colors (regular and bright)
//	fg(red), bg(^blue)           explicit foreground or background colors
//	fg(#F4), bg(#7B)             256-color palette indices
//	fg(#0C2238), bg(#FAFA00)     true colors
//	!fg, !bg, !!                 color resets and reset-all
//
// Names are case-insensitive. Unknown names return false.
func LookupByName(name string) (Attr, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if a, ok := staticAttrs[name]; ok {
		return a, true
	}
	if c, bright, ok := colorByName(name); ok {
		return colorAttr(c, bright, FamilyForeground), true
	}
	var family Family
	switch {
	case strings.HasPrefix(name, "fg(") && strings.HasSuffix(name, ")"):
		family = FamilyForeground
	case strings.HasPrefix(name, "bg(") && strings.HasSuffix(name, ")"):
		family = FamilyBackground
	default:
		return Attr{}, false
	}
	color := name[3 : len(name)-1]
	if c, bright, ok := colorByName(color); ok {
		return colorAttr(c, bright, family), true
	}
	if !strings.HasPrefix(color, "#") {
		return Attr{}, false
	}
	hex := color[1:]
	switch len(hex) {
	case 2:
		n, err := strconv.ParseUint(hex, 16, 8)
		if err != nil {
			return Attr{}, false
		}
		return color256(family, int(n)), true
	case 6:
		rgb, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Attr{}, false
		}
		return colorRGB(family, int(rgb>>16&0xff), int(rgb>>8&0xff), int(rgb&0xff)), true
	}
	return Attr{}, false
}

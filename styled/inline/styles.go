package inline

import (
	"fmt"
	"strings"

	"github.com/npillmayer/termtext/style"
)

// htmlStyles maps inline HTML elements to terminal styles.
var htmlStyles = map[string]style.Style{
	"b":      style.New(style.ApplyBold),
	"strong": style.New(style.ApplyBold),
	"i":      style.New(style.ApplyItalic),
	"em":     style.New(style.ApplyItalic),
	"cite":   style.New(style.ApplyItalic),
	"u":      style.New(style.ApplyUnderline),
	"ins":    style.New(style.ApplyUnderline),
	"s":      style.New(style.ApplyStrikethrough),
	"del":    style.New(style.ApplyStrikethrough),
	"strike": style.New(style.ApplyStrikethrough),
	"small":  style.New(style.ApplyDim),
	"blink":  style.New(style.ApplyBlinking),
	"mark":   style.New(style.Fg(style.Black), style.Bg(style.Yellow)),
	"code":   style.New(style.Fg(style.Cyan)),
	"kbd":    style.New(style.ApplyInverse),
}

// StyleFromHTMLName returns the style for an inline HTML element, e.g. "b" or
// "em". Element names are case-insensitive.
func StyleFromHTMLName(name string) (style.Style, bool) {
	st, ok := htmlStyles[strings.ToLower(name)]
	return st, ok
}

// CSS returns an inline CSS declaration list for an effective style, e.g.
// "font-weight:bold;color:#AA0000". Colors are given as RGB values of the
// VGA or xterm palettes. Inverse text swaps foreground and background.
func CSS(st style.Style) string {
	var decl []string
	add := func(prop, value string) {
		decl = append(decl, prop+":"+value)
	}
	fg, hasFg := colorOf(st, style.FamilyForeground)
	bg, hasBg := colorOf(st, style.FamilyBackground)
	if applied(st, style.FamilyInverse) {
		fg, bg, hasFg, hasBg = bg, fg, hasBg, hasFg
		if !hasFg {
			fg, hasFg = "#FFFFFF", true
		}
		if !hasBg {
			bg, hasBg = "#000000", true
		}
	}
	if applied(st, style.FamilyBold) {
		add("font-weight", "bold")
	}
	if applied(st, style.FamilyDim) {
		add("opacity", "0.6")
	}
	if applied(st, style.FamilyItalic) {
		add("font-style", "italic")
	}
	var deco []string
	if applied(st, style.FamilyUnderline) {
		deco = append(deco, "underline")
	}
	if applied(st, style.FamilyStrikethrough) {
		deco = append(deco, "line-through")
	}
	if applied(st, style.FamilyBlinking) {
		deco = append(deco, "blink")
	}
	if len(deco) > 0 {
		add("text-decoration", strings.Join(deco, " "))
	}
	if applied(st, style.FamilyHidden) {
		add("visibility", "hidden")
	}
	if hasFg {
		add("color", fg)
	}
	if hasBg {
		add("background-color", bg)
	}
	return strings.Join(decl, ";")
}

func applied(st style.Style, f style.Family) bool {
	a, ok := st.Get(f)
	return ok && !a.IsReset()
}

func colorOf(st style.Style, f style.Family) (string, bool) {
	a, ok := st.Get(f)
	if !ok {
		return "", false
	}
	r, g, b, ok := a.RGB()
	if !ok {
		return "", false
	}
	return fmt.Sprintf("#%02X%02X%02X", r, g, b), true
}

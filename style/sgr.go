package style

import (
	"strconv"
	"strings"
)

// DecodeSGR decodes the parameter list of an SGR escape sequence, i.e. the
// part between "ESC[" and "m", into attributes. An empty list means reset-all.
// Unsupported or malformed parameters are skipped.
func DecodeSGR(params string) []Attr {
	if params == "" {
		return []Attr{ResetAll}
	}
	fields := strings.Split(params, ";")
	codes := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			tracer().Debugf("SGR: skipping malformed parameter %q", f)
			n = -1
		}
		codes = append(codes, n)
	}
	var attrs []Attr
	for i := 0; i < len(codes); i++ {
		code := codes[i]
		switch {
		case code == 0:
			attrs = append(attrs, ResetAll)
		case code >= 1 && code <= 9:
			if a, ok := toggles[code]; ok {
				attrs = append(attrs, a)
			}
		case code == 21 || code == 22:
			attrs = append(attrs, ResetBold, ResetDim)
		case code >= 23 && code <= 29:
			if a, ok := toggleResets[code]; ok {
				attrs = append(attrs, a)
			}
		case code >= 30 && code <= 37:
			attrs = append(attrs, Fg(Color(code-30)))
		case code == 38 || code == 48:
			a, n := extendedColor(code, codes[i+1:])
			if a.IsValid() {
				attrs = append(attrs, a)
			}
			i += n
		case code == 39:
			attrs = append(attrs, ResetFg)
		case code >= 40 && code <= 47:
			attrs = append(attrs, Bg(Color(code-40)))
		case code == 49:
			attrs = append(attrs, ResetBg)
		case code >= 90 && code <= 97:
			attrs = append(attrs, FgBright(Color(code-90)))
		case code >= 100 && code <= 107:
			attrs = append(attrs, BgBright(Color(code-100)))
		default:
			tracer().Debugf("SGR: ignoring unsupported code %d", code)
		}
	}
	return attrs
}

var toggles = map[int]Attr{
	1: ApplyBold, 2: ApplyDim, 3: ApplyItalic, 4: ApplyUnderline, 5: ApplyBlinking,
	7: ApplyInverse, 8: ApplyHidden, 9: ApplyStrikethrough,
}

var toggleResets = map[int]Attr{
	23: ResetItalic, 24: ResetUnderline, 25: ResetBlinking, 27: ResetInverse,
	28: ResetHidden, 29: ResetStrikethrough,
}

// extendedColor decodes "5;n" or "2;r;g;b" following code 38 or 48. It returns
// the number of parameters consumed.
func extendedColor(code int, params []int) (Attr, int) {
	family := FamilyForeground
	if code == 48 {
		family = FamilyBackground
	}
	if len(params) == 0 {
		return Attr{}, 0
	}
	switch params[0] {
	case 5:
		if len(params) < 2 {
			return Attr{}, len(params)
		}
		if checkColorValue("256-color", params[1]) != nil {
			return Attr{}, 2
		}
		return color256(family, params[1]), 2
	case 2:
		if len(params) < 4 {
			return Attr{}, len(params)
		}
		if checkRGB("", params[1], params[2], params[3]) != nil {
			return Attr{}, 4
		}
		return colorRGB(family, params[1], params[2], params[3]), 4
	}
	return Attr{}, 1
}

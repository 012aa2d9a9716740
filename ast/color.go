package ast

import (
	"math"
	"strconv"
	"strings"
)

// RGB represents a resolved color. Channels are not clamped so values
// outside of 0-255 are passed through as written.
type RGB struct {
	R, G, B int
}

// IsColor returns true if the term denotes a color: a hex value, a named
// color or an rgb(), rgba(), hsl() or hsla() call with numeric arguments.
func (t *Term) IsColor() bool {
	_, ok := t.Color()
	return ok
}

// Color resolves the term to an RGB value.
// Returns false if the term does not denote a color.
func (t *Term) Color() (RGB, bool) {
	if t == nil {
		return RGB{}, false
	}

	switch t.Type {
	case Hex:
		return parseHexColor(t.Value)
	case String:
		if strings.HasPrefix(t.Value, "#") {
			return parseHexColor(t.Value[1:])
		}
		if v, ok := namedColors[strings.ToLower(t.Value)]; ok {
			return RGB{R: int(v >> 16), G: int(v >> 8 & 0xFF), B: int(v & 0xFF)}, true
		}
	case FunctionTerm:
		return t.Function.color()
	}
	return RGB{}, false
}

// IsColor returns true if the declaration's value is a single color term.
func (d *Declaration) IsColor() bool {
	_, ok := d.Color()
	return ok
}

// Color resolves a declaration whose value is a single color term.
func (d *Declaration) Color() (RGB, bool) {
	if d == nil || d.Expression == nil || len(d.Expression.Terms) != 1 {
		return RGB{}, false
	}
	return d.Expression.Terms[0].Color()
}

// color resolves rgb(), rgba(), hsl() and hsla() calls.
func (f *Function) color() (RGB, bool) {
	if f == nil || f.Expression == nil {
		return RGB{}, false
	}

	var arity int
	name := strings.ToLower(f.Name)
	switch name {
	case "rgb", "hsl":
		arity = 3
	case "rgba", "hsla":
		arity = 4
	default:
		return RGB{}, false
	}

	terms := f.Expression.Terms
	if len(terms) != arity {
		return RGB{}, false
	}
	var v [3]float64
	for i, t := range terms {
		if t.Type != Number {
			return RGB{}, false
		}
		n, err := t.Float()
		if err != nil {
			return RGB{}, false
		} else if i < 3 {
			v[i] = n
		}
	}

	if name == "rgb" || name == "rgba" {
		return RGB{
			R: int(channel(terms[0], v[0])),
			G: int(channel(terms[1], v[1])),
			B: int(channel(terms[2], v[2])),
		}, true
	}

	h := v[0] * 255 / 360
	s := channel(terms[1], v[1])
	l := channel(terms[2], v[2])
	return hslToRGB(h, s, l), true
}

// channel scales a percentage term to 0-255.
func channel(t *Term, v float64) float64 {
	if t.Unit == Percent {
		return 255 * v / 100
	}
	return v
}

// hslToRGB converts hue, saturation and lightness on a 0-255 scale.
// The color is converted to hue, saturation and value first and then
// resolved by 60 degree sector.
func hslToRGB(hue, sat, light float64) RGB {
	s, l := sat/255, light/255

	v := l + s*math.Min(l, 1-l)
	if v != 0 {
		s = 2 * (1 - l/v)
	} else {
		s = 0
	}

	var r, g, b float64
	if s == 0 {
		r, g, b = v, v, v
	} else {
		h := math.Mod(hue/255*360, 360)
		if h < 0 {
			h += 360
		}
		sector := h / 60
		i := math.Floor(sector)
		f := sector - i

		p := v * (1 - s)
		q := v * (1 - s*f)
		t := v * (1 - s*(1-f))

		switch int(i) {
		case 0:
			r, g, b = v, t, p
		case 1:
			r, g, b = q, v, p
		case 2:
			r, g, b = p, v, t
		case 3:
			r, g, b = p, q, v
		case 4:
			r, g, b = t, p, v
		default:
			r, g, b = v, p, q
		}
	}

	return RGB{
		R: int(math.Round(r * 255)),
		G: int(math.Round(g * 255)),
		B: int(math.Round(b * 255)),
	}
}

// parseHexColor parses 3 or 6 hex digits. Three digit values are expanded
// by doubling each digit.
func parseHexColor(s string) (RGB, bool) {
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: int(v >> 16), G: int(v >> 8 & 0xFF), B: int(v & 0xFF)}, true
}

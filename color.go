package textline

import (
	"image/color"
	"math"
)

// Hsla represents a color in HSL space with an alpha channel.
// All components are in the range [0, 1]; the hue is a fraction of a full
// turn rather than degrees.
type Hsla struct {
	H, S, L, A float64
}

// Black returns opaque black, the default fill color when a line's
// decoration runs do not cover a glyph.
func Black() Hsla {
	return Hsla{H: 0, S: 0, L: 0, A: 1}
}

// White returns opaque white.
func White() Hsla {
	return Hsla{H: 0, S: 0, L: 1, A: 1}
}

// Equal reports whether two colors have identical components.
func (c Hsla) Equal(o Hsla) bool {
	return c == o
}

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGBA converts the color to RGB space. Rasterizers consume RGBA; Hsla is
// the styling-facing representation.
func (c Hsla) RGBA() RGBA {
	h := math.Mod(c.H, 1)
	if h < 0 {
		h++
	}

	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	x := chroma * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := c.L - chroma/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = chroma, x, 0
	case h < 2.0/6:
		r, g, b = x, chroma, 0
	case h < 3.0/6:
		r, g, b = 0, chroma, x
	case h < 4.0/6:
		r, g, b = 0, x, chroma
	case h < 5.0/6:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGBA{R: r + m, G: g + m, B: b + m, A: c.A}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// clamp255 clamps v to the range [0, 255].
func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

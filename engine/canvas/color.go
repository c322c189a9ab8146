package canvas

import "image/color"

// Color is an opaque 8-bit RGB triple. Alpha is attached at the point of use.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from channel values.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// Alpha returns c with alpha a, clamped to [0,255].
func (c Color) Alpha(a int) color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, ClampAlpha(a)}
}

// NRGBA returns c fully opaque.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, 255}
}

// Lerp interpolates each channel from c1 to c2. The result is truncated, not
// rounded, so Lerp(a, b, 0) == a and Lerp(a, b, 1) == b.
func Lerp(c1, c2 Color, t float64) Color {
	ch := func(a, b uint8) uint8 {
		return Clamp8(float64(a) + (float64(b)-float64(a))*t)
	}
	return Color{ch(c1.R, c2.R), ch(c1.G, c2.G), ch(c1.B, c2.B)}
}

// Clamp8 truncates v into a byte.
func Clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ClampAlpha clamps an integer opacity into [0,255].
func ClampAlpha(a int) uint8 {
	if a < 0 {
		return 0
	}
	if a > 255 {
		return 255
	}
	return uint8(a)
}

package gfx

import "math"

// Color represents a straight-alpha color with red, green, blue, and
// alpha components. Each component is in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1.0}
}

// IsOpaque returns true if the color is fully opaque.
func (c Color) IsOpaque() bool {
	return c.A >= 1.0
}

// Premultiply returns a premultiplied color.
func (c Color) Premultiply() Color {
	return Color{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// RGBA8 returns the color as straight-alpha bytes.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A)
}

// PremulRGBA8 returns the color as premultiplied bytes.
func (c Color) PremulRGBA8() (r, g, b, a uint8) {
	return toByte(c.R * c.A), toByte(c.G * c.A), toByte(c.B * c.A), toByte(c.A)
}

// toByte converts a [0, 1] component to a rounded byte.
func toByte(x float64) uint8 {
	return uint8(clamp255(math.Round(x * 255)))
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = Color{}
)

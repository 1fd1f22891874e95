package colormap

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents a color with red, green and blue components.
// Each component is a float64 on a 0–255 scale.
//
// Color is an immutable value type: all arithmetic returns a new Color
// and never mutates an operand. Components are not clamped by the
// arithmetic itself; blending may produce channels outside [0, 255],
// and clamping to the displayable range happens only when a Color is
// rendered to text (String, Hex) or converted via the color.Color
// interface.
type Color struct {
	R, G, B float64
}

// RGB creates a color from red, green and blue components on the
// 0–255 scale.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Weighted pairs a color with a blend weight.
type Weighted struct {
	Color  Color
	Weight float64
}

// WeightedSum combines colors as a weight-normalized channel-wise sum:
// each output channel is sum(w_i * c_i) / sum(w_i).
//
// It fails with ErrDegenerateBlend when the weights sum to zero, since
// the normalized result would be undefined.
func WeightedSum(parts []Weighted) (Color, error) {
	var total float64
	for _, p := range parts {
		total += p.Weight
	}
	if total == 0 {
		return Color{}, ErrDegenerateBlend
	}
	var out Color
	for _, p := range parts {
		w := p.Weight / total
		out.R += p.Color.R * w
		out.G += p.Color.G * w
		out.B += p.Color.B * w
	}
	return out, nil
}

// Lerp performs linear interpolation between two colors.
// t=0 returns c, t=1 returns other.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Luminance returns the perceived brightness on the 0–255 scale,
// using the ITU-R BT.601 coefficients.
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// String renders the color in its canonical textual form,
// "rgb(r,g,b)", with each channel rounded and clamped to an integer
// in 0–255. The result parses back through ParseColor.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", channel255(c.R), channel255(c.G), channel255(c.B))
}

// Hex renders the color as a lowercase "#rrggbb" hex literal.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel255(c.R), channel255(c.G), channel255(c.B))
}

// RGBA implements the image/color.Color interface, treating the color
// as fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(channel255(c.R)) * 0x101
	g = uint32(channel255(c.G)) * 0x101
	b = uint32(channel255(c.B)) * 0x101
	a = 0xffff
	return
}

// FromColor converts a standard color.Color to a Color, discarding alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{
		R: float64(r) / 65535 * 255,
		G: float64(g) / 65535 * 255,
		B: float64(b) / 65535 * 255,
	}
}

// Colorful converts the color to a go-colorful color with components
// on the 0–1 scale, for callers in that ecosystem.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}
}

// channel255 rounds a channel value to the nearest integer and clamps
// it to [0, 255].
func channel255(x float64) int {
	v := math.Round(x)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v)
}

// clamp255 restricts a channel value to the [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

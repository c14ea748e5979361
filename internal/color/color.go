// Package color holds the canonical RGBA color value shared by every
// notation. Other color spaces are derived on demand from the RGB channels.
package color

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/colorhelper/internal/numeric"
)

// Color is an RGBA color with every channel in [0, 1].
// The zero value is transparent black.
type Color struct {
	r, g, b, a float64
}

// Opaque black, useful as a starting point.
var Black = Color{a: 1}

// FromRGB builds an opaque color from channels in [0, 1].
func FromRGB(r, g, b float64) Color {
	return FromRGBA(r, g, b, 1)
}

// FromRGBA builds a color from channels in [0, 1]. Out-of-range input is clamped.
func FromRGBA(r, g, b, a float64) Color {
	return Color{
		r: numeric.Unit(r),
		g: numeric.Unit(g),
		b: numeric.Unit(b),
		a: numeric.Unit(a),
	}
}

// FromHSV builds an opaque color from hue (fraction of a full circle),
// saturation and value.
func FromHSV(h, s, v float64) Color {
	c := colorful.Hsv(hueDegrees(h), numeric.Clamp01(s), numeric.Clamp01(v))
	return FromRGB(c.R, c.G, c.B)
}

// FromHSL builds an opaque color from hue (fraction of a full circle),
// saturation and lightness.
func FromHSL(h, s, l float64) Color {
	c := colorful.Hsl(hueDegrees(h), numeric.Clamp01(s), numeric.Clamp01(l))
	return FromRGB(c.R, c.G, c.B)
}

// FromHWB builds an opaque color from hue, whiteness and blackness.
// When whiteness and blackness add up to more than 1 both are scaled down
// proportionally.
func FromHWB(h, w, b float64) Color {
	w, b = numeric.Clamp01(w), numeric.Clamp01(b)
	if sum := w + b; sum > 1 {
		w, b = w/sum, b/sum
	}
	pure := colorful.Hsl(hueDegrees(h), 1, 0.5)
	scale := 1 - w - b
	return FromRGB(pure.R*scale+w, pure.G*scale+w, pure.B*scale+w)
}

// FromCMYK builds an opaque color from cyan, magenta, yellow and key.
func FromCMYK(c, m, y, k float64) Color {
	c, m, y, k = numeric.Clamp01(c), numeric.Clamp01(m), numeric.Clamp01(y), numeric.Clamp01(k)
	return FromRGB((1-c)*(1-k), (1-m)*(1-k), (1-y)*(1-k))
}

// RGB returns the red, green and blue channels.
func (c Color) RGB() (r, g, b float64) {
	return c.r, c.g, c.b
}

// RGBA returns all four channels.
func (c Color) RGBA() (r, g, b, a float64) {
	return c.r, c.g, c.b, c.a
}

// Alpha returns the alpha channel.
func (c Color) Alpha() float64 {
	return c.a
}

// WithAlpha returns a copy of c with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.a = numeric.Unit(a)
	return c
}

// HSV returns hue (fraction of a full circle), saturation and value.
func (c Color) HSV() (h, s, v float64) {
	h, s, v = c.toColorful().Hsv()
	return fraction(h), numeric.Clamp01(s), numeric.Clamp01(v)
}

// HSL returns hue (fraction of a full circle), saturation and lightness.
func (c Color) HSL() (h, s, l float64) {
	h, s, l = c.toColorful().Hsl()
	return fraction(h), numeric.Clamp01(s), numeric.Clamp01(l)
}

// HWB returns hue, whiteness and blackness, derived from HSV.
func (c Color) HWB() (h, w, b float64) {
	h, s, v := c.HSV()
	return h, numeric.Clamp01((1 - s) * v), numeric.Clamp01(1 - v)
}

// CMYK returns cyan, magenta, yellow and key.
func (c Color) CMYK() (cy, m, y, k float64) {
	max := c.r
	if c.g > max {
		max = c.g
	}
	if c.b > max {
		max = c.b
	}
	k = 1 - max
	if k >= 1 {
		return 0, 0, 0, 1
	}
	cy = (1 - c.r - k) / (1 - k)
	m = (1 - c.g - k) / (1 - k)
	y = (1 - c.b - k) / (1 - k)
	return numeric.Clamp01(cy), numeric.Clamp01(m), numeric.Clamp01(y), numeric.Clamp01(k)
}

// IsGray reports whether all three channels are equal.
func (c Color) IsGray() bool {
	return c.r == c.g && c.r == c.b
}

// Equal reports whether both colors match within the channel precision.
func (c Color) Equal(o Color) bool {
	const tolerance = 1e-9
	return numeric.Equal(c.r, o.r, tolerance) &&
		numeric.Equal(c.g, o.g, tolerance) &&
		numeric.Equal(c.b, o.b, tolerance) &&
		numeric.Equal(c.a, o.a, tolerance)
}

// Bytes returns the channels scaled to 0-255.
func (c Color) Bytes() (r, g, b, a uint8) {
	return toByte(c.r), toByte(c.g), toByte(c.b), toByte(c.a)
}

// Hex returns the opaque #rrggbb form, convenient for terminal rendering.
func (c Color) Hex() string {
	r, g, b, _ := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%s, %s, %s, %s)",
		numeric.Format(c.r), numeric.Format(c.g), numeric.Format(c.b), numeric.Format(c.a))
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: c.r, G: c.g, B: c.b}
}

func toByte(v float64) uint8 {
	return uint8(numeric.Fix(v*255, 0, 255, 0))
}

func hueDegrees(h float64) float64 {
	return numeric.Wrap(h, 1) * 360
}

func fraction(degrees float64) float64 {
	return numeric.Wrap(degrees/360, 1)
}

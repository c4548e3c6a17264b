// Package colormodel holds the colour value shared by every palette
// algorithm: parsing of CSS colour tokens, conversions between sRGB, HSV,
// HSL and CIE-Lab, and the string formats ramps are emitted in.
//
// A Color keeps unrounded sRGB channels. Rounding to integers happens only
// when a colour is formatted, so chained conversions do not accumulate
// quantisation error.
package colormodel

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an sRGB colour with channels in [0,255] and alpha in [0,1].
type Color struct {
	R, G, B float64
	A       float64
}

// HSV is the hue/saturation/value view of a colour.
// H is in [0,360); S and V are percentages.
type HSV struct {
	H, S, V float64
}

// HSL is the hue/saturation/lightness view of a colour.
// H is in [0,360); S and L are percentages.
type HSL struct {
	H, S, L float64
}

// Lab is the CIE-L*a*b* view of a colour under D65.
type Lab struct {
	L, A, B float64
}

// RGB returns an opaque colour, clamping every channel into [0,255].
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1)
}

// RGBA returns a colour with the given alpha. Channels are clamped into
// [0,255] and alpha into [0,1].
func RGBA(r, g, b, a float64) Color {
	return Color{
		R: clampChannel(r),
		G: clampChannel(g),
		B: clampChannel(b),
		A: max(0, min(1, a)),
	}
}

// FromHSV builds a colour from hue in degrees and saturation/value
// percentages. The hue wraps; saturation and value are clamped to [0,100].
func FromHSV(h, s, v float64) Color {
	r, g, b := hsvToRGB(WrapHue(h), clampPercent(s), clampPercent(v))
	return RGB(r, g, b)
}

// FromHSL builds a colour from hue in degrees and saturation/lightness
// percentages. The hue wraps; saturation and lightness are clamped to [0,100].
func FromHSL(h, s, l float64) Color {
	r, g, b := hslToRGB(WrapHue(h), clampPercent(s), clampPercent(l))
	return RGB(r, g, b)
}

// FromLab builds a colour from CIE-Lab coordinates. L is clamped to [0,100]
// and the resulting channels are clamped into the sRGB gamut.
func FromLab(l, a, b float64) Color {
	r, g, bl := LabToRGB(clampPercent(l), a, b)
	return RGB(r, g, bl)
}

// Opaque returns c with alpha forced to 1.
func (c Color) Opaque() Color {
	c.A = 1
	return c
}

// Rounded returns c with every channel rounded to the nearest integer.
func (c Color) Rounded() Color {
	return Color{R: round(c.R), G: round(c.G), B: round(c.B), A: c.A}
}

// RGB255 returns the rounded channels as bytes.
func (c Color) RGB255() (r, g, b uint8) {
	rc := c.Rounded()
	return uint8(rc.R), uint8(rc.G), uint8(rc.B)
}

// Hue returns the HSL hue in degrees.
func (c Color) Hue() float64 {
	return c.HSL().H
}

// Luma returns the perceived brightness of the rounded colour on a 0-255
// scale, using the ITU-R BT.601 weights.
func (c Color) Luma() float64 {
	rc := c.Rounded()
	return (rc.R*299 + rc.G*587 + rc.B*114) / 1000
}

// Equal reports whether both colours format to the same hex value and alpha.
func (c Color) Equal(other Color) bool {
	return c.Hex() == other.Hex() && c.A == other.A
}

// Hex formats the colour as a lowercase #rrggbb string. Alpha is dropped.
func (c Color) Hex() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGBString formats the colour as rgb(r, g, b), or rgba(r, g, b, a) when it is
// translucent.
func (c Color) RGBString() string {
	rc := c.Rounded()
	if c.A < 1 {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", int(rc.R), int(rc.G), int(rc.B), formatAlpha(c.A))
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", int(rc.R), int(rc.G), int(rc.B))
}

// HSLString formats the colour as hsl(h, s%, l%), or hsla(...) when it is
// translucent. Every component is rounded to an integer.
func (c Color) HSLString() string {
	return formatHSL(c.HSL(), c.A)
}

func formatHSL(hsl HSL, alpha float64) string {
	h, s, l := int(round(hsl.H)), int(round(hsl.S)), int(round(hsl.L))
	if alpha < 1 {
		return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", h, s, l, formatAlpha(alpha))
	}
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
}

// RGBStr formats the rounded channels as a bare comma separated triple such
// as "245,63,63", the form CSS custom properties expect inside rgb(var(...)).
func (c Color) RGBStr() string {
	rc := c.Rounded()
	parts := []string{
		strconv.Itoa(int(rc.R)),
		strconv.Itoa(int(rc.G)),
		strconv.Itoa(int(rc.B)),
	}
	return strings.Join(parts, ",")
}

// Format renders the colour in the requested format.
func (c Color) Format(f Format) string {
	switch f {
	case FormatRGB:
		return c.RGBString()
	case FormatHSL:
		return c.HSLString()
	default:
		return c.Hex()
	}
}

// String implements fmt.Stringer using the hex form.
func (c Color) String() string {
	return c.Hex()
}

// round mirrors half-up rounding for the non-negative values colour channels
// take.
func round(x float64) float64 {
	return math.Floor(x + 0.5)
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}

func clampChannel(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return max(0, min(255, v))
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return max(0, min(100, v))
}

// WrapHue folds any angle in degrees into [0,360).
func WrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(math.Mod(h, 360)+360, 360)
	if h >= 360 {
		h = 0
	}
	return h
}

// Package hct works in a hue/chroma/tone space built on CIE-Lab polar
// coordinates: hue is the angle of (a*, b*), chroma its radius and tone is
// L*. It is an approximation of Material HCT without any viewing-condition
// model, which keeps conversions exact inverses of each other apart from
// gamut mapping.
package hct

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
	palerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

// HCT is a colour in hue/chroma/tone coordinates. H is in degrees, C is
// non-negative and T is in [0,100].
type HCT struct {
	H float64 `json:"h" yaml:"h"`
	C float64 `json:"c" yaml:"c"`
	T float64 `json:"t" yaml:"t"`
}

// GamutMapping selects how out-of-gamut HCT values are brought back into
// sRGB.
type GamutMapping int

const (
	// ReduceChroma lowers chroma one unit at a time until the colour fits.
	ReduceChroma GamutMapping = iota
	// Clamp clips every channel into [0,255].
	Clamp
)

func (m GamutMapping) String() string {
	if m == Clamp {
		return "clamp"
	}
	return "reduce-chroma"
}

// ParseGamutMapping maps "reduce-chroma" or "clamp" to a GamutMapping.
func ParseGamutMapping(name string) (GamutMapping, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "reduce-chroma":
		return ReduceChroma, nil
	case "clamp":
		return Clamp, nil
	default:
		return ReduceChroma, palerrors.NewValidationError("gamut_mapping",
			fmt.Sprintf("unknown gamut mapping %q (expected reduce-chroma or clamp)", name), nil)
	}
}

// FromColor converts c to HCT.
func FromColor(c colormodel.Color) HCT {
	lab := c.Lab()
	h := math.Atan2(lab.B, lab.A) * (180 / math.Pi)
	if h < 0 {
		h += 360
	}
	return HCT{
		H: h,
		C: math.Sqrt(lab.A*lab.A + lab.B*lab.B),
		T: lab.L,
	}
}

// Parse parses a CSS colour token and converts it to HCT.
func Parse(token string) (HCT, error) {
	c, err := colormodel.Parse(token)
	if err != nil {
		return HCT{}, err
	}
	return FromColor(c), nil
}

// Validate rejects non-finite coordinates.
func (h HCT) Validate() error {
	for _, field := range []struct {
		name  string
		value float64
	}{{"h", h.H}, {"c", h.C}, {"t", h.T}} {
		if math.IsNaN(field.value) || math.IsInf(field.value, 0) {
			return palerrors.NewValidationError(field.name, "must be a finite number", nil)
		}
	}
	return nil
}

// Normalized wraps the hue, floors chroma at zero and clamps tone into
// [0,100].
func (h HCT) Normalized() HCT {
	return HCT{
		H: colormodel.WrapHue(h.H),
		C: math.Max(0, h.C),
		T: math.Max(0, math.Min(100, h.T)),
	}
}

// Color converts h back to sRGB using the given gamut mapping. The result has
// integer channels.
func (h HCT) Color(mapping GamutMapping) (colormodel.Color, error) {
	if err := h.Validate(); err != nil {
		return colormodel.Color{}, err
	}
	return h.toColor(mapping), nil
}

// Hex converts h with ReduceChroma and formats it as #rrggbb.
func (h HCT) Hex() (string, error) {
	c, err := h.Color(ReduceChroma)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// toColor assumes h has finite fields.
func (h HCT) toColor(mapping GamutMapping) colormodel.Color {
	n := h.Normalized()
	rad := n.H * (math.Pi / 180)
	cos, sin := math.Cos(rad), math.Sin(rad)

	chroma := n.C
	r, g, b := colormodel.LabToRGB(n.T, chroma*cos, chroma*sin)
	if mapping == ReduceChroma {
		for !colormodel.InGamut(r, g, b) && chroma > 0 {
			chroma = math.Max(0, chroma-1)
			r, g, b = colormodel.LabToRGB(n.T, chroma*cos, chroma*sin)
		}
	}
	return colormodel.RGB(r, g, b).Rounded()
}

// Difference returns the Euclidean distance between a and b in CIE-Lab.
func Difference(a, b colormodel.Color) float64 {
	la, lb := a.Lab(), b.Lab()
	return math.Sqrt(
		math.Pow(lb.L-la.L, 2) + math.Pow(lb.A-la.A, 2) + math.Pow(lb.B-la.B, 2),
	)
}

package hct

import (
	"math"

	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
	palerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

// Defaults for the colour scheme helpers.
const (
	DefaultSplitAngle     = 30.0
	DefaultAnalogousCount = 3
	DefaultAnalogousAngle = 30.0
)

// DefaultTones returns the tone table used by Variants when none is given.
func DefaultTones() []float64 {
	return []float64{10, 20, 30, 40, 50, 60, 70, 80, 90}
}

func finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return palerrors.NewValidationError(field, "must be a finite number", nil)
	}
	return nil
}

// AdjustTone returns c with its tone replaced.
func AdjustTone(c colormodel.Color, tone float64) (colormodel.Color, error) {
	if err := finite("tone", tone); err != nil {
		return colormodel.Color{}, err
	}
	h := FromColor(c)
	h.T = tone
	return h.toColor(ReduceChroma), nil
}

// AdjustChroma returns c with its chroma replaced.
func AdjustChroma(c colormodel.Color, chroma float64) (colormodel.Color, error) {
	if err := finite("chroma", chroma); err != nil {
		return colormodel.Color{}, err
	}
	h := FromColor(c)
	h.C = chroma
	return h.toColor(ReduceChroma), nil
}

// AdjustHue returns c with its hue replaced.
func AdjustHue(c colormodel.Color, hue float64) (colormodel.Color, error) {
	if err := finite("hue", hue); err != nil {
		return colormodel.Color{}, err
	}
	h := FromColor(c)
	h.H = hue
	return h.toColor(ReduceChroma), nil
}

// RotateHue returns c with its hue rotated by degrees.
func RotateHue(c colormodel.Color, degrees float64) (colormodel.Color, error) {
	if err := finite("degrees", degrees); err != nil {
		return colormodel.Color{}, err
	}
	return rotate(c, degrees), nil
}

func rotate(c colormodel.Color, degrees float64) colormodel.Color {
	h := FromColor(c)
	h.H += degrees
	return h.toColor(ReduceChroma)
}

// Complementary returns c rotated by 180 degrees.
func Complementary(c colormodel.Color) colormodel.Color {
	return rotate(c, 180)
}

// Triadic returns c followed by its 120 and 240 degree rotations.
func Triadic(c colormodel.Color) []colormodel.Color {
	return []colormodel.Color{c, rotate(c, 120), rotate(c, 240)}
}

// SplitComplementary returns c followed by the two colours angle degrees
// either side of its complement.
func SplitComplementary(c colormodel.Color, angle float64) ([]colormodel.Color, error) {
	if err := finite("angle", angle); err != nil {
		return nil, err
	}
	return []colormodel.Color{c, rotate(c, 180-angle), rotate(c, 180+angle)}, nil
}

// Analogous returns count colours spaced angle degrees apart and centred on
// c's hue.
func Analogous(c colormodel.Color, count int, angle float64) ([]colormodel.Color, error) {
	if count < 1 {
		return nil, palerrors.NewValidationError("count", "must be at least 1", nil)
	}
	if err := finite("angle", angle); err != nil {
		return nil, err
	}

	start := -angle * float64(count/2)
	out := make([]colormodel.Color, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, rotate(c, start+angle*float64(i)))
	}
	return out, nil
}

// Variants returns theme re-rendered at each tone of the table, keeping its
// hue and chroma. A nil table selects DefaultTones. Tones outside [0,100]
// are skipped; an empty table or one with no usable tones is an error.
func Variants(theme colormodel.Color, tones []float64) ([]colormodel.Color, error) {
	if tones == nil {
		tones = DefaultTones()
	}
	if len(tones) == 0 {
		return nil, palerrors.NewValidationError("tones", "tone table must not be empty", nil)
	}

	base := FromColor(theme)
	out := make([]colormodel.Color, 0, len(tones))
	for _, tone := range tones {
		if math.IsNaN(tone) || tone < 0 || tone > 100 {
			continue
		}
		out = append(out, HCT{H: base.H, C: base.C, T: tone}.toColor(ReduceChroma))
	}
	if len(out) == 0 {
		return nil, palerrors.NewValidationError("tones", "no tone lies within [0,100]", nil)
	}
	return out, nil
}

package hct

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
	palerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

// BlendMode selects the blend algorithm.
type BlendMode int

const (
	// BlendLab interpolates L*, a* and b* linearly.
	BlendLab BlendMode = iota
	// BlendHCT interpolates hue along the shorter arc and chroma and tone
	// linearly.
	BlendHCT
	// BlendHueOnly keeps the first colour's chroma and tone and moves only
	// its hue.
	BlendHueOnly
)

// DefaultHarmonizeRatio is the hue pull used by Harmonize callers that have
// no preference.
const DefaultHarmonizeRatio = 0.15

var blendModeNames = map[BlendMode]string{
	BlendLab:     "lab",
	BlendHCT:     "hct",
	BlendHueOnly: "hue-only",
}

func (m BlendMode) String() string {
	if name, ok := blendModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("BlendMode(%d)", int(m))
}

// ParseBlendMode maps "lab", "hct" or "hue-only" to a BlendMode.
func ParseBlendMode(name string) (BlendMode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return BlendLab, nil
	}
	for mode, modeName := range blendModeNames {
		if modeName == key {
			return mode, nil
		}
	}
	return BlendLab, palerrors.NewValidationError("mode",
		fmt.Sprintf("unknown blend mode %q (expected lab, hct or hue-only)", name), nil)
}

// Blend mixes c1 toward c2 by ratio, which is clamped into [0,1]. A ratio of
// 0 yields c1 and 1 yields c2 (up to rounding and gamut mapping).
func Blend(c1, c2 colormodel.Color, ratio float64, mode BlendMode) colormodel.Color {
	ratio = clampUnit(ratio)
	switch mode {
	case BlendHCT:
		return blendHCT(c1, c2, ratio)
	case BlendHueOnly:
		return blendHueOnly(c1, c2, ratio)
	default:
		return blendLab(c1, c2, ratio)
	}
}

func blendLab(c1, c2 colormodel.Color, ratio float64) colormodel.Color {
	a, b := c1.Lab(), c2.Lab()
	return colormodel.FromLab(
		a.L+(b.L-a.L)*ratio,
		a.A+(b.A-a.A)*ratio,
		a.B+(b.B-a.B)*ratio,
	).Rounded()
}

func blendHCT(c1, c2 colormodel.Color, ratio float64) colormodel.Color {
	a, b := FromColor(c1), FromColor(c2)
	return HCT{
		H: lerpHue(a.H, b.H, ratio),
		C: math.Max(0, a.C+(b.C-a.C)*ratio),
		T: math.Max(0, math.Min(100, a.T+(b.T-a.T)*ratio)),
	}.toColor(ReduceChroma)
}

func blendHueOnly(c1, c2 colormodel.Color, ratio float64) colormodel.Color {
	a, b := FromColor(c1), FromColor(c2)
	return HCT{H: lerpHue(a.H, b.H, ratio), C: a.C, T: a.T}.toColor(ReduceChroma)
}

// Harmonize pulls target's hue toward theme's by ratio along the shorter arc
// while keeping target's chroma and tone.
func Harmonize(theme, target colormodel.Color, ratio float64) colormodel.Color {
	return Blend(target, theme, ratio, BlendHueOnly)
}

// lerpHue interpolates between two hues along the shorter arc and wraps the
// result into [0,360).
func lerpHue(from, to, ratio float64) float64 {
	diff := to - from
	if diff > 180 {
		diff -= 360
	} else if diff < -180 {
		diff += 360
	}

	h := from + diff*ratio
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return h
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

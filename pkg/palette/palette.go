// Package palette builds the 10-step tint/shade ramps used by the design
// system. Index 6 of a light ramp is the seed itself; indices 1-5 are
// progressively lighter tints and 7-10 progressively darker shades. Dark
// ramps mirror the light ramp and re-derive saturation so that the same
// seed reads well on dark backgrounds.
package palette

import (
	"math"

	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
)

const (
	// Size is the number of colours in a ramp.
	Size = 10
	// SeedIndex is the 1-based position of the seed in a light ramp.
	SeedIndex = 6
)

// ClampIndex folds an arbitrary index into [1,Size].
func ClampIndex(index int) int {
	return max(1, min(Size, index))
}

// Light returns the colour at the 1-based index of the light ramp built from
// seed. The index is clamped into [1,10].
func Light(seed colormodel.Color, index int) colormodel.Color {
	index = ClampIndex(index)
	if index == SeedIndex {
		return seed
	}
	return lightHSV(seed, index).Color()
}

// lightHSV returns the HSV coordinates of a light index other than the seed.
func lightHSV(seed colormodel.Color, index int) colormodel.HSV {
	hue := seed.Hue()
	hsv := seed.HSV()

	light := index < SeedIndex
	distance := index - SeedIndex
	if light {
		distance = SeedIndex - index
	}

	var s, v float64
	if light {
		s = LightSaturation(hsv.S, distance)
		v = LightValue(hsv.V, distance)
	} else {
		s = DarkSaturation(hsv.S, distance)
		v = DarkValue(hsv.V, distance)
	}
	return colormodel.HSV{H: ShiftHue(hue, light, distance), S: s, V: v}
}

// Dark returns the colour at the 1-based index of the dark-mode ramp built
// from seed. The index is clamped into [1,10].
//
// The dark colour at index i takes its hue and value from the light colour at
// 11-i and its saturation from a linear scale anchored at the seed's
// saturation, lowered by 15 or 20 points depending on the seed's hue band.
func Dark(seed colormodel.Color, index int) colormodel.Color {
	return darkHSV(seed, ClampIndex(index)).Color()
}

func darkHSV(seed colormodel.Color, index int) colormodel.HSV {
	mirror := Light(seed, Size+1-index).Rounded()
	anchor := darkAnchorSaturation(seed)

	return colormodel.HSV{H: mirror.Hue(), S: darkSaturation(anchor, index), V: mirror.HSV().V}
}

// FormatLight formats the light colour at index. Generated colours are
// formatted from their HSV coordinates, so HSL output keeps the shifted hue
// even for gray seeds.
func FormatLight(seed colormodel.Color, index int, format colormodel.Format) string {
	index = ClampIndex(index)
	if index == SeedIndex {
		return seed.Format(format)
	}
	return lightHSV(seed, index).Format(format)
}

// FormatDark formats the dark colour at index.
func FormatDark(seed colormodel.Color, index int, format colormodel.Format) string {
	return darkHSV(seed, ClampIndex(index)).Format(format)
}

func darkAnchorSaturation(seed colormodel.Color) float64 {
	h := seed.Hue()
	s := seed.HSV().S
	if h >= 50 && h < 191 {
		return s - 20
	}
	return s - 15
}

func darkSaturation(anchor float64, index int) float64 {
	base := clampPercent(anchor)
	switch {
	case index < SeedIndex:
		step := math.Ceil((100 - base) / 5)
		return base + float64(SeedIndex-index)*step
	case index == SeedIndex:
		return anchor
	default:
		step := math.Ceil((base - 9) / 4)
		return base - step*float64(index-SeedIndex)
	}
}

// LightRamp returns all ten colours of the light ramp, lightest first.
func LightRamp(seed colormodel.Color) []colormodel.Color {
	return ramp(seed, Light)
}

// DarkRamp returns all ten colours of the dark ramp, darkest first.
func DarkRamp(seed colormodel.Color) []colormodel.Color {
	return ramp(seed, Dark)
}

// FormatRamp formats all ten colours of the light or dark ramp.
func FormatRamp(seed colormodel.Color, dark bool, format colormodel.Format) []string {
	at := FormatLight
	if dark {
		at = FormatDark
	}
	out := make([]string, 0, Size)
	for i := 1; i <= Size; i++ {
		out = append(out, at(seed, i, format))
	}
	return out
}

func ramp(seed colormodel.Color, at func(colormodel.Color, int) colormodel.Color) []colormodel.Color {
	out := make([]colormodel.Color, 0, Size)
	for i := 1; i <= Size; i++ {
		out = append(out, at(seed, i))
	}
	return out
}

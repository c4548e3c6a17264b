package linear

import (
	"fmt"
	"math"

	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
	palerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

// Defaults for gray and monochrome ramps.
const (
	DefaultGrayStart      = "#ffffff"
	DefaultGrayEnd        = "#000000"
	DefaultLightnessRange = 80.0

	monochromeCeiling = 95.0
	monochromeFloor   = 5.0
)

// GrayOptions controls Gray.
type GrayOptions struct {
	Start  string
	End    string
	Steps  int
	Format colormodel.Format
}

// Gray returns an RGB ramp between two grays, white to black by default.
func Gray(opts GrayOptions) ([]string, error) {
	start, end := opts.Start, opts.End
	if start == "" {
		start = DefaultGrayStart
	}
	if end == "" {
		end = DefaultGrayEnd
	}
	return Generate(start, end, Options{Steps: opts.Steps, Format: opts.Format})
}

// MonochromeOptions controls Monochrome. MinLightness and MaxLightness take
// effect only when both are set; otherwise the ramp spans LightnessRange
// centred on the base colour's lightness.
type MonochromeOptions struct {
	Steps          int
	LightnessRange float64
	MinLightness   *float64
	MaxLightness   *float64
	Format         colormodel.Format
}

// Bounds returns the lightest and darkest HSL lightness of a monochrome ramp
// for a base colour with lightness l.
func (o MonochromeOptions) Bounds(l float64) (hi, lo float64, err error) {
	if o.MinLightness != nil && o.MaxLightness != nil {
		minL, maxL := *o.MinLightness, *o.MaxLightness
		if math.IsNaN(minL) || math.IsNaN(maxL) {
			return 0, 0, palerrors.NewValidationError("min_lightness", "lightness bounds must be numbers", nil)
		}
		if minL > maxL {
			return 0, 0, palerrors.NewValidationError("min_lightness",
				fmt.Sprintf("must not exceed max_lightness (%g > %g)", minL, maxL), nil)
		}
		return clamp(maxL, 0, 100), clamp(minL, 0, 100), nil
	}

	lightnessRange := o.LightnessRange
	if lightnessRange == 0 {
		lightnessRange = DefaultLightnessRange
	}
	if math.IsNaN(lightnessRange) {
		return 0, 0, palerrors.NewValidationError("lightness_range", "must be a number", nil)
	}
	return math.Min(monochromeCeiling, l+lightnessRange/2), math.Max(monochromeFloor, l-lightnessRange/2), nil
}

// MonochromeColors returns a light-to-dark ramp that keeps the hue and
// saturation of base and varies only its HSL lightness.
func MonochromeColors(base colormodel.Color, opts MonochromeOptions) ([]colormodel.Color, error) {
	hsl := base.HSL()
	hi, lo, err := opts.Bounds(hsl.L)
	if err != nil {
		return nil, err
	}

	start := colormodel.FromHSL(hsl.H, hsl.S, hi).Rounded()
	end := colormodel.FromHSL(hsl.H, hsl.S, lo).Rounded()
	return Interpolate(start, end, Options{Steps: opts.Steps})
}

// Monochrome parses base and returns its monochrome ramp formatted as
// opts.Format.
func Monochrome(base string, opts MonochromeOptions) ([]string, error) {
	c, err := colormodel.Parse(base)
	if err != nil {
		return nil, err
	}
	colors, err := MonochromeColors(c, opts)
	if err != nil {
		return nil, err
	}
	return Format(colors, opts.Format), nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

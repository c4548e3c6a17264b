// Package linear interpolates evenly spaced colour ramps between two
// endpoints in RGB or HSL space, and builds gray and monochrome ramps on top
// of that.
package linear

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
	palerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

// DefaultSteps is used when Options.Steps is zero.
const DefaultSteps = 10

// Space selects the colour space samples are interpolated in.
type Space int

const (
	SpaceRGB Space = iota
	SpaceHSL
)

func (s Space) String() string {
	switch s {
	case SpaceHSL:
		return "hsl"
	default:
		return "rgb"
	}
}

// ParseSpace maps "rgb" or "hsl" to a Space.
func ParseSpace(name string) (Space, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "rgb":
		return SpaceRGB, nil
	case "hsl":
		return SpaceHSL, nil
	default:
		return SpaceRGB, palerrors.NewValidationError("space", fmt.Sprintf("unknown interpolation space %q (expected rgb or hsl)", name), nil)
	}
}

// Options controls an interpolation.
type Options struct {
	// Steps is the number of colours returned. Zero means DefaultSteps.
	Steps int
	// Space is the interpolation space.
	Space Space
	// ExcludeEnds drops both endpoints while still returning Steps colours.
	ExcludeEnds bool
	// Format is the output representation used by the string helpers.
	Format colormodel.Format
}

func (o Options) steps() int {
	if o.Steps == 0 {
		return DefaultSteps
	}
	return o.Steps
}

// Interpolate returns opts.Steps colours evenly spaced between start and end.
// With ExcludeEnds the ramp is sampled at Steps+2 points and the two
// endpoints are discarded.
func Interpolate(start, end colormodel.Color, opts Options) ([]colormodel.Color, error) {
	steps := opts.steps()
	if steps < 2 {
		return nil, palerrors.NewStepCountError(steps)
	}

	samples := steps
	if opts.ExcludeEnds {
		samples = steps + 2
	}

	sample := rgbSampler(start, end)
	if opts.Space == SpaceHSL {
		sample = hslSampler(start, end)
	}

	stepSize := 1 / float64(samples-1)
	out := make([]colormodel.Color, 0, steps)
	for i := 0; i < samples; i++ {
		if opts.ExcludeEnds && (i == 0 || i == samples-1) {
			continue
		}
		out = append(out, sample(float64(i)*stepSize))
	}
	return out, nil
}

func rgbSampler(start, end colormodel.Color) func(float64) colormodel.Color {
	return func(ratio float64) colormodel.Color {
		return colormodel.RGB(
			math.Floor(start.R+(end.R-start.R)*ratio+0.5),
			math.Floor(start.G+(end.G-start.G)*ratio+0.5),
			math.Floor(start.B+(end.B-start.B)*ratio+0.5),
		)
	}
}

func hslSampler(start, end colormodel.Color) func(float64) colormodel.Color {
	from, to := start.HSL(), end.HSL()

	startHue, endHue := from.H, to.H
	if diff := endHue - startHue; math.Abs(diff) > 180 {
		if diff > 0 {
			startHue += 360
		} else {
			endHue += 360
		}
	}

	return func(ratio float64) colormodel.Color {
		h := startHue + (endHue-startHue)*ratio
		s := from.S + (to.S-from.S)*ratio
		l := from.L + (to.L-from.L)*ratio
		return colormodel.FromHSL(h, s, l)
	}
}

// Generate parses both endpoints and returns an RGB ramp formatted as
// opts.Format. opts.Space is ignored.
func Generate(start, end string, opts Options) ([]string, error) {
	opts.Space = SpaceRGB
	return generate(start, end, opts)
}

// GenerateHSL is Generate interpolating in HSL space along the shorter hue
// arc.
func GenerateHSL(start, end string, opts Options) ([]string, error) {
	opts.Space = SpaceHSL
	return generate(start, end, opts)
}

func generate(start, end string, opts Options) ([]string, error) {
	from, err := colormodel.Parse(start)
	if err != nil {
		return nil, err
	}
	to, err := colormodel.Parse(end)
	if err != nil {
		return nil, err
	}

	colors, err := Interpolate(from, to, opts)
	if err != nil {
		return nil, err
	}
	return Format(colors, opts.Format), nil
}

// Format renders every colour in the given format.
func Format(colors []colormodel.Color, format colormodel.Format) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Format(format)
	}
	return out
}

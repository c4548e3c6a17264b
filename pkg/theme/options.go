package theme

import (
	"math"

	"github.com/alexisbeaulieu97/palettekit/internal/validation"
	"github.com/alexisbeaulieu97/palettekit/pkg/linear"
)

// Ramp sizing limits shared by every composed ramp.
const (
	MinSteps          = 2
	MaxSteps          = 100
	MinLightnessRange = 20.0
	MaxLightnessRange = 95.0
)

// Defaults used when the corresponding option is unset.
const (
	DefaultControlBaseGray   = "#989898"
	DefaultControlBlendRatio = 0.08
	DefaultControlSteps      = 12
	DefaultControlRange      = 85.0

	DefaultSemanticBlendRatio = 0.0
	DefaultSemanticSteps      = 10
	DefaultSemanticRange      = 80.0

	DefaultThemeSteps = 10
	DefaultThemeRange = 80.0

	DefaultInterfaceBaseGray      = "#666666"
	DefaultInterfaceSemanticRatio = 0.12

	DefaultHarmonizeRatio = 0.15
	DefaultBlendRatio     = 0.12
)

// Float returns a pointer to v, for the optional numeric fields of the
// option structs.
func Float(v float64) *float64 {
	return &v
}

// RampOptions sizes a ramp. Zero values select the defaults of the ramp
// being built. MinLightness and MaxLightness replace LightnessRange when
// both are set.
type RampOptions struct {
	Steps          int      `yaml:"steps"`
	LightnessRange float64  `yaml:"lightness_range" validate:"finite"`
	MinLightness   *float64 `yaml:"min_lightness" validate:"omitempty,finite"`
	MaxLightness   *float64 `yaml:"max_lightness" validate:"omitempty,finite"`
	Dark           bool     `yaml:"dark"`
}

// rampSettings is RampOptions after defaults and clamps are applied.
type rampSettings struct {
	steps int
	mono  linear.MonochromeOptions
	dark  bool
}

func (o RampOptions) normalize(field string, defaultSteps int, defaultRange float64) (rampSettings, error) {
	if err := validation.Struct(o); err != nil {
		return rampSettings{}, prefixField(field, err)
	}
	if err := validation.CheckLightnessBounds(field+".", o.MinLightness, o.MaxLightness); err != nil {
		return rampSettings{}, err
	}

	steps := o.Steps
	if steps == 0 {
		steps = defaultSteps
	}
	steps = max(MinSteps, min(MaxSteps, steps))

	settings := rampSettings{
		steps: steps,
		dark:  o.Dark,
		mono:  linear.MonochromeOptions{Steps: steps},
	}

	if o.MinLightness != nil && o.MaxLightness != nil {
		settings.mono.MinLightness = o.MinLightness
		settings.mono.MaxLightness = o.MaxLightness
		return settings, nil
	}

	lightnessRange := o.LightnessRange
	if lightnessRange == 0 {
		lightnessRange = defaultRange
	}
	settings.mono.LightnessRange = math.Max(MinLightnessRange, math.Min(MaxLightnessRange, lightnessRange))
	return settings, nil
}

// ControlOptions configures Controls.
type ControlOptions struct {
	BaseGray   string      `yaml:"base_gray" validate:"omitempty,csscolor"`
	BlendRatio *float64    `yaml:"blend_ratio" validate:"omitempty,finite"`
	Ramp       RampOptions `yaml:",inline"`
}

// SemanticOptions configures Semantic. A nil Colors uses the composer's
// semantic colours.
type SemanticOptions struct {
	Colors     NamedColors `yaml:"colors"`
	BlendRatio *float64    `yaml:"blend_ratio" validate:"omitempty,finite"`
	Ramp       RampOptions `yaml:",inline"`
}

// ThemeOptions configures Theme.
type ThemeOptions struct {
	Ramp RampOptions `yaml:",inline"`
}

// InterfaceOptions configures Interface. Dark applies to all three ramps.
type InterfaceOptions struct {
	BaseGray           string      `yaml:"base_gray" validate:"omitempty,csscolor"`
	ControlBlendRatio  *float64    `yaml:"control_blend_ratio" validate:"omitempty,finite"`
	SemanticBlendRatio *float64    `yaml:"semantic_blend_ratio" validate:"omitempty,finite"`
	SemanticColors     NamedColors `yaml:"semantic_colors"`
	Controls           RampOptions `yaml:"controls"`
	Semantic           RampOptions `yaml:"semantic"`
	Theme              RampOptions `yaml:"theme"`
	Dark               bool        `yaml:"dark"`
}

// PaletteOptions configures Palette. Nil colour maps use the composer's
// defaults.
type PaletteOptions struct {
	SemanticColors NamedColors `yaml:"semantic_colors"`
	UIColors       NamedColors `yaml:"ui_colors"`
	HarmonizeRatio *float64    `yaml:"harmonize_ratio" validate:"omitempty,finite"`
	BlendRatio     *float64    `yaml:"blend_ratio" validate:"omitempty,finite"`
	Dark           bool        `yaml:"dark"`
}

// ratio resolves an optional ratio, clamped into [0,1].
func ratio(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return math.Max(0, math.Min(1, *v))
}

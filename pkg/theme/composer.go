// Package theme composes the named ramp sets a design system consumes:
// neutral control grays, semantic ramps, the theme ramp and blended UI
// surface colours. Every ramp is built the same way: a base colour is blended
// toward the theme colour, spread into a monochrome ramp, and reversed for
// dark mode.
package theme

import (
	"errors"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/palettekit/internal/validation"
	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
	palerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
	"github.com/alexisbeaulieu97/palettekit/pkg/hct"
	"github.com/alexisbeaulieu97/palettekit/pkg/linear"
)

// DefaultSemanticColors returns the built-in semantic colours. Each call
// returns fresh data.
func DefaultSemanticColors() NamedColors {
	return NamedColors{
		{Name: "success", Color: "#52c41a"},
		{Name: "warning", Color: "#faad14"},
		{Name: "error", Color: "#ff4d4f"},
		{Name: "info", Color: "#1890ff"},
	}
}

// DefaultUIColors returns the built-in surface colours. Each call returns
// fresh data.
func DefaultUIColors() NamedColors {
	return NamedColors{
		{Name: "background", Color: "#ffffff"},
		{Name: "surface", Color: "#fafafa"},
		{Name: "border", Color: "#d9d9d9"},
		{Name: "disabled", Color: "#f5f5f5"},
	}
}

// Composer builds ramp sets. The zero value is not usable; call New.
// A Composer is immutable and safe for concurrent use.
type Composer struct {
	parser   colormodel.Parser
	log      zerolog.Logger
	semantic NamedColors
	ui       NamedColors
}

// Option customises a Composer.
type Option func(*Composer)

// WithParser sets the colour parser used for every string input.
func WithParser(p colormodel.Parser) Option {
	return func(c *Composer) {
		if p != nil {
			c.parser = p
		}
	}
}

// WithLogger sets the logger that receives per-entry failures.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Composer) {
		c.log = log
	}
}

// WithSemanticColors replaces the default semantic colours.
func WithSemanticColors(colors NamedColors) Option {
	return func(c *Composer) {
		c.semantic = colors.Clone()
	}
}

// WithUIColors replaces the default UI colours.
func WithUIColors(colors NamedColors) Option {
	return func(c *Composer) {
		c.ui = colors.Clone()
	}
}

// New returns a Composer with the CSS parser, a disabled logger and the
// built-in colour tables, modified by opts.
func New(opts ...Option) *Composer {
	c := &Composer{
		parser:   colormodel.CSSParser{},
		log:      zerolog.Nop(),
		semantic: DefaultSemanticColors(),
		ui:       DefaultUIColors(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SemanticColors returns a copy of the composer's semantic colours.
func (c *Composer) SemanticColors() NamedColors {
	return c.semantic.Clone()
}

// UIColors returns a copy of the composer's UI colours.
func (c *Composer) UIColors() NamedColors {
	return c.ui.Clone()
}

func (c *Composer) parseTheme(theme string) (colormodel.Color, error) {
	if strings.TrimSpace(theme) == "" {
		return colormodel.Color{}, palerrors.NewValidationError("theme", "theme color is required", nil)
	}
	return c.parser.Parse(theme)
}

// spread blends base toward theme and expands the result into a ramp.
func (c *Composer) spread(name string, base, theme colormodel.Color, blendRatio float64, settings rampSettings) (Ramp, error) {
	blended := hct.Blend(base, theme, blendRatio, hct.BlendLab)
	return rampFrom(name, blended, settings)
}

func rampFrom(name string, base colormodel.Color, settings rampSettings) (Ramp, error) {
	colors, err := linear.MonochromeColors(base, settings.mono)
	if err != nil {
		return Ramp{}, err
	}
	if settings.dark {
		slices.Reverse(colors)
	}
	return Ramp{Name: name, Colors: linear.Format(colors, colormodel.FormatHex)}, nil
}

// Controls returns the neutral ramp gray-1..N: the base gray nudged toward
// the theme colour, spread from light to dark.
func (c *Composer) Controls(theme string, opts ControlOptions) (Ramp, error) {
	themeColor, err := c.parseTheme(theme)
	if err != nil {
		return Ramp{}, err
	}
	if err := validation.Struct(opts); err != nil {
		return Ramp{}, err
	}
	settings, err := opts.Ramp.normalize("controls", DefaultControlSteps, DefaultControlRange)
	if err != nil {
		return Ramp{}, err
	}

	baseToken := opts.BaseGray
	if baseToken == "" {
		baseToken = DefaultControlBaseGray
	}
	base, err := c.parser.Parse(baseToken)
	if err != nil {
		return Ramp{}, err
	}

	return c.spread("gray", base, themeColor, ratio(opts.BlendRatio, DefaultControlBlendRatio), settings)
}

// Semantic returns one ramp per semantic colour, named after the entry.
// Entries whose colour cannot be used are logged and left out.
func (c *Composer) Semantic(theme string, opts SemanticOptions) (Ramps, error) {
	themeColor, err := c.parseTheme(theme)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(opts); err != nil {
		return nil, err
	}

	colors := opts.Colors
	if colors == nil {
		colors = c.semantic
	}
	if err := validation.CheckUniqueNames("semantic", colors.Names()); err != nil {
		return nil, err
	}

	settings, err := opts.Ramp.normalize("semantic", DefaultSemanticSteps, DefaultSemanticRange)
	if err != nil {
		return nil, err
	}
	blendRatio := ratio(opts.BlendRatio, DefaultSemanticBlendRatio)

	ramps := make(Ramps, 0, len(colors))
	for _, entry := range colors {
		base, err := c.parser.Parse(entry.Color)
		if err != nil {
			c.log.Warn().
				Str("key", entry.Name).
				Str("color", entry.Color).
				Err(palerrors.NewEntryError(entry.Name, err)).
				Msg("skipping semantic color")
			continue
		}

		ramp, err := c.spread(entry.Name, base, themeColor, blendRatio, settings)
		if err != nil {
			c.log.Warn().Str("key", entry.Name).Err(err).Msg("skipping semantic color")
			continue
		}
		ramps = append(ramps, ramp)
	}
	return ramps, nil
}

// Theme returns the theme ramp theme-1..N.
func (c *Composer) Theme(theme string, opts ThemeOptions) (Ramp, error) {
	themeColor, err := c.parseTheme(theme)
	if err != nil {
		return Ramp{}, err
	}
	settings, err := opts.Ramp.normalize("theme", DefaultThemeSteps, DefaultThemeRange)
	if err != nil {
		return Ramp{}, err
	}
	return rampFrom("theme", themeColor, settings)
}

// BlendUI tints the theme colour with every UI colour: each entry becomes
// the theme colour moved toward that UI colour by blendRatio, so low ratios
// stay close to the theme. Entries that cannot be blended are logged and
// kept unchanged.
func (c *Composer) BlendUI(theme string, colors NamedColors, blendRatio float64) (NamedColors, error) {
	themeColor, err := c.parseTheme(theme)
	if err != nil {
		return nil, err
	}
	if err := validation.Var("blend_ratio", blendRatio, "finite"); err != nil {
		return nil, err
	}
	if colors == nil {
		colors = c.ui
	}
	if err := validation.CheckUniqueNames("ui", colors.Names()); err != nil {
		return nil, err
	}

	blendRatio = ratio(&blendRatio, 0)
	out := make(NamedColors, 0, len(colors))
	for _, entry := range colors {
		base, err := c.parser.Parse(entry.Color)
		if err != nil {
			c.log.Warn().
				Str("key", entry.Name).
				Str("color", entry.Color).
				Err(palerrors.NewEntryError(entry.Name, err)).
				Msg("keeping unblended ui color")
			out = append(out, entry)
			continue
		}
		blended := hct.Blend(themeColor, base, blendRatio, hct.BlendLab)
		out = append(out, NamedColor{Name: entry.Name, Color: blended.Hex()})
	}
	return out, nil
}

// InterfaceSystem is the result of Interface.
type InterfaceSystem struct {
	Controls Ramp  `json:"controls" yaml:"controls"`
	Semantic Ramps `json:"semantic" yaml:"semantic"`
	Theme    Ramp  `json:"theme" yaml:"theme"`
}

// Interface builds controls, semantic and theme ramps in one call.
func (c *Composer) Interface(theme string, opts InterfaceOptions) (InterfaceSystem, error) {
	if err := validation.Struct(opts); err != nil {
		return InterfaceSystem{}, err
	}

	baseGray := opts.BaseGray
	if baseGray == "" {
		baseGray = DefaultInterfaceBaseGray
	}

	controlRamp := opts.Controls
	controlRamp.Dark = controlRamp.Dark || opts.Dark
	controls, err := c.Controls(theme, ControlOptions{
		BaseGray:   baseGray,
		BlendRatio: Float(ratio(opts.ControlBlendRatio, DefaultControlBlendRatio)),
		Ramp:       controlRamp,
	})
	if err != nil {
		return InterfaceSystem{}, err
	}

	semanticRamp := opts.Semantic
	semanticRamp.Dark = semanticRamp.Dark || opts.Dark
	semantic, err := c.Semantic(theme, SemanticOptions{
		Colors:     opts.SemanticColors,
		BlendRatio: Float(ratio(opts.SemanticBlendRatio, DefaultInterfaceSemanticRatio)),
		Ramp:       semanticRamp,
	})
	if err != nil {
		return InterfaceSystem{}, err
	}

	themeRamp := opts.Theme
	themeRamp.Dark = themeRamp.Dark || opts.Dark
	themeColors, err := c.Theme(theme, ThemeOptions{Ramp: themeRamp})
	if err != nil {
		return InterfaceSystem{}, err
	}

	return InterfaceSystem{Controls: controls, Semantic: semantic, Theme: themeColors}, nil
}

// ThemePalette is the result of Palette.
type ThemePalette struct {
	Theme    Ramp        `json:"theme" yaml:"theme"`
	Controls Ramp        `json:"controls" yaml:"controls"`
	Semantic Ramps       `json:"semantic" yaml:"semantic"`
	UI       NamedColors `json:"ui" yaml:"ui"`
}

// Palette builds the complete theme palette: the theme ramp, controls
// blended at half the blend ratio, semantic ramps pulled toward the theme by
// the harmonize ratio, and blended UI colours.
func (c *Composer) Palette(theme string, opts PaletteOptions) (ThemePalette, error) {
	if err := validation.Struct(opts); err != nil {
		return ThemePalette{}, err
	}

	harmonize := ratio(opts.HarmonizeRatio, DefaultHarmonizeRatio)
	blend := ratio(opts.BlendRatio, DefaultBlendRatio)
	ramp := RampOptions{Dark: opts.Dark}

	themeRamp, err := c.Theme(theme, ThemeOptions{Ramp: ramp})
	if err != nil {
		return ThemePalette{}, err
	}

	controls, err := c.Controls(theme, ControlOptions{BlendRatio: Float(blend * 0.5), Ramp: ramp})
	if err != nil {
		return ThemePalette{}, err
	}

	semantic, err := c.Semantic(theme, SemanticOptions{
		Colors:     opts.SemanticColors,
		BlendRatio: Float(harmonize),
		Ramp:       ramp,
	})
	if err != nil {
		return ThemePalette{}, err
	}

	uiColors := opts.UIColors
	if uiColors == nil {
		uiColors = c.ui
	}
	ui, err := c.BlendUI(theme, uiColors, blend)
	if err != nil {
		return ThemePalette{}, err
	}

	return ThemePalette{Theme: themeRamp, Controls: controls, Semantic: semantic, UI: ui}, nil
}

// prefixField nests the field of a validation error under prefix.
func prefixField(prefix string, err error) error {
	var ve *palerrors.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	field := prefix + "." + ve.Field
	return palerrors.NewValidationError(field, strings.Replace(ve.Message, ve.Field, field, 1), ve.Err)
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettekit/internal/config"
	"github.com/alexisbeaulieu97/palettekit/internal/render"
	"github.com/alexisbeaulieu97/palettekit/internal/validation"
	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
	"github.com/alexisbeaulieu97/palettekit/pkg/theme"
)

type themeOptions struct {
	configPath string
	mode       string
	dark       bool
	format     string
}

func newThemeCmd(app *AppContext) *cobra.Command {
	opts := &themeOptions{}

	cmd := &cobra.Command{
		Use:   "theme [color]",
		Short: "Compose an interface colour system or a full theme palette",
		Long: `Compose the ramps a design system needs from one theme colour.

The interface mode returns gray controls, semantic ramps and the theme ramp.
The palette mode adds blended UI surface colours and harmonises the semantic
ramps toward the theme. A YAML document passed with --config can set every
option; a colour argument overrides the document's theme.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, app, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Theme document (YAML)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", config.ModeInterface, "What to compose (interface, palette)")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "Reverse every ramp for dark mode")
	addColorFormatFlag(cmd, &opts.format)

	return cmd
}

func runTheme(cmd *cobra.Command, app *AppContext, args []string, opts *themeOptions) error {
	doc, err := loadThemeDocument(cmd, app, opts)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		doc.Theme = args[0]
	}
	if strings.TrimSpace(doc.Theme) == "" {
		return newCommandError("compose theme", "reading the theme colour", fmt.Errorf("no theme colour given"), "Pass a colour argument or set theme: in the --config document.")
	}

	composer := app.Composer
	if composerOpts := doc.ComposerOptions(); len(composerOpts) > 0 {
		composer = theme.New(append(composerOpts, theme.WithLogger(app.Log.Zerolog()))...)
	}

	logger := app.Log.WithFields(map[string]any{"theme": doc.Theme, "mode": doc.Mode, "dark": doc.Dark})
	logger.Debug("composing theme")

	switch doc.Mode {
	case config.ModePalette:
		result, err := composer.Palette(doc.Theme, doc.PaletteOptions())
		if err != nil {
			return newCommandError("compose theme", fmt.Sprintf("building the palette of %q", doc.Theme), err, suggestFor(err))
		}
		result = reformatPalette(result, doc.Format)

		sections := []render.Section{render.RampSection(result.Theme), render.RampSection(result.Controls)}
		for _, ramp := range result.Semantic {
			sections = append(sections, render.RampSection(ramp))
		}
		sections = append(sections, render.Named("ui", result.UI))
		return app.Renderer(cmd).Render(result, sections...)
	default:
		result, err := composer.Interface(doc.Theme, doc.InterfaceOptions())
		if err != nil {
			return newCommandError("compose theme", fmt.Sprintf("building the interface colours of %q", doc.Theme), err, suggestFor(err))
		}
		result = reformatInterface(result, doc.Format)

		sections := []render.Section{render.RampSection(result.Controls)}
		for _, ramp := range result.Semantic {
			sections = append(sections, render.RampSection(ramp))
		}
		sections = append(sections, render.RampSection(result.Theme))
		return app.Renderer(cmd).Render(result, sections...)
	}
}

// loadThemeDocument reads --config when given and lets explicitly set flags
// override the document.
func loadThemeDocument(cmd *cobra.Command, app *AppContext, opts *themeOptions) (*config.Document, error) {
	doc := &config.Document{Mode: config.ModeInterface}

	if opts.configPath != "" {
		if err := validation.CheckFileExists(opts.configPath); err != nil {
			return nil, newCommandError("compose theme", fmt.Sprintf("opening %q", opts.configPath), err, "Check that the file exists and you have permission to read it.")
		}
		parsed, err := config.ParseFile(opts.configPath)
		if err != nil {
			return nil, newCommandError("compose theme", fmt.Sprintf("loading %q", opts.configPath), err, "Fix the document errors shown above and try again.")
		}
		app.Log.Debug("loaded theme document " + opts.configPath)
		doc = parsed
	}

	flags := cmd.Flags()
	if flags.Changed("mode") || opts.configPath == "" {
		doc.Mode = opts.mode
	}
	if flags.Changed("dark") {
		doc.Dark = opts.dark
	}
	if flags.Changed("format") {
		format, err := parseColorFormat(opts.format)
		if err != nil {
			return nil, err
		}
		doc.Format = format
	}

	if doc.Mode != config.ModeInterface && doc.Mode != config.ModePalette {
		return nil, newCommandError("compose theme", fmt.Sprintf("reading --mode %q", doc.Mode), fmt.Errorf("unknown mode"), "Use interface or palette.")
	}
	return doc, nil
}

func reformatRamp(r theme.Ramp, format colormodel.Format) theme.Ramp {
	if format == colormodel.FormatHex {
		return r
	}
	out := theme.Ramp{Name: r.Name, Colors: make([]string, len(r.Colors))}
	for i, c := range r.Colors {
		out.Colors[i] = reformatColor(c, format)
	}
	return out
}

func reformatColor(value string, format colormodel.Format) string {
	c, err := colormodel.Parse(value)
	if err != nil {
		return value
	}
	return c.Format(format)
}

func reformatInterface(s theme.InterfaceSystem, format colormodel.Format) theme.InterfaceSystem {
	out := theme.InterfaceSystem{
		Controls: reformatRamp(s.Controls, format),
		Theme:    reformatRamp(s.Theme, format),
		Semantic: make(theme.Ramps, len(s.Semantic)),
	}
	for i, r := range s.Semantic {
		out.Semantic[i] = reformatRamp(r, format)
	}
	return out
}

func reformatPalette(p theme.ThemePalette, format colormodel.Format) theme.ThemePalette {
	out := theme.ThemePalette{
		Theme:    reformatRamp(p.Theme, format),
		Controls: reformatRamp(p.Controls, format),
		Semantic: make(theme.Ramps, len(p.Semantic)),
		UI:       make(theme.NamedColors, len(p.UI)),
	}
	for i, r := range p.Semantic {
		out.Semantic[i] = reformatRamp(r, format)
	}
	for i, c := range p.UI {
		out.UI[i] = theme.NamedColor{Name: c.Name, Color: reformatColor(c.Color, format)}
	}
	return out
}

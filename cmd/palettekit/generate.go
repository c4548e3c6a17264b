package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettekit/internal/render"
	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
	"github.com/alexisbeaulieu97/palettekit/pkg/palette"
)

type generateOptions struct {
	index  int
	dark   bool
	list   bool
	format string
}

type generatePayload struct {
	Seed   string   `json:"seed" yaml:"seed"`
	Dark   bool     `json:"dark" yaml:"dark"`
	Index  int      `json:"index,omitempty" yaml:"index,omitempty"`
	Color  string   `json:"color,omitempty" yaml:"color,omitempty"`
	Colors []string `json:"colors,omitempty" yaml:"colors,omitempty"`
}

func newGenerateCmd(app *AppContext) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <color>",
		Short: "Generate one colour or the full 10-step palette of a seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.index, "index", "i", palette.SeedIndex, "Palette position from 1 (lightest) to 10")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "Use the dark-mode ramp")
	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "Print all 10 colours")
	addColorFormatFlag(cmd, &opts.format)

	return cmd
}

func runGenerate(cmd *cobra.Command, app *AppContext, seed string, opts *generateOptions) error {
	format, err := parseColorFormat(opts.format)
	if err != nil {
		return err
	}

	if opts.index < 1 || opts.index > palette.Size {
		app.Log.Warn(fmt.Sprintf("index %d is outside 1..%d and will be clamped", opts.index, palette.Size))
	}

	genOpts := palette.Options{Index: palette.ClampIndex(opts.index), Dark: opts.dark, Format: format}
	payload := generatePayload{Seed: seed, Dark: opts.dark}

	if opts.list {
		colors, err := palette.GenerateList(seed, genOpts)
		if err != nil {
			return newCommandError("generate", fmt.Sprintf("building the palette of %q", seed), err, suggestFor(err))
		}
		payload.Colors = colors
		return app.Renderer(cmd).Render(payload, render.Values("", colors))
	}

	color, err := palette.Generate(seed, genOpts)
	if err != nil {
		return newCommandError("generate", fmt.Sprintf("building colour %d of %q", genOpts.Index, seed), err, suggestFor(err))
	}
	payload.Index = genOpts.Index
	payload.Color = color
	return app.Renderer(cmd).Render(payload, render.Values("", []string{color}))
}

func addColorFormatFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "format", "f", colormodel.FormatHex.String(), "Colour notation (hex, rgb, hsl)")
}

func parseColorFormat(name string) (colormodel.Format, error) {
	format, err := colormodel.ParseFormatStrict(name)
	if err != nil {
		return format, newCommandError("format colours", fmt.Sprintf("reading --format %q", name), err, "Use hex, rgb or hsl.")
	}
	return format, nil
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettekit/internal/render"
	"github.com/alexisbeaulieu97/palettekit/pkg/palette"
)

func newPresetsCmd(app *AppContext) *cobra.Command {
	var dark bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in brand colours with their light and dark palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			palettes, err := palette.PresetPalettes(palette.DefaultPresets())
			if err != nil {
				return newCommandError("list presets", "expanding preset colours", err, suggestFor(err))
			}

			sections := make([]render.Section, 0, len(palettes))
			for _, p := range palettes {
				colors := p.Light
				if dark {
					colors = p.Dark
				}
				sections = append(sections, render.Indexed(p.Name, colors))
			}
			return app.Renderer(cmd).Render(palettes, sections...)
		},
	}

	cmd.Flags().BoolVar(&dark, "dark", false, "Show the dark-mode ramps in text and table output")

	return cmd
}

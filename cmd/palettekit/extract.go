package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettekit/internal/extract"
	"github.com/alexisbeaulieu97/palettekit/internal/render"
	"github.com/alexisbeaulieu97/palettekit/internal/validation"
	"github.com/alexisbeaulieu97/palettekit/pkg/palette"
)

type extractOptions struct {
	maxSize     int
	withPalette bool
}

type extractPayload struct {
	Image   string   `json:"image" yaml:"image"`
	Color   string   `json:"color" yaml:"color"`
	Palette []string `json:"palette,omitempty" yaml:"palette,omitempty"`
}

func newExtractCmd(app *AppContext) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Find the dominant colour of an image",
		Long:  "Find the dominant colour of a PNG, JPEG, GIF, BMP, TIFF or WebP image.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.maxSize, "max-size", extract.DefaultMaxDimension, "Largest side, in pixels, of the sampled image")
	cmd.Flags().BoolVarP(&opts.withPalette, "palette", "p", false, "Also print the palette of the dominant colour")

	return cmd
}

func runExtract(cmd *cobra.Command, app *AppContext, path string, opts *extractOptions) error {
	if err := validation.CheckFileExists(path); err != nil {
		return newCommandError("extract colour", fmt.Sprintf("opening %q", path), err, "Check that the image exists and you have permission to read it.")
	}

	extractor := extract.NewExtractor(app.Log.Zerolog())
	c, err := extractor.Extract(cmd.Context(), extract.FileSource{Path: path, MaxDimension: opts.maxSize})
	if err != nil {
		return newCommandError("extract colour", fmt.Sprintf("reading %q", path), err, "Use a PNG, JPEG, GIF, BMP, TIFF or WebP image with opaque pixels.")
	}

	payload := extractPayload{Image: path, Color: c.Hex()}
	sections := []render.Section{render.Values("dominant", []string{payload.Color})}

	if opts.withPalette {
		colors, err := palette.GenerateList(payload.Color, palette.Options{})
		if err != nil {
			return newCommandError("extract colour", "building the palette", err, suggestFor(err))
		}
		payload.Palette = colors
		sections = append(sections, render.Indexed("palette", colors))
	}

	return app.Renderer(cmd).Render(payload, sections...)
}

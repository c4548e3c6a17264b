package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettekit/internal/render"
	"github.com/alexisbeaulieu97/palettekit/pkg/linear"
	"github.com/alexisbeaulieu97/palettekit/pkg/theme"
)

type rampPayload struct {
	Start  string   `json:"start,omitempty" yaml:"start,omitempty"`
	End    string   `json:"end,omitempty" yaml:"end,omitempty"`
	Base   string   `json:"base,omitempty" yaml:"base,omitempty"`
	Space  string   `json:"space,omitempty" yaml:"space,omitempty"`
	Colors []string `json:"colors" yaml:"colors"`
}

type linearOptions struct {
	steps       int
	space       string
	excludeEnds bool
	format      string
}

func newLinearCmd(app *AppContext) *cobra.Command {
	opts := &linearOptions{}

	cmd := &cobra.Command{
		Use:   "linear <start> <end>",
		Short: "Interpolate evenly between two colours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLinear(cmd, app, args[0], args[1], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.steps, "steps", "n", linear.DefaultSteps, "Number of colours to return")
	cmd.Flags().StringVar(&opts.space, "space", linear.SpaceRGB.String(), "Interpolation space (rgb, hsl)")
	cmd.Flags().BoolVar(&opts.excludeEnds, "exclude-ends", false, "Leave out the two endpoints")
	addColorFormatFlag(cmd, &opts.format)

	return cmd
}

func runLinear(cmd *cobra.Command, app *AppContext, start, end string, opts *linearOptions) error {
	format, err := parseColorFormat(opts.format)
	if err != nil {
		return err
	}
	space, err := linear.ParseSpace(opts.space)
	if err != nil {
		return newCommandError("interpolate", fmt.Sprintf("reading --space %q", opts.space), err, "Use rgb or hsl.")
	}

	linOpts := linear.Options{Steps: opts.steps, ExcludeEnds: opts.excludeEnds, Format: format}
	generate := linear.Generate
	if space == linear.SpaceHSL {
		generate = linear.GenerateHSL
	}

	colors, err := generate(start, end, linOpts)
	if err != nil {
		return newCommandError("interpolate", fmt.Sprintf("from %q to %q", start, end), err, suggestFor(err))
	}

	app.Log.Debug(fmt.Sprintf("interpolated %d colours in %s", len(colors), space))
	payload := rampPayload{Start: start, End: end, Space: space.String(), Colors: colors}
	return app.Renderer(cmd).Render(payload, render.Values("", colors))
}

type grayOptions struct {
	start  string
	end    string
	steps  int
	format string
}

func newGrayCmd(app *AppContext) *cobra.Command {
	opts := &grayOptions{}

	cmd := &cobra.Command{
		Use:   "gray",
		Short: "Generate a gray ramp, white to black by default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseColorFormat(opts.format)
			if err != nil {
				return err
			}
			colors, err := linear.Gray(linear.GrayOptions{Start: opts.start, End: opts.end, Steps: opts.steps, Format: format})
			if err != nil {
				return newCommandError("generate gray ramp", fmt.Sprintf("from %q to %q", opts.start, opts.end), err, suggestFor(err))
			}
			payload := rampPayload{Start: opts.start, End: opts.end, Colors: colors}
			return app.Renderer(cmd).Render(payload, render.Values("", colors))
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", linear.DefaultGrayStart, "Lightest gray")
	cmd.Flags().StringVar(&opts.end, "end", linear.DefaultGrayEnd, "Darkest gray")
	cmd.Flags().IntVarP(&opts.steps, "steps", "n", linear.DefaultSteps, "Number of colours to return")
	addColorFormatFlag(cmd, &opts.format)

	return cmd
}

type monoOptions struct {
	steps          int
	lightnessRange float64
	minLightness   float64
	maxLightness   float64
	format         string
}

func newMonoCmd(app *AppContext) *cobra.Command {
	opts := &monoOptions{}

	cmd := &cobra.Command{
		Use:   "mono <color>",
		Short: "Generate a monochrome ramp around a colour's lightness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseColorFormat(opts.format)
			if err != nil {
				return err
			}

			monoOpts := linear.MonochromeOptions{
				Steps:          opts.steps,
				LightnessRange: opts.lightnessRange,
				Format:         format,
			}
			minSet, maxSet := cmd.Flags().Changed("min"), cmd.Flags().Changed("max")
			if minSet != maxSet {
				return newCommandError("generate monochrome ramp", "reading lightness bounds",
					fmt.Errorf("--min and --max must be given together"), "Pass both --min and --max, or use --range.")
			}
			if minSet {
				monoOpts.MinLightness = theme.Float(opts.minLightness)
				monoOpts.MaxLightness = theme.Float(opts.maxLightness)
			}

			colors, err := linear.Monochrome(args[0], monoOpts)
			if err != nil {
				return newCommandError("generate monochrome ramp", fmt.Sprintf("around %q", args[0]), err, suggestFor(err))
			}
			payload := rampPayload{Base: args[0], Colors: colors}
			return app.Renderer(cmd).Render(payload, render.Values("", colors))
		},
	}

	cmd.Flags().IntVarP(&opts.steps, "steps", "n", linear.DefaultSteps, "Number of colours to return")
	cmd.Flags().Float64Var(&opts.lightnessRange, "range", linear.DefaultLightnessRange, "Lightness span centred on the colour")
	cmd.Flags().Float64Var(&opts.minLightness, "min", 0, "Darkest HSL lightness (requires --max)")
	cmd.Flags().Float64Var(&opts.maxLightness, "max", 0, "Lightest HSL lightness (requires --min)")
	addColorFormatFlag(cmd, &opts.format)

	return cmd
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettekit/internal/render"
	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
	"github.com/alexisbeaulieu97/palettekit/pkg/hct"
)

type colorsPayload struct {
	Input  []string `json:"input" yaml:"input"`
	Colors []string `json:"colors" yaml:"colors"`
}

func newHCTCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hct",
		Short: "Work in hue/chroma/tone space",
	}

	cmd.AddCommand(newHCTConvertCmd(app))
	cmd.AddCommand(newHCTRGBCmd(app))
	cmd.AddCommand(newHCTBlendCmd(app))
	cmd.AddCommand(newHCTHarmonizeCmd(app))
	cmd.AddCommand(newHCTDiffCmd(app))
	cmd.AddCommand(newHCTAdjustCmd(app))
	cmd.AddCommand(newHCTSchemeCmd(app))
	cmd.AddCommand(newHCTVariantsCmd(app))

	return cmd
}

func parseColorArg(operation, token string) (colormodel.Color, error) {
	c, err := colormodel.Parse(token)
	if err != nil {
		return c, newCommandError(operation, fmt.Sprintf("reading colour %q", token), err, colorSuggestion)
	}
	return c, nil
}

func hexes(colors []colormodel.Color) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex()
	}
	return out
}

func newHCTConvertCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <color>",
		Short: "Convert a colour to HCT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColorArg("convert to HCT", args[0])
			if err != nil {
				return err
			}
			h := hct.FromColor(c)
			return app.Renderer(cmd).Render(h, render.Section{Entries: []render.Entry{
				{Key: "h", Value: strconv.FormatFloat(h.H, 'f', 2, 64)},
				{Key: "c", Value: strconv.FormatFloat(h.C, 'f', 2, 64)},
				{Key: "t", Value: strconv.FormatFloat(h.T, 'f', 2, 64)},
			}})
		},
	}
}

func newHCTRGBCmd(app *AppContext) *cobra.Command {
	var gamut string

	cmd := &cobra.Command{
		Use:   "rgb <hue> <chroma> <tone>",
		Short: "Convert HCT coordinates to a hex colour",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			coords := make([]float64, 3)
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return newCommandError("convert from HCT", fmt.Sprintf("reading coordinate %q", arg), err, "Pass three numbers: hue, chroma and tone.")
				}
				coords[i] = v
			}

			mapping, err := hct.ParseGamutMapping(gamut)
			if err != nil {
				return newCommandError("convert from HCT", "reading --gamut", err, "Use reduce-chroma or clamp.")
			}

			c, err := hct.HCT{H: coords[0], C: coords[1], T: coords[2]}.Color(mapping)
			if err != nil {
				return newCommandError("convert from HCT", "mapping into sRGB", err, suggestFor(err))
			}
			hex := c.Hex()
			return app.Renderer(cmd).Render(map[string]string{"color": hex}, render.Values("", []string{hex}))
		},
	}

	cmd.Flags().StringVar(&gamut, "gamut", hct.ReduceChroma.String(), "Gamut mapping (reduce-chroma, clamp)")

	return cmd
}

func newHCTBlendCmd(app *AppContext) *cobra.Command {
	var (
		ratio float64
		mode  string
	)

	cmd := &cobra.Command{
		Use:   "blend <from> <to>",
		Short: "Blend two colours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseColorArg("blend", args[0])
			if err != nil {
				return err
			}
			to, err := parseColorArg("blend", args[1])
			if err != nil {
				return err
			}
			blendMode, err := hct.ParseBlendMode(mode)
			if err != nil {
				return newCommandError("blend", "reading --mode", err, "Use lab, hct or hue-only.")
			}

			hex := hct.Blend(from, to, ratio, blendMode).Hex()
			payload := colorsPayload{Input: args, Colors: []string{hex}}
			return app.Renderer(cmd).Render(payload, render.Values("", []string{hex}))
		},
	}

	cmd.Flags().Float64VarP(&ratio, "ratio", "r", 0.5, "Share of the second colour, 0 to 1")
	cmd.Flags().StringVar(&mode, "mode", hct.BlendLab.String(), "Blend mode (lab, hct, hue-only)")

	return cmd
}

func newHCTHarmonizeCmd(app *AppContext) *cobra.Command {
	var ratio float64

	cmd := &cobra.Command{
		Use:   "harmonize <theme> <target>",
		Short: "Pull a colour's hue toward a theme colour",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			themeColor, err := parseColorArg("harmonize", args[0])
			if err != nil {
				return err
			}
			target, err := parseColorArg("harmonize", args[1])
			if err != nil {
				return err
			}

			hex := hct.Harmonize(themeColor, target, ratio).Hex()
			payload := colorsPayload{Input: args, Colors: []string{hex}}
			return app.Renderer(cmd).Render(payload, render.Values("", []string{hex}))
		},
	}

	cmd.Flags().Float64VarP(&ratio, "ratio", "r", hct.DefaultHarmonizeRatio, "Hue pull toward the theme, 0 to 1")

	return cmd
}

func newHCTDiffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Print the CIE76 distance between two colours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseColorArg("compare colours", args[0])
			if err != nil {
				return err
			}
			b, err := parseColorArg("compare colours", args[1])
			if err != nil {
				return err
			}

			diff := hct.Difference(a, b)
			payload := map[string]any{"input": args, "difference": diff}
			return app.Renderer(cmd).Render(payload, render.Values("", []string{strconv.FormatFloat(diff, 'f', 2, 64)}))
		},
	}
}

type adjustOptions struct {
	tone   float64
	chroma float64
	hue    float64
	rotate float64
}

func newHCTAdjustCmd(app *AppContext) *cobra.Command {
	opts := &adjustOptions{}

	cmd := &cobra.Command{
		Use:   "adjust <color>",
		Short: "Replace the tone, chroma or hue of a colour, or rotate its hue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColorArg("adjust", args[0])
			if err != nil {
				return err
			}

			steps := []struct {
				flag  string
				value float64
				apply func(colormodel.Color, float64) (colormodel.Color, error)
			}{
				{"tone", opts.tone, hct.AdjustTone},
				{"chroma", opts.chroma, hct.AdjustChroma},
				{"hue", opts.hue, hct.AdjustHue},
				{"rotate", opts.rotate, hct.RotateHue},
			}

			applied := 0
			for _, step := range steps {
				if !cmd.Flags().Changed(step.flag) {
					continue
				}
				c, err = step.apply(c, step.value)
				if err != nil {
					return newCommandError("adjust", "applying --"+step.flag, err, suggestFor(err))
				}
				applied++
			}
			if applied == 0 {
				return newCommandError("adjust", "reading flags", fmt.Errorf("no adjustment requested"), "Pass at least one of --tone, --chroma, --hue or --rotate.")
			}

			hex := c.Hex()
			payload := colorsPayload{Input: args, Colors: []string{hex}}
			return app.Renderer(cmd).Render(payload, render.Values("", []string{hex}))
		},
	}

	cmd.Flags().Float64Var(&opts.tone, "tone", 0, "New tone, 0 to 100")
	cmd.Flags().Float64Var(&opts.chroma, "chroma", 0, "New chroma")
	cmd.Flags().Float64Var(&opts.hue, "hue", 0, "New hue in degrees")
	cmd.Flags().Float64Var(&opts.rotate, "rotate", 0, "Degrees to add to the hue")

	return cmd
}

type schemeOptions struct {
	kind  string
	angle float64
	count int
}

func newHCTSchemeCmd(app *AppContext) *cobra.Command {
	opts := &schemeOptions{}

	cmd := &cobra.Command{
		Use:   "scheme <color>",
		Short: "Build a complementary, triadic, split-complementary or analogous scheme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColorArg("build scheme", args[0])
			if err != nil {
				return err
			}

			var colors []colormodel.Color
			switch strings.ToLower(opts.kind) {
			case "complementary":
				colors = []colormodel.Color{c, hct.Complementary(c)}
			case "triadic":
				colors = hct.Triadic(c)
			case "split", "split-complementary":
				angle := opts.angle
				if !cmd.Flags().Changed("angle") {
					angle = hct.DefaultSplitAngle
				}
				colors, err = hct.SplitComplementary(c, angle)
			case "analogous":
				colors, err = hct.Analogous(c, opts.count, opts.angle)
			default:
				err = fmt.Errorf("unknown scheme %q", opts.kind)
			}
			if err != nil {
				return newCommandError("build scheme", fmt.Sprintf("%s scheme of %q", opts.kind, args[0]), err,
					"Use --kind complementary, triadic, split or analogous with a positive --count.")
			}

			list := hexes(colors)
			payload := colorsPayload{Input: args, Colors: list}
			return app.Renderer(cmd).Render(payload, render.Values(opts.kind, list))
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "complementary", "Scheme kind (complementary, triadic, split, analogous)")
	cmd.Flags().Float64Var(&opts.angle, "angle", hct.DefaultAnalogousAngle, "Hue spacing in degrees for split and analogous schemes")
	cmd.Flags().IntVar(&opts.count, "count", hct.DefaultAnalogousCount, "Number of analogous colours")

	return cmd
}

func newHCTVariantsCmd(app *AppContext) *cobra.Command {
	var tones []float64

	cmd := &cobra.Command{
		Use:   "variants <color>",
		Short: "Render a colour at a table of tones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColorArg("build variants", args[0])
			if err != nil {
				return err
			}

			table := tones
			if !cmd.Flags().Changed("tones") {
				table = nil
			}
			colors, err := hct.Variants(c, table)
			if err != nil {
				return newCommandError("build variants", fmt.Sprintf("of %q", args[0]), err, "Pass tones between 0 and 100, for example --tones 10,50,90.")
			}

			list := hexes(colors)
			payload := colorsPayload{Input: args, Colors: list}
			return app.Renderer(cmd).Render(payload, render.Values("", list))
		},
	}

	cmd.Flags().Float64SliceVar(&tones, "tones", hct.DefaultTones(), "Tones to render, 0 to 100")

	return cmd
}

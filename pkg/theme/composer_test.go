package theme

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
	palerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

const seed = "#3491fa"

func TestControlsDefaults(t *testing.T) {
	t.Parallel()

	ramp, err := New().Controls(seed, ControlOptions{})
	require.NoError(t, err)
	require.Equal(t, "gray", ramp.Name)
	require.Len(t, ramp.Colors, DefaultControlSteps)
	require.Equal(t, []string{
		"#f2f2f3", "#e0e0e1", "#ceced0", "#bcbcbe", "#aaaaac", "#98989b",
		"#868789", "#747578", "#626366", "#505154", "#3e3f43", "#2c2d31",
	}, ramp.Colors)
	require.Equal(t, "gray-1", ramp.Keys()[0])
	require.Equal(t, "gray-12", ramp.Keys()[11])
}

func TestControlsDarkReversesOrder(t *testing.T) {
	t.Parallel()

	c := New()
	light, err := c.Controls(seed, ControlOptions{})
	require.NoError(t, err)
	dark, err := c.Controls(seed, ControlOptions{Ramp: RampOptions{Dark: true}})
	require.NoError(t, err)

	reversed := append([]string(nil), light.Colors...)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	require.Equal(t, reversed, dark.Colors)
}

func TestControlsStepClamping(t *testing.T) {
	t.Parallel()

	c := New()
	tests := []struct {
		steps int
		want  int
	}{
		{steps: 1, want: MinSteps},
		{steps: -4, want: MinSteps},
		{steps: 24, want: 24},
		{steps: 500, want: MaxSteps},
	}
	for _, tt := range tests {
		ramp, err := c.Controls(seed, ControlOptions{Ramp: RampOptions{Steps: tt.steps}})
		require.NoError(t, err)
		require.Len(t, ramp.Colors, tt.want, "steps %d", tt.steps)
	}
}

func TestControlsValidation(t *testing.T) {
	t.Parallel()

	c := New()

	_, err := c.Controls("", ControlOptions{})
	var validationErr *palerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "theme", validationErr.Field)

	_, err = c.Controls("#nope", ControlOptions{})
	require.ErrorIs(t, err, palerrors.ErrInvalidColor)

	_, err = c.Controls(seed, ControlOptions{BaseGray: "grey-ish"})
	require.ErrorIs(t, err, palerrors.ErrInvalidConfig)

	_, err = c.Controls(seed, ControlOptions{BlendRatio: Float(math.NaN())})
	require.ErrorIs(t, err, palerrors.ErrInvalidConfig)

	_, err = c.Controls(seed, ControlOptions{Ramp: RampOptions{MinLightness: Float(80), MaxLightness: Float(20)}})
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "controls.min_lightness", validationErr.Field)

	_, err = c.Controls(seed, ControlOptions{Ramp: RampOptions{LightnessRange: math.Inf(1)}})
	require.ErrorIs(t, err, palerrors.ErrInvalidConfig)
}

func TestExplicitLightnessBounds(t *testing.T) {
	t.Parallel()

	ramp, err := New().Theme(seed, ThemeOptions{Ramp: RampOptions{Steps: 5, MinLightness: Float(20), MaxLightness: Float(80)}})
	require.NoError(t, err)
	require.Equal(t, []string{"#9bc9fd", "#75a3d7", "#4f7db1", "#28568a", "#023064"}, ramp.Colors)
}

func TestTheme(t *testing.T) {
	t.Parallel()

	ramp, err := New().Theme(seed, ThemeOptions{})
	require.NoError(t, err)
	require.Equal(t, "theme", ramp.Name)
	require.Equal(t, []string{
		"#e6f2fe", "#cddcec", "#b3c6db", "#9ab1c9", "#819bb8",
		"#6785a6", "#4e6f95", "#355a83", "#1b4472", "#022e60",
	}, ramp.Colors)

	got, ok := ramp.Get("theme-10")
	require.True(t, ok)
	require.Equal(t, "#022e60", got)
}

func TestSemanticDefaults(t *testing.T) {
	t.Parallel()

	ramps, err := New().Semantic(seed, SemanticOptions{})
	require.NoError(t, err)
	require.Len(t, ramps, 4)

	for i, name := range []string{"success", "warning", "error", "info"} {
		require.Equal(t, name, ramps[i].Name)
		require.Len(t, ramps[i].Colors, DefaultSemanticSteps)
	}

	success, ok := ramps.Get("success")
	require.True(t, ok)
	require.Equal(t, "#caf5b5", success.Colors[0])

	harmonized, err := New().Semantic(seed, SemanticOptions{BlendRatio: Float(0.15)})
	require.NoError(t, err)
	errRamp, ok := harmonized.Get("error")
	require.True(t, ok)
	require.Equal(t, []string{"#fde8e9", "#eecfd1"}, errRamp.Colors[:2])
}

func TestSemanticSkipsBrokenEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := New(WithLogger(zerolog.New(&buf)))

	ramps, err := c.Semantic(seed, SemanticOptions{Colors: NamedColors{
		{Name: "success", Color: "#52c41a"},
		{Name: "danger", Color: "blood-red"},
	}})
	require.NoError(t, err)
	require.Len(t, ramps, 1)
	require.Equal(t, "success", ramps[0].Name)

	require.Contains(t, buf.String(), `"key":"danger"`)
	require.Contains(t, buf.String(), "skipping semantic color")
}

func TestSemanticRejectsNamelessEntries(t *testing.T) {
	t.Parallel()

	_, err := New().Semantic(seed, SemanticOptions{Colors: NamedColors{{Name: "", Color: "#fff"}}})
	require.ErrorIs(t, err, palerrors.ErrInvalidConfig)

	_, err = New().Semantic(seed, SemanticOptions{Colors: NamedColors{{Name: "a", Color: "#fff"}, {Name: "a", Color: "#000"}}})
	require.ErrorIs(t, err, palerrors.ErrInvalidConfig)
}

func TestBlendUI(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := New(WithLogger(zerolog.New(&buf)))

	ui, err := c.BlendUI(seed, nil, DefaultBlendRatio)
	require.NoError(t, err)
	require.Equal(t, NamedColors{
		{Name: "background", Color: "#5e9dfb"},
		{Name: "surface", Color: "#5e9dfa"},
		{Name: "border", Color: "#5999f6"},
		{Name: "disabled", Color: "#5d9cfa"},
	}, ui)

	mixed, err := c.BlendUI(seed, NamedColors{{Name: "overlay", Color: "not a color"}, {Name: "bg", Color: "#ffffff"}}, 0)
	require.NoError(t, err)
	require.Equal(t, "not a color", mixed[0].Color)
	require.Equal(t, seed, mixed[1].Color)
	require.Contains(t, buf.String(), `"key":"overlay"`)

	_, err = c.BlendUI(seed, nil, math.NaN())
	require.ErrorIs(t, err, palerrors.ErrInvalidConfig)
}

func TestBlendUIMovesThemeTowardUIColor(t *testing.T) {
	t.Parallel()

	c := New()
	ui := NamedColors{{Name: "canvas", Color: "#ffffff"}}

	none, err := c.BlendUI(seed, ui, 0)
	require.NoError(t, err)
	require.Equal(t, seed, none[0].Color)

	full, err := c.BlendUI(seed, ui, 1)
	require.NoError(t, err)
	require.Equal(t, "#ffffff", full[0].Color)

	light, err := c.BlendUI(seed, ui, 0.12)
	require.NoError(t, err)
	require.Equal(t, "#5e9dfb", light[0].Color)

	themeColor := colormodel.MustParse(seed).Lab()
	white := colormodel.MustParse("#ffffff").Lab()
	blended := colormodel.MustParse(light[0].Color).Lab()
	require.Less(t, math.Abs(blended.L-themeColor.L), math.Abs(blended.L-white.L))
}

func TestInterface(t *testing.T) {
	t.Parallel()

	system, err := New().Interface(seed, InterfaceOptions{})
	require.NoError(t, err)
	require.Len(t, system.Controls.Colors, DefaultControlSteps)
	require.Equal(t, []string{"#d7d7da", "#c5c5c7"}, system.Controls.Colors[:2])
	require.Len(t, system.Semantic, 4)
	require.Len(t, system.Theme.Colors, DefaultThemeSteps)

	dark, err := New().Interface(seed, InterfaceOptions{Dark: true})
	require.NoError(t, err)
	require.Equal(t, system.Theme.Colors[0], dark.Theme.Colors[len(dark.Theme.Colors)-1])
	require.Equal(t, system.Controls.Colors[0], dark.Controls.Colors[len(dark.Controls.Colors)-1])
}

func TestPalette(t *testing.T) {
	t.Parallel()

	p, err := New().Palette(seed, PaletteOptions{})
	require.NoError(t, err)
	require.Len(t, p.Theme.Colors, 10)
	require.Len(t, p.Controls.Colors, 12)
	require.Equal(t, []string{"#f2f2f3", "#e0e0e1"}, p.Controls.Colors[:2])
	require.Len(t, p.Semantic, 4)
	require.Len(t, p.UI, 4)

	errRamp, ok := p.Semantic.Get("error")
	require.True(t, ok)
	require.Equal(t, "#fde8e9", errRamp.Colors[0])

	_, err = New().Palette(seed, PaletteOptions{HarmonizeRatio: Float(math.NaN())})
	require.ErrorIs(t, err, palerrors.ErrInvalidConfig)
}

func TestComposerOptions(t *testing.T) {
	t.Parallel()

	custom := NamedColors{{Name: "brand", Color: "#722ed1"}}
	c := New(WithSemanticColors(custom), WithUIColors(NamedColors{{Name: "canvas", Color: "#fff"}}))
	custom[0].Color = "#000000"

	ramps, err := c.Semantic(seed, SemanticOptions{})
	require.NoError(t, err)
	require.Len(t, ramps, 1)
	require.Equal(t, "brand", ramps[0].Name)
	require.Equal(t, "#722ed1", c.SemanticColors()[0].Color)
	require.Equal(t, "canvas", c.UIColors()[0].Name)

	upper := colormodel.ParserFunc(func(token string) (colormodel.Color, error) {
		return colormodel.Parse(strings.ToLower(token))
	})
	ramp, err := New(WithParser(upper)).Theme("#3491FA", ThemeOptions{})
	require.NoError(t, err)
	require.Len(t, ramp.Colors, 10)
}

func TestComposerIsSafeForConcurrentUse(t *testing.T) {
	t.Parallel()

	c := New()
	want, err := c.Palette(seed, PaletteOptions{})
	require.NoError(t, err)
	wantJSON, err := json.Marshal(want)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]byte, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := c.Palette(seed, PaletteOptions{})
			if err != nil {
				return
			}
			results[i], _ = json.Marshal(p)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.JSONEq(t, string(wantJSON), string(got))
	}
}

package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	palerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

func TestHCTCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "rgb white", args: []string{"hct", "rgb", "0", "0", "100"}, want: []string{"#ffffff"}},
		{name: "rgb clamp", args: []string{"hct", "rgb", "278.69", "150", "50", "--gamut", "clamp"}, want: []string{"#0085ff"}},
		{name: "blend lab", args: []string{"hct", "blend", "#000000", "#ffffff"}, want: []string{"#777777"}},
		{name: "blend hct", args: []string{"hct", "blend", "#ff0000", "#0000ff", "--mode", "hct"}, want: []string{"#c30375"}},
		{name: "blend hue only", args: []string{"hct", "blend", "#ff0000", "#0000ff", "--mode", "hue-only", "-r", "0.5"}, want: []string{"#f30893"}},
		{name: "harmonize", args: []string{"hct", "harmonize", "#3491fa", "#ff4d4f"}, want: []string{"#ff4775"}},
		{name: "diff", args: []string{"hct", "diff", "#3491fa", "#3491fa"}, want: []string{"0.00"}},
		{name: "adjust tone", args: []string{"hct", "adjust", "#3491fa", "--tone", "50"}, want: []string{"#0f78d7"}},
		{name: "complementary", args: []string{"hct", "scheme", "#ff0000"}, want: []string{"#ff0000", "#0b8ca0"}},
		{name: "triadic", args: []string{"hct", "scheme", "#3491fa", "--kind", "triadic"}, want: []string{"#3491fa", "#e86950", "#00a56c"}},
		{name: "variants", args: []string{"hct", "variants", "#3491fa", "--tones", "10,50,90"}, want: []string{"#001c3a", "#0f78d7", "#d9e2fe"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, lines(out))
		})
	}
}

func TestHCTConvertJSON(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "hct", "convert", "#3491fa", "-o", "json")
	require.NoError(t, err)

	var h struct {
		H, C, T float64
	}
	require.NoError(t, json.Unmarshal([]byte(out), &h))
	require.InDelta(t, 278.69, h.H, 0.01)
	require.InDelta(t, 60.68, h.C, 0.01)
	require.InDelta(t, 59.78, h.T, 0.01)

	text, _, err := execute(t, "hct", "convert", "#3491fa")
	require.NoError(t, err)
	require.Equal(t, []string{"h: 278.69", "c: 60.68", "t: 59.78"}, lines(text))
}

func TestHCTSchemeTable(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "hct", "scheme", "#3491fa", "--kind", "triadic", "-o", "table")
	require.NoError(t, err)

	rows := lines(out)
	require.Len(t, rows, 4)
	require.Contains(t, rows[0], "GROUP")
	require.Regexp(t, `^triadic\s+1\s+#3491fa$`, rows[1])
	require.Regexp(t, `^triadic\s+3\s+#00a56c$`, rows[3])
}

func TestHCTVariantsDefaultTones(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "hct", "variants", "#3491fa")
	require.NoError(t, err)
	require.Len(t, lines(out), 9)
}

func TestHCTErrors(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "hct", "rgb", "a", "b", "c")
	require.Error(t, err)
	require.Contains(t, err.Error(), "hue, chroma and tone")

	_, _, err = execute(t, "hct", "rgb", "10", "10", "10", "--gamut", "wrap")
	require.ErrorIs(t, err, palerrors.ErrInvalidConfig)

	_, _, err = execute(t, "hct", "rgb", "NaN", "10", "10")
	require.ErrorIs(t, err, palerrors.ErrInvalidConfig)

	_, _, err = execute(t, "hct", "blend", "#000", "#fff", "--mode", "oklab")
	require.ErrorIs(t, err, palerrors.ErrInvalidConfig)

	_, _, err = execute(t, "hct", "adjust", "#3491fa")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no adjustment requested")

	_, _, err = execute(t, "hct", "scheme", "#3491fa", "--kind", "tetradic")
	require.Error(t, err)

	_, _, err = execute(t, "hct", "scheme", "#3491fa", "--kind", "analogous", "--count", "0")
	require.ErrorIs(t, err, palerrors.ErrInvalidConfig)

	_, _, err = execute(t, "hct", "variants", "#3491fa", "--tones", "120,150")
	require.ErrorIs(t, err, palerrors.ErrInvalidConfig)

	_, _, err = execute(t, "hct", "diff", "#3491fa", "blurple")
	require.ErrorIs(t, err, palerrors.ErrInvalidColor)
}

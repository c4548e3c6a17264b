package hct

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
	palerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

func TestFromColor(t *testing.T) {
	t.Parallel()

	h, err := Parse("#3491fa")
	require.NoError(t, err)
	require.InDelta(t, 278.69, h.H, 0.01)
	require.InDelta(t, 60.68, h.C, 0.01)
	require.InDelta(t, 59.78, h.T, 0.01)

	_, err = Parse("#nothex")
	require.ErrorIs(t, err, palerrors.ErrInvalidColor)
}

func TestRoundTripStaysClose(t *testing.T) {
	t.Parallel()

	worst := 0.0
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				c := colormodel.RGB(float64(r), float64(g), float64(b))
				back, err := FromColor(c).Color(ReduceChroma)
				require.NoError(t, err)
				worst = math.Max(worst, Difference(c, back))
			}
		}
	}
	require.Less(t, worst, 3.0)
}

func TestGamutMapping(t *testing.T) {
	t.Parallel()

	base, err := Parse("#3491fa")
	require.NoError(t, err)
	vivid := HCT{H: base.H, C: 150, T: 50}

	clamped, err := vivid.Color(Clamp)
	require.NoError(t, err)
	require.Equal(t, "#0085ff", clamped.Hex())

	reduced, err := vivid.Color(ReduceChroma)
	require.NoError(t, err)
	require.Equal(t, "#0a78d7", reduced.Hex())

	white, err := HCT{H: 0, C: 0, T: 140}.Hex()
	require.NoError(t, err)
	require.Equal(t, "#ffffff", white)

	black, err := HCT{H: -720, C: -5, T: 0}.Hex()
	require.NoError(t, err)
	require.Equal(t, "#000000", black)
}

func TestInvalidCoordinates(t *testing.T) {
	t.Parallel()

	for _, h := range []HCT{
		{H: math.NaN(), C: 10, T: 50},
		{H: 10, C: math.Inf(1), T: 50},
		{H: 10, C: 10, T: math.NaN()},
	} {
		_, err := h.Color(ReduceChroma)
		require.ErrorIs(t, err, palerrors.ErrInvalidConfig)
	}
}

func TestParseGamutMapping(t *testing.T) {
	t.Parallel()

	m, err := ParseGamutMapping("clamp")
	require.NoError(t, err)
	require.Equal(t, Clamp, m)
	require.Equal(t, "clamp", m.String())

	m, err = ParseGamutMapping("")
	require.NoError(t, err)
	require.Equal(t, ReduceChroma, m)

	_, err = ParseGamutMapping("project")
	require.ErrorIs(t, err, palerrors.ErrInvalidConfig)
}

func TestDifference(t *testing.T) {
	t.Parallel()

	black := colormodel.MustParse("#000")
	white := colormodel.MustParse("#fff")
	require.InDelta(t, 100, Difference(black, white), 0.01)
	require.Zero(t, Difference(white, white))
}

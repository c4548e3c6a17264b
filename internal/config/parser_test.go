package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
	palerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

func TestParseFile(t *testing.T) {
	t.Parallel()

	validYAML := `theme: "#3491fa"
mode: palette
format: rgb
semantic_colors:
  success: "#00b42a"
  danger: "#f53f3f"
interface:
  base_gray: "#777777"
  controls:
    steps: 24
    min_lightness: 10
    max_lightness: 90
palette:
  harmonize_ratio: 0.2
  dark: true
`

	invalidYAML := `theme: [1, 2]
mode: interface
`

	missingTheme := `mode: palette
`

	badMode := `theme: "#fff"
mode: sideways
`

	badBounds := `theme: "#fff"
interface:
  theme:
    min_lightness: 80
    max_lightness: 20
`

	duplicateNames := `theme: "#fff"
ui_colors:
  border: "#d9d9d9"
  border: "#cccccc"
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc *Document, err error)
	}{
		{
			name:     "valid document is parsed",
			contents: validYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.Equal(t, "#3491fa", doc.Theme)
				require.Equal(t, ModePalette, doc.Mode)
				require.Equal(t, colormodel.FormatRGB, doc.Format)
				require.Equal(t, []string{"success", "danger"}, doc.SemanticColors.Names())
				require.Equal(t, "#777777", doc.Interface.BaseGray)
				require.Equal(t, 24, doc.Interface.Controls.Steps)
				require.NotNil(t, doc.Interface.Controls.MinLightness)
				require.Equal(t, 10.0, *doc.Interface.Controls.MinLightness)
				require.NotNil(t, doc.Palette.HarmonizeRatio)
				require.Equal(t, 0.2, *doc.Palette.HarmonizeRatio)
				require.True(t, doc.PaletteOptions().Dark)
				require.False(t, doc.InterfaceOptions().Dark)
				require.Len(t, doc.ComposerOptions(), 1)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				var parseErr *palerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 1, parseErr.Line)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
			},
		},
		{
			name:     "missing theme returns validation error",
			contents: missingTheme,
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *palerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "theme", validationErr.Field)
			},
		},
		{
			name:     "unknown mode is rejected",
			contents: badMode,
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *palerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "mode", validationErr.Field)
			},
		},
		{
			name:     "inverted lightness bounds are rejected",
			contents: badBounds,
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *palerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "interface.theme.min_lightness", validationErr.Field)
			},
		},
		{
			name:     "duplicate color names are rejected",
			contents: duplicateNames,
			assert: func(t *testing.T, doc *Document, err error) {
				require.ErrorIs(t, err, palerrors.ErrInvalidConfig)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "theme.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o644))

			doc, err := ParseFile(path)
			tc.assert(t, doc, err)
		})
	}
}

func TestParseFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ParseFile(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *palerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}

func TestDefaultsApplied(t *testing.T) {
	t.Parallel()

	doc, err := Parse("inline", []byte("theme: blue\ndark: true\n"))
	require.NoError(t, err)
	require.Equal(t, ModeInterface, doc.Mode)
	require.Equal(t, colormodel.FormatHex, doc.Format)
	require.True(t, doc.InterfaceOptions().Dark)
	require.Empty(t, doc.ComposerOptions())
}

func TestValidateNil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Validate(nil), palerrors.ErrInvalidConfig)
}

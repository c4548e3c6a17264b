package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSwatchPNG(t *testing.T, c color.NRGBA) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "swatch.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestExtractCommand(t *testing.T) {
	t.Parallel()

	path := writeSwatchPNG(t, color.NRGBA{R: 150, G: 50, B: 50, A: 255})

	out, _, err := execute(t, "extract", path)
	require.NoError(t, err)
	require.Equal(t, "#903030\n", out)

	withPalette, _, err := execute(t, "extract", path, "--palette")
	require.NoError(t, err)
	require.Contains(t, withPalette, "dominant:\n  #903030\n")
	require.Contains(t, withPalette, "palette:\n  1: ")
	require.Contains(t, withPalette, "  6: #903030\n")
}

func TestExtractErrors(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "extract", filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")

	notImage := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(notImage, []byte("plain text"), 0o644))
	_, _, err = execute(t, "extract", notImage)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode image")

	transparent := writeSwatchPNG(t, color.NRGBA{R: 150, G: 50, B: 50, A: 0})
	_, _, err = execute(t, "extract", transparent)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no opaque pixels")
}

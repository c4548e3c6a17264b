// Package extract finds the dominant colour of an image. Pixels are bucketed
// into a coarse histogram and the most frequent bucket that is neither gray
// nor near black or white wins.
package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
)

// ErrNoPixels is returned when a source has no opaque pixels.
var ErrNoPixels = errors.New("image has no opaque pixels")

// Extractor reads a PixelSource and reports its dominant colour.
type Extractor struct {
	log zerolog.Logger
}

// NewExtractor returns an Extractor that logs histogram statistics to log.
func NewExtractor(log zerolog.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract returns the dominant colour of src.
func (e *Extractor) Extract(ctx context.Context, src PixelSource) (colormodel.Color, error) {
	if src == nil {
		return colormodel.Color{}, fmt.Errorf("pixel source is nil")
	}

	pixels, err := src.Pixels(ctx)
	if err != nil {
		return colormodel.Color{}, err
	}
	if len(pixels)%4 != 0 {
		return colormodel.Color{}, fmt.Errorf("pixel buffer length %d is not a multiple of 4", len(pixels))
	}

	buckets := Histogram(pixels)
	dominant, err := Dominant(buckets)
	if err != nil {
		return colormodel.Color{}, err
	}

	e.log.Debug().
		Int("pixels", len(pixels)/4).
		Int("buckets", len(buckets)).
		Int("count", dominant.Count).
		Bool("vivid", dominant.Vivid()).
		Msg("extracted dominant color")

	return dominant.Color(), nil
}

// FromFile returns the dominant colour of an image file as a hex string.
func FromFile(ctx context.Context, path string) (string, error) {
	c, err := NewExtractor(zerolog.Nop()).Extract(ctx, FileSource{Path: path})
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

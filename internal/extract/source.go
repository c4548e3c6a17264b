package extract

import (
	"context"
	"fmt"
	"image"
	"os"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultMaxDimension bounds the width and height of the image that is
// sampled.
const DefaultMaxDimension = 100

// PixelSource supplies raw pixels as RGBA bytes, four per pixel, row major.
type PixelSource interface {
	Pixels(ctx context.Context) ([]byte, error)
}

// PixelSourceFunc adapts a function to PixelSource.
type PixelSourceFunc func(ctx context.Context) ([]byte, error)

// Pixels implements PixelSource.
func (f PixelSourceFunc) Pixels(ctx context.Context) ([]byte, error) {
	return f(ctx)
}

// ImageSource samples a decoded image, scaled down so that neither side
// exceeds MaxDimension.
type ImageSource struct {
	Image        image.Image
	MaxDimension int
}

// Pixels implements PixelSource.
func (s ImageSource) Pixels(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Image == nil {
		return nil, fmt.Errorf("image is nil")
	}

	limit := s.MaxDimension
	if limit <= 0 {
		limit = DefaultMaxDimension
	}

	bounds := s.Image.Bounds()
	width, height := scaledSize(bounds.Dx(), bounds.Dy(), limit)
	if width == 0 || height == 0 {
		return nil, ErrNoPixels
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), s.Image, bounds, draw.Src, nil)
	return dst.Pix, nil
}

// scaledSize fits w x h inside limit x limit keeping the aspect ratio. Images
// that already fit are left alone.
func scaledSize(w, h, limit int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	ratio := min(float64(min(w, limit))/float64(w), float64(min(h, limit))/float64(h))
	return max(1, int(float64(w)*ratio)), max(1, int(float64(h)*ratio))
}

// FileSource decodes an image file on demand. PNG, JPEG, GIF, BMP, TIFF and
// WebP are recognised.
type FileSource struct {
	Path         string
	MaxDimension int
}

// Pixels implements PixelSource.
func (s FileSource) Pixels(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", s.Path, err)
	}

	return ImageSource{Image: img, MaxDimension: s.MaxDimension}.Pixels(ctx)
}

package extract

import (
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
)

// Quantisation and filter thresholds.
const (
	alphaCutoff   = 128
	bucketWidth   = 16
	minSaturation = 0.15
	minValue      = 0.2
	maxValue      = 0.8
)

// Bucket is one quantised colour and the number of pixels that fell into it.
type Bucket struct {
	R, G, B uint8
	Count   int
}

// Color returns the bucket colour.
func (b Bucket) Color() colormodel.Color {
	return colormodel.RGB(float64(b.R), float64(b.G), float64(b.B))
}

// Vivid reports whether the bucket is neither grayish nor close to black or
// white.
func (b Bucket) Vivid() bool {
	_, s, v := colorful.Color{
		R: float64(b.R) / 255,
		G: float64(b.G) / 255,
		B: float64(b.B) / 255,
	}.Hsv()
	return s > minSaturation && v > minValue && v < maxValue
}

// Histogram counts the opaque pixels of an RGBA buffer (four bytes per pixel)
// in buckets 16 levels wide. Buckets are ordered by count, most frequent
// first; ties keep the order in which the buckets were first seen.
func Histogram(rgba []byte) []Bucket {
	index := make(map[[3]uint8]int)
	var buckets []Bucket

	for i := 0; i+3 < len(rgba); i += 4 {
		if rgba[i+3] < alphaCutoff {
			continue
		}
		key := [3]uint8{quantize(rgba[i]), quantize(rgba[i+1]), quantize(rgba[i+2])}
		if pos, ok := index[key]; ok {
			buckets[pos].Count++
			continue
		}
		index[key] = len(buckets)
		buckets = append(buckets, Bucket{R: key[0], G: key[1], B: key[2], Count: 1})
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Count > buckets[j].Count
	})
	return buckets
}

// Dominant picks the most frequent vivid bucket, or the most frequent bucket
// when none is vivid.
func Dominant(buckets []Bucket) (Bucket, error) {
	if len(buckets) == 0 {
		return Bucket{}, ErrNoPixels
	}
	for _, b := range buckets {
		if b.Vivid() {
			return b, nil
		}
	}
	return buckets[0], nil
}

func quantize(c uint8) uint8 {
	q := math.Floor(float64(c)/bucketWidth+0.5) * bucketWidth
	return uint8(math.Min(q, 255))
}

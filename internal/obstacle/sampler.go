// Package obstacle turns a rasterized name into the set of grid cells the
// snake must avoid.
package obstacle

import (
	"image"
	"math/rand"

	"github.com/vovakirdan/glyph-snake/internal/grid"
)

// AlphaThreshold is the alpha value a pixel must exceed to count as ink.
const AlphaThreshold = 128

// AlphaReader is the part of a raster surface the sampler reads.
type AlphaReader interface {
	Bounds() image.Rectangle
	Alpha(x, y int) uint8
}

// Sample converts inked pixels into grid cells. Each inked pixel is
// skipped with probability density, carving passways through the letters;
// the rest are snapped down to their grid cell. Randomness is per pixel, so
// letter edges erode unevenly rather than cell by cell.
func Sample(src AlphaReader, bounds grid.Bounds, density float64, rng *rand.Rand) grid.Set {
	set := make(grid.Set)
	r := src.Bounds()

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if src.Alpha(x, y) <= AlphaThreshold {
				continue
			}
			if rng.Float64() < density {
				continue
			}
			cell := bounds.Snap(x, y)
			if bounds.Contains(cell) {
				set.Add(cell)
			}
		}
	}

	return set
}

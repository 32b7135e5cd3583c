package render

import (
	"image"
	"image/color"
	"math"
	"sync"
)

var (
	appleBody      = color.RGBA{R: 0xd7, G: 0x26, B: 0x1e, A: 0xff}
	appleShade     = color.RGBA{R: 0x9b, G: 0x14, B: 0x10, A: 0xff}
	appleHighlight = color.RGBA{R: 0xff, G: 0xd8, B: 0xd0, A: 0xff}
	appleStem      = color.RGBA{R: 0x6b, G: 0x42, B: 0x1c, A: 0xff}
	appleLeaf      = color.RGBA{R: 0x3c, G: 0xa0, B: 0x3c, A: 0xff}
)

var appleCache sync.Map // int -> *image.RGBA

// Apple returns a size x size apple sprite on a transparent background.
// Sprites are cached per size and must not be modified.
func Apple(size int) *image.RGBA {
	size = max(size, 1)
	if img, ok := appleCache.Load(size); ok {
		return img.(*image.RGBA)
	}
	img, _ := appleCache.LoadOrStore(size, drawApple(size))
	return img.(*image.RGBA)
}

func drawApple(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	// Body: a circle in the lower part, shaded toward the bottom right.
	cx, cy, r := s*0.5, s*0.58, s*0.40
	// Highlight at the upper left of the body.
	hx, hy, hr := s*0.36, s*0.44, s*0.09
	// Leaf: an ellipse to the right of the stem.
	lx, ly, la, lb := s*0.64, s*0.14, s*0.16, s*0.07

	for y := range size {
		for x := range size {
			px, py := float64(x)+0.5, float64(y)+0.5
			switch {
			case inCircle(px, py, hx, hy, hr):
				img.SetRGBA(x, y, appleHighlight)
			case inCircle(px, py, cx, cy, r):
				if math.Hypot(px-(cx-r*0.3), py-(cy-r*0.3)) > r*1.1 {
					img.SetRGBA(x, y, appleShade)
				} else {
					img.SetRGBA(x, y, appleBody)
				}
			case inEllipse(px, py, lx, ly, la, lb):
				img.SetRGBA(x, y, appleLeaf)
			case math.Abs(px-s*0.5) <= math.Max(s*0.04, 0.5) && py >= s*0.06 && py <= cy-r*0.8:
				img.SetRGBA(x, y, appleStem)
			}
		}
	}
	return img
}

func inCircle(x, y, cx, cy, r float64) bool {
	return math.Hypot(x-cx, y-cy) <= r
}

func inEllipse(x, y, cx, cy, a, b float64) bool {
	dx, dy := (x-cx)/a, (y-cy)/b
	return dx*dx+dy*dy <= 1
}

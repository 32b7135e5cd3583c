// Package render paints a game scene onto a 2D canvas. It only reads the
// scene; the same Draw serves the terminal host and headless PNG export.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/vovakirdan/glyph-snake/internal/grid"
)

// GraceBanner is shown while obstacle collisions are ignored.
const GraceBanner = "Grace Period: No Collision with Obstacles"

// FoodScale enlarges the food sprite relative to its cell.
const FoodScale = 1.5

// Palette.
var (
	Background  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	SnakeColor  = color.RGBA{R: 0x28, G: 0xa7, B: 0x45, A: 0xff}
	BannerColor = color.RGBA{A: 0x80}
)

// Canvas is the 2D surface a scene is painted on.
type Canvas interface {
	Bounds() image.Rectangle
	FillRect(r image.Rectangle, c color.Color)
	DrawImage(r image.Rectangle, src image.Image)
	DrawLabel(center image.Point, text string, c color.Color)
}

// Scene is everything visible in one frame.
type Scene struct {
	Bounds        grid.Bounds
	Snake         []grid.Cell
	Food          grid.Cell
	HasFood       bool
	Obstacles     grid.Set
	ObstacleColor color.RGBA
	Grace         bool
}

// Draw paints s onto c: background, snake, food, obstacles and, during
// the grace period, the banner.
func Draw(c Canvas, s Scene) {
	unit := s.Bounds.Unit
	c.FillRect(c.Bounds(), Background)

	for _, seg := range s.Snake {
		c.FillRect(SegmentRect(seg, unit), SnakeColor)
	}

	if s.HasFood {
		r := FoodRect(s.Food, unit)
		c.DrawImage(r, Apple(r.Dx()))
	}

	for _, o := range s.Obstacles.Cells() {
		c.FillRect(SegmentRect(o, unit), s.ObstacleColor)
	}

	if s.Grace {
		c.DrawLabel(image.Pt(s.Bounds.Width/2, s.Bounds.Height-30), GraceBanner, BannerColor)
	}
}

// SegmentRect is the square painted for a snake segment or obstacle cell,
// leaving a 2px gap to the next cell.
func SegmentRect(cell grid.Cell, unit int) image.Rectangle {
	size := max(unit-2, 1)
	return image.Rect(cell.X, cell.Y, cell.X+size, cell.Y+size)
}

// FoodRect is the enlarged sprite rectangle centered on the food cell.
func FoodRect(cell grid.Cell, unit int) image.Rectangle {
	size := int(math.Round(float64(unit) * FoodScale))
	off := (size - unit) / 2
	return image.Rect(cell.X-off, cell.Y-off, cell.X-off+size, cell.Y-off+size)
}

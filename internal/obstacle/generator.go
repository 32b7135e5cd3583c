package obstacle

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/glyph-snake/internal/grid"
	"github.com/vovakirdan/glyph-snake/internal/raster"
	"github.com/vovakirdan/glyph-snake/internal/registry"
)

// Layout is one generated obstacle layout.
type Layout struct {
	Obstacles grid.Set
	Style     string // Font style the name was drawn with
}

// Generator rasterizes a name in a random registered font style and samples
// it onto the grid.
type Generator struct {
	Bounds        grid.Bounds
	FontSize      float64
	LetterSpacing float64
	Density       float64 // Passway density in [0, 1]

	// Style pins the font style. Empty means pick one at random per call.
	Style string
}

// Generate builds a fresh layout for name. Calling it again with the same
// name yields a different layout unless rng is reseeded.
func (g Generator) Generate(name string, rng *rand.Rand) (Layout, error) {
	style := g.Style
	if style == "" {
		style = registry.Random(rng)
	}

	face, err := registry.Face(style, g.FontSize)
	if err != nil {
		return Layout{}, fmt.Errorf("obstacle: %w", err)
	}
	defer face.Close()

	buf := raster.NewBuffer(g.Bounds.Width, g.Bounds.Height)
	raster.Rasterizer{FontSize: g.FontSize, LetterSpacing: g.LetterSpacing}.Render(buf, name, face)

	return Layout{
		Obstacles: Sample(buf, g.Bounds, g.Density, rng),
		Style:     style,
	}, nil
}

package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Rasterizer renders text one glyph at a time with a fixed advance instead
// of the font's kerning, so letters stay visually separated and map cleanly
// onto the movement grid.
type Rasterizer struct {
	FontSize      float64 // Pixel size the face was created with
	LetterSpacing float64 // Extra pixels between glyph cells
}

// Advance returns the horizontal distance between consecutive glyphs.
func (r Rasterizer) Advance() float64 {
	return r.FontSize*0.6 + r.LetterSpacing
}

// Origin returns the left edge of the first glyph and the baseline that
// centers the glyphs vertically on the surface.
func (r Rasterizer) Origin(bounds image.Rectangle, face font.Face) (x, baseline int) {
	x = bounds.Min.X + bounds.Dx()/4
	m := face.Metrics()
	// Middle baseline: the em box is centered on the surface midline.
	baseline = bounds.Min.Y + bounds.Dy()/2 + (m.Ascent-m.Descent).Round()/2
	return x, baseline
}

// Render clears dst and draws text onto it. Glyphs falling outside the
// surface are clipped. Empty text leaves an empty surface.
func (r Rasterizer) Render(dst Surface, text string, face font.Face) {
	dst.Clear()
	if text == "" {
		return
	}

	startX, baseline := r.Origin(dst.Bounds(), face)
	advance := r.Advance()

	i := 0
	for _, ch := range text {
		x := startX + int(float64(i)*advance)
		dst.DrawGlyph(x, baseline, face, ch, color.Black)
		i++
	}
}

// Package raster provides an off-screen pixel surface and the text
// rasterizer that draws a name onto it glyph by glyph.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Surface is the minimal 2D raster capability the rasterizer and the
// obstacle sampler need.
type Surface interface {
	Bounds() image.Rectangle
	Clear()
	DrawGlyph(x, baseline int, face font.Face, r rune, c color.Color)
	Alpha(x, y int) uint8
}

// Buffer is an in-memory RGBA surface. It also satisfies render.Canvas, so
// a whole frame can be painted headlessly and exported as PNG.
type Buffer struct {
	img   *image.RGBA
	label font.Face // Face for DrawLabel, may be nil
}

// NewBuffer creates a transparent buffer of the given pixel size.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// SetLabelFace sets the face used by DrawLabel.
func (b *Buffer) SetLabelFace(face font.Face) {
	b.label = face
}

// Bounds returns the pixel rectangle of the buffer.
func (b *Buffer) Bounds() image.Rectangle {
	return b.img.Bounds()
}

// Image exposes the underlying pixels.
func (b *Buffer) Image() *image.RGBA {
	return b.img
}

// Clear resets every pixel to fully transparent.
func (b *Buffer) Clear() {
	draw.Draw(b.img, b.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// DrawGlyph draws a single rune with its left edge at x on the given
// baseline.
func (b *Buffer) DrawGlyph(x, baseline int, face font.Face, r rune, c color.Color) {
	d := &font.Drawer{
		Dst:  b.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(baseline)},
	}
	d.DrawString(string(r))
}

// Alpha returns the alpha channel at (x, y), 0 outside the buffer.
func (b *Buffer) Alpha(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}).In(b.img.Rect) {
		return 0
	}
	return b.img.RGBAAt(x, y).A
}

// FillRect paints r with c, clipped to the buffer.
func (b *Buffer) FillRect(r image.Rectangle, c color.Color) {
	draw.Draw(b.img, r.Intersect(b.img.Rect), image.NewUniform(c), image.Point{}, draw.Over)
}

// DrawImage scales src into r.
func (b *Buffer) DrawImage(r image.Rectangle, src image.Image) {
	draw.ApproxBiLinear.Scale(b.img, r, src, src.Bounds(), draw.Over, nil)
}

// DrawLabel draws text horizontally centered on center.X with its
// baseline at center.Y. Does nothing without a label face.
func (b *Buffer) DrawLabel(center image.Point, text string, c color.Color) {
	if b.label == nil || text == "" {
		return
	}
	width := font.MeasureString(b.label, text)
	d := &font.Drawer{
		Dst:  b.img,
		Src:  image.NewUniform(c),
		Face: b.label,
		Dot:  fixed.Point26_6{X: fixed.I(center.X) - width/2, Y: fixed.I(center.Y)},
	}
	d.DrawString(text)
}

// EncodePNG writes the buffer as a PNG image.
func (b *Buffer) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.img)
}

package tui

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/vovakirdan/glyph-snake/internal/core"
	"github.com/vovakirdan/glyph-snake/internal/render"
)

// CellWidth is the number of terminal columns per grid cell. Two columns
// keep cells roughly square in most terminal fonts.
const CellWidth = 2

const (
	blockRune = '█'
	foodLeft  = '◖'
	foodRight = '◗'
)

// CellCanvas is a render.Canvas that paints onto a character screen, one
// grid cell per CellWidth columns and one row per grid unit.
type CellCanvas struct {
	screen *core.Screen
	width  int // Pixel bounds of the scene
	height int
	unit   int
}

// NewCellCanvas creates a canvas for a width x height pixel scene with the
// given grid unit. The screen is allocated to fit.
func NewCellCanvas(width, height, unit int) *CellCanvas {
	unit = max(unit, 1)
	cols, rows := width/unit, height/unit
	return &CellCanvas{
		screen: core.NewScreen(cols*CellWidth, rows),
		width:  width,
		height: height,
		unit:   unit,
	}
}

// Screen returns the character buffer painted so far.
func (c *CellCanvas) Screen() *core.Screen {
	return c.screen
}

// Bounds implements render.Canvas.
func (c *CellCanvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// cells converts a pixel rectangle to the character cells it touches.
func (c *CellCanvas) cells(r image.Rectangle) core.Rect {
	x0, y0 := floorDiv(r.Min.X, c.unit), floorDiv(r.Min.Y, c.unit)
	x1, y1 := ceilDiv(r.Max.X, c.unit), ceilDiv(r.Max.Y, c.unit)
	return core.NewRect(x0*CellWidth, y0, (x1-x0)*CellWidth, y1-y0)
}

// FillRect implements render.Canvas. The page background becomes blank
// cells so the terminal's own background shows through.
func (c *CellCanvas) FillRect(r image.Rectangle, col color.Color) {
	if sameColor(col, render.Background) {
		c.screen.FillRect(c.cells(r), ' ', core.ColorDefault)
		return
	}
	c.screen.FillRect(c.cells(r), blockRune, hexColor(col))
}

// DrawImage implements render.Canvas. A sprite collapses to a single cell
// at its center, tinted with the sprite's center pixel.
func (c *CellCanvas) DrawImage(r image.Rectangle, src image.Image) {
	center := image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
	sb := src.Bounds()
	tint := src.At(sb.Min.X+sb.Dx()/2, sb.Min.Y+sb.Dy()*3/5)

	x := floorDiv(center.X, c.unit) * CellWidth
	y := floorDiv(center.Y, c.unit)
	col := hexColor(tint)
	c.screen.Set(x, y, foodLeft, col)
	c.screen.Set(x+1, y, foodRight, col)
}

// DrawLabel implements render.Canvas. Text is centered on the column under
// center.X in the row containing center.Y.
func (c *CellCanvas) DrawLabel(center image.Point, text string, col color.Color) {
	y := floorDiv(center.Y, c.unit)
	x := center.X*CellWidth/c.unit - utf8.RuneCountInString(text)/2
	c.screen.DrawText(core.Clamp(x, 0, c.screen.Width()), y, text, hexColor(col))
}

// hexColor converts a possibly translucent color to an opaque hex color as
// seen over a white page.
func hexColor(col color.Color) core.Color {
	r, g, b, a := col.RGBA()
	// Premultiplied: over white adds (1 - alpha) of full intensity.
	pad := 0xffff - a
	return core.Color(render.Hex(color.RGBA64{
		R: uint16(r + pad),
		G: uint16(g + pad),
		B: uint16(b + pad),
		A: 0xffff,
	}))
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

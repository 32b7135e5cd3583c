package render

import (
	"fmt"
	"io"

	"github.com/vovakirdan/glyph-snake/internal/raster"
	"github.com/vovakirdan/glyph-snake/internal/registry"
)

// LabelSize is the font size of the grace banner in exported images.
const LabelSize = 20

// WritePNG paints s on an off-screen buffer of the scene's canvas size and
// encodes it as PNG.
func WritePNG(w io.Writer, s Scene) error {
	if s.Bounds.Width <= 0 || s.Bounds.Height <= 0 {
		return fmt.Errorf("render: empty canvas %dx%d", s.Bounds.Width, s.Bounds.Height)
	}
	buf := raster.NewBuffer(s.Bounds.Width, s.Bounds.Height)
	face, err := registry.Face(registry.DefaultStyle, LabelSize)
	if err != nil {
		return fmt.Errorf("render: label face: %w", err)
	}
	buf.SetLabelFace(face)

	Draw(buf, s)
	return buf.EncodePNG(w)
}

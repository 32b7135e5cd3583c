package render

import (
	"fmt"
	"image/color"
	"math/rand"
)

// RandomColor returns a random opaque color, drawn anew for every run's
// obstacles.
func RandomColor(rng *rand.Rand) color.RGBA {
	v := rng.Intn(1 << 24)
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Hex formats c as "#rrggbb", ignoring alpha.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"testing"

	"github.com/vovakirdan/glyph-snake/internal/grid"
	"github.com/vovakirdan/glyph-snake/internal/raster"
)

var testBounds = grid.Bounds{Width: 200, Height: 100, Unit: 20}

// recorder is a Canvas that records calls.
type recorder struct {
	fills  []image.Rectangle
	images []image.Rectangle
	labels []string
	at     []image.Point
}

func (r *recorder) Bounds() image.Rectangle { return image.Rect(0, 0, 200, 100) }

func (r *recorder) FillRect(rect image.Rectangle, _ color.Color) {
	r.fills = append(r.fills, rect)
}

func (r *recorder) DrawImage(rect image.Rectangle, _ image.Image) {
	r.images = append(r.images, rect)
}

func (r *recorder) DrawLabel(center image.Point, text string, _ color.Color) {
	r.labels = append(r.labels, text)
	r.at = append(r.at, center)
}

func testScene() Scene {
	return Scene{
		Bounds:        testBounds,
		Snake:         []grid.Cell{{X: 60, Y: 40}, {X: 40, Y: 40}, {X: 20, Y: 40}},
		Food:          grid.Cell{X: 140, Y: 20},
		HasFood:       true,
		Obstacles:     grid.NewSet(grid.Cell{X: 100, Y: 60}, grid.Cell{X: 120, Y: 60}),
		ObstacleColor: color.RGBA{R: 0x12, G: 0x34, B: 0xd6, A: 0xff},
	}
}

func TestDrawCalls(t *testing.T) {
	rec := &recorder{}
	Draw(rec, testScene())

	// Background + 3 segments + 2 obstacles.
	if len(rec.fills) != 6 {
		t.Errorf("FillRect called %d times, expected 6", len(rec.fills))
	}
	if len(rec.images) != 1 {
		t.Fatalf("DrawImage called %d times, expected 1", len(rec.images))
	}
	want := image.Rect(135, 15, 165, 45)
	if rec.images[0] != want {
		t.Errorf("food rect = %v, expected %v", rec.images[0], want)
	}
	if len(rec.labels) != 0 {
		t.Errorf("unexpected labels %v outside grace", rec.labels)
	}
}

func TestDrawGraceBanner(t *testing.T) {
	rec := &recorder{}
	s := testScene()
	s.Grace = true
	Draw(rec, s)

	if len(rec.labels) != 1 || rec.labels[0] != GraceBanner {
		t.Fatalf("labels = %v, expected the grace banner", rec.labels)
	}
	if rec.at[0] != image.Pt(100, 70) {
		t.Errorf("banner at %v, expected (100,70)", rec.at[0])
	}
}

func TestDrawUnplacedFood(t *testing.T) {
	rec := &recorder{}
	s := testScene()
	s.HasFood = false
	Draw(rec, s)

	if len(rec.images) != 0 {
		t.Error("unplaced food should not be drawn")
	}
}

func TestDrawEmptyScene(t *testing.T) {
	rec := &recorder{}
	Draw(rec, Scene{Bounds: testBounds})
	if len(rec.fills) != 1 {
		t.Errorf("expected only the background, got %d fills", len(rec.fills))
	}
}

func TestDrawOnBuffer(t *testing.T) {
	buf := raster.NewBuffer(200, 100)
	s := testScene()
	Draw(buf, s)
	img := buf.Image()

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"background", 190, 90, Background},
		{"snake segment", 61, 41, SnakeColor},
		{"segment gap", 79, 41, Background},
		{"obstacle", 101, 61, s.ObstacleColor},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s at (%d,%d) = %v, expected %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}

	// The apple body covers the middle of the food cell.
	c := img.RGBAAt(150, 32)
	if c == Background || c.R <= c.G {
		t.Errorf("food cell center = %v, expected a red apple", c)
	}
	if len(s.Snake) != 3 || s.Obstacles.Len() != 2 {
		t.Error("Draw must not modify the scene")
	}
}

func TestApple(t *testing.T) {
	img := Apple(30)
	if img.Bounds() != image.Rect(0, 0, 30, 30) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if Apple(30) != img {
		t.Error("expected cached sprite")
	}
	if img.RGBAAt(0, 29).A != 0 {
		t.Error("corner should be transparent")
	}
	if body := img.RGBAAt(15, 20); body.A != 0xff || body.R <= body.G {
		t.Errorf("body pixel = %v, expected opaque red", body)
	}
}

func TestRandomColor(t *testing.T) {
	a := RandomColor(rand.New(rand.NewSource(7)))
	b := RandomColor(rand.New(rand.NewSource(7)))
	if a != b {
		t.Errorf("same seed gave %v and %v", a, b)
	}
	if a.A != 0xff {
		t.Errorf("alpha = %d, expected opaque", a.A)
	}
}

func TestHex(t *testing.T) {
	if got := Hex(SnakeColor); got != "#28a745" {
		t.Errorf("Hex() = %s, expected #28a745", got)
	}
}

func TestWritePNG(t *testing.T) {
	scene := Scene{
		Bounds:        testBounds,
		Snake:         []grid.Cell{{X: 40, Y: 40}},
		Obstacles:     grid.NewSet(),
		ObstacleColor: color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff},
		Grace:         true,
	}

	var out bytes.Buffer
	if err := WritePNG(&out, scene); err != nil {
		t.Fatalf("WritePNG() error: %v", err)
	}
	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 200, 100) {
		t.Errorf("bounds = %v, expected 200x100", img.Bounds())
	}
	if got := Hex(img.At(45, 45)); got != "#28a745" {
		t.Errorf("snake pixel = %s, expected #28a745", got)
	}
}

func TestWritePNGEmptyCanvas(t *testing.T) {
	var out bytes.Buffer
	if err := WritePNG(&out, Scene{}); err == nil {
		t.Error("expected error for empty canvas")
	}
}

// Package grid holds the movement grid primitives: pixel-aligned cells,
// directions, cell sets and canvas bounds with toroidal wraparound.
// Like core, it has no external dependencies so game logic stays testable.
package grid

import (
	"fmt"
	"sort"
)

// Cell is a grid position in canvas pixels. Both coordinates are multiples
// of the grid unit.
type Cell struct {
	X, Y int
}

// String returns "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add offsets the cell by (dx, dy) pixels.
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Direction is one of the four movement directions.
type Direction int

const (
	Right Direction = iota
	Down
	Left
	Up
)

// Vector returns the per-tick offset for the direction on a grid of the
// given unit size.
func (d Direction) Vector(unit int) (dx, dy int) {
	switch d {
	case Right:
		return unit, 0
	case Left:
		return -unit, 0
	case Down:
		return 0, unit
	case Up:
		return 0, -unit
	}
	return 0, 0
}

// Horizontal reports whether the direction moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == Right || d == Left
}

// SameAxis reports whether both directions move along the same axis.
// A turn is only legal between directions on different axes.
func (d Direction) SameAxis(o Direction) bool {
	return d.Horizontal() == o.Horizontal()
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Set is an unordered, deduplicated collection of cells.
type Set map[Cell]struct{}

// NewSet builds a set from the given cells.
func NewSet(cells ...Cell) Set {
	s := make(Set, len(cells))
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// Add inserts a cell. Adding a present cell is a no-op.
func (s Set) Add(c Cell) {
	s[c] = struct{}{}
}

// Has reports whether the cell is in the set. A nil set is empty.
func (s Set) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of distinct cells.
func (s Set) Len() int {
	return len(s)
}

// Cells returns the cells sorted by row, then column.
func (s Set) Cells() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Bounds describes the canvas in pixels and the grid unit laid over it.
type Bounds struct {
	Width  int // Canvas width in pixels
	Height int // Canvas height in pixels
	Unit   int // Grid unit (G) in pixels
}

// Cols returns the number of whole grid columns.
func (b Bounds) Cols() int {
	return b.Width / b.Unit
}

// Rows returns the number of whole grid rows.
func (b Bounds) Rows() int {
	return b.Height / b.Unit
}

// Snap maps a pixel to the cell containing it.
func (b Bounds) Snap(x, y int) Cell {
	return Cell{X: floorDiv(x, b.Unit) * b.Unit, Y: floorDiv(y, b.Unit) * b.Unit}
}

// Contains reports whether the cell lies on the canvas.
func (b Bounds) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Wrap applies toroidal wraparound independently on each axis: a coordinate
// at or past the far edge wraps to 0, a negative one wraps to edge - unit.
func (b Bounds) Wrap(c Cell) Cell {
	if c.X >= b.Width {
		c.X = 0
	} else if c.X < 0 {
		c.X = b.Width - b.Unit
	}
	if c.Y >= b.Height {
		c.Y = 0
	} else if c.Y < 0 {
		c.Y = b.Height - b.Unit
	}
	return c
}

// Center returns the cell at the middle of the canvas.
func (b Bounds) Center() Cell {
	return Cell{
		X: (b.Width / 2 / b.Unit) * b.Unit,
		Y: (b.Height / 2 / b.Unit) * b.Unit,
	}
}

// CellAt converts a column/row index into a cell.
func (b Bounds) CellAt(col, row int) Cell {
	return Cell{X: col * b.Unit, Y: row * b.Unit}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Package placement finds collision-free cells for the snake's spawn and
// for food, using bounded random retries.
package placement

import (
	"math/rand"

	"github.com/vovakirdan/glyph-snake/internal/grid"
)

// DefaultMaxAttempts bounds every random search.
const DefaultMaxAttempts = 100

// SpawnLength is the snake's body length at spawn.
const SpawnLength = 3

// Solver proposes uniformly random grid cells and rejects collisions.
type Solver struct {
	Bounds      grid.Bounds
	MaxAttempts int
}

// NewSolver creates a solver with the default attempt bound.
func NewSolver(b grid.Bounds) Solver {
	return Solver{Bounds: b, MaxAttempts: DefaultMaxAttempts}
}

func (s Solver) attempts() int {
	if s.MaxAttempts <= 0 {
		return DefaultMaxAttempts
	}
	return s.MaxAttempts
}

// randomCell returns a uniformly random cell on the canvas.
func (s Solver) randomCell(rng *rand.Rand) grid.Cell {
	return s.Bounds.CellAt(rng.Intn(s.Bounds.Cols()), rng.Intn(s.Bounds.Rows()))
}

// body lays out a right-facing snake with head at head and the tail
// trailing to the left, wrapped onto the canvas.
func (s Solver) body(head grid.Cell) []grid.Cell {
	snake := make([]grid.Cell, SpawnLength)
	for i := range snake {
		snake[i] = s.Bounds.Wrap(head.Add(-i*s.Bounds.Unit, 0))
	}
	return snake
}

// SpawnSnake returns a spawn body, head first, none of whose cells is an
// obstacle. When every attempt collides it falls back to a snake headed at
// the canvas center and reports fellBack; the fallback is not checked
// against obstacles.
func (s Solver) SpawnSnake(obstacles grid.Set, rng *rand.Rand) (snake []grid.Cell, fellBack bool) {
	for range s.attempts() {
		candidate := s.body(s.randomCell(rng))
		if !anyIn(candidate, obstacles) {
			return candidate, false
		}
	}
	return s.body(s.Bounds.Center()), true
}

// PlaceFood returns a random cell that is neither an obstacle nor part of
// the snake. ok is false when every attempt collided; the caller leaves the
// food unplaced rather than putting it on an occupied cell.
func (s Solver) PlaceFood(obstacles grid.Set, snake []grid.Cell, rng *rand.Rand) (food grid.Cell, ok bool) {
	for range s.attempts() {
		c := s.randomCell(rng)
		if obstacles.Has(c) || contains(snake, c) {
			continue
		}
		return c, true
	}
	return grid.Cell{}, false
}

func anyIn(cells []grid.Cell, set grid.Set) bool {
	for _, c := range cells {
		if set.Has(c) {
			return true
		}
	}
	return false
}

func contains(cells []grid.Cell, c grid.Cell) bool {
	for _, seg := range cells {
		if seg == c {
			return true
		}
	}
	return false
}

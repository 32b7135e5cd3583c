package snake

import (
	"time"

	"github.com/vovakirdan/glyph-snake/internal/grid"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGrace    GameStateType = "grace"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the game state for rendering and determinism testing.
// Obstacles is shared with the game and must not be modified.
type Snapshot struct {
	Tick      uint64
	Score     int
	Snake     []grid.Cell
	Dir       grid.Direction
	Food      grid.Cell
	HasFood   bool
	Obstacles grid.Set
	Interval  time.Duration
	Grace     bool
	State     GameStateType
	Cause     Cause
}

// Head returns the snake's head, or the zero cell for an empty snake.
func (s Snapshot) Head() grid.Cell {
	if len(s.Snake) == 0 {
		return grid.Cell{}
	}
	return s.Snake[0]
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.grace:
		state = StateGrace
	}

	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Snake:     append([]grid.Cell(nil), g.snake...),
		Dir:       g.direction,
		Food:      g.food,
		HasFood:   g.hasFood,
		Obstacles: g.obstacles,
		Interval:  g.interval,
		Grace:     g.grace,
		State:     state,
		Cause:     g.cause,
	}
}

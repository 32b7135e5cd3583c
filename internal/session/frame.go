package session

import (
	"fmt"
	"image/color"
	"time"

	"github.com/vovakirdan/glyph-snake/internal/games/snake"
	"github.com/vovakirdan/glyph-snake/internal/grid"
	"github.com/vovakirdan/glyph-snake/internal/render"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseAwaitingName Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingName:
		return "awaiting_name"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Frame is a read-only view of a session at one instant.
type Frame struct {
	Phase         Phase
	Name          string
	Epoch         uint64 // Increments on every (re)start
	Runs          int
	Bounds        grid.Bounds
	Game          snake.Snapshot
	Style         string // Font style of the current obstacles
	ObstacleColor color.RGBA
	Interval      time.Duration
	HighScore     int
	FinalScore    int    // Score of the run that just ended, in PhaseGameOver
	Warning       string // Stays until the next reset
}

// ScoreLine formats the score display.
func (f Frame) ScoreLine() string {
	return fmt.Sprintf("Score: %d | High Score: %d", f.Game.Score, f.HighScore)
}

// Scene returns what the renderer paints for this frame.
func (f Frame) Scene() render.Scene {
	return render.Scene{
		Bounds:        f.Bounds,
		Snake:         f.Game.Snake,
		Food:          f.Game.Food,
		HasFood:       f.Game.HasFood,
		Obstacles:     f.Game.Obstacles,
		ObstacleColor: f.ObstacleColor,
		Grace:         f.Game.Grace,
	}
}

func (c *Controller) frameLocked() Frame {
	f := Frame{
		Phase:         c.phase,
		Name:          c.name,
		Epoch:         c.epoch,
		Runs:          c.runs,
		Bounds:        c.bounds,
		Style:         c.style,
		ObstacleColor: c.obstacleColor,
		Interval:      c.interval,
		HighScore:     c.highScore,
		FinalScore:    c.finalScore,
		Warning:       c.warning,
	}
	if c.phase != PhaseAwaitingName {
		f.Game = c.game.Snapshot()
	}
	return f
}

// Package snake implements the glyph-snake game state machine: movement with
// toroidal wraparound, collisions, scoring, the speed ramp and the grace flag.
// It has no timers of its own; the session drives Tick and EndGrace.
package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/glyph-snake/internal/config"
	"github.com/vovakirdan/glyph-snake/internal/grid"
	"github.com/vovakirdan/glyph-snake/internal/placement"
)

// Cause tells why a run ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseSelf
	CauseObstacle
)

func (c Cause) String() string {
	switch c {
	case CauseSelf:
		return "self"
	case CauseObstacle:
		return "obstacle"
	default:
		return "none"
	}
}

// Run is the generated starting state of one run.
type Run struct {
	Obstacles grid.Set    // Immutable for the run
	Snake     []grid.Cell // Head first
	Food      grid.Cell
	HasFood   bool // False leaves the food unplaced
	Interval  time.Duration
}

// Outcome reports what a single tick did.
type Outcome struct {
	Ate          bool
	SpeedChanged bool
	Interval     time.Duration // Tick interval after this tick
	GameOver     bool
	Cause        Cause
}

// Game is the state machine of one session. It is not safe for concurrent
// use; callers serialize Tick, Turn, EndGrace and Reset.
type Game struct {
	bounds grid.Bounds
	ramp   config.SpeedRamp
	solver placement.Solver
	rng    *rand.Rand

	tick     uint64
	score    int
	interval time.Duration

	// Snake state
	snake     []grid.Cell // Head at index 0
	direction grid.Direction

	// Run state
	obstacles grid.Set
	food      grid.Cell
	hasFood   bool
	grace     bool

	gameOver bool
	cause    Cause
}

// New creates a game on the given grid. rng is used to re-place food.
func New(bounds grid.Bounds, ramp config.SpeedRamp, solver placement.Solver, rng *rand.Rand) *Game {
	return &Game{
		bounds: bounds,
		ramp:   ramp,
		solver: solver,
		rng:    rng,
	}
}

// Reset installs a new run: fresh obstacles, snake and food, direction
// right, score zero and the grace period on.
func (g *Game) Reset(run Run) {
	g.tick = 0
	g.score = 0
	g.interval = run.Interval
	g.snake = append([]grid.Cell(nil), run.Snake...)
	g.direction = grid.Right
	g.obstacles = run.Obstacles
	if g.obstacles == nil {
		g.obstacles = make(grid.Set)
	}
	g.food = run.Food
	g.hasFood = run.HasFood
	g.grace = true
	g.gameOver = false
	g.cause = CauseNone
}

// Turn changes the direction used by the next tick. A turn onto the
// current axis (including a reversal) is rejected and reported as false.
func (g *Game) Turn(d grid.Direction) bool {
	if g.gameOver || d.SameAxis(g.direction) {
		return false
	}
	g.direction = d
	return true
}

// EndGrace turns obstacle collisions back on. It touches nothing else.
func (g *Game) EndGrace() {
	g.grace = false
}

// Tick advances the snake by one cell.
func (g *Game) Tick() Outcome {
	if g.gameOver {
		return Outcome{Interval: g.interval, GameOver: true, Cause: g.cause}
	}
	if len(g.snake) == 0 {
		return Outcome{Interval: g.interval}
	}
	g.tick++

	// Advance and wrap, then prepend
	dx, dy := g.direction.Vector(g.bounds.Unit)
	head := g.bounds.Wrap(g.snake[0].Add(dx, dy))
	g.snake = append([]grid.Cell{head}, g.snake...)

	if g.isSnakeAt(head, 1) {
		return g.end(CauseSelf)
	}
	if !g.grace && g.obstacles.Has(head) {
		return g.end(CauseObstacle)
	}

	out := Outcome{Interval: g.interval}
	if g.hasFood && head == g.food {
		g.score++
		out.Ate = true
		g.placeFood()
		if next, changed := g.ramp.Next(g.score, g.interval); changed {
			g.interval = next
			out.Interval = next
			out.SpeedChanged = true
		}
	} else {
		g.snake = g.snake[:len(g.snake)-1]
		if !g.hasFood {
			// Retry an unplaced food every tick until a free cell turns up
			g.placeFood()
		}
	}
	return out
}

func (g *Game) end(cause Cause) Outcome {
	g.gameOver = true
	g.cause = cause
	return Outcome{Interval: g.interval, GameOver: true, Cause: cause}
}

func (g *Game) placeFood() {
	g.food, g.hasFood = g.solver.PlaceFood(g.obstacles, g.snake, g.rng)
}

// isSnakeAt checks if any segment from index from onward occupies c.
func (g *Game) isSnakeAt(c grid.Cell, from int) bool {
	for _, seg := range g.snake[from:] {
		if seg == c {
			return true
		}
	}
	return false
}

// Score returns the current run's score.
func (g *Game) Score() int {
	return g.score
}

// Interval returns the current tick interval.
func (g *Game) Interval() time.Duration {
	return g.interval
}

// Grace reports whether obstacle collisions are currently ignored.
func (g *Game) Grace() bool {
	return g.grace
}

// GameOver reports whether the current run has ended.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// DebugState returns a human-readable dump of the game state.
func (g *Game) DebugState() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tick: %d Score: %d Interval: %v Grace: %v\n", g.tick, g.score, g.interval, g.grace)
	fmt.Fprintf(&sb, "Direction: %v GameOver: %v (%v)\n", g.direction, g.gameOver, g.cause)
	if g.hasFood {
		fmt.Fprintf(&sb, "Food: %v\n", g.food)
	} else {
		sb.WriteString("Food: unplaced\n")
	}
	fmt.Fprintf(&sb, "Obstacles: %d\n", g.obstacles.Len())
	sb.WriteString("Snake:")
	for _, seg := range g.snake {
		sb.WriteString(" ")
		sb.WriteString(seg.String())
	}
	sb.WriteString("\n")
	return sb.String()
}

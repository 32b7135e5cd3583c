// Package session runs glyph-snake sessions: name intake, obstacle
// generation, the timer-driven tick loop, game over and reset.
//
// All state lives in a Controller. Timer callbacks carry the run epoch and
// a timer generation and are ignored once either is stale, so a callback
// from a superseded run or a replaced tick timer can never mutate state.
package session

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyph-snake/internal/audio"
	"github.com/vovakirdan/glyph-snake/internal/config"
	"github.com/vovakirdan/glyph-snake/internal/games/snake"
	"github.com/vovakirdan/glyph-snake/internal/grid"
	"github.com/vovakirdan/glyph-snake/internal/obstacle"
	"github.com/vovakirdan/glyph-snake/internal/placement"
	"github.com/vovakirdan/glyph-snake/internal/render"
	"github.com/vovakirdan/glyph-snake/internal/schedule"
)

var (
	// ErrEmptyName is returned by Start for an empty or whitespace-only name.
	ErrEmptyName = errors.New("session: name must not be empty")
	// ErrAlreadyStarted is returned by a second Start.
	ErrAlreadyStarted = errors.New("session: already started")
	// ErrStopped is returned by Start after Stop.
	ErrStopped = errors.New("session: stopped")
)

// WarnNoSafeSpawn is shown when the snake had to start at the canvas center.
const WarnNoSafeSpawn = "Unable to find a safe starting position for the snake."

// Renderer receives a frame after every successful tick.
type Renderer interface {
	Render(f Frame)
}

// Notifier surfaces user-visible messages.
type Notifier interface {
	Warn(msg string)
	GameOver(score int)
}

// ScoreStore holds the single best-score scalar.
type ScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// Generator builds an obstacle layout from a name.
type Generator interface {
	Generate(name string, rng *rand.Rand) (obstacle.Layout, error)
}

// Options configures a Controller. Nil collaborators get no-op defaults.
//
// Renderer, Notifier, Scores and Audio are called while the controller's
// lock is held, in tick order. They must not block and must not call back
// into the controller.
type Options struct {
	Config    config.GameConfig
	Scheduler schedule.Scheduler // Default: schedule.Real
	Generator Generator          // Default: obstacle.Generator from Config
	Renderer  Renderer
	Notifier  Notifier
	Scores    ScoreStore
	Audio     audio.Player
	Logger    *log.Logger
	Rand      *rand.Rand

	// AwaitDismiss holds the game-over state until Dismiss is called,
	// for hosts that show a blocking notice. Otherwise reset is immediate,
	// and only a failed reset leaves the game over pending for Dismiss.
	AwaitDismiss bool
}

// Controller owns one session's state and timers.
type Controller struct {
	mu sync.Mutex

	cfg          config.GameConfig
	bounds       grid.Bounds
	sched        schedule.Scheduler
	gen          Generator
	renderer     Renderer
	notifier     Notifier
	scores       ScoreStore
	audio        audio.Player
	logger       *log.Logger
	rng          *rand.Rand
	solver       placement.Solver
	awaitDismiss bool

	game  *snake.Game
	phase Phase
	name  string

	epoch      uint64
	tickGen    uint64
	tickTimer  schedule.Timer
	graceTimer schedule.Timer
	interval   time.Duration

	style         string
	obstacleColor color.RGBA
	highScore     int
	warning       string
	finalScore    int
	runs          int
	stopped       bool
}

// New creates a controller awaiting a name. The high score is read once
// here; a read failure is logged and treated as zero.
func New(opts Options) *Controller {
	cfg := opts.Config
	c := &Controller{
		cfg:          cfg,
		bounds:       cfg.Bounds(),
		sched:        opts.Scheduler,
		gen:          opts.Generator,
		renderer:     opts.Renderer,
		notifier:     opts.Notifier,
		scores:       opts.Scores,
		audio:        opts.Audio,
		logger:       opts.Logger,
		rng:          opts.Rand,
		awaitDismiss: opts.AwaitDismiss,
		interval:     cfg.Speed.Initial,
	}
	if c.sched == nil {
		c.sched = schedule.Real{}
	}
	if c.gen == nil {
		c.gen = obstacle.Generator{
			Bounds:        c.bounds,
			FontSize:      cfg.Obstacles.FontSize,
			LetterSpacing: cfg.Obstacles.LetterSpacing,
			Density:       cfg.Obstacles.PasswayDensity,
			Style:         cfg.Obstacles.FontStyle,
		}
	}
	if c.renderer == nil {
		c.renderer = nopRenderer{}
	}
	if c.notifier == nil {
		c.notifier = nopNotifier{}
	}
	if c.audio == nil {
		c.audio = audio.Silent{}
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c.solver = placement.Solver{Bounds: c.bounds, MaxAttempts: cfg.Placement.MaxAttempts}
	c.game = snake.New(c.bounds, cfg.Ramp(), c.solver, c.rng)

	if c.scores != nil {
		hs, err := c.scores.Load()
		if err != nil {
			c.logger.Warn("cannot read high score", "err", err)
		}
		c.highScore = hs
	}
	return c
}

// Start validates the name and begins the first run.
func (c *Controller) Start(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return ErrStopped
	}
	if c.phase != PhaseAwaitingName {
		return ErrAlreadyStarted
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	c.name = name
	c.interval = c.cfg.Speed.Initial
	if err := c.resetLocked(); err != nil {
		c.name = ""
		return err
	}
	c.logger.Info("session started", "name", name)
	return nil
}

// Turn requests a direction change for the next tick. It reports whether
// the turn was accepted.
func (c *Controller) Turn(d grid.Direction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseRunning {
		return false
	}
	return c.game.Turn(d)
}

// Dismiss acknowledges the game-over notice and starts the next run.
// It also retries a reset that failed right after a game over. It reports
// false when no game over is pending.
func (c *Controller) Dismiss() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped || c.phase != PhaseGameOver {
		return false, nil
	}
	if err := c.restartLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// Stop cancels every timer. The controller is inert afterwards.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopped = true
	c.stopTimersLocked()
}

// Frame returns a snapshot of the current state.
func (c *Controller) Frame() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frameLocked()
}

// resetLocked regenerates obstacles, snake, food and color and arms fresh
// timers under a new epoch.
func (c *Controller) resetLocked() error {
	layout, err := c.gen.Generate(c.name, c.rng)
	if err != nil {
		return fmt.Errorf("session: generate obstacles: %w", err)
	}
	body, fellBack := c.solver.SpawnSnake(layout.Obstacles, c.rng)
	food, placed := c.solver.PlaceFood(layout.Obstacles, body, c.rng)

	c.stopTimersLocked()
	c.epoch++
	c.runs++
	c.phase = PhaseRunning
	c.style = layout.Style
	c.obstacleColor = render.RandomColor(c.rng)
	c.finalScore = 0
	c.warning = ""
	c.game.Reset(snake.Run{
		Obstacles: layout.Obstacles,
		Snake:     body,
		Food:      food,
		HasFood:   placed,
		Interval:  c.interval,
	})

	c.logger.Info("run started",
		"epoch", c.epoch,
		"font", layout.Style,
		"obstacles", layout.Obstacles.Len(),
		"interval", c.interval)
	if fellBack {
		c.warning = WarnNoSafeSpawn
		c.logger.Warn("snake spawn fell back to center", "epoch", c.epoch, "head", body[0])
		c.notifier.Warn(WarnNoSafeSpawn)
	}
	if !placed {
		c.logger.Warn("food unplaced", "epoch", c.epoch)
	}

	c.armTickLocked()
	c.armGraceLocked()
	return nil
}

func (c *Controller) restartLocked() error {
	if !c.cfg.Speed.CarryAcrossResets {
		c.interval = c.cfg.Speed.Initial
	}
	return c.resetLocked()
}

func (c *Controller) armTickLocked() {
	c.tickGen++
	epoch, gen := c.epoch, c.tickGen
	c.tickTimer = c.sched.Every(c.interval, func() {
		c.onTick(epoch, gen)
	})
}

func (c *Controller) armGraceLocked() {
	if c.cfg.Grace.Duration <= 0 {
		c.game.EndGrace()
		return
	}
	epoch := c.epoch
	c.graceTimer = c.sched.After(c.cfg.Grace.Duration, func() {
		c.onGraceEnd(epoch)
	})
}

func (c *Controller) stopTimersLocked() {
	if c.tickTimer != nil {
		c.tickTimer.Stop()
		c.tickTimer = nil
	}
	if c.graceTimer != nil {
		c.graceTimer.Stop()
		c.graceTimer = nil
	}
}

// live reports whether a callback armed under epoch (and tick generation,
// when non-zero) still belongs to the current run.
func (c *Controller) live(epoch, gen uint64) bool {
	if c.stopped || c.phase != PhaseRunning || epoch != c.epoch {
		return false
	}
	return gen == 0 || gen == c.tickGen
}

func (c *Controller) onTick(epoch, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live(epoch, gen) {
		return
	}

	out := c.game.Tick()
	if out.GameOver {
		c.gameOverLocked(out.Cause)
		return
	}

	if out.Ate {
		c.audio.Play(audio.CueEat)
		if score := c.game.Score(); score > c.highScore {
			c.highScore = score
			c.saveHighScoreLocked(score)
		}
	}
	if out.SpeedChanged {
		// Swap timers inside the serialized tick: the old timer is stopped
		// before the new one exists, and its generation is now stale.
		c.tickTimer.Stop()
		c.interval = out.Interval
		c.armTickLocked()
		c.audio.Play(audio.CueSpeedUp)
		c.logger.Debug("speed up", "epoch", c.epoch, "score", c.game.Score(), "interval", c.interval)
	}

	c.renderer.Render(c.frameLocked())
}

// saveHighScoreLocked offers score to the store, then adopts the stored
// value when another session sharing the store has gone higher.
func (c *Controller) saveHighScoreLocked(score int) {
	if c.scores == nil {
		return
	}
	if err := c.scores.Save(score); err != nil {
		c.logger.Error("cannot save high score", "err", err)
		return
	}
	best, err := c.scores.Load()
	if err != nil {
		c.logger.Warn("cannot read high score", "err", err)
		return
	}
	c.highScore = max(c.highScore, best)
}

func (c *Controller) onGraceEnd(epoch uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live(epoch, 0) {
		return
	}
	c.graceTimer = nil
	c.game.EndGrace()
	c.logger.Debug("grace period over", "epoch", epoch)
}

func (c *Controller) gameOverLocked(cause snake.Cause) {
	c.stopTimersLocked()
	c.phase = PhaseGameOver
	c.finalScore = c.game.Score()

	c.logger.Info("game over", "epoch", c.epoch, "score", c.finalScore, "cause", cause)
	c.logger.Debug("final state", "state", c.game.DebugState())
	c.audio.Play(audio.CueCrash)
	c.notifier.GameOver(c.finalScore)

	if c.awaitDismiss {
		return
	}
	// A failed reset leaves the session in PhaseGameOver; Dismiss retries.
	if err := c.restartLocked(); err != nil {
		c.logger.Error("cannot reset", "err", err)
		c.notifier.Warn(err.Error())
	}
}

type nopRenderer struct{}

func (nopRenderer) Render(Frame) {}

type nopNotifier struct{}

func (nopNotifier) Warn(string)  {}
func (nopNotifier) GameOver(int) {}

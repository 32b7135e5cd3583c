// Package config provides YAML-based game configuration loading, run
// presets and the speed ramp for glyph-snake.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/glyph-snake/internal/grid"
)

// GameConfig contains every tunable constant of a session.
type GameConfig struct {
	Grid      GridConfig      `yaml:"grid"`
	Speed     SpeedConfig     `yaml:"speed"`
	Grace     GraceConfig     `yaml:"grace"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Placement PlacementConfig `yaml:"placement"`
	Storage   StorageConfig   `yaml:"storage"`
}

// GridConfig defines the canvas and the movement grid laid over it.
type GridConfig struct {
	Unit   int `yaml:"unit"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the tick interval and how it ramps with score.
type SpeedConfig struct {
	Enabled           bool          `yaml:"enabled"`
	Initial           time.Duration `yaml:"initial"`
	Floor             time.Duration `yaml:"floor"`
	Step              time.Duration `yaml:"step"`
	Every             int           `yaml:"every"`
	CarryAcrossResets bool          `yaml:"carry_across_resets"`
}

// GraceConfig defines the obstacle-immunity window after each (re)start.
type GraceConfig struct {
	Duration time.Duration `yaml:"duration"`
}

// ObstacleConfig defines how the name is turned into obstacles.
type ObstacleConfig struct {
	PasswayDensity float64 `yaml:"passway_density"`
	FontSize       float64 `yaml:"font_size"`
	LetterSpacing  float64 `yaml:"letter_spacing"`
	FontStyle      string  `yaml:"font_style"`
}

// PlacementConfig bounds the random placement searches.
type PlacementConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// StorageConfig names the persisted best-score entry.
type StorageConfig struct {
	HighScoreKey string `yaml:"high_score_key"`
}

// Bounds returns the grid bounds described by the config.
func (c GameConfig) Bounds() grid.Bounds {
	return grid.Bounds{Width: c.Grid.Width, Height: c.Grid.Height, Unit: c.Grid.Unit}
}

// Ramp returns the speed ramp described by the config.
func (c GameConfig) Ramp() SpeedRamp {
	return SpeedRamp{
		Enabled: c.Speed.Enabled,
		Floor:   c.Speed.Floor,
		Step:    c.Speed.Step,
		Every:   c.Speed.Every,
	}
}

// Validate reports every unusable value, joined into one error.
func (c GameConfig) Validate() error {
	var errs []error
	if c.Grid.Unit <= 0 {
		errs = append(errs, fmt.Errorf("grid.unit must be positive, got %d", c.Grid.Unit))
	} else if c.Grid.Width < 3*c.Grid.Unit || c.Grid.Height < c.Grid.Unit {
		errs = append(errs, fmt.Errorf("canvas %dx%d too small for unit %d", c.Grid.Width, c.Grid.Height, c.Grid.Unit))
	}
	if c.Speed.Initial <= 0 {
		errs = append(errs, fmt.Errorf("speed.initial must be positive, got %v", c.Speed.Initial))
	}
	if c.Speed.Enabled {
		if c.Speed.Floor <= 0 || c.Speed.Floor > c.Speed.Initial {
			errs = append(errs, fmt.Errorf("speed.floor must be in (0, %v], got %v", c.Speed.Initial, c.Speed.Floor))
		}
		if c.Speed.Step < 0 {
			errs = append(errs, fmt.Errorf("speed.step must not be negative, got %v", c.Speed.Step))
		}
		if c.Speed.Every <= 0 {
			errs = append(errs, fmt.Errorf("speed.every must be positive, got %d", c.Speed.Every))
		}
	}
	if c.Grace.Duration < 0 {
		errs = append(errs, fmt.Errorf("grace.duration must not be negative, got %v", c.Grace.Duration))
	}
	if d := c.Obstacles.PasswayDensity; d < 0 || d > 1 {
		errs = append(errs, fmt.Errorf("obstacles.passway_density must be in [0, 1], got %v", d))
	}
	if c.Obstacles.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.font_size must be positive, got %v", c.Obstacles.FontSize))
	}
	if c.Placement.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("placement.max_attempts must be positive, got %d", c.Placement.MaxAttempts))
	}
	if c.Storage.HighScoreKey == "" {
		errs = append(errs, errors.New("storage.high_score_key must not be empty"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Preset represents a named set of adjustments on top of a config.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(s); p {
	case "":
		return PresetNormal, nil
	case PresetEasy, PresetNormal, PresetHard, PresetFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown preset %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a preset.
// Normal keeps the loaded values; fixed keeps them but disables the ramp.
func ApplyPreset(cfg *GameConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Speed.Initial = 180 * time.Millisecond
		cfg.Grace.Duration = 5 * time.Second
		cfg.Obstacles.PasswayDensity = 0.35
	case PresetHard:
		cfg.Speed.Initial = 110 * time.Millisecond
		cfg.Grace.Duration = 2 * time.Second
		cfg.Obstacles.PasswayDensity = 0.1
	case PresetFixed:
		cfg.Speed.Enabled = false
	}
	if cfg.Speed.Floor > cfg.Speed.Initial {
		cfg.Speed.Floor = cfg.Speed.Initial
	}
}

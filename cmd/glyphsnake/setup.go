package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyph-snake/internal/config"
	"github.com/vovakirdan/glyph-snake/internal/session"
	"github.com/vovakirdan/glyph-snake/internal/storage"
)

// loadConfig reads the config and applies the preset flag.
func loadConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// newLogger writes to --log when set and discards otherwise. The returned
// closer must be called on exit.
func newLogger(prefix string) (*log.Logger, io.Closer, error) {
	if flagLogPath == "" {
		return log.New(io.Discard), nopCloser{}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

// openScores opens the SQLite store, falling back to memory so the game
// still runs without a database.
func openScores(cfg config.GameConfig, warn io.Writer) (session.ScoreStore, func()) {
	key := cfg.Storage.HighScoreKey
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(warn, "Warning: could not open scores database: %v\n", err)
		return storage.KeyedScore{Store: storage.NewMemory(), Key: key}, func() {}
	}
	return storage.KeyedScore{Store: store, Key: key}, func() { store.Close() }
}

// newRand seeds from --seed, or from the clock when it is zero.
func newRand() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

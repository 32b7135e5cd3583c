package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/glyph-snake/internal/audio"
	"github.com/vovakirdan/glyph-snake/internal/core"
	"github.com/vovakirdan/glyph-snake/internal/platform/tui"
)

var (
	flagSound       bool
	flagSnapshotDir string
)

var playCmd = &cobra.Command{
	Use:   "play [name]",
	Short: "Play in this terminal",
	Long: `Start a session. Without a name you are asked for one.

Controls:
  Arrows/WASD/HJKL - Steer
  Ctrl+S           - Save the current frame as PNG
  ?                - More keys
  Q/Ctrl+C         - Quit

Preset options:
  easy   - Slower start, longer grace period, wider passways
  normal - Values from the config
  hard   - Faster start, short grace period, narrow passways
  fixed  - Speed never ramps up

Examples:
  glyphsnake play
  glyphsnake play "Ada Lovelace"
  glyphsnake play Ada --preset fixed --sound
  glyphsnake play Ada --config ./my-glyphsnake.yaml --log play.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	playCmd.Flags().StringVar(&flagSnapshotDir, "snapshots", "", "Directory for Ctrl+S snapshots (default: ~/.glyphsnake/screenshots)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if needW := cfg.Grid.Width / cfg.Grid.Unit * tui.CellWidth; width < needW {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %d columns wide, the board needs %d\n", width, needW)
	}

	logger, logCloser, err := newLogger("glyphsnake")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	scores, closeScores := openScores(cfg, os.Stderr)
	defer closeScores()

	var player audio.Player = audio.Silent{}
	if flagSound {
		speaker := audio.NewSpeaker()
		if err := speaker.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		} else {
			defer speaker.Close()
			player = speaker
		}
	}

	name := ""
	if len(args) == 1 {
		name = strings.TrimSpace(args[0])
	}

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:     width,
			ScreenH:     height,
			Seed:        flagSeed,
			Sound:       flagSound,
			SnapshotDir: flagSnapshotDir,
		},
		Name:   name,
		Scores: scores,
		Audio:  player,
		Logger: logger,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

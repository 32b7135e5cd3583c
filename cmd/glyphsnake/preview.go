package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyph-snake/internal/render"
	"github.com/vovakirdan/glyph-snake/internal/schedule"
	"github.com/vovakirdan/glyph-snake/internal/session"
)

var flagOutput string

var previewCmd = &cobra.Command{
	Use:   "preview <name>",
	Short: "Write the first frame of a run as PNG",
	Long: `Generate the maze for a name, spawn the snake and food, and write the
first frame as a PNG image without opening the game.

Examples:
  glyphsnake preview Ada -o ada.png
  glyphsnake preview Ada --seed 42 --preset hard -o ada-hard.png`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&flagOutput, "output", "o", "preview.png", "Output PNG path")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, logCloser, err := newLogger("glyphsnake-preview")
	if err != nil {
		return err
	}
	defer logCloser.Close()

	// A clock that never advances: the run is set up but never ticks.
	ctrl := session.New(session.Options{
		Config:    cfg,
		Scheduler: schedule.NewManual(),
		Logger:    logger,
		Rand:      newRand(),
	})
	defer ctrl.Stop()

	if err := ctrl.Start(args[0]); err != nil {
		return err
	}
	frame := ctrl.Frame()

	out, err := os.Create(flagOutput)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", flagOutput, err)
	}
	if err := render.WritePNG(out, frame.Scene()); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", flagOutput)
	fmt.Printf("  font:      %s\n", frame.Style)
	fmt.Printf("  obstacles: %d cells\n", frame.Game.Obstacles.Len())
	fmt.Printf("  color:     %s\n", render.Hex(frame.ObstacleColor))
	if frame.Warning != "" {
		fmt.Printf("  warning:   %s\n", frame.Warning)
	}
	return nil
}

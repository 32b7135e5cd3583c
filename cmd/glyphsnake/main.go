// glyphsnake is a terminal snake game whose maze is drawn from your name.
//
// Usage:
//
//	glyphsnake play [name]           - Play in the terminal
//	glyphsnake serve                 - Start SSH server for remote play
//	glyphsnake scores [--reset]      - Show or clear the high score
//	glyphsnake fonts                 - List obstacle font styles
//	glyphsnake preview <name> -o f   - Write the first frame of a run as PNG
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--preset <name>  - easy, normal, hard or fixed
//	--seed <value>   - Set RNG seed for reproducible runs
//	--db <path>      - Set database path (default: ~/.glyphsnake/scores.db)
//	--log <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagPreset  string
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glyphsnake",
	Short: "Glyph Snake - a snake game in a maze drawn from your name",
	Long: `Glyph Snake draws your name in a random font and turns the letters
into walls. Steer the snake around them, eat apples and get faster.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - Show or reset the high score
  fonts    - List the font styles names are drawn with
  preview  - Write the first frame of a run as PNG

Examples:
  glyphsnake play
  glyphsnake play Ada --preset hard
  glyphsnake serve --ssh :2222
  glyphsnake preview Ada -o ada.png`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.glyphsnake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(fontsCmd)
	rootCmd.AddCommand(previewCmd)
}

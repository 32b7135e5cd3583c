package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyph-snake/internal/config"
	"github.com/vovakirdan/glyph-snake/internal/storage"
)

var flagReset bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score",
	Long: `Display the best score recorded in the scores database.

Examples:
  glyphsnake scores
  glyphsnake scores --reset
  glyphsnake scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the high score")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	key := cfg.Storage.HighScoreKey

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearHighScore(key); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing high score: %v\n", err)
			return
		}
		fmt.Println("High score cleared.")
		return
	}

	entry, ok, err := store.Entry(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving high score: %v\n", err)
		return
	}
	if !ok {
		fmt.Println("No high score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'glyphsnake play' to set the first one!")
		return
	}

	fmt.Printf("High Score: %d\n", entry.Value)
	fmt.Printf("Set:        %s\n", entry.UpdatedAt.Format("2006-01-02 15:04"))
}

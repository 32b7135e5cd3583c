package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyph-snake/internal/registry"
)

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List obstacle font styles",
	Long:  `Shows the font styles a name can be drawn with. Each run picks one at random unless obstacles.font_style is set.`,
	Run:   runFonts,
}

func runFonts(cmd *cobra.Command, args []string) {
	styles := registry.List()

	if len(styles) == 0 {
		fmt.Println("No font styles available.")
		return
	}

	fmt.Println("Font styles:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, s := range styles {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, s := range styles {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Set obstacles.font_style in your config to always use one.")
}

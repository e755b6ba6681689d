package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nexus-breakout/internal/breakout"
	"github.com/vovakirdan/nexus-breakout/internal/registry"
)

var flagLevelsVerbose bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available level packs",
	Long:  `Shows every level pack built into the game. Use --verbose to list level names.`,
	Run:   runLevels,
}

func init() {
	levelsCmd.Flags().BoolVarP(&flagLevelsVerbose, "verbose", "v", false, "List the levels of each pack")
}

func runLevels(_ *cobra.Command, _ []string) {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No level packs available.")
		return
	}

	fmt.Println("Available level packs:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Levels", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "-----")

	for _, p := range packs {
		fmt.Printf("  %-*s  %-6d  %s\n", maxIDLen, p.ID, p.Levels, p.Title)
		if !flagLevelsVerbose {
			continue
		}
		catalog, err := breakout.CatalogFor(p.ID)
		if err != nil {
			fmt.Printf("      (invalid: %v)\n", err)
			continue
		}
		for i := range catalog.Len() {
			lvl, _ := catalog.Level(i)
			fmt.Printf("      %2d. %-14s %dx%d\n", i+1, lvl.Name, lvl.Cols(), lvl.Rows())
		}
	}

	fmt.Println()
	fmt.Println("Run 'nexus play <id>' to play a pack.")
}

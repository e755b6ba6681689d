package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nexus-breakout/internal/breakout"
	"github.com/vovakirdan/nexus-breakout/internal/platform/tui"
	"github.com/vovakirdan/nexus-breakout/internal/registry"
	"github.com/vovakirdan/nexus-breakout/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [pack]",
	Short: "Show the best runs of a level pack",
	Long: `Display the best runs for the given level pack (default: nexus).

Examples:
  nexus scores
  nexus scores classic --limit 20
  nexus scores --tui
  nexus scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every stored run of the pack")
}

func runScores(_ *cobra.Command, args []string) {
	packID := breakout.DefaultPack
	if len(args) == 1 {
		packID = args[0]
	}

	if !registry.Exists(packID) {
		fmt.Fprintf(os.Stderr, "Error: unknown level pack %q\n", packID)
		fmt.Fprintln(os.Stderr, "Run 'nexus levels' to see available packs.")
		os.Exit(1)
	}
	pack, err := registry.Get(packID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		if _, err := tui.RunScoreboard(store, "", 100, 30); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if flagScoresClear {
		if err := store.ClearRuns(packID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared all runs of %s.\n", pack.Title)
		return
	}

	runs, err := store.TopRuns(packID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", pack.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'nexus play %s' to set the first high score!\n", packID)
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-5s  %s\n", "Rank", "Player", "Score", "Coins", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-5s  %s\n", "----", "------", "-----", "-----", "-----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-8d  %-6d  %-5d  %s\n",
			i+1, r.Player, r.Score, r.Coins, r.Level, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(packID); err == nil {
		fmt.Printf("Runs: %d  Best: %d  NexusCoins: %d  Furthest level: %d\n",
			stats.Runs, stats.BestScore, stats.TotalCoins, stats.BestLevel)
	}
}

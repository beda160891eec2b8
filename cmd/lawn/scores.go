package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lawn-defense/internal/games/lawn"
	"github.com/vovakirdan/lawn-defense/internal/registry"
	"github.com/vovakirdan/lawn-defense/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the best runs",
	Long: `Display the best runs, ranked by zombies defeated and then by
how long the lawn held. The game defaults to "lawn".

Examples:
  lawn scores
  lawn scores --limit 25
  lawn scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := lawn.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'lawn list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs for %s.\n", gameID)
		return nil
	}

	runs, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("Best runs - %s\n\n", gameID)
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'lawn play %s' to set the first score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-12s  %s\n", "Rank", "Defeated", "Survived", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-12s  %s\n", "----", "--------", "--------", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8s  %-12s  %s\n",
			i+1, r.Score, survived(r.Ticks), r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d   Best: %d   Average: %.1f   Longest: %s\n",
			stats.Runs, stats.HighScore, stats.AvgScore, survived(stats.LongestRun))
	}
	return nil
}

// survived formats a tick count as wall time at the configured rate.
func survived(ticks uint64) string {
	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	d := time.Duration(ticks) * time.Second / time.Duration(fps)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

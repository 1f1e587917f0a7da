package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beatsnake/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs, ranked by apples eaten and then by time survived.

Examples:
  beatsnake scores
  beatsnake scores --recent --limit 5
  beatsnake scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the newest runs instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		logger.Info("runs cleared", "db", flagDBPath)
		return nil
	}

	var runs []storage.Run
	title := "High Scores"
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(gameID, flagLimit)
	} else {
		runs, err = store.TopRuns(gameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("%s - Beat Snake\n\n", title)

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'beatsnake play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-5s  %-6s  %-7s  %-16s  %s\n", "Rank", "Player", "Score", "Length", "Time", "Ended", "Date")
	fmt.Printf("  %-4s  %-12s  %-5s  %-6s  %-7s  %-16s  %s\n", "----", "------", "-----", "------", "----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-5d  %-6d  %-7s  %-16s  %s\n",
			i+1, r.Player, r.Score, r.Length,
			fmt.Sprintf("%.1fs", r.Survived), r.Loss,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.1f  |  Apples: %d  |  Longest: %.1fs\n",
			stats.HighScore, stats.RunsCount, stats.AvgScore, stats.TotalApples, stats.LongestRun)
	}
	return nil
}

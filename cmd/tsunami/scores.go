package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tsunami-run/internal/registry"
	"github.com/vovakirdan/tsunami-run/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresStats bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs of a mode",
	Long: `Display the best runs for the specified mode (default: tsunami).

Examples:
  tsunami scores
  tsunami scores daily --limit 20
  tsunami scores --stats
  tsunami scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show aggregate statistics")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run of the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	mode := defaultMode
	if len(args) > 0 {
		mode = args[0]
	}

	game, err := registry.Create(mode)
	if err != nil {
		return fmt.Errorf("%w, run 'tsunami list' to see available modes", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(mode); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs of %s.\n", game.Title())
		return nil
	}

	if flagScoresStats {
		return printStats(store, mode, game.Title())
	}

	runs, err := store.TopRuns(mode, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Printf("Best Runs - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tsunami play %s' to set the first record!\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-8s  %-7s  %-22s  %s\n", "Rank", "Score", "Distance", "Time", "Ended by", "Date")
	fmt.Printf("  %-4s  %-7s  %-8s  %-7s  %-22s  %s\n", "----", "-----", "--------", "----", "--------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-8s  %-7s  %-22s  %s\n",
			i+1, r.Score, fmt.Sprintf("%dm", r.Distance), r.Duration.Round(time.Second),
			r.Reason, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printStats(store *storage.Store, mode, title string) error {
	st, err := store.Stats(mode)
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}

	fmt.Printf("Statistics - %s\n", title)
	fmt.Println()
	fmt.Printf("  Runs:           %d\n", st.Runs)
	fmt.Printf("  Best score:     %d\n", st.BestScore)
	fmt.Printf("  Best distance:  %dm\n", st.BestDistance)
	fmt.Printf("  Average score:  %.1f\n", st.AvgScore)
	fmt.Printf("  Time survived:  %s\n", st.TotalTime.Round(time.Second))

	if len(st.Reasons) == 0 {
		return nil
	}

	reasons := make([]string, 0, len(st.Reasons))
	for r := range st.Reasons {
		reasons = append(reasons, r)
	}
	sort.Slice(reasons, func(i, j int) bool {
		return st.Reasons[reasons[i]] > st.Reasons[reasons[j]]
	})

	fmt.Println()
	fmt.Println("  Runs ended by:")
	for _, r := range reasons {
		fmt.Printf("    %-22s  %d\n", r, st.Reasons[r])
	}
	return nil
}

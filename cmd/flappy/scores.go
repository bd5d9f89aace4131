package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/face-flappy/internal/storage"
)

var (
	flagScoresCharacter string
	flagScoresLimit     int
	flagScoresClear     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs, for every character or just one.

Examples:
  flappy scores
  flappy scores --character guruji
  flappy scores --limit 25
  flappy scores --character awara --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresCharacter, "character", "", "Only show runs of this character")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the selected runs instead of listing them")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	title := "all characters"
	if flagScoresCharacter != "" {
		c, err := findCharacter(cfg, flagScoresCharacter)
		if err != nil {
			return err
		}
		title = c.Name
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		n, err := store.ClearRuns(flagScoresCharacter)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d runs (%s).\n", n, title)
		return nil
	}

	runs, err := store.TopRuns(flagScoresCharacter, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", title)
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-10s  %-8s  %-7s  %s\n", "Rank", "Score", "Character", "Cause", "Ticks", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-10s  %-8s  %-7s  %s\n", "----", "-----", "---------", "-----", "-----", "----")

	for i, r := range runs {
		name := r.Character
		if c, err := findCharacter(cfg, r.Character); err == nil {
			name = c.Name
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-6d  %-10s  %-8s  %-7d  %s\n", i+1, r.Score, name, r.Cause, r.Ticks, dateStr)
	}

	stats, err := store.Stats(flagScoresCharacter)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	}
	return nil
}

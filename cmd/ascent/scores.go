package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
)

var (
	flagLimit        int
	flagScoreProfile string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top runs",
	Long: `Display the best runs of every pilot.

With --profile, a summary of that pilot's runs follows the table.

Examples:
  ascent scores
  ascent scores --limit 25
  ascent scores --profile alice`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoreProfile, "profile", "", "Also summarize this pilot's runs")
}

func runScores(cmd *cobra.Command, _ []string) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store := mustOpenStore()
	defer store.Close()

	scores, err := store.TopScores(ctx, flagLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Println("High Scores - Meteor Ascent")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ascent play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %9s  %5s  %-10s  %s\n", "Rank", "Pilot", "Score", "Level", "Ship", "When")
	fmt.Printf("  %-4s  %-12s  %9s  %5s  %-10s  %s\n", "----", "-----", "-----", "-----", "----", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-12s  %9s  %5d  %-10s  %s\n",
			i+1, e.Profile, humanize.Comma(int64(e.Score)), e.Level, e.Ship, humanize.Time(e.CreatedAt))
	}

	if flagScoreProfile == "" {
		return
	}

	stats, err := store.Stats(ctx, flagScoreProfile)
	if err != nil {
		fail("retrieving stats: %v", err)
	}

	fmt.Println()
	fmt.Printf("%s: %s, best %s, average %s",
		stats.Profile,
		english.Plural(stats.RunsCount, "run", "runs"),
		humanize.Comma(int64(stats.HighScore)),
		humanize.CommafWithDigits(stats.AvgScore, 1),
	)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf(", last played %s", humanize.Time(stats.LastPlayed))
	}
	fmt.Println()
}

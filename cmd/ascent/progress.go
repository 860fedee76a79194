package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/meteor-ascent/internal/platform/tui"
	"github.com/vovakirdan/meteor-ascent/internal/shooter"
)

var (
	flagReset bool
	flagList  bool
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show or reset a profile's progress",
	Long: `Print the progress record of a profile: unlocked ships and best results.

Examples:
  ascent progress
  ascent progress --profile alice
  ascent progress --profile alice --reset
  ascent progress --list`,
	Args: cobra.NoArgs,
	Run:  runProgress,
}

func init() {
	progressCmd.Flags().StringVar(&flagProfile, "profile", "", "Progress profile (default: $USER)")
	progressCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the record, keeping only the first ship")
	progressCmd.Flags().BoolVar(&flagList, "list", false, "List every profile with saved progress")
}

func runProgress(cmd *cobra.Command, _ []string) {
	profile := flagProfile
	if profile == "" {
		profile = defaultProfile()
	}

	store := mustOpenStore()
	defer store.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if flagList {
		profiles, err := store.Profiles(ctx)
		if err != nil {
			fail("%v", err)
		}
		if len(profiles) == 0 {
			fmt.Println("No profiles yet.")
			return
		}
		for _, name := range profiles {
			fmt.Println(name)
		}
		return
	}

	if flagReset {
		if err := store.ResetProgress(ctx, profile); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Progress of %s reset.\n", profile)
		return
	}

	p, err := tui.LoadProgress(store, profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, showing defaults\n", err)
	}

	var unlocked []string
	for i, ok := range p.Unlocked {
		if ok {
			unlocked = append(unlocked, shooter.Ships[i].Name)
		}
	}

	fmt.Printf("Pilot:      %s\n", profile)
	fmt.Printf("Best score: %s\n", humanize.Comma(int64(p.BestScore)))
	fmt.Printf("Best level: %d\n", p.BestLevel)
	fmt.Printf("Last score: %s\n", humanize.Comma(int64(p.LastScore)))
	fmt.Printf("Ships:      %s (%d of %d)\n", strings.Join(unlocked, ", "), len(unlocked), len(p.Unlocked))
}

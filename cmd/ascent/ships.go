package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/meteor-ascent/internal/config"
	"github.com/vovakirdan/meteor-ascent/internal/platform/tui"
	"github.com/vovakirdan/meteor-ascent/internal/shooter"
	"github.com/vovakirdan/meteor-ascent/internal/storage"
)

var shipsCmd = &cobra.Command{
	Use:   "ships",
	Short: "List ships and their lock state",
	Long:  `Shows every ship in the hangar, its ability and whether the profile has unlocked it.`,
	Args:  cobra.NoArgs,
	Run:   runShips,
}

func init() {
	shipsCmd.Flags().StringVar(&flagProfile, "profile", "", "Progress profile (default: $USER)")
}

func runShips(_ *cobra.Command, _ []string) {
	profile := flagProfile
	if profile == "" {
		profile = defaultProfile()
	}

	cfg, err := config.LoadShooter("")
	if err != nil {
		fail("%v", err)
	}

	// A missing database only means nothing is unlocked yet
	progress := shooter.DefaultProgress()
	if store, openErr := storage.Open(flagDBPath); openErr == nil {
		if p, loadErr := tui.LoadProgress(store, profile); loadErr == nil {
			progress = p
		}
		store.Close()
	}

	// Check marks only on a terminal
	yes, no := "yes", "no"
	if term.IsTerminal(int(os.Stdout.Fd())) {
		yes, no = "✓", "·"
	}

	fmt.Printf("Hangar of %s:\n\n", profile)
	fmt.Printf("  %-4s  %-10s  %-9s  %-8s  %s\n", "Slot", "Ship", "Ability", "Unlocked", "Requires")
	fmt.Printf("  %-4s  %-10s  %-9s  %-8s  %s\n", "----", "----", "-------", "--------", "--------")

	for i, s := range shooter.Ships {
		unlocked := no
		if progress.Unlocked[i] {
			unlocked = yes
		}

		requires := "-"
		switch {
		case s.Admin():
			requires = "code"
		case i < len(cfg.Ships.UnlockScores) && cfg.Ships.UnlockScores[i] > 0:
			requires = humanize.Comma(int64(cfg.Ships.UnlockScores[i])) + " pts"
		}

		fmt.Printf("  %-4d  %-10s  %-9s  %-8s  %s\n", i+1, s.Name, s.Ability, unlocked, requires)
	}

	fmt.Println()
	fmt.Println("Run 'ascent play --ship <slot>' to launch with a ship.")
}

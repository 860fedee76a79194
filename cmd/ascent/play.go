package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/meteor-ascent/internal/config"
	"github.com/vovakirdan/meteor-ascent/internal/core"
	"github.com/vovakirdan/meteor-ascent/internal/logging"
	"github.com/vovakirdan/meteor-ascent/internal/platform/tui"
	"github.com/vovakirdan/meteor-ascent/internal/shooter"
	"github.com/vovakirdan/meteor-ascent/internal/storage"
)

var (
	flagShip       int
	flagConfig     string
	flagDifficulty string
	flagProfile    string
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the hangar and play",
	Long: `Open the hangar, pick a ship and play.

Controls:
  Arrows/WASD - Move
  Space       - Fire
  E           - Ship ability
  L           - Beam
  1-6         - Switch ship
  7-9         - Admin ships (code required once)
  P/Esc       - Pause
  B/Esc       - Back to hangar (paused or game over)
  R           - Restart (after game over)
  Ctrl+S      - Screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Full health, slower meteor acceleration
  normal - Defaults
  hard   - One heart less, faster acceleration, denser showers
  fixed  - Meteor speed never increases

Examples:
  ascent play
  ascent play --ship 2
  ascent play --difficulty hard
  ascent play --profile alice --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagShip, "ship", 1, "Ship slot preselected in the hangar (1-9)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagProfile, "profile", "", "Progress profile (default: $USER)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", logging.DefaultFile, "Log file (the terminal is taken by the game)")
}

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig() config.ShooterConfig {
	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			fail("unknown difficulty %q", flagDifficulty)
		}
		config.ApplyShooterPreset(&cfg, preset)
	}
	return cfg
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagShip < 1 || flagShip > len(shooter.Ships) {
		fail("ship must be between 1 and %d", len(shooter.Ships))
	}

	cfg := loadGameConfig()

	// Logs go to a file while the alt screen is up
	logger, closer, err := logging.OpenFile(flagLogFile, "ascent", logLevel())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, logging disabled\n", err)
		logger, closer = logging.Discard(), io.NopCloser(nil)
	}
	defer closer.Close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	profile := flagProfile
	if profile == "" {
		profile = defaultProfile()
	}

	// Open storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("could not open database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Store:   store,
		Config:  cfg,
		Logger:  logger,
		Profile: profile,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Ship: flagShip - 1,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

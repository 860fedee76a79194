// ascent is Meteor Ascent, a vertical arcade shooter for the terminal.
//
// Usage:
//
//	ascent play              - Open the hangar and play
//	ascent serve             - Start SSH server for remote play
//	ascent scores            - Show the top runs
//	ascent progress          - Show or reset a profile's progress
//	ascent ships             - List ships and their lock state
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.ascent/ascent.db)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/meteor-ascent/internal/logging"
	"github.com/vovakirdan/meteor-ascent/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ascent",
	Short: "Meteor Ascent - climb through meteor showers in your terminal",
	Long: `Meteor Ascent is a vertical arcade shooter. Pick a ship in the hangar,
blast meteors, collect hearts and portals, and survive the boss encounters
waiting at levels 5, 10, 15 and 20.

Available commands:
  play      - Open the hangar and play
  serve     - Start SSH server for remote play
  scores    - View the top runs
  progress  - Show or reset a profile's progress
  ships     - List ships and their lock state

Examples:
  ascent play
  ascent play --ship 2 --difficulty hard
  ascent serve --ssh :2222
  ascent scores --limit 20
  ascent progress --profile alice --reset`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ascent/ascent.db", "Path to progress and scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(shipsCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// logLevel parses --log-level or exits.
func logLevel() log.Level {
	lvl, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		fail("%v", err)
	}
	return lvl
}

// defaultProfile is the login name, falling back to the local profile.
func defaultProfile() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return storage.DefaultProfile
}

// mustOpenStore opens the database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("could not open database: %v", err)
	}
	return store
}

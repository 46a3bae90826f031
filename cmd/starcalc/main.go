// starcalc is an expected-value income calculator for Starfall Idle.
//
// Usage:
//
//	starcalc calc [name]         - Compute hourly income for a profile
//	starcalc tui [name]          - Interactive dashboard with live results
//	starcalc list                - List the income categories
//	starcalc profiles ...        - Manage saved profiles
//	starcalc compare <a> <b>     - Compare two saved profiles
//	starcalc history <name>      - Browse saved result snapshots
//	starcalc serve               - Serve the dashboard over SSH
//
// Global flags:
//
//	--profile <path>  - Load the profile from a YAML file
//	--db <path>       - Database path (default: ~/.starcalc/starcalc.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/astralforge/starcalc/internal/config"
	"github.com/astralforge/starcalc/internal/storage"

	// Import income streams to register them
	_ "github.com/astralforge/starcalc/internal/income/beacons"
	_ "github.com/astralforge/starcalc/internal/income/claims"
	_ "github.com/astralforge/starcalc/internal/income/stargazing"
)

var (
	// Global flags
	flagProfile string
	flagDBPath  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starcalc",
	Short: "Starfall Idle income calculator",
	Long: `starcalc computes the expected hourly income of a Starfall Idle
configuration: expedition claims, the beacon economy, and stargazing.

All results are long-run expected values per hour. Nothing is simulated;
chains of self-referencing bonuses are resolved in closed form and the
beacon cross-refills by fixed-point iteration.

Examples:
  starcalc calc
  starcalc calc midgame --snapshot
  starcalc calc --profile ./my-build.yaml
  starcalc tui
  starcalc compare midgame lategame
  starcalc serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Path to a profile YAML file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starcalc/starcalc.db", "Path to the profiles database")

	// Add subcommands
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// openStore opens the profiles database, exiting on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// resolveProfile loads the profile a command should operate on.
// A name argument selects a saved profile from the database; otherwise
// the --profile path (or the default search order) applies. Returns the
// profile and the name results should be recorded under.
func resolveProfile(args []string) (config.Profile, string) {
	if len(args) > 0 {
		name := args[0]
		store := openStore()
		defer store.Close()

		body, err := store.GetProfile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading profile: %v\n", err)
			os.Exit(1)
		}
		if body == nil {
			fmt.Fprintf(os.Stderr, "Error: no saved profile %q\n", name)
			fmt.Fprintln(os.Stderr, "Run 'starcalc profiles list' to see saved profiles.")
			os.Exit(1)
		}

		profile, err := config.Parse(body)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing profile %q: %v\n", name, err)
			os.Exit(1)
		}
		return profile, name
	}

	profile, err := config.Load(flagProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		os.Exit(1)
	}
	return profile, "default"
}

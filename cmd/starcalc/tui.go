package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/astralforge/starcalc/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [name]",
	Short: "Interactive dashboard with live results",
	Long: `Open the interactive dashboard: edit profile parameters on the
left and watch the hourly income update on the right.

Controls:
  Up/Down    - Move between fields
  Enter      - Edit a value / toggle a switch
  S          - Save a result snapshot
  R          - Reset to the default profile
  Q/Ctrl+C   - Quit

Examples:
  starcalc tui
  starcalc tui midgame
  starcalc tui --profile ./my-build.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTUI,
}

var historyCmd = &cobra.Command{
	Use:   "history <name>",
	Short: "Browse saved result snapshots",
	Long: `Browse the snapshots recorded for a profile, newest first,
together with its best recorded total.

Examples:
  starcalc history midgame`,
	Args: cobra.ExactArgs(1),
	Run:  runHistory,
}

func runTUI(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: the dashboard needs a terminal")
		os.Exit(1)
	}

	profile, name := resolveProfile(args)

	store := openStore()
	defer store.Close()

	if err := tui.Run(profile, name, store); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runHistory(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: the history browser needs a terminal")
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	if err := tui.RunHistory(store, args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

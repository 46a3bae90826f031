package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/astralforge/starcalc/internal/config"
	"github.com/astralforge/starcalc/internal/income"
	"github.com/astralforge/starcalc/internal/storage"
)

var compareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "Compare two saved profiles",
	Long: `Compute both saved profiles and print their per-category totals
side by side with the difference, to judge an upgrade path.

Examples:
  starcalc compare midgame lategame`,
	Args: cobra.ExactArgs(2),
	Run:  runCompare,
}

func runCompare(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	left := loadSaved(store, args[0])
	right := loadSaved(store, args[1])

	leftReport, err := income.Calculate(left)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing %q: %v\n", args[0], err)
		os.Exit(1)
	}
	rightReport, err := income.Calculate(right)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing %q: %v\n", args[1], err)
		os.Exit(1)
	}

	fmt.Printf("Comparison: %s vs %s\n", args[0], args[1])
	fmt.Println()
	fmt.Printf("  %-18s  %12s  %12s  %12s\n", "Category", args[0], args[1], "Delta")
	fmt.Printf("  %-18s  %12s  %12s  %12s\n", "--------", "----", "----", "-----")

	for _, lc := range leftReport.Categories {
		rc, _ := rightReport.Category(lc.ID)

		lv, lok := categoryTotal(lc)
		rv, rok := categoryTotal(rc)
		switch {
		case lok && rok:
			fmt.Printf("  %-18s  %12.2f  %12.2f  %+12.2f\n", lc.Title, lv, rv, rv-lv)
		case lok:
			fmt.Printf("  %-18s  %12.2f  %12s\n", lc.Title, lv, "failed")
		case rok:
			fmt.Printf("  %-18s  %12s  %12.2f\n", lc.Title, "failed", rv)
		default:
			fmt.Printf("  %-18s  %12s  %12s\n", lc.Title, "failed", "failed")
		}
	}

	fmt.Println()
	delta := rightReport.GrandTotal - leftReport.GrandTotal
	fmt.Printf("Grand total: %.2f/h vs %.2f/h (%+.2f/h)\n",
		leftReport.GrandTotal, rightReport.GrandTotal, delta)
	if leftReport.GrandTotal > 0 {
		fmt.Printf("Change: %+.1f%%\n", delta/leftReport.GrandTotal*100)
	}
}

// loadSaved reads and parses a saved profile, exiting on failure.
func loadSaved(store *storage.Store, name string) config.Profile {
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
	return profile
}

// categoryTotal extracts a category's total if it resolved.
func categoryTotal(c income.CategoryResult) (float64, bool) {
	if c.ID == "" || c.Err != nil {
		return 0, false
	}
	return c.Breakdown.Total, true
}

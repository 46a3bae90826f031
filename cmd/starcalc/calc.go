package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/astralforge/starcalc/internal/income"
)

var flagSnapshot bool

var calcCmd = &cobra.Command{
	Use:   "calc [name]",
	Short: "Compute hourly income for a profile",
	Long: `Compute the expected hourly income of a profile and print the
per-category breakdown.

With a name argument the saved profile of that name is used; otherwise
the --profile file (or the default search order) applies.

Examples:
  starcalc calc
  starcalc calc midgame
  starcalc calc midgame --snapshot
  starcalc calc --profile ./my-build.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCalc,
}

func init() {
	calcCmd.Flags().BoolVar(&flagSnapshot, "snapshot", false, "Record the results in the database")
}

func runCalc(cmd *cobra.Command, args []string) {
	profile, name := resolveProfile(args)

	report, err := income.Calculate(profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printReport(name, report)

	if flagSnapshot {
		saveSnapshots(name, report)
	}
}

// printReport prints the per-category table and grand total.
func printReport(name string, report income.Report) {
	fmt.Printf("Income - %s\n", name)
	fmt.Println()

	fmt.Printf("  %-18s  %12s  %12s  %12s  %12s  %7s\n",
		"Category", "Base", "Bonus", "Refresh", "Total", "Share")
	fmt.Printf("  %-18s  %12s  %12s  %12s  %12s  %7s\n",
		"--------", "----", "-----", "-------", "-----", "-----")

	for _, c := range report.Categories {
		if c.Err != nil {
			fmt.Printf("  %-18s  failed: %v\n", c.Title, c.Err)
			continue
		}
		bd := c.Breakdown
		fmt.Printf("  %-18s  %12.2f  %12.2f  %12.2f  %12.2f  %6.1f%%\n",
			c.Title, bd.Base, bd.Bonus, bd.Refresh, bd.Total, c.Share*100)
	}

	fmt.Println()
	fmt.Printf("Grand total: %.2f/h\n", report.GrandTotal)
	if report.Failed > 0 {
		fmt.Printf("Warning: %d category(ies) could not be resolved\n", report.Failed)
	}
}

// saveSnapshots records per-category and grand totals for later comparison.
func saveSnapshots(name string, report income.Report) {
	store := openStore()
	defer store.Close()

	for _, c := range report.Categories {
		if c.Err != nil {
			continue
		}
		if _, err := store.SaveSnapshot(name, c.ID, c.Breakdown.Total); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
			os.Exit(1)
		}
	}
	if _, err := store.SaveSnapshot(name, "total", report.GrandTotal); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Snapshot saved.")
}

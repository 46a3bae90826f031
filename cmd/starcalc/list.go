package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/astralforge/starcalc/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the income categories",
	Long:  `Shows every income category the calculator knows about.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	streams := registry.List()

	if len(streams) == 0 {
		fmt.Println("No income categories registered.")
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range streams {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Println("Income categories:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, s := range streams {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'starcalc calc' to compute them all.")
}

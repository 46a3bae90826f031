// Package income aggregates the registered income streams into a single
// per-hour report with category totals, attribution shares and a grand
// total. Calculation is a pure function of the profile: no I/O, no shared
// state, identical input gives identical output.
package income

import (
	"fmt"

	"github.com/astralforge/starcalc/internal/config"
	"github.com/astralforge/starcalc/internal/core"
	"github.com/astralforge/starcalc/internal/registry"
)

// CategoryResult is one income category's outcome within a report.
// Either Breakdown is populated or Err explains why the category could not
// be resolved; a failed category never hides the others.
type CategoryResult struct {
	ID        string
	Title     string
	Breakdown core.Breakdown
	Err       error

	// Share is this category's fraction of the grand total, for
	// attribution display. Zero when the category failed.
	Share float64
}

// Report is the result of one full calculation.
type Report struct {
	Categories []CategoryResult // in registry (ID) order
	GrandTotal float64
	Failed     int // number of categories that could not be resolved
}

// Category looks up a result by stream ID.
func (r Report) Category(id string) (CategoryResult, bool) {
	for _, c := range r.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return CategoryResult{}, false
}

// Calculate validates the profile once at the boundary, then evaluates
// every registered income stream independently. Stream failures
// (divergent chains, non-converging economies, zero cycles) are recorded
// per category; only an invalid profile fails the whole calculation.
func Calculate(p config.Profile) (Report, error) {
	if err := p.Validate(); err != nil {
		return Report{}, err
	}

	var report Report
	for _, info := range registry.List() {
		stream, err := registry.Create(info.ID)
		if err != nil {
			// Listed streams always resolve; guard against registry races.
			return Report{}, fmt.Errorf("income: %w", err)
		}

		result := CategoryResult{ID: info.ID, Title: info.Title}
		breakdown, err := stream.Compute(p)
		if err != nil {
			result.Err = err
			report.Failed++
		} else {
			result.Breakdown = breakdown
			report.GrandTotal += breakdown.Total
		}
		report.Categories = append(report.Categories, result)
	}

	if report.GrandTotal > 0 {
		for i := range report.Categories {
			if report.Categories[i].Err == nil {
				report.Categories[i].Share = report.Categories[i].Breakdown.Total / report.GrandTotal
			}
		}
	}

	return report, nil
}

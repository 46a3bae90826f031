package income

import (
	"errors"
	"math"
	"testing"

	"github.com/astralforge/starcalc/internal/config"
	"github.com/astralforge/starcalc/internal/core"

	// Register the income streams under test.
	_ "github.com/astralforge/starcalc/internal/income/beacons"
	_ "github.com/astralforge/starcalc/internal/income/claims"
	_ "github.com/astralforge/starcalc/internal/income/stargazing"
)

func TestCalculateDefaultProfile(t *testing.T) {
	report, err := Calculate(config.DefaultProfile())
	if err != nil {
		t.Fatalf("Calculate() failed: %v", err)
	}

	if len(report.Categories) != 3 {
		t.Fatalf("Expected 3 categories, got %d", len(report.Categories))
	}
	if report.Failed != 0 {
		t.Errorf("Default profile must resolve every category, %d failed", report.Failed)
	}

	sum := 0.0
	for _, c := range report.Categories {
		if c.Err != nil {
			t.Errorf("Category %s failed: %v", c.ID, c.Err)
			continue
		}
		if c.Breakdown.Total < 0 {
			t.Errorf("Category %s has negative total %v", c.ID, c.Breakdown.Total)
		}
		sum += c.Breakdown.Total
	}
	if math.Abs(sum-report.GrandTotal) > 1e-9 {
		t.Errorf("Grand total %v != category sum %v", report.GrandTotal, sum)
	}
}

func TestCategoryOrderStable(t *testing.T) {
	report, err := Calculate(config.DefaultProfile())
	if err != nil {
		t.Fatalf("Calculate() failed: %v", err)
	}

	want := []string{"beacons", "claims", "stargazing"}
	for i, id := range want {
		if report.Categories[i].ID != id {
			t.Errorf("Category %d = %s, want %s", i, report.Categories[i].ID, id)
		}
	}
}

func TestFailureIsolation(t *testing.T) {
	// A zero claim cycle fails the claims category only; the other
	// categories must still be computed and summed.
	p := config.DefaultProfile()
	p.Claims.CycleMinutes = 0

	report, err := Calculate(p)
	if err != nil {
		t.Fatalf("Calculate() failed: %v", err)
	}
	if report.Failed != 1 {
		t.Fatalf("Expected exactly one failed category, got %d", report.Failed)
	}

	claims, ok := report.Category("claims")
	if !ok {
		t.Fatal("Claims category missing from report")
	}
	if !errors.Is(claims.Err, core.ErrZeroCycle) {
		t.Errorf("Claims error = %v, want ErrZeroCycle", claims.Err)
	}

	for _, id := range []string{"beacons", "stargazing"} {
		c, ok := report.Category(id)
		if !ok {
			t.Fatalf("Category %s missing from report", id)
		}
		if c.Err != nil {
			t.Errorf("Category %s must not be affected, got %v", id, c.Err)
		}
		if c.Breakdown.Total <= 0 {
			t.Errorf("Category %s total = %v, want > 0", id, c.Breakdown.Total)
		}
	}
	if report.GrandTotal <= 0 {
		t.Errorf("Grand total must still cover the healthy categories, got %v", report.GrandTotal)
	}
}

func TestInvalidProfileRejectedAtBoundary(t *testing.T) {
	p := config.DefaultProfile()
	p.Stargazing.SupergiantChance = 1.4

	_, err := Calculate(p)
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestAttributionSharesSumToOne(t *testing.T) {
	report, err := Calculate(config.DefaultProfile())
	if err != nil {
		t.Fatalf("Calculate() failed: %v", err)
	}

	sum := 0.0
	for _, c := range report.Categories {
		if c.Share < 0 || c.Share > 1 {
			t.Errorf("Category %s share %v out of range", c.ID, c.Share)
		}
		sum += c.Share
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("Shares sum to %v, want 1", sum)
	}
}

func TestCalculateIdempotent(t *testing.T) {
	p := config.DefaultProfile()
	first, err := Calculate(p)
	if err != nil {
		t.Fatalf("Calculate() failed: %v", err)
	}
	second, err := Calculate(p)
	if err != nil {
		t.Fatalf("Calculate() failed: %v", err)
	}

	if first.GrandTotal != second.GrandTotal {
		t.Errorf("Grand totals differ: %v vs %v", first.GrandTotal, second.GrandTotal)
	}
	for i := range first.Categories {
		a, b := first.Categories[i], second.Categories[i]
		if a.Breakdown.Base != b.Breakdown.Base ||
			a.Breakdown.Bonus != b.Breakdown.Bonus ||
			a.Breakdown.Refresh != b.Breakdown.Refresh ||
			a.Breakdown.Total != b.Breakdown.Total {
			t.Errorf("Category %s differs between identical calls", a.ID)
		}
	}
}

package claims

import (
	"errors"
	"math"
	"testing"

	"github.com/astralforge/starcalc/internal/config"
	"github.com/astralforge/starcalc/internal/core"
)

// bareProfile returns a profile where only the plain claim cycle is active:
// no bonus rolls, no repeats, no warps.
func bareProfile() config.Profile {
	var p config.Profile
	p.Claims = config.ClaimsParams{
		BaseReward:   9.0,
		CycleMinutes: 7,
	}
	return p
}

func TestBareCycleYield(t *testing.T) {
	// 9 stardust every 7 minutes is 9 * 60/7 per hour.
	b, err := New().Compute(bareProfile())
	if err != nil {
		t.Fatalf("Compute() failed: %v", err)
	}

	want := 9.0 * 60 / 7
	if math.Abs(b.Total-want) > 1e-9 {
		t.Errorf("Total = %v, want %v", b.Total, want)
	}
	if b.Bonus != 0 || b.Refresh != 0 {
		t.Errorf("Bare cycle must have no bonus/refresh contribution, got %v/%v", b.Bonus, b.Refresh)
	}
}

func TestBonusRollAndRefreshMultipliers(t *testing.T) {
	p := bareProfile()
	p.Claims.BonusRollChance = 0.05
	p.Claims.BonusRollCount = 5
	p.Claims.RepeatChance = 0.05

	b, err := New().Compute(p)
	if err != nil {
		t.Fatalf("Compute() failed: %v", err)
	}

	// Expected rolls per claim: 0.95*1 + 0.05*5 = 1.2
	// Refresh multiplier: 1/(1-0.05)
	rolls := mult(t, b, "rolls per claim")
	if math.Abs(rolls-1.2) > 1e-12 {
		t.Errorf("Rolls per claim = %v, want 1.2", rolls)
	}
	refresh := mult(t, b, "refresh multiplier")
	if math.Abs(refresh-1/0.95) > 1e-12 {
		t.Errorf("Refresh multiplier = %v, want %v", refresh, 1/0.95)
	}

	want := 9.0 * 60 / 7 * 1.2 / 0.95
	if math.Abs(b.Total-want) > 1e-9 {
		t.Errorf("Total = %v, want %v", b.Total, want)
	}
	if sum := b.Base + b.Bonus + b.Refresh; math.Abs(sum-b.Total) > 1e-9 {
		t.Errorf("Breakdown parts sum to %v, total is %v", sum, b.Total)
	}
}

func TestWarpWindowsAddClaims(t *testing.T) {
	p := bareProfile()
	p.Claims.Warp = config.WarpParams{
		Chance:        0.10,
		DoubleChance:  0.10,
		TripleChance:  0.05,
		WindowMinutes: 5,
		Speed:         2,
	}

	b, err := New().Compute(p)
	if err != nil {
		t.Fatalf("Compute() failed: %v", err)
	}

	bare, err := New().Compute(bareProfile())
	if err != nil {
		t.Fatalf("Compute() failed: %v", err)
	}
	if b.Total <= bare.Total {
		t.Errorf("Warp windows must increase yield: %v vs %v", b.Total, bare.Total)
	}
	if extra := mult(t, b, "warp bonus claims/h"); extra <= 0 {
		t.Errorf("Warp bonus claims = %v, want > 0", extra)
	}
}

func TestRepeatChanceOneDiverges(t *testing.T) {
	p := bareProfile()
	p.Claims.RepeatChance = 1.0

	_, err := New().Compute(p)
	if !errors.Is(err, core.ErrDivergent) {
		t.Errorf("Expected ErrDivergent for repeat chance 1, got %v", err)
	}
}

func TestWarpCollapseDiverges(t *testing.T) {
	// Warp windows saving the whole hour cannot be priced.
	p := bareProfile()
	p.Claims.Warp = config.WarpParams{
		Chance:        1,
		WindowMinutes: 30,
		Speed:         2,
	}

	_, err := New().Compute(p)
	if !errors.Is(err, core.ErrDivergent) {
		t.Errorf("Expected ErrDivergent for hour collapse, got %v", err)
	}
}

func TestZeroCycleReported(t *testing.T) {
	p := bareProfile()
	p.Claims.CycleMinutes = 0

	_, err := New().Compute(p)
	if !errors.Is(err, core.ErrZeroCycle) {
		t.Errorf("Expected ErrZeroCycle, got %v", err)
	}
}

func TestIdempotent(t *testing.T) {
	p := config.DefaultProfile()
	first, err := New().Compute(p)
	if err != nil {
		t.Fatalf("Compute() failed: %v", err)
	}
	second, err := New().Compute(p)
	if err != nil {
		t.Fatalf("Compute() failed: %v", err)
	}
	if first.Total != second.Total || first.Base != second.Base {
		t.Errorf("Identical profiles produced different results: %+v vs %+v", first, second)
	}
}

// mult finds a named multiplier in a breakdown.
func mult(t *testing.T, b core.Breakdown, name string) float64 {
	t.Helper()
	for _, m := range b.Multipliers {
		if m.Name == name {
			return m.Value
		}
	}
	t.Fatalf("Multiplier %q not found", name)
	return 0
}

package core

import (
	"errors"
	"math"
	"testing"
)

func TestExpectedMultiplierBounds(t *testing.T) {
	// chance 0 must be exactly 1, chance 1 must be exactly the multiplier
	for _, mult := range []float64{0, 0.5, 1, 3, 10} {
		if got := ExpectedMultiplier(0, mult); got != 1 {
			t.Errorf("ExpectedMultiplier(0, %v) = %v, want 1", mult, got)
		}
		if got := ExpectedMultiplier(1, mult); got != mult {
			t.Errorf("ExpectedMultiplier(1, %v) = %v, want %v", mult, got, mult)
		}
	}
}

func TestExpectedMultiplierMidpoint(t *testing.T) {
	// 50% chance of a 10x effect averages to 5.5x
	got := ExpectedMultiplier(0.5, 10)
	if math.Abs(got-5.5) > 1e-12 {
		t.Errorf("ExpectedMultiplier(0.5, 10) = %v, want 5.5", got)
	}
}

func TestStackMultiplicativeCommutative(t *testing.T) {
	effects := []float64{1.45, 1.0526, 2.0, 0.9}
	forward := StackMultiplicative(effects...)
	reversed := StackMultiplicative(effects[3], effects[2], effects[1], effects[0])
	shuffled := StackMultiplicative(effects[2], effects[0], effects[3], effects[1])

	if math.Abs(forward-reversed) > 1e-12 {
		t.Errorf("Product order-dependent: %v vs %v", forward, reversed)
	}
	if math.Abs(forward-shuffled) > 1e-12 {
		t.Errorf("Product order-dependent: %v vs %v", forward, shuffled)
	}
}

func TestStackMultiplicativeEmpty(t *testing.T) {
	if got := StackMultiplicative(); got != 1 {
		t.Errorf("Empty stack = %v, want identity 1", got)
	}
}

func TestExclusiveSplitResidual(t *testing.T) {
	residual, err := ExclusiveSplit(0.2, 0.3)
	if err != nil {
		t.Fatalf("ExclusiveSplit(0.2, 0.3) failed: %v", err)
	}
	if math.Abs(residual-0.5) > 1e-12 {
		t.Errorf("Residual = %v, want 0.5", residual)
	}
}

func TestExclusiveSplitFullMass(t *testing.T) {
	// Chances summing to exactly 1 leave zero residual, not an error
	residual, err := ExclusiveSplit(0.6, 0.4)
	if err != nil {
		t.Fatalf("ExclusiveSplit(0.6, 0.4) failed: %v", err)
	}
	if residual != 0 {
		t.Errorf("Residual = %v, want 0", residual)
	}
}

func TestExclusiveSplitOverflow(t *testing.T) {
	_, err := ExclusiveSplit(0.7, 0.5)
	if !errors.Is(err, ErrBadSplit) {
		t.Errorf("Expected ErrBadSplit, got %v", err)
	}
}

func TestCapChance(t *testing.T) {
	if got := CapChance(1.7); got != 1 {
		t.Errorf("CapChance(1.7) = %v, want 1", got)
	}
	if got := CapChance(-0.1); got != 0 {
		t.Errorf("CapChance(-0.1) = %v, want 0", got)
	}
	if got := CapChance(0.42); got != 0.42 {
		t.Errorf("CapChance(0.42) = %v, want 0.42", got)
	}
}

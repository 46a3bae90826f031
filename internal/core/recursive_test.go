package core

import (
	"errors"
	"math"
	"testing"
)

func TestResolveRecursive(t *testing.T) {
	cases := []struct {
		a, b float64
		want float64
	}{
		{100, 0, 100},
		{100, 0.5, 200},
		{9, 0.1, 10},
		{0, 0.9, 0},
	}

	for _, c := range cases {
		got, err := ResolveRecursive(c.a, c.b)
		if err != nil {
			t.Errorf("ResolveRecursive(%v, %v) failed: %v", c.a, c.b, err)
			continue
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("ResolveRecursive(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestResolveRecursiveDivergent(t *testing.T) {
	// b >= 1 must report divergence, never a finite-looking number
	for _, b := range []float64{1.0, 1.5, 100} {
		_, err := ResolveRecursive(100, b)
		if !errors.Is(err, ErrDivergent) {
			t.Errorf("ResolveRecursive(100, %v): expected ErrDivergent, got %v", b, err)
		}
	}
}

func TestRefreshMultiplier(t *testing.T) {
	got, err := RefreshMultiplier(0.05)
	if err != nil {
		t.Fatalf("RefreshMultiplier(0.05) failed: %v", err)
	}
	want := 1 / 0.95
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("RefreshMultiplier(0.05) = %v, want %v", got, want)
	}

	if _, err := RefreshMultiplier(1); !errors.Is(err, ErrDivergent) {
		t.Errorf("RefreshMultiplier(1): expected ErrDivergent, got %v", err)
	}
}

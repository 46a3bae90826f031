package core

import (
	"errors"
	"math"
	"testing"
)

func TestTimeSavedMinutes(t *testing.T) {
	// 8 triggers/hour, 1.2 expected windows each, 5 minutes at 2x speed
	got := TimeSavedMinutes(8, 1.2, 5, 2)
	want := 8 * 1.2 * 5.0 / 2.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("TimeSavedMinutes = %v, want %v", got, want)
	}
}

func TestBonusOpportunitiesZeroSaved(t *testing.T) {
	got, err := BonusOpportunities(7, 0)
	if err != nil {
		t.Fatalf("BonusOpportunities(7, 0) failed: %v", err)
	}
	if got != 0 {
		t.Errorf("No time saved should add no opportunities, got %v", got)
	}
}

func TestBonusOpportunitiesCompression(t *testing.T) {
	// Saving 6 minutes of a 60-minute hour leaves 54 real minutes, so the
	// 7-minute cycle effectively fires 60/(7*54/60) times per hour.
	got, err := BonusOpportunities(7, 6)
	if err != nil {
		t.Fatalf("BonusOpportunities(7, 6) failed: %v", err)
	}
	want := 60/(7*54.0/60) - 60/7.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("BonusOpportunities(7, 6) = %v, want %v", got, want)
	}
	if got <= 0 {
		t.Errorf("Compression must add opportunities, got %v", got)
	}
}

func TestBonusOpportunitiesZeroCycle(t *testing.T) {
	_, err := BonusOpportunities(0, 5)
	if !errors.Is(err, ErrZeroCycle) {
		t.Errorf("Expected ErrZeroCycle, got %v", err)
	}
}

func TestBonusOpportunitiesHourCollapse(t *testing.T) {
	_, err := BonusOpportunities(7, 60)
	if !errors.Is(err, ErrDivergent) {
		t.Errorf("Expected ErrDivergent when the hour collapses, got %v", err)
	}
}

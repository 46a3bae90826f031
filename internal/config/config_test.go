package config

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultProfileValid(t *testing.T) {
	if err := DefaultProfile().Validate(); err != nil {
		t.Fatalf("Default profile must validate: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	embedded, err := Parse(defaultProfileYAML)
	if err != nil {
		t.Fatalf("Embedded default profile failed to parse: %v", err)
	}
	if embedded != DefaultProfile() {
		t.Errorf("Embedded default profile diverged from DefaultProfile()")
	}
}

func TestValidateRejectsOutOfRangeChance(t *testing.T) {
	p := DefaultProfile()
	p.Claims.RepeatChance = 1.2
	if err := p.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for repeat_chance 1.2, got %v", err)
	}

	p = DefaultProfile()
	p.Stargazing.SupernovaChance = -0.01
	if err := p.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for negative supernova_chance, got %v", err)
	}
}

func TestValidateRejectsNegativeDuration(t *testing.T) {
	p := DefaultProfile()
	p.Beacons.Pulse.RechargeSeconds = -10
	if err := p.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for negative recharge, got %v", err)
	}
}

func TestValidateRejectsNaN(t *testing.T) {
	p := DefaultProfile()
	p.Claims.BaseReward = math.NaN()
	if err := p.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for NaN base reward, got %v", err)
	}
}

func TestValidateRejectsOverfullSplit(t *testing.T) {
	p := DefaultProfile()
	p.Stargazing.DoubleChance = 0.7
	p.Stargazing.TripleChance = 0.5
	if err := p.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for double+triple > 1, got %v", err)
	}
}

func TestValidateRejectsUnknownTier(t *testing.T) {
	p := DefaultProfile()
	p.Beacons.Comet.ChargeTier = "legendary"
	if err := p.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for unknown charge tier, got %v", err)
	}
}

func TestValidateAllowsZeroDurations(t *testing.T) {
	// Zero is degenerate but not a validation error; the engine reports it
	// per category at calculation time.
	p := DefaultProfile()
	p.Claims.CycleMinutes = 0
	if err := p.Validate(); err != nil {
		t.Errorf("Zero cycle_minutes must pass validation, got %v", err)
	}
}

func TestChargeTierMultipliers(t *testing.T) {
	cases := []struct {
		tier ChargeTier
		want float64
	}{
		{TierNone, 1.0},
		{TierBright, 1.5},
		{TierBrilliant, 2.0},
		{TierRadiant, 3.0},
		{"", 1.0},
	}
	for _, c := range cases {
		if got := c.tier.Multiplier(); got != c.want {
			t.Errorf("Tier %q multiplier = %v, want %v", c.tier, got, c.want)
		}
	}
}

func TestMarshalParseRoundTrip(t *testing.T) {
	p := DefaultProfile()
	p.Claims.BaseReward = 42.5
	p.Beacons.Nova.RefillChance = 0.12
	p.Stargazing.TelescopeArray = true

	data, err := Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != p {
		t.Errorf("Round trip changed the profile")
	}
}

package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid profile")

// Validate checks the whole profile at the calculation boundary. The engine
// assumes validated input; anything out of range is rejected here with a
// descriptive error instead of producing a silently wrong number.
func (p Profile) Validate() error {
	if err := p.Claims.Validate(); err != nil {
		return err
	}
	if err := p.Beacons.Validate(); err != nil {
		return err
	}
	return p.Stargazing.Validate()
}

// Validate checks the claim-stream parameters.
func (c ClaimsParams) Validate() error {
	if err := checkChance("claims.bonus_roll_chance", c.BonusRollChance); err != nil {
		return err
	}
	if err := checkChance("claims.repeat_chance", c.RepeatChance); err != nil {
		return err
	}
	if err := checkNonNegative("claims.base_reward", c.BaseReward); err != nil {
		return err
	}
	if err := checkNonNegative("claims.cycle_minutes", c.CycleMinutes); err != nil {
		return err
	}
	if err := checkNonNegative("claims.bonus_roll_count", c.BonusRollCount); err != nil {
		return err
	}
	return c.Warp.Validate()
}

// Validate checks the time-warp parameters.
func (w WarpParams) Validate() error {
	if err := checkChance("claims.warp.chance", w.Chance); err != nil {
		return err
	}
	if err := checkChance("claims.warp.double_chance", w.DoubleChance); err != nil {
		return err
	}
	if err := checkChance("claims.warp.triple_chance", w.TripleChance); err != nil {
		return err
	}
	if w.DoubleChance+w.TripleChance > 1 {
		return fmt.Errorf("%w: claims.warp double and triple chances sum to %v, must be <= 1",
			ErrInvalid, w.DoubleChance+w.TripleChance)
	}
	if err := checkNonNegative("claims.warp.window_minutes", w.WindowMinutes); err != nil {
		return err
	}
	return checkNonNegative("claims.warp.speed", w.Speed)
}

// Validate checks the beacon-economy parameters.
func (b BeaconParams) Validate() error {
	if err := checkChance("beacons.free_charge_chance", b.FreeChargeChance); err != nil {
		return err
	}
	if err := checkNonNegative("beacons.surge_minutes_per_hour", b.SurgeMinutesPerHour); err != nil {
		return err
	}
	if b.SurgeMinutesPerHour > 60 {
		return fmt.Errorf("%w: beacons.surge_minutes_per_hour is %v, must be <= 60",
			ErrInvalid, b.SurgeMinutesPerHour)
	}
	if err := checkNonNegative("beacons.surge_speed", b.SurgeSpeed); err != nil {
		return err
	}
	for kind := BeaconKind(0); kind < BeaconKindCount; kind++ {
		if err := b.Get(kind).validate(kind.String()); err != nil {
			return err
		}
	}
	return nil
}

func (c BeaconConfig) validate(name string) error {
	switch c.ChargeTier {
	case "", TierNone, TierBright, TierBrilliant, TierRadiant:
	default:
		return fmt.Errorf("%w: beacons.%s.charge_tier %q is not a known tier",
			ErrInvalid, name, c.ChargeTier)
	}
	checks := []struct {
		field  string
		value  float64
		chance bool
	}{
		{"recharge_seconds", c.RechargeSeconds, false},
		{"bonus_charge_chance", c.BonusChargeChance, true},
		{"refill_chance", c.RefillChance, true},
		{"refill_charges", c.RefillCharges, false},
		{"spark_chance", c.SparkChance, true},
		{"spark_value", c.SparkValue, false},
		{"boost_mult", c.BoostMult, false},
		{"boost_seconds", c.BoostSeconds, false},
	}
	for _, ch := range checks {
		field := fmt.Sprintf("beacons.%s.%s", name, ch.field)
		if ch.chance {
			if err := checkChance(field, ch.value); err != nil {
				return err
			}
		} else if err := checkNonNegative(field, ch.value); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the stargazing parameters.
func (s StargazingParams) Validate() error {
	chances := []struct {
		field string
		value float64
	}{
		{"base_spawn_chance", s.BaseSpawnChance},
		{"supernova_chance", s.SupernovaChance},
		{"double_chance", s.DoubleChance},
		{"triple_chance", s.TripleChance},
		{"supergiant_chance", s.SupergiantChance},
		{"radiant_chance", s.RadiantChance},
		{"auto_collect_chance", s.AutoCollectChance},
	}
	for _, c := range chances {
		if err := checkChance("stargazing."+c.field, c.value); err != nil {
			return err
		}
	}
	if s.DoubleChance+s.TripleChance > 1 {
		return fmt.Errorf("%w: stargazing double and triple chances sum to %v, must be <= 1",
			ErrInvalid, s.DoubleChance+s.TripleChance)
	}
	values := []struct {
		field string
		value float64
	}{
		{"opportunities_per_hour", s.OpportunitiesPerHour},
		{"spawn_rate_mult", s.SpawnRateMult},
		{"supernova_rate_mult", s.SupernovaRateMult},
		{"supergiant_mult", s.SupergiantMult},
		{"radiant_mult", s.RadiantMult},
		{"flat_mult", s.FlatMult},
		{"star_value", s.StarValue},
		{"supernova_value", s.SupernovaValue},
	}
	for _, v := range values {
		if err := checkNonNegative("stargazing."+v.field, v.value); err != nil {
			return err
		}
	}
	return nil
}

func checkChance(field string, value float64) error {
	if !isFinite(value) || value < 0 || value > 1 {
		return fmt.Errorf("%w: %s is %v, must be within [0,1]", ErrInvalid, field, value)
	}
	return nil
}

func checkNonNegative(field string, value float64) error {
	if !isFinite(value) || value < 0 {
		return fmt.Errorf("%w: %s is %v, must not be negative", ErrInvalid, field, value)
	}
	return nil
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

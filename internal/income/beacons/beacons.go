// Package beacons implements the periodic generator economy: beacons
// accrue charges on fixed recharge periods, some redistribute charges to
// the others, a global free-charge chance inflates every activation count,
// and activations yield sparks. The mutual refills form a circular
// dependency resolved by fixed-point iteration.
package beacons

import (
	"fmt"

	"github.com/astralforge/starcalc/internal/config"
	"github.com/astralforge/starcalc/internal/core"
	"github.com/astralforge/starcalc/internal/registry"
)

const (
	id    = "beacons"
	title = "Beacon Economy"
	unit  = "sparks/h"
)

func init() {
	registry.Register(id, New)
}

type stream struct{}

// New creates the beacon-economy stream.
func New() registry.Stream { return stream{} }

func (stream) ID() string    { return id }
func (stream) Title() string { return title }

// Compute prices the beacon economy for one profile.
func (stream) Compute(p config.Profile) (core.Breakdown, error) {
	b := p.Beacons

	var enabled [config.BeaconKindCount]bool
	count := 0
	for kind := config.BeaconKind(0); kind < config.BeaconKindCount; kind++ {
		if b.Get(kind).Enabled {
			enabled[kind] = true
			count++
		}
	}
	if count == 0 {
		return core.Breakdown{Unit: unit}, nil
	}

	// Free charges refresh an activation without consuming it; the same
	// geometric chain as a claim repeat.
	free, err := core.RefreshMultiplier(b.FreeChargeChance)
	if err != nil {
		return core.Breakdown{}, fmt.Errorf("beacons: free charges: %w", err)
	}

	// Base (recharge-only) rates, before and after free-charge inflation.
	var rechargeOnly, base activations
	for kind := config.BeaconKind(0); kind < config.BeaconKindCount; kind++ {
		if !enabled[kind] {
			continue
		}
		cfg := b.Get(kind)
		if cfg.RechargeSeconds <= 0 {
			return core.Breakdown{}, fmt.Errorf("beacons: %s recharge: %w", kind, core.ErrZeroCycle)
		}
		recharge := effectiveRecharge(cfg.RechargeSeconds, b.SurgeMinutesPerHour, b.SurgeSpeed)
		chargeMult := core.ExpectedMultiplier(cfg.BonusChargeChance, cfg.ChargeTier.Multiplier())
		rechargeOnly[kind] = 3600 / recharge * chargeMult
		base[kind] = rechargeOnly[kind] * free
	}

	coef, err := buildCoefficients(b, enabled, count, free)
	if err != nil {
		return core.Breakdown{}, err
	}

	acts, _, err := solve(base, coef, enabled)
	if err != nil {
		return core.Breakdown{}, fmt.Errorf("beacons: economy: %w", err)
	}

	// The aurora amplifier boosts the pulse beacon's spark yield for a
	// fraction of the hour; a multiplicative pass outside the fixed point.
	boost := 1.0
	aurora := b.Get(config.BeaconAurora)
	if enabled[config.BeaconAurora] && enabled[config.BeaconPulse] &&
		aurora.BoostMult > 0 && aurora.BoostSeconds > 0 {
		uptime := core.CapChance(acts[config.BeaconAurora] * aurora.BoostSeconds / 3600)
		boost = core.ExpectedMultiplier(uptime, aurora.BoostMult)
	}

	baseYield := sparkYield(b, rechargeOnly, enabled, 1)
	freeYield := sparkYield(b, base, enabled, 1) - baseYield
	refillYield := sparkYield(b, acts, enabled, 1) - sparkYield(b, base, enabled, 1)
	boostExtra := sparkYield(b, acts, enabled, boost) - sparkYield(b, acts, enabled, 1)

	multipliers := []core.NamedValue{
		{Name: "free charge multiplier", Value: free},
		{Name: "aurora boost", Value: boost},
	}
	for kind := config.BeaconKind(0); kind < config.BeaconKindCount; kind++ {
		if enabled[kind] {
			multipliers = append(multipliers, core.NamedValue{
				Name:  kind.String() + " activations/h",
				Value: acts[kind],
			})
		}
	}

	return core.NewBreakdown(baseYield, freeYield+boostExtra, refillYield, unit, multipliers...), nil
}

// buildCoefficients derives the pairwise refill coefficients: each source
// beacon's expected charges per activation, divided uniformly across the
// other enabled beacons, inflated by the free-charge chain. A coefficient
// reaching 1 breaks the convergence precondition and is rejected.
func buildCoefficients(b config.BeaconParams, enabled [config.BeaconKindCount]bool, count int, free float64) (coefficients, error) {
	var coef coefficients
	if count < 2 {
		return coef, nil
	}
	for src := config.BeaconKind(0); src < config.BeaconKindCount; src++ {
		if !enabled[src] {
			continue
		}
		cfg := b.Get(src)
		give := cfg.RefillChance * cfg.RefillCharges
		if give == 0 {
			continue
		}
		per := give / float64(count-1) * free
		if per >= 1 {
			return coef, fmt.Errorf("beacons: %s refill coefficient %.3f: %w",
				src, per, core.ErrDivergent)
		}
		for dst := config.BeaconKind(0); dst < config.BeaconKindCount; dst++ {
			if enabled[dst] && dst != src {
				coef[src][dst] = per
			}
		}
	}
	return coef, nil
}

// sparkYield sums the spark value of the given activation vector, applying
// the amplifier boost to the pulse beacon.
func sparkYield(b config.BeaconParams, acts activations, enabled [config.BeaconKindCount]bool, pulseBoost float64) float64 {
	total := 0.0
	for kind := config.BeaconKind(0); kind < config.BeaconKindCount; kind++ {
		if !enabled[kind] {
			continue
		}
		cfg := b.Get(kind)
		yield := acts[kind] * cfg.SparkChance * cfg.SparkValue
		if kind == config.BeaconPulse {
			yield *= pulseBoost
		}
		total += yield
	}
	return total
}

package beacons

import (
	"math"

	"github.com/astralforge/starcalc/internal/config"
	"github.com/astralforge/starcalc/internal/core"
)

// Fixed-point iteration bounds. The tolerance is the L1 change across all
// beacons in activations/hour; the cap bounds every calculation regardless
// of input.
const (
	tolerance     = 0.01
	maxIterations = 100
)

// activations is the iteration vector: expected activations per hour for
// each beacon kind. Created per calculation, discarded after convergence.
type activations [config.BeaconKindCount]float64

// coefficients holds the expected charges sent from one beacon's activation
// to one specific other beacon. Convergence of the fixed point is
// guaranteed when every entry is strictly below 1; buildCoefficients
// rejects anything else.
type coefficients [config.BeaconKindCount][config.BeaconKindCount]float64

// solve runs the fixed-point iteration: every beacon's total is its base
// rate plus the refill contributions from the other beacons' current
// totals. Returns the converged vector and the iterations used, or
// ErrNoConvergence when the cap is hit first.
func solve(base activations, coef coefficients, enabled [config.BeaconKindCount]bool) (activations, int, error) {
	acts := base
	for iter := 1; iter <= maxIterations; iter++ {
		var next activations
		delta := 0.0
		for dst := range next {
			if !enabled[dst] {
				continue
			}
			total := base[dst]
			for src := range acts {
				if enabled[src] {
					total += coef[src][dst] * acts[src]
				}
			}
			next[dst] = total
			delta += math.Abs(total - acts[dst])
		}
		acts = next
		if delta < tolerance {
			return acts, iter, nil
		}
	}
	return acts, maxIterations, core.ErrNoConvergence
}

// effectiveRecharge applies surge windows as a time-weighted average: for
// the surged fraction of the hour the recharge runs at surgeSpeed.
func effectiveRecharge(seconds, surgeMinutesPerHour, surgeSpeed float64) float64 {
	if surgeMinutesPerHour <= 0 || surgeSpeed <= 1 {
		return seconds
	}
	frac := surgeMinutesPerHour / 60
	return seconds * (frac/surgeSpeed + (1 - frac))
}

// Package core provides the probability algebra and convergence primitives
// shared by all income streams. It contains no external dependencies
// (especially no UI code) to keep the calculation logic pure and testable.
package core

// splitEpsilon is the slack allowed when exclusive chances sum to
// marginally more than 1 due to floating-point accumulation.
const splitEpsilon = 1e-9

// ExpectedMultiplier returns the expected scale factor of an effect that
// fires with the given chance and multiplies its target by mult when it
// does: 1 + chance*(mult-1). With chance 0 the result is exactly 1, with
// chance 1 it is exactly mult.
func ExpectedMultiplier(chance, mult float64) float64 {
	return 1 + chance*(mult-1)
}

// StackMultiplicative combines independent expected multipliers into one.
// The product is order independent, so callers may pass effects in any
// sequence.
func StackMultiplicative(effects ...float64) float64 {
	product := 1.0
	for _, e := range effects {
		product *= e
	}
	return product
}

// ExclusiveSplit takes the chances of mutually exclusive outcomes of a
// single event and returns the residual "none of them" probability.
// Returns ErrBadSplit when the chances sum to more than 1.
func ExclusiveSplit(chances ...float64) (float64, error) {
	sum := 0.0
	for _, c := range chances {
		sum += c
	}
	if sum > 1+splitEpsilon {
		return 0, ErrBadSplit
	}
	residual := 1 - sum
	if residual < 0 {
		residual = 0
	}
	return residual, nil
}

// CapChance clamps a composed chance to the valid probability range.
// Upgrade multipliers can push a base chance past 1; the event then simply
// always fires.
func CapChance(chance float64) float64 {
	if chance < 0 {
		return 0
	}
	if chance > 1 {
		return 1
	}
	return chance
}

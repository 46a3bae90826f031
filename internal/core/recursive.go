package core

// ResolveRecursive resolves the expected value of a reward whose resolution
// can grant more instances of itself. a is the probability-weighted value
// of one resolution's non-recursive outcomes; b is the expected number of
// additional resolutions granted per resolution. The geometric series sums
// to a / (1 - b) for b < 1.
//
// Returns ErrDivergent for b >= 1: the series has infinite expected value
// and no finite number would be meaningful.
func ResolveRecursive(a, b float64) (float64, error) {
	if b >= 1 {
		return 0, ErrDivergent
	}
	return a / (1 - b), nil
}

// RefreshMultiplier returns the expected number of resolutions obtained per
// initial trigger when each resolution has the given chance to immediately
// refresh itself: 1 / (1 - chance).
func RefreshMultiplier(chance float64) (float64, error) {
	return ResolveRecursive(1, chance)
}

package core

import "errors"

// Sentinel errors reported by the calculation engine. Streams wrap these
// with category context; callers match them with errors.Is.
var (
	// ErrDivergent is reported when a recursive reward's branching
	// coefficient is >= 1, so the geometric series has no finite sum.
	// The engine never substitutes a capped value for a divergent series.
	ErrDivergent = errors.New("core: recursive reward does not converge (branch coefficient >= 1)")

	// ErrNoConvergence is reported when a fixed-point iteration hits its
	// iteration cap before reaching tolerance.
	ErrNoConvergence = errors.New("core: fixed-point iteration did not converge")

	// ErrZeroCycle is reported when a cycle or recharge period is not
	// positive, so a per-hour rate cannot be priced.
	ErrZeroCycle = errors.New("core: cycle length must be positive")

	// ErrBadSplit is reported when mutually exclusive outcome chances sum
	// to more than 1.
	ErrBadSplit = errors.New("core: exclusive outcome chances sum to more than 1")
)

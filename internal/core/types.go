package core

// Breakdown holds one income category's hourly result, decomposed for
// attribution display. Total is always Base + Bonus + Refresh.
type Breakdown struct {
	Base    float64 // income with every bonus mechanic switched off
	Bonus   float64 // contribution of bonus-branch mechanics
	Refresh float64 // contribution of repeat/refresh mechanics
	Total   float64
	Unit    string // display currency, e.g. "stardust/h"

	// Multipliers are derived scalars the display layer shows directly,
	// e.g. "rolls per claim" or "refresh multiplier".
	Multipliers []NamedValue
}

// NamedValue is a labeled scalar exposed for display.
type NamedValue struct {
	Name  string
	Value float64
}

// NewBreakdown assembles a Breakdown from its parts and fixes up Total.
func NewBreakdown(base, bonus, refresh float64, unit string, multipliers ...NamedValue) Breakdown {
	return Breakdown{
		Base:        base,
		Bonus:       bonus,
		Refresh:     refresh,
		Total:       base + bonus + refresh,
		Unit:        unit,
		Multipliers: multipliers,
	}
}

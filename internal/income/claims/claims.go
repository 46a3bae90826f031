// Package claims implements the expedition-claim income stream: a claim
// fires every cycle and grants stardust rolls, with bonus-roll chances,
// repeat refreshes, and time-warp windows that compress the hour into
// extra claims.
package claims

import (
	"fmt"

	"github.com/astralforge/starcalc/internal/config"
	"github.com/astralforge/starcalc/internal/core"
	"github.com/astralforge/starcalc/internal/registry"
)

const (
	id    = "claims"
	title = "Expedition Claims"
	unit  = "stardust/h"
)

func init() {
	registry.Register(id, New)
}

type stream struct{}

// New creates the claims stream.
func New() registry.Stream { return stream{} }

func (stream) ID() string    { return id }
func (stream) Title() string { return title }

// Compute prices the claim stream for one profile.
func (stream) Compute(p config.Profile) (core.Breakdown, error) {
	c := p.Claims

	if c.CycleMinutes <= 0 {
		return core.Breakdown{}, fmt.Errorf("claims: cycle: %w", core.ErrZeroCycle)
	}
	baseClaims := 60 / c.CycleMinutes

	// Expected rolls per claim: either 1 roll or the bonus count.
	rolls := core.ExpectedMultiplier(c.BonusRollChance, c.BonusRollCount)

	// Repeat chance refreshes the claim immediately; geometric chain.
	refresh, err := core.RefreshMultiplier(c.RepeatChance)
	if err != nil {
		return core.Breakdown{}, fmt.Errorf("claims: repeat chain: %w", err)
	}

	// Warp windows granted per claim add extra claims per hour.
	windows, err := expectedWindows(c.Warp)
	if err != nil {
		return core.Breakdown{}, fmt.Errorf("claims: warp outcomes: %w", err)
	}
	timeSaved := core.TimeSavedMinutes(baseClaims, windows, c.Warp.WindowMinutes, c.Warp.Speed)
	warpClaims, err := core.BonusOpportunities(c.CycleMinutes, timeSaved)
	if err != nil {
		return core.Breakdown{}, fmt.Errorf("claims: warp windows: %w", err)
	}

	// Warp-earned claims grant warp windows of their own, so the bonus
	// compounds through the same geometric chain.
	totalClaims, err := core.ResolveRecursive(baseClaims, warpClaims/baseClaims)
	if err != nil {
		return core.Breakdown{}, fmt.Errorf("claims: warp chain: %w", err)
	}

	base := baseClaims * c.BaseReward
	withRolls := totalClaims * c.BaseReward * rolls
	full := withRolls * refresh

	return core.NewBreakdown(
		base,
		withRolls-base,
		full-withRolls,
		unit,
		core.NamedValue{Name: "rolls per claim", Value: rolls},
		core.NamedValue{Name: "refresh multiplier", Value: refresh},
		core.NamedValue{Name: "warp bonus claims/h", Value: totalClaims - baseClaims},
	), nil
}

// expectedWindows returns the expected warp windows granted per claim,
// accounting for the double and triple window outcomes.
func expectedWindows(w config.WarpParams) (float64, error) {
	single, err := core.ExclusiveSplit(w.DoubleChance, w.TripleChance)
	if err != nil {
		return 0, err
	}
	count := single*1 + w.DoubleChance*2 + w.TripleChance*3
	return w.Chance * count, nil
}

// Package stargazing implements the star-spawn income stream: per spawn
// opportunity either a supernova (rare, exclusive) or ordinary stars
// appear, every spawned unit can independently receive multiplier effects,
// and a fraction of the yield is collected automatically.
package stargazing

import (
	"fmt"

	"github.com/astralforge/starcalc/internal/config"
	"github.com/astralforge/starcalc/internal/core"
	"github.com/astralforge/starcalc/internal/registry"
)

const (
	id    = "stargazing"
	title = "Stargazing"
	unit  = "stardust/h"
)

// Auto-collection coverage constants. The telescope array skill widens the
// collected area; this is a configuration gate, not a probability.
const (
	autoCoverageBase      = 0.25
	autoCoverageTelescope = 0.60
)

func init() {
	registry.Register(id, New)
}

type stream struct{}

// New creates the stargazing stream.
func New() registry.Stream { return stream{} }

func (stream) ID() string    { return id }
func (stream) Title() string { return title }

// Compute prices the stargazing stream for one profile.
func (stream) Compute(p config.Profile) (core.Breakdown, error) {
	s := p.Stargazing

	// Spawns per hour: the composed spawn chance is capped at 1.
	spawnChance := core.CapChance(s.BaseSpawnChance * s.SpawnRateMult)
	spawns := s.OpportunitiesPerHour * spawnChance
	if spawns == 0 {
		return core.Breakdown{Unit: unit}, nil
	}

	// Exclusive outcome per spawn: supernova or ordinary stars.
	special := core.CapChance(s.SupernovaChance * s.SupernovaRateMult)
	ordinary := 1 - special

	// Ordinary spawns split into single/double/triple star variants.
	single, err := core.ExclusiveSplit(s.DoubleChance, s.TripleChance)
	if err != nil {
		return core.Breakdown{}, fmt.Errorf("stargazing: star variants: %w", err)
	}
	starsPerSpawn := single + 2*s.DoubleChance + 3*s.TripleChance

	// Every spawned unit can independently become supergiant or radiant;
	// the expectations stack multiplicatively under the flat multiplier.
	unitMult := core.StackMultiplicative(
		core.ExpectedMultiplier(s.SupergiantChance, s.SupergiantMult),
		core.ExpectedMultiplier(s.RadiantChance, s.RadiantMult),
	) * s.FlatMult

	supernovae := spawns * special
	stars := spawns * ordinary * starsPerSpawn
	total := stars*s.StarValue*unitMult + supernovae*s.SupernovaValue*unitMult

	// Base: every spawn an ordinary single star with no unit effects.
	base := spawns * s.StarValue * s.FlatMult

	coverage := autoCoverageBase
	if s.TelescopeArray {
		coverage = autoCoverageTelescope
	}
	autoCollected := total * coverage * s.AutoCollectChance

	return core.NewBreakdown(
		base,
		total-base,
		0,
		unit,
		core.NamedValue{Name: "spawns/h", Value: spawns},
		core.NamedValue{Name: "supernovae/h", Value: supernovae},
		core.NamedValue{Name: "ordinary spawns/h", Value: spawns * ordinary},
		core.NamedValue{Name: "stars/h", Value: stars},
		core.NamedValue{Name: "unit multiplier", Value: unitMult},
		core.NamedValue{Name: "auto-collected/h", Value: autoCollected},
	), nil
}

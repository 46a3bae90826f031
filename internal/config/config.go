// Package config provides YAML-based player profile loading and validation
// for the starcalc engine.
package config

// Profile is the full upgrade configuration for one calculation. It is
// built once per calculation request and never mutated by the engine;
// every income stream receives it by value.
type Profile struct {
	Claims     ClaimsParams     `yaml:"claims"`
	Beacons    BeaconParams     `yaml:"beacons"`
	Stargazing StargazingParams `yaml:"stargazing"`
}

// ClaimsParams configures the expedition-claim income stream.
type ClaimsParams struct {
	BaseReward      float64    `yaml:"base_reward"`       // stardust per roll
	CycleMinutes    float64    `yaml:"cycle_minutes"`     // minutes between claims
	BonusRollChance float64    `yaml:"bonus_roll_chance"` // chance a claim grants extra rolls
	BonusRollCount  float64    `yaml:"bonus_roll_count"`  // rolls granted when the bonus fires
	RepeatChance    float64    `yaml:"repeat_chance"`     // chance a claim immediately refreshes
	Warp            WarpParams `yaml:"warp"`
}

// WarpParams configures the time-warp windows claims can grant.
type WarpParams struct {
	Chance        float64 `yaml:"chance"`         // chance a claim grants warp windows
	DoubleChance  float64 `yaml:"double_chance"`  // 2 windows instead of 1
	TripleChance  float64 `yaml:"triple_chance"`  // 3 windows instead of 1
	WindowMinutes float64 `yaml:"window_minutes"` // game-minutes per window
	Speed         float64 `yaml:"speed"`          // game speed inside a window, e.g. 2
}

// BeaconKind identifies one of the fixed generator types of the beacon
// economy. The set is closed: unknown beacons cannot be configured.
type BeaconKind int

const (
	BeaconPulse BeaconKind = iota
	BeaconNova
	BeaconComet
	BeaconAurora

	// BeaconKindCount is the number of beacon kinds, usable as an array
	// length for per-kind vectors.
	BeaconKindCount
)

// String returns the beacon's display name.
func (k BeaconKind) String() string {
	switch k {
	case BeaconPulse:
		return "pulse"
	case BeaconNova:
		return "nova"
	case BeaconComet:
		return "comet"
	case BeaconAurora:
		return "aurora"
	}
	return "unknown"
}

// ChargeTier selects the magnitude of a beacon's bonus-charge outcome.
type ChargeTier string

const (
	TierNone      ChargeTier = "none"      // no bonus charges
	TierBright    ChargeTier = "bright"    // 1.5x charges when the bonus fires
	TierBrilliant ChargeTier = "brilliant" // 2x
	TierRadiant   ChargeTier = "radiant"   // 3x
)

// Multiplier returns the charge multiplier applied when the tier's bonus
// outcome fires. Unknown tiers fall back to no bonus.
func (t ChargeTier) Multiplier() float64 {
	switch t {
	case TierBright:
		return 1.5
	case TierBrilliant:
		return 2.0
	case TierRadiant:
		return 3.0
	}
	return 1.0
}

// BeaconParams configures the periodic generator economy.
type BeaconParams struct {
	// FreeChargeChance is the global chance an activation does not consume
	// its charge, inflating every activation count by 1/(1-p).
	FreeChargeChance float64 `yaml:"free_charge_chance"`

	// Surge windows run beacon recharge at SurgeSpeed for
	// SurgeMinutesPerHour minutes of every hour.
	SurgeMinutesPerHour float64 `yaml:"surge_minutes_per_hour"`
	SurgeSpeed          float64 `yaml:"surge_speed"`

	Pulse  BeaconConfig `yaml:"pulse"`
	Nova   BeaconConfig `yaml:"nova"`
	Comet  BeaconConfig `yaml:"comet"`
	Aurora BeaconConfig `yaml:"aurora"`
}

// Get returns the configuration of the given beacon kind.
func (b BeaconParams) Get(k BeaconKind) BeaconConfig {
	switch k {
	case BeaconPulse:
		return b.Pulse
	case BeaconNova:
		return b.Nova
	case BeaconComet:
		return b.Comet
	case BeaconAurora:
		return b.Aurora
	}
	return BeaconConfig{}
}

// BeaconConfig configures a single beacon kind.
type BeaconConfig struct {
	Enabled         bool       `yaml:"enabled"`
	RechargeSeconds float64    `yaml:"recharge_seconds"`
	ChargeTier      ChargeTier `yaml:"charge_tier"`

	// BonusChargeChance is the chance a recharge yields the tier's bonus
	// charge multiplier instead of a single charge.
	BonusChargeChance float64 `yaml:"bonus_charge_chance"`

	// RefillChance/RefillCharges: per activation, chance to grant the given
	// expected charges, divided uniformly across the other enabled beacons.
	RefillChance  float64 `yaml:"refill_chance"`
	RefillCharges float64 `yaml:"refill_charges"`

	// Spark yield per activation.
	SparkChance float64 `yaml:"spark_chance"`
	SparkValue  float64 `yaml:"spark_value"`

	// Amplifier effect (aurora): each activation boosts the pulse beacon's
	// spark yield by BoostMult for BoostSeconds.
	BoostMult    float64 `yaml:"boost_mult"`
	BoostSeconds float64 `yaml:"boost_seconds"`
}

// StargazingParams configures the star-spawn income stream.
type StargazingParams struct {
	OpportunitiesPerHour float64 `yaml:"opportunities_per_hour"`
	BaseSpawnChance      float64 `yaml:"base_spawn_chance"`
	SpawnRateMult        float64 `yaml:"spawn_rate_mult"`

	// Supernova is the exclusive rare branch: at most one special outcome
	// per opportunity.
	SupernovaChance   float64 `yaml:"supernova_chance"`
	SupernovaRateMult float64 `yaml:"supernova_rate_mult"`

	// Ordinary spawns split into single/double/triple variants.
	DoubleChance float64 `yaml:"double_chance"`
	TripleChance float64 `yaml:"triple_chance"`

	// Per-unit multiplier effects, independent per spawned unit.
	SupergiantChance float64 `yaml:"supergiant_chance"`
	SupergiantMult   float64 `yaml:"supergiant_mult"`
	RadiantChance    float64 `yaml:"radiant_chance"`
	RadiantMult      float64 `yaml:"radiant_mult"`
	FlatMult         float64 `yaml:"flat_mult"`

	StarValue      float64 `yaml:"star_value"`
	SupernovaValue float64 `yaml:"supernova_value"`

	// Auto-collection: fraction collected while idle. The telescope array
	// skill raises the coverage constant from 0.25 to 0.60.
	AutoCollectChance float64 `yaml:"auto_collect_chance"`
	TelescopeArray    bool    `yaml:"telescope_array"`
}

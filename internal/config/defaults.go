package config

import (
	_ "embed"
)

//go:embed defaults/profile.yaml
var defaultProfileYAML []byte

// DefaultProfile returns the built-in example profile: a mid-game save with
// every mechanic unlocked at modest upgrade levels.
func DefaultProfile() Profile {
	return Profile{
		Claims: ClaimsParams{
			BaseReward:      9.0,
			CycleMinutes:    7,
			BonusRollChance: 0.05,
			BonusRollCount:  5,
			RepeatChance:    0.05,
			Warp: WarpParams{
				Chance:        0.10,
				DoubleChance:  0.10,
				TripleChance:  0.05,
				WindowMinutes: 5,
				Speed:         2,
			},
		},
		Beacons: BeaconParams{
			FreeChargeChance:    0.05,
			SurgeMinutesPerHour: 0,
			SurgeSpeed:          2,
			Pulse: BeaconConfig{
				Enabled:           true,
				RechargeSeconds:   600,
				ChargeTier:        TierBright,
				BonusChargeChance: 0.25,
				SparkChance:       0.5,
				SparkValue:        1,
			},
			Nova: BeaconConfig{
				Enabled:           true,
				RechargeSeconds:   1800,
				ChargeTier:        TierBrilliant,
				BonusChargeChance: 0.15,
				RefillChance:      0.30,
				RefillCharges:     1,
				SparkChance:       0.25,
				SparkValue:        2,
			},
			Comet: BeaconConfig{
				Enabled:           true,
				RechargeSeconds:   900,
				ChargeTier:        TierNone,
				RefillChance:      0.15,
				RefillCharges:     1,
				SparkChance:       0.4,
				SparkValue:        1,
			},
			Aurora: BeaconConfig{
				Enabled:         true,
				RechargeSeconds: 2400,
				ChargeTier:      TierNone,
				BoostMult:       2,
				BoostSeconds:    60,
			},
		},
		Stargazing: StargazingParams{
			OpportunitiesPerHour: 240,
			BaseSpawnChance:      0.5,
			SpawnRateMult:        1.2,
			SupernovaChance:      0.01,
			SupernovaRateMult:    1.5,
			DoubleChance:         0.10,
			TripleChance:         0.02,
			SupergiantChance:     0.02,
			SupergiantMult:       10,
			RadiantChance:        0.05,
			RadiantMult:          3,
			FlatMult:             1,
			StarValue:            1,
			SupernovaValue:       25,
			AutoCollectChance:    0.8,
			TelescopeArray:       false,
		},
	}
}

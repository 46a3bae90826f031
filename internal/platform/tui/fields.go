package tui

import (
	"fmt"
	"strconv"

	"github.com/astralforge/starcalc/internal/config"
)

// fieldKind selects how a profile field is displayed and edited.
type fieldKind int

const (
	fieldFloat fieldKind = iota // free-form numeric entry
	fieldBool                   // toggled in place
	fieldTier                   // cycled through the charge tiers
)

// field binds one editable profile parameter to the dashboard.
// Floats open a text input; bools and tiers change on the edit key.
type field struct {
	section string
	label   string
	kind    fieldKind
	get     func(p *config.Profile) string
	set     func(p *config.Profile, raw string) error
	toggle  func(p *config.Profile)
}

// floatField builds an editable numeric field around a pointer accessor.
func floatField(section, label string, ptr func(p *config.Profile) *float64) field {
	return field{
		section: section,
		label:   label,
		kind:    fieldFloat,
		get: func(p *config.Profile) string {
			return strconv.FormatFloat(*ptr(p), 'g', -1, 64)
		},
		set: func(p *config.Profile, raw string) error {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("not a number: %q", raw)
			}
			*ptr(p) = v
			return nil
		},
	}
}

// boolField builds a toggle field around a pointer accessor.
func boolField(section, label string, ptr func(p *config.Profile) *bool) field {
	return field{
		section: section,
		label:   label,
		kind:    fieldBool,
		get: func(p *config.Profile) string {
			if *ptr(p) {
				return "on"
			}
			return "off"
		},
		toggle: func(p *config.Profile) {
			*ptr(p) = !*ptr(p)
		},
	}
}

// tierField builds a field that cycles through the charge tiers.
func tierField(section, label string, ptr func(p *config.Profile) *config.ChargeTier) field {
	order := []config.ChargeTier{
		config.TierNone,
		config.TierBright,
		config.TierBrilliant,
		config.TierRadiant,
	}
	return field{
		section: section,
		label:   label,
		kind:    fieldTier,
		get: func(p *config.Profile) string {
			return string(*ptr(p))
		},
		toggle: func(p *config.Profile) {
			cur := *ptr(p)
			for i, t := range order {
				if t == cur {
					*ptr(p) = order[(i+1)%len(order)]
					return
				}
			}
			*ptr(p) = order[0]
		},
	}
}

// beaconFields lists the editable parameters of one beacon kind.
func beaconFields(section string, cfg func(p *config.Profile) *config.BeaconConfig) []field {
	return []field{
		boolField(section, "enabled", func(p *config.Profile) *bool { return &cfg(p).Enabled }),
		floatField(section, "recharge seconds", func(p *config.Profile) *float64 { return &cfg(p).RechargeSeconds }),
		tierField(section, "charge tier", func(p *config.Profile) *config.ChargeTier { return &cfg(p).ChargeTier }),
		floatField(section, "bonus charge chance", func(p *config.Profile) *float64 { return &cfg(p).BonusChargeChance }),
		floatField(section, "refill chance", func(p *config.Profile) *float64 { return &cfg(p).RefillChance }),
		floatField(section, "refill charges", func(p *config.Profile) *float64 { return &cfg(p).RefillCharges }),
		floatField(section, "spark chance", func(p *config.Profile) *float64 { return &cfg(p).SparkChance }),
		floatField(section, "spark value", func(p *config.Profile) *float64 { return &cfg(p).SparkValue }),
		floatField(section, "boost mult", func(p *config.Profile) *float64 { return &cfg(p).BoostMult }),
		floatField(section, "boost seconds", func(p *config.Profile) *float64 { return &cfg(p).BoostSeconds }),
	}
}

// buildFields flattens the whole profile into the editor's field list,
// grouped by section in display order.
func buildFields() []field {
	var fields []field

	fields = append(fields,
		floatField("Claims", "base reward", func(p *config.Profile) *float64 { return &p.Claims.BaseReward }),
		floatField("Claims", "cycle minutes", func(p *config.Profile) *float64 { return &p.Claims.CycleMinutes }),
		floatField("Claims", "bonus roll chance", func(p *config.Profile) *float64 { return &p.Claims.BonusRollChance }),
		floatField("Claims", "bonus roll count", func(p *config.Profile) *float64 { return &p.Claims.BonusRollCount }),
		floatField("Claims", "repeat chance", func(p *config.Profile) *float64 { return &p.Claims.RepeatChance }),
		floatField("Warp", "warp chance", func(p *config.Profile) *float64 { return &p.Claims.Warp.Chance }),
		floatField("Warp", "double window chance", func(p *config.Profile) *float64 { return &p.Claims.Warp.DoubleChance }),
		floatField("Warp", "triple window chance", func(p *config.Profile) *float64 { return &p.Claims.Warp.TripleChance }),
		floatField("Warp", "window minutes", func(p *config.Profile) *float64 { return &p.Claims.Warp.WindowMinutes }),
		floatField("Warp", "warp speed", func(p *config.Profile) *float64 { return &p.Claims.Warp.Speed }),
	)

	fields = append(fields,
		floatField("Beacons", "free charge chance", func(p *config.Profile) *float64 { return &p.Beacons.FreeChargeChance }),
		floatField("Beacons", "surge minutes/h", func(p *config.Profile) *float64 { return &p.Beacons.SurgeMinutesPerHour }),
		floatField("Beacons", "surge speed", func(p *config.Profile) *float64 { return &p.Beacons.SurgeSpeed }),
	)
	fields = append(fields, beaconFields("Pulse Beacon", func(p *config.Profile) *config.BeaconConfig { return &p.Beacons.Pulse })...)
	fields = append(fields, beaconFields("Nova Beacon", func(p *config.Profile) *config.BeaconConfig { return &p.Beacons.Nova })...)
	fields = append(fields, beaconFields("Comet Beacon", func(p *config.Profile) *config.BeaconConfig { return &p.Beacons.Comet })...)
	fields = append(fields, beaconFields("Aurora Beacon", func(p *config.Profile) *config.BeaconConfig { return &p.Beacons.Aurora })...)

	fields = append(fields,
		floatField("Stargazing", "opportunities/h", func(p *config.Profile) *float64 { return &p.Stargazing.OpportunitiesPerHour }),
		floatField("Stargazing", "base spawn chance", func(p *config.Profile) *float64 { return &p.Stargazing.BaseSpawnChance }),
		floatField("Stargazing", "spawn rate mult", func(p *config.Profile) *float64 { return &p.Stargazing.SpawnRateMult }),
		floatField("Stargazing", "supernova chance", func(p *config.Profile) *float64 { return &p.Stargazing.SupernovaChance }),
		floatField("Stargazing", "supernova rate mult", func(p *config.Profile) *float64 { return &p.Stargazing.SupernovaRateMult }),
		floatField("Stargazing", "double star chance", func(p *config.Profile) *float64 { return &p.Stargazing.DoubleChance }),
		floatField("Stargazing", "triple star chance", func(p *config.Profile) *float64 { return &p.Stargazing.TripleChance }),
		floatField("Stargazing", "supergiant chance", func(p *config.Profile) *float64 { return &p.Stargazing.SupergiantChance }),
		floatField("Stargazing", "supergiant mult", func(p *config.Profile) *float64 { return &p.Stargazing.SupergiantMult }),
		floatField("Stargazing", "radiant chance", func(p *config.Profile) *float64 { return &p.Stargazing.RadiantChance }),
		floatField("Stargazing", "radiant mult", func(p *config.Profile) *float64 { return &p.Stargazing.RadiantMult }),
		floatField("Stargazing", "flat mult", func(p *config.Profile) *float64 { return &p.Stargazing.FlatMult }),
		floatField("Stargazing", "star value", func(p *config.Profile) *float64 { return &p.Stargazing.StarValue }),
		floatField("Stargazing", "supernova value", func(p *config.Profile) *float64 { return &p.Stargazing.SupernovaValue }),
		floatField("Stargazing", "auto-collect chance", func(p *config.Profile) *float64 { return &p.Stargazing.AutoCollectChance }),
		boolField("Stargazing", "telescope array", func(p *config.Profile) *bool { return &p.Stargazing.TelescopeArray }),
	)

	return fields
}

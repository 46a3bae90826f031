package core

// TimeSavedMinutes returns the real minutes saved per hour by time-warp
// windows: each trigger grants an expected number of windows, each window
// runs the game at the given speed for minutesPerWindow game-minutes.
func TimeSavedMinutes(triggersPerHour, windowsPerTrigger, minutesPerWindow, speed float64) float64 {
	if speed <= 0 {
		return 0
	}
	return triggersPerHour * windowsPerTrigger * minutesPerWindow / speed
}

// BonusOpportunities converts saved minutes into extra base-cycle
// opportunities per hour. Compressing timeSavedMinutes out of the hour
// leaves 60-timeSaved real minutes in which the full hour of cycles runs,
// so the effective rate rises above 60/cycleMinutes; the returned value is
// the delta over the uncompressed rate.
//
// Returns ErrZeroCycle for a non-positive cycle and ErrDivergent when the
// warp windows compress the entire hour away.
func BonusOpportunities(cycleMinutes, timeSavedMinutes float64) (float64, error) {
	if cycleMinutes <= 0 {
		return 0, ErrZeroCycle
	}
	if timeSavedMinutes <= 0 {
		return 0, nil
	}
	effectiveMinutes := 60 - timeSavedMinutes
	if effectiveMinutes <= 0 {
		return 0, ErrDivergent
	}
	baseRate := 60 / cycleMinutes
	compressedRate := 60 / (cycleMinutes * effectiveMinutes / 60)
	return compressedRate - baseRate, nil
}

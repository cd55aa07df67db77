package model

import (
	"math"
	"time"
)

// minToLose guards division by zero and inverted goals in PercentLost.
const minToLose = 0.1

// CurrentDay is the 1-indexed plan day for the given local date. Dates
// before the start date clamp to 1, never zero or negative.
func CurrentDay(profile UserProfile, today string) int {
	start, err := time.Parse(DateLayout, profile.StartDate)
	if err != nil {
		return 1
	}
	now, err := time.Parse(DateLayout, today)
	if err != nil {
		return 1
	}
	days := int(math.Floor(now.Sub(start).Hours() / 24))
	if days < 0 {
		return 1
	}
	return days + 1
}

// PercentLost is the share of the weight-loss target achieved so far,
// clamped to [0,100]. Weight gain never counts as negative progress.
func PercentLost(history []WeightRecord, profile UserProfile) float64 {
	current := 0.0
	if len(history) > 0 {
		current = history[len(history)-1].Weight
	}
	totalToLose := math.Max(profile.InitialWeight-profile.TargetWeight, minToLose)
	lostSoFar := math.Max(profile.InitialWeight-current, 0)
	pct := lostSoFar / totalToLose * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

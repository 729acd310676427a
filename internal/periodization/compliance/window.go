package compliance

import "time"

// Window compares planned vs. actual weekly volume for one week of a plan.
type Window struct {
	WeekStart   time.Time `json:"weekStart"`
	TargetHours float64   `json:"targetHours"`
	TargetTSS   float64   `json:"targetTss"`
	ActualHours float64   `json:"actualHours"`
	ActualTSS   float64   `json:"actualTss"`
}

// Percent is actual over target TSS, with hours as the fallback measure when
// no TSS target is set. The second return reports whether any target exists
// at all; a week without one is "no target", not 0% compliance.
func (w Window) Percent() (float64, bool) {
	if w.TargetTSS > 0 {
		return w.ActualTSS / w.TargetTSS, true
	}
	if w.TargetHours > 0 {
		return w.ActualHours / w.TargetHours, true
	}
	return 0, false
}

// WeekCompliance is the derived view of a single week.
type WeekCompliance struct {
	WeekStart time.Time `json:"weekStart"`
	Percent   float64   `json:"percent"`
	HasTarget bool      `json:"hasTarget"`
	Low       bool      `json:"low"`
}

// Summary aggregates the recent weeks for the evaluators.
type Summary struct {
	CurrentPercent      float64          `json:"currentPercent"`
	CurrentHasTarget    bool             `json:"currentHasTarget"`
	ConsecutiveLowWeeks int              `json:"consecutiveLowWeeks"`
	AveragePercent      float64          `json:"averagePercent"`
	RecentWeeks         []WeekCompliance `json:"recentWeeks"`
}

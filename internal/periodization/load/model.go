package load

import "time"

// DailyTrainingRecord is one day of training stress, as reported by the
// training log. Past days are append-only and never edited.
type DailyTrainingRecord struct {
	Date            time.Time `json:"date"`
	ActualTSS       *float64  `json:"actualTss,omitempty"`
	PlannedTSS      *float64  `json:"plannedTss,omitempty"`
	DurationMinutes int       `json:"durationMinutes"`
}

// TSS returns the stress value used for load computation:
// actual if present, else planned, else 0.
func (r DailyTrainingRecord) TSS() float64 {
	if r.ActualTSS != nil {
		return *r.ActualTSS
	}
	if r.PlannedTSS != nil {
		return *r.PlannedTSS
	}
	return 0
}

// Snapshot holds the derived load metrics for a single day. It is recomputed
// from the daily record history on every evaluation, never stored back.
type Snapshot struct {
	Date        time.Time `json:"date"`
	CTL         float64   `json:"ctl"`
	ATL         float64   `json:"atl"`
	TSB         float64   `json:"tsb"`
	ACWR        float64   `json:"acwr"`
	ACWRDefined bool      `json:"acwrDefined"`
	WeeklyLoad  float64   `json:"weeklyLoad"`
	Monotony    float64   `json:"monotony"`
	Strain      float64   `json:"strain"`
}

type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

// RiskBand classifies an ACWR value. It feeds the deload and week evaluators,
// it is never a hard error.
type RiskBand string

const (
	RiskOptimal  RiskBand = "optimal"
	RiskCaution  RiskBand = "caution"
	RiskHigh     RiskBand = "high_risk"
	RiskUnknown  RiskBand = "unknown"
)

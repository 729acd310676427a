package readiness

import "time"

// Assessment is one day of subjective and physiological readiness inputs.
// There is at most one per user per day, upserted by date.
type Assessment struct {
	Date         time.Time `json:"date"`
	Subjective   float64   `json:"subjectiveReadiness"` // 1-10
	SleepQuality *float64  `json:"sleepQuality,omitempty"`
	SleepHours   *float64  `json:"sleepHours,omitempty"`
	HRV          *float64  `json:"hrvReading,omitempty"`
	RestingHR    *float64  `json:"restingHr,omitempty"`
	Soreness     *float64  `json:"soreness,omitempty"` // 1-10, higher is worse
}

// Day normalizes the assessment's timestamp to its UTC calendar day. Two
// assessments logged at different hours of the same day share a Day, which is
// what makes the second one replace the first on write.
func (a Assessment) Day() time.Time {
	t := a.Date.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DailyScore is the derived composite readiness for a day, on a 0-100 scale.
type DailyScore struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
}

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

type Intensity string

const (
	IntensityReduce   Intensity = "reduce"
	IntensityMaintain Intensity = "maintain"
	IntensityPush     Intensity = "push"
)

// Summary is what the evaluators consume: the latest composite score plus the
// aggregates the decision rules are written against.
type Summary struct {
	Score                    float64   `json:"score"`
	SevenDayAvg              float64   `json:"sevenDayAvg"`
	Trend                    Trend     `json:"trend"`
	ConsecutiveDecliningDays int       `json:"consecutiveDecliningDays"`
	RecommendedIntensity     Intensity `json:"recommendedIntensity"`
	AssessmentCount          int       `json:"assessmentCount"`
}

package readiness

import (
	"sort"
	"time"

	"github.com/trainforge/periodizer/internal/config"
)

// Tracker turns daily readiness assessments into composite scores,
// trends and an intensity recommendation.
type Tracker struct {
	cfg config.ReadinessConfig
}

func NewTracker(cfg config.ReadinessConfig) *Tracker {
	return &Tracker{cfg: cfg}
}

// Composite blends the available inputs into a 0-100 score. Each missing
// input is left out and the remaining weights are renormalized, missing data
// is not a penalty.
func (t *Tracker) Composite(a Assessment, hrvBaseline float64) float64 {
	var weighted, weightSum float64

	// subjective 1-10 maps onto 0-100
	weighted += t.cfg.SubjectiveWeight * clamp(a.Subjective*10, 0, 100)
	weightSum += t.cfg.SubjectiveWeight

	if a.HRV != nil && hrvBaseline > 0 {
		ratio := *a.HRV / hrvBaseline
		weighted += t.cfg.HRVWeight * clamp(ratio*50+25, 0, 100)
		weightSum += t.cfg.HRVWeight
	}

	if a.SleepHours != nil && t.cfg.SleepTargetHours > 0 {
		ratio := *a.SleepHours / t.cfg.SleepTargetHours
		weighted += t.cfg.SleepWeight * clamp(ratio*100, 0, 100)
		weightSum += t.cfg.SleepWeight
	}

	if a.Soreness != nil {
		inverse := (10 - clamp(*a.Soreness, 1, 10)) / 9 * 100
		weighted += t.cfg.SorenessWeight * inverse
		weightSum += t.cfg.SorenessWeight
	}

	if weightSum == 0 {
		return 0
	}
	return clamp(weighted/weightSum, 0, 100)
}

// Scores computes the composite for each assessment, using a rolling mean of
// the preceding HRV readings as the baseline for the HRV component.
func (t *Tracker) Scores(assessments []Assessment) []DailyScore {
	if len(assessments) == 0 {
		return nil
	}

	sorted := make([]Assessment, len(assessments))
	copy(sorted, assessments)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	scores := make([]DailyScore, 0, len(sorted))
	var priorHRVs []float64
	for _, a := range sorted {
		baseline := rollingMean(priorHRVs, t.cfg.HRVBaselineDays)
		scores = append(scores, DailyScore{
			Date:  a.Date.Truncate(24 * time.Hour),
			Score: t.Composite(a, baseline),
		})
		if a.HRV != nil {
			priorHRVs = append(priorHRVs, *a.HRV)
		}
	}
	return scores
}

// TrendOf classifies the score series. Declining needs at least the
// configured streak of strictly decreasing days; improving needs today to
// clear the 7-day average by the configured margin; with too little history
// everything is stable.
func (t *Tracker) TrendOf(scores []DailyScore) Trend {
	if len(scores) < 2 {
		return TrendStable
	}

	if ConsecutiveDecliningDays(scores) >= t.cfg.DecliningStreakMin {
		return TrendDeclining
	}

	today := scores[len(scores)-1].Score
	if today > SevenDayAvg(scores)+t.cfg.ImprovingMargin {
		return TrendImproving
	}

	return TrendStable
}

func (t *Tracker) RecommendedIntensity(score float64) Intensity {
	switch {
	case score < t.cfg.ReduceBelow:
		return IntensityReduce
	case score > t.cfg.PushAbove:
		return IntensityPush
	default:
		return IntensityMaintain
	}
}

// Summarize produces the aggregate view the evaluators consume.
func (t *Tracker) Summarize(assessments []Assessment) Summary {
	scores := t.Scores(assessments)
	if len(scores) == 0 {
		return Summary{
			Trend:                TrendStable,
			RecommendedIntensity: IntensityMaintain,
		}
	}

	latest := scores[len(scores)-1].Score
	return Summary{
		Score:                    latest,
		SevenDayAvg:              SevenDayAvg(scores),
		Trend:                    t.TrendOf(scores),
		ConsecutiveDecliningDays: ConsecutiveDecliningDays(scores),
		RecommendedIntensity:     t.RecommendedIntensity(latest),
		AssessmentCount:          len(scores),
	}
}

// SevenDayAvg averages the most recent (up to) 7 scores.
func SevenDayAvg(scores []DailyScore) float64 {
	if len(scores) == 0 {
		return 0
	}
	window := scores
	if len(window) > 7 {
		window = window[len(window)-7:]
	}
	var total float64
	for _, s := range window {
		total += s.Score
	}
	return total / float64(len(window))
}

// ConsecutiveDecliningDays counts the strictly-decreasing run ending at the
// most recent score.
func ConsecutiveDecliningDays(scores []DailyScore) int {
	days := 0
	for i := len(scores) - 1; i > 0; i-- {
		if scores[i].Score < scores[i-1].Score {
			days++
		} else {
			break
		}
	}
	return days
}

func rollingMean(values []float64, window int) float64 {
	if len(values) == 0 {
		return 0
	}
	if window > 0 && len(values) > window {
		values = values[len(values)-window:]
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

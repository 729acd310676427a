package load

import (
	"math"
	"sort"
	"time"

	"github.com/trainforge/periodizer/internal/config"
)

// Model computes chronic/acute training load and the derived metrics
// (tsb, acwr, monotony, strain) from a daily training stress series.
type Model struct {
	cfg config.LoadConfig
}

func NewModel(cfg config.LoadConfig) *Model {
	return &Model{cfg: cfg}
}

// Compute returns one snapshot per day, covering every day from the first to
// the last record. Gap days count as zero stress. Records are sorted and
// collapsed by day first, so callers can pass the raw repo output.
func (m *Model) Compute(records []DailyTrainingRecord) []Snapshot {
	if len(records) == 0 {
		return nil
	}

	sorted := make([]DailyTrainingRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	day2tss := make(map[time.Time]float64)
	for _, r := range sorted {
		day := r.Date.Truncate(24 * time.Hour)
		day2tss[day] += r.TSS()
	}

	firstDay := sorted[0].Date.Truncate(24 * time.Hour)
	lastDay := sorted[len(sorted)-1].Date.Truncate(24 * time.Hour)

	var snapshots []Snapshot
	var ctl, atl float64
	var dailyLoads []float64

	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		tss := day2tss[day]

		ctl += (tss - ctl) / m.cfg.CTLDays
		atl += (tss - atl) / m.cfg.ATLDays

		dailyLoads = append(dailyLoads, tss)
		trailing := dailyLoads
		if len(trailing) > 7 {
			trailing = trailing[len(trailing)-7:]
		}

		weekly := sum(trailing)
		monotony := monotonyOf(trailing)

		s := Snapshot{
			Date:       day,
			CTL:        ctl,
			ATL:        atl,
			TSB:        ctl - atl,
			WeeklyLoad: weekly,
			Monotony:   monotony,
			Strain:     weekly * monotony,
		}
		if ctl > 0 {
			s.ACWR = atl / ctl
			s.ACWRDefined = true
		}
		snapshots = append(snapshots, s)
	}

	return snapshots
}

// Latest computes the full series and returns the most recent snapshot.
func (m *Model) Latest(records []DailyTrainingRecord) (Snapshot, bool) {
	snapshots := m.Compute(records)
	if len(snapshots) == 0 {
		return Snapshot{}, false
	}
	return snapshots[len(snapshots)-1], true
}

// CTLTrend compares the mean of the most recent 7 ctl values against the mean
// of the 7 before them. With fewer points than the configured trend window it
// reports a stable trend, there is not enough history to say otherwise.
func (m *Model) CTLTrend(snapshots []Snapshot) Trend {
	return m.trendOf(snapshots, func(s Snapshot) float64 { return s.CTL })
}

func (m *Model) TSBTrend(snapshots []Snapshot) Trend {
	return m.trendOf(snapshots, func(s Snapshot) float64 { return s.TSB })
}

func (m *Model) trendOf(snapshots []Snapshot, metric func(Snapshot) float64) Trend {
	if len(snapshots) < m.cfg.TrendWindowDays {
		return TrendStable
	}

	recent := snapshots[len(snapshots)-7:]
	older := snapshots[len(snapshots)-14 : len(snapshots)-7]

	var recentSum, olderSum float64
	for _, s := range recent {
		recentSum += metric(s)
	}
	for _, s := range older {
		olderSum += metric(s)
	}
	recentMean := recentSum / 7
	olderMean := olderSum / 7

	switch {
	case recentMean > olderMean*m.cfg.TrendRisingRatio:
		return TrendRising
	case recentMean < olderMean*m.cfg.TrendFallingRatio:
		return TrendFalling
	default:
		return TrendStable
	}
}

// ACWRRisk places an acwr value into its risk band.
func (m *Model) ACWRRisk(s Snapshot) RiskBand {
	if !s.ACWRDefined {
		return RiskUnknown
	}
	switch {
	case s.ACWR < m.cfg.ACWRHighRiskLow || s.ACWR > m.cfg.ACWRHighRiskHigh:
		return RiskHigh
	case s.ACWR >= m.cfg.ACWROptimalLow && s.ACWR <= m.cfg.ACWROptimalHigh:
		return RiskOptimal
	default:
		return RiskCaution
	}
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// monotonyOf is mean over population stddev of the trailing window.
// A flat week (stddev 0) yields 0 rather than a division blowup.
func monotonyOf(window []float64) float64 {
	if len(window) == 0 {
		return 0
	}

	mean := sum(window) / float64(len(window))

	var variance float64
	for _, v := range window {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(window))

	stddev := math.Sqrt(variance)
	if stddev == 0 {
		return 0
	}
	return mean / stddev
}

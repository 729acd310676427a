package compliance

import (
	"sort"

	"github.com/trainforge/periodizer/internal/config"
)

type Tracker struct {
	cfg config.ComplyConfig
}

func NewTracker(cfg config.ComplyConfig) *Tracker {
	return &Tracker{cfg: cfg}
}

// Summarize derives per-week compliance and the backward streak of low weeks.
// The streak scan starts at the most recent week and stops at the first week
// that is not low, earlier low weeks stay in RecentWeeks but do not extend
// the streak. Weeks without a target are skipped by the streak scan entirely.
func (t *Tracker) Summarize(windows []Window) Summary {
	if len(windows) == 0 {
		return Summary{}
	}

	sorted := make([]Window, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].WeekStart.Before(sorted[j].WeekStart)
	})

	weeks := make([]WeekCompliance, 0, len(sorted))
	var percentSum float64
	var withTarget int
	for _, w := range sorted {
		percent, hasTarget := w.Percent()
		weeks = append(weeks, WeekCompliance{
			WeekStart: w.WeekStart,
			Percent:   percent,
			HasTarget: hasTarget,
			Low:       hasTarget && percent < t.cfg.LowThreshold,
		})
		if hasTarget {
			percentSum += percent
			withTarget++
		}
	}

	streak := 0
	for i := len(weeks) - 1; i >= 0; i-- {
		if !weeks[i].HasTarget {
			continue
		}
		if !weeks[i].Low {
			break
		}
		streak++
	}

	summary := Summary{
		CurrentPercent:      weeks[len(weeks)-1].Percent,
		CurrentHasTarget:    weeks[len(weeks)-1].HasTarget,
		ConsecutiveLowWeeks: streak,
		RecentWeeks:         weeks,
	}
	if withTarget > 0 {
		summary.AveragePercent = percentSum / float64(withTarget)
	}
	return summary
}

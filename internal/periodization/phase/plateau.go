package phase

import (
	"sort"
	"time"

	"github.com/trainforge/periodizer/internal/config"
)

// DetectPlateaus reports the exercises whose estimated 1RM has stalled: the
// best value over the most recent PlateauWindowWeeks full weeks improved by
// less than PlateauMinGainPct over the best of the window before it. An
// exercise needs at least one observation in each window to qualify,
// otherwise there is not enough history to call it a plateau.
func DetectPlateaus(
	history map[string][]StrengthObservation,
	now time.Time,
	cfg config.DeloadConfig,
) []string {
	windowDays := cfg.PlateauWindowWeeks * 7
	recentStart := now.AddDate(0, 0, -windowDays)
	priorStart := now.AddDate(0, 0, -2*windowDays)

	var plateaued []string
	for exerciseID, observations := range history {
		var recentBest, priorBest float64
		var recentCount, priorCount int
		for _, o := range observations {
			switch {
			case o.Date.After(recentStart) && !o.Date.After(now):
				recentCount++
				if o.Estimated1RM > recentBest {
					recentBest = o.Estimated1RM
				}
			case o.Date.After(priorStart) && !o.Date.After(recentStart):
				priorCount++
				if o.Estimated1RM > priorBest {
					priorBest = o.Estimated1RM
				}
			}
		}

		if recentCount == 0 || priorCount == 0 || priorBest <= 0 {
			continue
		}

		gainPct := (recentBest - priorBest) / priorBest * 100
		if gainPct < cfg.PlateauMinGainPct {
			plateaued = append(plateaued, exerciseID)
		}
	}

	sort.Strings(plateaued)
	return plateaued
}

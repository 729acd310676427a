package phase

import "time"

// StrengthObservation is one estimated-1RM data point for an exercise.
type StrengthObservation struct {
	ExerciseID   string    `json:"exerciseId"`
	Date         time.Time `json:"date"`
	Estimated1RM float64   `json:"estimated1Rm"`
}

// Target is the phase goal for one exercise: lift Target1RM by the end of
// the phase, starting from Start1RM.
type Target struct {
	ExerciseID string  `json:"exerciseId"`
	Start1RM   float64 `json:"start1Rm"`
	Target1RM  float64 `json:"target1Rm"`
}

// Estimated1RM applies the Epley formula to a set.
func Estimated1RM(weightKilos float64, reps int) float64 {
	if reps <= 0 || weightKilos <= 0 {
		return 0
	}
	if reps == 1 {
		return weightKilos
	}
	return weightKilos * (1 + float64(reps)/30)
}

// GoalProgress compares the best recent 1RM against each target and returns
// the average percent of goal achieved, 0-100+ (can exceed 100 when targets
// are beaten). The second return is false when no target has both a valid
// span and at least one observation.
func GoalProgress(history map[string][]StrengthObservation, targets []Target) (float64, bool) {
	var total float64
	var counted int
	for _, target := range targets {
		span := target.Target1RM - target.Start1RM
		if span <= 0 {
			continue
		}
		observations := history[target.ExerciseID]
		if len(observations) == 0 {
			continue
		}
		best := 0.0
		for _, o := range observations {
			if o.Estimated1RM > best {
				best = o.Estimated1RM
			}
		}
		progress := (best - target.Start1RM) / span * 100
		if progress < 0 {
			progress = 0
		}
		total += progress
		counted++
	}
	if counted == 0 {
		return 0, false
	}
	return total / float64(counted), true
}

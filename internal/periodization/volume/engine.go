package volume

import (
	"github.com/trainforge/periodizer/internal/config"
)

// Engine classifies weekly set counts against volume landmarks.
type Engine struct {
	cfg config.VolumeConfig
}

func NewEngine(cfg config.VolumeConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Classify places a weekly set count into its landmark band. Boundaries use
// the inclusive-lower convention: a count exactly at mev is already
// approaching_mev, exactly at mavHigh is still in_mav, exactly at mrv is
// over_mrv. The approach buffer is a fraction of the mev to mavLow span.
func (e *Engine) Classify(sets float64, lm Landmarks) Status {
	buffer := e.cfg.BufferFraction * (lm.MAVLow - lm.MEV)
	if buffer < 0 {
		buffer = 0
	}

	switch {
	case sets < lm.MEV:
		return StatusBelowMEV
	case sets < lm.MEV+buffer:
		return StatusApproachingMEV
	case sets <= lm.MAVHigh:
		return StatusInMAV
	case sets < lm.MRV:
		return StatusApproachingMRV
	default:
		return StatusOverMRV
	}
}

// ClassifyAll classifies every muscle group that has landmarks configured.
// Groups with logged sets but no landmarks are left out, there is nothing to
// compare them against.
func (e *Engine) ClassifyAll(weeklySets map[string]float64, landmarks []Landmarks) []MuscleVolumeStatus {
	statuses := make([]MuscleVolumeStatus, 0, len(landmarks))
	for _, lm := range landmarks {
		sets := weeklySets[lm.MuscleGroup]
		statuses = append(statuses, MuscleVolumeStatus{
			MuscleGroup: lm.MuscleGroup,
			WeeklySets:  sets,
			Status:      e.Classify(sets, lm),
		})
	}
	return statuses
}

// OverMRV lists the muscle groups currently past their recoverable volume.
func OverMRV(statuses []MuscleVolumeStatus) []string {
	var groups []string
	for _, s := range statuses {
		if s.Status == StatusOverMRV {
			groups = append(groups, s.MuscleGroup)
		}
	}
	return groups
}

package volume

// Landmarks are the individualized weekly set-count landmarks for one muscle
// group: minimum effective, maximum adaptive (low/high) and maximum
// recoverable volume. They are long-lived user configuration.
type Landmarks struct {
	MuscleGroup string  `json:"muscleGroup"`
	MEV         float64 `json:"mev"`
	MAVLow      float64 `json:"mavLow"`
	MAVHigh     float64 `json:"mavHigh"`
	MRV         float64 `json:"mrv"`
}

// Scaled applies the training-age multiplier to all four landmarks.
func (l Landmarks) Scaled(multiplier float64) Landmarks {
	if multiplier <= 0 {
		return l
	}
	return Landmarks{
		MuscleGroup: l.MuscleGroup,
		MEV:         l.MEV * multiplier,
		MAVLow:      l.MAVLow * multiplier,
		MAVHigh:     l.MAVHigh * multiplier,
		MRV:         l.MRV * multiplier,
	}
}

type Status string

const (
	StatusBelowMEV       Status = "below_mev"
	StatusApproachingMEV Status = "approaching_mev"
	StatusInMAV          Status = "in_mav"
	StatusApproachingMRV Status = "approaching_mrv"
	StatusOverMRV        Status = "over_mrv"
)

// MuscleVolumeStatus is the weekly classification of one muscle group.
type MuscleVolumeStatus struct {
	MuscleGroup string  `json:"muscleGroup"`
	WeeklySets  float64 `json:"weeklySets"`
	Status      Status  `json:"status"`
}

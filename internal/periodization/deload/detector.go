package deload

import (
	"github.com/trainforge/periodizer/internal/config"
	"github.com/trainforge/periodizer/internal/periodization/readiness"
)

// Inputs is the cross-cutting evidence the detector inspects.
type Inputs struct {
	TSB                 float64
	HasLoadData         bool
	OverMRV             []string
	PlateauedExercises  []string
	ReadinessScores     []readiness.DailyScore
	DaysSinceLastDeload int // -1 when no deload was ever accepted
}

// Proposal is a trigger the detector wants created; identity and persistence
// are the service's business.
type Proposal struct {
	PrimarySignal   Signal
	Signals         []Signal
	Severity        Severity
	RecommendedType Type
	DurationDays    int
}

// Detector is the multi-signal fatigue/plateau detector. Severity escalates
// with the number of independent signals firing at once; the mapping is a
// tunable rubric, not a law of nature.
type Detector struct {
	cfg config.DeloadConfig
}

func NewDetector(cfg config.DeloadConfig) *Detector {
	return &Detector{cfg: cfg}
}

// Detect returns a proposal, or nil when no signal fires. A mild proposal
// right after an accepted deload is suppressed, the fatigue it sees is most
// likely the tail of the one already being dissipated.
func (d *Detector) Detect(in Inputs) *Proposal {
	signals := d.firingSignals(in)
	if len(signals) == 0 {
		return nil
	}

	severity := severityOf(len(signals))

	if severity == SeverityMild &&
		in.DaysSinceLastDeload >= 0 &&
		in.DaysSinceLastDeload < d.cfg.MinDaysBetween {
		return nil
	}

	return &Proposal{
		PrimarySignal:   signals[0],
		Signals:         signals,
		Severity:        severity,
		RecommendedType: d.recommendedType(signals, severity),
		DurationDays:    d.durationDays(severity),
	}
}

func (d *Detector) firingSignals(in Inputs) []Signal {
	var signals []Signal

	if in.HasLoadData && in.TSB < d.cfg.TSBThreshold {
		signals = append(signals, SignalTSBBreach)
	}
	if len(in.OverMRV) > 0 {
		signals = append(signals, SignalMRVBreach)
	}
	if len(in.PlateauedExercises) > 0 {
		signals = append(signals, SignalPlateau)
	}
	if d.lowReadinessRun(in.ReadinessScores) {
		signals = append(signals, SignalLowReadiness)
	}
	if readiness.ConsecutiveDecliningDays(in.ReadinessScores) >= d.cfg.LowReadinessStreak {
		signals = append(signals, SignalDecliningReadiness)
	}

	return signals
}

// lowReadinessRun is true when the most recent streak of scores all sit
// below the low-readiness threshold.
func (d *Detector) lowReadinessRun(scores []readiness.DailyScore) bool {
	if len(scores) < d.cfg.LowReadinessStreak {
		return false
	}
	for _, s := range scores[len(scores)-d.cfg.LowReadinessStreak:] {
		if s.Score >= d.cfg.LowReadinessScore {
			return false
		}
	}
	return true
}

func severityOf(signalCount int) Severity {
	switch {
	case signalCount >= 3:
		return SeveritySevere
	case signalCount == 2:
		return SeverityModerate
	default:
		return SeverityMild
	}
}

func (d *Detector) recommendedType(signals []Signal, severity Severity) Type {
	if severity == SeveritySevere || len(signals) > 2 {
		return TypeFull
	}

	hasLoadSignal := false
	hasReadinessSignal := false
	onlyMRV := true
	onlyIntensityAdjacent := true
	for _, s := range signals {
		switch s {
		case SignalMRVBreach:
			hasLoadSignal = true
			onlyIntensityAdjacent = false
		case SignalTSBBreach, SignalPlateau:
			hasLoadSignal = true
			onlyMRV = false
		case SignalLowReadiness, SignalDecliningReadiness:
			hasReadinessSignal = true
			onlyMRV = false
			onlyIntensityAdjacent = false
		}
	}

	switch {
	case hasReadinessSignal && !hasLoadSignal:
		return TypeActiveRecovery
	case len(signals) >= 2:
		return TypeFull
	case onlyMRV:
		return TypeVolume
	case onlyIntensityAdjacent:
		return TypeIntensity
	default:
		return TypeFull
	}
}

func (d *Detector) durationDays(severity Severity) int {
	switch severity {
	case SeveritySevere:
		return d.cfg.SevereDurationDays
	case SeverityModerate:
		return d.cfg.ModerateDurationDays
	default:
		return d.cfg.MildDurationDays
	}
}

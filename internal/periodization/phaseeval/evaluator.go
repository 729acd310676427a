package phaseeval

import (
	"fmt"
	"time"

	"github.com/trainforge/periodizer/internal/config"
	"github.com/trainforge/periodizer/internal/periodization/phase"
	"github.com/trainforge/periodizer/internal/periodization/readiness"
	"github.com/trainforge/periodizer/internal/periodization/recommendation"
)

// ProgressStatus can be one of:
//   - ahead
//   - on_track
//   - behind
//   - at_risk
type ProgressStatus string

const (
	StatusAhead   ProgressStatus = "ahead"
	StatusOnTrack ProgressStatus = "on_track"
	StatusBehind  ProgressStatus = "behind"
	StatusAtRisk  ProgressStatus = "at_risk"
)

// statusMarginPoints is the dead band around "time elapsed == goal progress"
// inside which a phase counts as on track.
const statusMarginPoints = 10.0

// Inputs carries what the phase rules read. Phase is nil when the plan has no
// phase covering "now", in which case there is nothing to evaluate.
type Inputs struct {
	Phase             *phase.Phase
	GoalProgressPct   float64
	GoalProgressKnown bool
	AvgCompliance     float64
	HasCompliance     bool
	TSB               float64
	HasLoadData       bool
	Readiness         readiness.Summary
	ObservationDays   int
}

// Evaluator decides phase-level actions. It emits at most one recommendation
// per evaluation, with inserting a recovery phase taking precedence over
// extending, and extending over shortening.
type Evaluator struct {
	cfg config.PhaseConfig
}

func NewEvaluator(cfg config.PhaseConfig) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Status classifies phase progress by comparing how much of the phase's time
// has passed against how much of its goal has been reached.
func (e *Evaluator) Status(in Inputs, now time.Time) ProgressStatus {
	if in.Phase == nil || !in.GoalProgressKnown {
		return StatusOnTrack
	}

	elapsed := in.Phase.PercentTimeElapsed(now)
	deficit := elapsed - in.GoalProgressPct

	switch {
	case deficit > statusMarginPoints:
		if in.HasCompliance && in.AvgCompliance < e.cfg.AtRiskComplianceBelow {
			return StatusAtRisk
		}
		return StatusBehind
	case deficit < -statusMarginPoints:
		return StatusAhead
	default:
		return StatusOnTrack
	}
}

func (e *Evaluator) Evaluate(
	userID, planID string,
	in Inputs,
	now time.Time,
) *recommendation.Recommendation {
	if in.Phase == nil {
		return nil
	}

	if rec := e.insertRecovery(userID, planID, in, now); rec != nil {
		return rec
	}

	status := e.Status(in, now)

	if rec := e.extend(userID, planID, status, in, now); rec != nil {
		return rec
	}
	return e.shorten(userID, planID, status, in, now)
}

// insertRecovery fires on acute overreaching: deep negative form plus a bad
// readiness week, in a phase that is itself supposed to be loading.
func (e *Evaluator) insertRecovery(
	userID, planID string,
	in Inputs,
	now time.Time,
) *recommendation.Recommendation {
	if !in.HasLoadData || in.TSB >= e.cfg.InsertTSBBelow {
		return nil
	}
	if in.Readiness.AssessmentCount == 0 || in.Readiness.SevenDayAvg >= e.cfg.InsertReadinessBelow {
		return nil
	}
	if in.Phase.Type == phase.TypeRecovery || in.Phase.Type == phase.TypeTaper {
		return nil
	}

	reason := fmt.Sprintf(
		"tsb at %.0f with 7-day readiness average %.0f, the current %s phase is digging a hole",
		in.TSB, in.Readiness.SevenDayAvg, in.Phase.Type)

	return &recommendation.Recommendation{
		UserID:   userID,
		PlanID:   planID,
		TargetID: in.Phase.ID,
		Kind:     recommendation.KindPhaseInsert,
		Scope:    recommendation.ScopePhase,
		Trigger: recommendation.TriggerData{
			Metric:       "tsb",
			Threshold:    e.cfg.InsertTSBBelow,
			CurrentValue: in.TSB,
			Direction:    "below",
			Signals:      []string{"tsb breach", "low readiness average"},
		},
		Proposed: recommendation.ProposedChanges{
			PhaseInsert: &recommendation.PhaseInsertChanges{
				AfterPhaseID: in.Phase.ID,
				PhaseType:    string(phase.TypeRecovery),
				StartDate:    in.Phase.EndDate,
				DurationDays: e.cfg.InsertRecoveryDays,
				Reason:       reason,
			},
		},
		Reasoning: fmt.Sprintf(
			"Insert a %d-day recovery phase after the current phase: %s.",
			e.cfg.InsertRecoveryDays, reason),
		Confidence: recommendation.Confidence(2, in.ObservationDays),
		Priority:   1,
		Status:     recommendation.StatusPending,
		CreatedAt:  now,
		// time-sensitive, stale acceptance would insert recovery too late
		ExpiresAt: now.AddDate(0, 0, e.cfg.InsertExpiryDays),
	}
}

func (e *Evaluator) extend(
	userID, planID string,
	status ProgressStatus,
	in Inputs,
	now time.Time,
) *recommendation.Recommendation {
	if status != StatusBehind && status != StatusAtRisk {
		return nil
	}
	if in.Phase.DaysRemaining(now) >= e.cfg.ExtensionWindowDays {
		return nil
	}

	elapsed := in.Phase.PercentTimeElapsed(now)
	deficit := elapsed - in.GoalProgressPct
	if deficit <= e.cfg.ExtensionDeficitPoints {
		return nil
	}

	extensionDays := e.extensionDays(in, deficit, now)
	proposedEnd := in.Phase.EndDate.AddDate(0, 0, extensionDays)

	signals := 1
	if status == StatusAtRisk {
		signals = 2
	}
	reason := fmt.Sprintf(
		"goal progress %.0f%% against %.0f%% of phase time elapsed", in.GoalProgressPct, elapsed)

	return &recommendation.Recommendation{
		UserID:   userID,
		PlanID:   planID,
		TargetID: in.Phase.ID,
		Kind:     recommendation.KindPhaseExtension,
		Scope:    recommendation.ScopePhase,
		Trigger: recommendation.TriggerData{
			Metric:       "goal_progress_deficit",
			Threshold:    e.cfg.ExtensionDeficitPoints,
			CurrentValue: deficit,
			Direction:    "above",
		},
		Proposed: recommendation.ProposedChanges{
			PhaseExtension: &recommendation.PhaseExtensionChanges{
				OriginalEndDate: in.Phase.EndDate,
				ProposedEndDate: proposedEnd,
				ExtensionDays:   extensionDays,
				Reason:          reason,
			},
		},
		Reasoning: fmt.Sprintf(
			"Extend the current %s phase by %d days: %s.", in.Phase.Type, extensionDays, reason),
		Confidence: recommendation.Confidence(signals, in.ObservationDays),
		Priority:   2,
		Status:     recommendation.StatusPending,
		CreatedAt:  now,
		ExpiresAt:  now.AddDate(0, 0, 7),
	}
}

// extensionDays estimates how long closing the deficit would take at the
// progress rate observed so far, capped so a stuck phase cannot be extended
// forever.
func (e *Evaluator) extensionDays(in Inputs, deficit float64, now time.Time) int {
	daysElapsed := now.Sub(in.Phase.StartDate).Hours() / 24
	if daysElapsed < 1 {
		daysElapsed = 1
	}
	dailyRate := in.GoalProgressPct / daysElapsed
	if dailyRate <= 0 {
		return e.cfg.ExtensionMaxDays
	}

	days := int(deficit/dailyRate + 0.5)
	if days > e.cfg.ExtensionMaxDays {
		return e.cfg.ExtensionMaxDays
	}
	if days < 1 {
		return 1
	}
	return days
}

func (e *Evaluator) shorten(
	userID, planID string,
	status ProgressStatus,
	in Inputs,
	now time.Time,
) *recommendation.Recommendation {
	if status != StatusAhead {
		return nil
	}
	remaining := in.Phase.DaysRemaining(now)
	if remaining <= e.cfg.ShortenMinRemainingDays {
		return nil
	}
	if in.GoalProgressPct <= e.cfg.ShortenProgressPct {
		return nil
	}

	shortenDays := int(float64(remaining) * e.cfg.ShortenFraction)
	if shortenDays < 1 {
		return nil
	}
	proposedEnd := in.Phase.EndDate.AddDate(0, 0, -shortenDays)

	reason := fmt.Sprintf(
		"goal progress already at %.0f%% with %d days of the phase remaining",
		in.GoalProgressPct, remaining)

	return &recommendation.Recommendation{
		UserID:   userID,
		PlanID:   planID,
		TargetID: in.Phase.ID,
		Kind:     recommendation.KindPhaseShorten,
		Scope:    recommendation.ScopePhase,
		Trigger: recommendation.TriggerData{
			Metric:       "goal_progress_pct",
			Threshold:    e.cfg.ShortenProgressPct,
			CurrentValue: in.GoalProgressPct,
			Direction:    "above",
		},
		Proposed: recommendation.ProposedChanges{
			PhaseShorten: &recommendation.PhaseShortenChanges{
				OriginalEndDate: in.Phase.EndDate,
				ProposedEndDate: proposedEnd,
				ShortenDays:     shortenDays,
				Reason:          reason,
			},
		},
		Reasoning: fmt.Sprintf(
			"Shorten the current %s phase by %d days: %s.", in.Phase.Type, shortenDays, reason),
		Confidence: recommendation.Confidence(1, in.ObservationDays),
		Priority:   4,
		Status:     recommendation.StatusPending,
		CreatedAt:  now,
		ExpiresAt:  now.AddDate(0, 0, 7),
	}
}

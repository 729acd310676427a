package week

import (
	"fmt"
	"time"

	"github.com/trainforge/periodizer/internal/config"
	"github.com/trainforge/periodizer/internal/periodization/compliance"
	"github.com/trainforge/periodizer/internal/periodization/load"
	"github.com/trainforge/periodizer/internal/periodization/phase"
	"github.com/trainforge/periodizer/internal/periodization/readiness"
	"github.com/trainforge/periodizer/internal/periodization/recommendation"
)

// TSBStatus can be one of:
//   - fresh
//   - neutral
//   - fatigued
//   - very_fatigued
//   - unknown (no load history yet)
type TSBStatus string

const (
	TSBStatusFresh        TSBStatus = "fresh"
	TSBStatusNeutral      TSBStatus = "neutral"
	TSBStatusFatigued     TSBStatus = "fatigued"
	TSBStatusVeryFatigued TSBStatus = "very_fatigued"
	TSBStatusUnknown      TSBStatus = "unknown"
)

// Type is the scheduled character of a plan week. The evaluator only ever
// proposes recovery.
type Type string

const (
	TypeStandard Type = "standard"
	TypeRecovery Type = "recovery"
	TypeDeload   Type = "deload"
)

// Inputs carries the already-computed collaborator outputs for the week under
// evaluation. Load is nil when the user has no training history.
type Inputs struct {
	Load            *load.Snapshot
	Readiness       readiness.Summary
	Compliance      compliance.Summary
	CurrentWeekType Type
	WeekStart       time.Time
	UpcomingEvents  []phase.Event
	ObservationDays int
}

// Evaluator decides the week-level actions: switch the week to recovery,
// nudge its volume, or flag a compliance problem. It is a pure state machine
// over Inputs, persistence is the caller's business.
type Evaluator struct {
	cfg config.WeekConfig
}

func NewEvaluator(cfg config.WeekConfig) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Status maps TSB into the freshness bands the transition rules are written
// against.
func (e *Evaluator) Status(snapshot *load.Snapshot) TSBStatus {
	if snapshot == nil {
		return TSBStatusUnknown
	}
	switch {
	case snapshot.TSB > e.cfg.TSBFreshAbove:
		return TSBStatusFresh
	case snapshot.TSB < e.cfg.TSBVeryFatiguedBelow:
		return TSBStatusVeryFatigued
	case snapshot.TSB < e.cfg.TSBFatiguedBelow:
		return TSBStatusFatigued
	default:
		return TSBStatusNeutral
	}
}

// Evaluate emits zero, one or two recommendations: at most one of
// week_type_change / week_volume_adjust, plus an independent compliance_alert.
// Everything week-scope expires at the end of the target week.
func (e *Evaluator) Evaluate(
	userID, planID string,
	in Inputs,
	now time.Time,
) []recommendation.Recommendation {
	var recs []recommendation.Recommendation

	status := e.Status(in.Load)
	weekEnd := in.WeekStart.AddDate(0, 0, 7)

	if rec := e.recoveryOrVolume(userID, planID, status, in, now, weekEnd); rec != nil {
		recs = append(recs, *rec)
	}

	// a low-compliance streak signals a planning problem, not a fatigue
	// problem, so it is raised regardless of what the fatigue rules said
	if in.Compliance.ConsecutiveLowWeeks >= 2 {
		recs = append(recs, e.complianceAlert(userID, planID, in, now, weekEnd))
	}

	return recs
}

func (e *Evaluator) recoveryOrVolume(
	userID, planID string,
	status TSBStatus,
	in Inputs,
	now time.Time,
	weekEnd time.Time,
) *recommendation.Recommendation {
	recoveryReasons := e.recoveryReasons(status, in.Readiness)

	if len(recoveryReasons) > 0 {
		if in.CurrentWeekType == TypeRecovery || in.CurrentWeekType == TypeDeload {
			// the week already is what we would propose
			return nil
		}
		return e.weekTypeChange(userID, planID, status, in, recoveryReasons, now, weekEnd)
	}

	return e.volumeAdjust(userID, planID, status, in, now, weekEnd)
}

// recoveryReasons collects the conditions asking for a recovery week. The
// readiness rules only apply when there are assessments to read, a missing
// diary must not look like a zero score.
func (e *Evaluator) recoveryReasons(status TSBStatus, r readiness.Summary) []string {
	var reasons []string

	if status == TSBStatusVeryFatigued {
		reasons = append(reasons, "tsb deeply negative")
	}
	if status == TSBStatusFatigued && r.Trend == readiness.TrendDeclining {
		reasons = append(reasons, "fatigued with declining readiness")
	}
	if r.AssessmentCount > 0 {
		if r.ConsecutiveDecliningDays >= e.cfg.DecliningDaysForRecovery {
			reasons = append(reasons, fmt.Sprintf(
				"readiness declining for %d consecutive days", r.ConsecutiveDecliningDays))
		}
		if r.SevenDayAvg < e.cfg.LowReadinessAvg && r.Trend != readiness.TrendImproving {
			reasons = append(reasons, fmt.Sprintf(
				"7-day readiness average %.0f below %.0f and not improving",
				r.SevenDayAvg, e.cfg.LowReadinessAvg))
		}
	}

	return reasons
}

func (e *Evaluator) weekTypeChange(
	userID, planID string,
	status TSBStatus,
	in Inputs,
	reasons []string,
	now time.Time,
	weekEnd time.Time,
) *recommendation.Recommendation {
	priority := 2
	if status == TSBStatusVeryFatigued {
		priority = 1
	}

	var tsb float64
	if in.Load != nil {
		tsb = in.Load.TSB
	}

	reasoning := "Recovery week recommended: " + joinReasons(reasons) + "."
	return &recommendation.Recommendation{
		UserID:   userID,
		PlanID:   planID,
		TargetID: in.WeekStart.Format(time.DateOnly),
		Kind:     recommendation.KindWeekTypeChange,
		Scope:    recommendation.ScopeWeek,
		Trigger: recommendation.TriggerData{
			Metric:       "tsb",
			Threshold:    e.cfg.TSBVeryFatiguedBelow,
			CurrentValue: tsb,
			Direction:    "below",
			Signals:      reasons,
		},
		Proposed: recommendation.ProposedChanges{
			WeekTypeChange: &recommendation.WeekTypeChangeChanges{
				ProposedWeekType: string(TypeRecovery),
				Reason:           joinReasons(reasons),
			},
		},
		Reasoning:  reasoning,
		Confidence: recommendation.Confidence(len(reasons), in.ObservationDays),
		Priority:   priority,
		Status:     recommendation.StatusPending,
		CreatedAt:  now,
		ExpiresAt:  weekEnd,
	}
}

func (e *Evaluator) volumeAdjust(
	userID, planID string,
	status TSBStatus,
	in Inputs,
	now time.Time,
	weekEnd time.Time,
) *recommendation.Recommendation {
	var (
		adjustment float64
		reason     string
		metric     string
		threshold  float64
		current    float64
		direction  string
	)
	signals := 1

	switch {
	case status == TSBStatusFatigued:
		adjustment = -e.cfg.FatiguedDecreasePct
		reason = "accumulated fatigue, tsb in the fatigued band"
		metric, threshold, current, direction = "tsb", e.cfg.TSBFatiguedBelow, in.Load.TSB, "below"
	case in.Compliance.ConsecutiveLowWeeks >= 2:
		adjustment = -e.cfg.ComplianceDecreasePct
		reason = fmt.Sprintf("%d consecutive weeks below the compliance target, the plan volume looks unsustainable",
			in.Compliance.ConsecutiveLowWeeks)
		metric, threshold, current, direction = "compliance_percent", 0.8, in.Compliance.AveragePercent, "below"
		signals = in.Compliance.ConsecutiveLowWeeks
	case status == TSBStatusFresh &&
		in.Readiness.AssessmentCount > 0 &&
		in.Readiness.SevenDayAvg > e.cfg.FreshIncreaseReadinessAvg:
		if e.nearPriorityAEvent(in.UpcomingEvents, now) {
			// no volume ramp into a taper window
			return nil
		}
		adjustment = e.cfg.FreshIncreasePct
		reason = "fresh and reporting high readiness, room to absorb more volume"
		metric, threshold, current, direction = "tsb", e.cfg.TSBFreshAbove, in.Load.TSB, "above"
		signals = 2
	default:
		return nil
	}

	return &recommendation.Recommendation{
		UserID:   userID,
		PlanID:   planID,
		TargetID: in.WeekStart.Format(time.DateOnly),
		Kind:     recommendation.KindWeekVolumeAdjust,
		Scope:    recommendation.ScopeWeek,
		Trigger: recommendation.TriggerData{
			Metric:       metric,
			Threshold:    threshold,
			CurrentValue: current,
			Direction:    direction,
		},
		Proposed: recommendation.ProposedChanges{
			WeekVolumeAdjust: &recommendation.WeekVolumeAdjustChanges{
				AdjustmentPercent: adjustment,
				Reason:            reason,
			},
		},
		Reasoning:  fmt.Sprintf("Adjust this week's volume by %+.0f%%: %s.", adjustment, reason),
		Confidence: recommendation.Confidence(signals, in.ObservationDays),
		Priority:   2,
		Status:     recommendation.StatusPending,
		CreatedAt:  now,
		ExpiresAt:  weekEnd,
	}
}

func (e *Evaluator) complianceAlert(
	userID, planID string,
	in Inputs,
	now time.Time,
	weekEnd time.Time,
) recommendation.Recommendation {
	reason := fmt.Sprintf("%d consecutive weeks under 80%% of the weekly target (recent average %.0f%%)",
		in.Compliance.ConsecutiveLowWeeks, in.Compliance.AveragePercent*100)

	return recommendation.Recommendation{
		UserID:   userID,
		PlanID:   planID,
		TargetID: in.WeekStart.Format(time.DateOnly),
		Kind:     recommendation.KindComplianceAlert,
		Scope:    recommendation.ScopeWeek,
		Trigger: recommendation.TriggerData{
			Metric:       "consecutive_low_weeks",
			Threshold:    2,
			CurrentValue: float64(in.Compliance.ConsecutiveLowWeeks),
			Direction:    "above",
		},
		Proposed: recommendation.ProposedChanges{
			ComplianceAlert: &recommendation.ComplianceAlertChanges{
				ConsecutiveLowWeeks: in.Compliance.ConsecutiveLowWeeks,
				AveragePercent:      in.Compliance.AveragePercent,
				Reason:              reason,
			},
		},
		Reasoning:  "The plan and the training diary keep disagreeing: " + reason + ".",
		Confidence: recommendation.Confidence(in.Compliance.ConsecutiveLowWeeks, in.ObservationDays),
		Priority:   3,
		Status:     recommendation.StatusPending,
		CreatedAt:  now,
		ExpiresAt:  weekEnd,
	}
}

func (e *Evaluator) nearPriorityAEvent(events []phase.Event, now time.Time) bool {
	for _, ev := range events {
		if ev.Priority != "A" {
			continue
		}
		days := ev.EventDate.Sub(now).Hours() / 24
		if days >= 0 && days <= float64(e.cfg.EventTaperDays) {
			return true
		}
	}
	return false
}

func joinReasons(reasons []string) string {
	out := ""
	for i, r := range reasons {
		if i > 0 {
			out += "; "
		}
		out += r
	}
	return out
}

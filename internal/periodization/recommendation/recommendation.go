package recommendation

import "time"

// Kind can be one of:
//   - phase_extension
//   - phase_shorten
//   - phase_insert
//   - week_volume_adjust
//   - week_type_change
//   - compliance_alert
type Kind string

const (
	KindPhaseExtension   Kind = "phase_extension"
	KindPhaseShorten     Kind = "phase_shorten"
	KindPhaseInsert      Kind = "phase_insert"
	KindWeekVolumeAdjust Kind = "week_volume_adjust"
	KindWeekTypeChange   Kind = "week_type_change"
	KindComplianceAlert  Kind = "compliance_alert"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindPhaseExtension, KindPhaseShorten, KindPhaseInsert,
		KindWeekVolumeAdjust, KindWeekTypeChange, KindComplianceAlert:
		return true
	default:
		return false
	}
}

type Scope string

const (
	ScopePhase Scope = "phase"
	ScopeWeek  Scope = "week"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusModified  Status = "modified"
	StatusDismissed Status = "dismissed"
	StatusExpired   Status = "expired"
)

// Terminal reports whether no further user response is possible.
func (s Status) Terminal() bool {
	return s != StatusPending
}

// TriggerData describes the evidence behind a recommendation in a structured
// way, so clients can render it without parsing the reasoning text.
type TriggerData struct {
	Metric       string   `json:"metric"`
	Threshold    float64  `json:"threshold"`
	CurrentValue float64  `json:"currentValue"`
	Direction    string   `json:"direction"` // "above" or "below"
	Signals      []string `json:"signals,omitempty"`
}

// ProposedChanges is the kind-specific payload: exactly one of the variants
// is set, matching the recommendation kind.
type ProposedChanges struct {
	PhaseExtension   *PhaseExtensionChanges   `json:"phaseExtension,omitempty"`
	PhaseShorten     *PhaseShortenChanges     `json:"phaseShorten,omitempty"`
	PhaseInsert      *PhaseInsertChanges      `json:"phaseInsert,omitempty"`
	WeekVolumeAdjust *WeekVolumeAdjustChanges `json:"weekVolumeAdjust,omitempty"`
	WeekTypeChange   *WeekTypeChangeChanges   `json:"weekTypeChange,omitempty"`
	ComplianceAlert  *ComplianceAlertChanges  `json:"complianceAlert,omitempty"`
}

type PhaseExtensionChanges struct {
	OriginalEndDate time.Time `json:"originalEndDate"`
	ProposedEndDate time.Time `json:"proposedEndDate"`
	ExtensionDays   int       `json:"extensionDays"`
	Reason          string    `json:"reason"`
}

type PhaseShortenChanges struct {
	OriginalEndDate time.Time `json:"originalEndDate"`
	ProposedEndDate time.Time `json:"proposedEndDate"`
	ShortenDays     int       `json:"shortenDays"`
	Reason          string    `json:"reason"`
}

type PhaseInsertChanges struct {
	AfterPhaseID string    `json:"afterPhaseId"`
	PhaseType    string    `json:"phaseType"`
	StartDate    time.Time `json:"startDate"`
	DurationDays int       `json:"durationDays"`
	Reason       string    `json:"reason"`
}

type WeekVolumeAdjustChanges struct {
	AdjustmentPercent float64 `json:"adjustmentPercent"` // negative = decrease
	Reason            string  `json:"reason"`
}

type WeekTypeChangeChanges struct {
	ProposedWeekType string `json:"proposedWeekType"`
	Reason           string `json:"reason"`
}

type ComplianceAlertChanges struct {
	ConsecutiveLowWeeks int     `json:"consecutiveLowWeeks"`
	AveragePercent      float64 `json:"averagePercent"`
	Reason              string  `json:"reason"`
}

// Recommendation is one scored, time-boxed suggestion for a plan. TargetID is
// the phase id for phase-scope records and the ISO week start for week-scope
// records; together with plan and kind it keys the dedup contract.
type Recommendation struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	PlanID      string          `json:"planId"`
	TargetID    string          `json:"targetId"`
	Kind        Kind            `json:"kind"`
	Scope       Scope           `json:"scope"`
	Trigger     TriggerData     `json:"triggerData"`
	Proposed    ProposedChanges `json:"proposedChanges"`
	Reasoning   string          `json:"reasoning"`
	Confidence  float64         `json:"confidenceScore"`
	Priority    int             `json:"priority"` // 1 = most urgent, 5 = least
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	RespondedAt *time.Time      `json:"respondedAt,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// Confidence scores a recommendation: more independent corroborating signals
// and a longer observation window raise it, and it never leaves [0,1].
func Confidence(signalCount, observationDays int) float64 {
	score := 0.4
	if signalCount > 1 {
		score += 0.15 * float64(signalCount-1)
	}
	if observationDays > 0 {
		windowBonus := float64(observationDays) / 90 * 0.2
		if windowBonus > 0.2 {
			windowBonus = 0.2
		}
		score += windowBonus
	}
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

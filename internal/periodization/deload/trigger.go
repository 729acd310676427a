package deload

import "time"

type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Type can be one of:
//   - volume
//   - intensity
//   - full
//   - active_recovery
type Type string

const (
	TypeVolume         Type = "volume"
	TypeIntensity      Type = "intensity"
	TypeFull           Type = "full"
	TypeActiveRecovery Type = "active_recovery"
)

type Response string

const (
	ResponsePending   Response = "pending"
	ResponseAccepted  Response = "accepted"
	ResponseModified  Response = "modified"
	ResponseDismissed Response = "dismissed"
)

// Signal names the independent evidence dimensions the detector looks at.
type Signal string

const (
	SignalTSBBreach          Signal = "tsb_breach"
	SignalMRVBreach          Signal = "mrv_breach"
	SignalPlateau            Signal = "plateau"
	SignalLowReadiness       Signal = "low_readiness"
	SignalDecliningReadiness Signal = "declining_readiness"
)

// Trigger is a severity-graded deload suggestion. An accepted trigger
// becomes the anchor for "days since last deload" in later evaluations.
type Trigger struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	PlanID          string     `json:"planId"`
	PrimarySignal   Signal     `json:"primarySignal"`
	Signals         []Signal   `json:"signals"`
	Severity        Severity   `json:"severity"`
	RecommendedType Type       `json:"recommendedType"`
	DurationDays    int        `json:"durationDays"`
	UserResponse    Response   `json:"userResponse"`
	CreatedAt       time.Time  `json:"createdAt"`
	RespondedAt     *time.Time `json:"respondedAt,omitempty"`
}

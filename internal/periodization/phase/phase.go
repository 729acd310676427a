package phase

import "time"

// Type can be one of:
//   - base
//   - build
//   - peak
//   - taper
//   - recovery
type Type string

const (
	TypeBase     Type = "base"
	TypeBuild    Type = "build"
	TypePeak     Type = "peak"
	TypeTaper    Type = "taper"
	TypeRecovery Type = "recovery"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeBase, TypeBuild, TypePeak, TypeTaper, TypeRecovery:
		return true
	default:
		return false
	}
}

// Phase is one periodization block of a plan. EndDate moves when an
// adjustment recommendation is accepted; OriginalEndDate never does.
type Phase struct {
	ID              string    `json:"id"`
	PlanID          string    `json:"planId"`
	Type            Type      `json:"type"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	OriginalEndDate time.Time `json:"originalEndDate"`
}

// DaysRemaining counts whole days from now until the phase end.
func (p Phase) DaysRemaining(now time.Time) int {
	days := int(p.EndDate.Sub(now).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// PercentTimeElapsed is 0-100 how far into the phase now is.
func (p Phase) PercentTimeElapsed(now time.Time) float64 {
	total := p.EndDate.Sub(p.StartDate).Hours()
	if total <= 0 {
		return 100
	}
	elapsed := now.Sub(p.StartDate).Hours()
	percent := elapsed / total * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// Event is an upcoming race or test the plan builds toward.
type Event struct {
	Name      string    `json:"name"`
	EventDate time.Time `json:"eventDate"`
	Priority  string    `json:"priority"` // "A", "B", "C"
	EventType string    `json:"eventType"`
}

package evaluation

import (
	"github.com/trainforge/periodizer/internal/periodization/compliance"
	"github.com/trainforge/periodizer/internal/periodization/deload"
	"github.com/trainforge/periodizer/internal/periodization/load"
	"github.com/trainforge/periodizer/internal/periodization/phaseeval"
	"github.com/trainforge/periodizer/internal/periodization/readiness"
	"github.com/trainforge/periodizer/internal/periodization/recommendation"
	"github.com/trainforge/periodizer/internal/periodization/volume"
	"github.com/trainforge/periodizer/internal/periodization/week"
)

// Analysis is the derived state of the athlete at evaluation time. It is
// returned alongside any recommendations so clients can show the evidence,
// and it is neutral (zero values, Load nil) for a user with no history.
type Analysis struct {
	Load           *load.Snapshot              `json:"load,omitempty"`
	CTLTrend       load.Trend                  `json:"ctlTrend"`
	TSBTrend       load.Trend                  `json:"tsbTrend"`
	ACWRRisk       load.RiskBand               `json:"acwrRisk"`
	TSBStatus      week.TSBStatus              `json:"tsbStatus"`
	Readiness      readiness.Summary           `json:"readiness"`
	Compliance     compliance.Summary          `json:"compliance"`
	Volume         []volume.MuscleVolumeStatus `json:"volume,omitempty"`
	PhaseStatus    phaseeval.ProgressStatus    `json:"phaseStatus"`
	GoalProgress   float64                     `json:"goalProgressPct"`
	GoalTracked    bool                        `json:"goalTracked"`
	PlateauedLifts []string                    `json:"plateauedLifts,omitempty"`
}

// Result is what one evaluation run produces.
type Result struct {
	Analysis          Analysis                        `json:"analysis"`
	Recommendations   []recommendation.Recommendation `json:"recommendations"`
	DeloadTrigger     *deload.Trigger                 `json:"deloadTrigger,omitempty"`
	HasRecommendation bool                            `json:"hasRecommendation"`
}

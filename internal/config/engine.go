package config

// EngineConfig groups the tunables of the periodization engine. The defaults
// follow common sports-science conventions (42/7 day load constants, 0.8-1.3
// ACWR band, etc.) but are deliberately configuration, so they can be adjusted
// per sport or population without code changes.
type EngineConfig struct {
	Load      LoadConfig      `toml:"load"`
	Readiness ReadinessConfig `toml:"readiness"`
	Comply    ComplyConfig    `toml:"compliance"`
	Volume    VolumeConfig    `toml:"volume"`
	Deload    DeloadConfig    `toml:"deload"`
	Week      WeekConfig      `toml:"week"`
	Phase     PhaseConfig     `toml:"phase"`
}

type LoadConfig struct {
	// EWMA time constants, in days
	CTLDays float64 `toml:"ctl_days"`
	ATLDays float64 `toml:"atl_days"`

	// trend detection
	TrendWindowDays   int     `toml:"trend_window_days"`
	TrendRisingRatio  float64 `toml:"trend_rising_ratio"`
	TrendFallingRatio float64 `toml:"trend_falling_ratio"`

	// ACWR risk bands
	ACWROptimalLow   float64 `toml:"acwr_optimal_low"`
	ACWROptimalHigh  float64 `toml:"acwr_optimal_high"`
	ACWRHighRiskLow  float64 `toml:"acwr_high_risk_low"`
	ACWRHighRiskHigh float64 `toml:"acwr_high_risk_high"`
}

type ReadinessConfig struct {
	// composite weights, renormalized over the inputs actually present
	SubjectiveWeight float64 `toml:"subjective_weight"`
	HRVWeight        float64 `toml:"hrv_weight"`
	SleepWeight      float64 `toml:"sleep_weight"`
	SorenessWeight   float64 `toml:"soreness_weight"`

	SleepTargetHours float64 `toml:"sleep_target_hours"`
	HRVBaselineDays  int     `toml:"hrv_baseline_days"`

	// recommended intensity thresholds
	ReduceBelow float64 `toml:"reduce_below"`
	PushAbove   float64 `toml:"push_above"`

	ImprovingMargin    float64 `toml:"improving_margin"`
	DecliningStreakMin int     `toml:"declining_streak_min"`
}

type ComplyConfig struct {
	LowThreshold float64 `toml:"low_threshold"`
}

type VolumeConfig struct {
	// fraction of the mev->mav_low span used for the "approaching" bands
	BufferFraction float64 `toml:"buffer_fraction"`
}

type DeloadConfig struct {
	TSBThreshold         float64 `toml:"tsb_threshold"`
	LowReadinessScore    float64 `toml:"low_readiness_score"`
	LowReadinessStreak   int     `toml:"low_readiness_streak"`
	MinDaysBetween       int     `toml:"min_days_between"`
	MildDurationDays     int     `toml:"mild_duration_days"`
	ModerateDurationDays int     `toml:"moderate_duration_days"`
	SevereDurationDays   int     `toml:"severe_duration_days"`

	PlateauWindowWeeks int     `toml:"plateau_window_weeks"`
	PlateauMinGainPct  float64 `toml:"plateau_min_gain_pct"`
}

type WeekConfig struct {
	TSBFreshAbove        float64 `toml:"tsb_fresh_above"`
	TSBFatiguedBelow     float64 `toml:"tsb_fatigued_below"`
	TSBVeryFatiguedBelow float64 `toml:"tsb_very_fatigued_below"`

	LowReadinessAvg          float64 `toml:"low_readiness_avg"`
	DecliningDaysForRecovery int     `toml:"declining_days_for_recovery"`

	FatiguedDecreasePct       float64 `toml:"fatigued_decrease_pct"`
	ComplianceDecreasePct     float64 `toml:"compliance_decrease_pct"`
	FreshIncreasePct          float64 `toml:"fresh_increase_pct"`
	FreshIncreaseReadinessAvg float64 `toml:"fresh_increase_readiness_avg"`

	// no volume increase this close to a high-priority event
	EventTaperDays int `toml:"event_taper_days"`
}

type PhaseConfig struct {
	ExtensionDeficitPoints  float64 `toml:"extension_deficit_points"`
	ExtensionMaxDays        int     `toml:"extension_max_days"`
	ExtensionWindowDays     int     `toml:"extension_window_days"`
	ShortenMinRemainingDays int     `toml:"shorten_min_remaining_days"`
	ShortenProgressPct      float64 `toml:"shorten_progress_pct"`
	ShortenFraction         float64 `toml:"shorten_fraction"`
	AtRiskComplianceBelow   float64 `toml:"at_risk_compliance_below"`
	InsertTSBBelow          float64 `toml:"insert_tsb_below"`
	InsertReadinessBelow    float64 `toml:"insert_readiness_below"`
	InsertRecoveryDays      int     `toml:"insert_recovery_days"`
	InsertExpiryDays        int     `toml:"insert_expiry_days"`
}

// ApplyDefaults fills in zero-valued tunables. Zero is not a meaningful value
// for any of them, so a plain zero check is enough.
func (c *EngineConfig) ApplyDefaults() {
	def := DefaultEngineConfig()
	applyLoadDefaults(&c.Load, def.Load)
	applyReadinessDefaults(&c.Readiness, def.Readiness)
	if c.Comply.LowThreshold == 0 {
		c.Comply.LowThreshold = def.Comply.LowThreshold
	}
	if c.Volume.BufferFraction == 0 {
		c.Volume.BufferFraction = def.Volume.BufferFraction
	}
	applyDeloadDefaults(&c.Deload, def.Deload)
	applyWeekDefaults(&c.Week, def.Week)
	applyPhaseDefaults(&c.Phase, def.Phase)
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Load: LoadConfig{
			CTLDays:           42,
			ATLDays:           7,
			TrendWindowDays:   14,
			TrendRisingRatio:  1.05,
			TrendFallingRatio: 0.95,
			ACWROptimalLow:    0.8,
			ACWROptimalHigh:   1.3,
			ACWRHighRiskLow:   0.5,
			ACWRHighRiskHigh:  1.5,
		},
		Readiness: ReadinessConfig{
			SubjectiveWeight:   0.4,
			HRVWeight:          0.25,
			SleepWeight:        0.2,
			SorenessWeight:     0.15,
			SleepTargetHours:   8,
			HRVBaselineDays:    7,
			ReduceBelow:        40,
			PushAbove:          70,
			ImprovingMargin:    5,
			DecliningStreakMin: 3,
		},
		Comply: ComplyConfig{
			LowThreshold: 0.8,
		},
		Volume: VolumeConfig{
			BufferFraction: 0.1,
		},
		Deload: DeloadConfig{
			TSBThreshold:         -20,
			LowReadinessScore:    40,
			LowReadinessStreak:   3,
			MinDaysBetween:       14,
			MildDurationDays:     5,
			ModerateDurationDays: 7,
			SevereDurationDays:   10,
			PlateauWindowWeeks:   4,
			PlateauMinGainPct:    1,
		},
		Week: WeekConfig{
			TSBFreshAbove:             10,
			TSBFatiguedBelow:          -10,
			TSBVeryFatiguedBelow:      -20,
			LowReadinessAvg:           40,
			DecliningDaysForRecovery:  5,
			FatiguedDecreasePct:       15,
			ComplianceDecreasePct:     25,
			FreshIncreasePct:          10,
			FreshIncreaseReadinessAvg: 70,
			EventTaperDays:            7,
		},
		Phase: PhaseConfig{
			ExtensionDeficitPoints:  20,
			ExtensionMaxDays:        14,
			ExtensionWindowDays:     14,
			ShortenMinRemainingDays: 7,
			ShortenProgressPct:      90,
			ShortenFraction:         0.3,
			AtRiskComplianceBelow:   0.7,
			InsertTSBBelow:          -25,
			InsertReadinessBelow:    40,
			InsertRecoveryDays:      7,
			InsertExpiryDays:        3,
		},
	}
}

func applyLoadDefaults(c *LoadConfig, def LoadConfig) {
	if c.CTLDays == 0 {
		c.CTLDays = def.CTLDays
	}
	if c.ATLDays == 0 {
		c.ATLDays = def.ATLDays
	}
	if c.TrendWindowDays == 0 {
		c.TrendWindowDays = def.TrendWindowDays
	}
	if c.TrendRisingRatio == 0 {
		c.TrendRisingRatio = def.TrendRisingRatio
	}
	if c.TrendFallingRatio == 0 {
		c.TrendFallingRatio = def.TrendFallingRatio
	}
	if c.ACWROptimalLow == 0 {
		c.ACWROptimalLow = def.ACWROptimalLow
	}
	if c.ACWROptimalHigh == 0 {
		c.ACWROptimalHigh = def.ACWROptimalHigh
	}
	if c.ACWRHighRiskLow == 0 {
		c.ACWRHighRiskLow = def.ACWRHighRiskLow
	}
	if c.ACWRHighRiskHigh == 0 {
		c.ACWRHighRiskHigh = def.ACWRHighRiskHigh
	}
}

func applyReadinessDefaults(c *ReadinessConfig, def ReadinessConfig) {
	if c.SubjectiveWeight == 0 {
		c.SubjectiveWeight = def.SubjectiveWeight
	}
	if c.HRVWeight == 0 {
		c.HRVWeight = def.HRVWeight
	}
	if c.SleepWeight == 0 {
		c.SleepWeight = def.SleepWeight
	}
	if c.SorenessWeight == 0 {
		c.SorenessWeight = def.SorenessWeight
	}
	if c.SleepTargetHours == 0 {
		c.SleepTargetHours = def.SleepTargetHours
	}
	if c.HRVBaselineDays == 0 {
		c.HRVBaselineDays = def.HRVBaselineDays
	}
	if c.ReduceBelow == 0 {
		c.ReduceBelow = def.ReduceBelow
	}
	if c.PushAbove == 0 {
		c.PushAbove = def.PushAbove
	}
	if c.ImprovingMargin == 0 {
		c.ImprovingMargin = def.ImprovingMargin
	}
	if c.DecliningStreakMin == 0 {
		c.DecliningStreakMin = def.DecliningStreakMin
	}
}

func applyDeloadDefaults(c *DeloadConfig, def DeloadConfig) {
	if c.TSBThreshold == 0 {
		c.TSBThreshold = def.TSBThreshold
	}
	if c.LowReadinessScore == 0 {
		c.LowReadinessScore = def.LowReadinessScore
	}
	if c.LowReadinessStreak == 0 {
		c.LowReadinessStreak = def.LowReadinessStreak
	}
	if c.MinDaysBetween == 0 {
		c.MinDaysBetween = def.MinDaysBetween
	}
	if c.MildDurationDays == 0 {
		c.MildDurationDays = def.MildDurationDays
	}
	if c.ModerateDurationDays == 0 {
		c.ModerateDurationDays = def.ModerateDurationDays
	}
	if c.SevereDurationDays == 0 {
		c.SevereDurationDays = def.SevereDurationDays
	}
	if c.PlateauWindowWeeks == 0 {
		c.PlateauWindowWeeks = def.PlateauWindowWeeks
	}
	if c.PlateauMinGainPct == 0 {
		c.PlateauMinGainPct = def.PlateauMinGainPct
	}
}

func applyWeekDefaults(c *WeekConfig, def WeekConfig) {
	if c.TSBFreshAbove == 0 {
		c.TSBFreshAbove = def.TSBFreshAbove
	}
	if c.TSBFatiguedBelow == 0 {
		c.TSBFatiguedBelow = def.TSBFatiguedBelow
	}
	if c.TSBVeryFatiguedBelow == 0 {
		c.TSBVeryFatiguedBelow = def.TSBVeryFatiguedBelow
	}
	if c.LowReadinessAvg == 0 {
		c.LowReadinessAvg = def.LowReadinessAvg
	}
	if c.DecliningDaysForRecovery == 0 {
		c.DecliningDaysForRecovery = def.DecliningDaysForRecovery
	}
	if c.FatiguedDecreasePct == 0 {
		c.FatiguedDecreasePct = def.FatiguedDecreasePct
	}
	if c.ComplianceDecreasePct == 0 {
		c.ComplianceDecreasePct = def.ComplianceDecreasePct
	}
	if c.FreshIncreasePct == 0 {
		c.FreshIncreasePct = def.FreshIncreasePct
	}
	if c.FreshIncreaseReadinessAvg == 0 {
		c.FreshIncreaseReadinessAvg = def.FreshIncreaseReadinessAvg
	}
	if c.EventTaperDays == 0 {
		c.EventTaperDays = def.EventTaperDays
	}
}

func applyPhaseDefaults(c *PhaseConfig, def PhaseConfig) {
	if c.ExtensionDeficitPoints == 0 {
		c.ExtensionDeficitPoints = def.ExtensionDeficitPoints
	}
	if c.ExtensionMaxDays == 0 {
		c.ExtensionMaxDays = def.ExtensionMaxDays
	}
	if c.ExtensionWindowDays == 0 {
		c.ExtensionWindowDays = def.ExtensionWindowDays
	}
	if c.ShortenMinRemainingDays == 0 {
		c.ShortenMinRemainingDays = def.ShortenMinRemainingDays
	}
	if c.ShortenProgressPct == 0 {
		c.ShortenProgressPct = def.ShortenProgressPct
	}
	if c.ShortenFraction == 0 {
		c.ShortenFraction = def.ShortenFraction
	}
	if c.AtRiskComplianceBelow == 0 {
		c.AtRiskComplianceBelow = def.AtRiskComplianceBelow
	}
	if c.InsertTSBBelow == 0 {
		c.InsertTSBBelow = def.InsertTSBBelow
	}
	if c.InsertReadinessBelow == 0 {
		c.InsertReadinessBelow = def.InsertReadinessBelow
	}
	if c.InsertRecoveryDays == 0 {
		c.InsertRecoveryDays = def.InsertRecoveryDays
	}
	if c.InsertExpiryDays == 0 {
		c.InsertExpiryDays = def.InsertExpiryDays
	}
}

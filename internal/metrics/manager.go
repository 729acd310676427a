package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterEvaluations        *prometheus.CounterVec
	CounterRecommendations    *prometheus.CounterVec
	CounterDedupHits          prometheus.Counter
	CounterDeloadTriggers     *prometheus.CounterVec
	CounterExpiredSweeps      prometheus.Counter
	CounterEvaluationRejected prometheus.Counter

	// gauges
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistEvaluationDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("periodizer", "test_evaluator", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("periodizer", "test_evaluator", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterEvaluations := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "evaluations",
		Help:      "The total number of plan evaluations, by outcome",
	}, []string{"outcome"})
	counterRecommendations := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "recommendations",
		Help:      "The total number of recommendations persisted, by kind",
	}, []string{"kind"})
	counterDedupHits := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "recommendation_dedup_hits",
		Help:      "The number of times an existing pending recommendation was returned instead of a new insert",
	})
	counterDeloadTriggers := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "deload_triggers",
		Help:      "The total number of deload triggers created, by severity",
	}, []string{"severity"})
	counterExpiredSweeps := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "recommendations_expired",
		Help:      "The total number of pending recommendations marked expired",
	})
	counterEvaluationRejected := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "evaluations_rejected",
		Help:      "The number of evaluations rejected because another one held the plan lock",
	})

	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the evaluator is alive",
	})

	histEvaluationDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "evaluation_duration_seconds",
		Help:      "Duration of a full plan evaluation",
		Buckets:   prometheus.DefBuckets,
	})

	return &Manager{
		CounterEvaluations:        counterEvaluations,
		CounterRecommendations:    counterRecommendations,
		CounterDedupHits:          counterDedupHits,
		CounterDeloadTriggers:     counterDeloadTriggers,
		CounterExpiredSweeps:      counterExpiredSweeps,
		CounterEvaluationRejected: counterEvaluationRejected,
		GaugeLifeSignal:           gaugeLifeSignal,
		HistEvaluationDuration:    histEvaluationDuration,
	}
}

package evaluation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trainforge/periodizer/internal/config"
	"github.com/trainforge/periodizer/internal/metrics"
	"github.com/trainforge/periodizer/internal/periodization/compliance"
	"github.com/trainforge/periodizer/internal/periodization/deload"
	"github.com/trainforge/periodizer/internal/periodization/load"
	"github.com/trainforge/periodizer/internal/periodization/phase"
	"github.com/trainforge/periodizer/internal/periodization/phaseeval"
	"github.com/trainforge/periodizer/internal/periodization/readiness"
	"github.com/trainforge/periodizer/internal/periodization/recommendation"
	"github.com/trainforge/periodizer/internal/periodization/volume"
	"github.com/trainforge/periodizer/internal/periodization/week"
	"github.com/trainforge/periodizer/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const (
	// loadWindowDays is how far back the load model reads; ninety days is
	// comfortably past the point where the 42-day EWMA forgets its seed.
	loadWindowDays = 90
	// readinessWindowDays covers the HRV baseline plus the trend window.
	readinessWindowDays = 28
	complianceWeeks     = 8
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=evaluation_test

type trainingRecordsRepo interface {
	ListWindow(ctx context.Context, userID string, from, to time.Time) ([]load.DailyTrainingRecord, error)
}

type assessmentsRepo interface {
	ListWindow(ctx context.Context, userID string, from, to time.Time) ([]readiness.Assessment, error)
}

type complianceWindowsRepo interface {
	ListRecent(ctx context.Context, planID string, weeks int) ([]compliance.Window, error)
}

type volumeRepo interface {
	GetLandmarks(ctx context.Context, userID string) ([]volume.Landmarks, error)
	WeeklySets(ctx context.Context, userID string, weekStart time.Time) (map[string]float64, error)
}

type phasesRepo interface {
	Current(ctx context.Context, planID string, now time.Time) (*phase.Phase, error)
	Get(ctx context.Context, phaseID string) (*phase.Phase, error)
	Targets(ctx context.Context, phaseID string) ([]phase.Target, error)
	StrengthHistory(ctx context.Context, userID string, since time.Time) (map[string][]phase.StrengthObservation, error)
	UpcomingEvents(ctx context.Context, userID string, now time.Time) ([]phase.Event, error)
	UpdateEndDate(ctx context.Context, phaseID string, endDate time.Time) error
	InsertAfter(ctx context.Context, after phase.Phase, inserted phase.Phase) error
}

type weeksRepo interface {
	ScheduledType(ctx context.Context, planID string, weekStart time.Time) (week.Type, error)
}

type recommender interface {
	Persist(ctx context.Context, rec recommendation.Recommendation) (*recommendation.Recommendation, bool, error)
	Respond(ctx context.Context, id string, response recommendation.Status, notes string, now time.Time) (*recommendation.Recommendation, error)
}

type deloadEvaluator interface {
	Evaluate(ctx context.Context, userID, planID string, in deload.Inputs, now time.Time) (*deload.Trigger, error)
	Respond(ctx context.Context, id string, response deload.Response, now time.Time) (*deload.Trigger, error)
	DaysSinceLastDeload(ctx context.Context, userID string, now time.Time) (int, error)
}

type planLocker interface {
	Acquire(ctx context.Context, planID string) (release func(), err error)
}

// Service runs the whole evaluation for a (user, plan): fan out the
// collaborator reads, derive the analysis, run the week/phase/deload rules
// and persist what they emit through the dedup contract.
type Service struct {
	trainingRecords trainingRecordsRepo
	assessments     assessmentsRepo
	complianceRepo  complianceWindowsRepo
	volumeRepo      volumeRepo
	phases          phasesRepo
	weeks           weeksRepo

	loadModel     *load.Model
	readinessTrkr *readiness.Tracker
	complianceTrk *compliance.Tracker
	volumeEngine  *volume.Engine
	weekEval      *week.Evaluator
	phaseEval     *phaseeval.Evaluator
	deloads       deloadEvaluator

	recommender recommender
	locker      planLocker
	cfg         config.EngineConfig
	metrics     *metrics.Manager
}

type NewServiceParams struct {
	TrainingRecords trainingRecordsRepo
	Assessments     assessmentsRepo
	Compliance      complianceWindowsRepo
	Volume          volumeRepo
	Phases          phasesRepo
	Weeks           weeksRepo
	Deloads         deloadEvaluator
	Recommender     recommender
	Locker          planLocker
	Config          config.EngineConfig
	Metrics         *metrics.Manager
}

func NewService(params NewServiceParams) *Service {
	return &Service{
		trainingRecords: params.TrainingRecords,
		assessments:     params.Assessments,
		complianceRepo:  params.Compliance,
		volumeRepo:      params.Volume,
		phases:          params.Phases,
		weeks:           params.Weeks,
		loadModel:       load.NewModel(params.Config.Load),
		readinessTrkr:   readiness.NewTracker(params.Config.Readiness),
		complianceTrk:   compliance.NewTracker(params.Config.Comply),
		volumeEngine:    volume.NewEngine(params.Config.Volume),
		weekEval:        week.NewEvaluator(params.Config.Week),
		phaseEval:       phaseeval.NewEvaluator(params.Config.Phase),
		deloads:         params.Deloads,
		recommender:     params.Recommender,
		locker:          params.Locker,
		cfg:             params.Config,
		metrics:         params.Metrics,
	}
}

// inputs is everything the read fan-out gathers before the synchronous
// scoring step.
type inputs struct {
	records       []load.DailyTrainingRecord
	assessments   []readiness.Assessment
	windows       []compliance.Window
	landmarks     []volume.Landmarks
	weeklySets    map[string]float64
	currentPhase  *phase.Phase
	targets       []phase.Target
	strength      map[string][]phase.StrengthObservation
	events        []phase.Event
	weekType      week.Type
	daysSinceLast int
}

// Evaluate runs one full evaluation. Evaluations for the same plan are
// serialized through the plan lock; if any collaborator read fails the whole
// evaluation aborts and nothing is persisted.
func (s *Service) Evaluate(
	ctx context.Context,
	userID, planID string,
	now time.Time,
) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "evaluation.evaluate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("plan_id", planID))

	started := time.Now()
	defer func() {
		s.metrics.HistEvaluationDuration.Observe(time.Since(started).Seconds())
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		s.metrics.CounterEvaluations.WithLabelValues(outcome).Inc()
	}()

	release, err := s.locker.Acquire(ctx, planID)
	if err != nil {
		if errors.Is(err, recommendation.ErrEvaluationInProgress) {
			s.metrics.CounterEvaluationRejected.Inc()
		}
		return nil, fmt.Errorf("acquire plan lock: %w", err)
	}
	defer release()

	in, err := s.gather(ctx, userID, planID, now)
	if err != nil {
		return nil, fmt.Errorf("gather evaluation inputs: %w", err)
	}

	analysis, weekInputs, phaseInputs, deloadInputs := s.derive(in, now)

	result := &Result{Analysis: analysis}

	for _, rec := range s.weekEval.Evaluate(userID, planID, weekInputs, now) {
		stored, _, err := s.recommender.Persist(ctx, rec)
		if err != nil {
			return nil, err
		}
		result.Recommendations = append(result.Recommendations, *stored)
	}

	if rec := s.phaseEval.Evaluate(userID, planID, phaseInputs, now); rec != nil {
		stored, _, err := s.recommender.Persist(ctx, *rec)
		if err != nil {
			return nil, err
		}
		result.Recommendations = append(result.Recommendations, *stored)
	}

	trigger, err := s.deloads.Evaluate(ctx, userID, planID, deloadInputs, now)
	if err != nil {
		return nil, err
	}
	result.DeloadTrigger = trigger

	result.HasRecommendation = len(result.Recommendations) > 0 || trigger != nil
	log.Debugf("evaluation for plan %s done: %d recommendations, deload trigger: %t",
		planID, len(result.Recommendations), trigger != nil)

	return result, nil
}

// gather fans the collaborator reads out concurrently. The reads are
// independent of each other; the first failure cancels the rest.
func (s *Service) gather(
	ctx context.Context,
	userID, planID string,
	now time.Time,
) (*inputs, error) {
	in := &inputs{}
	weekStart := weekStartOf(now)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		in.records, err = s.trainingRecords.ListWindow(
			gctx, userID, now.AddDate(0, 0, -loadWindowDays), now)
		return err
	})
	g.Go(func() (err error) {
		in.assessments, err = s.assessments.ListWindow(
			gctx, userID, now.AddDate(0, 0, -readinessWindowDays), now)
		return err
	})
	g.Go(func() (err error) {
		in.windows, err = s.complianceRepo.ListRecent(gctx, planID, complianceWeeks)
		return err
	})
	g.Go(func() (err error) {
		in.landmarks, err = s.volumeRepo.GetLandmarks(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		in.weeklySets, err = s.volumeRepo.WeeklySets(gctx, userID, weekStart)
		return err
	})
	g.Go(func() (err error) {
		in.currentPhase, err = s.phases.Current(gctx, planID, now)
		if errors.Is(err, phase.ErrPhaseNotFound) {
			// no phase covering today is not an error, the phase rules
			// simply have nothing to say
			in.currentPhase = nil
			return nil
		}
		return err
	})
	g.Go(func() (err error) {
		since := now.AddDate(0, 0, -2*s.cfg.Deload.PlateauWindowWeeks*7)
		in.strength, err = s.phases.StrengthHistory(gctx, userID, since)
		return err
	})
	g.Go(func() (err error) {
		in.events, err = s.phases.UpcomingEvents(gctx, userID, now)
		return err
	})
	g.Go(func() (err error) {
		in.weekType, err = s.weeks.ScheduledType(gctx, planID, weekStart)
		return err
	})
	g.Go(func() (err error) {
		in.daysSinceLast, err = s.deloads.DaysSinceLastDeload(gctx, userID, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// phase targets depend on knowing the current phase
	if in.currentPhase != nil {
		targets, err := s.phases.Targets(ctx, in.currentPhase.ID)
		if err != nil {
			return nil, err
		}
		in.targets = targets
	}

	return in, nil
}

// derive runs the pure scoring layer over the gathered inputs and shapes
// them into what each evaluator consumes.
func (s *Service) derive(in *inputs, now time.Time) (Analysis, week.Inputs, phaseeval.Inputs, deload.Inputs) {
	snapshots := s.loadModel.Compute(in.records)
	var latest *load.Snapshot
	if len(snapshots) > 0 {
		latest = &snapshots[len(snapshots)-1]
	}

	readinessSummary := s.readinessTrkr.Summarize(in.assessments)
	readinessScores := s.readinessTrkr.Scores(in.assessments)
	complianceSummary := s.complianceTrk.Summarize(in.windows)
	volumeStatuses := s.volumeEngine.ClassifyAll(in.weeklySets, in.landmarks)

	plateaus := phase.DetectPlateaus(in.strength, now, s.cfg.Deload)
	goalProgress, goalTracked := phase.GoalProgress(in.strength, in.targets)

	analysis := Analysis{
		Load:           latest,
		CTLTrend:       s.loadModel.CTLTrend(snapshots),
		TSBTrend:       s.loadModel.TSBTrend(snapshots),
		TSBStatus:      s.weekEval.Status(latest),
		Readiness:      readinessSummary,
		Compliance:     complianceSummary,
		Volume:         volumeStatuses,
		GoalProgress:   goalProgress,
		GoalTracked:    goalTracked,
		PlateauedLifts: plateaus,
	}
	if latest != nil {
		analysis.ACWRRisk = s.loadModel.ACWRRisk(*latest)
	} else {
		analysis.ACWRRisk = load.RiskUnknown
	}

	weekInputs := week.Inputs{
		Load:            latest,
		Readiness:       readinessSummary,
		Compliance:      complianceSummary,
		CurrentWeekType: in.weekType,
		WeekStart:       weekStartOf(now),
		UpcomingEvents:  in.events,
		ObservationDays: len(snapshots),
	}

	phaseInputs := phaseeval.Inputs{
		Phase:             in.currentPhase,
		GoalProgressPct:   goalProgress,
		GoalProgressKnown: goalTracked,
		AvgCompliance:     complianceSummary.AveragePercent,
		HasCompliance:     len(in.windows) > 0,
		Readiness:         readinessSummary,
		ObservationDays:   len(snapshots),
	}
	if latest != nil {
		phaseInputs.TSB = latest.TSB
		phaseInputs.HasLoadData = true
	}
	analysis.PhaseStatus = s.phaseEval.Status(phaseInputs, now)

	deloadInputs := deload.Inputs{
		OverMRV:             volume.OverMRV(volumeStatuses),
		PlateauedExercises:  plateaus,
		ReadinessScores:     readinessScores,
		DaysSinceLastDeload: in.daysSinceLast,
	}
	if latest != nil {
		deloadInputs.TSB = latest.TSB
		deloadInputs.HasLoadData = true
	}

	return analysis, weekInputs, phaseInputs, deloadInputs
}

// RespondToRecommendation records the user's decision on a recommendation.
func (s *Service) RespondToRecommendation(
	ctx context.Context,
	id string,
	response recommendation.Status,
	notes string,
	now time.Time,
) (_ *recommendation.Recommendation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "evaluation.respondtorecommendation")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	rec, err := s.recommender.Respond(ctx, id, response, notes, now)
	if err != nil {
		return nil, err
	}
	if response == recommendation.StatusAccepted {
		if err := s.applyAccepted(ctx, rec); err != nil {
			return nil, fmt.Errorf("apply accepted recommendation %s: %w", rec.ID, err)
		}
	}
	return rec, nil
}

// applyAccepted carries an accepted recommendation's proposed changes into the
// plan. Phase dates only ever move through here. Week-scope records carry no
// plan mutation, the training app reads them straight off the recommendation.
func (s *Service) applyAccepted(ctx context.Context, rec *recommendation.Recommendation) error {
	switch rec.Kind {
	case recommendation.KindPhaseExtension:
		changes := rec.Proposed.PhaseExtension
		if changes == nil {
			return fmt.Errorf("recommendation %s has no phase extension payload", rec.ID)
		}
		return s.phases.UpdateEndDate(ctx, rec.TargetID, changes.ProposedEndDate)
	case recommendation.KindPhaseShorten:
		changes := rec.Proposed.PhaseShorten
		if changes == nil {
			return fmt.Errorf("recommendation %s has no phase shorten payload", rec.ID)
		}
		return s.phases.UpdateEndDate(ctx, rec.TargetID, changes.ProposedEndDate)
	case recommendation.KindPhaseInsert:
		changes := rec.Proposed.PhaseInsert
		if changes == nil {
			return fmt.Errorf("recommendation %s has no phase insert payload", rec.ID)
		}
		after, err := s.phases.Get(ctx, changes.AfterPhaseID)
		if err != nil {
			return fmt.Errorf("load phase %s: %w", changes.AfterPhaseID, err)
		}
		endDate := changes.StartDate.AddDate(0, 0, changes.DurationDays)
		inserted := phase.Phase{
			ID:              uuid.NewString(),
			PlanID:          after.PlanID,
			Type:            phase.Type(changes.PhaseType),
			StartDate:       changes.StartDate,
			EndDate:         endDate,
			OriginalEndDate: endDate,
		}
		return s.phases.InsertAfter(ctx, *after, inserted)
	default:
		return nil
	}
}

// RespondToDeloadTrigger records the user's decision on a deload trigger. An
// accepted trigger anchors the days-since-last-deload input of future runs.
func (s *Service) RespondToDeloadTrigger(
	ctx context.Context,
	id string,
	response deload.Response,
	now time.Time,
) (_ *deload.Trigger, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "evaluation.respondtodeloadtrigger")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	return s.deloads.Respond(ctx, id, response, now)
}

// weekStartOf truncates to the Monday of the week holding t, in UTC.
func weekStartOf(t time.Time) time.Time {
	t = t.UTC()
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -daysSinceMonday)
}

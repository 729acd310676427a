package recommendation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trainforge/periodizer/internal/metrics"
	"github.com/trainforge/periodizer/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrAlreadyResponded       = errors.New("recommendation already responded to")
	ErrInvalidResponse        = errors.New("invalid recommendation response")
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=recommendation_test

type recommendationsRepo interface {
	// InsertIfNoPending persists the recommendation unless a pending one for
	// the same (plan, target, kind) already exists, in which case the
	// existing record is returned and created is false.
	InsertIfNoPending(ctx context.Context, rec Recommendation) (_ *Recommendation, created bool, err error)
	Get(ctx context.Context, id string) (*Recommendation, error)
	UpdateStatus(ctx context.Context, id string, status Status, notes string, respondedAt time.Time) (*Recommendation, error)
	ListPending(ctx context.Context, planID string) ([]Recommendation, error)
	ExpirePending(ctx context.Context, now time.Time) (int, error)
}

// Engine is the shared construction and persistence contract used by the
// week, phase and deload evaluators.
type Engine struct {
	repo    recommendationsRepo
	metrics *metrics.Manager
}

func NewEngine(repo recommendationsRepo, metrics *metrics.Manager) *Engine {
	return &Engine{
		repo:    repo,
		metrics: metrics,
	}
}

// Persist stores a freshly-built recommendation, deduplicating against an
// existing pending one for the same (plan, target, kind). The returned bool
// is false when the existing record was returned instead of a new insert.
func (e *Engine) Persist(ctx context.Context, rec Recommendation) (_ *Recommendation, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recommendation.engine.persist")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan_id", rec.PlanID))
	span.SetAttributes(attribute.String("kind", rec.Kind.String()))

	if !rec.Kind.IsValid() {
		return nil, false, fmt.Errorf("invalid recommendation kind: %s", rec.Kind)
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.Status = StatusPending
	if rec.Confidence < 0 {
		rec.Confidence = 0
	}
	if rec.Confidence > 1 {
		rec.Confidence = 1
	}

	stored, created, err := e.repo.InsertIfNoPending(ctx, rec)
	if err != nil {
		return nil, false, fmt.Errorf("insert recommendation: %w", err)
	}

	if created {
		e.metrics.CounterRecommendations.WithLabelValues(rec.Kind.String()).Inc()
		log.Debugf("recommendation %s [%s] created for plan %s", stored.ID, stored.Kind, stored.PlanID)
	} else {
		e.metrics.CounterDedupHits.Inc()
		log.Debugf("recommendation for plan %s target %s kind %s already pending: %s",
			rec.PlanID, rec.TargetID, rec.Kind, stored.ID)
	}

	return stored, created, nil
}

// Respond applies a user response to a pending recommendation.
func (e *Engine) Respond(
	ctx context.Context,
	id string,
	response Status,
	notes string,
	now time.Time,
) (_ *Recommendation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recommendation.engine.respond")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))
	span.SetAttributes(attribute.String("response", string(response)))

	switch response {
	case StatusAccepted, StatusModified, StatusDismissed:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidResponse, response)
	}

	existing, err := e.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get recommendation: %w", err)
	}
	if existing.Status.Terminal() {
		return nil, fmt.Errorf("%w: %s is %s", ErrAlreadyResponded, id, existing.Status)
	}

	updated, err := e.repo.UpdateStatus(ctx, id, response, notes, now)
	if err != nil {
		return nil, fmt.Errorf("update recommendation status: %w", err)
	}
	return updated, nil
}

// ListPending returns the open recommendations for a plan.
func (e *Engine) ListPending(ctx context.Context, planID string) (_ []Recommendation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recommendation.engine.listpending")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	recs, err := e.repo.ListPending(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("list pending recommendations: %w", err)
	}
	return recs, nil
}

// ExpirePending marks every pending recommendation past its expiry as
// expired and returns how many were swept.
func (e *Engine) ExpirePending(ctx context.Context, now time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recommendation.engine.expirepending")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	expired, err := e.repo.ExpirePending(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("expire pending recommendations: %w", err)
	}
	if expired > 0 {
		e.metrics.CounterExpiredSweeps.Add(float64(expired))
		log.Debugf("expired %d pending recommendations", expired)
	}
	return expired, nil
}

package deload

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
	ErrTriggerNotFound  = errors.New("deload trigger not found")
	ErrAlreadyResponded = errors.New("deload trigger already responded to")
	ErrInvalidResponse  = errors.New("invalid deload trigger response")
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=deload_test

type triggersRepo interface {
	// Pending returns the user's pending trigger, or nil when there is none.
	Pending(ctx context.Context, userID string) (*Trigger, error)
	Insert(ctx context.Context, trigger Trigger) (*Trigger, error)
	UpdateResponse(ctx context.Context, id string, response Response, respondedAt time.Time) (*Trigger, error)
	Get(ctx context.Context, id string) (*Trigger, error)
	// LastAcceptedAt returns when the user last accepted a deload, nil if never.
	LastAcceptedAt(ctx context.Context, userID string) (*time.Time, error)
}

type Service struct {
	repo     triggersRepo
	detector *Detector
	metrics  *metrics.Manager
}

func NewService(repo triggersRepo, detector *Detector, metrics *metrics.Manager) *Service {
	return &Service{
		repo:     repo,
		detector: detector,
		metrics:  metrics,
	}
}

// Evaluate runs detection for the user. A pending trigger always wins: no
// second one is created while it is open, and it is what gets returned.
func (s *Service) Evaluate(
	ctx context.Context,
	userID, planID string,
	in Inputs,
	now time.Time,
) (_ *Trigger, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.deload.evaluate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	pending, err := s.repo.Pending(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get pending deload trigger: %w", err)
	}
	if pending != nil {
		return pending, nil
	}

	proposal := s.detector.Detect(in)
	if proposal == nil {
		return nil, nil
	}

	trigger := Trigger{
		ID:              uuid.NewString(),
		UserID:          userID,
		PlanID:          planID,
		PrimarySignal:   proposal.PrimarySignal,
		Signals:         proposal.Signals,
		Severity:        proposal.Severity,
		RecommendedType: proposal.RecommendedType,
		DurationDays:    proposal.DurationDays,
		UserResponse:    ResponsePending,
		CreatedAt:       now,
	}

	inserted, err := s.repo.Insert(ctx, trigger)
	if err != nil {
		return nil, fmt.Errorf("insert deload trigger: %w", err)
	}

	s.metrics.CounterDeloadTriggers.WithLabelValues(string(inserted.Severity)).Inc()
	log.Debugf("deload trigger %s [%s/%s] created for user %s",
		inserted.ID, inserted.Severity, inserted.RecommendedType, userID)

	return inserted, nil
}

// Respond applies the user's response. Accepting makes this trigger the
// anchor for future days-since-last-deload computations.
func (s *Service) Respond(
	ctx context.Context,
	id string,
	response Response,
	now time.Time,
) (_ *Trigger, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.deload.respond")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))
	span.SetAttributes(attribute.String("response", string(response)))

	switch response {
	case ResponseAccepted, ResponseModified, ResponseDismissed:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidResponse, response)
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get deload trigger: %w", err)
	}
	if existing.UserResponse != ResponsePending {
		return nil, fmt.Errorf("%w: %s is %s", ErrAlreadyResponded, id, existing.UserResponse)
	}

	updated, err := s.repo.UpdateResponse(ctx, id, response, now)
	if err != nil {
		return nil, fmt.Errorf("update deload trigger response: %w", err)
	}
	return updated, nil
}

// DaysSinceLastDeload computes the anchor input for detection, -1 when the
// user never accepted a deload.
func (s *Service) DaysSinceLastDeload(ctx context.Context, userID string, now time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.deload.dayssincelast")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	lastAccepted, err := s.repo.LastAcceptedAt(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("get last accepted deload: %w", err)
	}
	if lastAccepted == nil {
		return -1, nil
	}
	return int(now.Sub(*lastAccepted).Hours() / 24), nil
}

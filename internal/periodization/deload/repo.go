package deload

import (
	"context"
	"errors"
	"time"

	"github.com/trainforge/periodizer/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Pending(ctx context.Context, userID string) (_ *Trigger, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.deload.pending")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	trigger, err := scanTrigger(r.db.QueryRow(ctx, `
		SELECT id, user_id, plan_id, primary_signal, signals, severity,
			recommended_type, duration_days, user_response, created_at, responded_at
		FROM deload_trigger
		WHERE user_id = $1 AND user_response = 'pending'
		ORDER BY created_at DESC
		LIMIT 1;
	`, userID))
	if errors.Is(err, ErrTriggerNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return trigger, nil
}

func (r *Repo) Insert(ctx context.Context, trigger Trigger) (_ *Trigger, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.deload.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", trigger.UserID))
	span.SetAttributes(attribute.String("severity", string(trigger.Severity)))

	signals := make([]string, 0, len(trigger.Signals))
	for _, s := range trigger.Signals {
		signals = append(signals, string(s))
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO deload_trigger
			(id, user_id, plan_id, primary_signal, signals, severity,
			 recommended_type, duration_days, user_response, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`,
		trigger.ID, trigger.UserID, trigger.PlanID, trigger.PrimarySignal,
		signals, trigger.Severity, trigger.RecommendedType,
		trigger.DurationDays, trigger.UserResponse, trigger.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &trigger, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Trigger, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.deload.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	return scanTrigger(r.db.QueryRow(ctx, `
		SELECT id, user_id, plan_id, primary_signal, signals, severity,
			recommended_type, duration_days, user_response, created_at, responded_at
		FROM deload_trigger
		WHERE id = $1;
	`, id))
}

func (r *Repo) UpdateResponse(
	ctx context.Context,
	id string,
	response Response,
	respondedAt time.Time,
) (_ *Trigger, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.deload.updateresponse")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))
	span.SetAttributes(attribute.String("response", string(response)))

	tag, err := r.db.Exec(ctx, `
		UPDATE deload_trigger
		SET user_response = $1, responded_at = $2
		WHERE id = $3;
	`, response, respondedAt, id)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrTriggerNotFound
	}

	return r.Get(ctx, id)
}

func (r *Repo) LastAcceptedAt(ctx context.Context, userID string) (_ *time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.deload.lastacceptedat")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	var respondedAt time.Time
	err = r.db.QueryRow(ctx, `
		SELECT responded_at FROM deload_trigger
		WHERE user_id = $1 AND user_response = 'accepted'
		ORDER BY responded_at DESC
		LIMIT 1;
	`, userID).Scan(&respondedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &respondedAt, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrigger(row rowScanner) (*Trigger, error) {
	trigger := &Trigger{}
	var signals []string
	err := row.Scan(
		&trigger.ID, &trigger.UserID, &trigger.PlanID, &trigger.PrimarySignal,
		&signals, &trigger.Severity, &trigger.RecommendedType,
		&trigger.DurationDays, &trigger.UserResponse, &trigger.CreatedAt,
		&trigger.RespondedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTriggerNotFound
	}
	if err != nil {
		return nil, err
	}

	trigger.Signals = make([]Signal, 0, len(signals))
	for _, s := range signals {
		trigger.Signals = append(trigger.Signals, Signal(s))
	}

	return trigger, nil
}

package recommendation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
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

// InsertIfNoPending is the dedup write path. The pending lookup and the
// insert run in one transaction with the existing row locked, and the
// partial unique index on (plan_id, target_id, kind) WHERE status='pending'
// backstops it against writers outside this code path.
func (r *Repo) InsertIfNoPending(
	ctx context.Context,
	rec Recommendation,
) (_ *Recommendation, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recommendation.insertifnopending")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan_id", rec.PlanID))
	span.SetAttributes(attribute.String("target_id", rec.TargetID))
	span.SetAttributes(attribute.String("kind", rec.Kind.String()))

	triggerJSON, err := json.Marshal(rec.Trigger)
	if err != nil {
		return nil, false, fmt.Errorf("marshal trigger data: %w", err)
	}
	proposedJSON, err := json.Marshal(rec.Proposed)
	if err != nil {
		return nil, false, fmt.Errorf("marshal proposed changes: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var existingID string
	err = tx.QueryRow(ctx, `
		SELECT id FROM recommendation
		WHERE plan_id = $1 AND target_id = $2 AND kind = $3 AND status = 'pending'
		FOR UPDATE;
	`, rec.PlanID, rec.TargetID, rec.Kind).Scan(&existingID)
	if err == nil {
		existing, getErr := r.getTx(ctx, tx, existingID)
		if getErr != nil {
			err = getErr
			return nil, false, err
		}
		return existing, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO recommendation
			(id, user_id, plan_id, target_id, kind, scope, trigger_data, proposed_changes,
			 reasoning, confidence, priority, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`,
		rec.ID, rec.UserID, rec.PlanID, rec.TargetID, rec.Kind, rec.Scope,
		triggerJSON, proposedJSON, rec.Reasoning, rec.Confidence, rec.Priority,
		rec.Status, rec.CreatedAt, rec.ExpiresAt,
	)
	if err != nil {
		return nil, false, err
	}

	return &rec, true, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Recommendation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recommendation.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	return scanRecommendation(r.db.QueryRow(ctx, `
		SELECT id, user_id, plan_id, target_id, kind, scope, trigger_data, proposed_changes,
			reasoning, confidence, priority, status, created_at, expires_at, responded_at, notes
		FROM recommendation
		WHERE id = $1;
	`, id))
}

func (r *Repo) getTx(ctx context.Context, tx pgx.Tx, id string) (*Recommendation, error) {
	return scanRecommendation(tx.QueryRow(ctx, `
		SELECT id, user_id, plan_id, target_id, kind, scope, trigger_data, proposed_changes,
			reasoning, confidence, priority, status, created_at, expires_at, responded_at, notes
		FROM recommendation
		WHERE id = $1;
	`, id))
}

func (r *Repo) UpdateStatus(
	ctx context.Context,
	id string,
	status Status,
	notes string,
	respondedAt time.Time,
) (_ *Recommendation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recommendation.updatestatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))
	span.SetAttributes(attribute.String("status", string(status)))

	tag, err := r.db.Exec(ctx, `
		UPDATE recommendation
		SET status = $1, notes = $2, responded_at = $3
		WHERE id = $4;
	`, status, notes, respondedAt, id)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrRecommendationNotFound
	}

	return r.Get(ctx, id)
}

func (r *Repo) ListPending(ctx context.Context, planID string) (_ []Recommendation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recommendation.listpending")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan_id", planID))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, plan_id, target_id, kind, scope, trigger_data, proposed_changes,
			reasoning, confidence, priority, status, created_at, expires_at, responded_at, notes
		FROM recommendation
		WHERE plan_id = $1 AND status = 'pending'
		ORDER BY priority ASC, created_at DESC;
	`, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	recs := make([]Recommendation, 0)
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}

	return recs, nil
}

func (r *Repo) ExpirePending(ctx context.Context, now time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recommendation.expirepending")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE recommendation
		SET status = 'expired'
		WHERE status = 'pending' AND expires_at <= $1;
	`, now)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecommendation(row rowScanner) (*Recommendation, error) {
	rec := &Recommendation{}
	var triggerJSON, proposedJSON []byte
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.PlanID, &rec.TargetID, &rec.Kind, &rec.Scope,
		&triggerJSON, &proposedJSON, &rec.Reasoning, &rec.Confidence, &rec.Priority,
		&rec.Status, &rec.CreatedAt, &rec.ExpiresAt, &rec.RespondedAt, &rec.Notes,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRecommendationNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(triggerJSON, &rec.Trigger); err != nil {
		return nil, fmt.Errorf("unmarshal trigger data: %w", err)
	}
	if err := json.Unmarshal(proposedJSON, &rec.Proposed); err != nil {
		return nil, fmt.Errorf("unmarshal proposed changes: %w", err)
	}

	return rec, nil
}

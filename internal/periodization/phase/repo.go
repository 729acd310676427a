package phase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trainforge/periodizer/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrPhaseNotFound = errors.New("phase not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Current returns the phase of the plan that covers now.
func (r *Repo) Current(ctx context.Context, planID string, now time.Time) (_ *Phase, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.phase.current")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan_id", planID))

	p := &Phase{}
	err = r.db.QueryRow(ctx, `
		SELECT id, plan_id, type, start_date, end_date, original_end_date
		FROM phase
		WHERE plan_id = $1 AND start_date <= $2 AND end_date >= $2
		ORDER BY start_date DESC
		LIMIT 1;
	`, planID, now).Scan(
		&p.ID, &p.PlanID, &p.Type, &p.StartDate, &p.EndDate, &p.OriginalEndDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPhaseNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns a phase by id.
func (r *Repo) Get(ctx context.Context, phaseID string) (_ *Phase, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.phase.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("phase_id", phaseID))

	p := &Phase{}
	err = r.db.QueryRow(ctx, `
		SELECT id, plan_id, type, start_date, end_date, original_end_date
		FROM phase
		WHERE id = $1;
	`, phaseID).Scan(
		&p.ID, &p.PlanID, &p.Type, &p.StartDate, &p.EndDate, &p.OriginalEndDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPhaseNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateEndDate moves the end date of a phase. The original end date is
// deliberately untouched, it preserves what the plan author intended.
func (r *Repo) UpdateEndDate(ctx context.Context, phaseID string, endDate time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.phase.updateenddate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("phase_id", phaseID))

	tag, err := r.db.Exec(ctx, `
		UPDATE phase SET end_date = $1 WHERE id = $2;
	`, endDate, phaseID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPhaseNotFound
	}
	return nil
}

// InsertAfter inserts a new phase right after the given one and shifts every
// later phase of the plan back by its duration, all in one transaction.
func (r *Repo) InsertAfter(ctx context.Context, after Phase, inserted Phase) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.phase.insertafter")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("after_phase_id", after.ID))

	durationDays := int(inserted.EndDate.Sub(inserted.StartDate).Hours() / 24)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
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

	_, err = tx.Exec(ctx, `
		UPDATE phase
		SET start_date = start_date + $1 * INTERVAL '1 day',
			end_date = end_date + $1 * INTERVAL '1 day',
			original_end_date = original_end_date + $1 * INTERVAL '1 day'
		WHERE plan_id = $2 AND start_date > $3;
	`, durationDays, after.PlanID, after.EndDate)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO phase (id, plan_id, type, start_date, end_date, original_end_date)
		VALUES ($1, $2, $3, $4, $5, $6);
	`,
		inserted.ID, inserted.PlanID, inserted.Type,
		inserted.StartDate, inserted.EndDate, inserted.OriginalEndDate,
	)
	return err
}

// StrengthHistory returns the estimated-1RM observations per exercise for a
// user since the given date.
func (r *Repo) StrengthHistory(
	ctx context.Context,
	userID string,
	since time.Time,
) (_ map[string][]StrengthObservation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.phase.strengthhistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT exercise_id, date, estimated_1rm
		FROM strength_observation
		WHERE user_id = $1 AND date >= $2
		ORDER BY date ASC;
	`, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	history := make(map[string][]StrengthObservation)
	for rows.Next() {
		var o StrengthObservation
		if err := rows.Scan(&o.ExerciseID, &o.Date, &o.Estimated1RM); err != nil {
			return nil, err
		}
		history[o.ExerciseID] = append(history[o.ExerciseID], o)
	}

	return history, nil
}

// Targets returns the strength targets attached to a phase.
func (r *Repo) Targets(ctx context.Context, phaseID string) (_ []Target, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.phase.targets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("phase_id", phaseID))

	rows, err := r.db.Query(ctx, `
		SELECT exercise_id, start_1rm, target_1rm
		FROM phase_target
		WHERE phase_id = $1;
	`, phaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	targets := make([]Target, 0)
	for rows.Next() {
		var t Target
		if err := rows.Scan(&t.ExerciseID, &t.Start1RM, &t.Target1RM); err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}

	return targets, nil
}

// UpcomingEvents returns the user's events on or after now, soonest first.
func (r *Repo) UpcomingEvents(ctx context.Context, userID string, now time.Time) (_ []Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.phase.upcomingevents")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT name, event_date, priority, event_type
		FROM upcoming_event
		WHERE user_id = $1 AND event_date >= $2
		ORDER BY event_date ASC;
	`, userID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	events := make([]Event, 0)
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Name, &e.EventDate, &e.Priority, &e.EventType); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, nil
}

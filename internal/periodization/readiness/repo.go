package readiness

import (
	"context"
	"time"

	"github.com/trainforge/periodizer/internal/telemetry/tracing"

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

// Upsert stores the assessment for its day, replacing an earlier one for the
// same (user, date) if present. This is the write API the ingesting app calls;
// the evaluator itself only reads through ListWindow.
func (r *Repo) Upsert(ctx context.Context, userID string, a Assessment) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.readiness.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	_, err = r.db.Exec(ctx, `
		INSERT INTO readiness_assessment
			(user_id, date, subjective, sleep_quality, sleep_hours, hrv, resting_hr, soreness)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, date) DO UPDATE SET
			subjective = EXCLUDED.subjective,
			sleep_quality = EXCLUDED.sleep_quality,
			sleep_hours = EXCLUDED.sleep_hours,
			hrv = EXCLUDED.hrv,
			resting_hr = EXCLUDED.resting_hr,
			soreness = EXCLUDED.soreness;
	`,
		userID, a.Day(),
		a.Subjective, a.SleepQuality, a.SleepHours, a.HRV, a.RestingHR, a.Soreness,
	)
	return err
}

// ListWindow returns the assessments for a user between from and to
// (inclusive), ordered by date ascending.
func (r *Repo) ListWindow(
	ctx context.Context,
	userID string,
	from, to time.Time,
) (_ []Assessment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.readiness.listwindow")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT date, subjective, sleep_quality, sleep_hours, hrv, resting_hr, soreness
		FROM readiness_assessment
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC;
	`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	assessments := make([]Assessment, 0)
	for rows.Next() {
		var a Assessment
		if err := rows.Scan(
			&a.Date, &a.Subjective, &a.SleepQuality, &a.SleepHours,
			&a.HRV, &a.RestingHR, &a.Soreness,
		); err != nil {
			return nil, err
		}
		assessments = append(assessments, a)
	}

	return assessments, nil
}

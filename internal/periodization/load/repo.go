package load

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

// ListWindow returns the daily training records for a user between from and to
// (inclusive), ordered by date ascending.
func (r *Repo) ListWindow(
	ctx context.Context,
	userID string,
	from, to time.Time,
) (_ []DailyTrainingRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.load.listwindow")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("from", from.String()))
	span.SetAttributes(attribute.String("to", to.String()))

	rows, err := r.db.Query(ctx, `
		SELECT date, actual_tss, planned_tss, duration_minutes
		FROM daily_training_record
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

	records := make([]DailyTrainingRecord, 0)
	for rows.Next() {
		var rec DailyTrainingRecord
		if err := rows.Scan(&rec.Date, &rec.ActualTSS, &rec.PlannedTSS, &rec.DurationMinutes); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

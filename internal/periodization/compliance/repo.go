package compliance

import (
	"context"

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

// ListRecent returns the most recent weekly windows for a plan, joined with
// the actual aggregates logged for each week, oldest first.
func (r *Repo) ListRecent(
	ctx context.Context,
	planID string,
	weeks int,
) (_ []Window, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.compliance.listrecent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan_id", planID))
	span.SetAttributes(attribute.Int("weeks", weeks))

	rows, err := r.db.Query(ctx, `
		SELECT week_start, target_hours, target_tss, actual_hours, actual_tss
		FROM (
			SELECT
				wt.week_start,
				wt.target_hours,
				wt.target_tss,
				COALESCE(SUM(dtr.duration_minutes) / 60.0, 0) AS actual_hours,
				COALESCE(SUM(dtr.actual_tss), 0) AS actual_tss
			FROM weekly_target wt
			LEFT JOIN daily_training_record dtr
				ON dtr.user_id = wt.user_id
				AND dtr.date >= wt.week_start
				AND dtr.date < wt.week_start + INTERVAL '7 days'
			WHERE wt.plan_id = $1
			GROUP BY wt.week_start, wt.target_hours, wt.target_tss
			ORDER BY wt.week_start DESC
			LIMIT $2
		) recent
		ORDER BY week_start ASC;
	`, planID, weeks)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	windows := make([]Window, 0)
	for rows.Next() {
		var w Window
		if err := rows.Scan(
			&w.WeekStart, &w.TargetHours, &w.TargetTSS, &w.ActualHours, &w.ActualTSS,
		); err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}

	return windows, nil
}

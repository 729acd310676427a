package evaluation

import (
	"context"

	"github.com/trainforge/periodizer/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Plan is the minimal plan identity the scheduled runs iterate over.
type Plan struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
}

type PlansRepo struct {
	db *pgxpool.Pool
}

func NewPlansRepo(db *pgxpool.Pool) *PlansRepo {
	return &PlansRepo{
		db: db,
	}
}

// ListActive returns the plans whose owners still train on them.
func (r *PlansRepo) ListActive(ctx context.Context) (_ []Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.listactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id FROM training_plan
		WHERE active = TRUE
		ORDER BY id;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	plans := make([]Plan, 0)
	for rows.Next() {
		var p Plan
		if err := rows.Scan(&p.ID, &p.UserID); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}

	return plans, nil
}

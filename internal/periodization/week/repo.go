package week

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

// ScheduledType returns what kind of week the plan has scheduled for the
// given week start. Weeks with no explicit row are standard weeks.
func (r *Repo) ScheduledType(
	ctx context.Context,
	planID string,
	weekStart time.Time,
) (_ Type, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.week.scheduledtype")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan_id", planID))

	var weekType string
	err = r.db.QueryRow(ctx, `
		SELECT week_type FROM plan_week
		WHERE plan_id = $1 AND week_start = $2;
	`, planID, weekStart).Scan(&weekType)
	if errors.Is(err, pgx.ErrNoRows) {
		return TypeStandard, nil
	}
	if err != nil {
		return "", err
	}
	return Type(weekType), nil
}

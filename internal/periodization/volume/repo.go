package volume

import (
	"context"
	"encoding/json"
	"time"

	"github.com/trainforge/periodizer/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	landmarksCacheSize = 10 * 1024 * 1024
	landmarksCacheTTL  = 15 * time.Minute
)

// Repo reads volume landmarks and weekly set counts. Landmarks are long-lived
// user configuration, so they sit behind a small in-process cache.
type Repo struct {
	db    *pgxpool.Pool
	cache *freecache.Cache
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db:    db,
		cache: freecache.NewCache(landmarksCacheSize),
	}
}

type landmarksRow struct {
	Landmarks             []Landmarks `json:"landmarks"`
	TrainingAgeMultiplier float64     `json:"trainingAgeMultiplier"`
}

// GetLandmarks returns the user's landmarks with the training-age multiplier
// already applied.
func (r *Repo) GetLandmarks(ctx context.Context, userID string) (_ []Landmarks, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.volume.getlandmarks")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	cacheKey := []byte("landmarks::" + userID)
	if cached, err := r.cache.Get(cacheKey); err == nil {
		var row landmarksRow
		if err := json.Unmarshal(cached, &row); err == nil {
			span.SetAttributes(attribute.Bool("cache_hit", true))
			return scaledLandmarks(row), nil
		}
		log.Errorf("failed to unmarshal cached landmarks for user %s: %s", userID, err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT vl.muscle_group, vl.mev, vl.mav_low, vl.mav_high, vl.mrv, up.training_age_multiplier
		FROM volume_landmarks vl
		JOIN user_profile up ON up.user_id = vl.user_id
		WHERE vl.user_id = $1
		ORDER BY vl.muscle_group ASC;
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	row := landmarksRow{TrainingAgeMultiplier: 1}
	for rows.Next() {
		var lm Landmarks
		if err := rows.Scan(&lm.MuscleGroup, &lm.MEV, &lm.MAVLow, &lm.MAVHigh, &lm.MRV, &row.TrainingAgeMultiplier); err != nil {
			return nil, err
		}
		row.Landmarks = append(row.Landmarks, lm)
	}

	if cacheBytes, err := json.Marshal(row); err == nil {
		if err := r.cache.Set(cacheKey, cacheBytes, int(landmarksCacheTTL.Seconds())); err != nil {
			log.Errorf("failed to cache landmarks for user %s: %s", userID, err)
		}
	}

	return scaledLandmarks(row), nil
}

func scaledLandmarks(row landmarksRow) []Landmarks {
	scaled := make([]Landmarks, 0, len(row.Landmarks))
	for _, lm := range row.Landmarks {
		scaled = append(scaled, lm.Scaled(row.TrainingAgeMultiplier))
	}
	return scaled
}

// WeeklySets returns the per-muscle-group set counts for the 7 days starting
// at weekStart.
func (r *Repo) WeeklySets(
	ctx context.Context,
	userID string,
	weekStart time.Time,
) (_ map[string]float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.volume.weeklysets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("week_start", weekStart.String()))

	rows, err := r.db.Query(ctx, `
		SELECT muscle_group, COUNT(*)
		FROM exercise_set
		WHERE user_id = $1
			AND performed_at >= $2
			AND performed_at < $2 + INTERVAL '7 days'
		GROUP BY muscle_group;
	`, userID, weekStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	sets := make(map[string]float64)
	for rows.Next() {
		var group string
		var count float64
		if err := rows.Scan(&group, &count); err != nil {
			return nil, err
		}
		sets[group] = count
	}

	return sets, nil
}

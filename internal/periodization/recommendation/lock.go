package recommendation

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrEvaluationInProgress = errors.New("another evaluation holds the plan lock")

const planLockKeyPrefix = "periodizer::eval-lock::"

// PlanLocker serializes evaluations per plan. The recommendation write path
// is check-then-insert, so two concurrent evaluations of the same plan must
// not interleave; the lock is a redis SET NX with a TTL as the crash
// backstop.
type PlanLocker struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewPlanLocker(redisClient *redis.Client, ttl time.Duration) *PlanLocker {
	return &PlanLocker{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Acquire takes the lock for the plan and returns a release func, or
// ErrEvaluationInProgress when another holder has it. Release only deletes
// the key if it still carries this acquisition's token, a lock that expired
// and got re-acquired elsewhere is left alone.
func (l *PlanLocker) Acquire(ctx context.Context, planID string) (release func(), err error) {
	key := planLockKeyPrefix + planID
	token := uuid.NewString()

	ok, err := l.redisClient.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrEvaluationInProgress
	}

	return func() {
		// lua compare-and-delete so an expired lock is never stolen back
		script := redis.NewScript(`
			if redis.call("get", KEYS[1]) == ARGV[1] then
				return redis.call("del", KEYS[1])
			end
			return 0
		`)
		if err := script.Run(context.Background(), l.redisClient, []string{key}, token).Err(); err != nil {
			log.Errorf("release plan lock %s: %s", planID, err)
		}
	}, nil
}

package lock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker holds per-key leases in Redis so that several service instances serialize on the
// same loan. A lease expires after ttl even if its holder dies.
type RedisLocker struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	retry  time.Duration
	log    *logrus.Logger
}

// NewRedisLocker creates a locker storing leases under prefix.
func NewRedisLocker(client redis.UniversalClient, prefix string, ttl time.Duration, log *logrus.Logger) *RedisLocker {
	trimmed := strings.TrimSuffix(strings.TrimSpace(prefix), ":")
	if trimmed == "" {
		trimmed = "loans:lock"
	}
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &RedisLocker{
		client: client,
		prefix: trimmed,
		ttl:    ttl,
		retry:  50 * time.Millisecond,
		log:    log,
	}
}

// Lock polls until the lease for key is acquired or ctx is done.
func (r *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	leaseKey := fmt.Sprintf("%s:%s", r.prefix, key)
	token := uuid.NewString()

	for {
		ok, err := r.client.SetNX(ctx, leaseKey, token, r.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			return func() {
				if err := releaseScript.Run(context.Background(), r.client, []string{leaseKey}, token).Err(); err != nil {
					r.log.Warnf("Failed to release lock %s: %v", key, err)
				}
			}, nil
		}

		timer := time.NewTimer(r.retry)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

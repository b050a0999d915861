package lock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"

	"partnerauth/internal/domain/service"
	"partnerauth/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	rotationKeyPrefix = "partnerauth:rotation:"
	retryInterval     = 25 * time.Millisecond
	releaseTimeout    = 2 * time.Second
)

// ErrLockTimeout is returned when the lock is still held by someone else after the wait bound.
var ErrLockTimeout = errors.New("rotation lock wait timed out")

// releaseScript deletes the key only while it still carries the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker holds rotation locks in redis so every replica of the service shares them.
type RedisLocker struct {
	client redis.UniversalClient
	ttl    time.Duration // lock expiry if the holder dies
	wait   time.Duration // longest time Lock keeps retrying
	logger *slog.Logger
}

var _ service.RotationLocker = (*RedisLocker)(nil)

// NewRedisLocker creates a RedisLocker on an existing client.
func NewRedisLocker(client redis.UniversalClient, ttl, wait time.Duration, logger *slog.Logger) *RedisLocker {
	return &RedisLocker{
		client: client,
		ttl:    ttl,
		wait:   wait,
		logger: logger,
	}
}

// Lock retries SET NX until it owns the key, the wait bound passes or ctx ends.
func (l *RedisLocker) Lock(ctx context.Context, userID uuid.UUID) (func(), error) {
	key := rotationKey(userID)
	token, err := newLockToken()
	if err != nil {
		return nil, err
	}

	waitCtx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()

	for {
		acquired, err := l.client.SetNX(waitCtx, key, token, l.ttl).Result()
		if err != nil && waitCtx.Err() == nil {
			return nil, errors.Wrap(err, "failed to acquire rotation lock")
		}
		if acquired {
			return l.unlockFunc(key, token), nil
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return nil, errors.Wrap(ctx.Err(), "waiting for rotation lock")
			}

			return nil, errors.WithStack(ErrLockTimeout)
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) unlockFunc(key, token string) func() {
	var once sync.Once

	return func() {
		once.Do(func() {
			// The request context may already be cancelled, the key must still be freed.
			ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
			defer cancel()

			if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
				l.logger.Warn("Failed to release rotation lock", slog.String("key", key), slog.Any("error", err))
			}
		})
	}
}

func rotationKey(userID uuid.UUID) string {
	return rotationKeyPrefix + userID.String()
}

func newLockToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate lock token")
	}

	return hex.EncodeToString(buf), nil
}

package lock

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisLocker(t *testing.T, ttl, wait time.Duration) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRedisLocker(client, ttl, wait, logger), mr
}

func TestRedisLocker_LockAndUnlock(t *testing.T) {
	locker, mr := newTestRedisLocker(t, 10*time.Second, time.Second)
	userID := uuid.New()

	unlock, err := locker.Lock(context.Background(), userID)
	require.NoError(t, err)

	key := rotationKey(userID)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 10*time.Second, mr.TTL(key))

	unlock()
	assert.False(t, mr.Exists(key))
}

func TestRedisLocker_TimesOutWhileHeld(t *testing.T) {
	locker, _ := newTestRedisLocker(t, 10*time.Second, 80*time.Millisecond)
	userID := uuid.New()

	unlock, err := locker.Lock(context.Background(), userID)
	require.NoError(t, err)
	defer unlock()

	_, err = locker.Lock(context.Background(), userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLockTimeout)
}

func TestRedisLocker_WaiterAcquiresAfterRelease(t *testing.T) {
	locker, _ := newTestRedisLocker(t, 10*time.Second, 2*time.Second)
	userID := uuid.New()

	unlock, err := locker.Lock(context.Background(), userID)
	require.NoError(t, err)

	acquired := make(chan error, 1)
	go func() {
		second, err := locker.Lock(context.Background(), userID)
		if err == nil {
			second()
		}
		acquired <- err
	}()

	time.Sleep(60 * time.Millisecond)
	unlock()

	select {
	case err := <-acquired:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("waiter never acquired the lock")
	}
}

func TestRedisLocker_StaleUnlockKeepsNewerHolder(t *testing.T) {
	locker, mr := newTestRedisLocker(t, time.Second, 200*time.Millisecond)
	userID := uuid.New()

	staleUnlock, err := locker.Lock(context.Background(), userID)
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	freshUnlock, err := locker.Lock(context.Background(), userID)
	require.NoError(t, err)

	staleUnlock()
	assert.True(t, mr.Exists(rotationKey(userID)))

	freshUnlock()
	assert.False(t, mr.Exists(rotationKey(userID)))
}

func TestRedisLocker_ContextCancelled(t *testing.T) {
	locker, _ := newTestRedisLocker(t, 10*time.Second, 5*time.Second)
	userID := uuid.New()

	unlock, err := locker.Lock(context.Background(), userID)
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(30*time.Millisecond, cancel)

	_, err = locker.Lock(ctx, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRedisLocker_ServerDown(t *testing.T) {
	locker, mr := newTestRedisLocker(t, 10*time.Second, time.Second)
	mr.Close()

	_, err := locker.Lock(context.Background(), uuid.New())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLockTimeout)
}

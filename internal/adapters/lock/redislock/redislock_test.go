package redislock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *Locker) {
	mr := miniredis.RunT(t)
	client, err := NewClient(context.Background(), Options{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return mr, New(client)
}

func TestLocker_OnlyFirstCallerWins(t *testing.T) {
	mr, locker := setupTestRedis(t)
	ctx := context.Background()

	ok, err := locker.TryLock(ctx, "daily-reset:2025-03-10", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = locker.TryLock(ctx, "daily-reset:2025-03-10", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)

	// otra clave es otro lock
	ok, err = locker.TryLock(ctx, "daily-reset:2025-03-11", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.True(t, mr.Exists(keyPrefix+"daily-reset:2025-03-10"))
}

func TestLocker_ExpiresWithTTL(t *testing.T) {
	mr, locker := setupTestRedis(t)
	ctx := context.Background()

	ok, err := locker.TryLock(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)

	ok, err = locker.TryLock(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLocker_ServerDown(t *testing.T) {
	mr, locker := setupTestRedis(t)
	mr.Close()

	_, err := locker.TryLock(context.Background(), "k", time.Minute)
	assert.Error(t, err)
}

func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewClient(context.Background(), Options{Addr: addr})
	assert.Error(t, err)
}

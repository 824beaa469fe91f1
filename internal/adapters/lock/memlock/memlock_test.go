package memlock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker(t *testing.T) {
	l := New()
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	ok, err := l.TryLock(ctx, "a", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = l.TryLock(ctx, "a", time.Hour)
	assert.False(t, ok)

	ok, _ = l.TryLock(ctx, "b", time.Hour)
	assert.True(t, ok)

	now = now.Add(time.Hour)
	ok, _ = l.TryLock(ctx, "a", time.Hour)
	assert.True(t, ok)
}

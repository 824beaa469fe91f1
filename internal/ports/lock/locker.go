package lock

import (
	"context"
	"time"
)

// Locker toma una clave por ttl. Sin unlock explícito: la clave vence sola.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// Package memlock es el Locker de una sola instancia (sin redis).
package memlock

import (
	"context"
	"sync"
	"time"
)

type Locker struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

func New() *Locker {
	return &Locker{expires: make(map[string]time.Time), now: time.Now}
}

func (l *Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if exp, ok := l.expires[key]; ok && now.Before(exp) {
		return false, nil
	}
	l.expires[key] = now.Add(ttl)

	// limpieza de claves vencidas
	for k, exp := range l.expires {
		if !now.Before(exp) {
			delete(l.expires, k)
		}
	}
	return true, nil
}

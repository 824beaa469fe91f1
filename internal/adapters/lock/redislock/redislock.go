// Package redislock implementa un lock por clave con SET NX + TTL.
// No hay unlock: la clave vence sola, alcanza para "una vez por día".
package redislock

import (
	"context"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const keyPrefix = "tailtime:lock:"

type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient crea el cliente y verifica la conexión.
func NewClient(ctx context.Context, opts Options) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "redis: ping %s", opts.Addr)
	}
	return client, nil
}

type Locker struct {
	client *redis.Client
	owner  string
}

func New(client *redis.Client) *Locker {
	owner, _ := os.Hostname()
	if owner == "" {
		owner = "tailtime"
	}
	return &Locker{client: client, owner: owner}
}

// TryLock devuelve true si esta instancia tomó la clave.
func (l *Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, keyPrefix+key, l.owner, ttl).Result()
	if err != nil {
		return false, errors.Wrapf(err, "redis: setnx %s", key)
	}
	return ok, nil
}

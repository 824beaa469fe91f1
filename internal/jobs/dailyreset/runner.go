// Package dailyreset pone en cero los contadores diarios de las mascotas
// en cada medianoche de la zona configurada.
package dailyreset

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tailtime/internal/ports/lock"
)

const lockTTL = 23 * time.Hour

// Resetter lo implementa *pets.Service.
type Resetter interface {
	ResetDaily(ctx context.Context) (int64, error)
}

type Runner struct {
	resetter Resetter
	locker   lock.Locker
	log      *zap.Logger
	loc      *time.Location

	now   func() time.Time
	after func(time.Duration) <-chan time.Time
}

func New(resetter Resetter, locker lock.Locker, log *zap.Logger, loc *time.Location) *Runner {
	if loc == nil {
		loc = time.Local
	}
	return &Runner{
		resetter: resetter,
		locker:   locker,
		log:      log,
		loc:      loc,
		now:      time.Now,
		after:    time.After,
	}
}

// Run bloquea hasta que ctx se cancela.
func (r *Runner) Run(ctx context.Context) {
	r.log.Info("daily reset: scheduler started", zap.String("timezone", r.loc.String()))

	for {
		next := NextMidnight(r.now(), r.loc)
		r.log.Debug("daily reset: next run", zap.Time("at", next))

		select {
		case <-ctx.Done():
			r.log.Info("daily reset: scheduler stopped")
			return
		case <-r.after(next.Sub(r.now())):
			if _, err := r.RunOnce(ctx, next); err != nil {
				r.log.Error("daily reset failed", zap.Error(err))
			}
		}
	}
}

// RunOnce resetea el día de "day" si ninguna otra instancia lo hizo.
// Devuelve false si el lock ya estaba tomado.
func (r *Runner) RunOnce(ctx context.Context, day time.Time) (bool, error) {
	key := "daily-reset:" + day.In(r.loc).Format("2006-01-02")

	ok, err := r.locker.TryLock(ctx, key, lockTTL)
	if err != nil {
		return false, err
	}
	if !ok {
		r.log.Debug("daily reset: already done by another instance", zap.String("key", key))
		return false, nil
	}

	n, err := r.resetter.ResetDaily(ctx)
	if err != nil {
		return false, err
	}
	r.log.Info("daily reset: counters cleared", zap.String("key", key), zap.Int64("pets", n))
	return true, nil
}

// NextMidnight es el próximo 00:00 estrictamente posterior a now en loc.
func NextMidnight(now time.Time, loc *time.Location) time.Time {
	t := now.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, loc)
}

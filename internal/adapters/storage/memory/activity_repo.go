package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"tailtime/internal/domain/activity"
)

type activityRepo struct {
	mu     sync.RWMutex
	byUser map[string][]activity.Log
}

func NewActivityRepo() activity.Repository {
	return &activityRepo{
		byUser: make(map[string][]activity.Log),
	}
}

func (r *activityRepo) Append(ctx context.Context, l activity.Log) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.ID == "" {
		return errors.New("activity log id required")
	}
	r.byUser[l.UserID] = append(r.byUser[l.UserID], l)
	return nil
}

func (r *activityRepo) List(ctx context.Context, userID string, f activity.Filter) ([]activity.Log, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]activity.Log, 0)
	for _, l := range r.byUser[userID] {
		if f.Type != "" && l.Type != f.Type {
			continue
		}
		if !f.From.IsZero() && l.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && l.Date.After(f.To) {
			continue
		}
		out = append(out, l)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func (r *activityRepo) WeeklyTotals(ctx context.Context, q activity.RollupQuery) ([]activity.DayTotal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totals := make(map[int]float64)
	for _, l := range r.byUser[q.UserID] {
		if l.Type != q.Type || l.Date.Before(q.Since) {
			continue
		}

		day := activity.DayOfWeek(l.Date, q.Location)
		switch q.Metric {
		case activity.MetricDuration:
			totals[day] += l.Duration
		case activity.MetricCount:
			totals[day]++
		default:
			totals[day] += l.Value
		}
	}

	out := make([]activity.DayTotal, 0, len(totals))
	for day, total := range totals {
		out = append(out, activity.DayTotal{DayOfWeek: day, Total: total})
	}
	return out, nil
}

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"tailtime/internal/domain/medical"
)

type medicalRepo struct {
	mu     sync.RWMutex
	byUser map[string][]medical.Record
}

func NewMedicalRepo() medical.Repository {
	return &medicalRepo{
		byUser: make(map[string][]medical.Record),
	}
}

func (r *medicalRepo) Create(ctx context.Context, rec medical.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		return errors.New("medical record id required")
	}
	r.byUser[rec.UserID] = append(r.byUser[rec.UserID], rec)
	return nil
}

func (r *medicalRepo) ListByUser(ctx context.Context, userID string, category medical.Category) ([]medical.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medical.Record, 0)
	for _, rec := range r.byUser[userID] {
		if category != "" && rec.Category != category {
			continue
		}
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateGiven.After(out[j].DateGiven)
	})
	return out, nil
}

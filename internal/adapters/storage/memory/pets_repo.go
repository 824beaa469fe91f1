package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"tailtime/internal/domain/pets"
)

type petRepo struct {
	mu      sync.RWMutex
	byID    map[string]pets.Pet
	byOwner map[string]string // ownerUserID -> petID
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID:    make(map[string]pets.Pet),
		byOwner: make(map[string]string),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet id already exists")
	}
	if _, exists := r.byOwner[p.OwnerUserID]; exists {
		return pets.ErrAlreadyExists
	}

	r.byID[p.ID] = p
	r.byOwner[p.OwnerUserID] = p.ID
	return nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, exists := r.byID[p.ID]
	if !exists {
		return pets.ErrNotFound
	}
	// owner y contadores no se tocan por Update
	p.OwnerUserID = cur.OwnerUserID
	p.Daily = cur.Daily
	p.DailySteps = cur.DailySteps
	r.byID[p.ID] = p
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) GetByOwner(ctx context.Context, ownerUserID string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byOwner[ownerUserID]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *petRepo) IncrementDaily(ctx context.Context, ownerUserID string, delta pets.ActivityCounters) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byOwner[ownerUserID]
	if !ok {
		return pets.ErrNotFound
	}
	p := r.byID[id]
	p.Daily.WalkMinutes += delta.WalkMinutes
	p.Daily.SleepHours += delta.SleepHours
	p.Daily.Meals += delta.Meals
	r.byID[id] = p
	return nil
}

func (r *petRepo) SetDaily(ctx context.Context, ownerUserID string, c pets.ActivityCounters) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byOwner[ownerUserID]
	if !ok {
		return pets.ErrNotFound
	}
	p := r.byID[id]
	p.Daily = c
	r.byID[id] = p
	return nil
}

func (r *petRepo) ResetDaily(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, p := range r.byID {
		p.Daily = pets.ActivityCounters{}
		p.DailySteps = 0
		p.Tasks = pets.Tasks{}
		r.byID[id] = p
	}
	return int64(len(r.byID)), nil
}

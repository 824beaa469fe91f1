package pets

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("pet not found")
	ErrAlreadyExists = errors.New("pet already exists for owner")
)

type Service struct {
	repo   Repository
	photos PhotoStore
	now    func() time.Time
}

// NewService: photos puede ser nil (upload deshabilitado).
func NewService(repo Repository, photos PhotoStore) *Service {
	return &Service{
		repo:   repo,
		photos: photos,
		now:    time.Now,
	}
}

type CreateInput struct {
	Name    string
	Species string
	Breed   string
	Age     float64
	Weight  float64
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Species) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.Age < 0 || in.Weight < 0 {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:          uuid.NewString(),
		OwnerUserID: strings.TrimSpace(ownerUserID),
		Name:        strings.TrimSpace(in.Name),
		Species:     strings.TrimSpace(in.Species),
		Breed:       strings.TrimSpace(in.Breed),
		Age:         in.Age,
		Weight:      in.Weight,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByOwner(ctx context.Context, ownerUserID string) (Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByOwner(ctx, ownerUserID)
}

// UpdateInput: punteros para update parcial, nil = no tocar.
type UpdateInput struct {
	Name    *string
	Species *string
	Breed   *string
	Age     *float64
	Weight  *float64
}

func (s *Service) Update(ctx context.Context, petID string, in UpdateInput) (Pet, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Name = v
	}
	if in.Species != nil {
		v := strings.TrimSpace(*in.Species)
		if v == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Species = v
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Age != nil {
		if *in.Age < 0 {
			return Pet{}, ErrInvalidInput
		}
		p.Age = *in.Age
	}
	if in.Weight != nil {
		if *in.Weight < 0 {
			return Pet{}, ErrInvalidInput
		}
		p.Weight = *in.Weight
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

type TasksInput struct {
	Breakfast   *bool
	MorningWalk *bool
	Dinner      *bool
	Medication  *bool
}

func (s *Service) SetTasks(ctx context.Context, petID string, in TasksInput) (Pet, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}

	if in.Breakfast != nil {
		p.Tasks.Breakfast = *in.Breakfast
	}
	if in.MorningWalk != nil {
		p.Tasks.MorningWalk = *in.MorningWalk
	}
	if in.Dinner != nil {
		p.Tasks.Dinner = *in.Dinner
	}
	if in.Medication != nil {
		p.Tasks.Medication = *in.Medication
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) IncrementDaily(ctx context.Context, ownerUserID string, delta ActivityCounters) error {
	if strings.TrimSpace(ownerUserID) == "" {
		return ErrInvalidInput
	}
	if delta.IsZero() {
		return nil
	}
	return s.repo.IncrementDaily(ctx, ownerUserID, delta)
}

func (s *Service) SetDaily(ctx context.Context, ownerUserID string, c ActivityCounters) error {
	if strings.TrimSpace(ownerUserID) == "" {
		return ErrInvalidInput
	}
	return s.repo.SetDaily(ctx, ownerUserID, c)
}

// ResetDaily devuelve cuántas mascotas se resetearon.
func (s *Service) ResetDaily(ctx context.Context) (int64, error) {
	return s.repo.ResetDaily(ctx)
}

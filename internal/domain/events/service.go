package events

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("Event not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	UserID string
	Title  string
	Date   time.Time
	Type   EventType // vacío = other
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Event, error) {
	if strings.TrimSpace(in.UserID) == "" || strings.TrimSpace(in.Title) == "" {
		return Event{}, ErrInvalidInput
	}
	if in.Date.IsZero() {
		return Event{}, ErrInvalidInput
	}

	typ := in.Type
	if typ == "" {
		typ = EventTypeOther
	}
	if !typ.Valid() {
		return Event{}, ErrInvalidInput
	}

	now := s.now()
	e := Event{
		ID:        uuid.NewString(),
		UserID:    strings.TrimSpace(in.UserID),
		Title:     strings.TrimSpace(in.Title),
		Date:      in.Date,
		Type:      typ,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Event{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Event, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	for _, t := range filter.Types {
		if !t.Valid() {
			return nil, ErrInvalidInput
		}
	}
	return s.repo.ListByUser(ctx, strings.TrimSpace(userID), filter)
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Title       *string
	Date        *time.Time
	Type        *EventType
	IsCompleted *bool
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Event, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return Event{}, err
	}

	if in.Title != nil {
		v := strings.TrimSpace(*in.Title)
		if v == "" {
			return Event{}, ErrInvalidInput
		}
		e.Title = v
	}
	if in.Date != nil {
		if in.Date.IsZero() {
			return Event{}, ErrInvalidInput
		}
		e.Date = *in.Date
	}
	if in.Type != nil {
		if !in.Type.Valid() {
			return Event{}, ErrInvalidInput
		}
		e.Type = *in.Type
	}
	if in.IsCompleted != nil {
		e.IsCompleted = *in.IsCompleted
	}

	e.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

// Delete borra de verdad; ErrNotFound si no existe.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

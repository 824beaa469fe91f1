package medical

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrInvalidInput = errors.New("invalid input")

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
	UserID      string
	Category    Category
	Title       string
	DateGiven   *time.Time // nil = ahora
	NextDueDate *time.Time
	Notes       string
	Value       string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Record, error) {
	if strings.TrimSpace(in.UserID) == "" || strings.TrimSpace(in.Title) == "" {
		return Record{}, ErrInvalidInput
	}
	if !in.Category.Valid() {
		return Record{}, ErrInvalidInput
	}

	now := s.now()
	given := now
	if in.DateGiven != nil && !in.DateGiven.IsZero() {
		given = *in.DateGiven
	}
	if in.NextDueDate != nil && in.NextDueDate.Before(given) {
		return Record{}, ErrInvalidInput
	}

	rec := Record{
		ID:          uuid.NewString(),
		UserID:      strings.TrimSpace(in.UserID),
		Category:    in.Category,
		Title:       strings.TrimSpace(in.Title),
		DateGiven:   given,
		NextDueDate: in.NextDueDate,
		Notes:       strings.TrimSpace(in.Notes),
		Value:       strings.TrimSpace(in.Value),
		CreatedAt:   now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string, category Category) ([]Record, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	if category != "" && !category.Valid() {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByUser(ctx, strings.TrimSpace(userID), category)
}

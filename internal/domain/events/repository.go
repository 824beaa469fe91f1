package events

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, e Event) error
	GetByID(ctx context.Context, id string) (Event, error)
	// ListByUser ordena por Date ascendente.
	ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Event, error)
	Update(ctx context.Context, e Event) error
	Delete(ctx context.Context, id string) error
}

type ListFilter struct {
	Types   []EventType
	From    *time.Time
	To      *time.Time
	Pending bool // solo no completados
	Limit   int  // 0 = sin límite
}

package medical

import "context"

type Repository interface {
	Create(ctx context.Context, r Record) error
	// ListByUser ordena por DateGiven descendente. category vacío = todas.
	ListByUser(ctx context.Context, userID string, category Category) ([]Record, error)
}

package pets

import "context"

type Repository interface {
	// Create falla con ErrAlreadyExists si el owner ya tiene mascota.
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	GetByOwner(ctx context.Context, ownerUserID string) (Pet, error)
	Update(ctx context.Context, p Pet) error

	// IncrementDaily suma delta en una sola operación atómica del store.
	IncrementDaily(ctx context.Context, ownerUserID string, delta ActivityCounters) error
	// SetDaily pisa los contadores derivados (rebuild).
	SetDaily(ctx context.Context, ownerUserID string, c ActivityCounters) error
	// ResetDaily pone en cero contadores y tasks de todas las mascotas.
	ResetDaily(ctx context.Context) (int64, error)
}

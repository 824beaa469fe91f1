package users

import "context"

type Repository interface {
	// Create falla con ErrAlreadyExists si el email ya está registrado.
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, u User) error
}

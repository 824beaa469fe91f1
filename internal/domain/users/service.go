package users

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"tailtime/internal/ports/auth"
)

// Los mensajes son los que ya muestra la app móvil.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("User not found")
	ErrAlreadyExists      = errors.New("User already exists")
	ErrUnknownEmail       = errors.New("User does not exist")
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

type Service struct {
	repo   Repository
	hasher auth.PasswordHasher
	issuer auth.TokenIssuer
	now    func() time.Time
}

func NewService(repo Repository, hasher auth.PasswordHasher, issuer auth.TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		issuer: issuer,
		now:    time.Now,
	}
}

type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return User{}, ErrInvalidInput
	}

	// el store también lo garantiza (índice único por email)
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return User{}, errors.Wrap(err, "hash password")
	}

	now := s.now()
	u := User{
		ID:           uuid.NewString(),
		FullName:     strings.TrimSpace(in.FullName),
		Email:        email,
		PasswordHash: hash,
		Settings:     map[string]any{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

type LoginResult struct {
	Token string
	User  User
}

func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidInput
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return LoginResult{}, ErrUnknownEmail
	}
	if err != nil {
		return LoginResult{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(ctx, auth.Claims{UserID: u.ID, Email: u.Email})
	if err != nil {
		return LoginResult{}, errors.Wrap(err, "issue token")
	}

	return LoginResult{Token: token, User: u}, nil
}

func (s *Service) Get(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// UpdateSettings reemplaza el mapa completo (no hace merge).
func (s *Service) UpdateSettings(ctx context.Context, id string, settings map[string]any) (User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return User{}, err
	}

	if settings == nil {
		settings = map[string]any{}
	}
	u.Settings = settings
	u.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) ChangePassword(ctx context.Context, id, newPassword string) error {
	if newPassword == "" {
		return ErrInvalidInput
	}

	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}

	u.PasswordHash = hash
	u.UpdatedAt = s.now()
	return s.repo.Update(ctx, u)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

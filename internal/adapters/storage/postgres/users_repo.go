package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"tailtime/internal/domain/users"
)

const userColumns = `id, full_name, email, password_hash, settings, created_at, updated_at`

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	settings, err := marshalSettings(u.Settings)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		u.ID,
		u.FullName,
		u.Email,
		u.PasswordHash,
		settings,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return users.ErrAlreadyExists
	}
	return errors.Wrap(err, "postgres: insert user")
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return users.User{}, users.ErrNotFound
	}
	return scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// Update no cambia el email.
func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	settings, err := marshalSettings(u.Settings)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET
			full_name = $2,
			password_hash = $3,
			settings = $4,
			updated_at = $5
		WHERE id = $1
	`,
		u.ID,
		u.FullName,
		u.PasswordHash,
		settings,
		u.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "postgres: update user")
	}
	return expectOne(res, users.ErrNotFound)
}

func scanUser(row *sql.Row) (users.User, error) {
	var u users.User
	var settings []byte
	if err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.PasswordHash,
		&settings,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, errors.Wrap(err, "postgres: scan user")
	}

	u.Settings = map[string]any{}
	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &u.Settings); err != nil {
			return users.User{}, errors.Wrap(err, "postgres: decode user settings")
		}
	}
	return u, nil
}

func marshalSettings(m map[string]any) ([]byte, error) {
	if m == nil {
		m = map[string]any{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "postgres: encode user settings")
	}
	return b, nil
}

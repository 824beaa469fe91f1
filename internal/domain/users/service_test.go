package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailtime/internal/ports/auth"
)

// -------------------------
// Test doubles
// -------------------------

type testRepo struct {
	byID map[string]User
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	for _, cur := range r.byID {
		if cur.Email == u.Email {
			return ErrAlreadyExists
		}
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *testRepo) Update(ctx context.Context, u User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

// plainHasher: suficiente para probar el flujo sin bcrypt.
type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "h:" + p, nil }

func (plainHasher) Compare(hash, p string) error {
	if hash != "h:"+p {
		return errors.New("mismatch")
	}
	return nil
}

type testIssuer struct {
	last auth.Claims
}

func (i *testIssuer) Issue(ctx context.Context, c auth.Claims) (string, error) {
	i.last = c
	return "token-for-" + c.UserID, nil
}

func newTestService() (*Service, *testRepo, *testIssuer) {
	repo := newTestRepo()
	issuer := &testIssuer{}
	svc := NewService(repo, plainHasher{}, issuer)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, repo, issuer
}

// -------------------------
// Tests
// -------------------------

func TestService_Register_NormalizesAndHashes(t *testing.T) {
	svc, repo, _ := newTestService()

	u, err := svc.Register(context.Background(), RegisterInput{
		FullName: " Ana Pérez ",
		Email:    "  Ana@Example.COM ",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", u.Email)
	assert.Equal(t, "Ana Pérez", u.FullName)
	assert.Equal(t, "h:secret", repo.byID[u.ID].PasswordHash)
	assert.NotNil(t, u.Settings)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Register(ctx, RegisterInput{FullName: "Ana", Email: "ana@example.com", Password: "one"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{FullName: "Otra", Email: "ANA@example.com", Password: "two"})
	require.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, "User already exists", err.Error())

	// el primero queda intacto
	require.Len(t, repo.byID, 1)
	assert.Equal(t, "Ana", repo.byID[first.ID].FullName)
	assert.Equal(t, "h:one", repo.byID[first.ID].PasswordHash)
}

func TestService_Register_RequiresEmailAndPassword(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(context.Background(), RegisterInput{Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Login(t *testing.T) {
	svc, _, issuer := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{FullName: "Ana", Email: "ana@example.com", Password: "secret"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, "Ana@Example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "token-for-"+u.ID, res.Token)
	assert.Equal(t, u.ID, res.User.ID)
	assert.Equal(t, auth.Claims{UserID: u.ID, Email: "ana@example.com"}, issuer.last)

	_, err = svc.Login(ctx, "ana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nadie@example.com", "secret")
	assert.ErrorIs(t, err, ErrUnknownEmail)
}

func TestService_UpdateSettings(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "secret"})
	require.NoError(t, err)

	got, err := svc.UpdateSettings(ctx, u.ID, map[string]any{"darkMode": true, "units": "kg"})
	require.NoError(t, err)
	assert.Equal(t, true, got.Settings["darkMode"])

	got, err = svc.UpdateSettings(ctx, u.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, got.Settings)

	_, err = svc.UpdateSettings(ctx, "missing", map[string]any{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ChangePassword(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "old"})
	require.NoError(t, err)

	require.NoError(t, svc.ChangePassword(ctx, u.ID, "new"))

	_, err = svc.Login(ctx, "ana@example.com", "old")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "ana@example.com", "new")
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(ctx, "missing", "x"), ErrNotFound)
	assert.ErrorIs(t, svc.ChangePassword(ctx, u.ID, ""), ErrInvalidInput)
}

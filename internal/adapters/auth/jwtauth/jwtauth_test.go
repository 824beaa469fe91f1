package jwtauth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailtime/internal/ports/auth"
)

func TestService_IssueAndVerify(t *testing.T) {
	svc, err := New("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := svc.Issue(context.Background(), auth.Claims{UserID: "user-1", Email: "ana@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, auth.Claims{UserID: "user-1", Email: "ana@example.com"}, claims)
}

func TestService_Verify_Rejects(t *testing.T) {
	svc, err := New("test-secret", time.Hour)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Verify(ctx, "  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)

	_, err = svc.Verify(ctx, "not-a-jwt")
	assert.Error(t, err)

	// otra clave
	other, err := New("other-secret", time.Hour)
	require.NoError(t, err)
	foreign, err := other.Issue(ctx, auth.Claims{UserID: "user-1"})
	require.NoError(t, err)
	_, err = svc.Verify(ctx, foreign)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	// vencido
	token, err := svc.Issue(ctx, auth.Claims{UserID: "user-1"})
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.Verify(ctx, token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestService_Verify_RejectsOtherAlgorithms(t *testing.T) {
	svc, err := New("test-secret", time.Hour)
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1", Issuer: issuer})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), token)
	assert.Error(t, err)
}

func TestNew_RequiresSecret(t *testing.T) {
	_, err := New(" ", time.Hour)
	assert.ErrorIs(t, err, ErrSecretMissing)

	_, err = (&Service{secret: []byte("x"), ttl: time.Hour, now: time.Now}).Issue(context.Background(), auth.Claims{})
	assert.ErrorIs(t, err, ErrMissingUserID)
}

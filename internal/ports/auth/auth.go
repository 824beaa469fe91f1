// Package auth define los puertos de autenticación que implementan los adapters
// (jwtauth, passwords) y consumen middleware y domain/users.
package auth

import "context"

// Claims: identidad del request autenticado.
type Claims struct {
	UserID string
	Email  string
}

// AuthVerifier valida un token y devuelve sus claims.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer firma el token que devuelve /api/auth/login.
type TokenIssuer interface {
	Issue(ctx context.Context, c Claims) (string, error)
}

// PasswordHasher: los passwords nunca se guardan en claro.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

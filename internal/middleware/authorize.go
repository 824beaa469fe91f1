package middleware

import (
	"net/http"
	"strings"

	"tailtime/internal/platform/respond"
)

// RequireClaims corta con 401 si AuthContext no dejó claims en el contexto.
// Se monta solo cuando auth.requireToken=true.
func RequireClaims(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			respond.Message(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CanActAs: sin claims se permite (modo abierto); con claims, solo sobre el propio userID.
// Devuelve false y ya escribió 403 si no corresponde.
func CanActAs(w http.ResponseWriter, r *http.Request, userID string) bool {
	claims, ok := GetClaims(r.Context())
	if !ok {
		return true
	}
	if claims.UserID != strings.TrimSpace(userID) {
		respond.Message(w, http.StatusForbidden, "forbidden")
		return false
	}
	return true
}

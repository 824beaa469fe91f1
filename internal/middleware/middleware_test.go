package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tailtime/internal/ports/auth"
)

type fakeVerifier struct{}

func (fakeVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if token != "good" {
		return auth.Claims{}, errors.New("bad token")
	}
	return auth.Claims{UserID: "user-1"}, nil
}

func claimsEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := GetClaims(r.Context())
		if !ok {
			_, _ = w.Write([]byte("anon"))
			return
		}
		_, _ = w.Write([]byte(c.UserID))
	})
}

func TestAuthContext(t *testing.T) {
	cases := []struct {
		name     string
		verifier auth.AuthVerifier
		headers  map[string]string
		want     string
	}{
		{"dev header", nil, map[string]string{"X-Debug-User-ID": "dev-1"}, "dev-1"},
		{"dev sin header", nil, nil, "anon"},
		{"bearer valido", fakeVerifier{}, map[string]string{"Authorization": "Bearer good"}, "user-1"},
		{"bearer invalido", fakeVerifier{}, map[string]string{"Authorization": "Bearer nope"}, "anon"},
		{"debug ignorado con verifier", fakeVerifier{}, map[string]string{"X-Debug-User-ID": "dev-1"}, "anon"},
		{"bearer vacio", fakeVerifier{}, map[string]string{"Authorization": "Bearer   "}, "anon"},
		{"otro esquema", fakeVerifier{}, map[string]string{"Authorization": "Basic good"}, "anon"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			AuthContext(tc.verifier)(claimsEcho()).ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Body.String())
		})
	}
}

func TestRequireClaimsAndCanActAs(t *testing.T) {
	h := AuthContext(nil)(RequireClaims(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !CanActAs(w, r, r.URL.Query().Get("user")) {
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})))

	do := func(debugUser, target string) int {
		req := httptest.NewRequest(http.MethodGet, "/?user="+target, nil)
		if debugUser != "" {
			req.Header.Set("X-Debug-User-ID", debugUser)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, do("", "u1"))
	assert.Equal(t, http.StatusForbidden, do("u2", "u1"))
	assert.Equal(t, http.StatusNoContent, do("u1", "u1"))
}

func TestRecover_LogsAndReturns500(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	h := Recover(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"msg":"Server Error"}`, rec.Body.String())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "panic recovered", logs.All()[0].Message)
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	for _, status := range []int{http.StatusOK, http.StatusNotFound, http.StatusBadGateway} {
		h := AuthContext(nil)(RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})))
		req := httptest.NewRequest(http.MethodGet, "/api/pets/u1", nil)
		req.Header.Set("X-Debug-User-ID", "u1")
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "u1", entries[0].ContextMap()["user_id"])
	assert.Equal(t, int64(404), entries[1].ContextMap()["status"])
}

func TestCORS_Preflight(t *testing.T) {
	called := false
	h := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	req := httptest.NewRequest(http.MethodOptions, "/api/pets/add", nil)
	req.Header.Set("Origin", "http://localhost:8081")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.False(t, called)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("does-not-exist", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.DailyReset.Enabled)
	assert.Equal(t, int64(8<<20), cfg.HTTP.MaxBodyBytes)
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yml := `
http:
  port: 8081
  readTimeout: 2s
storage:
  driver: postgres
  postgres:
    dsn: postgres://localhost/tailtime
auth:
  jwtSecret: from-file
activity:
  timezone: America/Lima
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yml), 0o600))

	t.Setenv("AUTH_JWTSECRET", "from-env")
	t.Setenv("STORAGE_DRIVER", "mongo")

	cfg, err := Load("config", dir)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, 2*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, "postgres://localhost/tailtime", cfg.Storage.Postgres.DSN)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, DriverMongo, cfg.Storage.Driver)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Lima", loc.String())
}

func TestLoad_LegacyEnv(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load("none", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.HTTP.Port)
	assert.Equal(t, DriverMongo, cfg.Storage.Driver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.Mongo.URI)
}

func TestLocation_Invalid(t *testing.T) {
	cfg := Default()
	cfg.Activity.Timezone = "Mars/Olympus"

	_, err := cfg.Location()
	assert.Error(t, err)
}

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"auth": map[string]any{"jwtSecret": "x"},
		"dailyReset": map[string]any{"enabled": true},
	}

	assert.Equal(t, "auth.jwtSecret", canonicalizeEnvKey("AUTH_JWTSECRET", existing))
	assert.Equal(t, "dailyReset.enabled", canonicalizeEnvKey("DAILYRESET_ENABLED", existing))
	assert.Equal(t, "storage.mongo.uri", canonicalizeEnvKey("STORAGE_MONGO_URI", existing))
}

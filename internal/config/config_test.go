package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0600))
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
  mode: debug
  locale: ru
database:
  driver: sqlite
  path: trainer.db
jwt:
  secret: dev-secret
  expire_hours: 2
redis:
  enabled: true
  stats_ttl_seconds: 10
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "ru", cfg.Server.Locale)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, "session", cfg.JWT.CookieName)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 10*time.Second, cfg.Redis.StatsTTL)
	assert.Equal(t, 10, cfg.RateLimit.LoginMaxRequests)
	assert.False(t, cfg.IsRelease())
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := writeConfig(t, "jwt:\n  secret: from-file\n")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("SERVER_LOCALE", "ru")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "ru", cfg.Server.Locale)
}

func TestLoadConfigPrefixedNestedEnv(t *testing.T) {
	dir := writeConfig(t, "jwt:\n  secret: dev\nredis:\n  stats_ttl_seconds: 10\n")
	t.Setenv("PHISH_TRAINER_REDIS_STATS_TTL_SECONDS", "15")
	t.Setenv("PHISH_TRAINER_RATE_LIMIT_LOGIN_MAX_REQUESTS", "3")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.Redis.StatsTTL)
	assert.Equal(t, 3, cfg.RateLimit.LoginMaxRequests)
}

func TestLoadConfigRejectsShortReleaseSecret(t *testing.T) {
	dir := writeConfig(t, "server:\n  mode: release\njwt:\n  secret: short\n")

	_, err := LoadConfig(dir)
	assert.ErrorContains(t, err, "too short")
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Database:  DatabaseConfig{Driver: "postgres"},
		JWT:       JWTConfig{Secret: "x"},
		RateLimit: RateLimitConfig{MaxRequests: 1, WindowMinutes: 1, LoginMaxRequests: 1},
	}
	assert.ErrorContains(t, cfg.Validate(), "unsupported database driver")

	cfg.Database.Driver = DriverMySQL
	assert.NoError(t, cfg.Validate())

	cfg.JWT.Secret = ""
	assert.ErrorContains(t, cfg.Validate(), "jwt.secret")
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "access_secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh_secret")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "file:goru.db?cache=shared", cfg.DatabaseDSN)
	assert.Equal(t, "access_secret", cfg.JWT.AccessSecret)
	assert.Equal(t, "refresh_secret", cfg.JWT.RefreshSecret)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshExpiry)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "access_secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh_secret")
	t.Setenv("APP_PORT", ":3000")
	t.Setenv("JWT_ACCESS_EXPIRY", "5m")
	t.Setenv("JWT_REFRESH_EXPIRY", "24h")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, ":3000", cfg.AppPort)
	assert.Equal(t, 5*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 24*time.Hour, cfg.JWT.RefreshExpiry)
}

// Tokens must never be signed with an empty secret, so Load refuses to start
// without one.
func TestLoadMissingSecrets(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "refresh_secret")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_ACCESS_SECRET", "access_secret")
	t.Setenv("JWT_REFRESH_SECRET", "")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadBadExpiry(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "access_secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh_secret")
	t.Setenv("JWT_ACCESS_EXPIRY", "0s")

	_, err := Load()
	assert.Error(t, err)
}

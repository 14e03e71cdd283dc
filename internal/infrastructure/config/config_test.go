package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Server.Mode)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, int64(50), cfg.RateLimit.MaxAttempts)
	assert.Equal(t, 1000*time.Second, cfg.RateLimit.Lockout())
	assert.Equal(t, 500*time.Millisecond, cfg.RateLimit.StoreTimeout())
	assert.False(t, cfg.Email.Enabled())
	assert.False(t, cfg.Telemetry.Enabled())
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OFICINA_RATELIMIT_MAX_ATTEMPTS", "3")
	t.Setenv("OFICINA_RATELIMIT_LOCKOUT_SECONDS", "60")
	t.Setenv("OFICINA_REDIS_HOST", "cache.internal")

	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, int64(3), cfg.RateLimit.MaxAttempts)
	assert.Equal(t, time.Minute, cfg.RateLimit.Lockout())
	assert.Equal(t, "cache.internal:6379", cfg.Redis.GetAddr())
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	_, err := Load("production")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.jwt.secret")
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("OFICINA_DATABASE_DRIVER", "oracle")

	_, err := Load("test")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestValidate_WildcardOriginInProduction(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Mode = "release"
	cfg.Server.AllowedOrigins = []string{"*"}
	cfg.Auth.JWT.Secret = "a-real-secret"
	cfg.Database.Driver = "mysql"
	cfg.RateLimit.MaxAttempts = 50

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "allowed_origins")
}

func TestValidate_RejectsNonPositiveAttempts(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Driver = "sqlite"

	assert.Error(t, cfg.Validate())

	cfg.RateLimit.MaxAttempts = 1
	assert.NoError(t, cfg.Validate())
}

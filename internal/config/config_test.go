package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostguard/frostguard/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_SECRET", testSecret)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "BRL", cfg.Exchange.ReportingCurrency)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "postgres://postgres:@localhost:5432/frostguard?sslmode=disable", cfg.ConnectionString())
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10, cfg.Auth.RateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUTH_SECRET", testSecret)
	t.Setenv("PORT", "9090")
	t.Setenv("REPORTING_CURRENCY", "USD")
	t.Setenv("RATE_CACHE_BACKEND", "redis")
	t.Setenv("RATE_CACHE_TTL", "0s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "USD", cfg.Exchange.ReportingCurrency)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Zero(t, cfg.Cache.TTL)
}

func TestLoad_InvalidBackend(t *testing.T) {
	t.Setenv("AUTH_SECRET", testSecret)
	t.Setenv("RATE_CACHE_BACKEND", "memcached")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_AuthSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret *string
	}{
		{name: "unset"},
		{name: "empty", secret: new("")},
		{name: "too short", secret: new("change-me")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AUTH_SECRET", "")

			if tt.secret != nil {
				t.Setenv("AUTH_SECRET", *tt.secret)
			} else {
				require.NoError(t, os.Unsetenv("AUTH_SECRET"))
			}

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

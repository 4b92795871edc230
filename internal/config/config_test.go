package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := fromEnv()
	require.NoError(t, err)

	assert.False(t, cfg.IsProduction)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, 2, cfg.DefaultBookingDays)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PROD_ORIGINS", "https://courts.example.com")
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("TIMEZONE", "Asia/Taipei")
	t.Setenv("DEFAULT_BOOKING_DAYS", "7")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := fromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "Asia/Taipei", cfg.Location.String())
	assert.Equal(t, 7, cfg.DefaultBookingDays)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing api url", env: map[string]string{"API_BASE_URL": ""}},
		{name: "prod without origins", env: map[string]string{"APP_ENV": "prod", "PROD_ORIGINS": ""}},
		{name: "bad timezone", env: map[string]string{"TIMEZONE": "Mars/Olympus"}},
		{name: "bad booking days", env: map[string]string{"DEFAULT_BOOKING_DAYS": "two"}},
		{name: "bad session ttl", env: map[string]string{"SESSION_TTL": "forever"}},
		{name: "bad rate", env: map[string]string{"RATE_LIMIT_RPS": "fast"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("API_BASE_URL", "https://api.example.com")
			t.Setenv("TIMEZONE", "UTC")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := fromEnv()
			assert.Error(t, err)
		})
	}
}

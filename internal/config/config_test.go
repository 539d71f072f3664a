package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "http://localhost:4000", cfg.Collaborator.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.Collaborator.RequestTimeout())
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleDuration())
	assert.Equal(t, "admin_session", cfg.Session.CookieName)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("COLLABORATOR_BASE_URL", "https://api.example.com")
	t.Setenv("COLLABORATOR_TIMEOUT", "5")
	t.Setenv("SESSION_COOKIE_SECURE", "TRUE")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://api.example.com", cfg.Collaborator.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Collaborator.RequestTimeout())
	assert.True(t, cfg.Session.CookieSecure)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"relative base url", func(c *Config) { c.Collaborator.BaseURL = "localhost:4000/api" }},
		{"negative timeout", func(c *Config) { c.Collaborator.Timeout = -1 }},
		{"zero idle ttl", func(c *Config) { c.Session.IdleTTL = 0 }},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)

			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

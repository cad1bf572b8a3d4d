package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "s")

	_, err := Load()
	require.EqualError(t, err, "DATABASE_URL environment variable is not set")
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/projectdesk")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.EqualError(t, err, "JWT_SECRET environment variable is not set")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/projectdesk")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("CLIENT_URL", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.Production())
	assert.Equal(t, developmentOrigins, cfg.AllowedOrigins)
}

func TestLoadMergesOrigins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/projectdesk")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("CLIENT_URL", "https://app.example.com")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example.com , https://b.example.com ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.AllowedOrigins, "http://localhost:5173")
	assert.Contains(t, cfg.AllowedOrigins, "https://app.example.com")
	assert.Contains(t, cfg.AllowedOrigins, "https://a.example.com")
	assert.Contains(t, cfg.AllowedOrigins, "https://b.example.com")
	assert.Len(t, cfg.AllowedOrigins, len(developmentOrigins)+3)
}

func TestProduction(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/projectdesk")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Production())
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "quotidepense-api", cfg.AppName)
	assert.Equal(t, "3002", cfg.Port)
	assert.Equal(t, 720*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "db/migrations", cfg.MigrationsDir)
	assert.False(t, cfg.FeedbackForwardEnabled)
}

func TestPostgresDSN(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "expenses")

	cfg := Load()
	assert.Equal(t, "postgres://app:pw@db:5433/expenses?sslmode=disable", cfg.PostgresDSN())
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg := Load()
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins())
}

func TestTokenTTLOverride(t *testing.T) {
	t.Setenv("JWT_TOKEN_TTL", "48h")

	cfg := Load()
	assert.Equal(t, 48*time.Hour, cfg.TokenTTL)
}

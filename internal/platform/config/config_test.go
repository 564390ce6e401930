package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "wevo-media-app", cfg.JWTIssuer)
	assert.Equal(t, "wevo_session", cfg.SessionCookieName)
	assert.Equal(t, "Administrator", cfg.AdminName)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_EXPIRY_DURATION", "30m")
	t.Setenv("PGSQL_URL", "postgres://localhost:5432/wevo_test")
	t.Setenv("ADMIN_TAX_ID", "11122233344")

	cfg, err := LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, "postgres://localhost:5432/wevo_test", cfg.DatabaseURL)
	assert.Equal(t, "11122233344", cfg.AdminTaxID)
}

func TestLoadConfig_BadExpiryFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY_DURATION", "not-a-duration")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiryDuration)
}

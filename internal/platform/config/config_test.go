package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CHAIN_CACHE_TTL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, 0, cfg.MaxChainLength)
	assert.Equal(t, 5*time.Minute, cfg.ChainCacheTTL)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("MAX_CHAIN_LENGTH", "6")
	t.Setenv("ROUNDING_MODE", "half_up")
	t.Setenv("CHAIN_CACHE_TTL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, 6, cfg.MaxChainLength)
	assert.Equal(t, "half_up", cfg.RoundingMode)
	assert.Equal(t, 30*time.Second, cfg.ChainCacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("MAX_CHAIN_LENGTH", "-3")
	t.Setenv("CHAIN_CACHE_TTL", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.MaxChainLength)
	assert.Equal(t, 5*time.Minute, cfg.ChainCacheTTL)
}

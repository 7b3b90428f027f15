package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// No config file in the test working directory: defaults apply.
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "http://localhost:5000", cfg.BaseURL)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.Equal(t, int64(65536), cfg.ReadLimit)
	assert.Equal(t, 54*time.Second, cfg.PingPeriod)
	assert.Equal(t, 0, cfg.MsgLimit)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PORT", "6001")
	t.Setenv("BASE_URL", "https://signal.example.com")
	t.Setenv("CORS_ORIGIN", "https://app.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6001, cfg.Port)
	assert.Equal(t, "https://signal.example.com", cfg.BaseURL)
	assert.Equal(t, "https://app.example.com", cfg.CORSOrigin)
}

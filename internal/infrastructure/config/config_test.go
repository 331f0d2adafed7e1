package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 0, cfg.Pool.Workers)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PIPETRACE_LOG_LEVEL", "debug")
	t.Setenv("PIPETRACE_LOG_DEV", "true")
	t.Setenv("PIPETRACE_METRICS", "1")
	t.Setenv("PIPETRACE_WORKERS", "6")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 6, cfg.Pool.Workers)
}

func TestLoadOrDefaultOnBadEnvironment(t *testing.T) {
	t.Setenv("PIPETRACE_WORKERS", "not-a-number")

	_, err := Load()
	require.Error(t, err)

	cfg := LoadOrDefault()
	assert.Equal(t, Default(), cfg)
}

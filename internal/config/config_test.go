package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "6380", cfg.Server.Port)
	assert.Empty(t, cfg.Server.RequirePass)
	assert.Equal(t, 16, cfg.Storage.Databases)
	assert.Equal(t, uint64(0), cfg.Storage.Seed)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("NISEKV_SERVER_PORT", "7000")
	t.Setenv("NISEKV_STORAGE_DATABASES", "4")
	t.Setenv("NISEKV_STORAGE_SEED", "99")
	t.Setenv("NISEKV_LOG_LEVEL", "debug")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, 4, cfg.Storage.Databases)
	assert.Equal(t, uint64(99), cfg.Storage.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("NISEKV_STORAGE_DATABASES", "0")

	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(lookup(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv(lookup(map[string]string{
		"BOERENBRIDGE_SEED":         "12345",
		"BOERENBRIDGE_ADDR":         ":9090",
		"BOERENBRIDGE_TURN_TIMEOUT": "250ms",
		"BOERENBRIDGE_MAX_ATTEMPTS": "5",
		"BOERENBRIDGE_LOG_LEVEL":    "debug",
		"BOERENBRIDGE_STRATEGY":     "Random",
	}))
	require.NoError(t, err)

	assert.Equal(t, uint64(12345), cfg.Seed)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.TurnTimeout)
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "random", cfg.Strategy)
}

func TestFromEnvErrors(t *testing.T) {
	testCases := map[string]string{
		"BOERENBRIDGE_SEED":         "-1",
		"BOERENBRIDGE_TURN_TIMEOUT": "soon",
		"BOERENBRIDGE_MAX_ATTEMPTS": "0",
		"BOERENBRIDGE_LOG_LEVEL":    "loud",
	}
	for key, value := range testCases {
		t.Run(key, func(t *testing.T) {
			_, err := FromEnv(lookup(map[string]string{key: value}))
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("BOERENBRIDGE_SEED=77\nBOERENBRIDGE_ADDR=:7000\n"), 0o600))
	t.Setenv("BOERENBRIDGE_ADDR", ":8000")
	t.Cleanup(func() { os.Unsetenv("BOERENBRIDGE_SEED") })

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(77), cfg.Seed)
	assert.Equal(t, ":8000", cfg.Addr, "environment wins over the file")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

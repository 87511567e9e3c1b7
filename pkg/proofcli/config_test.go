package proofcli

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearClientEnv unsets all documented variables, restoring them when
// the test finishes.
func clearClientEnv(t *testing.T) {
	t.Helper()
	for key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Empty(t, cfg.EngineURL)
	assert.False(t, cfg.Debug)
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults with a clean environment", func(t *testing.T) {
		clearClientEnv(t)

		cfg, err := ConfigFromEnv()

		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
		assert.Equal(t, DefaultTimeout, cfg.Timeout)
		assert.Empty(t, cfg.EngineURL)
		assert.False(t, cfg.Debug)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		clearClientEnv(t)
		t.Setenv("PROOF_API_URL", "http://localhost:8000")
		t.Setenv("CROMWELLURL", "http://engine:8000")
		t.Setenv("PROOF_TIMEOUT", "45s")
		t.Setenv("PROOF_DEBUG", "true")

		cfg, err := ConfigFromEnv()

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
		assert.Equal(t, "http://engine:8000", cfg.EngineURL)
		assert.Equal(t, 45*time.Second, cfg.Timeout)
		assert.True(t, cfg.Debug)
	})

	t.Run("engine URL alone leaves other defaults intact", func(t *testing.T) {
		clearClientEnv(t)
		t.Setenv("CROMWELLURL", "http://engine:8000")

		cfg, err := ConfigFromEnv()

		require.NoError(t, err)
		assert.Equal(t, "http://engine:8000", cfg.EngineURL)
		assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
		assert.Equal(t, DefaultTimeout, cfg.Timeout)
	})
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies the configuration used when no environment
// variables are set.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
}

// TestLoad_FromEnvironment reads NAVLINK_-prefixed overrides.
func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("NAVLINK_SERVICE_PORT", "9090")
	t.Setenv("NAVLINK_APP_ENV", "production")
	t.Setenv("NAVLINK_HTTP_READ_TIMEOUT", "5s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
}

// TestLoad_PortAlreadyAnAddress keeps a leading colon untouched.
func TestLoad_PortAlreadyAnAddress(t *testing.T) {
	t.Setenv("NAVLINK_SERVICE_PORT", ":7070")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Port)
}

// TestLoad_InvalidTimeout rejects unparsable durations instead of
// silently running with zero timeouts.
func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("NAVLINK_HTTP_READ_TIMEOUT", "soon")

	_, err := Load()

	assert.Error(t, err)
}

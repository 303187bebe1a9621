package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soft-challenge/soft75/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "milestone", cfg.Policy.Pic)
	assert.Equal(t, ":8075", cfg.Server.Listen)
	assert.Equal(t, "10s", cfg.Server.ReadTimeout)
	assert.Equal(t, "10s", cfg.Server.WriteTimeout)
	assert.False(t, cfg.Notify.Webhook.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.NotEmpty(t, cfg.Storage.Path)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	data := []byte(`
storage:
  path: /tmp/test.db
policy:
  pic: soft
server:
  listen: ":9090"
notify:
  webhook:
    enabled: true
    url: https://example.com/hook
logging:
  level: debug
`)
	err := os.WriteFile(cfgPath, data, 0o644)
	require.NoError(t, err)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test.db", cfg.Storage.Path)
	assert.Equal(t, "soft", cfg.Policy.Pic)
	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.True(t, cfg.Notify.Webhook.Enabled)
	assert.Equal(t, "https://example.com/hook", cfg.Notify.Webhook.URL)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SOFT75_LOGGING_LEVEL", "error")
	t.Setenv("SOFT75_POLICY_PIC", "unrestricted")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "unrestricted", cfg.Policy.Pic)
}

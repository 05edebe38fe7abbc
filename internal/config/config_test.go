package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.True(t, cfg.PreviewPanel)
	assert.True(t, cfg.WatchRepo)
	assert.Equal(t, 250*time.Millisecond, cfg.WatchDebounce())
	assert.Equal(t, 2*time.Second, cfg.CacheTTL())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("STAGEHAND_THEME", "light")
	t.Setenv("STAGEHAND_PREVIEW_PANEL", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.Theme)
	assert.False(t, cfg.PreviewPanel)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "stagehand")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(cfgDir, "config.yaml"),
		[]byte("theme: light\nwatch_debounce_ms: 500\n"),
		0o644,
	))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, 500*time.Millisecond, cfg.WatchDebounce())
	// Unset keys keep their defaults.
	assert.True(t, cfg.WatchRepo)
}

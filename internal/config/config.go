package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the resolved application configuration.
type Config struct {
	// Theme name: "dark" (default) or "light".
	Theme string `mapstructure:"theme"`
	// PreviewPanel shows the inline diff panel next to the file list.
	PreviewPanel bool `mapstructure:"preview_panel"`
	// WatchRepo enables the filesystem watcher that auto-refreshes the
	// file list when the index or refs change.
	WatchRepo bool `mapstructure:"watch_repo"`
	// WatchDebounceMS coalesces watcher event bursts (milliseconds).
	WatchDebounceMS int `mapstructure:"watch_debounce_ms"`
	// CacheTTLMS bounds how long read results (status, branch, stash
	// list) may be served from cache (milliseconds).
	CacheTTLMS int `mapstructure:"cache_ttl_ms"`
}

// WatchDebounce returns the debounce window as a duration.
func (c *Config) WatchDebounce() time.Duration {
	return time.Duration(c.WatchDebounceMS) * time.Millisecond
}

// CacheTTL returns the read-cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMS) * time.Millisecond
}

// Load reads configuration from ~/.config/stagehand/config.yaml, falling
// back to defaults when no file exists. Environment variables prefixed
// STAGEHAND_ override file values.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath(configDirectory())
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("STAGEHAND")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is fine — use defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme", "dark")
	v.SetDefault("preview_panel", true)
	v.SetDefault("watch_repo", true)
	v.SetDefault("watch_debounce_ms", 250)
	v.SetDefault("cache_ttl_ms", 2000)
}

func configDirectory() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stagehand")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "stagehand")
}

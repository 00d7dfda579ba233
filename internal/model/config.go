package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// SourceConfig holds the configuration for the remote roadmap endpoint.
type SourceConfig struct {
	// BaseURL is the root URL of the roadmap service.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Path is the payload endpoint path relative to BaseURL.
	Path string `mapstructure:"path" yaml:"path"`

	// TimeoutSec bounds the initial payload fetch. On expiry the board
	// falls back to the cache or renders empty.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`
}

// CacheConfig holds settings for the local payload cache.
type CacheConfig struct {
	// Path is the SQLite database location. Empty uses the default
	// next to the config file.
	Path string `mapstructure:"path" yaml:"path"`

	// Enabled controls whether fetched payloads are cached at all.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Source SourceConfig `mapstructure:"source" yaml:"source"`
	Cache  CacheConfig  `mapstructure:"cache" yaml:"cache"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/kanban/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "kanban", "config.yaml")
}

// DefaultCachePath returns the default payload cache location, next to
// the configuration file.
func DefaultCachePath() string {
	return filepath.Join(filepath.Dir(DefaultConfigPath()), "cache.db")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Source: SourceConfig{
			BaseURL:    "https://api.kibo.app",
			Path:       "/api/roadmap",
			TimeoutSec: 15,
		},
		Cache: CacheConfig{
			Path:    DefaultCachePath(),
			Enabled: true,
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("source.base_url", "https://api.kibo.app")
	v.SetDefault("source.path", "/api/roadmap")
	v.SetDefault("source.timeout_sec", 15)
	v.SetDefault("cache.path", DefaultCachePath())
	v.SetDefault("cache.enabled", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Source.TimeoutSec <= 0 {
		cfg.Source.TimeoutSec = 15
	}
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = DefaultCachePath()
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("source", cfg.Source)
	v.Set("cache", cfg.Cache)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}

// Package config loads marquee's configuration. Settings live in a
// YAML file under the user's config directory; every key has a default
// so a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/spf13/viper"
)

// Config is the top-level configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig configures the movie-listing endpoint.
type CatalogConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// UIConfig holds presentation defaults.
type UIConfig struct {
	Sort string `mapstructure:"sort"` // "title", "year" or "runtime"
}

// LoggingConfig configures the file logger.
type LoggingConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	Level   string `mapstructure:"level"`
}

// Load reads the configuration. When configPath is empty the standard
// locations are searched; a missing file yields the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "marquee"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		// No config file: run on defaults.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// SortKey returns the configured default sort key.
func (c *Config) SortKey() domain.SortKey {
	key, err := domain.ParseSortKey(c.UI.Sort)
	if err != nil {
		return domain.SortTitle
	}
	return key
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.timeout", "30s")
	v.SetDefault("ui.sort", "title")
	v.SetDefault("logging.enabled", false)
	v.SetDefault("logging.level", "info")

	if home, err := os.UserHomeDir(); err == nil {
		v.SetDefault("logging.path", filepath.Join(home, ".local", "state", "marquee", "marquee.log"))
	} else {
		v.SetDefault("logging.path", "marquee.log")
	}
}

func validate(cfg *Config) error {
	if _, err := domain.ParseSortKey(cfg.UI.Sort); err != nil {
		return fmt.Errorf("ui.sort: %w", err)
	}
	if cfg.Catalog.Timeout < 0 {
		return fmt.Errorf("catalog.timeout must not be negative")
	}
	return nil
}

// Package config loads artspace settings from defaults, an optional YAML
// file and ARTSPACE_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"artspace/internal/catalog"
)

const (
	EnvPrefix       = "ARTSPACE"
	DefaultLocale   = "en"
	DefaultLogLevel = "info"
)

// Config holds every user-facing setting.
type Config struct {
	Locale     string `mapstructure:"locale"`
	CatalogDir string `mapstructure:"catalog-dir"`
	LogLevel   string `mapstructure:"log-level"`
	LogFile    string `mapstructure:"log-file"`
	Mouse      bool   `mapstructure:"mouse"`
	Animate    bool   `mapstructure:"animate"`
}

// DefaultPath is $HOME/.config/artspace/config.yml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "artspace", "config.yml"), nil
}

// Load reads configPath, or the default path when it is empty. A missing
// default file is fine; a missing explicit file is an error.
func Load(configPath string) (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("locale", DefaultLocale)
	v.SetDefault("catalog-dir", "")
	v.SetDefault("log-level", DefaultLogLevel)
	v.SetDefault("log-file", "")
	v.SetDefault("mouse", true)
	v.SetDefault("animate", true)

	explicit := configPath != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		configPath = p
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if !missing || explicit {
			return cfg, fmt.Errorf("reading config %s: %w", configPath, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}

	return cfg, nil
}

// Catalog derives the catalog loader settings.
func (c Config) Catalog() catalog.Config {
	return catalog.DefaultConfig().
		WithDir(c.CatalogDir).
		WithLocale(c.Locale)
}

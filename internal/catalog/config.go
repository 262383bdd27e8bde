package catalog

// Config contains configurable parameters for loading the artwork catalog.
// Use DefaultConfig() to get sensible defaults, then override as needed.
type Config struct {
	// Dir overrides the embedded catalog with a directory laid out the same
	// way (manifest.yaml, images/, strings/). Empty means embedded.
	Dir string

	// Locale is the BCP-47 tag used for string lookups (default: "en").
	// Falls back to the manifest's default locale.
	Locale string

	// ManifestFile is the manifest path inside the catalog root (default: "manifest.yaml").
	ManifestFile string
}

// DefaultConfig returns a Config that loads the embedded catalog in English.
func DefaultConfig() Config {
	return Config{
		Dir:          "",
		Locale:       "en",
		ManifestFile: "manifest.yaml",
	}
}

// WithDir returns a copy of the config reading from dir instead of the embedded catalog.
func (c Config) WithDir(dir string) Config {
	c.Dir = dir
	return c
}

// WithLocale returns a copy of the config with a different lookup locale.
func (c Config) WithLocale(locale string) Config {
	c.Locale = locale
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if c.Locale == "" {
		return &ConfigError{Field: "Locale", Message: "must not be empty"}
	}
	if c.ManifestFile == "" {
		return &ConfigError{Field: "ManifestFile", Message: "must not be empty"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"LOCALE", "CATALOG_DIR", "LOG_LEVEL", "LOG_FILE", "MOUSE", "ANIMATE"} {
		t.Setenv(EnvPrefix+"_"+k, "")
		os.Unsetenv(EnvPrefix + "_" + k)
	}
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultLocale, cfg.Locale)
	assert.Equal(t, "", cfg.CatalogDir)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.True(t, cfg.Mouse)
	assert.True(t, cfg.Animate)
}

func TestLoadFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("locale: de\nanimate: false\nlog-level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "de", cfg.Locale)
	assert.False(t, cfg.Animate)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Mouse)
}

func TestLoadDefaultPathFile(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "artspace")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("mouse: false\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Mouse)
}

func TestEnvOverridesFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("catalog-dir: /from/file\n"), 0o644))
	t.Setenv("ARTSPACE_CATALOG_DIR", "/from/env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.CatalogDir)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	home := isolate(t)

	_, err := Load(filepath.Join(home, "missing.yml"))
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("locale: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestCatalogConfig(t *testing.T) {
	cfg := Config{Locale: "en", CatalogDir: "/art"}
	cc := cfg.Catalog()

	assert.Equal(t, "en", cc.Locale)
	assert.Equal(t, "/art", cc.Dir)
	assert.NoError(t, cc.Validate())
}

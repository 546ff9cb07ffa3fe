package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-utilkit/internal/config"
)

func load(t *testing.T, cfgFile string) (*config.Config, error) {
	t.Helper()
	v := viper.New()
	if err := config.Init(v, cfgFile); err != nil {
		return nil, err
	}
	return config.Load(v)
}

func TestDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := load(t, "")
	require.NoError(t, err)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "name", cfg.List.Sort)
	assert.False(t, cfg.List.Desc)
	assert.Empty(t, cfg.Catalog.Paths)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
catalog:
  paths: [a.yaml, b.toml]
output:
  color: false
log:
  level: debug
list:
  sort: since
  desc: true
`), 0o644))

	cfg, err := load(t, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.yaml", "b.toml"}, cfg.Catalog.Paths)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "since", cfg.List.Sort)
	assert.True(t, cfg.List.Desc)
}

func TestDiscoveredFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".utildoc.yaml"), []byte("log:\n  level: info\n"), 0o644))
	t.Setenv("UTILDOC_LIST_SORT", "category")
	t.Setenv("UTILDOC_CATALOG_PATHS", "x.yaml,y.yaml")

	cfg, err := load(t, "")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "category", cfg.List.Sort)
	assert.Equal(t, []string{"x.yaml", "y.yaml"}, cfg.Catalog.Paths)
}

func TestInvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("UTILDOC_LOG_LEVEL", "chatty")
	_, err := load(t, "")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	t.Setenv("UTILDOC_LOG_LEVEL", "info")
	t.Setenv("UTILDOC_LIST_SORT", "popularity")
	_, err = load(t, "")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestMissingExplicitFile(t *testing.T) {
	_, err := load(t, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

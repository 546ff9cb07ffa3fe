// Package config loads utildoc settings from a .utildoc.yaml file,
// UTILDOC_* environment variables and command-line flags, in increasing
// order of precedence.
//
// Keys:
//
//	catalog.paths  catalog files to load instead of the embedded catalog
//	output.color   style terminal output (default true)
//	log.level      debug, info, warn or error (default warn)
//	list.sort      default sort for `utildoc list`: name, category or since
//	list.desc      reverse the default sort
//
// Nested keys map to environment variables with dots replaced by
// underscores, e.g. UTILDOC_LOG_LEVEL=debug. List values are comma
// separated: UTILDOC_CATALOG_PATHS=a.yaml,b.toml.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/hasbyte1/go-utilkit/internal/catalog"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "UTILDOC"

// ErrInvalidConfig is returned by [Load] for values that fail validation.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the resolved utildoc configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
	List    ListConfig    `mapstructure:"list"`
}

// CatalogConfig selects the catalog files to load. An empty Paths means
// the embedded catalog.
type CatalogConfig struct {
	Paths []string `mapstructure:"paths"`
}

// OutputConfig controls terminal rendering.
type OutputConfig struct {
	Color bool `mapstructure:"color"`
}

// LogConfig sets the zap level: debug, info, warn or error.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ListConfig holds the default ordering of the list command.
type ListConfig struct {
	Sort string `mapstructure:"sort"`
	Desc bool   `mapstructure:"desc"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("catalog.paths", []string{})
	v.SetDefault("output.color", true)
	v.SetDefault("log.level", "warn")
	v.SetDefault("list.sort", string(catalog.SortName))
	v.SetDefault("list.desc", false)
}

// Init points v at its sources. An explicit cfgFile must exist; otherwise
// .utildoc.yaml is looked up in the working directory and then $HOME, and
// a missing file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".utildoc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read: %w", err)
	}
	return nil
}

// Load unmarshals and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	if _, err := catalog.ParseSortKey(c.List.Sort); err != nil {
		return fmt.Errorf("%w: list.sort %q", ErrInvalidConfig, c.List.Sort)
	}
	return nil
}

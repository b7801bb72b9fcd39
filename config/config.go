// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultMinOverlap is the shortest end/start match reported when nothing else is set
	DefaultMinOverlap = 10

	// EnvPrefix is prepended to settings read from the environment, ex: FINDOVERLAPS_MIN_OVERLAP
	EnvPrefix = "FINDOVERLAPS"
)

// ErrUsage is wrapped by every error caused by malformed arguments or settings.
var ErrUsage = errors.New("invalid usage")

// flagKeys maps viper keys to the names of the command line flags bound to them
var flagKeys = map[string]string{
	"min_overlap": "min_overlap",
	"verbose":     "verbose",
	"log_level":   "log-level",
	"settings":    "settings",
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment,
// and those available from the command line
type Config struct {
	// the minimum length of an exact end/start match for it to be reported
	MinOverlap int `mapstructure:"min_overlap"`

	// log at debug level regardless of LogLevel
	Verbose bool `mapstructure:"verbose"`

	// one of debug, info, warn or error
	LogLevel string `mapstructure:"log_level"`

	// path to an optional YAML settings file
	Settings string `mapstructure:"settings"`
}

// AddFlags registers the settings flags on a command's flag set.
func AddFlags(flags *pflag.FlagSet) {
	flags.IntP("min_overlap", "m", DefaultMinOverlap, "minimum overlap length")
	flags.StringP("settings", "s", "", "YAML settings file")
	flags.BoolP("verbose", "v", false, "log at debug level")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
}

// New returns a Config populated from (highest priority first) changed flags,
// FINDOVERLAPS_* environment variables, the settings file and the defaults.
// flags may be nil.
func New(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("min_overlap", DefaultMinOverlap)
	v.SetDefault("log_level", "info")
	v.SetDefault("verbose", false)
	v.SetDefault("settings", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if settings := v.GetString("settings"); settings != "" {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: failed to read settings file %s: %w", ErrUsage, settings, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("%w: unable to decode settings: %w", ErrUsage, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects settings the overlap search can't run with.
func (c *Config) Validate() error {
	if c.MinOverlap < 1 {
		return fmt.Errorf("%w: min_overlap must be a positive integer, got %d", ErrUsage, c.MinOverlap)
	}
	return nil
}

package config

import (
	"errors"
	"strings"

	"github.com/eternalApril/respwire/resp"
	"github.com/spf13/viper"
)

// Config represents the root configuration structure for the tooling around
// the codec. The codec itself takes its limits as plain arguments; this
// package only feeds them from files and environment.
type Config struct {
	Limits LimitsConfig `mapstructure:"limits"`
	Log    LogConfig    `mapstructure:"log"`
	Dump   DumpConfig   `mapstructure:"dump"`
}

// LimitsConfig bounds decoder resource use.
type LimitsConfig struct {
	MaxDepth int `mapstructure:"max_depth"` // max array nesting accepted while decoding
}

// LogConfig defines logging verbosity and output style.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// DumpConfig controls the respdump tool.
type DumpConfig struct {
	Input     string `mapstructure:"input"`      // file path, or "-" for stdin
	MaxValues int    `mapstructure:"max_values"` // stop after this many values; 0 means no limit
}

// Load reads the configuration from a file and overrides it with environment
// variables. A missing config file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	setDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("RESPWIRE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults populates viper with fallback values if they are not provided
// via file or ENV.
func setDefaults() {
	viper.SetDefault("limits.max_depth", resp.DefaultMaxDepth)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")

	viper.SetDefault("dump.input", "-")
	viper.SetDefault("dump.max_values", 0)
}

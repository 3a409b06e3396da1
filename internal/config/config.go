// Package config loads the demonstration driver's settings from the
// environment.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. POO_LOG_LEVEL.
const EnvPrefix = "POO"

// Config holds the driver's logging settings.
type Config struct {
	LogLevel  string
	LogPrefix string
	JSON      bool
}

// DefaultConfig returns the settings used when nothing is set in the environment.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogPrefix: "poo",
		JSON:      false,
	}
}

// LoadFromEnv reads POO_LOG_LEVEL, POO_LOG_PREFIX and POO_LOG_JSON.
// An unknown log level is an error rather than a silent fallback.
func LoadFromEnv() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_prefix", defaults.LogPrefix)
	v.SetDefault("log_json", defaults.JSON)

	cfg := Config{
		LogLevel:  strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		LogPrefix: v.GetString("log_prefix"),
		JSON:      v.GetBool("log_json"),
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("%s_LOG_LEVEL: %w", EnvPrefix, err)
	}
	return cfg, nil
}

// Logger builds a logger writing to w according to cfg.
func (c Config) Logger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	opts := log.Options{
		Prefix: c.LogPrefix,
		Level:  level,
	}
	if c.JSON {
		opts.Formatter = log.JSONFormatter
	}
	return log.NewWithOptions(w, opts)
}

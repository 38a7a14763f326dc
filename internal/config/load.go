package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads.
const EnvPrefix = "VARATES"

// Default values applied before the config file and environment.
const (
	DefaultPort       = 8080
	DefaultLogLevel   = "info"
	DefaultRateYear   = 2025
	defaultConfigName = "config"
	defaultConfigType = "yaml"
)

// Load reads configuration from an optional config.yaml in the working
// directory and from VARATES_* environment variables. Environment variables
// take precedence over values from the file.
func Load() (*Config, error) {
	return LoadWithFile("")
}

// LoadWithFile behaves like Load but reads the config file at path. An empty
// path searches the working directory for config.yaml.
func LoadWithFile(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("rates.default_year", DefaultRateYear)
	v.SetDefault("rates.file", "")
	v.SetDefault("rates.fallback_to_latest", false)
	v.SetDefault("rates.watch", false)

	v.SetConfigType(defaultConfigType)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(defaultConfigName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"server.port", EnvPrefix + "_SERVER_PORT"},
		{"server.log_level", EnvPrefix + "_SERVER_LOG_LEVEL"},
		{"rates.default_year", EnvPrefix + "_RATES_DEFAULT_YEAR"},
		{"rates.file", EnvPrefix + "_RATES_FILE"},
		{"rates.fallback_to_latest", EnvPrefix + "_RATES_FALLBACK_TO_LATEST"},
		{"rates.watch", EnvPrefix + "_RATES_WATCH"},
	}

	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env.envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

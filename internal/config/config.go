package config

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Rates  RatesConfig  `mapstructure:"rates" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// RatesConfig selects the rate tables the engines price against.
type RatesConfig struct {
	// DefaultYear is used when a request does not name a rate year.
	DefaultYear int `mapstructure:"default_year" validate:"required,gte=2000,lte=2100"`

	// File is an optional YAML rate file layered over the built-in tables.
	File string `mapstructure:"file" validate:"omitempty,file"`

	// FallbackToLatest prices an unknown year against the most recent
	// supported year instead of rejecting the request.
	FallbackToLatest bool `mapstructure:"fallback_to_latest"`

	// Watch reloads File whenever it changes on disk. Ignored without File.
	Watch bool `mapstructure:"watch"`
}

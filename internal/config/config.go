// Package config collects everything the server reads from its environment:
// HTTP listener settings, logger settings and the Gin mode.
package config

import "fmt"

// Config is the root configuration assembled by LoadFromEnv.
type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	GinMode string // debug, release or test
}

// LoadFromEnv assembles the configuration from environment variables,
// falling back to defaults suitable for local development.
func LoadFromEnv() Config {
	return Config{
		Server:  LoadServerConfigFromEnv(),
		Logger:  LoadLoggerConfigFromEnv(),
		GinMode: GetEnv("GIN_MODE", "release"),
	}
}

// Validate checks every section and reports the first problem found.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config: %w", err)
	}

	switch c.GinMode {
	case "debug", "release", "test":
		return nil
	default:
		return fmt.Errorf("invalid GIN_MODE %q: want debug, release or test", c.GinMode)
	}
}

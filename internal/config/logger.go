package config

import "fmt"

// LoggerConfig selects the verbosity and encoding of the application logger.
type LoggerConfig struct {
	Level  string // one of debug, info, warn, error
	Format string // json for machines, console for humans
	Output string // stdout, stderr, or a file path
}

// LoadLoggerConfigFromEnv reads LOG_LEVEL, LOG_FORMAT and LOG_OUTPUT,
// defaulting to info-level JSON on stdout.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:  GetEnv("LOG_LEVEL", "info"),
		Format: GetEnv("LOG_FORMAT", "json"),
		Output: GetEnv("LOG_OUTPUT", "stdout"),
	}
}

// Validate rejects levels and formats the logger package cannot build.
func (c LoggerConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: want debug, info, warn or error", c.Level)
	}

	switch c.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q: want json or console", c.Format)
	}

	return nil
}

// IsProduction reports whether the configuration looks like a production
// deployment: structured output without debug noise.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == "json" && c.Level != "debug"
}

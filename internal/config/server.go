package config

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// ServerConfig describes the HTTP listener and its connection timeouts.
type ServerConfig struct {
	Host         string // empty binds all interfaces
	Port         string // accepts ":8080" or a bare "8080"
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// LoadServerConfigFromEnv reads SERVER_* variables. The defaults serve a
// small API behind a reverse proxy: short read/write deadlines, a long
// idle window for keep-alive.
func LoadServerConfigFromEnv() ServerConfig {
	return ServerConfig{
		Host:         GetEnv("SERVER_HOST", ""),
		Port:         GetEnv("SERVER_PORT", ":8080"),
		ReadTimeout:  GetEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: GetEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:  GetEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
	}
}

// GetAddress builds the listen address passed to http.Server. A bare port
// is returned as-is so the server binds every interface.
func (c ServerConfig) GetAddress() string {
	if c.Host == "" {
		return c.Port
	}
	return net.JoinHostPort(c.Host, strings.TrimPrefix(c.Port, ":"))
}

// Validate requires every timeout to be positive. A zero timeout would
// disable the deadline entirely, which is never what a deployment wants.
func (c ServerConfig) Validate() error {
	for _, timeout := range []struct {
		name  string
		value time.Duration
	}{
		{"ReadTimeout", c.ReadTimeout},
		{"WriteTimeout", c.WriteTimeout},
		{"IdleTimeout", c.IdleTimeout},
	} {
		if timeout.value <= 0 {
			return fmt.Errorf("%s must be positive, got %s", timeout.name, timeout.value)
		}
	}
	return nil
}

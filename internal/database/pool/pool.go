// Package pool bounds the sql.DB connection pool behind GORM.
package pool

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Config carries the pool limits applied by Setup.
type Config struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConfig sizes the pool for a single API instance sharing a
// modest Postgres: 25 connections open at most, a handful kept warm.
func DefaultConfig() Config {
	return Config{
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
	}
}

func (c Config) validate() error {
	switch {
	case c.MaxOpenConns <= 0:
		return fmt.Errorf("pool: MaxOpenConns must be positive, got %d", c.MaxOpenConns)
	case c.MaxIdleConns < 0:
		return fmt.Errorf("pool: MaxIdleConns must not be negative, got %d", c.MaxIdleConns)
	case c.MaxIdleConns > c.MaxOpenConns:
		return fmt.Errorf("pool: MaxIdleConns %d exceeds MaxOpenConns %d", c.MaxIdleConns, c.MaxOpenConns)
	default:
		return nil
	}
}

// Setup applies cfg to the sql.DB underneath db.
func Setup(db *gorm.DB, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("pool: unwrap sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return nil
}

// internal/config/config.go
//
// Runtime configuration, read from the environment (and an optional .env
// file in development).
//
// Environment variables:
//   PORT                       listen port (5175)
//   LOG_LEVEL                  zerolog level (info)
//   BOSSDLE_TIMEZONE           IANA zone defining day boundaries (America/New_York)
//   BOSSDLE_EPOCH              civil date of puzzle #001 (2025-10-17)
//   BOSSDLE_DAY_OFFSET         shifts the day index, for testing (0)
//   BOSSDLE_CATALOG_FILE       catalog JSON; empty uses the embedded one
//   BOSSDLE_STORE              sqlite | json | memory (sqlite)
//   BOSSDLE_DATA_FILE          store file path (./data/bossdle.db)
//   BOSSDLE_ROLLOVER_INTERVAL  rollover poll interval, at most 60s (1s)
//   CLIENT_ORIGIN              CORS origin (http://localhost:5173)
//   RECEIPT_SECRET             share receipt signing secret

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting.
type Config struct {
	Port             string        `env:"PORT" envDefault:"5175"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	Timezone         string        `env:"BOSSDLE_TIMEZONE" envDefault:"America/New_York"`
	EpochDate        string        `env:"BOSSDLE_EPOCH" envDefault:"2025-10-17"`
	DayOffset        int           `env:"BOSSDLE_DAY_OFFSET" envDefault:"0"`
	CatalogFile      string        `env:"BOSSDLE_CATALOG_FILE"`
	StoreEngine      string        `env:"BOSSDLE_STORE" envDefault:"sqlite"`
	DataFile         string        `env:"BOSSDLE_DATA_FILE" envDefault:"./data/bossdle.db"`
	RolloverInterval time.Duration `env:"BOSSDLE_ROLLOVER_INTERVAL" envDefault:"1s"`
	ClientOrigin     string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	ReceiptSecret    string        `env:"RECEIPT_SECRET" envDefault:"dev_secret_change_me"`

	loc   *time.Location
	epoch time.Time
}

// Location is the zone that defines day boundaries.
func (c Config) Location() *time.Location { return c.loc }

// Epoch is local midnight of puzzle #001.
func (c Config) Epoch() time.Time { return c.epoch }

// Load reads .env (if present), parses the environment and validates it.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv parses and validates the process environment only.
func FromEnv() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	if err := c.resolve(); err != nil {
		return c, err
	}
	return c, nil
}

func (c *Config) resolve() error {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("BOSSDLE_TIMEZONE %q: %w", c.Timezone, err)
	}
	epoch, err := time.ParseInLocation("2006-01-02", c.EpochDate, loc)
	if err != nil {
		return fmt.Errorf("BOSSDLE_EPOCH %q: %w", c.EpochDate, err)
	}
	if c.RolloverInterval <= 0 || c.RolloverInterval > time.Minute {
		return errors.New("BOSSDLE_ROLLOVER_INTERVAL must be in (0, 60s]")
	}
	c.loc, c.epoch = loc, epoch
	return nil
}

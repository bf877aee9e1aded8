// Package config loads the runtime configuration of forgeledger from
// FORGELEDGER_* environment variables.
package config

import (
	"github.com/gabapcia/forgeledger/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is prepended to every variable name, e.g. FORGELEDGER_LOG_LEVEL.
const envPrefix = "forgeledger"

// Storage drivers.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

type Log struct {
	Level      string `split_words:"true" default:"info" validate:"oneof=debug info warn error panic fatal"`
	File       string `split_words:"true"`
	MaxSizeMB  int    `split_words:"true" default:"100" validate:"gt=0"`
	MaxBackups int    `split_words:"true" default:"3" validate:"gte=0"`
}

type Telemetry struct {
	Enabled     bool   `split_words:"true" default:"false"`
	ServiceName string `split_words:"true" default:"forgeledger" validate:"required"`
}

type Redis struct {
	Addr      string `split_words:"true" default:"localhost:6379" validate:"required"`
	Username  string `split_words:"true"`
	Password  string `split_words:"true"`
	DB        int    `split_words:"true" default:"0" validate:"gte=0"`
	KeyPrefix string `split_words:"true" default:"ledger" validate:"required"`
}

type SQLite struct {
	Path string `split_words:"true" default:"data/forgeledger.db" validate:"required"`
}

type Storage struct {
	Driver string `split_words:"true" default:"memory" validate:"oneof=memory redis sqlite"`
	Redis  Redis
	SQLite SQLite
}

type Audit struct {
	Schedule string `split_words:"true" default:"@every 1m" validate:"required"`
}

// Config is the full runtime configuration.
//
// Variable names are derived from the field path, e.g. Storage.Redis.KeyPrefix
// is read from FORGELEDGER_STORAGE_REDIS_KEY_PREFIX.
type Config struct {
	Log       Log
	Telemetry Telemetry
	Storage   Storage
	Audit     Audit
}

// Load reads the configuration from the environment, applies defaults and
// validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

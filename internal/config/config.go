// Package config reads process settings from the environment.
package config

import (
	"fmt"
	"net"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Host     string `env:"WEEKCAL_HOST" envDefault:"127.0.0.1"`
	Port     string `env:"WEEKCAL_PORT" envDefault:"8080"`
	DBPath   string `env:"WEEKCAL_DB_PATH" envDefault:"weekcal.db"`
	LogLevel string `env:"WEEKCAL_LOG_LEVEL" envDefault:"info"`

	// BackupPassphrase is only read by the backup tool.
	BackupPassphrase string `env:"WEEKCAL_BACKUP_PASSPHRASE"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

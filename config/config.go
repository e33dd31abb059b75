// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pcinkh/asyncorm/dialect"
)

// Settings is the root configuration structure, typically read from an
// asyncorm.yaml file next to the application.
type Settings struct {
	Database DatabaseSettings `yaml:"database"`
	Models   []string         `yaml:"models"`
}

// DatabaseSettings configures the database connection.
type DatabaseSettings struct {
	Dialect string `yaml:"dialect"`
	DSN     string `yaml:"dsn"`
}

// Default returns the settings used when a key is absent from the file.
func Default() Settings {
	return Settings{
		Database: DatabaseSettings{Dialect: dialect.Postgres},
	}
}

// Load reads and validates settings from the given yaml file.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("config: %s: %w", path, err)
	}
	return s, nil
}

// Validate checks the settings for consistency.
func (s Settings) Validate() error {
	switch s.Database.Dialect {
	case dialect.Postgres, dialect.SQLite, dialect.MySQL:
	default:
		return fmt.Errorf("unknown dialect %q", s.Database.Dialect)
	}
	if s.Database.DSN == "" {
		return fmt.Errorf("database dsn is required")
	}
	return nil
}

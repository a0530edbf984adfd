package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Publish holds all configuration for the content publish tool.
type Publish struct {
	LogLevel string `yaml:"log_level"`

	// Database
	Database DatabaseConfig `yaml:"database"`

	// WorldVersion is stamped onto every published row so trackers can tell
	// which revision of the content tables they are reading.
	WorldVersion string `yaml:"world_version"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultPublish returns Publish config with sensible defaults.
func DefaultPublish() Publish {
	return Publish{
		LogLevel:     "info",
		WorldVersion: "dev",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "ds3world",
			Password: "ds3world",
			DBName:   "ds3world",
			SSLMode:  "disable",
		},
	}
}

// LoadPublish reads the publish config from path.
// A missing file is not an error; defaults are returned.
func LoadPublish(path string) (Publish, error) {
	cfg := DefaultPublish()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

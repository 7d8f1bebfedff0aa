// Package config loads the subscriber configuration from an optional YAML
// file and applies defaults. Command line flags in main override file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Validator struct {
		Endpoint string `yaml:"endpoint"`
	} `yaml:"validator"`

	Database struct {
		Name     string `yaml:"name"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		SSLMode  string `yaml:"sslmode"`
	} `yaml:"database"`

	Health struct {
		Port int `yaml:"port"`
	} `yaml:"health"`

	Logging struct {
		Verbosity int `yaml:"verbosity"`
	} `yaml:"logging"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads a YAML configuration file and applies defaults for anything the
// file leaves unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Validator.Endpoint == "" {
		c.Validator.Endpoint = "tcp://localhost:4004"
	}
	if c.Database.Name == "" {
		c.Database.Name = "cert-registry"
	}
	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.User == "" {
		c.Database.User = "cert-registry"
	}
	if c.Database.Password == "" {
		c.Database.Password = "cert-registry"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Health.Port == 0 {
		c.Health.Port = 8088
	}
}

// ConnectionString returns the postgres connection string for the reporting
// database.
func (c *Config) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

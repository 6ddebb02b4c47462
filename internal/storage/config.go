package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file (sibling to .larder/).
	userConfigFile = ".larderconfig.yaml"

	// Default configuration values
	DefaultCurrency    = "$"
	DefaultLogLevel    = "warn"
	DefaultAsyncWrites = false
	DefaultLowStock    = 3
)

// Config represents user configuration from .larderconfig.yaml.
// This file is user-managed and never written by larder.
type Config struct {
	// Currency is the symbol printed before prices.
	Currency string `yaml:"currency"`

	// LogLevel is the minimum zap level written to stderr.
	LogLevel string `yaml:"log_level"`

	// AsyncWrites moves list writes to a background goroutine.
	AsyncWrites bool `yaml:"async_writes"`

	// LowStock highlights cart items whose stock is at or below this value.
	LowStock int `yaml:"low_stock"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Currency:    DefaultCurrency,
		LogLevel:    DefaultLogLevel,
		AsyncWrites: DefaultAsyncWrites,
		LowStock:    DefaultLowStock,
	}
}

// LoadConfig loads .larderconfig.yaml if it exists, otherwise returns defaults.
// The config file is a sibling to .larder/ (in the same directory).
// Partial config files are merged with defaults.
func (s *Storage) LoadConfig() (*Config, error) {
	configPath := filepath.Join(s.root, userConfigFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file - return defaults
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Parse YAML and merge with defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	return cfg, nil
}

// ConfigPath returns the path to the user config file.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.root, userConfigFile)
}

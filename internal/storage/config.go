package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file.
	userConfigFile = ".pcatconfig.yaml"

	// Default configuration values
	DefaultFile     = "projects.xml"
	DefaultCurrency = "$"
	DefaultNoColor  = false
)

// Config represents user configuration from .pcatconfig.yaml.
// This file is user-managed and never written by pcat.
// Environment variables override values from the file.
type Config struct {
	// File is the catalog file used by save and load.
	File string `yaml:"file" env:"PCAT_FILE" env-description:"catalog file (.xml, .yaml or .db)"`

	// Currency is printed in front of calculated costs.
	Currency string `yaml:"currency" env:"PCAT_CURRENCY" env-description:"currency symbol for costs"`

	// NoColor disables ANSI colors even on a terminal.
	NoColor bool `yaml:"no_color" env:"PCAT_NO_COLOR" env-description:"disable colored output"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		File:     DefaultFile,
		Currency: DefaultCurrency,
		NoColor:  DefaultNoColor,
	}
}

// LoadConfig loads .pcatconfig.yaml from dir if it exists, otherwise
// starts from defaults. Partial config files are merged with defaults,
// then PCAT_* environment variables are applied on top.
func LoadConfig(dir string) (*Config, error) {
	cfg := DefaultConfig()
	configPath := ConfigPath(dir)

	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	return cfg, nil
}

// ConfigPath returns the path to the user config file in dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, userConfigFile)
}

// EnvHelp describes the environment variables LoadConfig honours.
func EnvHelp() (string, error) {
	return cleanenv.GetDescription(&Config{}, nil)
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds everything the journal reads at startup.
type Config struct {
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Display DisplayConfig `json:"display" yaml:"display"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// StorageConfig selects and locates the persistence backend.
type StorageConfig struct {
	Type    string `json:"type" yaml:"type"`                             // "json" or "sqlite"
	DataDir string `json:"data_dir,omitempty" yaml:"data_dir,omitempty"` // json backend
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty"`   // sqlite backend
}

// DisplayConfig contains presentation defaults.
type DisplayConfig struct {
	PageSize int `json:"page_size" yaml:"page_size"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

// LoadFromFile loads configuration from a file (JSON or YAML). Omitted
// fields keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	if yerr := yaml.Unmarshal(data, cfg); yerr != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", yerr)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case "json":
		if c.Storage.DataDir == "" {
			return fmt.Errorf("storage.data_dir required for json storage")
		}
	case "sqlite":
		if c.Storage.DBPath == "" {
			return fmt.Errorf("storage.db_path required for sqlite storage")
		}
	default:
		return fmt.Errorf("storage.type must be 'json' or 'sqlite'")
	}
	if c.Display.PageSize <= 0 {
		return fmt.Errorf("display.page_size must be positive")
	}
	return nil
}

// Default returns the configuration used when no file is given. The data
// directory honors JOURNAL_DATA_DIR so a .env file can relocate it.
func Default() *Config {
	dir := os.Getenv("JOURNAL_DATA_DIR")
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".tradebook")
		} else {
			dir = "."
		}
	}
	return &Config{
		Storage: StorageConfig{
			Type:    "json",
			DataDir: dir,
			DBPath:  filepath.Join(dir, "tradebook.sqlite"),
		},
		Display: DisplayConfig{PageSize: 4},
		Log:     LogConfig{Level: "info"},
	}
}

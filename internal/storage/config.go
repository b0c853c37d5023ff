package storage

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	Theme      string `yaml:"theme"`       // auto, dark or light
	ExportPath string `yaml:"export_path"` // empty = ~/Downloads/marks-export-<date>.html
	LogFile    string `yaml:"log_file"`    // empty = no logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme: "auto",
	}
}

// LoadConfig reads config from the YAML file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	config, err := ReadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		defaults := DefaultConfig()
		// Non-fatal: return defaults even if save fails
		_ = SaveConfig(path, &defaults)
		return &defaults, nil
	}
	return config, err
}

// ReadConfig reads config from an existing YAML file. A missing file is an
// error and nothing is written.
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.Theme == "" {
		config.Theme = defaults.Theme
	}

	return &config, nil
}

// SaveConfig writes config to the YAML file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path:
// $XDG_CONFIG_HOME/marks/config.yaml, or ~/.config/marks/config.yaml.
func DefaultConfigFilePath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "marks", "config.yaml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "marks", "config.yaml"), nil
}

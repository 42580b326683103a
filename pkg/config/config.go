package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the saved configuration.
const (
	EnvOutputDir   = "AUTOSIGNS_OUTPUT_DIR"
	EnvTemplateDir = "AUTOSIGNS_TEMPLATE_DIR"
	EnvLogLevel    = "AUTOSIGNS_LOG_LEVEL"
)

// Defaults applied by Effective when a setting is empty.
const (
	DefaultOutputDir   = "."
	DefaultTemplateDir = "templates"
	DefaultLogLevel    = "info"
)

// DefaultOutputs are the artifacts rendered when none are selected.
var DefaultOutputs = []string{"signs", "daily", "slides"}

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	ReportPath   string   `json:"report_path,omitempty"`
	OutputDir    string   `json:"output_dir,omitempty"`
	TemplateDir  string   `json:"template_dir,omitempty"`
	ProfilesPath string   `json:"profiles_path,omitempty"`
	Outputs      []string `json:"outputs,omitempty"`
	AccentColor  string   `json:"accent_color,omitempty"`
	LogLevel     string   `json:"log_level,omitempty"`
}

// getConfigPath returns the absolute path to ~/.autosigns.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".autosigns.json"), nil
}

// Path returns where the configuration file lives.
func Path() (string, error) {
	return getConfigPath()
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Effective loads the saved configuration, applies environment overrides
// (a .env file in the working directory is read first, without replacing
// variables already set) and fills in defaults. The result is meant for
// running, not for saving.
func Effective() (*AppConfig, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	_ = godotenv.Load()
	cfg.ApplyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

// ApplyEnv overrides settings from AUTOSIGNS_* variables.
func (c *AppConfig) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvOutputDir)); v != "" {
		c.OutputDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTemplateDir)); v != "" {
		c.TemplateDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
}

func (c *AppConfig) applyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.TemplateDir == "" {
		c.TemplateDir = DefaultTemplateDir
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if len(c.Outputs) == 0 {
		c.Outputs = append([]string(nil), DefaultOutputs...)
	}
}

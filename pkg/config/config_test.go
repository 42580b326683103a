package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestConfigLoadSave(t *testing.T) {
	// Create a temporary directory to act as the user's home directory
	tempDir := t.TempDir()

	// Override the home directory environment variable for testing
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests

	// 1. Test Load with no existing file
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected empty config to be returned, got nil")
	}

	// 2. Modify and Save the config
	cfg.ReportPath = "/tmp/SectionScheduleDailySummary.xls"
	cfg.OutputDir = "/tmp/signs"
	cfg.TemplateDir = "/tmp/templates"
	cfg.Outputs = []string{"signs", "ics"}
	cfg.AccentColor = "205"

	err = Save(cfg)
	if err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	// Verify the file was actually created
	configPath := filepath.Join(tempDir, ".autosigns.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	// 3. Test Load with existing file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	// Compare loaded config with saved config
	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	// Write invalid JSON to the config file
	configPath := filepath.Join(tempDir, ".autosigns.json")
	err := os.WriteFile(configPath, []byte("invalid json { content"), 0644)
	if err != nil {
		t.Fatalf("failed to write invalid json: %v", err)
	}

	// Attempt to load the invalid JSON
	_, err = Load()
	if err == nil {
		t.Errorf("expected error when loading invalid json, got nil")
	}
}

func TestEffectiveAppliesEnvAndDefaults(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)
	t.Setenv(EnvOutputDir, "")
	t.Setenv(EnvTemplateDir, "/srv/templates")
	t.Setenv(EnvLogLevel, "DEBUG")

	if err := Save(&AppConfig{OutputDir: "/saved/out", TemplateDir: "/saved/templates"}); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	cfg, err := Effective()
	if err != nil {
		t.Fatalf("Effective failed: %v", err)
	}
	if cfg.OutputDir != "/saved/out" {
		t.Errorf("expected saved output dir, got %q", cfg.OutputDir)
	}
	if cfg.TemplateDir != "/srv/templates" {
		t.Errorf("expected env template dir, got %q", cfg.TemplateDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected env log level, got %q", cfg.LogLevel)
	}
	if !reflect.DeepEqual(cfg.Outputs, DefaultOutputs) {
		t.Errorf("expected default outputs, got %v", cfg.Outputs)
	}

	saved, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if saved.TemplateDir != "/saved/templates" {
		t.Errorf("env override leaked into the saved file: %q", saved.TemplateDir)
	}
}

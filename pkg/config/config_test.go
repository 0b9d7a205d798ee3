package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.OutputDir != "insee_results" {
		t.Errorf("default output_dir = %q", cfg.OutputDir)
	}
	if cfg.MaxDatasets != 20 || cfg.MaxIDBanksPerDataset != 100 {
		t.Errorf("default limits = %d/%d", cfg.MaxDatasets, cfg.MaxIDBanksPerDataset)
	}
	if cfg.Timeout.Duration != 30*time.Second {
		t.Errorf("default timeout = %v", cfg.Timeout.Duration)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := GetDefaultConfig()
	cfg.OutputDir = "/tmp/insee-out"
	cfg.MaxDatasets = 5
	cfg.FoldDiacritics = true
	cfg.Auth = &AuthConfig{ClientID: "id", ClientSecret: "secret"}

	if err := cfg.SaveConfig(path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.OutputDir != "/tmp/insee-out" {
		t.Errorf("output_dir = %q", loaded.OutputDir)
	}
	if loaded.MaxDatasets != 5 {
		t.Errorf("max_datasets = %d", loaded.MaxDatasets)
	}
	if !loaded.FoldDiacritics {
		t.Error("fold_diacritics lost in round-trip")
	}
	if loaded.Auth == nil || loaded.Auth.ClientID != "id" {
		t.Errorf("auth lost in round-trip: %+v", loaded.Auth)
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("output_dir = \"x\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.OutputDir != "x" {
		t.Errorf("output_dir = %q", cfg.OutputDir)
	}
	if cfg.MaxDatasets != 20 {
		t.Errorf("unset max_datasets should default to 20, got %d", cfg.MaxDatasets)
	}
}

func TestSaveTemplateConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := GetDefaultConfig().SaveTemplateConfig(path); err != nil {
		t.Fatalf("SaveTemplateConfig failed: %v", err)
	}

	// The template must itself be loadable.
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("template config does not load: %v", err)
	}
	if cfg.MaxDatasets != 20 {
		t.Errorf("template max_datasets = %d", cfg.MaxDatasets)
	}
}

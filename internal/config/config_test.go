package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "solow" {
		t.Errorf("expected model solow, got %s", cfg.Model)
	}
	if cfg.Horizon <= 0 {
		t.Error("horizon should be positive")
	}
	if cfg.Tolerance <= 0 {
		t.Error("tolerance should be positive")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("thrifty")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Savings != 0.6 {
		t.Errorf("expected savings 0.6, got %f", cfg.Savings)
	}
}

func TestGetPreset_Isolated(t *testing.T) {
	cfg := GetPreset("baseline")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	cfg.Savings = 0.99

	again := GetPreset("baseline")
	if again.Savings == 0.99 {
		t.Error("mutating a returned preset leaked into later lookups")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] >= presets[i] {
			t.Error("presets should be sorted")
		}
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.yaml")

	cfg := DefaultConfig()
	cfg.Savings = 0.45
	cfg.Horizon = 99

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Savings != 0.45 || loaded.Horizon != 99 {
		t.Errorf("roundtrip mismatch: %+v", loaded)
	}
}

func TestLoadPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")

	if err := os.WriteFile(path, []byte("savings: 0.8\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Savings != 0.8 {
		t.Errorf("expected savings 0.8, got %f", cfg.Savings)
	}
	// Unset fields keep their defaults.
	if cfg.Alpha != DefaultAlpha || cfg.Horizon != DefaultHorizon {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/sim.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

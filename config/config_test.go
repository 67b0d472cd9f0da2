package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := Validate(cfg); err != nil {
		t.Fatalf("Default config rejected: %v", err)
	}
	if cfg.Columns != 20 || cfg.Rows != 20 || cfg.BaseTickMs != 150 || cfg.SpeedStepMs != 8 ||
		cfg.MinTickMs != 50 || cfg.PointsPerLevel != 5 || cfg.StartLength != 3 {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, "columns = 30\nrows = 16\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Columns != 30 || cfg.Rows != 16 {
		t.Errorf("Expected 30x16, got %dx%d", cfg.Columns, cfg.Rows)
	}
	if cfg.BaseTickMs != 150 {
		t.Errorf("Unset keys should keep defaults, base tick %d", cfg.BaseTickMs)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"tiny grid", "columns = 2\n"},
		{"zero base tick", "base_tick_ms = 0\n"},
		{"floor above base", "min_tick_ms = 200\n"},
		{"zero points per level", "points_per_level = 0\n"},
		{"snake too long", "columns = 6\nstart_length = 5\n"},
		{"bad toml", "columns = \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Errorf("Expected %q to be rejected", tt.body)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfiguration(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("expected version 1, got %d", cfg.Version)
	}
	if cfg.Detector.PresenceThreshold != 60 {
		t.Errorf("expected presence threshold 60, got %d", cfg.Detector.PresenceThreshold)
	}
	if cfg.Detector.RecurrenceRatio != 0.5 {
		t.Errorf("expected recurrence ratio 0.5, got %v", cfg.Detector.RecurrenceRatio)
	}
	if cfg.Export.ContentWidth != 1140 {
		t.Errorf("expected content width 1140, got %d", cfg.Export.ContentWidth)
	}
	if cfg.Detector.Header.Tag != 40 {
		t.Errorf("expected header tag weight 40, got %d", cfg.Detector.Header.Tag)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("unable to write config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	t.Run("overrides layer over defaults", func(t *testing.T) {
		path := writeConfig(t, `
version: 1
detector:
  presence_threshold: 75
`)
		cfg, err := LoadConfiguration(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Detector.PresenceThreshold != 75 {
			t.Errorf("expected overridden threshold 75, got %d", cfg.Detector.PresenceThreshold)
		}
		if cfg.Export.ContentWidth != 1140 {
			t.Errorf("default content width lost, got %d", cfg.Export.ContentWidth)
		}
	})

	t.Run("unknown keys rejected", func(t *testing.T) {
		path := writeConfig(t, `
version: 1
detektor:
  presence_threshold: 75
`)
		if _, err := LoadConfiguration(path); err == nil {
			t.Errorf("expected error for unknown key")
		}
	})

	t.Run("bad version rejected", func(t *testing.T) {
		path := writeConfig(t, "version: 2\n")
		if _, err := LoadConfiguration(path); err == nil {
			t.Errorf("expected error for unsupported version")
		}
	})

	t.Run("bad threshold rejected", func(t *testing.T) {
		path := writeConfig(t, `
version: 1
detector:
  presence_threshold: 150
`)
		if _, err := LoadConfiguration(path); err == nil {
			t.Errorf("expected error for out-of-range threshold")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Errorf("expected error for missing file")
		}
	})
}

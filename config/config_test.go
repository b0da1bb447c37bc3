package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Errorf("screen = %dx%d, want 1280x720", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Field.Mode != "flow" {
		t.Errorf("mode = %q, want flow", cfg.Field.Mode)
	}
	if cfg.Field.Scale != 100.0 {
		t.Errorf("scale = %f, want 100", cfg.Field.Scale)
	}
	if cfg.Particles.Count != 2000 {
		t.Errorf("count = %d, want 2000", cfg.Particles.Count)
	}
	if cfg.Render.TrailAlpha != 0.95 {
		t.Errorf("trail_alpha = %f, want 0.95", cfg.Render.TrailAlpha)
	}
	if cfg.Derived.ScreenW32 != 1280 {
		t.Errorf("derived width = %f, want 1280", cfg.Derived.ScreenW32)
	}
}

func TestLoadOverridesPartial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	override := []byte("field:\n  mode: vortex\nparticles:\n  count: 500\n")
	if err := os.WriteFile(path, override, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.Field.Mode != "vortex" {
		t.Errorf("mode = %q, want vortex", cfg.Field.Mode)
	}
	if cfg.Particles.Count != 500 {
		t.Errorf("count = %d, want 500", cfg.Particles.Count)
	}
	// Untouched fields keep defaults
	if cfg.Field.Scale != 100.0 {
		t.Errorf("scale = %f, want default 100", cfg.Field.Scale)
	}
	if cfg.Screen.Width != 1280 {
		t.Errorf("width = %d, want default 1280", cfg.Screen.Width)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Field.Mode = "magnetic"

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading config: %v", err)
	}
	if back.Field.Mode != "magnetic" {
		t.Errorf("mode after roundtrip = %q, want magnetic", back.Field.Mode)
	}
}

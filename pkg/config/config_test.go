package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if time.Duration(cfg.Rate.MinInterval) != 500*time.Millisecond {
		t.Errorf("default min_interval = %v", time.Duration(cfg.Rate.MinInterval))
	}
	if cfg.Terrain.Model != "flat" {
		t.Errorf("default terrain model = %q", cfg.Terrain.Model)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
rate:
  min_interval: 2s
terrain:
  model: none
  flat_height_m: 150
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if time.Duration(cfg.Rate.MinInterval) != 2*time.Second {
		t.Errorf("min_interval = %v, want 2s", time.Duration(cfg.Rate.MinInterval))
	}
	if cfg.Terrain.Model != "none" || cfg.Terrain.FlatHeight != 150 {
		t.Errorf("terrain = %+v", cfg.Terrain)
	}
	// Untouched sections keep their defaults.
	if cfg.Output.Path != "track.geojson" {
		t.Errorf("output path = %q", cfg.Output.Path)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("rate:\n  min_interval: soon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted an unparseable duration")
	}
}

func TestGenerateDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	if err := GenerateDefault(path); err != nil {
		t.Fatalf("GenerateDefault() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() of generated file error = %v", err)
	}
	if time.Duration(cfg.Rate.MinInterval) != 500*time.Millisecond {
		t.Errorf("round-tripped min_interval = %v", time.Duration(cfg.Rate.MinInterval))
	}
}

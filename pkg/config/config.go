// Package config loads the tool configuration from YAML, filling in defaults
// for anything the file leaves out.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Rate    RateConfig    `yaml:"rate"`
	Terrain TerrainConfig `yaml:"terrain"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
}

// InputConfig holds packet log input settings.
type InputConfig struct {
	Path string `yaml:"path"`
}

// RateConfig holds settings for the angular rate estimator.
type RateConfig struct {
	// MinInterval is the minimum attitude spacing used for the line of
	// sight rate estimate.
	MinInterval Duration `yaml:"min_interval"`
}

// TerrainConfig selects the elevation model used for terrain intersection.
type TerrainConfig struct {
	// Model is "flat" or "none".
	Model string `yaml:"model"`
	// FlatHeight is the plane height above the ellipsoid for the flat
	// model, meters.
	FlatHeight float64 `yaml:"flat_height_m"`
}

// OutputConfig holds GeoJSON track output settings.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Duration wraps time.Duration with YAML string parsing ("500ms", "2s").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Path: "telemetry.bin",
		},
		Rate: RateConfig{
			MinInterval: Duration(500 * time.Millisecond),
		},
		Terrain: TerrainConfig{
			Model:      "flat",
			FlatHeight: 0,
		},
		Output: OutputConfig{
			Path: "track.geojson",
		},
		Log: LogConfig{
			Path:  "",
			Level: "INFO",
		},
	}
}

// Load reads the config file at path on top of the defaults. A missing file
// is not an error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to the given path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// GenerateDefault creates a default config file at the given path.
// Returns nil if the file already exists.
func GenerateDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return Save(path, DefaultConfig())
}

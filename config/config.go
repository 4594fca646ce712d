// Package config loads optional playback/render settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/8dcc/godsong-go/constants"
)

// Config holds the tunables the TempleOS player exposes as variables:
// tempo in quarter notes per second, staccato factor 0..1, plus output
// cosmetics.
type Config struct {
	TempoQPS float64 `yaml:"tempo"`
	Staccato float64 `yaml:"staccato"`
	Velocity uint8   `yaml:"velocity"`
	Title    string  `yaml:"title"`
}

// Default returns the TempleOS defaults.
func Default() Config {
	return Config{
		TempoQPS: constants.DefaultTempoQPS,
		Staccato: 1.0,
		Velocity: 90,
	}
}

// Load reads path and overlays it on the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if cfg.TempoQPS <= 0 {
		return cfg, fmt.Errorf("tempo must be positive, got %v", cfg.TempoQPS)
	}
	if cfg.Staccato <= 0 || cfg.Staccato > 1 {
		return cfg, fmt.Errorf("staccato must be in (0, 1], got %v", cfg.Staccato)
	}
	return cfg, nil
}

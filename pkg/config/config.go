// Package config loads render parameters from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the five render parameters plus the output path.
type Config struct {
	CenterX       float64 `toml:"center-x" yaml:"center-x"`
	CenterY       float64 `toml:"center-y" yaml:"center-y"`
	Radius        float64 `toml:"radius" yaml:"radius"`
	Size          int     `toml:"size" yaml:"size"`
	MaxIterations int     `toml:"iterations" yaml:"iterations"`
	Output        string  `toml:"out" yaml:"out"`
}

// Default is a full view of the set at the classic resolution.
func Default() Config {
	return Config{
		CenterX:       0,
		CenterY:       0,
		Radius:        2,
		Size:          1500,
		MaxIterations: 1000,
		Output:        "almond-bread.png",
	}
}

// Load reads path over the defaults. The format is chosen by extension:
// .yaml and .yml parse as YAML, everything else as TOML.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects parameter sets the renderer cannot evaluate.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", c.Size)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.MaxIterations)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %v", c.Radius)
	}
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return nil
}

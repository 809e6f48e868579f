package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default returns the configuration used when no file overrides it.
// Tolerances follow the values the partitioning was tuned with: 5 m
// minimum segment, 1 m intersection buffer.
func Default() *AppConfig {
	return &AppConfig{
		Projection: ProjectionConfig{UTMZone: 17},
		Tolerance:  ToleranceConfig{MinSegmentM: 5, BufferM: 1},
		Output: OutputConfig{
			Dir:              "dump_data",
			SimplifyM:        3,
			StrokeScale:      0.05,
			CombinedMaxRoute: 300,
			PastelFactor:     0.1,
		},
	}
}

// Load reads and validates a yaml configuration file, layered over the
// defaults. An empty path returns the defaults unchanged.
func Load(path string) (*AppConfig, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration's struct tags.
func (c *AppConfig) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Package config handles preprocessing configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/meshprep/pkg/meshlet"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all preprocessing settings.
type Config struct {
	Meshlet meshlet.Limits `yaml:"meshlet"`
	Atlas   AtlasConfig    `yaml:"atlas"`
	Scene   SceneConfig    `yaml:"scene"`
	Output  OutputConfig   `yaml:"output"`
	Logging LoggingConfig  `yaml:"logging"`
}

// AtlasConfig holds texture atlas settings.
type AtlasConfig struct {
	Channels int `yaml:"channels"` // Bytes per texel, shared by every layer
}

// SceneConfig describes the procedural scene built by the CLI.
type SceneConfig struct {
	GridSize      int `yaml:"grid_size"`      // Quads per side of the ground plane
	Cubes         int `yaml:"cubes"`          // Number of textured cubes
	TextureSize   int `yaml:"texture_size"`   // Edge length of the largest checker texture
	SolidMaterial int `yaml:"solid_material"` // Number of 1x1 solid colour materials
}

// OutputConfig holds artifact output settings.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	DumpBMP   bool   `yaml:"dump_bmp"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Meshlet: meshlet.DefaultLimits,
		Atlas: AtlasConfig{
			Channels: 4,
		},
		Scene: SceneConfig{
			GridSize:      16,
			Cubes:         4,
			TextureSize:   64,
			SolidMaterial: 2,
		},
		Output: OutputConfig{
			Directory: "out",
			DumpBMP:   true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks value ranges that would otherwise fail deep in the pipeline.
func (c *Config) Validate() error {
	if err := c.Meshlet.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Atlas.Channels < 1 || c.Atlas.Channels > 4 {
		return fmt.Errorf("%w: atlas channels %d outside [1, 4]", ErrInvalidConfig, c.Atlas.Channels)
	}
	if c.Scene.GridSize < 0 || c.Scene.Cubes < 0 || c.Scene.SolidMaterial < 0 {
		return fmt.Errorf("%w: scene counts must not be negative", ErrInvalidConfig)
	}
	if c.Scene.Cubes > 0 && c.Scene.TextureSize < 1 {
		return fmt.Errorf("%w: texture size %d must be positive", ErrInvalidConfig, c.Scene.TextureSize)
	}
	return nil
}

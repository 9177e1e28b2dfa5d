package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/meshprep/pkg/meshlet"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Meshlet.MaxVertices != 64 {
		t.Errorf("expected max vertices 64, got %d", cfg.Meshlet.MaxVertices)
	}
	if cfg.Meshlet.MaxPrimitives != 124 {
		t.Errorf("expected max primitives 124, got %d", cfg.Meshlet.MaxPrimitives)
	}
	if cfg.Atlas.Channels != 4 {
		t.Errorf("expected 4 atlas channels, got %d", cfg.Atlas.Channels)
	}
	if cfg.Output.Directory != "out" {
		t.Errorf("expected output directory 'out', got %s", cfg.Output.Directory)
	}
	if !cfg.Output.DumpBMP {
		t.Error("expected dump_bmp to be true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "meshprep.yaml")

	yamlContent := `
meshlet:
  max_vertices: 128
  max_primitives: 256

atlas:
  channels: 3

scene:
  grid_size: 4
  cubes: 1

output:
  directory: "artifacts"
  dump_bmp: false

logging:
  level: "debug"
  log_file: "meshprep.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Meshlet.MaxVertices != 128 || cfg.Meshlet.MaxPrimitives != 256 {
		t.Errorf("expected meshlet limits 128/256, got %+v", cfg.Meshlet)
	}
	if cfg.Atlas.Channels != 3 {
		t.Errorf("expected 3 channels, got %d", cfg.Atlas.Channels)
	}
	if cfg.Scene.GridSize != 4 || cfg.Scene.Cubes != 1 {
		t.Errorf("expected scene 4/1, got %+v", cfg.Scene)
	}
	// Unset keys keep their defaults.
	if cfg.Scene.TextureSize != 64 {
		t.Errorf("expected default texture size 64, got %d", cfg.Scene.TextureSize)
	}
	if cfg.Output.Directory != "artifacts" || cfg.Output.DumpBMP {
		t.Errorf("unexpected output config %+v", cfg.Output)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "meshprep.log" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
meshlet:
  max_vertices: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/meshprep.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"vertex cap too large", func(c *Config) { c.Meshlet.MaxVertices = 300 }, meshlet.ErrInvalidLimits},
		{"primitive cap zero", func(c *Config) { c.Meshlet.MaxPrimitives = 0 }, meshlet.ErrInvalidLimits},
		{"channels zero", func(c *Config) { c.Atlas.Channels = 0 }, ErrInvalidConfig},
		{"channels five", func(c *Config) { c.Atlas.Channels = 5 }, ErrInvalidConfig},
		{"negative cubes", func(c *Config) { c.Scene.Cubes = -1 }, ErrInvalidConfig},
		{"zero texture size", func(c *Config) { c.Scene.TextureSize = 0 }, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want wrapped ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile("meshprep.yaml", []byte("atlas:\n  channels: 1\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Error("expected to find meshprep.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "meshlet caps",
			setup: func() {
				*flagMaxVertices = 32
				*flagMaxPrimitives = 48
			},
			verify: func(cfg *Config) {
				if cfg.Meshlet.MaxVertices != 32 || cfg.Meshlet.MaxPrimitives != 48 {
					t.Errorf("expected caps 32/48, got %+v", cfg.Meshlet)
				}
			},
			teardown: func() {
				*flagMaxVertices = 0
				*flagMaxPrimitives = 0
			},
		},
		{
			name:  "channels",
			setup: func() { *flagChannels = 1 },
			verify: func(cfg *Config) {
				if cfg.Atlas.Channels != 1 {
					t.Errorf("expected 1 channel, got %d", cfg.Atlas.Channels)
				}
			},
			teardown: func() { *flagChannels = 0 },
		},
		{
			name: "output",
			setup: func() {
				*flagOut = "/tmp/meshprep"
				*flagNoBMP = true
			},
			verify: func(cfg *Config) {
				if cfg.Output.Directory != "/tmp/meshprep" || cfg.Output.DumpBMP {
					t.Errorf("unexpected output config %+v", cfg.Output)
				}
			},
			teardown: func() {
				*flagOut = ""
				*flagNoBMP = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestApplyFlagsNoOverride(t *testing.T) {
	cfg := Default()
	original := *cfg
	applyFlags(cfg)

	if *cfg != original {
		t.Errorf("applyFlags changed config without flags: %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "meshprep.yaml")

	cfg := Default()
	cfg.Meshlet.MaxVertices = 96
	cfg.Output.DumpBMP = false
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile() error: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded config = %+v, want %+v", loaded, cfg)
	}
}

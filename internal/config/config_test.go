package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/gridmesh/internal/engine/terrain"
	"github.com/Faultbox/gridmesh/pkg/grid"
	"github.com/Faultbox/gridmesh/pkg/math"
	"go.uber.org/multierr"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test terrain defaults
	if cfg.Terrain.ChunkSize != [2]int32{40, 40} {
		t.Errorf("expected chunk size 40x40, got %v", cfg.Terrain.ChunkSize)
	}
	if cfg.Terrain.QuadSize != [2]float32{2, 2} {
		t.Errorf("expected quad size 2x2, got %v", cfg.Terrain.QuadSize)
	}
	if cfg.Terrain.VisibleRange != [2]int32{3, 3} {
		t.Errorf("expected visible range 3x3, got %v", cfg.Terrain.VisibleRange)
	}

	// Test height map defaults
	if cfg.HeightMap.Kind != HeightNoise {
		t.Errorf("expected noise height map, got %s", cfg.HeightMap.Kind)
	}
	if !cfg.HeightMap.Sanitize {
		t.Error("expected sanitize to be true by default")
	}

	// Test material defaults
	if cfg.Material.TileSize != [2]float32{8, 8} {
		t.Errorf("expected tile size 8x8, got %v", cfg.Material.TileSize)
	}

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "terrain.yaml")

	yamlContent := `
terrain:
  chunk_size: [20, 100]
  quad_size: [1.0, 1.0]
  visible_range: [2, 4]

height_map:
  kind: jagged
  seed: 7

material:
  name: rock
  color: [0.2, 0.3, 0.4, 1.0]
  tile_size: [100, 100]

graphics:
  width: 1920
  height: 1080
  fullscreen: true

sim:
  ticks: 50
  speed: 2.5
  direction: [0, -1]

logging:
  level: "debug"
  log_file: "terrain.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Terrain.ChunkSize != [2]int32{20, 100} {
		t.Errorf("expected chunk size [20 100], got %v", cfg.Terrain.ChunkSize)
	}
	if cfg.Terrain.VisibleRange != [2]int32{2, 4} {
		t.Errorf("expected visible range [2 4], got %v", cfg.Terrain.VisibleRange)
	}
	if cfg.HeightMap.Kind != HeightJagged || cfg.HeightMap.Seed != 7 {
		t.Errorf("unexpected height map %+v", cfg.HeightMap)
	}
	// Unset keys keep their defaults
	if cfg.HeightMap.Octaves != 4 {
		t.Errorf("expected default octaves 4, got %d", cfg.HeightMap.Octaves)
	}
	if cfg.Material.Name != "rock" || cfg.Material.TileSize != [2]float32{100, 100} {
		t.Errorf("unexpected material %+v", cfg.Material)
	}
	if !cfg.Graphics.Fullscreen || cfg.Graphics.Width != 1920 {
		t.Errorf("unexpected graphics %+v", cfg.Graphics)
	}
	if cfg.Sim.Ticks != 50 || cfg.Sim.Direction != [2]float32{0, -1} {
		t.Errorf("unexpected sim %+v", cfg.Sim)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "terrain.log" {
		t.Errorf("unexpected logging %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
terrain:
  chunk_size: [1, 2, 3]
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading wrong-length array, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/terrain.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Terrain.ChunkSize = [2]int32{0, 40}
	cfg.Terrain.QuadSize = [2]float32{2, -1}
	cfg.Terrain.VisibleRange = [2]int32{-1, 3}
	cfg.HeightMap.Kind = "mountains"
	cfg.Material.TileSize = [2]float32{0, 0}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := len(multierr.Errors(err)); got != 5 {
		t.Errorf("expected 5 errors, got %d: %v", got, err)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("expected ErrInvalidConfig")
	}
	for _, target := range []error{grid.ErrInvalidChunkSize, grid.ErrInvalidQuadSize, grid.ErrInvalidRange, terrain.ErrInvalidTileSize} {
		if !errors.Is(err, target) {
			t.Errorf("expected %v in %v", target, err)
		}
	}
	if !strings.Contains(err.Error(), "mountains") {
		t.Errorf("error should name the bad kind: %v", err)
	}
}

func TestValidateUpperBounds(t *testing.T) {
	cfg := Default()
	cfg.Terrain.ChunkSize = [2]int32{50000, 50000}
	cfg.Terrain.VisibleRange = [2]int32{100000, 1}
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if got := len(multierr.Errors(err)); got != 4 {
		t.Errorf("expected 4 errors, got %d: %v", got, err)
	}
	for _, target := range []error{grid.ErrChunkTooLarge, grid.ErrRangeTooLarge} {
		if !errors.Is(err, target) {
			t.Errorf("expected %v in %v", target, err)
		}
	}

	cfg = Default()
	cfg.Terrain.ChunkSize = [2]int32{grid.MaxChunkSize, 1}
	cfg.Terrain.VisibleRange = [2]int32{grid.MaxVisibleRange, 0}
	if err := cfg.Validate(); err != nil {
		t.Errorf("limits themselves should validate: %v", err)
	}
}

func TestLoggingOptions(t *testing.T) {
	opts := LoggingConfig{Level: "debug", Format: "json"}.Options()
	if opts.Level != "debug" || opts.Format != "json" || !opts.Console || opts.File.Path != "" {
		t.Errorf("unexpected options %+v", opts)
	}

	opts = LoggingConfig{Level: "info", LogFile: "/tmp/gridmesh.log"}.Options()
	if opts.File.Path != "/tmp/gridmesh.log" || opts.File.MaxSizeMB == 0 {
		t.Errorf("file output not configured: %+v", opts.File)
	}
}

func TestBuildFromConfig(t *testing.T) {
	cfg := Default()
	cfg.Terrain.ChunkSize = [2]int32{2, 2}
	cfg.Terrain.QuadSize = [2]float32{1, 1}

	g, err := cfg.Terrain.NewGrid()
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.ChunkSize != grid.NewVertex(2, 2) || g.QuadSize != math.Splat(1) || g.WindowSize() != 49 {
		t.Errorf("unexpected grid %+v", g)
	}

	kinds := map[string]float32{
		HeightFlat:   0,
		HeightSloped: -5,
		HeightJagged: 1,
	}
	for kind, want := range kinds {
		cfg.HeightMap.Kind = kind
		h, err := cfg.HeightMap.Build()
		if err != nil {
			t.Fatalf("Build(%s): %v", kind, err)
		}
		if got := h.Height(0, 5); got != want {
			t.Errorf("%s Height(0, 5) = %f, want %f", kind, got, want)
		}
	}

	cfg.HeightMap = Default().HeightMap
	noise, err := cfg.HeightMap.Build()
	if err != nil {
		t.Fatalf("Build(noise): %v", err)
	}
	if noise.Height(123, 456) == noise.Height(125, 455) {
		t.Error("noise height map repeats along (2,-1)")
	}

	cfg.HeightMap.Kind = "lava"
	if _, err := cfg.HeightMap.Build(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for unknown kind, got %v", err)
	}

	m, err := cfg.Material.Build()
	if err != nil {
		t.Fatalf("Material.Build: %v", err)
	}
	if m.Material.Name != "ground" || m.TileSize != math.Splat(8) {
		t.Errorf("unexpected material %+v", m)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Isolate from any real user config
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create terrain.yaml in current directory
	configPath := filepath.Join(tmpDir, "terrain.yaml")
	if err := os.WriteFile(configPath, []byte("terrain:\n  chunk_size: [8, 8]\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find terrain.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "terrain layout flags",
			setup: func() {
				*flagChunk = 16
				*flagQuad = 0.5
				*flagRange = 0
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Terrain.ChunkSize != [2]int32{16, 16} {
					t.Errorf("expected chunk size 16x16, got %v", cfg.Terrain.ChunkSize)
				}
				if cfg.Terrain.QuadSize != [2]float32{0.5, 0.5} {
					t.Errorf("expected quad size 0.5, got %v", cfg.Terrain.QuadSize)
				}
				if cfg.Terrain.VisibleRange != [2]int32{0, 0} {
					t.Errorf("expected range 0, got %v", cfg.Terrain.VisibleRange)
				}
			},
			teardown: func() {
				*flagChunk = 0
				*flagQuad = 0
				*flagRange = -1
			},
		},
		{
			name: "height map flags",
			setup: func() {
				*flagHeightMap = HeightSloped
				*flagSeed = 1234
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.HeightMap.Kind != HeightSloped || cfg.HeightMap.Seed != 1234 {
					t.Errorf("unexpected height map %+v", cfg.HeightMap)
				}
			},
			teardown: func() {
				*flagHeightMap = ""
				*flagSeed = 0
			},
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "unset flags keep defaults",
			setup: func() {},
			verify: func(t *testing.T, cfg *Config) {
				def := Default()
				if cfg.Terrain != def.Terrain || cfg.HeightMap != def.HeightMap || cfg.Sim.Ticks != def.Sim.Ticks {
					t.Errorf("defaults changed without flags: %+v", cfg)
				}
			},
			teardown: func() {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "terrain.yaml")

	yamlContent := `
terrain:
  chunk_size: [10, 12]
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagChunk = 32
	defer func() {
		*flagConfig = ""
		*flagChunk = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Chunk size should be from flag, not file
	if cfg.Terrain.ChunkSize != [2]int32{32, 32} {
		t.Errorf("expected chunk size 32 from flag, got %v", cfg.Terrain.ChunkSize)
	}

	// Height should be from file since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "terrain.yaml")
	if err := os.WriteFile(configPath, []byte("terrain:\n  quad_size: [0, 0]\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFile(configPath); !errors.Is(err, grid.ErrInvalidQuadSize) {
		t.Errorf("expected quad size error, got %v", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "terrain.yaml")

	cfg := Default()
	cfg.Terrain.ChunkSize = [2]int32{64, 32}
	cfg.HeightMap.Kind = HeightSloped
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Terrain != cfg.Terrain || loaded.HeightMap != cfg.HeightMap || loaded.Material != cfg.Material {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestSaveToUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("HOME", home)
	t.Setenv("APPDATA", home)

	cfg := Default()
	cfg.HeightMap.Kind = HeightJagged
	cfg.Sim.Ticks = 42
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	path := filepath.Join(ConfigDir(), "terrain.yaml")
	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.HeightMap.Kind != HeightJagged || loaded.Sim.Ticks != 42 {
		t.Errorf("saved config not loaded back: %+v", loaded)
	}
}

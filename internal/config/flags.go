package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagChunk      = flag.Int("chunk", 0, "Quads per chunk side")
	flagQuad       = flag.Float64("quad", 0, "World size of one quad")
	flagRange      = flag.Int("range", -1, "Chunks kept in play on each side of the tracker")
	flagHeightMap  = flag.String("heightmap", "", "Height function: flat, sloped, jagged, noise")
	flagSeed       = flag.Int64("seed", 0, "Noise seed (0 keeps the configured seed)")
	flagTicks      = flag.Int("ticks", 0, "Headless simulation ticks")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagSave       = flag.Bool("save-config", false, "Write the effective config to the user config directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether -save-config was given.
func SaveRequested() bool {
	return *flagSave
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagChunk > 0 {
		cfg.Terrain.ChunkSize = [2]int32{int32(*flagChunk), int32(*flagChunk)}
	}
	if *flagQuad > 0 {
		cfg.Terrain.QuadSize = [2]float32{float32(*flagQuad), float32(*flagQuad)}
	}
	if *flagRange >= 0 {
		cfg.Terrain.VisibleRange = [2]int32{int32(*flagRange), int32(*flagRange)}
	}
	if *flagHeightMap != "" {
		cfg.HeightMap.Kind = *flagHeightMap
	}
	if *flagSeed != 0 {
		cfg.HeightMap.Seed = *flagSeed
	}
	if *flagTicks > 0 {
		cfg.Sim.Ticks = *flagTicks
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}

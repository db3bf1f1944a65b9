// Package config handles terrain configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Terrain   TerrainConfig   `yaml:"terrain"`
	HeightMap HeightMapConfig `yaml:"height_map"`
	Material  MaterialConfig  `yaml:"material"`
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Sim       SimConfig       `yaml:"sim"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// TerrainConfig holds grid layout settings for a terrain instance.
type TerrainConfig struct {
	ChunkSize    [2]int32   `yaml:"chunk_size"`    // Quads per chunk (x, z)
	QuadSize     [2]float32 `yaml:"quad_size"`     // World size of one quad (x, z)
	VisibleRange [2]int32   `yaml:"visible_range"` // Chunks kept around the tracker per side
}

// HeightMapConfig selects and parameterizes the height function.
type HeightMapConfig struct {
	Kind        string  `yaml:"kind"` // flat, sloped, jagged or noise
	Seed        int64   `yaml:"seed"`
	Amplitude   float32 `yaml:"amplitude"`
	Frequency   float64 `yaml:"frequency"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Sanitize    bool    `yaml:"sanitize"` // Replace NaN/Inf samples with 0
}

// MaterialConfig holds the shared chunk material.
type MaterialConfig struct {
	Name     string     `yaml:"name"`
	Color    [4]float32 `yaml:"color"`
	TileSize [2]float32 `yaml:"tile_size"`
}

// GraphicsConfig holds viewer display settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"`        // Vertical field of view in degrees
	MoveSpeed  float32 `yaml:"move_speed"` // Tracker speed in world units per second
}

// SimConfig holds headless simulation settings.
type SimConfig struct {
	Ticks     int        `yaml:"ticks"`
	Speed     float32    `yaml:"speed"`     // World units per tick
	Direction [2]float32 `yaml:"direction"` // Walk direction on the XZ plane
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`  // debug, info, warn or error
	Format  string `yaml:"format"` // console or json
	LogFile string `yaml:"log_file"`
}

// Height map kinds.
const (
	HeightFlat   = "flat"
	HeightSloped = "sloped"
	HeightJagged = "jagged"
	HeightNoise  = "noise"
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			ChunkSize:    [2]int32{40, 40},
			QuadSize:     [2]float32{2, 2},
			VisibleRange: [2]int32{3, 3},
		},
		HeightMap: HeightMapConfig{
			Kind:        HeightNoise,
			Seed:        0,
			Amplitude:   10,
			Frequency:   0.01,
			Octaves:     4,
			Persistence: 0.5,
			Lacunarity:  2,
			Sanitize:    true,
		},
		Material: MaterialConfig{
			Name:     "ground",
			Color:    [4]float32{0.5, 0.5, 0.5, 1},
			TileSize: [2]float32{8, 8},
		},
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOV:        60,
			MoveSpeed:  40,
		},
		Sim: SimConfig{
			Ticks:     600,
			Speed:     1,
			Direction: [2]float32{1, 0},
		},
		Logging: LoggingConfig{
			Level:   "info",
			Format:  "console",
			LogFile: "",
		},
	}
}

package config

import (
	"fmt"

	"github.com/Faultbox/gridmesh/internal/engine/terrain"
	"github.com/Faultbox/gridmesh/internal/logger"
	"github.com/Faultbox/gridmesh/pkg/grid"
	"github.com/Faultbox/gridmesh/pkg/math"
)

// NewGrid creates a grid from the terrain settings.
func (c TerrainConfig) NewGrid() (*grid.Grid, error) {
	return grid.NewWithRange(c.chunkSize(), c.quadSize(), c.visibleRange())
}

func (c TerrainConfig) chunkSize() grid.Vertex {
	return grid.NewVertex(c.ChunkSize[0], c.ChunkSize[1])
}

func (c TerrainConfig) quadSize() math.Vec2 {
	return math.Vec2{X: c.QuadSize[0], Y: c.QuadSize[1]}
}

func (c TerrainConfig) visibleRange() grid.Vertex {
	return grid.NewVertex(c.VisibleRange[0], c.VisibleRange[1])
}

// Build returns the configured height function.
func (c HeightMapConfig) Build() (terrain.HeightMap, error) {
	var h terrain.HeightMap
	switch c.Kind {
	case HeightFlat:
		h = terrain.Flat
	case HeightSloped:
		h = terrain.Sloped
	case HeightJagged:
		h = terrain.Jagged
	case HeightNoise:
		h = terrain.NewNoise(c.Seed, c.Amplitude, c.Frequency, c.Octaves, c.Persistence, c.Lacunarity)
	default:
		return nil, fmt.Errorf("%w: unknown height map kind %q", ErrInvalidConfig, c.Kind)
	}

	if c.Sanitize {
		h = terrain.Sanitized(h)
	}
	return h, nil
}

// Build returns the configured chunk material.
func (c MaterialConfig) Build() (*terrain.ChunkMaterial, error) {
	material := &terrain.Material{Name: c.Name, Color: c.Color}
	return terrain.NewChunkMaterial(material, math.Vec2{X: c.TileSize[0], Y: c.TileSize[1]})
}

// Options returns logger options with console output and, when LogFile is
// set, rotated file output.
func (c LoggingConfig) Options() logger.Options {
	opts := logger.Options{
		Level:   c.Level,
		Format:  c.Format,
		Console: true,
	}
	if c.LogFile != "" {
		opts.File = logger.DefaultFileConfig(c.LogFile)
	}
	return opts
}

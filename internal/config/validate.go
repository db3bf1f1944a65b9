package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/gridmesh/internal/engine/terrain"
	"github.com/Faultbox/gridmesh/internal/logger"
	"github.com/Faultbox/gridmesh/pkg/grid"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs error
	add := func(err error) {
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
		}
	}

	t := c.Terrain
	if err := grid.ValidateChunkSize(t.chunkSize()); err != nil {
		add(fmt.Errorf("terrain.chunk_size: %w", err))
	}
	if err := grid.ValidateQuadSize(t.quadSize()); err != nil {
		add(fmt.Errorf("terrain.quad_size: %w", err))
	}
	if err := grid.ValidateVisibleRange(t.visibleRange()); err != nil {
		add(fmt.Errorf("terrain.visible_range: %w", err))
	}

	h := c.HeightMap
	switch h.Kind {
	case HeightFlat, HeightSloped, HeightJagged:
	case HeightNoise:
		if h.Octaves < 0 {
			add(fmt.Errorf("height_map.octaves must not be negative, got %d", h.Octaves))
		}
	default:
		add(fmt.Errorf("height_map.kind %q is not one of flat, sloped, jagged, noise", h.Kind))
	}

	if c.Material.TileSize[0] <= 0 || c.Material.TileSize[1] <= 0 {
		add(fmt.Errorf("material.tile_size %v: %w", c.Material.TileSize, terrain.ErrInvalidTileSize))
	}

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		add(fmt.Errorf("graphics size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180 {
		add(fmt.Errorf("graphics.fov %v must be in (0, 180)", c.Graphics.FOV))
	}
	if c.Sim.Ticks < 0 {
		add(fmt.Errorf("sim.ticks must not be negative, got %d", c.Sim.Ticks))
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		add(fmt.Errorf("logging.level %q: %w", c.Logging.Level, err))
	}
	switch c.Logging.Format {
	case "", logger.FormatConsole, logger.FormatJSON:
	default:
		add(fmt.Errorf("logging.format %q is not one of console, json", c.Logging.Format))
	}

	return errs
}

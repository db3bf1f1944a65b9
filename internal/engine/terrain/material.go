package terrain

import (
	"errors"
	"fmt"

	"github.com/Faultbox/gridmesh/pkg/math"
)

// ErrInvalidTileSize is returned for non-positive texture tile sizes.
var ErrInvalidTileSize = errors.New("texture tile size must be positive")

// DefaultTileSize is the texture repeat period used when none is configured.
var DefaultTileSize = math.Splat(8)

// UnconfiguredMaterial is used for chunks when no material was supplied.
var UnconfiguredMaterial = &Material{
	Name:  "unconfigured",
	Color: [4]float32{1, 1, 1, 1},
}

// ChunkMaterial pairs the material shared by all chunks with the world-space
// size over which its texture repeats once.
type ChunkMaterial struct {
	Material *Material
	TileSize math.Vec2
}

// NewChunkMaterial creates a ChunkMaterial. A nil material falls back to
// UnconfiguredMaterial.
func NewChunkMaterial(material *Material, tileSize math.Vec2) (*ChunkMaterial, error) {
	if !tileSize.Positive() {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidTileSize, tileSize)
	}
	if material == nil {
		material = UnconfiguredMaterial
	}
	return &ChunkMaterial{Material: material, TileSize: tileSize}, nil
}

// DefaultChunkMaterial returns the unconfigured material with the default
// tile size.
func DefaultChunkMaterial() *ChunkMaterial {
	return &ChunkMaterial{Material: UnconfiguredMaterial, TileSize: DefaultTileSize}
}

// OrDefault returns m, or DefaultChunkMaterial when m is nil.
func (m *ChunkMaterial) OrDefault() *ChunkMaterial {
	if m == nil {
		return DefaultChunkMaterial()
	}
	return m
}

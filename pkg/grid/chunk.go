package grid

import (
	"fmt"
	"iter"

	"github.com/Faultbox/gridmesh/pkg/math"
)

// Chunk is a rectangular block of lattice cells.
type Chunk struct {
	// Size is the chunk length in quads per axis.
	Size Vertex
	// Origin is the chunk position in chunk coordinates, not lattice ones.
	Origin Vertex
	// QuadSize is the world-space size of one lattice cell.
	QuadSize math.Vec2
}

// NewChunk creates a Chunk.
func NewChunk(origin, size Vertex, quadSize math.Vec2) Chunk {
	return Chunk{
		Size:     size,
		Origin:   origin,
		QuadSize: quadSize,
	}
}

// DefaultChunk returns a 40x40 chunk of 2x2 quads at the chunk origin.
func DefaultChunk() Chunk {
	return NewChunk(Vertex{}, NewVertex(40, 40), math.Splat(2))
}

// ChunkFromTranslation returns the chunk nearest to a world position.
func ChunkFromTranslation(position math.Vec3, chunkSize Vertex, quadSize math.Vec2) Chunk {
	// one chunk unit spans chunkSize quads
	chunkSpan := quadSize.Mul(math.Vec2{X: float32(chunkSize.X), Y: float32(chunkSize.Z)})
	origin := VertexFromTranslation(position, chunkSpan)
	return NewChunk(origin, chunkSize, quadSize)
}

// CountColumns returns the number of vertices along X.
func (c Chunk) CountColumns() int32 {
	return c.Size.X + 1
}

// CountRows returns the number of vertices along Z.
func (c Chunk) CountRows() int32 {
	return c.Size.Z + 1
}

// Area returns the number of quads in the chunk.
func (c Chunk) Area() int32 {
	return c.Size.X * c.Size.Z
}

// Width returns the chunk width in quads.
func (c Chunk) Width() int32 {
	return c.Size.X
}

// Depth returns the chunk depth in quads.
func (c Chunk) Depth() int32 {
	return c.Size.Z
}

// RawWidth returns the world-space width.
func (c Chunk) RawWidth() float32 {
	return float32(c.Width()) * c.QuadSize.X
}

// RawDepth returns the world-space depth.
func (c Chunk) RawDepth() float32 {
	return float32(c.Depth()) * c.QuadSize.Y
}

// OriginVertex returns the first global lattice vertex covered by the chunk.
func (c Chunk) OriginVertex() Vertex {
	return Vertex{
		X: saturatingMul(c.Origin.X, c.Size.X),
		Z: saturatingMul(c.Origin.Z, c.Size.Z),
	}
}

// Translation converts a lattice vertex into a 2D position, scaled by the
// quad size. Y of the result is the Z axis.
func (c Chunk) Translation(v Vertex) math.Vec2 {
	return math.Vec2{
		X: float32(v.X) * c.QuadSize.X,
		Y: float32(v.Z) * c.QuadSize.Y,
	}
}

// IterByRow yields every local vertex in [0,Size.X]x[0,Size.Z], z-major.
// Mesh index math depends on this order.
func (c Chunk) IterByRow() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for z := int32(0); z <= c.Size.Z; z++ {
			for x := int32(0); x <= c.Size.X; x++ {
				if !yield(Vertex{X: x, Z: z}) {
					return
				}
			}
		}
	}
}

// Name returns the display name of the chunk.
func (c Chunk) Name() string {
	return fmt.Sprintf("Terrain Chunk %dx%d", c.Origin.X, c.Origin.Z)
}

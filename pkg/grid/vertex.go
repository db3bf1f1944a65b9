// Package grid maps the infinite XZ terrain plane onto an integer lattice,
// groups lattice cells into rectangular chunks and tracks which chunks are
// in play around a moving point.
package grid

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/gridmesh/pkg/math"
)

// Vertex is an integer lattice coordinate on the XZ plane. Depending on
// context it addresses a single lattice point or a whole chunk.
type Vertex struct {
	X, Z int32
}

// NewVertex creates a Vertex.
func NewVertex(x, z int32) Vertex {
	return Vertex{X: x, Z: z}
}

// VertexFromTranslation returns the lattice vertex nearest to a world
// position, where one lattice step spans cellSize world units per axis.
// cellSize.Y is the Z-axis step.
func VertexFromTranslation(position math.Vec3, cellSize math.Vec2) Vertex {
	return Vertex{
		X: roundToInt32(position.X / cellSize.X),
		Z: roundToInt32(position.Z / cellSize.Y),
	}
}

// Add returns v + other. Overflow wraps; use SaturatingAdd near range limits.
func (v Vertex) Add(other Vertex) Vertex {
	return Vertex{v.X + other.X, v.Z + other.Z}
}

// SaturatingAdd returns v + other, clamped to the int32 range per axis.
func (v Vertex) SaturatingAdd(other Vertex) Vertex {
	return Vertex{saturatingAdd(v.X, other.X), saturatingAdd(v.Z, other.Z)}
}

// SaturatingSub returns v - other, clamped to the int32 range per axis.
func (v Vertex) SaturatingSub(other Vertex) Vertex {
	return Vertex{saturatingSub(v.X, other.X), saturatingSub(v.Z, other.Z)}
}

// String formats the vertex as "(x, z)".
func (v Vertex) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Z)
}

func saturatingAdd(a, b int32) int32 {
	return clampInt64(int64(a) + int64(b))
}

func saturatingSub(a, b int32) int32 {
	return clampInt64(int64(a) - int64(b))
}

func saturatingMul(a, b int32) int32 {
	return clampInt64(int64(a) * int64(b))
}

func clampInt64(v int64) int32 {
	if v > gomath.MaxInt32 {
		return gomath.MaxInt32
	}
	if v < gomath.MinInt32 {
		return gomath.MinInt32
	}
	return int32(v)
}

// roundToInt32 rounds half away from zero and saturates; NaN maps to 0.
func roundToInt32(f float32) int32 {
	r := gomath.Round(float64(f))
	switch {
	case gomath.IsNaN(r):
		return 0
	case r >= gomath.MaxInt32:
		return gomath.MaxInt32
	case r <= gomath.MinInt32:
		return gomath.MinInt32
	}
	return int32(r)
}

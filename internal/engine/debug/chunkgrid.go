// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/Faultbox/gridmesh/internal/engine/terrain"
	"github.com/Faultbox/gridmesh/pkg/grid"
)

// LineVertex is one endpoint of a debug line.
type LineVertex struct {
	X, Y, Z float32 // Position
	R, G, B float32 // Color
}

var (
	borderColor  = [3]float32{0.15, 0.15, 0.15}
	currentColor = [3]float32{1.0, 0.85, 0.1}
)

// ChunkBorders returns line segments outlining every in-play chunk of g,
// draped over the terrain and raised by lift. The chunk at current is
// drawn last in a highlight color.
func ChunkBorders(g *grid.Grid, heightMap terrain.HeightMap, current grid.Vertex, lift float32) []LineVertex {
	var vertices []LineVertex
	for _, origin := range g.ChunksInPlay() {
		if origin == current {
			continue
		}
		vertices = appendOutline(vertices, grid.NewChunk(origin, g.ChunkSize, g.QuadSize), heightMap, lift, borderColor)
	}
	if g.Contains(current) {
		chunk := grid.NewChunk(current, g.ChunkSize, g.QuadSize)
		vertices = appendOutline(vertices, chunk, heightMap, lift*2, currentColor)
	}
	return vertices
}

// appendOutline walks the chunk perimeter one lattice step at a time so
// the line follows the height map.
func appendOutline(vertices []LineVertex, chunk grid.Chunk, heightMap terrain.HeightMap, lift float32, color [3]float32) []LineVertex {
	origin := chunk.OriginVertex()
	size := chunk.Size

	point := func(x, z int32) LineVertex {
		v := origin.SaturatingAdd(grid.NewVertex(x, z))
		pos := chunk.Translation(v)
		y := heightMap.Height(float32(v.X), float32(v.Z)) + lift
		return LineVertex{pos.X, y, pos.Y, color[0], color[1], color[2]}
	}

	for x := range size.X {
		vertices = append(vertices, point(x, 0), point(x+1, 0))
		vertices = append(vertices, point(x, size.Z), point(x+1, size.Z))
	}
	for z := range size.Z {
		vertices = append(vertices, point(0, z), point(0, z+1))
		vertices = append(vertices, point(size.X, z), point(size.X, z+1))
	}
	return vertices
}

// OutlineVertexCount returns how many vertices ChunkBorders emits per
// chunk of the given size.
func OutlineVertexCount(size grid.Vertex) int {
	return 4 * int(size.X+size.Z)
}

package terrain

import (
	gomath "math"

	"github.com/Faultbox/gridmesh/pkg/grid"
	"github.com/Faultbox/gridmesh/pkg/math"
)

// ChunkMesh describes the mesh of one grid chunk.
type ChunkMesh struct {
	Chunk grid.Chunk
	// TextureTileSize is the world size over which the texture repeats once.
	TextureTileSize math.Vec2
}

// NewChunkMesh creates a ChunkMesh.
func NewChunkMesh(chunk grid.Chunk, textureTileSize math.Vec2) ChunkMesh {
	return ChunkMesh{
		Chunk:           chunk,
		TextureTileSize: textureTileSize,
	}
}

// CountVertices returns the number of vertices Build emits.
func (m ChunkMesh) CountVertices() int {
	return int(m.Chunk.CountColumns()) * int(m.Chunk.CountRows())
}

// CountIndices returns the number of indices Build emits, six per quad.
func (m ChunkMesh) CountIndices() int {
	return int(m.Chunk.Area()) * 6
}

// quadTriangles returns the two triangles of the quad whose near corner is
// the local vertex v.
func (m ChunkMesh) quadTriangles(v grid.Vertex) [6]uint32 {
	rowOffset := uint32(m.Chunk.Size.X) + 1
	quad := rowOffset*uint32(v.Z) + uint32(v.X)
	return [6]uint32{
		// right triangle
		quad + rowOffset + 1,
		quad + 1,
		quad + rowOffset,
		// left triangle
		quad,
		quad + rowOffset,
		quad + 1,
	}
}

// Build samples the height map over the chunk and returns the mesh in
// chunk-local space together with the world offset to place it at.
//
// Heights are stored relative to the chunk's origin sample so that vertex
// positions stay small however far the chunk is from the world origin.
func (m ChunkMesh) Build(heightMap HeightMap) (*Mesh, math.Vec3) {
	chunk := m.Chunk
	vertices := make([]Vertex, 0, m.CountVertices())
	indices := make([]uint32, 0, m.CountIndices())

	bounds := Bounds{
		Min: [3]float32{gomath.MaxFloat32, gomath.MaxFloat32, gomath.MaxFloat32},
		Max: [3]float32{-gomath.MaxFloat32, -gomath.MaxFloat32, -gomath.MaxFloat32},
	}

	origin := chunk.OriginVertex()
	originY := heightMap.Height(float32(origin.X), float32(origin.Z))

	for local := range chunk.IterByRow() {
		pos := chunk.Translation(local)
		global := origin.Add(local)

		height := heightMap.Height(float32(global.X), float32(global.Z))
		position := [3]float32{pos.X, height - originY, pos.Y}
		updateBounds(&bounds, position)

		vertices = append(vertices, Vertex{
			Position: position,
			Normal:   math.Up.Array(),
			// u follows Z and v follows X; unnormalized, sampled with REPEAT wrap
			TexCoord: [2]float32{
				float32(global.Z) / m.TextureTileSize.X,
				float32(global.X) / m.TextureTileSize.Y,
			},
		})

		if local.X < chunk.Size.X && local.Z < chunk.Size.Z {
			tris := m.quadTriangles(local)
			indices = append(indices, tris[:]...)
		}
	}

	corner := chunk.Translation(origin)
	offset := math.Vec3{X: corner.X, Y: originY, Z: corner.Y}

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   bounds,
	}, offset
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
}

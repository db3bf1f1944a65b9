// Package terrain builds renderable triangle meshes for grid chunks from a
// height function.
package terrain

// Vertex represents a chunk mesh vertex with all attributes.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds one chunk's mesh data ready for GPU upload. Positions are
// chunk-local; the caller places the mesh with the offset returned by
// ChunkMesh.Build.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of a mesh in local space.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Material is a shared rendering material reference. Hosts interpret it.
type Material struct {
	Name  string
	Color [4]float32
}

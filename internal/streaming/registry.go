package streaming

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/Faultbox/gridmesh/pkg/grid"
)

// Registry maps chunk coordinates to the handles spawned for them. A
// coordinate is present exactly when its chunk has live renderable state.
type Registry struct {
	chunks map[grid.Vertex][]Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{chunks: make(map[grid.Vertex][]Handle)}
}

// Name returns the display name of a registry.
func (r *Registry) Name() string {
	return "Terrain"
}

// Insert records the handles for a chunk, replacing any previous entry.
func (r *Registry) Insert(chunk grid.Vertex, handles ...Handle) {
	r.chunks[chunk] = handles
}

// Remove deletes a chunk entry and returns its handles.
func (r *Registry) Remove(chunk grid.Vertex) ([]Handle, bool) {
	handles, ok := r.chunks[chunk]
	if ok {
		delete(r.chunks, chunk)
	}
	return handles, ok
}

// Contains reports whether a chunk has an entry.
func (r *Registry) Contains(chunk grid.Vertex) bool {
	_, ok := r.chunks[chunk]
	return ok
}

// Handles returns the handles registered for a chunk.
func (r *Registry) Handles(chunk grid.Vertex) []Handle {
	return r.chunks[chunk]
}

// Len returns the number of registered chunks.
func (r *Registry) Len() int {
	return len(r.chunks)
}

// Chunks yields the registered chunk coordinates in map order.
func (r *Registry) Chunks() iter.Seq[grid.Vertex] {
	return maps.Keys(r.chunks)
}

// Stale returns, sorted, the registered chunks the grid no longer has in
// play. The result is a copy; callers may mutate the registry while
// walking it.
func (r *Registry) Stale(g *grid.Grid) []grid.Vertex {
	var stale []grid.Vertex
	for chunk := range r.chunks {
		if !g.Contains(chunk) {
			stale = append(stale, chunk)
		}
	}
	slices.SortFunc(stale, compareChunks)
	return stale
}

// Missing returns, sorted, the in-play chunks with no registry entry.
func (r *Registry) Missing(g *grid.Grid) []grid.Vertex {
	var missing []grid.Vertex
	for _, chunk := range g.ChunksInPlay() {
		if !r.Contains(chunk) {
			missing = append(missing, chunk)
		}
	}
	return missing
}

func compareChunks(a, b grid.Vertex) int {
	if c := cmp.Compare(a.Z, b.Z); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

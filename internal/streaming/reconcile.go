package streaming

import (
	"github.com/Faultbox/gridmesh/internal/engine/terrain"
	"github.com/Faultbox/gridmesh/pkg/grid"
)

// Stats summarizes one reconciliation pass.
type Stats struct {
	Spawned   int
	Despawned int
	InPlay    int
}

// Changed reports whether the pass spawned or despawned anything.
func (s Stats) Changed() bool {
	return s.Spawned > 0 || s.Despawned > 0
}

// Reconcile brings reg in line with the chunks g has in play: stale chunks
// are despawned first, then every missing chunk is meshed and spawned.
// A nil material means DefaultChunkMaterial.
func Reconcile(g *grid.Grid, reg *Registry, host Host, heightMap terrain.HeightMap, material *terrain.ChunkMaterial) Stats {
	material = material.OrDefault()
	stats := Stats{InPlay: g.Len()}

	for _, chunk := range reg.Stale(g) {
		handles, ok := reg.Remove(chunk)
		if !ok {
			continue
		}
		for _, h := range handles {
			host.Despawn(h)
		}
		stats.Despawned++
	}

	for _, origin := range reg.Missing(g) {
		chunk := grid.NewChunk(origin, g.ChunkSize, g.QuadSize)
		mesh, offset := terrain.NewChunkMesh(chunk, material.TileSize).Build(heightMap)

		h := host.Spawn(Spawn{
			Name:     chunk.Name(),
			Chunk:    origin,
			Mesh:     mesh,
			Offset:   offset,
			Material: material,
		})
		reg.Insert(origin, h)
		stats.Spawned++
	}

	return stats
}

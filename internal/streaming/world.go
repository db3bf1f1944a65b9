package streaming

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/gridmesh/internal/engine/terrain"
	"github.com/Faultbox/gridmesh/internal/logger"
	"github.com/Faultbox/gridmesh/pkg/grid"
)

var (
	ErrUnknownTerrain = errors.New("unknown terrain instance")
	ErrNoHeightMap    = errors.New("height map is required")
	ErrNoGrid         = errors.New("grid is required")
)

// instance is one grid with its tracker and, once attached, its registry.
type instance struct {
	id       uuid.UUID
	grid     *grid.Grid
	tracker  Tracker
	registry *Registry
}

// World drives every terrain instance once per Tick. It is not safe for
// concurrent use; the host loop is its only caller.
type World struct {
	host      Host
	heightMap terrain.HeightMap
	material  *terrain.ChunkMaterial

	instances map[uuid.UUID]*instance
	order     []uuid.UUID
	log       *zap.Logger
}

// NewWorld creates a World. The height map and material are fixed for the
// world's lifetime; a nil material means DefaultChunkMaterial.
func NewWorld(host Host, heightMap terrain.HeightMap, material *terrain.ChunkMaterial) (*World, error) {
	if host == nil {
		return nil, errors.New("host is required")
	}
	if heightMap == nil {
		return nil, ErrNoHeightMap
	}
	return &World{
		host:      host,
		heightMap: heightMap,
		material:  material.OrDefault(),
		instances: make(map[uuid.UUID]*instance),
		log:       logger.Named("streaming"),
	}, nil
}

// AddTerrain registers a grid and the tracker it follows. tracker may be
// nil; the grid then stays where it is until SetTracker.
func (w *World) AddTerrain(g *grid.Grid, tracker Tracker) (uuid.UUID, error) {
	if g == nil {
		return uuid.Nil, ErrNoGrid
	}
	id := uuid.New()
	w.instances[id] = &instance{id: id, grid: g, tracker: tracker}
	w.order = append(w.order, id)

	w.log.Info("terrain added",
		zap.Stringer("id", id),
		zap.Stringer("chunk_size", g.ChunkSize),
		zap.Float32("quad_x", g.QuadSize.X),
		zap.Float32("quad_z", g.QuadSize.Y),
		zap.Int("window", g.WindowSize()),
	)
	return id, nil
}

// RemoveTerrain despawns every chunk of an instance and forgets it.
func (w *World) RemoveTerrain(id uuid.UUID) error {
	inst, ok := w.instances[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTerrain, id)
	}

	despawned := 0
	if inst.registry != nil {
		for _, chunk := range slices.Collect(inst.registry.Chunks()) {
			handles, _ := inst.registry.Remove(chunk)
			for _, h := range handles {
				w.host.Despawn(h)
			}
			despawned++
		}
	}

	delete(w.instances, id)
	w.order = slices.DeleteFunc(w.order, func(other uuid.UUID) bool { return other == id })

	w.log.Info("terrain removed", zap.Stringer("id", id), zap.Int("despawned", despawned))
	return nil
}

// SetTracker replaces the tracker of an instance. nil stops tracking.
func (w *World) SetTracker(id uuid.UUID, tracker Tracker) error {
	inst, ok := w.instances[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTerrain, id)
	}
	inst.tracker = tracker
	return nil
}

// Grid returns the grid of an instance.
func (w *World) Grid(id uuid.UUID) (*grid.Grid, bool) {
	inst, ok := w.instances[id]
	if !ok {
		return nil, false
	}
	return inst.grid, true
}

// Registry returns the registry of an instance. It is nil until the first
// Tick after AddTerrain.
func (w *World) Registry(id uuid.UUID) (*Registry, bool) {
	inst, ok := w.instances[id]
	if !ok {
		return nil, false
	}
	return inst.registry, true
}

// Len returns the number of terrain instances.
func (w *World) Len() int {
	return len(w.instances)
}

// Tick runs one frame: every tracked grid is updated, registries are
// attached to new grids, then every instance is reconciled. The phases run
// in that order across all instances.
func (w *World) Tick() map[uuid.UUID]Stats {
	for _, id := range w.order {
		inst := w.instances[id]
		if inst.tracker == nil {
			continue
		}
		if pos, ok := inst.tracker.Position(); ok {
			inst.grid.Update(pos)
		}
	}

	for _, id := range w.order {
		inst := w.instances[id]
		if inst.registry == nil {
			inst.registry = NewRegistry()
		}
	}

	results := make(map[uuid.UUID]Stats, len(w.order))
	for _, id := range w.order {
		inst := w.instances[id]
		stats := Reconcile(inst.grid, inst.registry, w.host, w.heightMap, w.material)
		results[id] = stats

		if stats.Changed() {
			w.log.Debug("chunks reconciled",
				zap.Stringer("id", id),
				zap.Int("spawned", stats.Spawned),
				zap.Int("despawned", stats.Despawned),
				zap.Int("in_play", stats.InPlay),
			)
		}
	}
	return results
}

// Package sim walks a tracked point across the terrain without a window and
// records what the streaming layer did.
package sim

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/gridmesh/internal/config"
	"github.com/Faultbox/gridmesh/internal/logger"
	"github.com/Faultbox/gridmesh/internal/streaming"
	"github.com/Faultbox/gridmesh/pkg/grid"
	"github.com/Faultbox/gridmesh/pkg/math"
)

// Report summarizes a run.
type Report struct {
	Ticks     int
	Spawned   int
	Despawned int
	// Live is the number of chunks spawned at the end of the run.
	Live     int
	PeakLive int
	Vertices int
	// Crossings counts ticks on which the tracked point entered a new chunk.
	Crossings int
	Start     grid.Vertex
	End       grid.Vertex
	Position  math.Vec3
}

// Sim owns a headless world with one terrain instance.
type Sim struct {
	cfg     config.SimConfig
	grid    *grid.Grid
	host    *streaming.MemoryHost
	world   *streaming.World
	id      uuid.UUID
	tracker *streaming.Point
	log     *zap.Logger
}

// New builds a Sim from cfg. The tracked point starts at the world origin.
func New(cfg *config.Config) (*Sim, error) {
	g, err := cfg.Terrain.NewGrid()
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	heightMap, err := cfg.HeightMap.Build()
	if err != nil {
		return nil, fmt.Errorf("height map: %w", err)
	}
	material, err := cfg.Material.Build()
	if err != nil {
		return nil, fmt.Errorf("material: %w", err)
	}

	host := streaming.NewMemoryHost()
	world, err := streaming.NewWorld(host, heightMap, material)
	if err != nil {
		return nil, err
	}

	tracker := streaming.NewPoint(math.Vec3{})
	id, err := world.AddTerrain(g, tracker)
	if err != nil {
		return nil, err
	}

	return &Sim{
		cfg:     cfg.Sim,
		grid:    g,
		host:    host,
		world:   world,
		id:      id,
		tracker: tracker,
		log:     logger.Named("sim"),
	}, nil
}

// Step returns the per-tick displacement of the tracked point.
func (s *Sim) Step() math.Vec3 {
	dir := math.Vec2{X: s.cfg.Direction[0], Y: s.cfg.Direction[1]}
	if dir.Length() > 0 {
		dir = dir.Normalize()
	}
	dir = dir.Scale(s.cfg.Speed)
	return math.Vec3{X: dir.X, Z: dir.Y}
}

// Host returns the in-memory host.
func (s *Sim) Host() *streaming.MemoryHost {
	return s.host
}

// World returns the streaming world.
func (s *Sim) World() *streaming.World {
	return s.world
}

// Run ticks the world cfg.Ticks times, moving the tracked point by Step
// between ticks. It stops early with ctx's error when ctx is done.
func (s *Sim) Run(ctx context.Context) (Report, error) {
	step := s.Step()
	report := Report{Start: s.currentChunk()}
	last := report.Start

	for tick := range s.cfg.Ticks {
		if err := ctx.Err(); err != nil {
			s.fill(&report)
			return report, err
		}

		if tick > 0 {
			s.tracker.Translate(step)
		}

		stats := s.world.Tick()[s.id]
		report.Ticks++
		report.PeakLive = max(report.PeakLive, s.host.Live())

		if chunk := s.currentChunk(); chunk != last {
			report.Crossings++
			s.log.Debug("entered chunk",
				zap.Int("tick", tick),
				zap.Stringer("from", last),
				zap.Stringer("to", chunk),
				zap.Int("spawned", stats.Spawned),
				zap.Int("despawned", stats.Despawned),
			)
			last = chunk
		}
	}

	s.fill(&report)
	s.log.Info("simulation finished",
		zap.Int("ticks", report.Ticks),
		zap.Int("spawned", report.Spawned),
		zap.Int("despawned", report.Despawned),
		zap.Int("live", report.Live),
		zap.Int("crossings", report.Crossings),
	)
	return report, nil
}

func (s *Sim) fill(r *Report) {
	r.Spawned = s.host.Spawned
	r.Despawned = s.host.Despawned
	r.Live = s.host.Live()
	r.Vertices = s.host.Vertices
	r.End = s.currentChunk()
	r.Position, _ = s.tracker.Position()
}

// currentChunk is the chunk the grid centers on for the tracker position.
func (s *Sim) currentChunk() grid.Vertex {
	pos, _ := s.tracker.Position()
	return grid.ChunkFromTranslation(pos, s.grid.ChunkSize, s.grid.QuadSize).Origin
}

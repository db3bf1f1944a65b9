// Package streaming keeps spawned chunk meshes in step with the chunks a
// grid has in play.
package streaming

import (
	"github.com/Faultbox/gridmesh/internal/engine/terrain"
	"github.com/Faultbox/gridmesh/pkg/grid"
	"github.com/Faultbox/gridmesh/pkg/math"
)

// Handle identifies renderable state owned by a Host. The streaming layer
// only stores handles and hands them back for despawning.
type Handle uint64

// Spawn describes one chunk mesh for the host to make renderable.
type Spawn struct {
	Name  string
	Chunk grid.Vertex
	Mesh  *terrain.Mesh
	// Offset is the world translation of the chunk-local mesh.
	Offset   math.Vec3
	Material *terrain.ChunkMaterial
}

// Host owns renderable state.
type Host interface {
	// Spawn makes a chunk mesh renderable and returns its handle.
	Spawn(s Spawn) Handle
	// Despawn releases the state behind a handle returned by Spawn.
	Despawn(h Handle)
}

// Tracker exposes the world position a grid follows. ok is false when
// there is nothing to track this tick.
type Tracker interface {
	Position() (position math.Vec3, ok bool)
}

// TrackerFunc adapts a function to Tracker.
type TrackerFunc func() (math.Vec3, bool)

// Position calls f.
func (f TrackerFunc) Position() (math.Vec3, bool) {
	return f()
}

// Point is a Tracker at a movable position.
type Point struct {
	position math.Vec3
}

// NewPoint creates a Point at position.
func NewPoint(position math.Vec3) *Point {
	return &Point{position: position}
}

// Position returns the current position.
func (p *Point) Position() (math.Vec3, bool) {
	return p.position, true
}

// MoveTo sets the position.
func (p *Point) MoveTo(position math.Vec3) {
	p.position = position
}

// Translate moves the point by delta.
func (p *Point) Translate(delta math.Vec3) {
	p.position = p.position.Add(delta)
}

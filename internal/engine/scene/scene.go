// Package scene renders streamed terrain chunks.
package scene

import (
	"github.com/Faultbox/gridmesh/internal/engine/camera"
	"github.com/Faultbox/gridmesh/internal/engine/lighting"
	"github.com/Faultbox/gridmesh/pkg/math"
)

// Lighting holds the directional light and fog applied to every chunk.
type Lighting struct {
	Direction [3]float32
	Ambient   [3]float32
	Diffuse   [3]float32

	FogEnabled bool
	FogNear    float32
	FogFar     float32
	FogColor   [3]float32
}

// DefaultLighting returns a late-afternoon sun with fog that fades chunks
// out before the edge of the visible window at viewDistance.
func DefaultLighting(viewDistance float32, fogColor [3]float32) Lighting {
	return Lighting{
		Direction:  lighting.SunDirection(215, 40),
		Ambient:    [3]float32{0.35, 0.35, 0.4},
		Diffuse:    [3]float32{0.75, 0.7, 0.6},
		FogEnabled: viewDistance > 0,
		FogNear:    viewDistance * 0.6,
		FogFar:     viewDistance,
		FogColor:   fogColor,
	}
}

// Scene draws chunks, and optionally their borders, from an orbit
// camera's point of view.
type Scene struct {
	Camera   *camera.OrbitCamera
	Chunks   *ChunkRenderer
	Lines    *LineRenderer
	Lighting Lighting

	ShowBorders bool
}

// New creates a scene around existing renderers. lines may be nil.
func New(chunks *ChunkRenderer, lines *LineRenderer, cam *camera.OrbitCamera, light Lighting) *Scene {
	return &Scene{
		Camera:   cam,
		Chunks:   chunks,
		Lines:    lines,
		Lighting: light,
	}
}

// Render draws the scene with the given projection.
func (s *Scene) Render(projection math.Mat4) {
	viewProj := projection.Mul(s.Camera.ViewMatrix())
	s.Chunks.Render(viewProj, s.Camera.Position(), s.Lighting)
	if s.ShowBorders && s.Lines != nil {
		s.Lines.Render(viewProj)
	}
}

// Destroy releases GPU resources.
func (s *Scene) Destroy() {
	s.Chunks.Destroy()
	if s.Lines != nil {
		s.Lines.Destroy()
	}
}

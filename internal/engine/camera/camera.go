// Package camera provides the orbit camera used by the terrain viewer.
package camera

import (
	gomath "math"

	"github.com/Faultbox/gridmesh/pkg/math"
)

// OrbitCamera orbits around a center point, usually the tracked position.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // radians above the XZ plane
	Yaw      float32 // radians around +Y

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera sized for chunks of a few hundred
// world units.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        120.0,
		Pitch:           0.6,
		MinDistance:     5.0,
		MaxDistance:     2000.0,
		MinPitch:        0.05,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	pitch, yaw := float64(c.Pitch), float64(c.Yaw)
	offset := math.Vec3{
		X: float32(gomath.Cos(pitch) * gomath.Sin(yaw)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Cos(pitch) * gomath.Cos(yaw)),
	}
	return c.Center.Add(offset.Scale(c.Distance))
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Up)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = clamp(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// Forward returns the unit direction the camera faces, flattened onto XZ.
func (c *OrbitCamera) Forward() math.Vec3 {
	yaw := float64(c.Yaw)
	return math.Vec3{X: float32(-gomath.Sin(yaw)), Z: float32(-gomath.Cos(yaw))}
}

// Right returns the unit direction to the camera's right on XZ.
func (c *OrbitCamera) Right() math.Vec3 {
	yaw := float64(c.Yaw)
	return math.Vec3{X: float32(gomath.Cos(yaw)), Z: float32(-gomath.Sin(yaw))}
}

// MoveDelta converts movement intent into a world-space displacement
// relative to the camera heading.
func (c *OrbitCamera) MoveDelta(forward, right, up, distance float32) math.Vec3 {
	d := c.Forward().Scale(forward).Add(c.Right().Scale(right))
	if d.Length() > 1 {
		d = d.Normalize()
	}
	d.Y = up
	return d.Scale(distance)
}

// Follow moves the orbit center to target.
func (c *OrbitCamera) Follow(target math.Vec3) {
	c.Center = target
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

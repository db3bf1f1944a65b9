// Package lighting provides lighting utilities for 3D rendering.
package lighting

import "math"

// SunDirection converts compass angles in degrees to the direction sunlight
// travels. Azimuth rotates around +Y starting at +Z; elevation is the
// sun's height above the horizon. The result is normalized and points
// from the sun toward the ground.
func SunDirection(azimuth, elevation float32) [3]float32 {
	az := float64(azimuth) * math.Pi / 180.0
	el := float64(elevation) * math.Pi / 180.0

	// Spherical to Cartesian, then flipped to face away from the sun
	x := math.Cos(el) * math.Sin(az)
	y := math.Sin(el)
	z := math.Cos(el) * math.Cos(az)

	return [3]float32{float32(-x), float32(-y), float32(-z)}
}

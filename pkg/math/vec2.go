// Package math provides the small float32 vector and matrix types used by
// chunk geometry and the viewer camera.
package math

import "math"

// Vec2 is a 2D vector. On the terrain plane X maps to world X and Y to world Z.
type Vec2 struct {
	X, Y float32
}

// Splat returns a Vec2 with both components set to v.
func Splat(v float32) Vec2 {
	return Vec2{v, v}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Mul returns the componentwise product.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Normalize returns a unit vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Positive reports whether both components are strictly greater than zero.
// NaN components are not positive.
func (v Vec2) Positive() bool {
	return v.X > 0 && v.Y > 0
}

// Array returns the components as a fixed array (vertex buffer layout).
func (v Vec2) Array() [2]float32 {
	return [2]float32{v.X, v.Y}
}

package terrain

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// HeightMap computes terrain height for a global lattice coordinate. It is
// called once per mesh vertex and must be pure; implementations shared
// between terrain instances must be safe for concurrent use.
type HeightMap interface {
	Height(x, z float32) float32
}

// HeightFunc adapts a plain function to HeightMap.
type HeightFunc func(x, z float32) float32

// Height calls f(x, z).
func (f HeightFunc) Height(x, z float32) float32 {
	return f(x, z)
}

// Flat is zero everywhere.
var Flat HeightFunc = func(_, _ float32) float32 {
	return 0
}

// Sloped descends along +Z.
var Sloped HeightFunc = func(_, z float32) float32 {
	return -z
}

// Jagged is a sawtooth along Z with period 4. The remainder keeps the sign
// of z.
var Jagged HeightFunc = func(_, z float32) float32 {
	return float32(math.Mod(float64(z), 4))
}

// Sanitized wraps a HeightMap so that NaN and infinite samples become 0.
func Sanitized(h HeightMap) HeightMap {
	return HeightFunc(func(x, z float32) float32 {
		y := h.Height(x, z)
		if math.IsNaN(float64(y)) || math.IsInf(float64(y), 0) {
			return 0
		}
		return y
	})
}

// Noise is seeded fractal Perlin noise. Build it with NewNoise or
// DefaultNoise; the zero value is flat. Frequency should not be a whole
// number, since Perlin noise is zero on its own integer lattice.
type Noise struct {
	Seed        int64
	Amplitude   float32
	Frequency   float64
	Octaves     int
	Persistence float64
	Lacunarity  float64

	gen  *perlin.Perlin
	norm float64
}

// NewNoise prepares the permutation tables for the given parameters. A
// non-positive persistence or lacunarity falls back to 0.5 and 2.
func NewNoise(seed int64, amplitude float32, frequency float64, octaves int, persistence, lacunarity float64) Noise {
	if persistence <= 0 {
		persistence = 0.5
	}
	if lacunarity <= 0 {
		lacunarity = 2
	}
	n := Noise{
		Seed:        seed,
		Amplitude:   amplitude,
		Frequency:   frequency,
		Octaves:     octaves,
		Persistence: persistence,
		Lacunarity:  lacunarity,
	}
	if octaves <= 0 {
		return n
	}

	// go-perlin divides octave i by alpha^i
	n.gen = perlin.NewPerlin(1/persistence, lacunarity, int32(octaves), seed)
	weight := 1.0
	for range octaves {
		n.norm += weight
		weight *= persistence
	}
	return n
}

// DefaultNoise returns rolling hills roughly ten units tall.
func DefaultNoise(seed int64) Noise {
	return NewNoise(seed, 10, 0.01, 4, 0.5, 2)
}

// Height returns amplitude-scaled fBm in [-Amplitude, Amplitude].
func (n Noise) Height(x, z float32) float32 {
	if n.gen == nil {
		return 0
	}
	v := n.gen.Noise2D(float64(x)*n.Frequency, float64(z)*n.Frequency) / n.norm
	return float32(max(-1, min(1, v))) * n.Amplitude
}

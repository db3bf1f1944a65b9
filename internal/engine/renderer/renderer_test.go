package renderer

import (
	"testing"

	"github.com/Faultbox/gridmesh/pkg/math"
)

func TestProjection(t *testing.T) {
	cfg := Config{Width: 1600, Height: 800, FOV: 90, Near: 1, Far: 100}
	m := Projection(cfg)

	// A point on the near plane's top edge maps to y = 1 in clip space
	p := m.TransformPoint(math.Vec3{X: 0, Y: 1, Z: -1})
	if d := p.Y - 1; d > 1e-5 || d < -1e-5 {
		t.Errorf("top of near plane maps to y %v, want 1", p.Y)
	}
	// Aspect 2 halves the horizontal scale
	if d := m[0]*2 - m[5]; d > 1e-5 || d < -1e-5 {
		t.Errorf("x scale %v should be half of y scale %v", m[0], m[5])
	}
}

func TestProjectionZeroHeight(t *testing.T) {
	m := Projection(Config{Width: 800, Height: 0, FOV: 60, Near: 1, Far: 10})
	for i, v := range m {
		if v != v {
			t.Fatalf("element %d is NaN", i)
		}
	}
}

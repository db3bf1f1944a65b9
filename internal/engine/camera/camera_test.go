package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/gridmesh/pkg/math"
)

const eps = 1e-4

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < eps
}

func TestPositionOrbitsCenter(t *testing.T) {
	c := NewOrbitCamera()
	c.Follow(math.Vec3{X: 10, Y: 2, Z: -4})

	for _, yaw := range []float32{0, 0.5, 2, -3} {
		c.Yaw = yaw
		if d := c.Position().Sub(c.Center).Length(); !near(d, c.Distance) {
			t.Errorf("yaw %v: distance %v, want %v", yaw, d, c.Distance)
		}
		if c.Position().Y <= c.Center.Y {
			t.Errorf("yaw %v: camera should be above the center", yaw)
		}
	}
}

func TestForwardPointsAtCenter(t *testing.T) {
	c := NewOrbitCamera()
	c.Yaw = 1.2

	toCenter := c.Center.Sub(c.Position())
	toCenter.Y = 0
	toCenter = toCenter.Normalize()
	f := c.Forward()
	if !near(f.X, toCenter.X) || !near(f.Z, toCenter.Z) {
		t.Errorf("forward %+v, want %+v", f, toCenter)
	}
	if dot := f.Dot(c.Right()); !near(dot, 0) {
		t.Errorf("forward and right should be orthogonal, dot %v", dot)
	}
}

func TestMoveDelta(t *testing.T) {
	c := NewOrbitCamera()

	// Yaw 0 looks down -Z
	d := c.MoveDelta(1, 0, 0, 10)
	if !near(d.X, 0) || !near(d.Z, -10) {
		t.Errorf("forward delta %+v", d)
	}

	// Diagonal movement is not faster
	d = c.MoveDelta(1, 1, 0, 10)
	if l := d.Length(); !near(l, 10) {
		t.Errorf("diagonal length %v, want 10", l)
	}

	d = c.MoveDelta(0, 0, 1, 3)
	if !near(d.Y, 3) {
		t.Errorf("up delta %+v", d)
	}
}

func TestClamps(t *testing.T) {
	c := NewOrbitCamera()

	c.HandleDrag(0, 1e6)
	if c.Pitch != c.MaxPitch {
		t.Errorf("pitch %v, want max %v", c.Pitch, c.MaxPitch)
	}
	c.HandleDrag(0, -1e6)
	if c.Pitch != c.MinPitch {
		t.Errorf("pitch %v, want min %v", c.Pitch, c.MinPitch)
	}

	for range 100 {
		c.HandleZoom(5)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("distance %v, want min %v", c.Distance, c.MinDistance)
	}
}

package grid

import (
	"testing"

	"github.com/Faultbox/gridmesh/pkg/math"
)

func TestChunkDerivedQuantities(t *testing.T) {
	c := NewChunk(NewVertex(2, -3), NewVertex(4, 5), math.Vec2{X: 2, Y: 0.5})

	if c.CountColumns() != 5 || c.CountRows() != 6 {
		t.Errorf("columns/rows = %d/%d, want 5/6", c.CountColumns(), c.CountRows())
	}
	if c.Area() != 20 {
		t.Errorf("Area() = %d, want 20", c.Area())
	}
	if c.Width() != 4 || c.Depth() != 5 {
		t.Errorf("width/depth = %d/%d, want 4/5", c.Width(), c.Depth())
	}
	if c.RawWidth() != 8 || c.RawDepth() != 2.5 {
		t.Errorf("raw width/depth = %f/%f, want 8/2.5", c.RawWidth(), c.RawDepth())
	}
	if got := c.OriginVertex(); got != NewVertex(8, -15) {
		t.Errorf("OriginVertex() = %v, want (8, -15)", got)
	}
	if got := c.Translation(NewVertex(3, 4)); got != (math.Vec2{X: 6, Y: 2}) {
		t.Errorf("Translation() = %v, want {6 2}", got)
	}
	if c.Name() != "Terrain Chunk 2x-3" {
		t.Errorf("Name() = %q", c.Name())
	}
}

func TestDefaultChunk(t *testing.T) {
	c := DefaultChunk()
	if c.Size != NewVertex(40, 40) || c.Origin != (Vertex{}) || c.QuadSize != math.Splat(2) {
		t.Errorf("unexpected default chunk: %+v", c)
	}
}

func TestIterByRowOrder(t *testing.T) {
	c := NewChunk(Vertex{}, NewVertex(2, 1), math.Splat(1))

	var got []Vertex
	for v := range c.IterByRow() {
		got = append(got, v)
	}

	want := []Vertex{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}

	// restartable
	n := 0
	for range c.IterByRow() {
		n++
	}
	if n != len(want) {
		t.Errorf("second pass yielded %d vertices, want %d", n, len(want))
	}
}

func TestIterByRowEarlyStop(t *testing.T) {
	c := DefaultChunk()
	n := 0
	for range c.IterByRow() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("expected early stop at 3, got %d", n)
	}
}

func TestChunkFromTranslationRoundTrip(t *testing.T) {
	extents := []Vertex{{2, 2}, {40, 40}, {20, 100}, {7, 3}}
	quads := []math.Vec2{math.Splat(1), math.Splat(2), {X: 0.5, Y: 3}}
	origins := []Vertex{{0, 0}, {1, 0}, {-7, 4}, {12, -30}}

	for _, e := range extents {
		for _, q := range quads {
			for _, o := range origins {
				c := NewChunk(o, e, q)
				corner := c.Translation(c.OriginVertex())
				// a quarter chunk in from the origin corner stays in the same chunk
				inside := math.Vec3{
					X: corner.X + c.RawWidth()/4,
					Z: corner.Y + c.RawDepth()/4,
				}
				got := ChunkFromTranslation(inside, e, q)
				if got.Origin != o {
					t.Errorf("extent %v quad %v: ChunkFromTranslation(%v) = %v, want %v", e, q, inside, got.Origin, o)
				}
				if got.Size != e || got.QuadSize != q {
					t.Errorf("size/quad not carried over: %+v", got)
				}
			}
		}
	}
}

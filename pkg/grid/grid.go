package grid

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/Faultbox/gridmesh/pkg/math"
)

// DefaultVisibleRange is the half-width of the in-play window, in chunks.
var DefaultVisibleRange = NewVertex(3, 3)

// Upper bounds on grid parameters. MaxChunkSize keeps the per-chunk index
// count well inside int32; MaxVisibleRange caps a window at 513x513 chunks.
const (
	MaxChunkSize    = 1024
	MaxVisibleRange = 256
)

var (
	ErrInvalidChunkSize = errors.New("chunk size must be positive")
	ErrInvalidQuadSize  = errors.New("quad size must be positive")
	ErrInvalidRange     = errors.New("visible range must not be negative")
	ErrChunkTooLarge    = fmt.Errorf("chunk size must not exceed %d", MaxChunkSize)
	ErrRangeTooLarge    = fmt.Errorf("visible range must not exceed %d", MaxVisibleRange)
)

// Grid tracks which chunk coordinates are in play around a tracked point.
type Grid struct {
	// ChunkSize is the chunk extent in quads.
	ChunkSize Vertex
	QuadSize  math.Vec2
	// VisibleRange is the half-width of the window in chunks per axis.
	VisibleRange Vertex

	inPlay map[Vertex]struct{}
}

// New creates a Grid with the default visible range.
func New(chunkSize Vertex, quadSize math.Vec2) (*Grid, error) {
	return NewWithRange(chunkSize, quadSize, DefaultVisibleRange)
}

// NewWithRange creates a Grid with a custom visible range.
func NewWithRange(chunkSize Vertex, quadSize math.Vec2, visibleRange Vertex) (*Grid, error) {
	if err := Validate(chunkSize, quadSize, visibleRange); err != nil {
		return nil, err
	}
	return &Grid{
		ChunkSize:    chunkSize,
		QuadSize:     quadSize,
		VisibleRange: visibleRange,
		inPlay:       make(map[Vertex]struct{}),
	}, nil
}

// Default returns a grid of 40x40 chunks with 2x2 quads.
func Default() *Grid {
	g, _ := New(NewVertex(40, 40), math.Splat(2))
	return g
}

// Validate checks grid parameters without building a Grid.
func Validate(chunkSize Vertex, quadSize math.Vec2, visibleRange Vertex) error {
	if err := ValidateChunkSize(chunkSize); err != nil {
		return err
	}
	if err := ValidateQuadSize(quadSize); err != nil {
		return err
	}
	return ValidateVisibleRange(visibleRange)
}

// ValidateChunkSize checks that both sides are in [1, MaxChunkSize].
func ValidateChunkSize(size Vertex) error {
	if size.X <= 0 || size.Z <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidChunkSize, size)
	}
	if size.X > MaxChunkSize || size.Z > MaxChunkSize {
		return fmt.Errorf("%w: got %v", ErrChunkTooLarge, size)
	}
	return nil
}

// ValidateQuadSize checks that both sides are positive.
func ValidateQuadSize(size math.Vec2) error {
	if !size.Positive() {
		return fmt.Errorf("%w: got %v", ErrInvalidQuadSize, size)
	}
	return nil
}

// ValidateVisibleRange checks that both axes are in [0, MaxVisibleRange].
func ValidateVisibleRange(r Vertex) error {
	if r.X < 0 || r.Z < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidRange, r)
	}
	if r.X > MaxVisibleRange || r.Z > MaxVisibleRange {
		return fmt.Errorf("%w: got %v", ErrRangeTooLarge, r)
	}
	return nil
}

// Name returns the display name of a grid instance.
func (g *Grid) Name() string {
	return "Grid"
}

// Update replaces the in-play set with the window around position.
func (g *Grid) Update(position math.Vec3) {
	center := ChunkFromTranslation(position, g.ChunkSize, g.QuadSize).Origin

	low := center.SaturatingSub(g.VisibleRange)
	high := center.SaturatingAdd(g.VisibleRange)

	clear(g.inPlay)
	// int64 counters so a window touching MaxInt32 still terminates
	for x := int64(low.X); x <= int64(high.X); x++ {
		for z := int64(low.Z); z <= int64(high.Z); z++ {
			g.inPlay[Vertex{X: int32(x), Z: int32(z)}] = struct{}{}
		}
	}
}

// Contains reports whether a chunk coordinate is in play.
func (g *Grid) Contains(chunk Vertex) bool {
	_, ok := g.inPlay[chunk]
	return ok
}

// Len returns the number of chunks in play.
func (g *Grid) Len() int {
	return len(g.inPlay)
}

// All yields the in-play chunk coordinates in map order.
func (g *Grid) All() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for v := range g.inPlay {
			if !yield(v) {
				return
			}
		}
	}
}

// ChunksInPlay returns the in-play coordinates sorted by Z, then X.
func (g *Grid) ChunksInPlay() []Vertex {
	out := make([]Vertex, 0, len(g.inPlay))
	for v := range g.inPlay {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b Vertex) int {
		if c := cmp.Compare(a.Z, b.Z); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}

// WindowSize returns the number of chunks a full window holds, (2R+1)^2.
func (g *Grid) WindowSize() int {
	return int(2*int64(g.VisibleRange.X)+1) * int(2*int64(g.VisibleRange.Z)+1)
}

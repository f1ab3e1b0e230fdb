package region

import "github.com/katalvlaran/lvlmap/grid"

// NoPoint is the centroid of an empty point set.
var NoPoint = grid.Point{X: -1, Y: -1}

// conn4 holds the 4-directional neighbor offsets: N, E, S, W.
var conn4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Region is a maximal 4-connected set of cells sharing one cell type.
// Regions are derived data: recompute them from the grid, do not edit them.
type Region struct {
	// Type is the cell type shared by every point.
	Type grid.Cell
	// Points lists member coordinates in unspecified order.
	Points []grid.Point
}

// Len returns the number of cells in the region.
func (r Region) Len() int {
	return len(r.Points)
}

// Centroid returns the rounded mean coordinate of the region.
func (r Region) Centroid() grid.Point {
	return Centroid(r.Points)
}

// Contains reports whether p is a member of the region. O(n).
func (r Region) Contains(p grid.Point) bool {
	for _, q := range r.Points {
		if q == p {
			return true
		}
	}

	return false
}

// Options configures Segment.
type Options struct {
	// Target restricts segmentation to cells of this type when HasTarget is set.
	Target grid.Cell
	// HasTarget enables the Target filter.
	HasTarget bool
}

// Option configures Options.
type Option func(*Options)

// WithTarget restricts Segment to regions whose cells equal t.
func WithTarget(t grid.Cell) Option {
	return func(o *Options) {
		o.Target = t
		o.HasTarget = true
	}
}

// DefaultOptions returns Options that segment the whole grid.
func DefaultOptions() Options {
	return Options{}
}

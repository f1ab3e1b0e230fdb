package region

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/lvlmap/grid"
)

// Centroid returns the mean coordinate of points, each axis rounded half
// away from zero. The result need not be a member of the set (concave
// regions). Empty input yields NoPoint.
func Centroid(points []grid.Point) grid.Point {
	if len(points) == 0 {
		return NoPoint
	}
	var sx, sy int
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))

	return grid.Pt(int(math.Round(float64(sx)/n)), int(math.Round(float64(sy)/n)))
}

// BoundingBox returns the width and height of the tight axis-aligned box
// around points, counted in cells (a single point is 1×1). Empty input
// yields (0, 0).
func BoundingBox(points []grid.Point) (width, height int) {
	if len(points) == 0 {
		return 0, 0
	}
	b := multiPoint(points).Bound()

	return int(b.Max.X()-b.Min.X()) + 1, int(b.Max.Y()-b.Min.Y()) + 1
}

// Distance is the Euclidean distance between two grid points.
func Distance(a, b grid.Point) float64 {
	return planar.Distance(orbPoint(a), orbPoint(b))
}

func orbPoint(p grid.Point) orb.Point {
	return orb.Point{float64(p.X), float64(p.Y)}
}

func multiPoint(points []grid.Point) orb.MultiPoint {
	mp := make(orb.MultiPoint, len(points))
	for i, p := range points {
		mp[i] = orbPoint(p)
	}

	return mp
}

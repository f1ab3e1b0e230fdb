package region

import (
	"math"

	"github.com/paulmach/orb/planar"
	"github.com/tidwall/rtree"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlmap/grid"
)

// selectedMark flags points already taken in the distance cache; any real
// distance is ≥ 0 and therefore beats it in the argmax.
const selectedMark = -1.0

// FarthestPointSample picks count points from points by greedy farthest-point
// sampling: start from points[0], then repeatedly take the point whose
// distance to its nearest selected point is largest (lowest index on ties).
//
// If count >= len(points) a copy of all points is returned. A count below 1
// is clamped to 1, so a non-empty input always yields at least its first point.
//
// Time: O(n·k). Memory: O(n).
func FarthestPointSample(points []grid.Point, count int) []grid.Point {
	if count < 1 {
		count = 1
	}
	if count >= len(points) {
		out := make([]grid.Point, len(points))
		copy(out, points)

		return out
	}

	pts := multiPoint(points)
	// nearest[i] is the distance from points[i] to its closest selected point.
	nearest := make([]float64, len(points))
	for i := range nearest {
		nearest[i] = math.Inf(1)
	}

	out := make([]grid.Point, 0, count)
	pick := 0
	for {
		out = append(out, points[pick])
		nearest[pick] = selectedMark
		if len(out) == count {
			return out
		}
		for i := range pts {
			if nearest[i] == selectedMark {
				continue
			}
			if d := planar.Distance(pts[i], pts[pick]); d < nearest[i] {
				nearest[i] = d
			}
		}
		pick = floats.MaxIdx(nearest)
	}
}

// FarthestPointSampleConstrained runs FarthestPointSample over the subset of
// points whose distance to the nearest wall point is at least
// minWallDistance. It returns an empty result when no point qualifies. With
// no wall points at all, every point qualifies. Negative minWallDistance is
// clamped to 0.
func FarthestPointSampleConstrained(points, walls []grid.Point, count int, minWallDistance float64) []grid.Point {
	if minWallDistance < 0 {
		minWallDistance = 0
	}
	dist := WallDistance(points, walls)
	eligible := make([]grid.Point, 0, len(points))
	for i, p := range points {
		if dist[i] >= minWallDistance {
			eligible = append(eligible, p)
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	return FarthestPointSample(eligible, count)
}

// WallDistance returns, for every point, the Euclidean distance to the
// nearest wall point (+Inf when walls is empty). Walls are indexed in an
// R-tree so each query costs O(log m).
func WallDistance(points, walls []grid.Point) []float64 {
	out := make([]float64, len(points))
	if len(walls) == 0 {
		for i := range out {
			out[i] = math.Inf(1)
		}

		return out
	}

	var tr rtree.RTreeG[grid.Point]
	for _, w := range walls {
		r := [2]float64{float64(w.X), float64(w.Y)}
		tr.Insert(r, r, w)
	}

	for i, p := range points {
		q := [2]float64{float64(p.X), float64(p.Y)}
		out[i] = math.Inf(1)
		tr.Nearby(
			rtree.BoxDist[float64, grid.Point](q, q, nil),
			func(_, _ [2]float64, w grid.Point, _ float64) bool {
				out[i] = Distance(p, w)
				return false
			},
		)
	}

	return out
}

package region_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmap/grid"
	"github.com/katalvlaran/lvlmap/region"
)

// roomGrid is a w×h Floor room enclosed by a one-cell Wall border.
func roomGrid(h, w int) grid.Grid {
	b := grid.NewBuilder(grid.New(h, w, grid.Wall))
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			b.Set(x, y, grid.Floor)
		}
	}

	return b.Freeze()
}

func linePoints(n int) []grid.Point {
	pts := make([]grid.Point, n)
	for i := range pts {
		pts[i] = grid.Pt(i, 0)
	}

	return pts
}

func TestFarthestPointSample_Line(t *testing.T) {
	got := region.FarthestPointSample(linePoints(11), 3)
	assert.Equal(t, []grid.Point{grid.Pt(0, 0), grid.Pt(10, 0), grid.Pt(5, 0)}, got)
}

// TestFarthestPointSample_CountPolicy covers count ≥ n (everything) and the
// clamp of non-positive counts to a single start point.
func TestFarthestPointSample_CountPolicy(t *testing.T) {
	pts := linePoints(4)

	all := region.FarthestPointSample(pts, 4)
	assert.ElementsMatch(t, pts, all)
	all[0] = grid.Pt(99, 99)
	assert.Equal(t, grid.Pt(0, 0), pts[0], "result must not alias the input")

	assert.ElementsMatch(t, pts, region.FarthestPointSample(pts, 40))
	assert.Equal(t, []grid.Point{grid.Pt(0, 0)}, region.FarthestPointSample(pts, 0))
	assert.Equal(t, []grid.Point{grid.Pt(0, 0)}, region.FarthestPointSample(pts, -2))
	assert.Empty(t, region.FarthestPointSample(nil, 3))
	assert.Empty(t, region.FarthestPointSample(nil, 0))

	// Constrained sampling shares the clamp.
	spread := []grid.Point{grid.Pt(0, 0), grid.Pt(5, 0), grid.Pt(9, 0)}
	assert.Equal(t, []grid.Point{grid.Pt(0, 0)}, region.FarthestPointSampleConstrained(spread, nil, 0, 0))
	assert.Equal(t, []grid.Point{grid.Pt(0, 0)}, region.FarthestPointSampleConstrained(spread, nil, -3, 0))
}

// TestFarthestPointSample_Monotone checks the greedy guarantee on a random
// cloud: the distance at which each new sample is picked never grows, and the
// minimum pairwise spacing of every prefix equals the last pick distance.
func TestFarthestPointSample_Monotone(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	pts := make([]grid.Point, 300)
	for i := range pts {
		pts[i] = grid.Pt(r.Intn(200), r.Intn(200))
	}

	const k = 25
	sel := region.FarthestPointSample(pts, k)
	require.Len(t, sel, k)

	prev := math.Inf(1)
	for i := 1; i < k; i++ {
		pick := math.Inf(1)
		for j := 0; j < i; j++ {
			pick = math.Min(pick, region.Distance(sel[i], sel[j]))
		}
		assert.LessOrEqual(t, pick, prev+1e-9, "pick %d", i)

		spacing := math.Inf(1)
		for a := 0; a <= i; a++ {
			for b := a + 1; b <= i; b++ {
				spacing = math.Min(spacing, region.Distance(sel[a], sel[b]))
			}
		}
		assert.InDelta(t, pick, spacing, 1e-9, "prefix %d", i+1)
		prev = pick
	}
}

// TestFarthestPointSampleConstrained keeps only cells at least 2 away from the
// border walls of a 7×7 room: the central 3×3 block.
func TestFarthestPointSampleConstrained(t *testing.T) {
	g := roomGrid(7, 7)
	floor := region.SegmentType(g, grid.Floor)
	require.Len(t, floor, 1)
	walls := g.CellsOfType(grid.Wall)

	got := region.FarthestPointSampleConstrained(floor[0].Points, walls, 100, 2)
	var want []grid.Point
	for y := 2; y <= 4; y++ {
		for x := 2; x <= 4; x++ {
			want = append(want, grid.Pt(x, y))
		}
	}
	assert.ElementsMatch(t, want, got)

	// Row-major input makes (2,2) the first eligible point, so the second pick
	// is the opposite corner of the block.
	two := region.FarthestPointSampleConstrained(g.CellsOfType(grid.Floor), walls, 2, 2)
	require.Len(t, two, 2)
	assert.Equal(t, grid.Pt(2, 2), two[0])
	assert.InDelta(t, math.Sqrt(8), region.Distance(two[0], two[1]), 1e-9)

	assert.Empty(t, region.FarthestPointSampleConstrained(floor[0].Points, walls, 3, 10))
}

func TestFarthestPointSampleConstrained_NoWalls(t *testing.T) {
	pts := linePoints(11)
	assert.Equal(t,
		region.FarthestPointSample(pts, 3),
		region.FarthestPointSampleConstrained(pts, nil, 3, 5),
	)
}

func TestWallDistance(t *testing.T) {
	g := roomGrid(7, 7)
	walls := g.CellsOfType(grid.Wall)

	d := region.WallDistance([]grid.Point{grid.Pt(3, 3), grid.Pt(1, 1), grid.Pt(0, 0)}, walls)
	assert.Equal(t, []float64{3, 1, 0}, d)

	none := region.WallDistance([]grid.Point{grid.Pt(3, 3)}, nil)
	assert.True(t, math.IsInf(none[0], 1))
}

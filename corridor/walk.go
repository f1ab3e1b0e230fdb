package corridor

import (
	"math/rand"

	"github.com/katalvlaran/lvlmap/grid"
)

// defaultWalkSeed seeds the walk when the caller passes a nil *rand.Rand.
const defaultWalkSeed int64 = 1

var cardinals = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Walk traces a biased random walk of exactly steps steps from start inside a
// height×width grid and returns the steps+1 visited positions (start first).
//
// At each step, with probability bias, the walker moves one cell toward
// target along the axis with the larger remaining gap (x on ties);
// otherwise it moves in a uniformly random cardinal direction. A move that
// would leave the grid is reflected; if the reflection leaves it too, the
// walker stays put for that step. A start outside the grid is clamped onto
// it. Reaching target is not guaranteed.
//
// rng == nil uses a fixed default seed. Negative steps act as 0 and bias is
// clamped into [0, 1].
func Walk(start, target grid.Point, steps int, bias float64, rng *rand.Rand, height, width int) []grid.Point {
	if steps < 0 {
		steps = 0
	}
	bias = min(max(bias, 0), 1)
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultWalkSeed))
	}
	inBounds := func(p grid.Point) bool {
		return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
	}

	p := start
	if height > 0 && width > 0 {
		p.X = min(max(p.X, 0), width-1)
		p.Y = min(max(p.Y, 0), height-1)
	}

	pts := make([]grid.Point, 0, steps+1)
	pts = append(pts, p)
	for i := 0; i < steps; i++ {
		var d [2]int
		if rng.Float64() < bias && p != target {
			d = toward(p, target)
		} else {
			d = cardinals[rng.Intn(len(cardinals))]
		}
		next := p.Add(d[0], d[1])
		if !inBounds(next) {
			next = p.Add(-d[0], -d[1])
			if !inBounds(next) {
				next = p
			}
		}
		p = next
		pts = append(pts, p)
	}

	return pts
}

// toward returns the unit step from p that most reduces the gap to target.
func toward(p, target grid.Point) [2]int {
	dx, dy := target.X-p.X, target.Y-p.Y
	if abs(dx) >= abs(dy) {
		return [2]int{sign(dx), 0}
	}

	return [2]int{0, sign(dy)}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}

	return 0
}

// DrawWalk returns a copy of g with the trail of pts painted in cell, each
// point stamped with the given thickness.
func DrawWalk(g grid.Grid, pts []grid.Point, cell grid.Cell, thickness int) grid.Grid {
	b := grid.NewBuilder(g)
	StampTrail(b, pts, cell, thickness)

	return b.Freeze()
}

// StampTrail stamps every point of pts into b. Points off the grid are
// clipped like any other Stamp.
func StampTrail(b *grid.Builder, pts []grid.Point, cell grid.Cell, thickness int) {
	for _, p := range pts {
		Stamp(b, p, cell, thickness)
	}
}

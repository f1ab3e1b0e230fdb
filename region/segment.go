package region

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/lvlmap/grid"
)

// Segment partitions g into maximal 4-connected regions of uniform type.
// Without options every cell lands in exactly one region. With WithTarget
// only regions of the target type are returned and other cells are never
// visited.
//
// Seeds are taken in row-major order; each one is flood-filled with an
// explicit work stack, so grid size is not bounded by goroutine stack depth.
//
// Time:   O(W·H).
// Memory: O(W·H) for the visited set and output.
func Segment(g grid.Grid, opts ...Option) []Region {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	h, w := g.Dimensions()
	visited := mapset.New[grid.Point]()
	var regions []Region

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			seed := grid.Pt(x, y)
			if visited.Has(seed) {
				continue
			}
			typ := g.At(seed)
			if o.HasTarget && typ != o.Target {
				continue
			}
			if pts := flood(g, seed, typ, &visited); len(pts) > 0 {
				regions = append(regions, Region{Type: typ, Points: pts})
			}
		}
	}

	return regions
}

// SegmentAll is Segment without a type filter.
func SegmentAll(g grid.Grid) []Region {
	return Segment(g)
}

// SegmentType is Segment restricted to cells of type t.
func SegmentType(g grid.Grid, t grid.Cell) []Region {
	return Segment(g, WithTarget(t))
}

// flood collects every in-bounds cell of type typ reachable from seed through
// 4-neighbors. Cells are marked visited when pushed, so each is taken once.
func flood(g grid.Grid, seed grid.Point, typ grid.Cell, visited *mapset.Set[grid.Point]) []grid.Point {
	if !g.InBounds(seed.X, seed.Y) {
		return nil
	}
	work := stack.New[grid.Point]()
	work.Push(seed)
	visited.Put(seed)

	var pts []grid.Point
	for work.Size() > 0 {
		p := work.Pop()
		pts = append(pts, p)
		for _, d := range conn4 {
			q := p.Add(d[0], d[1])
			if !g.InBounds(q.X, q.Y) || visited.Has(q) || g.At(q) != typ {
				continue
			}
			visited.Put(q)
			work.Push(q)
		}
	}

	return pts
}

// Largest returns the region with the most cells; the first one wins ties.
// ok is false when regions is empty.
func Largest(regions []Region) (r Region, ok bool) {
	for i, cand := range regions {
		if i == 0 || cand.Len() > r.Len() {
			r = cand
		}
	}

	return r, len(regions) > 0
}

// FilterBySize keeps regions with at least minCells cells, preserving order.
func FilterBySize(regions []Region, minCells int) []Region {
	out := make([]Region, 0, len(regions))
	for _, r := range regions {
		if r.Len() >= minCells {
			out = append(out, r)
		}
	}

	return out
}

// Centroids returns one centroid per region, in region order.
func Centroids(regions []Region) []grid.Point {
	cs := make([]grid.Point, len(regions))
	for i, r := range regions {
		cs[i] = r.Centroid()
	}

	return cs
}

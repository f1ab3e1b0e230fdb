package region

import (
	"container/list"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvlmap/grid"
)

// Bridge finds a minimum-conversion 4-connected path from any cell of src to
// any cell of dst. Stepping onto a cell that already holds passable costs 0;
// stepping onto anything else costs 1 (the cell would have to be carved).
// The returned path runs from a src cell to a dst cell inclusive, and cost is
// the number of path cells that are not yet passable, src cells excluded.
//
// ok is false when either region has no in-bounds cell. Since every in-bounds
// cell may be converted, a path always exists otherwise.
//
// Behavior:
//  1. Multi-source 0-1 BFS from all src cells (deque: cost 0 to the front,
//     cost 1 to the back).
//  2. Stop when a dst cell is popped.
//  3. Reconstruct the path through predecessor indices.
//
// Time: O(W·H) on average. Memory: O(W·H).
func Bridge(g grid.Grid, src, dst Region, passable grid.Cell) (path []grid.Point, cost int, ok bool) {
	h, w := g.Dimensions()
	index := func(p grid.Point) int { return p.Y*w + p.X }

	dstSet := mapset.New[grid.Point]()
	for _, p := range dst.Points {
		if g.InBounds(p.X, p.Y) {
			dstSet.Put(p)
		}
	}
	if dstSet.Size() == 0 {
		return nil, 0, false
	}

	const inf = int(^uint(0) >> 1)
	n := w * h
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	dq := list.New()
	for _, p := range src.Points {
		if !g.InBounds(p.X, p.Y) {
			continue
		}
		dist[index(p)] = 0
		dq.PushFront(p)
	}
	if dq.Len() == 0 {
		return nil, 0, false
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(grid.Point)
		if dstSet.Has(u) {
			target = index(u)
			break
		}
		ui := index(u)
		for _, d := range conn4 {
			v := u.Add(d[0], d[1])
			if !g.InBounds(v.X, v.Y) {
				continue
			}
			step := 0
			if g.At(v) != passable {
				step = 1
			}
			vi := index(v)
			if nd := dist[ui] + step; nd < dist[vi] {
				dist[vi] = nd
				prev[vi] = ui
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	if target < 0 {
		return nil, 0, false
	}

	for at := target; at >= 0; at = prev[at] {
		path = append(path, grid.Pt(at%w, at/w))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], true
}

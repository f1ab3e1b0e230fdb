package connect

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvlmap/grid"
	"github.com/katalvlaran/lvlmap/region"
	"github.com/katalvlaran/lvlmap/unionfind"
)

// SequentialPairs joins centroid i to i+1 for i in [0, n-2].
func SequentialPairs(cs []grid.Point) []Pair {
	if len(cs) < 2 {
		return nil
	}
	pairs := make([]Pair, 0, len(cs)-1)
	for i := 0; i+1 < len(cs); i++ {
		pairs = append(pairs, Pair{From: i, To: i + 1})
	}

	return pairs
}

// NearestPairs lets every centroid i initiate corridors to its
// maxConnections nearest other centroids, ranked by (distance, index).
// A candidate already joined to i (by either side) is skipped without
// being replaced by the next candidate. Duplicates are tracked in a set of
// index-normalised pairs. Negative maxConnections is treated as 0.
func NearestPairs(cs []grid.Point, maxConnections int) []Pair {
	n := len(cs)
	if n < 2 || maxConnections <= 0 {
		return nil
	}
	k := min(maxConnections, n-1)

	connected := mapset.New[Pair]()
	var pairs []Pair
	order := make([]int, 0, n-1)
	dist := make([]float64, n)
	for i := 0; i < n; i++ {
		order = order[:0]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			dist[j] = region.Distance(cs[i], cs[j])
			order = append(order, j)
		}
		sort.SliceStable(order, func(a, b int) bool {
			ja, jb := order[a], order[b]
			if dist[ja] != dist[jb] {
				return dist[ja] < dist[jb]
			}
			return ja < jb
		})

		for _, j := range order[:k] {
			p := Pair{From: i, To: j}
			if connected.Has(p.normalized()) {
				continue
			}
			connected.Put(p.normalized())
			pairs = append(pairs, p)
		}
	}

	return pairs
}

// ChainPairs sorts centroids by ascending x (ties keep input order) and joins
// consecutive ones, giving a single path through every region.
func ChainPairs(cs []grid.Point) []Pair {
	if len(cs) < 2 {
		return nil
	}
	order := make([]int, len(cs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return cs[order[a]].X < cs[order[b]].X
	})

	pairs := make([]Pair, 0, len(cs)-1)
	for k := 0; k+1 < len(order); k++ {
		pairs = append(pairs, Pair{From: order[k], To: order[k+1]})
	}

	return pairs
}

// candidate is a weighted centroid pair considered by SpanningPairs.
type candidate struct {
	from, to int
	weight   float64
}

// SpanningPairs returns the minimum spanning tree over the complete graph of
// centroids with Euclidean weights, using Kruskal's algorithm.
//
// Steps:
//  1. Build every pair (i, j), i < j, weighted by centroid distance.
//  2. Sort by (weight, i, j) so ties resolve the same way on every platform.
//  3. Walk the sorted candidates; accept (i, j) when Union(i, j) merges two
//     trees of the disjoint-set forest.
//  4. Stop once n-1 pairs are accepted.
//
// Complexity: O(n² log n) for the sort, amortised α(n) per union.
func SpanningPairs(cs []grid.Point) []Pair {
	n := len(cs)
	if n < 2 {
		return nil
	}

	edges := make([]candidate, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, candidate{from: i, to: j, weight: region.Distance(cs[i], cs[j])})
		}
	}
	sort.SliceStable(edges, func(a, b int) bool {
		ea, eb := edges[a], edges[b]
		if ea.weight != eb.weight {
			return ea.weight < eb.weight
		}
		if ea.from != eb.from {
			return ea.from < eb.from
		}
		return ea.to < eb.to
	})

	forest := unionfind.New(n)
	tree := make([]Pair, 0, n-1)
	for _, e := range edges {
		if !forest.Union(e.from, e.to) {
			continue
		}
		tree = append(tree, Pair{From: e.from, To: e.to})
		if len(tree) == n-1 {
			break
		}
	}

	return tree
}

// Length sums the centroid distances of pairs.
func Length(cs []grid.Point, pairs []Pair) float64 {
	var total float64
	for _, p := range pairs {
		total += region.Distance(cs[p.From], cs[p.To])
	}

	return total
}

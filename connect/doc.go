// Package connect joins the regions of a grid.Grid by carving corridors
// between them.
//
// What & Why
//
//   - Segmentation (package region) leaves a level split into disconnected
//     caves or rooms. A connectivity strategy decides which region pairs to
//     join; package corridor then paints the paths. The result is a new grid;
//     the input grid is never modified.
//
//   - Every strategy works on region centroids (rounded mean coordinates).
//     A centroid may fall outside its own region; corridors are still drawn
//     and clipped to the grid.
//
// Strategies
//
//   - Sequential: region i to i+1, in discovery order.
//   - Nearest:    each region to its MaxConnections nearest others, by
//     (distance, index). Pairs that already exist are skipped, not replaced,
//     so no region initiates more than MaxConnections corridors.
//   - Chain:      centroids sorted by x (stable), consecutive pairs; one path
//     through every region.
//   - MST:        Kruskal over all centroid pairs, sorted by (distance, i, j),
//     with a union-find forest; exactly n-1 corridors, no cycles.
//   - RandomWalk: for each consecutive pair, a biased random walk of
//     WalkSteps steps from the first centroid. Organic, seeded, and not
//     guaranteed to reach the second region.
//   - Bridge:     MST pairs, each carved along the minimum-conversion path
//     between the two regions so existing floor is reused.
//
// Pair selection is exported (SequentialPairs, NearestPairs, ChainPairs,
// SpanningPairs) for callers building custom painters.
//
// Configuration
//
//	Functional options over Options (see DefaultOptions). Negative thickness,
//	connection caps and step counts are clamped to 0; WalkBias is clamped
//	into [0, 1]. Seed 0 selects a fixed default seed, so runs are repeatable.
//
// Errors
//
//   - ErrUnknownMethod: Connect or ParseMethod received an unknown method name.
//
// Fewer than two regions is never an error: the grid is returned unchanged.
//
// Complexity
//
//   - Sequential, Chain, RandomWalk: O(n log n) selection.
//   - Nearest: O(n² log n).
//   - MST:     O(n² log n) for the edge sort, α(n) per union.
//   - Bridge:  MST plus O(W×H) per corridor.
//
// Plus the corridor painting itself, O(length × (2t+1)²) per corridor.
package connect

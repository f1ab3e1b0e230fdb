// Package corridor paints paths of one cell type into a grid.Grid.
//
// What:
//
//   - Line: integer Bresenham stepping between two points, both inclusive.
//   - Draw: paints the square neighborhood of half-width thickness around
//     every stepped point ((2t+1)² cells, clipped to the grid).
//   - Walk / DrawWalk: a biased random walk of a fixed number of steps and
//     the thick trail it leaves. The walk drifts toward a target but is not
//     required to reach it.
//
// Every function returning a grid.Grid leaves its input untouched. Writes
// outside the grid are dropped, so callers never guard coordinates near the
// edges. Carve, Stamp and StampTrail write into a caller-owned grid.Builder for batching.
//
// Invalid configuration is clamped: negative thickness or step counts act as
// 0 and a walk bias outside [0, 1] is clamped into it.
//
// Complexity:
//
//   - Line:  O(max(|dx|, |dy|)).
//   - Draw:  O(max(|dx|, |dy|) × (2t+1)²) plus one grid copy.
//   - Walk:  O(steps).
package corridor

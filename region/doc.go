// Package region discovers connected regions of like-typed cells in a
// grid.Grid and derives the geometry that connectivity strategies work from.
//
// What:
//
//   - Segment partitions a grid into maximal 4-connected regions of uniform
//     cell type, either globally or restricted to one target type
//     (WithTarget).
//   - Centroid, BoundingBox: rounded mean coordinate and tight cell-inclusive
//     extents of a point set.
//   - FarthestPointSample: greedy farthest-point sampling of representative
//     points; FarthestPointSampleConstrained keeps samples at least a given
//     distance away from every wall point.
//   - Bridge: minimal-conversion path between two regions (0-1 BFS), for
//     carving connections that reuse existing floor.
//
// Why:
//
//   - Game levels: find caves, rooms and islands, then place points of
//     interest away from obstacles and join the pieces.
//
// Determinism:
//
//   - Regions come out in row-major order of their seed (first visited)
//     cell. The order of points inside a region follows the flood-fill work
//     stack and is not part of the contract; compare memberships, not order.
//
// Complexity:
//
//   - Segment:             O(W×H) time and memory; every cell visited once.
//   - Centroid, BoundingBox: O(n).
//   - FarthestPointSample: O(n×k) for k samples out of n points.
//   - Constrained variant: O(m log m + n log m) extra for m wall points (R-tree).
//   - Bridge:              O(W×H) on average.
//
// Degenerate input never fails: empty regions, empty grids and k ≤ 0 yield
// empty results, and Centroid of nothing is NoPoint.
package region

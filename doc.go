// Package lvlmap segments and connects procedurally generated 2D game levels.
//
// A level is a grid.Grid of small integer cell types (walls, floors, points
// of interest) handed over by a pattern generator. lvlmap finds the
// connected regions of that grid, describes them geometrically, and carves
// corridors back into it so the pieces join up:
//
//	grid/      — value-semantics cell grid, bounds-safe Get/Set, Builder
//	region/    — 4-connected segmentation, centroids, bounding boxes,
//	             farthest-point sampling (optionally away from walls), bridges
//	unionfind/ — disjoint-set forest used for spanning trees
//	corridor/  — Bresenham corridors of any thickness, random-walk trails
//	connect/   — connectivity strategies: sequential, nearest, chain, MST,
//	             random walk, bridge
//
// Quick ASCII example, four rooms split by a wall cross and joined by MST:
//
//	..#..        ..#..
//	..#..        .....
//	#####   →    #.##.
//	..#..        ..#..
//	..#..        ..#..
//
// Every operation returns a new grid; inputs are never modified, so stages
// compose freely and grids may be shared between goroutines for reading.
// Nothing here blocks, performs I/O, or needs cancelling.
package lvlmap

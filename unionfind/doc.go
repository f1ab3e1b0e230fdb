// Package unionfind provides a slice-backed disjoint-set (union-find)
// structure over the integers [0, n).
//
// It backs cycle-free minimum spanning tree construction in package connect
// and is exported for callers that build their own connectivity strategies.
//
// Complexity:
//
//   - New:   O(n) time and memory.
//   - Find:  amortised O(α(n)) with path compression.
//   - Union: amortised O(α(n)) with union by rank.
package unionfind

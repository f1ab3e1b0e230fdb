package unionfind

// DisjointSet tracks a partition of [0, n) into disjoint sets.
type DisjointSet struct {
	parent []int
	rank   []int
	sets   int
}

// New creates a DisjointSet of n singleton sets. Negative n is treated as 0.
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &DisjointSet{
		parent: parent,
		rank:   make([]int, n),
		sets:   n,
	}
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// Sets returns the current number of disjoint sets.
func (d *DisjointSet) Sets() int {
	return d.sets
}

// Find returns the representative of the set containing i.
// Iterative, with path compression (each visited node is pointed at its
// grandparent). Indices outside [0, Len()) return -1.
func (d *DisjointSet) Find(i int) int {
	if i < 0 || i >= len(d.parent) {
		return -1
	}
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}

	return i
}

// Union merges the sets containing a and b by rank.
// Returns false, and does nothing, if they already share a set or either
// index is out of range.
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra < 0 || rb < 0 || ra == rb {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
	d.sets--

	return true
}

// Connected reports whether a and b share a set.
func (d *DisjointSet) Connected(a, b int) bool {
	ra := d.Find(a)

	return ra >= 0 && ra == d.Find(b)
}

package dsu

// DSU is a disjoint-set structure with path compression and union by rank.
// The universe is fixed at construction; elements are 0..n-1.
type DSU struct {
	parent []int
	rank   []int
	sets   int
}

// New creates a DSU of n singleton sets. n may be zero.
func New(n int) *DSU {
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Find returns the representative of the set containing a.
// Iterative path compression keeps subsequent lookups nearly O(1).
func (d *DSU) Find(a int) int {
	for d.parent[a] != a {
		// Point a at its grandparent, halving the path as we walk.
		d.parent[a] = d.parent[d.parent[a]]
		a = d.parent[a]
	}

	return a
}

// Union merges the sets containing a and b. It returns true when a merge
// occurred, false when both elements were already in the same set, which
// marks the edge (a, b) as redundant.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}

	// Attach the shorter tree under the taller one.
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	d.sets--

	return true
}

// Sets returns the number of disjoint sets remaining.
func (d *DSU) Sets() int {
	return d.sets
}

// Done reports whether the universe has collapsed into a single set.
// A universe of zero or one element is trivially done.
func (d *DSU) Done() bool {
	return d.sets <= 1
}

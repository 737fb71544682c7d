// Package unionfind implements the disjoint-set structure that every
// general-graph matching engine uses to virtualize blossom contraction
// (spec.md §4.2): a blossom is never physically merged into its
// children's adjacency, only its current top-level representative is
// tracked, so every edge scan still visits original neighbors and maps
// them to their blossom's base through Find.
//
// Grounded on the disjoint-set shape used throughout the retrieval pack
// (github.com/TrevorS/hdbscan's UnionFind, and the inline DSU in
// github.com/katalvlaran/lvlath's prim_kruskal.Kruskal), generalized per
// spec.md §4.2 to path-halving instead of path-compression-to-root and to
// an explicit MakeRep for forcing a specific representative — blossom
// bases are not arbitrary, they are the vertex the contraction/expansion
// logic designates.
package unionfind

// UnionFind is a disjoint-set structure over dense integer elements
// [0,n). The zero value is not usable; construct with New.
type UnionFind struct {
	parent []int
}

// New allocates a UnionFind over n singleton sets, each its own
// representative. Complexity: O(n).
func New(n int) *UnionFind {
	uf := &UnionFind{parent: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

// Reset restores every element to its own singleton set without
// reallocating, for reuse across stages (spec.md §5: per-stage arrays
// "allocated once at construction and reused across stages").
// Complexity: O(n).
func (uf *UnionFind) Reset() {
	for i := range uf.parent {
		uf.parent[i] = i
	}
}

// Find returns the representative of v's set, path-halving along the
// way: every other node visited is re-parented to its grandparent, per
// spec.md §4.2. Complexity: O(log n) amortized.
func (uf *UnionFind) Find(v int) int {
	for uf.parent[v] != v {
		uf.parent[v] = uf.parent[uf.parent[v]]
		v = uf.parent[v]
	}
	return v
}

// Union merges the sets containing a and b by pointing find(a) at b.
// Unlike a rank/size-balanced union, the new representative is always
// find(b): blossom contraction always knows which side should become
// the new base, and callers pick the order accordingly. Complexity:
// O(log n) amortized (dominated by the two Find calls).
func (uf *UnionFind) Union(a, b int) {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return
	}
	uf.parent[ra] = rb
}

// MakeRep forces v to become the representative of its own set: every
// node on the former path from v to its root still finds v's new root
// correctly, because only the root and v itself are touched.
// Used when a blossom's base changes and a specific vertex (not
// whichever Find happened to settle on) must become the representative.
// Complexity: O(1) amortized when called right after a Find(v).
func (uf *UnionFind) MakeRep(v int) {
	r := uf.Find(v)
	if r == v {
		return
	}
	uf.parent[r] = v
	uf.parent[v] = v
}

// Same reports whether a and b are in the same set.
func (uf *UnionFind) Same(a, b int) bool { return uf.Find(a) == uf.Find(b) }

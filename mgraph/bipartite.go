package graph

import "sort"

// Bipartite is a simple bipartite graph with left vertices [0,L) and
// right vertices [0,R). Adjacency is stored left->right only; engines
// that need the reverse direction (matched right vertex -> its left
// partner) track that separately via the matching itself.
type Bipartite struct {
	l, r int
	adj  [][]int // adj[u] = sorted, deduped right-neighbors of left vertex u
}

// NewBipartite allocates an empty bipartite graph with l left and r
// right vertices.
func NewBipartite(l, r int) *Bipartite {
	if l < 0 {
		l = 0
	}
	if r < 0 {
		r = 0
	}
	return &Bipartite{l: l, r: r, adj: make([][]int, l)}
}

// L reports the left partition size.
func (b *Bipartite) L() int { return b.l }

// R reports the right partition size.
func (b *Bipartite) R() int { return b.r }

// AddEdge records an edge between left vertex u and right vertex v.
// Out-of-range endpoints are silently dropped (spec.md §4.1).
func (b *Bipartite) AddEdge(u, v int) {
	if u < 0 || u >= b.l || v < 0 || v >= b.r {
		return
	}
	b.adj[u] = append(b.adj[u], v)
}

// Finalize sorts and deduplicates every left vertex's adjacency.
func (b *Bipartite) Finalize() {
	for u := range b.adj {
		b.adj[u] = sortDedup(b.adj[u])
	}
}

// Neighbors returns left vertex u's sorted, deduplicated right-neighbors.
func (b *Bipartite) Neighbors(u int) []int { return b.adj[u] }

// EdgeCount returns the number of distinct edges.
func (b *Bipartite) EdgeCount() int {
	m := 0
	for _, nbrs := range b.adj {
		m += len(nbrs)
	}
	return m
}

// HasEdge reports whether left vertex u is adjacent to right vertex v.
func (b *Bipartite) HasEdge(u, v int) bool {
	if u < 0 || u >= b.l {
		return false
	}
	nbrs := b.adj[u]
	i := sort.SearchInts(nbrs, v)
	return i < len(nbrs) && nbrs[i] == v
}

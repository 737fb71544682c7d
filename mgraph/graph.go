// Package graph provides the adjacency representation shared by every
// matching engine: vertices are dense integers in [0,n), adjacency is
// stored sorted and deduplicated per vertex, and self-loops plus
// out-of-range endpoints are dropped silently on construction.
//
// This mirrors the storage shape of github.com/katalvlaran/lvlath's
// core.Graph (adjacency-list-of-maps, deterministic iteration order) but
// trades the string-keyed, directed/weighted/multi-edge-capable model for
// the narrower one matching engines need: undirected, unweighted, simple.
// There is no internal locking — per spec, a solver instance is built,
// read many times during matching, and never mutated concurrently with a
// read, so the mutexes core.Graph needs for its general-purpose API would
// be pure overhead here.
package graph

import "sort"

// Graph is an undirected, unweighted, loop-free simple graph over the
// dense vertex set [0,N).
type Graph struct {
	n   int
	adj [][]int
}

// New allocates an empty Graph over n vertices with no edges.
// Complexity: O(n).
func New(n int) *Graph {
	if n < 0 {
		n = 0
	}
	return &Graph{n: n, adj: make([][]int, n)}
}

// N reports the vertex count.
func (g *Graph) N() int { return g.n }

// AddEdge records an undirected edge between u and v.
//
// Self-loops (u==v) and endpoints outside [0,N) are silently dropped, per
// spec.md §4.1 and the Non-goal that multigraphs/self-loops never surface.
// Duplicate edges are tolerated here and collapsed later by Finalize.
// Complexity: O(1) amortized (append only; sorting happens in Finalize).
func (g *Graph) AddEdge(u, v int) {
	if u == v || u < 0 || v < 0 || u >= g.n || v >= g.n {
		return
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
}

// Finalize sorts and deduplicates every adjacency list. Must be called
// once after all AddEdge calls and before the graph is handed to a
// solver; engines rely on sorted, duplicate-free adjacency for
// deterministic tie-breaks (spec.md §4.1, §5).
// Complexity: O(deg(v) log deg(v)) per vertex, O(E log E) total.
func (g *Graph) Finalize() {
	for v := range g.adj {
		g.adj[v] = sortDedup(g.adj[v])
	}
}

func sortDedup(xs []int) []int {
	if len(xs) < 2 {
		return xs
	}
	sort.Ints(xs)
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}

// Neighbors returns v's sorted, deduplicated adjacency. The returned
// slice must not be mutated by callers.
func (g *Graph) Neighbors(v int) []int { return g.adj[v] }

// Degree reports len(Neighbors(v)).
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// EdgeCount returns the number of distinct undirected edges.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	m := 0
	for _, nbrs := range g.adj {
		m += len(nbrs)
	}
	return m / 2
}

// Edges returns every edge (u,v) with u<v, sorted ascending by (u,v).
// Because adjacency lists are already sorted, a single pass per vertex
// collecting only neighbors > v produces globally sorted output directly.
// Complexity: O(V+E).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.EdgeCount())
	for u := 0; u < g.n; u++ {
		for _, v := range g.adj[u] {
			if v > u {
				out = append(out, [2]int{u, v})
			}
		}
	}
	return out
}

// HasEdge reports whether u and v are adjacent. Complexity: O(log deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n {
		return false
	}
	nbrs := g.adj[u]
	i := sort.SearchInts(nbrs, v)
	return i < len(nbrs) && nbrs[i] == v
}

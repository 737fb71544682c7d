// File: hopcroftkarp.go
// Role: HOPCROFT-KARP (spec.md §1) — the bipartite specialist: layered
// BFS finds every shortest augmenting-path length in one pass, then a
// single DFS pass consumes every vertex-disjoint shortest augmenting
// path before the next BFS layering, giving the classic O(E·sqrt(V))
// bound. No blossoms, no union-find, no lca package — bipartite graphs
// have none (spec.md §4.6).
package matching

import "github.com/go-blossom/maxmatch/mgraph"

const hkInf = int(^uint(0) >> 1)

// SolveHopcroftKarp computes a maximum matching on a bipartite graph
// (spec.md §1 HOPCROFT-KARP).
//
// Complexity: O(sqrt(V)) BFS/DFS phases, each O(E) — O(E·sqrt(V))
// overall, per spec.md §1.
func SolveHopcroftKarp(bg *graph.Bipartite, opts ...EngineOption) (BipartiteMatching, Stats, error) {
	if bg == nil {
		return nil, Stats{}, ErrNilBipartite
	}
	cfg := resolveConfig(opts)

	matchL, matchR := greedySeedBipartite(bg, cfg.warmStart)
	hk := &hopcroftKarpState{
		bg:     bg,
		matchL: matchL,
		matchR: matchR,
		dist:   make([]int, bg.L()),
	}

	var stats Stats
	for hk.bfs() {
		stats.Stages++
		for u := 0; u < bg.L(); u++ {
			if hk.matchL[u] == nilVertex {
				if hk.dfs(u) {
					stats.AugmentingPaths++
				}
			}
		}
	}

	m := make(BipartiteMatching, 0, len(matchL))
	for u, v := range matchL {
		if v != nilVertex {
			m = append(m, [2]int{u, v})
		}
	}
	return m, stats, nil
}

// hopcroftKarpState holds the arrays one Solve call's BFS/DFS phases
// share, allocated once and reused across phases (spec.md §5).
type hopcroftKarpState struct {
	bg     *graph.Bipartite
	matchL []int // matchL[u] = matched right vertex, or nilVertex
	matchR []int // matchR[v] = matched left vertex, or nilVertex
	dist   []int // BFS layer of each left vertex
	queue  []int
}

// bfs layers every free left vertex's reachable free-right-vertex
// distance and reports whether at least one augmenting path of that
// length exists (spec.md §4.6).
func (hk *hopcroftKarpState) bfs() bool {
	hk.queue = hk.queue[:0]
	for u := range hk.dist {
		if hk.matchL[u] == nilVertex {
			hk.dist[u] = 0
			hk.queue = append(hk.queue, u)
		} else {
			hk.dist[u] = hkInf
		}
	}

	distNil := hkInf
	for i := 0; i < len(hk.queue); i++ {
		u := hk.queue[i]
		if hk.dist[u] >= distNil {
			continue
		}
		for _, v := range hk.bg.Neighbors(u) {
			w := hk.matchR[v]
			if w == nilVertex {
				if distNil == hkInf {
					distNil = hk.dist[u] + 1
				}
			} else if hk.dist[w] == hkInf {
				hk.dist[w] = hk.dist[u] + 1
				hk.queue = append(hk.queue, w)
			}
		}
	}

	return distNil != hkInf
}

// dfs extends u along one layer-respecting path, augmenting on the
// first free right vertex it reaches (spec.md §4.6).
func (hk *hopcroftKarpState) dfs(u int) bool {
	for _, v := range hk.bg.Neighbors(u) {
		w := hk.matchR[v]
		if w == nilVertex || (hk.dist[w] == hk.dist[u]+1 && hk.dfs(w)) {
			hk.matchL[u] = v
			hk.matchR[v] = u
			return true
		}
	}
	hk.dist[u] = hkInf
	return false
}

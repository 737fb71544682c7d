// File: gabowsimple.go
// Role: GABOW-SIMPLE (spec.md §1) — the same multi-root alternating
// forest as BLOSSOM-FOREST, but contraction is "path-only": it merges
// bases with the shared unionfind.UnionFind along the two bridge chains
// and then relabels the rest of the newly-formed blossom with one O(V)
// rescan, instead of maintaining a persistent per-blossom member list.
// This trades BLOSSOM-FOREST's O(blossom size) relabeling for a simpler,
// arena-free bookkeeping scheme — exactly the contrast spec.md §1 draws
// between the two engines. Every bridge (v,w) that triggers a contraction
// is also appended to bridges; the list is cleared at the start of each
// stage, is not exposed to callers, and its length per stage is what
// Stats.BlossomsFormed accumulates.
package matching

import (
	"github.com/go-blossom/maxmatch/lca"
	"github.com/go-blossom/maxmatch/mgraph"
	"github.com/go-blossom/maxmatch/unionfind"
)

// SolveGabowSimple computes a maximum matching with Gabow's path-only
// contraction scheme (spec.md §1 GABOW-SIMPLE).
//
// Complexity: O(V) stages, each O(V+E) to grow plus O(V) per contraction
// rescan — O(V·E) overall.
func SolveGabowSimple(g *graph.Graph, opts ...EngineOption) (Matching, Stats, error) {
	if g == nil {
		return nil, Stats{}, ErrNilGraph
	}
	cfg := resolveConfig(opts)

	n := g.N()
	gs := &gabowSimpleStage{
		g:     g,
		match: greedySeed(g, cfg.warmStart),
		n:     n,
		uf:    unionfind.New(n),
		label: make([]int8, n),
		par:   make([]int, n),
		used:  make([]bool, n),
	}
	gs.lc = lca.New(gabowTree{gs: gs}, n)

	var stats Stats
	for {
		stats.Stages++
		augmented := gs.runStage()
		stats.BlossomsFormed += len(gs.bridges)
		if !augmented {
			break
		}
		stats.AugmentingPaths++
	}

	return buildMatching(gs.match), stats, nil
}

// gabowSimpleStage mirrors forestStage's arrays minus the leaves/nesting
// bookkeeping BLOSSOM-FOREST keeps (spec.md §5: arrays sized once,
// reused across stages).
type gabowSimpleStage struct {
	g     *graph.Graph
	match []int
	n     int

	uf    *unionfind.UnionFind
	label []int8
	par   []int
	used  []bool

	lc      *lca.Interleaved
	queue   []int
	bridges [][2]int
}

type gabowTree struct{ gs *gabowSimpleStage }

func (t gabowTree) Outside(id int) int {
	m := t.gs.match[id]
	if m == nilVertex {
		return nilVertex
	}
	return t.gs.par[m]
}
func (t gabowTree) Base(v int) int { return t.gs.uf.Find(v) }

func (gs *gabowSimpleStage) runStage() bool {
	gs.uf.Reset()
	gs.bridges = gs.bridges[:0]
	for v := 0; v < gs.n; v++ {
		gs.label[v] = labelUnlabeled
		gs.par[v] = nilVertex
		gs.used[v] = false
	}
	gs.queue = gs.queue[:0]
	for v := 0; v < gs.n; v++ {
		if gs.match[v] == nilVertex {
			gs.label[v] = labelS
			gs.used[v] = true
			gs.queue = append(gs.queue, v)
		}
	}

	for len(gs.queue) > 0 {
		v := gs.queue[0]
		gs.queue = gs.queue[1:]

		for _, w := range gs.g.Neighbors(v) {
			bv, bw := gs.uf.Find(v), gs.uf.Find(w)
			if bv == bw {
				continue
			}
			switch gs.label[bw] {
			case labelUnlabeled:
				gs.label[w] = labelT
				gs.par[w] = v
				x := gs.match[w]
				gs.label[gs.uf.Find(x)] = labelS
				gs.par[x] = w
				if !gs.used[x] {
					gs.used[x] = true
					gs.queue = append(gs.queue, x)
				}
			case labelS:
				anc, ok := gs.lc.Find(v, w)
				if ok {
					gs.contract(v, w, anc)
				} else {
					gs.augment(v, w)
					return true
				}
			case labelT:
			}
		}
	}

	return false
}

// contract merges the bridge chains into anc via union-find, then
// rescans every vertex once to relabel any base that landed on anc and
// was T, pushing its vertices to the queue (spec.md §4.5 contraction,
// path-only variant).
func (gs *gabowSimpleStage) contract(v, w, anc int) {
	gs.bridges = append(gs.bridges, [2]int{v, w})
	gs.markPath(v, anc, w)
	gs.markPath(w, anc, v)

	for i := 0; i < gs.n; i++ {
		if gs.uf.Find(i) != anc {
			continue
		}
		if gs.label[i] == labelT {
			gs.label[i] = labelS
			if !gs.used[i] {
				gs.used[i] = true
				gs.queue = append(gs.queue, i)
			}
		}
	}
}

func (gs *gabowSimpleStage) markPath(v, anc, child int) {
	for gs.uf.Find(v) != anc {
		gs.uf.Union(gs.uf.Find(v), anc)
		gs.uf.MakeRep(anc)
		gs.uf.Union(gs.uf.Find(gs.match[v]), anc)
		gs.uf.MakeRep(anc)
		gs.par[v] = child
		child = gs.match[v]
		v = gs.par[gs.match[v]]
	}
}

func (gs *gabowSimpleStage) augment(v, w int) {
	oldV, oldW := gs.match[v], gs.match[w]
	gs.match[v], gs.match[w] = w, v
	gs.flipChain(oldV)
	gs.flipChain(oldW)
}

func (gs *gabowSimpleStage) flipChain(t int) {
	for t != nilVertex {
		s := gs.par[t]
		oldS := gs.match[s]
		gs.match[t] = s
		gs.match[s] = t
		t = oldS
	}
}

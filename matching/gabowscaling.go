// File: gabowscaling.go
// Role: GABOW-SCALING (spec.md §1) — a level-structured variant of the
// forest search: Phase 1 runs one multi-root BFS that assigns every
// vertex a level (distance from its root) without touching the
// union-find at all, recording every S-S edge it crosses as a bridge
// tagged with its tenacity (spec.md §3: tenacity = level(v)+level(w)+1).
// Phase 2 then walks those bridges in ascending tenacity order,
// contracting or augmenting one at a time — union-find application is
// deferred until Phase 2 so a low-tenacity blossom is always contracted
// before a higher-tenacity bridge that depends on it is examined (spec.md
// §9 invariant I7).
package matching

import (
	"sort"

	"github.com/go-blossom/maxmatch/lca"
	"github.com/go-blossom/maxmatch/mgraph"
	"github.com/go-blossom/maxmatch/unionfind"
)

// SolveGabowScaling computes a maximum matching with Gabow's
// tenacity-bucketed scaling technique (spec.md §1 GABOW-SCALING).
//
// Complexity: O(V) stages, each O(V+E) for the level BFS plus
// O(E log E) to sort bridges by tenacity — O(V·E log E) overall.
func SolveGabowScaling(g *graph.Graph, opts ...EngineOption) (Matching, Stats, error) {
	if g == nil {
		return nil, Stats{}, ErrNilGraph
	}
	cfg := resolveConfig(opts)

	n := g.N()
	gs := &gabowScalingStage{
		g:     g,
		match: greedySeed(g, cfg.warmStart),
		n:     n,
		uf:    unionfind.New(n),
		label: make([]int8, n),
		level: make([]int, n),
		par:   make([]int, n),
		used:  make([]bool, n),
	}
	gs.lc = lca.New(gabowScalingTree{gs: gs}, n)

	var stats Stats
	for {
		stats.Stages++
		augmented, blossoms := gs.runStage()
		stats.BlossomsFormed += blossoms
		if !augmented {
			break
		}
		stats.AugmentingPaths++
	}

	return buildMatching(gs.match), stats, nil
}

type bridge struct {
	v, w, tenacity int
}

type gabowScalingStage struct {
	g     *graph.Graph
	match []int
	n     int

	uf    *unionfind.UnionFind
	label []int8
	level []int
	par   []int
	used  []bool

	lc       *lca.Interleaved
	queue    []int
	bridges  []bridge
	promoted []int
}

type gabowScalingTree struct{ gs *gabowScalingStage }

func (t gabowScalingTree) Outside(id int) int {
	m := t.gs.match[id]
	if m == nilVertex {
		return nilVertex
	}
	return t.gs.par[m]
}
func (t gabowScalingTree) Base(v int) int { return t.gs.uf.Find(v) }

// runStage runs Phase 1 (level BFS, bridge collection) then Phase 2
// (tenacity-ordered contraction/augmentation). It returns whether the
// stage augmented the matching and how many blossoms it formed.
func (gs *gabowScalingStage) runStage() (bool, int) {
	gs.uf.Reset()
	for v := 0; v < gs.n; v++ {
		gs.label[v] = labelUnlabeled
		gs.level[v] = -1
		gs.par[v] = nilVertex
		gs.used[v] = false
	}
	gs.queue = gs.queue[:0]
	gs.bridges = gs.bridges[:0]
	for v := 0; v < gs.n; v++ {
		if gs.match[v] == nilVertex {
			gs.label[v] = labelS
			gs.level[v] = 0
			gs.used[v] = true
			gs.queue = append(gs.queue, v)
		}
	}

	for len(gs.queue) > 0 {
		v := gs.queue[0]
		gs.queue = gs.queue[1:]

		for _, w := range gs.g.Neighbors(v) {
			switch gs.label[w] {
			case labelUnlabeled:
				gs.label[w] = labelT
				gs.level[w] = gs.level[v] + 1
				gs.par[w] = v
				x := gs.match[w]
				gs.label[x] = labelS
				gs.level[x] = gs.level[w] + 1
				gs.par[x] = w
				if !gs.used[x] {
					gs.used[x] = true
					gs.queue = append(gs.queue, x)
				}
			case labelS:
				if v < w {
					gs.bridges = append(gs.bridges, bridge{v: v, w: w, tenacity: gs.level[v] + gs.level[w] + 1})
				}
			case labelT:
			}
		}
	}

	sort.SliceStable(gs.bridges, func(i, j int) bool { return gs.bridges[i].tenacity < gs.bridges[j].tenacity })

	blossoms := 0
	for i := 0; i < len(gs.bridges); i++ {
		br := gs.bridges[i]
		bv, bw := gs.uf.Find(br.v), gs.uf.Find(br.w)
		if bv == bw {
			continue
		}
		anc, ok := gs.lc.Find(br.v, br.w)
		if ok {
			gs.contract(br.v, br.w, anc)
			blossoms++
		} else {
			gs.augment(br.v, br.w)
			return true, blossoms
		}
	}

	return false, blossoms
}

// contract merges the bridge chains into anc via union-find, then
// rescans every vertex once to find any base that landed on anc and was
// T: those vertices are now reachable from the root via an S-alternating
// path through the new blossom (spec.md §4.5), so they are relabeled S
// and pushed onto a local queue that is drained with the same three-way
// switch Phase 1's BFS uses, so a promoted vertex explores exactly like
// a genuine frontier vertex — discovering brand-new Unlabeled vertices,
// not just edges into already-S territory. New S-S edges become bridges
// appended to gs.bridges, picked up by Phase 2's index-based loop later
// in this same stage.
func (gs *gabowScalingStage) contract(v, w, anc int) {
	gs.markPath(v, anc, w)
	gs.markPath(w, anc, v)

	queue := gs.promoted[:0]
	for i := 0; i < gs.n; i++ {
		if gs.uf.Find(i) != anc || gs.label[i] != labelT {
			continue
		}
		gs.label[i] = labelS
		queue = append(queue, i)
	}

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]

		for _, x := range gs.g.Neighbors(i) {
			switch gs.label[x] {
			case labelUnlabeled:
				gs.label[x] = labelT
				gs.level[x] = gs.level[i] + 1
				gs.par[x] = i
				m := gs.match[x]
				gs.label[m] = labelS
				gs.level[m] = gs.level[x] + 1
				gs.par[m] = x
				if !gs.used[m] {
					gs.used[m] = true
					queue = append(queue, m)
				}
			case labelS:
				if gs.uf.Find(x) != anc {
					gs.bridges = append(gs.bridges, bridge{v: i, w: x, tenacity: gs.level[i] + gs.level[x] + 1})
				}
			case labelT:
			}
		}
	}

	gs.promoted = queue[:0]
}

func (gs *gabowScalingStage) markPath(v, anc, child int) {
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

func (gs *gabowScalingStage) augment(v, w int) {
	oldV, oldW := gs.match[v], gs.match[w]
	gs.match[v], gs.match[w] = w, v
	gs.flipChain(oldV)
	gs.flipChain(oldW)
}

func (gs *gabowScalingStage) flipChain(t int) {
	for t != nilVertex {
		s := gs.par[t]
		oldS := gs.match[s]
		gs.match[t] = s
		gs.match[s] = t
		t = oldS
	}
}

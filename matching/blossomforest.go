// File: blossomforest.go
// Role: BLOSSOM-FOREST (spec.md §1) — Edmonds-style forest BFS with full
// blossom contraction, expansion, and augmentation through nested
// blossoms; O(V·E). This is "THE CORE" engine spec.md §1 singles out:
// it grows one alternating forest from every exposed vertex at once
// (spec.md §4.4), wires the shared unionfind.UnionFind for virtual
// blossom contraction and the shared lca.Interleaved for ancestor
// detection (spec.md §4.2, §4.3), and records enough blossom structure
// (leaves, nesting parent) to push newly-S leaves to the queue and to
// count Stats.BlossomsFormed.
//
// Augmentation-through-nested-blossoms (spec.md §4.5) is handled without
// a separate "expand" pass: contraction already rewrites each absorbed
// vertex's tree-parent pointer to the real alternating-path direction
// through the blossom (the same technique BLOSSOM-SIMPLE uses, §9 of
// spec.md leaves the exact bookkeeping strategy to the implementer), so
// the augmentation walk threads through any nesting depth for free.
package matching

import (
	"github.com/go-blossom/maxmatch/lca"
	"github.com/go-blossom/maxmatch/mgraph"
	"github.com/go-blossom/maxmatch/unionfind"
)

const (
	labelUnlabeled int8 = 0
	labelS         int8 = 1
	labelT         int8 = 2
)

// SolveBlossomForest computes a maximum matching by iterating stages:
// build a multi-root alternating forest, detect one blossom or
// augmenting path per even-even edge encountered, and on augmentation
// begin the next stage (spec.md §4.7).
//
// Complexity: O(V) stages, each O(V+E) to grow the forest and O(V) per
// blossom contraction — O(V·E) overall, per spec.md §1.
func SolveBlossomForest(g *graph.Graph, opts ...EngineOption) (Matching, Stats, error) {
	if g == nil {
		return nil, Stats{}, ErrNilGraph
	}
	cfg := resolveConfig(opts)

	n := g.N()
	fs := &forestStage{
		g:             g,
		match:         greedySeed(g, cfg.warmStart),
		n:             n,
		uf:            unionfind.New(n),
		label:         make([]int8, n),
		par:           make([]int, n),
		used:          make([]bool, n),
		leaves:        make([][]int, n),
		blossomParent: make([]int, n),
	}
	fs.tree = forestTree{fs: fs}
	fs.lc = lca.New(fs.tree, n)
	for v := range fs.leaves {
		fs.leaves[v] = []int{v}
	}

	var stats Stats
	for {
		stats.Stages++
		augmented := fs.runStage()
		if augmented {
			stats.AugmentingPaths++
			stats.BlossomsFormed += fs.blossomsThisStage
		} else {
			stats.BlossomsFormed += fs.blossomsThisStage
			break
		}
	}

	return buildMatching(fs.match), stats, nil
}

// forestStage holds every array the BFS/forest growth, contraction, and
// augmentation of one stage touch (spec.md §2 components 5,6,7). Arrays
// are sized once at construction and reset at the top of each stage
// (spec.md §5).
type forestStage struct {
	g     *graph.Graph
	match []int // persistent across stages (spec.md §3 lifecycle: mate)
	n     int

	uf            *unionfind.UnionFind
	label         []int8
	par           []int // tree parent vertex, nilVertex if none
	used          []bool
	leaves        [][]int // leaves[base] = flattened member vertices of base's current blossom
	blossomParent []int   // nesting: enclosing base, or nilVertex if top-level

	tree forestTree
	lc   *lca.Interleaved
	queue []int

	blossomsThisStage int
}

// forestTree adapts forestStage to lca.Tree: a base's labeledge outside
// vertex is par[match[base]] unless base is an exposed root.
type forestTree struct{ fs *forestStage }

func (t forestTree) Outside(id int) int {
	m := t.fs.match[id]
	if m == nilVertex {
		return nilVertex
	}
	return t.fs.par[m]
}
func (t forestTree) Base(v int) int { return t.fs.uf.Find(v) }

// runStage grows one multi-root forest and returns true iff it found
// and performed one augmentation (spec.md §4.4, §4.7).
func (fs *forestStage) runStage() bool {
	fs.uf.Reset()
	fs.blossomsThisStage = 0
	for v := 0; v < fs.n; v++ {
		fs.label[v] = labelUnlabeled
		fs.par[v] = nilVertex
		fs.used[v] = false
		fs.blossomParent[v] = nilVertex
		fs.leaves[v] = fs.leaves[v][:0]
		fs.leaves[v] = append(fs.leaves[v], v)
	}
	fs.queue = fs.queue[:0]
	for v := 0; v < fs.n; v++ {
		if fs.match[v] == nilVertex {
			fs.label[v] = labelS
			fs.used[v] = true
			fs.queue = append(fs.queue, v)
		}
	}

	for len(fs.queue) > 0 {
		v := fs.queue[0]
		fs.queue = fs.queue[1:]

		for _, w := range fs.g.Neighbors(v) {
			bv, bw := fs.uf.Find(v), fs.uf.Find(w)
			if bv == bw {
				continue
			}
			switch fs.label[bw] {
			case labelUnlabeled:
				// w must be matched: every exposed vertex started this
				// stage labeled S (spec.md §4.4).
				fs.label[w] = labelT
				fs.par[w] = v
				x := fs.match[w]
				fs.label[fs.uf.Find(x)] = labelS
				fs.par[x] = w
				if !fs.used[x] {
					fs.used[x] = true
					fs.queue = append(fs.queue, x)
				}
			case labelS:
				anc, ok := fs.lc.Find(v, w)
				if ok {
					fs.contract(v, w, anc)
				} else {
					fs.augment(v, w)
					return true
				}
			case labelT:
				// ignore, per spec.md §4.4
			}
		}
	}

	return false
}

// contract forms a new blossom based at anc by walking both sides of
// the bridge (v,w) up to anc, absorbing every sub-base encountered
// (spec.md §4.5 contraction).
func (fs *forestStage) contract(v, w, anc int) {
	fs.blossomsThisStage++
	fs.markPath(v, anc, w)
	fs.markPath(w, anc, v)
}

// markPath walks from v up to blossom base anc, absorbing every base it
// passes (both the S-side base containing the current vertex and the
// T-side base containing its match) into anc, and rewiring tree-parent
// pointers so the path from v to anc already reflects the real
// alternating direction through the newly formed blossom (spec.md §4.5:
// "relabel T-vertices to S on contraction").
func (fs *forestStage) markPath(v, anc, child int) {
	for fs.uf.Find(v) != anc {
		fs.absorb(fs.uf.Find(v), anc)
		fs.absorb(fs.uf.Find(fs.match[v]), anc)
		fs.par[v] = child
		child = fs.match[v]
		v = fs.par[fs.match[v]]
	}
}

// absorb merges base b into base anc's blossom, relabeling b to S and
// pushing its leaves to the BFS queue if b was previously T (spec.md
// §4.5: newly reachable T-vertices become S).
func (fs *forestStage) absorb(b, anc int) {
	if fs.uf.Find(b) == anc {
		return
	}
	wasT := fs.label[b] == labelT
	if b != anc {
		fs.leaves[anc] = append(fs.leaves[anc], fs.leaves[b]...)
		fs.blossomParent[b] = anc
	}
	fs.uf.Union(b, anc)
	fs.uf.MakeRep(anc)
	if wasT {
		fs.label[b] = labelS
		for _, lv := range fs.leaves[b] {
			if !fs.used[lv] {
				fs.used[lv] = true
				fs.queue = append(fs.queue, lv)
			}
		}
	}
}

// augment flips matched status along the alternating path from v's
// root, through the bridge (v,w), to w's root (spec.md §4.5
// augmentation). v and w belong to different trees.
func (fs *forestStage) augment(v, w int) {
	oldV, oldW := fs.match[v], fs.match[w]
	fs.match[v], fs.match[w] = w, v
	fs.flipChain(oldV)
	fs.flipChain(oldW)
}

// flipChain propagates the flip from a T-vertex t up through its
// S-discoverer to t's exposed root, one matched pair at a time. Capturing
// each vertex's old match before overwriting it is what lets this walk
// safely mutate match[] in place (spec.md §4.5).
func (fs *forestStage) flipChain(t int) {
	for t != nilVertex {
		s := fs.par[t]
		oldS := fs.match[s]
		fs.match[t] = s
		fs.match[s] = t
		t = oldS
	}
}

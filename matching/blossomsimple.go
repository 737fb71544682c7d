// File: blossomsimple.go
// Role: BLOSSOM-SIMPLE (spec.md §1) — Edmonds' blossom algorithm, one
// augmenting path per BFS, O(V·E). The pedagogical baseline: each stage
// grows a forest from a single exposed root, not the full multi-root
// forest BLOSSOM-FOREST and its siblings share. Self-contained — no
// unionfind/lca package dependency — because a single-root search only
// ever needs to resolve ancestors within its own tree, for which a plain
// per-stage base[] array and an explicit marking walk (the textbook
// technique) is simpler than wiring the general multi-tree machinery.
package matching

import "github.com/go-blossom/maxmatch/mgraph"

// SolveBlossomSimple computes a maximum matching via repeated
// single-root augmenting searches (spec.md §1 BLOSSOM-SIMPLE).
//
// Complexity: O(V) searches, each O(V+E) to grow plus O(V) per blossom
// contraction — O(V·E) overall, per spec.md §1.
func SolveBlossomSimple(g *graph.Graph) (Matching, Stats, error) {
	if g == nil {
		return nil, Stats{}, ErrNilGraph
	}

	n := g.N()
	match := make([]int, n)
	for i := range match {
		match[i] = nilVertex
	}

	bs := &blossomSimpleStage{
		g:     g,
		match: match,
		base:  make([]int, n),
		par:   make([]int, n),
		used:  make([]bool, n),
		inB:   make([]bool, n),
		used2: make([]bool, n),
	}

	var stats Stats
	for root := 0; root < n; root++ {
		if match[root] != nilVertex {
			continue
		}
		stats.Stages++
		if found := bs.findPath(root); found != nilVertex {
			bs.augment(found)
			stats.AugmentingPaths++
		}
	}

	return buildMatching(match), stats, nil
}

// blossomSimpleStage holds the per-stage arrays the textbook algorithm
// resets on every findPath call — the instance exists once per Solve
// call and its slices are reused across stages (spec.md §5).
type blossomSimpleStage struct {
	g     *graph.Graph
	match []int

	base  []int // virtual blossom base per vertex, reset to base[v]=v each call
	par   []int // tree parent vertex, -1 if none assigned
	used  []bool
	inB   []bool // scratch: true if base[i] lies in the blossom currently being contracted
	used2 []bool // scratch for lca marking
}

// findPath grows one alternating tree from root and returns an exposed
// vertex reached by an augmenting path, or nilVertex if the tree is
// exhausted with no augmentation (spec.md §4.4).
func (bs *blossomSimpleStage) findPath(root int) int {
	n := len(bs.match)
	for i := 0; i < n; i++ {
		bs.base[i] = i
		bs.par[i] = nilVertex
		bs.used[i] = false
	}
	bs.used[root] = true
	queue := []int{root}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		for _, w := range bs.g.Neighbors(v) {
			if bs.base[v] == bs.base[w] || bs.match[v] == w {
				continue
			}
			if w == root || (bs.match[w] != nilVertex && bs.par[bs.match[w]] != nilVertex) {
				curBase := bs.lca(v, w)
				for i := 0; i < n; i++ {
					bs.inB[i] = false
				}
				bs.markPath(v, curBase, w)
				bs.markPath(w, curBase, v)
				for i := 0; i < n; i++ {
					if bs.inB[bs.base[i]] {
						bs.base[i] = curBase
						if !bs.used[i] {
							bs.used[i] = true
							queue = append(queue, i)
						}
					}
				}
			} else if bs.par[w] == nilVertex {
				bs.par[w] = v
				if bs.match[w] == nilVertex {
					return w
				}
				bs.used[bs.match[w]] = true
				queue = append(queue, bs.match[w])
			}
		}
	}

	return nilVertex
}

// lca finds the nearest common ancestor of v and w in the current tree
// by marking v's chain to the root, then walking w's chain until a
// marked vertex is found (textbook technique, no explicit depths
// needed).
func (bs *blossomSimpleStage) lca(v, w int) int {
	n := len(bs.match)
	for i := 0; i < n; i++ {
		bs.used2[i] = false
	}
	x := v
	for {
		x = bs.base[x]
		bs.used2[x] = true
		if bs.match[x] == nilVertex {
			break
		}
		x = bs.par[bs.match[x]]
	}
	y := w
	for {
		y = bs.base[y]
		if bs.used2[y] {
			return y
		}
		y = bs.par[bs.match[y]]
	}
}

// markPath walks from v back to blossom base b, marking every vertex's
// base as part of the new blossom and rewiring tree parents so the
// subsequent augmentation walk can flip matched edges straight through
// the contracted region (spec.md §4.5 contraction).
func (bs *blossomSimpleStage) markPath(v, b, child int) {
	for bs.base[v] != b {
		bs.inB[bs.base[v]] = true
		bs.inB[bs.base[bs.match[v]]] = true
		bs.par[v] = child
		child = bs.match[v]
		v = bs.par[bs.match[v]]
	}
}

// augment flips matched/unmatched status along the path from u (the
// exposed vertex an augmenting search reached) back to its root,
// following tree-parent pointers (spec.md §4.5 augmentation).
func (bs *blossomSimpleStage) augment(u int) {
	for u != nilVertex {
		pv := bs.par[u]
		ppv := bs.match[pv]
		bs.match[u] = pv
		bs.match[pv] = u
		u = ppv
	}
}

// buildMatching converts a match[] array into a sorted Matching
// (spec.md §6/§8 P2).
func buildMatching(match []int) Matching {
	m := make(Matching, 0, len(match)/2)
	for v, w := range match {
		if w != nilVertex && v < w {
			m = append(m, [2]int{v, w})
		}
	}
	return m
}

// File: micalivazirani.go
// Role: MICALI-VAZIRANI (spec.md §1) — a level-structured search like
// GABOW-SCALING, but ancestor-finding is a double depth-first search
// (DDFS) over two colored pointers, "green" climbing from one bridge
// endpoint and "red" from the other, rather than the shared
// lca.Interleaved climb: spec.md §9 calls out DDFS as this engine's own
// mechanism. On a tie in depth the red pointer advances first, then
// green (spec.md §9) — the only place in this package that rule
// applies. Where the two pointers meet is the blossom's bottleneck
// vertex; contracting the petal from each side up to the bottleneck and
// augmenting through it reuses the same tree-parent rewrite technique
// BLOSSOM-FOREST and GABOW-SIMPLE use, rather than separate above/below
// unwinding pointers — see DESIGN.md for that simplification.
package matching

import (
	"sort"

	"github.com/go-blossom/maxmatch/mgraph"
	"github.com/go-blossom/maxmatch/unionfind"
)

// SolveMicaliVazirani computes a maximum matching via level-structured
// DDFS bottleneck search (spec.md §1 MICALI-VAZIRANI).
//
// Complexity: O(sqrt(V)) outer phases in the classic algorithm; this
// implementation runs one full level BFS plus tenacity-ordered DDFS
// passes per augmentation found, O(V) stages each O(V+E) — O(V·E)
// overall.
func SolveMicaliVazirani(g *graph.Graph, opts ...EngineOption) (Matching, Stats, error) {
	if g == nil {
		return nil, Stats{}, ErrNilGraph
	}
	cfg := resolveConfig(opts)

	n := g.N()
	mv := &mvStage{
		g:       g,
		match:   greedySeed(g, cfg.warmStart),
		n:       n,
		uf:      unionfind.New(n),
		label:   make([]int8, n),
		level:   make([]int, n),
		par:     make([]int, n),
		used:    make([]bool, n),
		visited: make([]bool, n),
	}

	var stats Stats
	for {
		stats.Stages++
		augmented, blossoms := mv.runStage()
		stats.BlossomsFormed += blossoms
		if !augmented {
			break
		}
		stats.AugmentingPaths++
	}

	return buildMatching(mv.match), stats, nil
}

type mvStage struct {
	g     *graph.Graph
	match []int
	n     int

	uf      *unionfind.UnionFind
	label   []int8
	level   []int
	par     []int
	used    []bool
	visited []bool // bases reached by either pointer this DDFS call; reaching one again is the meeting point

	queue    []int
	bridges  []bridge
	promoted []int
}

// runStage mirrors GABOW-SCALING's Phase 1 (level BFS, bridge
// collection by tenacity) but resolves each bridge with ddfs instead of
// the shared lca.Interleaved climb (spec.md §4.4, §9).
func (mv *mvStage) runStage() (bool, int) {
	mv.uf.Reset()
	for v := 0; v < mv.n; v++ {
		mv.label[v] = labelUnlabeled
		mv.level[v] = -1
		mv.par[v] = nilVertex
		mv.used[v] = false
	}
	mv.queue = mv.queue[:0]
	mv.bridges = mv.bridges[:0]
	for v := 0; v < mv.n; v++ {
		if mv.match[v] == nilVertex {
			mv.label[v] = labelS
			mv.level[v] = 0
			mv.used[v] = true
			mv.queue = append(mv.queue, v)
		}
	}

	for len(mv.queue) > 0 {
		v := mv.queue[0]
		mv.queue = mv.queue[1:]

		for _, w := range mv.g.Neighbors(v) {
			switch mv.label[w] {
			case labelUnlabeled:
				mv.label[w] = labelT
				mv.level[w] = mv.level[v] + 1
				mv.par[w] = v
				x := mv.match[w]
				mv.label[x] = labelS
				mv.level[x] = mv.level[w] + 1
				mv.par[x] = w
				if !mv.used[x] {
					mv.used[x] = true
					mv.queue = append(mv.queue, x)
				}
			case labelS:
				if v < w {
					mv.bridges = append(mv.bridges, bridge{v: v, w: w, tenacity: mv.level[v] + mv.level[w] + 1})
				}
			case labelT:
			}
		}
	}

	sort.SliceStable(mv.bridges, func(i, j int) bool { return mv.bridges[i].tenacity < mv.bridges[j].tenacity })

	blossoms := 0
	for i := 0; i < len(mv.bridges); i++ {
		br := mv.bridges[i]
		bv, bw := mv.uf.Find(br.v), mv.uf.Find(br.w)
		if bv == bw {
			continue
		}
		bottleneck, ok := mv.ddfs(br.v, br.w)
		if ok {
			mv.contractPetal(br.v, br.w, bottleneck)
			blossoms++
		} else {
			mv.augment(br.v, br.w)
			return true, blossoms
		}
	}

	return false, blossoms
}

// ddfs walks a green pointer from v and a red pointer from w up their
// respective trees one base at a time, always advancing whichever
// pointer sits at the greater level so the two stay level-synchronized;
// on a tie it advances red before green (spec.md §9). It returns the
// bottleneck base where they meet, or (-1, false) if both pointers
// exhaust at distinct exposed roots without meeting.
func (mv *mvStage) ddfs(v, w int) (int, bool) {
	green, red := mv.uf.Find(v), mv.uf.Find(w)
	if green == red {
		return green, true
	}
	for i := range mv.visited {
		mv.visited[i] = false
	}
	mv.visited[green] = true
	mv.visited[red] = true

	for {
		switch {
		case mv.level[green] > mv.level[red]:
			ng, ok := mv.step(green)
			if !ok {
				return -1, false
			}
			if ng == red || mv.visited[ng] {
				return ng, true
			}
			mv.visited[ng] = true
			green = ng
		case mv.level[red] > mv.level[green]:
			nr, ok := mv.step(red)
			if !ok {
				return -1, false
			}
			if nr == green || mv.visited[nr] {
				return nr, true
			}
			mv.visited[nr] = true
			red = nr
		default: // tie: red advances first
			nr, ok := mv.step(red)
			if ok {
				if nr == green || mv.visited[nr] {
					return nr, true
				}
				mv.visited[nr] = true
				red = nr
				continue
			}
			ng, ok2 := mv.step(green)
			if !ok2 {
				return -1, false
			}
			if ng == red || mv.visited[ng] {
				return ng, true
			}
			mv.visited[ng] = true
			green = ng
		}
	}
}

// step advances one base to the base of the outside endpoint of its
// labeledge — the same climb forestTree.Outside performs, kept
// self-contained here since MICALI-VAZIRANI does not wire the shared
// lca package.
func (mv *mvStage) step(base int) (int, bool) {
	m := mv.match[base]
	if m == nilVertex {
		return 0, false
	}
	return mv.uf.Find(mv.par[m]), true
}

// contractPetal absorbs both sides of a bridge into the bottleneck base
// (spec.md §4.5 contraction, petal variant), rewiring tree-parent
// pointers exactly as the forest engines' markPath does. Promoted T
// vertices are then drained through a local queue with the same
// three-way switch runStage's level BFS uses, so a promoted vertex
// explores exactly like a genuine frontier vertex: new S-S edges become
// bridges appended to mv.bridges (picked up by runStage's index-based
// Phase 2 loop later in this stage), and brand-new Unlabeled vertices
// are labeled and their matched partner continues the search, rather
// than the petal's discovery stopping dead at the bottleneck.
func (mv *mvStage) contractPetal(v, w, bottleneck int) {
	mv.markPath(v, bottleneck, w)
	mv.markPath(w, bottleneck, v)

	queue := mv.promoted[:0]
	for i := 0; i < mv.n; i++ {
		if mv.uf.Find(i) != bottleneck || mv.label[i] != labelT {
			continue
		}
		mv.label[i] = labelS
		queue = append(queue, i)
	}

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]

		for _, x := range mv.g.Neighbors(i) {
			switch mv.label[x] {
			case labelUnlabeled:
				mv.label[x] = labelT
				mv.level[x] = mv.level[i] + 1
				mv.par[x] = i
				m := mv.match[x]
				mv.label[m] = labelS
				mv.level[m] = mv.level[x] + 1
				mv.par[m] = x
				if !mv.used[m] {
					mv.used[m] = true
					queue = append(queue, m)
				}
			case labelS:
				if mv.uf.Find(x) != bottleneck {
					mv.bridges = append(mv.bridges, bridge{v: i, w: x, tenacity: mv.level[i] + mv.level[x] + 1})
				}
			case labelT:
			}
		}
	}

	mv.promoted = queue[:0]
}

func (mv *mvStage) markPath(v, anc, child int) {
	for mv.uf.Find(v) != anc {
		mv.uf.Union(mv.uf.Find(v), anc)
		mv.uf.MakeRep(anc)
		mv.uf.Union(mv.uf.Find(mv.match[v]), anc)
		mv.uf.MakeRep(anc)
		mv.par[v] = child
		child = mv.match[v]
		v = mv.par[mv.match[v]]
	}
}

func (mv *mvStage) augment(v, w int) {
	oldV, oldW := mv.match[v], mv.match[w]
	mv.match[v], mv.match[w] = w, v
	mv.flipChain(oldV)
	mv.flipChain(oldW)
}

func (mv *mvStage) flipChain(t int) {
	for t != nilVertex {
		s := mv.par[t]
		oldS := mv.match[s]
		mv.match[t] = s
		mv.match[s] = t
		t = oldS
	}
}

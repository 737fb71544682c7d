// Package lca implements the interleaved-climb ancestor search shared by
// every blossom-forming engine (spec.md §4.3): given two S-labeled tree
// nodes, either locate their common ancestor (a blossom about to form) or
// discover they live in different trees (an augmenting path).
//
// The climb itself knows nothing about vertices or blossoms — it is
// parameterized over a Tree interface so that BLOSSOM-FOREST,
// GABOW-SIMPLE and GABOW-SCALING can all drive it with their own notion
// of "base" and "labeledge" (MICALI-VAZIRANI uses its own DDFS climb
// instead). This
// mirrors how github.com/katalvlaran/lvlath's algorithms.BFS takes a
// *core.Graph plus hook options rather than hard-coding one traversal's
// bookkeeping.
package lca

// Tree supplies the two per-id lookups the interleaved climb needs. All
// ids are blossom-base ids (the caller maps raw vertices through its
// union-find before calling Find).
type Tree interface {
	// Outside returns the outside-vertex endpoint of id's labeledge — the
	// S-vertex, living outside id, whose edge attached id to the rest of
	// the tree (spec.md §3 invariant I5) — or -1 if id is a root.
	Outside(id int) int
	// Base maps a raw vertex to its current top-level blossom id via the
	// solver's union-find.
	Base(v int) int
}

// Interleaved runs one interleaved-climb call. Each call gets a fresh
// epoch so the tag arrays never need clearing between calls — the arrays
// are sized once to the number of possible blossom ids and reused for
// the lifetime of a solver instance (spec.md §4.3, §5).
type Interleaved struct {
	tree  Tree
	tag1  []int // tag1[b] == epoch iff b was visited climbing from side 1 this call
	tag2  []int // tag2[b] == epoch iff b was visited climbing from side 2 this call
	epoch int
}

// New allocates an Interleaved climber over blossom ids [0,maxID).
// maxID must be at least n + the maximum number of blossoms the solver
// will ever allocate in one stage.
func New(tree Tree, maxID int) *Interleaved {
	return &Interleaved{
		tree: tree,
		tag1: make([]int, maxID),
		tag2: make([]int, maxID),
	}
}

// Find performs one interleaved-climb call starting from S-vertices u
// and v (raw vertices; Find maps them to bases itself). It returns
// (lca, true) if the two climbs intersect at a common ancestor blossom —
// a blossom is about to form — or (-1, false) if both sides reach
// distinct exposed roots without intersecting — an augmenting path has
// been found.
//
// Complexity: O(depth(u)+depth(v)), no allocation.
func (c *Interleaved) Find(u, v int) (int, bool) {
	c.epoch++
	epoch := c.epoch

	a, b := c.tree.Base(u), c.tree.Base(v)
	if a == b {
		return a, true
	}
	c.tag1[a] = epoch
	c.tag2[b] = epoch

	aDone, bDone := false, false
	for {
		if !aDone {
			if c.tag2[a] == epoch {
				return a, true
			}
			na, ok := c.step(a)
			if !ok {
				aDone = true
			} else {
				a = na
				c.tag1[a] = epoch
			}
		}
		if !bDone {
			if c.tag1[b] == epoch {
				return b, true
			}
			nb, ok := c.step(b)
			if !ok {
				bDone = true
			} else {
				b = nb
				c.tag2[b] = epoch
			}
		}
		if aDone && bDone {
			return -1, false
		}
	}
}

// step advances one base climb: from id, cross its labeledge to the
// outside vertex and map that back to a base. Returns ok=false at an
// exposed root (climb exhausted on this side).
func (c *Interleaved) step(id int) (int, bool) {
	out := c.tree.Outside(id)
	if out == -1 {
		return 0, false
	}
	return c.tree.Base(out), true
}

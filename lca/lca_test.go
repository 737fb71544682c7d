package lca_test

import (
	"testing"

	"github.com/go-blossom/maxmatch/lca"
)

// fakeTree wires a tiny alternating forest by hand via labeledge
// outside-vertex pointers (spec.md §3 invariant I5): outside[id] is the
// S-vertex whose edge attached id to the tree, or -1 at a root.
type fakeTree struct {
	outside []int
}

func (f *fakeTree) Outside(id int) int { return f.outside[id] }
func (f *fakeTree) Base(v int) int     { return v }

func TestInterleaved_SameTreeFindsAncestor(t *testing.T) {
	// root 0 (exposed), two branches: 0 -> 1 -> 2 and 0 -> 3 -> 4, each
	// id's outside pointer leading back toward 0.
	tree := &fakeTree{outside: []int{-1, 0, 1, 0, 3}}
	c := lca.New(tree, 5)
	anc, ok := c.Find(2, 4)
	if !ok {
		t.Fatalf("expected an ancestor to be found")
	}
	if anc != 0 {
		t.Fatalf("LCA = %d; want 0", anc)
	}
}

func TestInterleaved_DifferentTreesReportsNoAncestor(t *testing.T) {
	// root 0 with branch 0 -> 1 -> 2, and a separate exposed root 3.
	tree := &fakeTree{outside: []int{-1, 0, 1, -1, -1}}
	c := lca.New(tree, 5)
	_, ok := c.Find(2, 3)
	if ok {
		t.Fatalf("expected no ancestor (different trees)")
	}
}

package matching

import (
	"testing"

	"github.com/go-blossom/maxmatch/mgraph"
)

func buildBipartite(l, r int, edges [][2]int) *graph.Bipartite {
	bg := graph.NewBipartite(l, r)
	for _, e := range edges {
		bg.AddEdge(e[0], e[1])
	}
	bg.Finalize()
	return bg
}

// TestHopcroftKarp_S4_CompleteBipartite covers spec.md §8 S4.
func TestHopcroftKarp_S4_CompleteBipartite(t *testing.T) {
	edges := [][2]int{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
		{3, 0}, {3, 1}, {3, 2},
	}
	bg := buildBipartite(4, 3, edges)

	m, _, err := SolveHopcroftKarp(bg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Size() != 3 {
		t.Fatalf("Size() = %d; want 3", m.Size())
	}
	if errs := ValidateBipartite(bg, m); len(errs) != 0 {
		t.Fatalf("ValidateBipartite() = %v; want no errors", errs)
	}
}

func TestHopcroftKarp_EmptyGraph(t *testing.T) {
	bg := buildBipartite(3, 3, nil)
	m, _, err := SolveHopcroftKarp(bg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Size() != 0 {
		t.Fatalf("Size() = %d; want 0", m.Size())
	}
}

func TestHopcroftKarp_NilGraph(t *testing.T) {
	if _, _, err := SolveHopcroftKarp(nil); err != ErrNilBipartite {
		t.Fatalf("err = %v; want ErrNilBipartite", err)
	}
}

func TestHopcroftKarp_GreedyMonotonicity(t *testing.T) {
	bg := buildBipartite(4, 3, [][2]int{
		{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 0}, {3, 2},
	})
	cold, _, _ := SolveHopcroftKarp(bg)
	warm, _, _ := SolveHopcroftKarp(bg, WithGreedy())
	if cold.Size() != warm.Size() {
		t.Fatalf("greedy warm-start changed matching size: cold=%d warm=%d", cold.Size(), warm.Size())
	}
}

// TestHopcroftKarp_AgreesWithGeneralEngines covers spec.md §8 P4: on a
// bipartite input, Hopcroft-Karp agrees with the general-graph engines.
func TestHopcroftKarp_AgreesWithGeneralEngines(t *testing.T) {
	bg := buildBipartite(4, 3, [][2]int{
		{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 0}, {3, 2},
	})
	hk, _, _ := SolveHopcroftKarp(bg)

	g := graph.New(7) // left 0-3, right 4-6 (offset by L)
	for _, e := range [][2]int{{0, 4}, {0, 5}, {1, 5}, {1, 6}, {2, 4}, {3, 6}} {
		g.AddEdge(e[0], e[1])
	}
	g.Finalize()

	for name, solve := range generalEngines {
		m, _, err := solve(g)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if m.Size() != hk.Size() {
			t.Fatalf("%s: Size() = %d; Hopcroft-Karp Size() = %d", name, m.Size(), hk.Size())
		}
	}
}

package matching

import "testing"

func TestValidate_CleanMatchingHasNoErrors(t *testing.T) {
	g := buildGraph(4, [][2]int{{0, 1}, {2, 3}})
	m := Matching{{0, 1}, {2, 3}}
	if errs := Validate(g, m); len(errs) != 0 {
		t.Fatalf("Validate() = %v; want no errors", errs)
	}
}

func TestValidate_EdgeNotInGraph(t *testing.T) {
	g := buildGraph(4, [][2]int{{0, 1}})
	m := Matching{{2, 3}}
	errs := Validate(g, m)
	if len(errs) != 1 || errs[0].Kind != "not-an-edge" {
		t.Fatalf("Validate() = %v; want one not-an-edge error", errs)
	}
}

func TestValidate_VertexReused(t *testing.T) {
	g := buildGraph(3, [][2]int{{0, 1}, {0, 2}})
	m := Matching{{0, 1}, {0, 2}}
	errs := Validate(g, m)
	if len(errs) == 0 {
		t.Fatalf("Validate() = %v; want vertex-reused errors", errs)
	}
	for _, e := range errs {
		if e.Kind != "vertex-reused" {
			t.Fatalf("unexpected error kind %q", e.Kind)
		}
	}
}

func TestValidateBipartite_CleanMatchingHasNoErrors(t *testing.T) {
	bg := buildBipartite(2, 2, [][2]int{{0, 0}, {1, 1}})
	m := BipartiteMatching{{0, 0}, {1, 1}}
	if errs := ValidateBipartite(bg, m); len(errs) != 0 {
		t.Fatalf("ValidateBipartite() = %v; want no errors", errs)
	}
}

func TestValidateBipartite_EdgeNotInGraph(t *testing.T) {
	bg := buildBipartite(2, 2, [][2]int{{0, 0}})
	m := BipartiteMatching{{1, 1}}
	errs := ValidateBipartite(bg, m)
	if len(errs) != 1 || errs[0].Kind != "not-an-edge" {
		t.Fatalf("ValidateBipartite() = %v; want one not-an-edge error", errs)
	}
}

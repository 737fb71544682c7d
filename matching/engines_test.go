package matching

import (
	"testing"

	"github.com/go-blossom/maxmatch/mgraph"
)

// generalEngines lists every general-graph Solve function under the same
// signature so scenario tests can run identically against all five
// (spec.md §8 P4 cross-engine agreement).
var generalEngines = map[string]func(*graph.Graph, ...EngineOption) (Matching, Stats, error){
	"BlossomSimple": func(g *graph.Graph, opts ...EngineOption) (Matching, Stats, error) {
		return SolveBlossomSimple(g)
	},
	"BlossomForest":   SolveBlossomForest,
	"GabowSimple":     SolveGabowSimple,
	"GabowScaling":    SolveGabowScaling,
	"MicaliVazirani":  SolveMicaliVazirani,
}

func buildGraph(n int, edges [][2]int) *graph.Graph {
	g := graph.New(n)
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	g.Finalize()
	return g
}

type scenario struct {
	name     string
	n        int
	edges    [][2]int
	wantSize int
}

// scenarios covers spec.md §8 S1, S2, S3, S5, S6 and boundaries B1-B3.
var scenarios = []scenario{
	{
		name:     "S1_triangle_plus_tail",
		n:        5,
		edges:    [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}},
		wantSize: 2,
	},
	{
		name:     "S2_odd_cycle_5",
		n:        5,
		edges:    [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}},
		wantSize: 2,
	},
	{
		name: "S3_petersen",
		n:    10,
		edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, // outer 5-cycle
			{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5}, // inner 5-cycle (pentagram order)
			{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9}, // spokes
		},
		wantSize: 5,
	},
	{
		name:     "S5_two_disjoint_triangles",
		n:        6,
		edges:    [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}},
		wantSize: 2,
	},
	{
		name:     "S6_nested_blossom_stress",
		n:        7,
		edges:    [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 2}, {5, 2}},
		wantSize: 3,
	},
	{
		// Classic "flower with a stem and a pendant tail": a stem edge
		// (0,1) feeds into triangle-blossom {1,2,3}, which itself feeds a
		// pendant path 3-4-5-6 to a distant exposed vertex. Reaching 6
		// requires a blossom contraction to promote the triangle's T
		// vertex to S and then keep exploring past it, rather than
		// stopping discovery at the blossom's boundary — this is the
		// shape that exercises a T→S promotion whose new S vertex has an
		// edge into still-Unlabeled territory, not just into another
		// already-S tree.
		name:     "S7_blossom_stem_pendant",
		n:        7,
		edges:    [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 1}, {3, 4}, {4, 5}, {5, 6}},
		wantSize: 3,
	},
	{
		name:     "B1_empty_graph",
		n:        4,
		edges:    nil,
		wantSize: 0,
	},
	{
		name:     "B2_isolated_vertex_and_single_edge",
		n:        3,
		edges:    [][2]int{{0, 1}},
		wantSize: 1,
	},
	{
		name:     "B3_self_loops_and_duplicates_removed",
		n:        3,
		edges:    [][2]int{{0, 0}, {0, 1}, {1, 0}, {0, 1}},
		wantSize: 1,
	},
}

func TestEngines_Scenarios(t *testing.T) {
	for _, sc := range scenarios {
		for engineName, solve := range generalEngines {
			t.Run(sc.name+"/"+engineName, func(t *testing.T) {
				g := buildGraph(sc.n, sc.edges)
				m, _, err := solve(g)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if m.Size() != sc.wantSize {
					t.Fatalf("Size() = %d; want %d (matching %v)", m.Size(), sc.wantSize, m)
				}
				if errs := Validate(g, m); len(errs) != 0 {
					t.Fatalf("Validate() = %v; want no errors", errs)
				}
			})
		}
	}
}

// TestEngines_CrossAgreement checks spec.md §8 P4: all five general-graph
// engines return matchings of the same size on identical input.
func TestEngines_CrossAgreement(t *testing.T) {
	for _, sc := range scenarios {
		g := buildGraph(sc.n, sc.edges)
		var sizes []int
		for _, solve := range generalEngines {
			m, _, err := solve(g)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", sc.name, err)
			}
			sizes = append(sizes, m.Size())
		}
		for i := 1; i < len(sizes); i++ {
			if sizes[i] != sizes[0] {
				t.Fatalf("%s: engines disagree on size: %v", sc.name, sizes)
			}
		}
	}
}

// TestEngines_SortedOutput checks spec.md §8 P2.
func TestEngines_SortedOutput(t *testing.T) {
	g := buildGraph(10, scenarios[2].edges)
	for name, solve := range generalEngines {
		m, _, _ := solve(g)
		for i, e := range m {
			if e[0] >= e[1] {
				t.Fatalf("%s: edge %v has u>=v", name, e)
			}
			if i > 0 {
				prev := m[i-1]
				if prev[0] > e[0] || (prev[0] == e[0] && prev[1] >= e[1]) {
					t.Fatalf("%s: matching not sorted ascending at index %d: %v", name, i, m)
				}
			}
		}
	}
}

// TestEngines_Idempotent checks spec.md §8 R1: repeated runs on the same
// input are deterministic.
func TestEngines_Idempotent(t *testing.T) {
	g := buildGraph(scenarios[4].n, scenarios[4].edges)
	for name, solve := range generalEngines {
		m1, _, _ := solve(g)
		m2, _, _ := solve(g)
		if len(m1) != len(m2) {
			t.Fatalf("%s: non-deterministic size across runs", name)
		}
		for i := range m1 {
			if m1[i] != m2[i] {
				t.Fatalf("%s: non-deterministic matching across runs: %v vs %v", name, m1, m2)
			}
		}
	}
}

// TestEngines_GreedyMonotonicity checks spec.md §8 P5: warm-start never
// changes the final matching size.
func TestEngines_GreedyMonotonicity(t *testing.T) {
	engines := map[string]func(*graph.Graph, ...EngineOption) (Matching, Stats, error){
		"BlossomForest":  SolveBlossomForest,
		"GabowSimple":    SolveGabowSimple,
		"GabowScaling":   SolveGabowScaling,
		"MicaliVazirani": SolveMicaliVazirani,
	}
	for _, sc := range scenarios {
		g := buildGraph(sc.n, sc.edges)
		for name, solve := range engines {
			cold, _, _ := solve(g)
			naive, _, _ := solve(g, WithGreedy())
			minDeg, _, _ := solve(g, WithGreedyMinDegree())
			if cold.Size() != naive.Size() || cold.Size() != minDeg.Size() {
				t.Fatalf("%s/%s: greedy warm-start changed matching size: cold=%d naive=%d minDeg=%d",
					name, sc.name, cold.Size(), naive.Size(), minDeg.Size())
			}
		}
	}
}

func TestSolve_NilGraph(t *testing.T) {
	for name, solve := range generalEngines {
		if _, _, err := solve(nil); err != ErrNilGraph {
			t.Fatalf("%s: err = %v; want ErrNilGraph", name, err)
		}
	}
}

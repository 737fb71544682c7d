// File: validate.go
// Role: the result-validation collaborator from spec.md §1/§6 — checks M
// is a subset of E and each vertex appears at most once. Per spec.md §7,
// internal inconsistencies are reported, never fatal: Validate returns a
// list of ValidationError, not an error, matching the teacher's "the
// validator reports ERROR lines but does not abort" design.
package matching

import (
	"fmt"

	"github.com/go-blossom/maxmatch/mgraph"
)

// ValidationError describes one violation of spec.md §8 P1.
type ValidationError struct {
	Kind string // "not-an-edge" or "vertex-reused"
	U, V int    // the offending edge, or (vertex, -1) for reuse
}

func (e ValidationError) Error() string {
	if e.Kind == "vertex-reused" {
		return fmt.Sprintf("matching: vertex %d appears in more than one matched edge", e.U)
	}
	return fmt.Sprintf("matching: edge (%d,%d) is not in the input edge set", e.U, e.V)
}

// Validate checks a Matching against its source graph for spec.md §8 P1:
// every edge belongs to the graph, and every vertex appears in at most
// one edge. An edge with u>=v is reported as "not-an-edge"; the order
// of edges relative to each other is not checked.
// Complexity: O(|M| log deg) for membership checks, O(V) for reuse
// checks.
func Validate(g *graph.Graph, m Matching) []ValidationError {
	var errs []ValidationError

	seen := make(map[int]bool, 2*len(m))
	for _, e := range m {
		u, v := e[0], e[1]
		if u >= v {
			errs = append(errs, ValidationError{Kind: "not-an-edge", U: u, V: v})
			continue
		}
		if !g.HasEdge(u, v) {
			errs = append(errs, ValidationError{Kind: "not-an-edge", U: u, V: v})
		}
		if seen[u] {
			errs = append(errs, ValidationError{Kind: "vertex-reused", U: u, V: -1})
		}
		if seen[v] {
			errs = append(errs, ValidationError{Kind: "vertex-reused", U: v, V: -1})
		}
		seen[u], seen[v] = true, true
	}

	return errs
}

// ValidateBipartite is the Hopcroft-Karp counterpart of Validate, over a
// BipartiteMatching and its source *graph.Bipartite.
func ValidateBipartite(bg *graph.Bipartite, m BipartiteMatching) []ValidationError {
	var errs []ValidationError

	seenL := make(map[int]bool, len(m))
	seenR := make(map[int]bool, len(m))
	for _, e := range m {
		u, v := e[0], e[1]
		if !bg.HasEdge(u, v) {
			errs = append(errs, ValidationError{Kind: "not-an-edge", U: u, V: v})
		}
		if seenL[u] {
			errs = append(errs, ValidationError{Kind: "vertex-reused", U: u, V: -1})
		}
		if seenR[v] {
			errs = append(errs, ValidationError{Kind: "vertex-reused", U: v, V: -1})
		}
		seenL[u], seenR[v] = true, true
	}

	return errs
}

// File: greedy.go
// Role: the optional greedy warm-start collaborator from spec.md §1/§6.
// Produces an initial mate[] that augmenting-path search then improves to
// a maximum matching; used only to shorten the search (spec.md §8 P5:
// final |M| is identical with or without warm-start, only time differs).
package matching

import (
	"sort"

	"github.com/go-blossom/maxmatch/mgraph"
)

// WarmStart selects which greedy pre-pass, if any, seeds an engine's
// initial mate[] before augmenting-path search begins.
type WarmStart int

const (
	// NoWarmStart runs augmenting-path search from an all-exposed start.
	NoWarmStart WarmStart = iota
	// GreedyNaive matches each unmatched vertex, in id order, to its
	// first unmatched neighbor in adjacency (sort) order (spec.md §6
	// --greedy).
	GreedyNaive
	// GreedyMinDegree matches vertices in ascending degree order (ties
	// broken by id) to their lowest-degree unmatched neighbor (spec.md
	// §6 --greedy-md).
	GreedyMinDegree
)

// engineConfig is the private, immutable-once-resolved configuration
// every general-graph engine's functional options write into, mirroring
// github.com/katalvlaran/lvlath/builder's builderConfig pattern: options
// are resolved once at Solve entry, never mutated afterward.
type engineConfig struct {
	warmStart WarmStart
}

// EngineOption configures a general-graph engine before it runs.
type EngineOption func(*engineConfig)

// WithGreedy selects the naive greedy warm-start (spec.md §6 --greedy).
func WithGreedy() EngineOption {
	return func(c *engineConfig) { c.warmStart = GreedyNaive }
}

// WithGreedyMinDegree selects the minimum-degree greedy warm-start
// (spec.md §6 --greedy-md).
func WithGreedyMinDegree() EngineOption {
	return func(c *engineConfig) { c.warmStart = GreedyMinDegree }
}

func resolveConfig(opts []EngineOption) engineConfig {
	var c engineConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// greedySeed returns an initial mate[] array (nilVertex where exposed)
// per the selected WarmStart mode. NoWarmStart returns an all-exposed
// array.
func greedySeed(g *graph.Graph, mode WarmStart) []int {
	n := g.N()
	mate := make([]int, n)
	for i := range mate {
		mate[i] = nilVertex
	}

	switch mode {
	case GreedyNaive:
		for v := 0; v < n; v++ {
			if mate[v] != nilVertex {
				continue
			}
			for _, w := range g.Neighbors(v) {
				if mate[w] == nilVertex {
					mate[v], mate[w] = w, v
					break
				}
			}
		}
	case GreedyMinDegree:
		order := make([]int, n)
		for v := range order {
			order[v] = v
		}
		// Ascending degree, ties broken by id: SliceStable over an
		// id-ordered slice achieves both at once (spec.md §6 --greedy-md).
		sort.SliceStable(order, func(i, j int) bool {
			return g.Degree(order[i]) < g.Degree(order[j])
		})
		for _, v := range order {
			if mate[v] != nilVertex {
				continue
			}
			best, bestDeg := nilVertex, 0
			for _, w := range g.Neighbors(v) {
				if mate[w] != nilVertex {
					continue
				}
				if best == nilVertex || g.Degree(w) < bestDeg {
					best, bestDeg = w, g.Degree(w)
				}
			}
			if best != nilVertex {
				mate[v], mate[best] = best, v
			}
		}
	}

	return mate
}

// greedySeedBipartite is the Hopcroft-Karp counterpart of greedySeed: it
// returns (matchL, matchR), nilVertex where a side is exposed, seeding
// only left-to-right naive greedy since min-degree ordering buys
// Hopcroft-Karp's O(sqrt(V)) phase count little over the naive pass.
func greedySeedBipartite(bg *graph.Bipartite, mode WarmStart) ([]int, []int) {
	l, r := bg.L(), bg.R()
	matchL := make([]int, l)
	matchR := make([]int, r)
	for i := range matchL {
		matchL[i] = nilVertex
	}
	for i := range matchR {
		matchR[i] = nilVertex
	}

	if mode == NoWarmStart {
		return matchL, matchR
	}

	for u := 0; u < l; u++ {
		for _, v := range bg.Neighbors(u) {
			if matchR[v] == nilVertex {
				matchL[u], matchR[v] = v, u
				break
			}
		}
	}

	return matchL, matchR
}

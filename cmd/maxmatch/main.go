// Command maxmatch reads a graph from a file and reports a
// maximum-cardinality matching computed by one of the library's engines
// (spec.md §6 external interface).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/go-blossom/maxmatch/mgraph"
	"github.com/go-blossom/maxmatch/matching"
)

var log = logrus.New()

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("maxmatch", pflag.ContinueOnError)
	engine := flags.String("engine", "blossom-forest",
		"matching engine: blossom-simple, blossom-forest, gabow-simple, gabow-scaling, micali-vazirani, hopcroft-karp")
	greedy := flags.Bool("greedy", false, "naive greedy warm-start")
	greedyMD := flags.Bool("greedy-md", false, "minimum-degree greedy warm-start")
	verbose := flags.Bool("verbose", false, "log the start of the run and the engine's final Stats")
	if err := flags.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: maxmatch [flags] <input-file>")
		return 1
	}
	path := flags.Arg(0)

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open file: %s\n", path)
		return 1
	}
	defer f.Close()

	var opts []matching.EngineOption
	switch {
	case *greedy:
		opts = append(opts, matching.WithGreedy())
	case *greedyMD:
		opts = append(opts, matching.WithGreedyMinDegree())
	}

	log.WithFields(logrus.Fields{"engine": *engine, "file": path}).Debug("starting")
	start := time.Now()

	var size int
	var valid, bipartite bool

	if *engine == "hopcroft-karp" {
		bg, err := graph.ReadBipartite(f)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Bad header")
			return 1
		}
		m, stats, _ := matching.SolveHopcroftKarp(bg, opts...)
		logStats(*engine, stats)
		size = m.Size()
		bipartite = true
		valid = len(matching.ValidateBipartite(bg, m)) == 0
	} else {
		g, err := graph.ReadGeneral(f)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Bad header")
			return 1
		}
		solve, ok := generalSolvers[*engine]
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown engine: %s\n", *engine)
			return 1
		}
		m, stats, _ := solve(g, opts...)
		logStats(*engine, stats)
		size = m.Size()
		valid = len(matching.Validate(g, m)) == 0
	}

	elapsed := time.Since(start)

	fmt.Printf("Matching size: %d\n", size)
	if bipartite {
		fmt.Printf("Matched vertices: %d left, %d right\n", size, size)
	} else {
		fmt.Printf("Matched vertices: %d\n", 2*size)
	}
	if valid {
		fmt.Println("VALIDATION PASSED")
	} else {
		fmt.Println("VALIDATION FAILED")
	}
	fmt.Printf("Time: %d ms\n", elapsed.Milliseconds())

	return 0
}

// generalSolvers maps the --engine flag's general-graph values to the
// matching package's Solve functions; blossom-simple takes no
// EngineOption, so it is wrapped to match the others' signature.
var generalSolvers = map[string]func(*graph.Graph, ...matching.EngineOption) (matching.Matching, matching.Stats, error){
	"blossom-simple": func(g *graph.Graph, _ ...matching.EngineOption) (matching.Matching, matching.Stats, error) {
		return matching.SolveBlossomSimple(g)
	},
	"blossom-forest":  matching.SolveBlossomForest,
	"gabow-simple":    matching.SolveGabowSimple,
	"gabow-scaling":   matching.SolveGabowScaling,
	"micali-vazirani": matching.SolveMicaliVazirani,
}

func logStats(engine string, stats matching.Stats) {
	log.WithFields(logrus.Fields{
		"engine":                 engine,
		"stages":                 stats.Stages,
		"augmenting_paths_found": stats.AugmentingPaths,
		"blossoms_formed":        stats.BlossomsFormed,
	}).Debug("finished")
}

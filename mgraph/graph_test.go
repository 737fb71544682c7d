package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-blossom/maxmatch/mgraph"
)

func TestGraph_SelfLoopsAndDuplicatesDropped(t *testing.T) {
	g := graph.New(3)
	g.AddEdge(0, 0) // self-loop, dropped
	g.AddEdge(0, 1)
	g.AddEdge(1, 0) // duplicate, collapsed
	g.AddEdge(5, 1) // out of range, dropped
	g.Finalize()

	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 1, g.Degree(1))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_EdgesSortedAscending(t *testing.T) {
	g := graph.New(4)
	g.AddEdge(2, 1)
	g.AddEdge(0, 3)
	g.AddEdge(0, 1)
	g.Finalize()

	want := [][2]int{{0, 1}, {0, 3}, {1, 2}}
	assert.Equal(t, want, g.Edges())
}

func TestReadGeneral_BadHeader(t *testing.T) {
	_, err := graph.ReadGeneral(strings.NewReader("not a header"))
	assert.Error(t, err)
}

func TestReadGeneral_Parses(t *testing.T) {
	g, err := graph.ReadGeneral(strings.NewReader("3 2\n0 1\n1 2\n"))
	assert.NoError(t, err)
	assert.Equal(t, 3, g.N())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestReadBipartite_Parses(t *testing.T) {
	bg, err := graph.ReadBipartite(strings.NewReader("2 2 2\n0 0\n1 1\n"))
	assert.NoError(t, err)
	assert.Equal(t, 2, bg.L())
	assert.Equal(t, 2, bg.R())
	assert.Equal(t, 2, bg.EdgeCount())
	assert.True(t, bg.HasEdge(0, 0))
	assert.False(t, bg.HasEdge(0, 1))
}

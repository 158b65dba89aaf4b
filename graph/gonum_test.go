// ABOUTME: Tests for the gonum directed-graph adapter
// ABOUTME: Verifies index assignment by node id and analysis interop

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
)

func TestFromDirected(t *testing.T) {
	dg := simple.NewDirectedGraph()
	// Sparse, unsorted ids; the lowest id becomes the entry.
	for _, id := range []int64{40, 10, 30, 20} {
		dg.AddNode(simple.Node(id))
	}
	dg.SetEdge(dg.NewEdge(simple.Node(10), simple.Node(20)))
	dg.SetEdge(dg.NewEdge(simple.Node(10), simple.Node(30)))
	dg.SetEdge(dg.NewEdge(simple.Node(20), simple.Node(40)))
	dg.SetEdge(dg.NewEdge(simple.Node(30), simple.Node(40)))

	adj, ids := FromDirected(dg)
	require.Equal(t, []int64{10, 20, 30, 40}, ids)
	want := Adjacency{{1, 2}, {3}, {3}, nil}
	assert.Equal(t, want, adj)
}

func TestFromDirectedFeedsAnalyses(t *testing.T) {
	dg := simple.NewDirectedGraph()
	for id := int64(0); id < 4; id++ {
		dg.AddNode(simple.Node(id))
	}
	dg.SetEdge(dg.NewEdge(simple.Node(0), simple.Node(1)))
	dg.SetEdge(dg.NewEdge(simple.Node(0), simple.Node(2)))
	dg.SetEdge(dg.NewEdge(simple.Node(1), simple.Node(3)))
	dg.SetEdge(dg.NewEdge(simple.Node(2), simple.Node(3)))

	adj, _ := FromDirected(dg)
	dt, err := FromAdjacency(adj)
	require.NoError(t, err)
	dt.Compute(0)
	assert.Equal(t, []int{-1, 0, 0, 0}, dt.ImmediateDominators())

	rdf, err := ReverseDominanceFrontier(adj)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{}, {}, {}, {1, 2}}, rdf)
}

func TestFromDirectedEmpty(t *testing.T) {
	dg := simple.NewDirectedGraph()
	adj, ids := FromDirected(dg)
	assert.Empty(t, adj)
	assert.Empty(t, ids)
}

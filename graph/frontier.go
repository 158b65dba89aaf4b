// ABOUTME: Reverse dominance frontier computed from bitset dominator sets
// ABOUTME: Materializes RDF(y) = U Dom(p) \ (Dom(y) \ {y}) with branch-free set ops

package graph

import "github.com/stargazerZJ/domgraph/bitset"

// ReverseDominanceFrontier returns, for every node x, the nodes y with
// x in the dominance frontier of y; each list is ascending. Nodes
// unreached from the entry have empty dominator sets and therefore
// contribute nothing.
func ReverseDominanceFrontier(g Adjacency) ([][]int, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	n := len(g)
	rdf := make([][]int, n)
	if n == 0 {
		return rdf, nil
	}
	pred := g.Reverse()

	t := NewDominatorTree(n)
	for i, succs := range g {
		for _, j := range succs {
			t.AddEdge(i, j)
		}
	}
	t.Compute(0)
	idom := t.ImmediateDominators()

	// Dominator sets in DFS order: Dom(idom(v)) is complete before any
	// v that needs it.
	dom := make([]*bitset.Bitset, n)
	for i := range dom {
		dom[i] = bitset.New(n)
	}
	for _, v := range t.DFSOrder() {
		if idom[v] >= 0 {
			dom[v].Or(dom[idom[v]])
		}
		dom[v].Set(v)
	}

	// fro collects every y that dominates a predecessor of x; striking
	// the strict dominators of x leaves exactly the y with x in DF(y).
	for x := 0; x < n; x++ {
		fro := bitset.New(n)
		for _, p := range pred[x] {
			fro.Or(dom[p])
		}
		strict := dom[x].Clone()
		strict.SetTo(x, false)
		strict.Flip()
		fro.And(strict)
		rdf[x] = fro.Ones()
	}
	return rdf, nil
}

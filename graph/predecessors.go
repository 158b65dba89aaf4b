// ABOUTME: Indirect predecessor sets via Kosaraju SCCs and condensation
// ABOUTME: Propagates per-component predecessor bitsets in topological order

package graph

import (
	"sort"

	"github.com/stargazerZJ/domgraph/bitset"
)

// StronglyConnectedComponents labels every node of the graph described
// by rev with a component id using Kosaraju's two-pass algorithm. Ids
// come out in a topological order of the condensation: a component's
// predecessors always carry smaller ids. Returns the labels and the
// component count.
func StronglyConnectedComponents(rev ReverseAdjacency) ([]int, int, error) {
	if err := rev.Validate(); err != nil {
		return nil, 0, err
	}
	scc, count := kosaraju(rev.Forward(), rev)
	return scc, count, nil
}

// kosaraju runs the post-order pass over fwd and the assignment pass
// over rev. Assigning along reversed edges in decreasing finish time
// discovers source components first, which is what makes the ids a
// topological order.
func kosaraju(fwd Adjacency, rev ReverseAdjacency) ([]int, int) {
	n := len(fwd)
	visited := make([]bool, n)
	finish := make([]int, 0, n)
	var post func(v int)
	post = func(v int) {
		visited[v] = true
		for _, u := range fwd[v] {
			if !visited[u] {
				post(u)
			}
		}
		finish = append(finish, v)
	}
	for v := 0; v < n; v++ {
		if !visited[v] {
			post(v)
		}
	}

	scc := make([]int, n)
	for i := range scc {
		scc[i] = -1
	}
	count := 0
	var assign func(v, c int)
	assign = func(v, c int) {
		scc[v] = c
		for _, u := range rev[v] {
			if scc[u] == -1 {
				assign(u, c)
			}
		}
	}
	for i := n - 1; i >= 0; i-- {
		if v := finish[i]; scc[v] == -1 {
			assign(v, count)
			count++
		}
	}
	return scc, count
}

// IndirectPredecessors returns, for every node v of the graph described
// by rev, the nodes that reach v over a walk of at least two edges. A
// node on a cycle reaches itself and appears in its own set. Nodes of
// one strongly connected component share a single list; entries follow
// ascending component id, then input order within a component.
func IndirectPredecessors(rev ReverseAdjacency) ([][]int, error) {
	if err := rev.Validate(); err != nil {
		return nil, err
	}
	n := len(rev)
	result := make([][]int, n)
	if n == 0 {
		return result, nil
	}
	scc, count := kosaraju(rev.Forward(), rev)

	// Condensation over the reversed edges, sorted and deduplicated.
	// sccNodes keeps input order within each component.
	condRev := make([][]int, count)
	sccNodes := make([][]int, count)
	for v := 0; v < n; v++ {
		sccNodes[scc[v]] = append(sccNodes[scc[v]], v)
		for _, u := range rev[v] {
			if scc[u] != scc[v] {
				condRev[scc[v]] = append(condRev[scc[v]], scc[u])
			}
		}
	}
	for c := range condRev {
		sort.Ints(condRev[c])
		condRev[c] = uniq(condRev[c])
	}

	// Predecessor components have smaller ids, so one ascending pass
	// completes every set before it is needed.
	predSet := make([]*bitset.Bitset, count)
	for c := 0; c < count; c++ {
		predSet[c] = bitset.New(count)
		predSet[c].Set(c)
		for _, d := range condRev[c] {
			predSet[c].Or(predSet[d])
		}
	}

	// A component is cyclic if it has more than one node or a
	// self-loop; only then do its own nodes reach each other over
	// walks of length >= 2.
	cyclic := make([]bool, count)
	for c := 0; c < count; c++ {
		cyclic[c] = len(sccNodes[c]) > 1 || hasSelfLoop(rev, sccNodes[c][0])
		if !cyclic[c] {
			predSet[c].SetTo(c, false)
		}
	}

	for c := 0; c < count; c++ {
		// Cyclic components reach themselves, so any ancestor closes a
		// walk of length >= 2 through the cycle. An acyclic singleton
		// only has length-1 edges of its own; a qualifying walk must
		// route an edge through some predecessor component, so the
		// reachable set is the union over those.
		reach := predSet[c]
		if !cyclic[c] {
			reach = bitset.New(count)
			for _, d := range condRev[c] {
				reach.Or(predSet[d])
			}
		}
		var list []int
		for _, d := range reach.Ones() {
			list = append(list, sccNodes[d]...)
		}
		for _, v := range sccNodes[c] {
			result[v] = list
		}
	}
	return result, nil
}

// IndirectPredecessorsOfDominanceFrontier composes the two analyses:
// the reverse dominance frontier of g, fed back in as a reversed
// adjacency list.
func IndirectPredecessorsOfDominanceFrontier(g Adjacency) ([][]int, error) {
	rdf, err := ReverseDominanceFrontier(g)
	if err != nil {
		return nil, err
	}
	return IndirectPredecessors(ReverseAdjacency(rdf))
}

func hasSelfLoop(rev ReverseAdjacency, v int) bool {
	for _, u := range rev[v] {
		if u == v {
			return true
		}
	}
	return false
}

// uniq compacts a sorted slice in place.
func uniq(xs []int) []int {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}

// ABOUTME: Adapter from gonum directed graphs to adjacency lists
// ABOUTME: Orders nodes by id so gonum-built CFGs can feed the analyses

package graph

import (
	"sort"

	gonumgraph "gonum.org/v1/gonum/graph"
)

// FromDirected flattens a gonum directed graph into an Adjacency plus
// the id table mapping each index back to its gonum node id. Indices
// follow ascending node id, so the entry is the lowest-id node.
// Successor lists come out sorted by index.
func FromDirected(dg gonumgraph.Directed) (Adjacency, []int64) {
	var ids []int64
	nodes := dg.Nodes()
	for nodes.Next() {
		ids = append(ids, nodes.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	adj := make(Adjacency, len(ids))
	for i, id := range ids {
		succs := dg.From(id)
		for succs.Next() {
			adj[i] = append(adj[i], index[succs.Node().ID()])
		}
		sort.Ints(adj[i])
	}
	return adj, ids
}

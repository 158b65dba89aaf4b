// ABOUTME: Edge reversal between forward and reverse adjacency lists
// ABOUTME: Maps each node to its referrers and back

package graph

// Reverse flips every edge, mapping each node to its predecessors.
func (g Adjacency) Reverse() ReverseAdjacency {
	rev := make(ReverseAdjacency, len(g))
	for i, succs := range g {
		for _, j := range succs {
			rev[j] = append(rev[j], i)
		}
	}
	return rev
}

// Forward flips every edge back, mapping each node to its successors.
func (r ReverseAdjacency) Forward() Adjacency {
	fwd := make(Adjacency, len(r))
	for i, preds := range r {
		for _, j := range preds {
			fwd[j] = append(fwd[j], i)
		}
	}
	return fwd
}

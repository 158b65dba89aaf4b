// ABOUTME: Utility functions for working with dominator trees
// ABOUTME: Children lists, preorder walks, depths and dominance queries

package graph

// BuildDominatorTree turns an immediate-dominator slice into children
// lists: tree[d] holds the nodes immediately dominated by d. Entries
// of -1 (entry, unreached nodes) produce no edge.
func BuildDominatorTree(idom []int) [][]int {
	tree := make([][]int, len(idom))
	for v, d := range idom {
		if d >= 0 {
			tree[d] = append(tree[d], v)
		}
	}
	return tree
}

// DominatorTreeDFSOrder computes the dominator tree of g and returns
// its nodes in preorder from the entry. Unreached nodes do not appear.
func DominatorTreeDFSOrder(g Adjacency) ([]int, error) {
	t, err := FromAdjacency(g)
	if err != nil {
		return nil, err
	}
	if len(g) == 0 {
		return nil, nil
	}
	t.Compute(0)
	tree := BuildDominatorTree(t.ImmediateDominators())
	order := make([]int, 0, len(g))
	var walk func(v int)
	walk = func(v int) {
		order = append(order, v)
		for _, child := range tree[v] {
			walk(child)
		}
	}
	walk(0)
	return order, nil
}

// DominatorDepths returns each node's depth in the dominator tree
// rooted at node 0. The entry has depth 0; unreached nodes get -1.
func DominatorDepths(idom []int) []int {
	depth := make([]int, len(idom))
	for i := range depth {
		depth[i] = -1
	}
	if len(idom) == 0 {
		return depth
	}
	tree := BuildDominatorTree(idom)
	var walk func(v, d int)
	walk = func(v, d int) {
		depth[v] = d
		for _, child := range tree[v] {
			walk(child, d+1)
		}
	}
	walk(0, 0)
	return depth
}

// DominatorPath returns the chain from node up to the entry through
// immediate dominators, starting with the node itself.
func DominatorPath(idom []int, node int) []int {
	var path []int
	for v := node; v >= 0; v = idom[v] {
		path = append(path, v)
	}
	return path
}

// Dominates reports whether a dominates b. Every node dominates
// itself.
func Dominates(idom []int, a, b int) bool {
	for v := b; v >= 0; v = idom[v] {
		if v == a {
			return true
		}
	}
	return false
}

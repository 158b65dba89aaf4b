// ABOUTME: BFS algorithm for enumerating entry-to-node paths
// ABOUTME: Walks reverse edges from the target back to the entry with cycle detection

package graph

// PathsFromEntry finds up to maxPaths simple paths from the entry to
// target, searching backward over reverse edges in BFS order. Each
// path is listed from the entry to the target. Shorter paths are
// found first.
func PathsFromEntry(g Adjacency, target, maxPaths int) ([][]int, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if maxPaths <= 0 || target < 0 || target >= len(g) {
		return nil, nil
	}
	if target == 0 {
		return [][]int{{0}}, nil
	}
	rev := g.Reverse()

	type searchNode struct {
		id   int
		path []int // target-first, reversed on emit
	}

	var result [][]int
	queue := []searchNode{{id: target, path: []int{target}}}

	for len(queue) > 0 && len(result) < maxPaths {
		node := queue[0]
		queue = queue[1:]

		for _, p := range rev[node.id] {
			// Keep paths simple: skip predecessors already on this path.
			inPath := false
			for _, id := range node.path {
				if id == p {
					inPath = true
					break
				}
			}
			if inPath {
				continue
			}

			newPath := make([]int, len(node.path)+1)
			copy(newPath, node.path)
			newPath[len(node.path)] = p

			if p == 0 {
				path := make([]int, len(newPath))
				for i, id := range newPath {
					path[len(newPath)-1-i] = id
				}
				result = append(result, path)
				if len(result) >= maxPaths {
					break
				}
			} else {
				queue = append(queue, searchNode{id: p, path: newPath})
			}
		}
	}
	return result, nil
}

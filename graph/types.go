// ABOUTME: Adjacency-list graph types and input validation
// ABOUTME: Distinguishes forward and reverse adjacency at the type level

package graph

import (
	"errors"
	"fmt"
)

// ErrInvalidGraph is returned when an adjacency list references a node
// outside [0, n).
var ErrInvalidGraph = errors.New("invalid graph")

// Adjacency is a forward adjacency list: Adjacency[i] holds the
// successors of node i. Node 0 is the entry. Duplicate edges and
// self-loops are allowed.
type Adjacency [][]int

// ReverseAdjacency is a reversed adjacency list: ReverseAdjacency[i]
// holds the predecessors of node i.
type ReverseAdjacency [][]int

// Validate checks every edge target against the node range.
func (g Adjacency) Validate() error { return validate(g) }

// Validate checks every edge target against the node range.
func (r ReverseAdjacency) Validate() error { return validate(r) }

func validate(adj [][]int) error {
	n := len(adj)
	for i, edges := range adj {
		for _, j := range edges {
			if j < 0 || j >= n {
				return fmt.Errorf("%w: edge %d -> %d outside [0, %d)", ErrInvalidGraph, i, j, n)
			}
		}
	}
	return nil
}

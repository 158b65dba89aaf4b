// ABOUTME: Main domgraph package providing version information and package documentation
// ABOUTME: This is the root package for the dominance analysis library

// Package domgraph provides dominance-based analyses for 0-indexed
// directed graphs with a designated entry node (index 0): immediate
// dominators via Lengauer-Tarjan, reverse dominance frontiers, and
// indirect predecessor sets, all built on a packed bit vector.
//
// The analyses live in the graph subpackage; the bit vector lives in
// the bitset subpackage.
package domgraph

// Version is the semantic version of the domgraph library
const Version = "0.1.0-dev"

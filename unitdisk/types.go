// Package unitdisk - core types, options, and sentinel errors.
package unitdisk

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for unit-disk graph construction and queries.
var (
	// ErrNonPositiveRadius indicates the disk radius is zero, negative, NaN or Inf.
	ErrNonPositiveRadius = errors.New("unitdisk: radius must be positive and finite")
	// ErrNonFinitePoint indicates an input coordinate is NaN or Inf.
	ErrNonFinitePoint = errors.New("unitdisk: point coordinates must be finite")
	// ErrUnknownStrategy indicates Options.Strategy is not a declared constant.
	ErrUnknownStrategy = errors.New("unitdisk: unknown build strategy")
	// ErrVertexRange indicates a vertex index outside {0..n-1}.
	// This is a programming-contract violation, not a runtime condition.
	ErrVertexRange = errors.New("unitdisk: vertex index out of range")
	// ErrConfigLength indicates an occupation vector whose length differs from Order.
	ErrConfigLength = errors.New("unitdisk: occupation vector length mismatch")
)

// BuildStrategy selects how New discovers edges.
type BuildStrategy int

const (
	// StrategyAuto picks BruteForce below Options.IndexThreshold vertices,
	// RTree at or above it.
	StrategyAuto BuildStrategy = iota
	// StrategyBruteForce scans all vertex pairs: O(n²) distance checks.
	StrategyBruteForce
	// StrategyRTree answers radius queries through an R-tree
	// (github.com/dhconnelly/rtreego): O(n·(log n + k)) expected.
	StrategyRTree
)

// DefaultRadius is the unit-disk radius used when Options are defaulted.
const DefaultRadius = 1.0

// DefaultIndexThreshold is the vertex count at which StrategyAuto switches
// from the pairwise scan to the R-tree pass.
const DefaultIndexThreshold = 256

// Options configures graph construction.
//
//	Radius         – adjacency threshold; edge iff distance(i,j) ≤ Radius.
//	                 Must be positive and finite. Default 1.0 (the unit disk).
//	Strategy       – StrategyAuto, StrategyBruteForce or StrategyRTree.
//	IndexThreshold – StrategyAuto cut-over point (vertex count). Values < 2
//	                 fall back to DefaultIndexThreshold.
type Options struct {
	Radius         float64
	Strategy       BuildStrategy
	IndexThreshold int
}

// DefaultOptions returns Options with the unit-disk defaults:
// Radius=1.0, Strategy=StrategyAuto, IndexThreshold=256.
func DefaultOptions() Options {
	return Options{
		Radius:         DefaultRadius,
		Strategy:       StrategyAuto,
		IndexThreshold: DefaultIndexThreshold,
	}
}

// Graph is the immutable unit-disk adjacency relation over vertex indices
// {0..n-1}. Vertex i corresponds to the i-th input point; the numbering
// never changes after construction. Safe for concurrent readers.
type Graph struct {
	points    []orb.Point // defensive copy of the input, index = vertex id
	radius    float64     // adjacency threshold
	adj       []bool      // linearized n×n symmetric relation, adj[i*n+j]
	neighbors [][]int     // sorted neighbor lists, neighbors[i]
	edgeCount int         // number of undirected edges
}

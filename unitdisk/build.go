// Package unitdisk - graph construction (pairwise scan and strategy dispatch).
//
// New validates inputs, copies the point sequence, and fills the symmetric
// adjacency relation with one of two edge-discovery passes:
//
//   - bruteForcePass: the canonical O(n²) double loop over vertex pairs.
//   - rtreePass:      R-tree radius queries (see rtree.go).
//
// Both passes write the same relation; the choice is purely a performance
// policy (Options.Strategy / Options.IndexThreshold).
package unitdisk

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// New constructs an immutable unit-disk Graph from an ordered point sequence.
// The slice order becomes the permanent vertex numbering.
//
// Contracts:
//   - opts.Radius must be positive and finite (ErrNonPositiveRadius).
//   - Every coordinate must be finite (ErrNonFinitePoint).
//   - n == 0 and n == 1 are valid and yield an empty relation.
//
// Complexity: O(n²) for StrategyBruteForce, O(n·(log n + k)) expected for
// StrategyRTree; Memory: O(n²) for the dense relation plus O(Σdeg) lists.
func New(points []orb.Point, opts Options) (*Graph, error) {
	// Stage 1: validate options and inputs.
	if opts.Radius <= 0 || math.IsNaN(opts.Radius) || math.IsInf(opts.Radius, 0) {
		return nil, ErrNonPositiveRadius
	}
	switch opts.Strategy {
	case StrategyAuto, StrategyBruteForce, StrategyRTree:
		// ok
	default:
		return nil, ErrUnknownStrategy
	}

	var (
		n = len(points)
		i int
	)
	for i = 0; i < n; i++ {
		if !finitePoint(points[i]) {
			return nil, ErrNonFinitePoint
		}
	}

	// Stage 2: allocate the graph skeleton (defensive copy of points).
	g := &Graph{
		points:    make([]orb.Point, n),
		radius:    opts.Radius,
		adj:       make([]bool, n*n),
		neighbors: make([][]int, n),
	}
	copy(g.points, points)

	// Stage 3: edge discovery. Resolve Auto before dispatching.
	var threshold = opts.IndexThreshold
	if threshold < 2 {
		threshold = DefaultIndexThreshold
	}
	var strategy = opts.Strategy
	if strategy == StrategyAuto {
		if n >= threshold {
			strategy = StrategyRTree
		} else {
			strategy = StrategyBruteForce
		}
	}

	if n >= 2 {
		if strategy == StrategyRTree {
			g.rtreePass()
		} else {
			g.bruteForcePass()
		}
	}

	// Stage 4: finalize sorted neighbor lists from the dense relation.
	g.buildNeighborLists()

	return g, nil
}

// bruteForcePass fills the dense relation by scanning all pairs i<j.
// Distances are compared squared to avoid sqrt on the hot path.
//
// Complexity: O(n²) time, O(1) extra space.
func (g *Graph) bruteForcePass() {
	var (
		n  = len(g.points)
		r2 = g.radius * g.radius
		i  int
		j  int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if planar.DistanceSquared(g.points[i], g.points[j]) <= r2 {
				g.setEdge(i, j)
			}
		}
	}
}

// setEdge records the undirected edge {i,j} in the dense relation.
// Idempotent: re-marking an existing edge does not inflate edgeCount.
func (g *Graph) setEdge(i, j int) {
	var n = len(g.points)
	if g.adj[i*n+j] {
		return
	}
	g.adj[i*n+j] = true
	g.adj[j*n+i] = true
	g.edgeCount++
}

// buildNeighborLists derives per-vertex neighbor lists from the dense
// relation. Scanning j in ascending order keeps every list sorted, so
// Neighbors output is deterministic.
//
// Complexity: O(n²) time, O(Σdeg) space.
func (g *Graph) buildNeighborLists() {
	var (
		n = len(g.points)
		i int
		j int
	)
	for i = 0; i < n; i++ {
		var row []int
		for j = 0; j < n; j++ {
			if g.adj[i*n+j] {
				row = append(row, j)
			}
		}
		g.neighbors[i] = row
	}
}

// finitePoint reports whether both coordinates are finite (no NaN/Inf).
func finitePoint(p orb.Point) bool {
	if math.IsNaN(p[0]) || math.IsInf(p[0], 0) {
		return false
	}
	if math.IsNaN(p[1]) || math.IsInf(p[1], 0) {
		return false
	}

	return true
}

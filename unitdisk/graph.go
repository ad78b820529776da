// Package unitdisk - read-only accessors and occupation-vector queries.
package unitdisk

import "github.com/paulmach/orb"

// Order returns the number of vertices.
// Complexity: O(1).
func (g *Graph) Order() int {
	return len(g.points)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Radius returns the adjacency threshold the graph was built with.
// Complexity: O(1).
func (g *Graph) Radius() float64 {
	return g.radius
}

// Adjacent reports whether vertices i and j are within the disk radius.
// Out-of-range indices report false (never panic): the relation simply does
// not contain them. Adjacent(i,i) is always false.
//
// Complexity: O(1).
func (g *Graph) Adjacent(i, j int) bool {
	var n = len(g.points)
	if i < 0 || i >= n || j < 0 || j >= n {
		return false
	}

	return g.adj[i*n+j]
}

// Point returns the coordinates of vertex i.
// Returns ErrVertexRange when i is outside {0..n-1}.
//
// Complexity: O(1).
func (g *Graph) Point(i int) (orb.Point, error) {
	if i < 0 || i >= len(g.points) {
		return orb.Point{}, ErrVertexRange
	}

	return g.points[i], nil
}

// Degree returns the number of neighbors of vertex i.
// Returns ErrVertexRange when i is outside {0..n-1}.
//
// Complexity: O(1).
func (g *Graph) Degree(i int) (int, error) {
	if i < 0 || i >= len(g.points) {
		return 0, ErrVertexRange
	}

	return len(g.neighbors[i]), nil
}

// Neighbors returns the sorted neighbor indices of vertex i as a defensive copy.
// Returns ErrVertexRange when i is outside {0..n-1}.
//
// Complexity: O(deg(i)) time and space.
func (g *Graph) Neighbors(i int) ([]int, error) {
	if i < 0 || i >= len(g.points) {
		return nil, ErrVertexRange
	}
	out := make([]int, len(g.neighbors[i]))
	copy(out, g.neighbors[i])

	return out, nil
}

// AdjacencyRow exposes the internal neighbor list of vertex i without a copy.
// The returned slice is shared and MUST be treated as read-only; it exists so
// hot paths (energy deltas in the anneal package) avoid per-step allocations.
// Returns ErrVertexRange when i is outside {0..n-1}.
//
// Complexity: O(1).
func (g *Graph) AdjacencyRow(i int) ([]int, error) {
	if i < 0 || i >= len(g.points) {
		return nil, ErrVertexRange
	}

	return g.neighbors[i], nil
}

// Violations counts occupied-occupied edges under the occupation vector occ
// (occ[v] == true means vertex v is occupied). Each edge is counted once.
// Returns ErrConfigLength when len(occ) != Order().
//
// Complexity: O(Σdeg) time, O(1) space.
func (g *Graph) Violations(occ []bool) (int, error) {
	var n = len(g.points)
	if len(occ) != n {
		return 0, ErrConfigLength
	}

	var (
		count int
		i     int
		j     int
	)
	for i = 0; i < n; i++ {
		if !occ[i] {
			continue
		}
		for _, j = range g.neighbors[i] {
			if j > i && occ[j] { // count each undirected edge exactly once
				count++
			}
		}
	}

	return count, nil
}

// IsIndependentSet reports whether occ marks an independent set:
// no two occupied vertices are adjacent.
// Returns ErrConfigLength when len(occ) != Order().
//
// Complexity: O(Σdeg).
func (g *Graph) IsIndependentSet(occ []bool) (bool, error) {
	v, err := g.Violations(occ)
	if err != nil {
		return false, err
	}

	return v == 0, nil
}

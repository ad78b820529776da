// Package unitdisk builds the unit-disk adjacency relation over a set of
// 2-D points: two vertices are adjacent iff their Euclidean distance does
// not exceed a fixed radius.
//
// What:
//
//   - New constructs an immutable Graph from an ordered []orb.Point; the
//     slice order is the permanent vertex numbering {0..n-1}.
//   - Graph exposes Adjacent, Neighbors, Degree, Order, EdgeCount, Point.
//   - Violations / IsIndependentSet evaluate occupation vectors against
//     the relation (occupied-occupied edges are violations).
//
// Why:
//
//   - UD-MIS solvers: the relation is the coupling structure of the
//     independent-set Hamiltonian (see the anneal package).
//   - Proximity graphs in general: wireless interference, collision radii.
//
// Strategies:
//
//   - StrategyBruteForce — O(n²) pairwise scan; right for tens of points.
//   - StrategyRTree      — R-tree assisted neighbor queries
//     (github.com/dhconnelly/rtreego); O(n·(log n + k)) expected, where
//     k is the neighbor count, for large inputs.
//   - StrategyAuto       — brute force below Options.IndexThreshold,
//     R-tree at or above it.
//
// Complexity:
//
//   - New:        per strategy above; Memory: O(n² bits + Σdeg).
//   - Adjacent:   O(1).
//   - Neighbors:  O(deg) (defensive copy).
//   - Violations: O(Σdeg).
//
// Errors:
//
//   - ErrNonPositiveRadius: radius is zero, negative, NaN or Inf.
//   - ErrNonFinitePoint:    a coordinate is NaN or Inf.
//   - ErrUnknownStrategy:   Options.Strategy is not a declared constant.
//   - ErrVertexRange:       a vertex index is outside {0..n-1}.
//   - ErrConfigLength:      an occupation vector length differs from Order.
//
// Both strategies produce the exact same relation; the invariants
// Adjacent(i,j)==Adjacent(j,i) and Adjacent(i,i)==false always hold.
package unitdisk

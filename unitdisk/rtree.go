// Package unitdisk - R-tree assisted edge discovery for large inputs.
//
// The pairwise scan in build.go is quadratic in the vertex count; for large
// point sets we index the points in an R-tree (github.com/dhconnelly/rtreego)
// and answer one radius query per vertex. Candidates from the bounding-box
// query are confirmed with the exact squared-distance predicate, so the
// resulting relation is identical to the brute-force one.
package unitdisk

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb/planar"
)

// rtreeMinChildren / rtreeMaxChildren are the R-tree node fill bounds.
// The 25/50 pair follows common rtreego practice for 2-D point data.
const (
	rtreeMinChildren = 25
	rtreeMaxChildren = 50
)

// pointTol is the degenerate-rectangle tolerance used when storing points.
// rtreego stores rectangles; a point becomes a box of this side length.
const pointTol = 1e-9

// vertexEntry wraps a vertex index for R-tree storage.
type vertexEntry struct {
	idx  int
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *vertexEntry) Bounds() rtreego.Rect {
	return e.rect
}

// rtreePass fills the dense relation via one box query per vertex.
//
// For vertex i the query box is the axis-aligned square of side 2·radius
// centered at point i; every true disk neighbor lies inside it. Candidates
// are then confirmed exactly, and setEdge deduplicates the symmetric pair.
//
// Complexity: O(n·(log n + k)) expected, k = candidates per query.
func (g *Graph) rtreePass() {
	var (
		n    = len(g.points)
		r    = g.radius
		r2   = r * r
		tree = rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren)
		i    int
	)

	// Stage 1: index every vertex as a degenerate rectangle.
	for i = 0; i < n; i++ {
		tree.Insert(&vertexEntry{
			idx:  i,
			rect: rtreego.Point{g.points[i][0], g.points[i][1]}.ToRect(pointTol),
		})
	}

	// Stage 2: one radius query per vertex; exact confirmation per candidate.
	var (
		box     rtreego.Rect
		err     error
		matches []rtreego.Spatial
		m       rtreego.Spatial
		j       int
	)
	for i = 0; i < n; i++ {
		box, err = rtreego.NewRect(
			rtreego.Point{g.points[i][0] - r, g.points[i][1] - r},
			[]float64{2 * r, 2 * r},
		)
		if err != nil {
			// Radius is validated positive and finite in New; a box of side 2r
			// can only fail on contract violation upstream. Fall back to the
			// exact pass to keep the relation correct regardless.
			g.bruteForcePass()

			return
		}

		matches = tree.SearchIntersect(box)
		for _, m = range matches {
			j = m.(*vertexEntry).idx
			if j <= i {
				continue // symmetric pair handled when i was the smaller index
			}
			if planar.DistanceSquared(g.points[i], g.points[j]) <= r2 {
				g.setEdge(i, j)
			}
		}
	}
}

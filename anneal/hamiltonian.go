// Package anneal - the UD-MIS Hamiltonian.
//
// The energy model couples an occupation vector through unit-disk adjacency:
//
//	E(occ) = u · Σ_{i<j, adjacent(i,j)} occ[i]·occ[j]  −  Σ_i occ[i]
//
// Every occupied-occupied edge pays the penalty u (softly enforcing the
// independence constraint); every occupied vertex earns a reward of 1
// (encouraging maximality). With u > 1 every ground state is a maximum
// independent set.
package anneal

import (
	"math"

	"github.com/katalvlaran/udmis/unitdisk"
)

// roundScale controls energy stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting optimality.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// UDMIS is the Unit-Disk Maximum Independent Set Hamiltonian over an
// immutable *unitdisk.Graph. It is read-only after construction and safe
// to share across Annealer instances.
type UDMIS struct {
	order int     // number of vertices
	u     float64 // interaction strength (penalty per occupied-occupied edge)
	rows  [][]int // shared neighbor lists, rows[i] sorted ascending
}

// NewUDMIS builds the Hamiltonian for graph g with interaction strength u.
//
// Contracts:
//   - g must be non-nil (ErrNilGraph) with at least one vertex (ErrEmptyGraph).
//   - u must be positive and finite (ErrBadInteraction).
//
// Complexity: O(n) (caches the shared neighbor rows), O(n) space.
func NewUDMIS(g *unitdisk.Graph, u float64) (*UDMIS, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Order() == 0 {
		return nil, ErrEmptyGraph
	}
	if u <= 0 || math.IsNaN(u) || math.IsInf(u, 0) {
		return nil, ErrBadInteraction
	}

	var (
		n    = g.Order()
		rows = make([][]int, n)
		i    int
		err  error
	)
	for i = 0; i < n; i++ {
		// AdjacencyRow shares the graph's internal lists; UDMIS never mutates them.
		rows[i], err = g.AdjacencyRow(i)
		if err != nil {
			return nil, err
		}
	}

	return &UDMIS{order: n, u: u, rows: rows}, nil
}

// Order returns the number of vertices the model couples.
// Complexity: O(1).
func (h *UDMIS) Order() int {
	return h.order
}

// Interaction returns the penalty weight u.
// Complexity: O(1).
func (h *UDMIS) Interaction() float64 {
	return h.u
}

// TotalEnergy computes E(occ) from scratch.
//
// Contract: len(occ) == Order(); violated indices fail loudly.
// Reporting/verification path — Step keeps energy incrementally instead.
//
// Complexity: O(n + Σdeg) time, O(1) space.
func (h *UDMIS) TotalEnergy(occ []bool) float64 {
	var (
		pairs    int // occupied-occupied edges, each counted once
		occupied int // occupied vertices
		i        int
		j        int
	)
	for i = 0; i < h.order; i++ {
		if !occ[i] {
			continue
		}
		occupied++
		for _, j = range h.rows[i] {
			if j > i && occ[j] { // i<j restriction: count each edge once
				pairs++
			}
		}
	}

	return round1e9(h.u*float64(pairs) - float64(occupied))
}

// EnergyDelta returns the exact change in TotalEnergy if occ[i] were flipped.
//
// With k = number of occupied neighbors of i, both flip directions reduce to
// one signed formula around the pivot (u·k − 1):
//
//	unoccupied → occupied:  ΔE = u·k − 1   (gain reward, add k penalties)
//	occupied → unoccupied:  ΔE = 1 − u·k   (lose reward, remove k penalties)
//
// Contract: len(occ) == Order(), 0 ≤ i < Order(); occ is not mutated.
//
// Complexity: O(deg(i)) time, O(1) space.
func (h *UDMIS) EnergyDelta(occ []bool, i int) float64 {
	var (
		k int // occupied neighbors of i
		j int
	)
	for _, j = range h.rows[i] {
		if occ[j] {
			k++
		}
	}

	var delta = h.u*float64(k) - 1
	if occ[i] {
		delta = -delta
	}

	return delta
}

// compile-time check: UDMIS satisfies the Hamiltonian strategy.
var _ Hamiltonian = (*UDMIS)(nil)

// Package anneal - the Metropolis stepping engine.
//
// An Annealer owns exactly one mutable occupation vector and mutates it one
// vertex at a time. Energy is tracked incrementally: Step applies the O(deg)
// EnergyDelta of the trial vertex instead of recomputing the O(n + Σdeg)
// total, so a full anneal over S steps costs O(S·avg-deg).
//
// Scheduling is an external policy: the caller supplies one temperature per
// Step call (see schedule.go and run.go for conventional drivers).
package anneal

import (
	"math"
	"math/rand"
)

// Annealer performs single-spin-flip Metropolis updates against a Hamiltonian.
// Not safe for concurrent use: a single goroutine must own each instance.
// The Hamiltonian is read-only and may be shared across instances (see Fork).
type Annealer struct {
	h        Hamiltonian
	zeroTemp ZeroTempMode

	rng      *rand.Rand
	occ      []bool  // the configuration; the entire mutable state
	energy   float64 // incrementally maintained TotalEnergy(occ)
	occupied int     // incrementally maintained Σ occ[i]

	steps    int // Metropolis trials performed
	accepted int // trials that flipped a vertex
}

// New constructs an Annealer over h with an independent Bernoulli(0.5)
// random initial configuration — the “infinite temperature” state.
//
// Errors: ErrNilHamiltonian when h is nil; ErrEmptyModel when h.Order() < 1.
//
// Complexity: O(n + Σdeg) (initial occupation + baseline energy).
func New(h Hamiltonian, opts Options) (*Annealer, error) {
	if h == nil {
		return nil, ErrNilHamiltonian
	}
	if h.Order() < 1 {
		return nil, ErrEmptyModel
	}

	var a = &Annealer{
		h:        h,
		zeroTemp: opts.ZeroTemp,
		rng:      rngFromSeed(opts.Seed),
	}
	a.occ = randomOccupation(h.Order(), a.rng)
	a.recompute()

	return a, nil
}

// Fork creates an independent restart of the same model: a fresh Annealer
// sharing the (immutable) Hamiltonian, with a decorrelated RNG stream derived
// from this instance's RNG and the stream identifier, and its own fresh
// random initial configuration.
//
// Call during setup, not between Steps of a run you want reproducible:
// deriving consumes one draw from this instance's RNG by design.
//
// Complexity: O(n + Σdeg).
func (a *Annealer) Fork(stream uint64) *Annealer {
	var child = &Annealer{
		h:        a.h,
		zeroTemp: a.zeroTemp,
		rng:      deriveRNG(a.rng, stream),
	}
	child.occ = randomOccupation(a.h.Order(), child.rng)
	child.recompute()

	return child
}

// recompute resets the cached energy and occupation count from scratch.
// Used at construction and after SetConfiguration.
func (a *Annealer) recompute() {
	a.energy = a.h.TotalEnergy(a.occ)

	var (
		count int
		i     int
	)
	for i = range a.occ {
		if a.occ[i] {
			count++
		}
	}
	a.occupied = count
}

// Order returns the number of vertices of the underlying model.
// Complexity: O(1).
func (a *Annealer) Order() int {
	return a.h.Order()
}

// Energy returns the current total energy, stabilized to 1e-9.
// The value is maintained incrementally; TotalEnergy on the Hamiltonian
// recomputes the same quantity from scratch for verification.
//
// Complexity: O(1).
func (a *Annealer) Energy() float64 {
	return round1e9(a.energy)
}

// Occupied returns the number of occupied vertices.
// Complexity: O(1).
func (a *Annealer) Occupied() int {
	return a.occupied
}

// Steps returns the number of Metropolis trials performed so far.
// Complexity: O(1).
func (a *Annealer) Steps() int {
	return a.steps
}

// Accepted returns the number of trials that flipped a vertex.
// Complexity: O(1).
func (a *Annealer) Accepted() int {
	return a.accepted
}

// Configuration returns a read-only snapshot (defensive copy) of the
// occupation vector, indexed by vertex.
//
// Complexity: O(n) time and space.
func (a *Annealer) Configuration() []bool {
	out := make([]bool, len(a.occ))
	copy(out, a.occ)

	return out
}

// SetConfiguration replaces the configuration with a copy of occ — e.g. to
// replay an externally sourced sample (see ParseBitstring) or to restart
// from a known state. Cached energy and counts are recomputed; the trial
// counters keep running.
//
// Errors: ErrConfigLength when len(occ) != Order().
//
// Complexity: O(n + Σdeg).
func (a *Annealer) SetConfiguration(occ []bool) error {
	if len(occ) != a.h.Order() {
		return ErrConfigLength
	}
	copy(a.occ, occ)
	a.recompute()

	return nil
}

// RandomVertex returns a vertex index drawn uniformly from {0..n-1}.
// Exposed for callers composing custom move policies; Step uses it internally.
//
// Complexity: O(1).
func (a *Annealer) RandomVertex() int {
	return a.rng.Intn(a.h.Order())
}

// Step performs one Metropolis trial at the given temperature and returns
// the resulting total energy (stabilized to 1e-9):
//
//  1. pick i = RandomVertex();
//  2. compute ΔE = EnergyDelta(occ, i);
//  3. accept the flip when ΔE ≤ 0, else with probability exp(−ΔE/T);
//  4. on acceptance toggle occ[i] and fold ΔE into the cached energy.
//
// Temperature policy:
//   - T < 0 or NaN ⇒ ErrBadTemperature (the state is untouched);
//   - T == 0 ⇒ greedy descent (accept only ΔE ≤ 0) under ZeroTempGreedy,
//     or ErrBadTemperature under ZeroTempReject;
//   - T == +Inf is valid: every move is accepted (exp(0) == 1).
//
// Rejection is a normal algorithmic outcome, not a failure. Every call is a
// complete transaction: at most one boolean flips before it returns.
//
// Complexity: O(deg(i)) time, O(1) space.
func (a *Annealer) Step(temperature float64) (float64, error) {
	// Stage 1: temperature policy.
	if temperature < 0 || math.IsNaN(temperature) {
		return 0, ErrBadTemperature
	}
	if temperature == 0 && a.zeroTemp == ZeroTempReject {
		return 0, ErrBadTemperature
	}

	// Stage 2: trial move.
	var (
		i     = a.RandomVertex()
		delta = a.h.EnergyDelta(a.occ, i)
	)
	a.steps++

	// Stage 3: Metropolis acceptance.
	var accept bool
	switch {
	case delta <= 0:
		accept = true
	case temperature == 0:
		accept = false // greedy descent: uphill moves never pass
	default:
		accept = a.rng.Float64() < math.Exp(-delta/temperature)
	}

	// Stage 4: apply (or not) and report the resulting energy.
	if accept {
		a.occ[i] = !a.occ[i]
		if a.occ[i] {
			a.occupied++
		} else {
			a.occupied--
		}
		a.energy += delta
		a.accepted++
	}

	return round1e9(a.energy), nil
}

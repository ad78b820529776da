// Package anneal - core types, options, and sentinel errors.
package anneal

import "errors"

// Sentinel errors for Hamiltonian and Annealer construction and stepping.
var (
	// ErrNilGraph indicates a nil *unitdisk.Graph was passed to NewUDMIS.
	ErrNilGraph = errors.New("anneal: graph is nil")
	// ErrEmptyGraph indicates the graph has no vertices; the Hamiltonian
	// would be degenerate and RandomVertex undefined.
	ErrEmptyGraph = errors.New("anneal: graph must have at least one vertex")
	// ErrBadInteraction indicates the interaction strength u is not finite
	// and positive.
	ErrBadInteraction = errors.New("anneal: interaction strength must be positive and finite")
	// ErrNilHamiltonian indicates a nil Hamiltonian was passed to New.
	ErrNilHamiltonian = errors.New("anneal: hamiltonian is nil")
	// ErrEmptyModel indicates the Hamiltonian reports order < 1.
	ErrEmptyModel = errors.New("anneal: hamiltonian order must be at least 1")
	// ErrBadTemperature indicates a negative or NaN temperature, or exactly
	// zero under ZeroTempReject.
	ErrBadTemperature = errors.New("anneal: temperature must be positive")
	// ErrBadSchedule indicates malformed schedule parameters or an empty schedule.
	ErrBadSchedule = errors.New("anneal: malformed temperature schedule")
	// ErrConfigLength indicates an occupation vector length differing from
	// the model order.
	ErrConfigLength = errors.New("anneal: occupation vector length mismatch")
	// ErrBadBitstring indicates a sample character other than '0' or '1'.
	ErrBadBitstring = errors.New("anneal: bitstring must contain only '0' and '1'")
)

// ZeroTempMode selects the behavior of Step at temperature exactly zero,
// where the Metropolis acceptance probability exp(−ΔE/T) is undefined.
//
//   - ZeroTempGreedy — degenerate to greedy descent: accept only moves with
//     ΔE ≤ 0. This is the limit T→0⁺ of the Metropolis rule.
//   - ZeroTempReject — treat T == 0 as invalid input (ErrBadTemperature).
type ZeroTempMode int

const (
	// ZeroTempGreedy accepts only non-increasing moves at T == 0.
	ZeroTempGreedy ZeroTempMode = iota
	// ZeroTempReject refuses T == 0 with ErrBadTemperature.
	ZeroTempReject
)

// Options configures an Annealer.
//
//	Seed     – RNG seed. 0 selects the fixed internal default stream, so the
//	           zero value is still fully deterministic.
//	ZeroTemp – policy for Step(0); see ZeroTempMode.
type Options struct {
	Seed     int64
	ZeroTemp ZeroTempMode
}

// DefaultOptions returns Options with Seed=0 (deterministic default stream)
// and ZeroTemp=ZeroTempGreedy.
func DefaultOptions() Options {
	return Options{
		Seed:     0,
		ZeroTemp: ZeroTempGreedy,
	}
}

// Hamiltonian is the energy-model strategy consumed by the Annealer.
// Implementations must be immutable after construction and safe for
// concurrent readers; the Annealer never mutates them.
//
// Contracts (not re-validated on the hot path):
//   - len(occ) == Order() on every call;
//   - 0 ≤ i < Order() for EnergyDelta.
//
// Violations are programming errors and fail loudly (slice range panic)
// rather than silently corrupting state.
type Hamiltonian interface {
	// Order returns the number of vertices the model couples.
	Order() int

	// TotalEnergy computes the energy of occ from scratch.
	// Reporting/verification path; implementations may be O(n + Σdeg).
	TotalEnergy(occ []bool) float64

	// EnergyDelta returns the exact change in TotalEnergy if occ[i] were
	// flipped, without mutating occ. Hot path: O(deg(i)) or better.
	EnergyDelta(occ []bool, i int) float64
}

// Package anneal drives a boolean occupation configuration toward low-energy
// states with single-spin-flip Metropolis dynamics — the classical simulated
// annealing baseline for Unit-Disk Maximum Independent Set.
//
// What:
//
//   - Hamiltonian is the energy-model strategy: total energy of a
//     configuration plus the O(deg) incremental change of flipping one vertex.
//   - UDMIS is the concrete Hamiltonian over a *unitdisk.Graph:
//     E = u·#{occupied-occupied edges} − #occupied.
//   - Annealer owns the mutable configuration and performs one Metropolis
//     trial per Step(temperature) call; scheduling stays with the caller.
//   - GeometricSchedule / LinearSchedule build conventional hot→cold
//     temperature sequences; Run executes a whole schedule and records a Trace.
//   - ParseBitstring / FormatBitstring align externally produced samples
//     (hardware bitstrings arrive in reversed index order) with the engine's
//     vertex numbering.
//
// Why:
//
//   - Classical baselines: compare annealer output against quantum-hardware
//     samples on the same geometric instance.
//   - Soft-constraint optimization: the penalty weight u trades independence
//     violations against set size.
//
// Determinism:
//
//   - Same seed ⇒ identical trajectories across platforms. Seed 0 selects a
//     fixed internal default; there is no time-based randomness anywhere.
//   - Parallel restarts: Fork derives a decorrelated RNG stream per instance;
//     the Graph and the Hamiltonian are immutable and safely shared.
//
// Complexity:
//
//   - Step:        O(deg(i)) for the energy delta; O(1) otherwise.
//   - TotalEnergy: O(n + Σdeg) — reporting/verification only, off the hot path.
//   - Run:         O(steps·avg-deg) plus sampling copies.
//
// Errors:
//
//   - ErrNilGraph / ErrEmptyGraph / ErrBadInteraction: UDMIS construction.
//   - ErrNilHamiltonian / ErrEmptyModel: Annealer construction.
//   - ErrBadTemperature: negative/NaN temperature, or exactly zero under
//     ZeroTempReject.
//   - ErrBadSchedule:    malformed schedule parameters or an empty schedule.
//   - ErrConfigLength:   occupation vector length differs from the model order.
//   - ErrBadBitstring:   a sample character is not '0' or '1'.
//
// Concurrency: an Annealer is owned by a single goroutine; every Step is a
// complete transaction (at most one boolean flips), so any step boundary is a
// valid stopping or resumption point.
package anneal

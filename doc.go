// Package udmis solves the Unit-Disk Maximum Independent Set problem
// with classical simulated annealing — from geometric graph construction
// to Metropolis dynamics and run traces.
//
// 🚀 What is udmis?
//
//	A small, deterministic library that brings together:
//		• unitdisk/ — build the unit-disk adjacency relation from 2-D points
//		  (brute force or R-tree assisted for large inputs)
//		• anneal/   — the UD-MIS Hamiltonian, single-spin-flip Metropolis
//		  stepping, temperature schedules, run traces and statistics
//
// ✨ Why choose udmis?
//
//   - Deterministic – same seed ⇒ identical trajectories across platforms
//   - Rock-solid guarantees – sentinel errors, documented contracts, in-code docs
//   - Pluggable – the engine is parameterized by a Hamiltonian strategy,
//     so alternative energy models drop in without inheritance
//
// Quick ASCII example:
//
//	    A───B        three points within unit distance form a triangle;
//	     \ /         the maximum independent set holds exactly one of them.
//	      C
//
// A full anneal is a caller-driven loop: build a graph, wrap it in a
// Hamiltonian, construct an Annealer, then feed it one temperature per step
// (see anneal.GeometricSchedule and anneal.Run).
//
// Dive into unitdisk/doc.go and anneal/doc.go for contracts, complexity
// and error taxonomies.
package udmis

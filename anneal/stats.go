// Package anneal - summary statistics over run traces.
//
// Reporting layer for external consumers comparing annealer output against
// other samplers (e.g. hardware-produced bitstrings): a handful of scalar
// descriptors of the recorded energy trajectory, computed with gonum/stat.
package anneal

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// TraceSummary is a scalar digest of a Trace.
type TraceSummary struct {
	// MinEnergy is the lowest recorded energy (best sampled state).
	MinEnergy float64
	// FinalEnergy is the energy after the last step.
	FinalEnergy float64
	// MeanEnergy and StdDevEnergy describe the recorded energy samples.
	// StdDevEnergy is 0 when fewer than two samples were recorded.
	MeanEnergy   float64
	StdDevEnergy float64
	// AcceptanceRate is AcceptedCount/StepCount over the run, in [0,1].
	AcceptanceRate float64
}

// Summary digests the trace into scalar statistics.
//
// The energy descriptors cover the *recorded* samples only; with sparse
// sampling (RunOptions.SampleEvery) they describe the sampled trajectory,
// not every intermediate step.
//
// Complexity: O(len(Samples)).
func (tr *Trace) Summary() TraceSummary {
	var s TraceSummary
	if tr == nil || len(tr.Samples) == 0 {
		return s
	}

	var (
		energies = make([]float64, len(tr.Samples))
		minE     = math.Inf(1)
		i        int
	)
	for i = range tr.Samples {
		energies[i] = tr.Samples[i].Energy
		if energies[i] < minE {
			minE = energies[i]
		}
	}

	s.MinEnergy = minE
	s.FinalEnergy = tr.FinalEnergy
	s.MeanEnergy = stat.Mean(energies, nil)
	if len(energies) >= 2 {
		s.StdDevEnergy = stat.StdDev(energies, nil)
	}
	if tr.StepCount > 0 {
		s.AcceptanceRate = float64(tr.AcceptedCount) / float64(tr.StepCount)
	}

	return s
}

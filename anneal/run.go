// Package anneal - schedule drivers and run traces.
//
// Run is the canonical caller loop made concrete: one Step per schedule
// temperature, with optional sampling of (step, temperature, energy,
// configuration) tuples for external reporting. The engine stays dumb;
// everything here could equally be written by the caller.
package anneal

// Sample is one recorded observation of a run.
type Sample struct {
	// Step is the 1-based index of the Step call that produced the observation.
	Step int
	// Temperature is the schedule value supplied to that Step.
	Temperature float64
	// Energy is the total energy after the step (stabilized to 1e-9).
	Energy float64
	// Configuration is a snapshot of the occupation vector, or nil unless
	// RunOptions.KeepConfigurations was set.
	Configuration []bool
}

// Trace is the recorded outcome of Run.
type Trace struct {
	// Samples holds the periodic observations, oldest first. The observation
	// after the final step is always present.
	Samples []Sample
	// StepCount and AcceptedCount cover exactly this run (not the lifetime
	// totals of the Annealer).
	StepCount     int
	AcceptedCount int
	// FinalEnergy is the total energy after the last step.
	FinalEnergy float64
	// FinalConfiguration is a snapshot of the occupation vector after the
	// last step (always recorded, independent of KeepConfigurations).
	FinalConfiguration []bool
}

// RunOptions configures trace recording.
//
//	SampleEvery        – record an observation after every k-th step; 0 (or
//	                     negative) records only the final observation.
//	KeepConfigurations – attach a configuration snapshot to every recorded
//	                     sample (O(n) copy each), not just the final one.
type RunOptions struct {
	SampleEvery        int
	KeepConfigurations bool
}

// Run drives one Step per temperature over temps and records a Trace.
//
// Contracts:
//   - a must be non-nil (ErrNilHamiltonian is reused for a nil engine);
//   - temps must be non-empty (ErrBadSchedule);
//   - temperature validity is enforced per Step (ErrBadTemperature aborts the
//     run; the engine remains valid at the last completed step boundary).
//
// Complexity: O(len(temps)·avg-deg) plus O(n) per recorded snapshot.
func Run(a *Annealer, temps []float64, opts RunOptions) (*Trace, error) {
	if a == nil {
		return nil, ErrNilHamiltonian
	}
	if len(temps) == 0 {
		return nil, ErrBadSchedule
	}

	var (
		stepsBefore    = a.Steps()
		acceptedBefore = a.Accepted()
		every          = opts.SampleEvery
		tr             = &Trace{}
		energy         float64
		err            error
		k              int
	)
	if every > 0 {
		tr.Samples = make([]Sample, 0, len(temps)/every+1)
	}

	for k = 0; k < len(temps); k++ {
		energy, err = a.Step(temps[k])
		if err != nil {
			return nil, err
		}

		var last = k == len(temps)-1
		if last || (every > 0 && (k+1)%every == 0) {
			var snap []bool
			if opts.KeepConfigurations || last {
				snap = a.Configuration()
			}
			tr.Samples = append(tr.Samples, Sample{
				Step:          k + 1,
				Temperature:   temps[k],
				Energy:        energy,
				Configuration: snap,
			})
		}
	}

	tr.StepCount = a.Steps() - stepsBefore
	tr.AcceptedCount = a.Accepted() - acceptedBefore
	tr.FinalEnergy = energy
	tr.FinalConfiguration = tr.Samples[len(tr.Samples)-1].Configuration

	return tr, nil
}

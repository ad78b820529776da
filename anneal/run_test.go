package anneal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/udmis/anneal"
)

// newTriangleAnnealer wires the standard triangle engine used across run and
// trace tests.
func newTriangleAnnealer(t *testing.T, seed int64) *anneal.Annealer {
	t.Helper()
	h, err := anneal.NewUDMIS(triangleGraph(t), 2.0)
	require.NoError(t, err)
	a, err := anneal.New(h, anneal.Options{Seed: seed})
	require.NoError(t, err)

	return a
}

// TestRun_Validation covers the nil-engine and empty-schedule sentinels.
func TestRun_Validation(t *testing.T) {
	_, err := anneal.Run(nil, []float64{1}, anneal.RunOptions{})
	require.ErrorIs(t, err, anneal.ErrNilHamiltonian)

	a := newTriangleAnnealer(t, 1)
	_, err = anneal.Run(a, nil, anneal.RunOptions{})
	require.ErrorIs(t, err, anneal.ErrBadSchedule)
}

// TestRun_SamplingCadence checks the recorded sample count and positions for
// a sparse cadence, including the guaranteed final observation.
func TestRun_SamplingCadence(t *testing.T) {
	a := newTriangleAnnealer(t, 2)
	temps, err := anneal.GeometricSchedule(4.0, 0.1, 100)
	require.NoError(t, err)

	tr, err := anneal.Run(a, temps, anneal.RunOptions{SampleEvery: 30})
	require.NoError(t, err)

	// Steps 30, 60, 90 by cadence, plus the final step 100.
	require.Len(t, tr.Samples, 4)
	require.Equal(t, 30, tr.Samples[0].Step)
	require.Equal(t, 60, tr.Samples[1].Step)
	require.Equal(t, 90, tr.Samples[2].Step)
	require.Equal(t, 100, tr.Samples[3].Step)

	require.Equal(t, 100, tr.StepCount)
	require.LessOrEqual(t, tr.AcceptedCount, tr.StepCount)
	require.InDelta(t, tr.Samples[3].Energy, tr.FinalEnergy, 1e-9)
	require.Len(t, tr.FinalConfiguration, 3, "final snapshot is always recorded")
}

// TestRun_DefaultRecordsOnlyFinal checks SampleEvery==0 behavior.
func TestRun_DefaultRecordsOnlyFinal(t *testing.T) {
	a := newTriangleAnnealer(t, 3)
	temps, err := anneal.LinearSchedule(3.0, 0.5, 40)
	require.NoError(t, err)

	tr, err := anneal.Run(a, temps, anneal.RunOptions{})
	require.NoError(t, err)

	require.Len(t, tr.Samples, 1)
	require.Equal(t, 40, tr.Samples[0].Step)
	require.NotNil(t, tr.FinalConfiguration)
}

// TestRun_KeepConfigurations verifies every recorded sample carries an
// independent snapshot when requested, and none (except the final) otherwise.
func TestRun_KeepConfigurations(t *testing.T) {
	temps, err := anneal.GeometricSchedule(4.0, 0.1, 60)
	require.NoError(t, err)

	withSnaps, err := anneal.Run(newTriangleAnnealer(t, 4), temps,
		anneal.RunOptions{SampleEvery: 20, KeepConfigurations: true})
	require.NoError(t, err)
	for i, s := range withSnaps.Samples {
		require.Len(t, s.Configuration, 3, "sample %d must carry a snapshot", i)
	}

	without, err := anneal.Run(newTriangleAnnealer(t, 4), temps,
		anneal.RunOptions{SampleEvery: 20})
	require.NoError(t, err)
	for i, s := range without.Samples[:len(without.Samples)-1] {
		require.Nil(t, s.Configuration, "sample %d must not carry a snapshot", i)
	}
	require.NotNil(t, without.Samples[len(without.Samples)-1].Configuration)
}

// TestRun_AbortsOnBadTemperature ensures a malformed schedule value stops the
// run with ErrBadTemperature and leaves the engine at a valid step boundary.
func TestRun_AbortsOnBadTemperature(t *testing.T) {
	a := newTriangleAnnealer(t, 5)
	_, err := anneal.Run(a, []float64{1.0, math.NaN(), 0.5}, anneal.RunOptions{})
	require.ErrorIs(t, err, anneal.ErrBadTemperature)
	require.Equal(t, 1, a.Steps(), "only the step before the bad value ran")
}

// TestRun_PerRunCounters verifies StepCount/AcceptedCount cover only the run,
// not the engine lifetime.
func TestRun_PerRunCounters(t *testing.T) {
	a := newTriangleAnnealer(t, 6)
	temps := []float64{2.0, 2.0, 2.0}

	tr1, err := anneal.Run(a, temps, anneal.RunOptions{})
	require.NoError(t, err)
	tr2, err := anneal.Run(a, temps, anneal.RunOptions{})
	require.NoError(t, err)

	require.Equal(t, 3, tr1.StepCount)
	require.Equal(t, 3, tr2.StepCount)
	require.Equal(t, 6, a.Steps(), "lifetime counter keeps running")
}

// Package anneal - conventional temperature schedules.
//
// The engine itself has no notion of a schedule: the caller feeds one
// temperature per Step. These helpers build the two conventional hot→cold
// sequences so that callers do not re-derive the interpolation arithmetic.
package anneal

import "math"

// GeometricSchedule returns steps temperatures interpolating geometrically
// from tHot down to tCold, endpoints exact:
//
//	t_k = tHot · (tCold/tHot)^(k/(steps−1)),  k = 0..steps−1.
//
// Contracts (ErrBadSchedule otherwise):
//   - steps ≥ 2;
//   - 0 < tCold ≤ tHot, both finite (a geometric ramp cannot reach zero).
//
// Complexity: O(steps) time and space.
func GeometricSchedule(tHot, tCold float64, steps int) ([]float64, error) {
	if steps < 2 {
		return nil, ErrBadSchedule
	}
	if !finiteTemp(tHot) || !finiteTemp(tCold) {
		return nil, ErrBadSchedule
	}
	if tCold <= 0 || tHot < tCold {
		return nil, ErrBadSchedule
	}

	var (
		out   = make([]float64, steps)
		ratio = tCold / tHot
		k     int
	)
	for k = 0; k < steps; k++ {
		out[k] = tHot * math.Pow(ratio, float64(k)/float64(steps-1))
	}
	// Pin endpoints exactly against Pow rounding.
	out[0] = tHot
	out[steps-1] = tCold

	return out, nil
}

// LinearSchedule returns steps temperatures interpolating linearly from tHot
// down to tCold, endpoints exact:
//
//	t_k = tHot + (tCold−tHot)·k/(steps−1),  k = 0..steps−1.
//
// Contracts (ErrBadSchedule otherwise):
//   - steps ≥ 2;
//   - 0 ≤ tCold ≤ tHot, tHot > 0, both finite. tCold == 0 is allowed: the
//     final step then runs under the engine's zero-temperature policy
//     (greedy descent by default, see ZeroTempMode).
//
// Complexity: O(steps) time and space.
func LinearSchedule(tHot, tCold float64, steps int) ([]float64, error) {
	if steps < 2 {
		return nil, ErrBadSchedule
	}
	if !finiteTemp(tHot) || !finiteTemp(tCold) {
		return nil, ErrBadSchedule
	}
	if tCold < 0 || tHot <= 0 || tHot < tCold {
		return nil, ErrBadSchedule
	}

	var (
		out  = make([]float64, steps)
		span = tCold - tHot
		k    int
	)
	for k = 0; k < steps; k++ {
		out[k] = tHot + span*float64(k)/float64(steps-1)
	}
	out[0] = tHot
	out[steps-1] = tCold

	return out, nil
}

// finiteTemp reports whether t is a usable schedule endpoint (no NaN/Inf).
func finiteTemp(t float64) bool {
	return !math.IsNaN(t) && !math.IsInf(t, 0)
}

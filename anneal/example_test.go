// File: anneal/example_test.go
package anneal_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/udmis/anneal"
	"github.com/katalvlaran/udmis/unitdisk"
)

////////////////////////////////////////////////////////////////////////////////
// Example: full anneal on a fully connected triangle
////////////////////////////////////////////////////////////////////////////////

// Example demonstrates the whole pipeline on the canonical toy instance:
// three points, all within unit distance of each other, u = 2.
// Scenario:
//
//   - The maximum independent set of a triangle holds exactly one vertex,
//     so the ground-state energy is −1.
//   - We ramp the temperature geometrically from 10 to 0.05 over 2000 steps,
//     then polish with a short greedy descent (T = 0).
//
// Complexity: O(steps·avg-deg) for the anneal.
func Example() {
	pts := []orb.Point{{0, 0}, {0.8, 0}, {0.4, 0.6}}

	g, _ := unitdisk.New(pts, unitdisk.DefaultOptions())
	h, _ := anneal.NewUDMIS(g, 2.0)
	a, _ := anneal.New(h, anneal.Options{Seed: 7})

	temps, _ := anneal.GeometricSchedule(10.0, 0.05, 2000)
	_, _ = anneal.Run(a, temps, anneal.RunOptions{})
	for i := 0; i < 200; i++ {
		_, _ = a.Step(0) // greedy polish pins the local optimum
	}

	ok, _ := g.IsIndependentSet(a.Configuration())
	fmt.Println("energy:", a.Energy())
	fmt.Println("occupied:", a.Occupied())
	fmt.Println("independent:", ok)

	// Output:
	// energy: -1
	// occupied: 1
	// independent: true
}

////////////////////////////////////////////////////////////////////////////////
// Example: ingesting an external hardware sample
////////////////////////////////////////////////////////////////////////////////

// ExampleParseBitstring shows the reversed index-order convention used when
// comparing against externally produced measurement outcomes: the LAST
// character of the sample is vertex 0.
func ExampleParseBitstring() {
	occ, _ := anneal.ParseBitstring("100", anneal.ReversedOrder)
	fmt.Println(occ)

	// Round-trip under the same order restores the original string.
	fmt.Println(anneal.FormatBitstring(occ, anneal.ReversedOrder))

	// Output:
	// [false false true]
	// 100
}

package closestpair_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/closestpair/closestpair"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleClosest
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Five points; the closest two sit on the diagonal near the origin.
//
// Complexity: O(n log n) time, O(n) memory
func ExampleClosest() {
	pts := []closestpair.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 1, Y: 1}, {X: 5, Y: 5}, {X: 0.5, Y: 0.5}}

	pair, err := closestpair.Closest(pts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("P1=%v P2=%v distance=%.8f\n", pair.A, pair.B, pair.Dist)
	// Output:
	// P1=(0, 0) P2=(0.5, 0.5) distance=0.70710678
}

// ExampleClosest_insufficient shows the sentinel for a single point.
func ExampleClosest_insufficient() {
	pair, err := closestpair.Closest([]closestpair.Point{{X: 1, Y: 1}})
	fmt.Println(errors.Is(err, closestpair.ErrInsufficientPoints), pair.Valid(), pair)
	// Output:
	// true false no pair
}

// ExampleWithOnStrip traces the merge steps of a small collinear set.
func ExampleWithOnStrip() {
	pts := []closestpair.Point{{X: 0}, {X: 2}, {X: 3}, {X: 7}, {X: 8.5}, {X: 12}}

	pair, _ := closestpair.Closest(pts, closestpair.WithOnStrip(func(ev closestpair.StripEvent) {
		fmt.Printf("depth=%d mid=%g delta=%g strip=%v\n", ev.Depth, ev.Mid, ev.Delta, ev.Points)
	}))
	fmt.Println(pair)
	// Output:
	// depth=0 mid=7 delta=1 strip=[(7, 0)]
	// (2, 0)-(3, 0) d=1
}

// ExampleBruteForce compares every pair.
func ExampleBruteForce() {
	pair := closestpair.BruteForce([]closestpair.Point{{X: 0, Y: 0}, {X: 4, Y: 3}, {X: 4, Y: 5}})
	fmt.Println(pair)
	// Output:
	// (4, 3)-(4, 5) d=2
}

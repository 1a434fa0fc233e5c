// Package closestpair is a small, dependency-light toolkit for finding the
// closest pair of points in the plane.
//
// 🚀 What is in the box?
//
//	closestpair/ - the O(n log n) divide-and-conquer solver, brute force,
//	               strip scan, instrumentation hooks & counters
//	pointgen/    - deterministic point-set generators (uniform, grid, line,
//	               column, cluster) for tests, benchmarks and demos
//	pointio/     - "x y" text reader and the fixed-precision result report
//	cmd/closestpair - command-line front end (reads points.txt by default)
//
// ✨ Why this library?
//
//   - Exact: duplicates and points sharing the dividing x are handled by
//     membership partitioning, not by coordinate tie-breaks
//   - Pure Go – no cgo; the solver itself does not log or allocate globals
//   - Observable – OnStrip/OnCompare hooks and Stats for every run
//
// Quick example:
//
//	pair, err := closestpair.Closest([]closestpair.Point{{0, 0}, {3, 4}, {0.5, 0.5}})
//	// pair.A=(0, 0) pair.B=(0.5, 0.5) pair.Dist≈0.7071
//
//	go get github.com/katalvlaran/closestpair
package closestpair

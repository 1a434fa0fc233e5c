// Package closestpair finds the two closest points of a finite 2-D point set
// using the classic divide-and-conquer algorithm.
//
// 🚀 What is the closest-pair problem?
//
//	Given n points in the plane, return the pair (a, b) with the smallest
//	Euclidean distance. The naive answer compares all n·(n-1)/2 pairs; the
//	divide-and-conquer answer sorts once and then only ever looks at a
//	narrow vertical strip when merging two halves. It is used in:
//	  • Collision and proximity checks (sensors, vehicles, particles)
//	  • Duplicate / near-duplicate detection in geometric data
//	  • Clustering seeds and spatial statistics
//
// ✨ Key features:
//   - O(n log n) time: two global sorts, then a recursion that never re-sorts
//   - exact membership partitioning of the y-ordered view, so any number of
//     points sharing the dividing x-coordinate is handled correctly
//   - duplicate points are valid input and yield distance 0
//   - brute-force solver exported for small sets and for cross-checking
//   - instrumentation hooks (OnStrip, OnCompare) and counters (Stats)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/closestpair/closestpair"
//
//	pts := []closestpair.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 0.5, Y: 0.5}}
//	pair, err := closestpair.Closest(pts)
//	if errors.Is(err, closestpair.ErrInsufficientPoints) {
//	  // fewer than two points: pair is NoPair()
//	}
//	fmt.Println(pair.A, pair.B, pair.Dist)
//
// Performance:
//
//   - Time:   O(n log n)
//   - Memory: O(n) live, O(n log n) total allocation across the call tree
//   - Stack:  O(log n) recursion depth
//
// The package does not log and does not panic on valid input; every failure
// is reported through a sentinel error from errors.go.
package closestpair

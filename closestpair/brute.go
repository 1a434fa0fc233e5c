package closestpair

import "math"

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// BruteForce returns the closest pair of points by comparing all
// n·(n-1)/2 unordered pairs.
//
// Tie policy: the first pair (0, 1) seeds the best and any later pair
// replaces it only when strictly closer, so among equally close pairs the
// one with the lexicographically smallest (i, j) index is returned. This
// holds even when every distance overflows to +Inf. Fewer than two points
// yield NoPair().
//
// Complexity: O(n²) time, O(1) extra memory.
func BruteForce(points []Point) Pair {
	best := NoPair()
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d := Distance(points[i], points[j])
			if !best.valid || d < best.Dist {
				best = Pair{A: points[i], B: points[j], Dist: d, valid: true}
			}
		}
	}
	return best
}

// bruteForce is BruteForce over a ranked slice, counting comparisons.
func (s *solver) bruteForce(points []ranked) Pair {
	best := NoPair()
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d := Distance(points[i].Point, points[j].Point)
			s.stats.Comparisons++
			if !best.valid || d < best.Dist {
				best = Pair{A: points[i].Point, B: points[j].Point, Dist: d, valid: true}
			}
		}
	}
	return best
}

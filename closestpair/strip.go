package closestpair

// Strip scans a y-sorted band of points for a pair closer than delta.
//
// Description:
//
//	strip must be sorted by Y (ties by X) and contain only points whose
//	horizontal distance to the dividing line is below delta. For each
//	point i the scan walks forward while strip[j].Y - strip[i].Y is strictly
//	below the current best; by the δ×2δ packing argument that is a small
//	constant number of neighbours. A strictly smaller distance tightens the
//	bound immediately.
//
// Returns:
//   - the best pair found, when some distance is strictly below delta;
//   - otherwise an invalid Pair{Dist: delta} with zero points, meaning
//     "no improvement". Callers must only adopt the result when it is Valid.
//
// Complexity: O(len(strip)) time for a valid strip, O(1) extra memory.
func Strip(strip []Point, delta float64) Pair {
	return scanStrip(strip, delta, nil)
}

// scanStrip is Strip with an optional per-comparison callback.
func scanStrip(strip []Point, delta float64, onCompare func(p, q Point, d float64)) Pair {
	best := Pair{Dist: delta}
	n := len(strip)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if strip[j].Y-strip[i].Y >= best.Dist {
				break
			}
			d := Distance(strip[i], strip[j])
			if onCompare != nil {
				onCompare(strip[i], strip[j], d)
			}
			if d < best.Dist {
				best = Pair{A: strip[i], B: strip[j], Dist: d, valid: true}
			}
		}
	}
	return best
}

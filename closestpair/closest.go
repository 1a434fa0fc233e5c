package closestpair

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// solver carries the options and counters of one Closest call.
type solver struct {
	opts    Options
	stats   Stats
	scratch []Point // strip buffer, reused by every level once its children return
	compare func(p, q Point, d float64)
}

// Closest returns the closest pair among points using divide and conquer.
//
// Algorithm Outline:
//  1. Sort a copy of points by (X, Y) into Px and tag each point with its
//     index in Px (its rank). Sort another copy by (Y, X) into Py.
//  2. recurse(Px, Py):
//     n <= BaseCaseSize → BruteForce.
//     Otherwise split Px at mid = n/2; Mx = Px[mid].X is the dividing line.
//     Split Py by membership: a point goes left iff its rank is below the
//     rank of Px[mid]. Px covers a contiguous rank range at every level, so
//     this reproduces the x-split exactly, duplicates included.
//     Recurse on both halves; best = closer half (left wins ties);
//     collect the strip |p.X - Mx| < best.Dist from Py and scan it.
//  3. Return the best pair.
//
// Errors:
//   - ErrInsufficientPoints - fewer than two points; the Pair is NoPair().
//   - ErrNonFinite          - some coordinate is NaN or ±Inf.
//   - ErrOptionViolation    - an invalid Option was supplied.
//
// Complexity:
//
//	Time   = O(n log n)
//	Memory = O(n) live, O(n log n) allocated over the whole call tree
//
// points is not modified.
func Closest(points []Point, opts ...Option) (Pair, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return NoPair(), o.err
	}
	if len(points) < 2 {
		return NoPair(), ErrInsufficientPoints
	}
	for i, p := range points {
		if !p.finite() {
			return NoPair(), fmt.Errorf("%w: point %d is %v", ErrNonFinite, i, p)
		}
	}

	n := len(points)
	px := make([]ranked, n)
	for i, p := range points {
		px[i] = ranked{Point: p}
	}
	slices.SortFunc(px, func(a, b ranked) int { return byXY(a.Point, b.Point) })
	for i := range px {
		px[i].rank = i
	}
	py := slices.Clone(px)
	slices.SortFunc(py, func(a, b ranked) int { return byYX(a.Point, b.Point) })

	s := &solver{
		opts:    o,
		scratch: make([]Point, 0, n),
	}
	s.compare = func(p, q Point, d float64) {
		s.stats.Comparisons++
		s.stats.StripComparisons++
		s.opts.OnCompare(p, q, d)
	}

	best := s.recurse(px, py, 0)
	if o.Stats != nil {
		*o.Stats = s.stats
	}
	return best, nil
}

// ClosestPair is Closest for callers that only care about the sentinel:
// it returns NoPair() when fewer than two points are given and never errors
// on finite input. Non-finite input also yields NoPair().
func ClosestPair(points []Point) Pair {
	best, err := Closest(points)
	if err != nil {
		return NoPair()
	}
	return best
}

// recurse solves the subproblem whose x-ordered view is px and whose
// y-ordered view is py. Both views hold the same points.
func (s *solver) recurse(px, py []ranked, depth int) Pair {
	if depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}
	n := len(px)
	if n <= s.opts.BaseCaseSize {
		s.stats.BaseCases++
		return s.bruteForce(px)
	}

	mid := n / 2
	split := px[mid]
	xl, xr := px[:mid], px[mid:]

	yl, yr := splitByRank(py, split.rank, len(xl))

	left := s.recurse(xl, yl, depth+1)
	right := s.recurse(xr, yr, depth+1)
	best := closer(left, right)
	delta := best.Dist

	strip := s.scratch[:0]
	for _, p := range py {
		if math.Abs(p.X-split.X) < delta {
			strip = append(strip, p.Point)
		}
	}
	s.stats.Merges++
	s.opts.OnStrip(StripEvent{
		Depth:  depth,
		Size:   n,
		Mid:    split.X,
		Delta:  delta,
		Points: strip,
	})

	if cand := scanStrip(strip, delta, s.compare); cand.Valid() {
		best = cand
	}
	return best
}

// splitByRank partitions the y-ordered view py into the points ranked below
// pivot and the rest, preserving y-order in both. nLeft sizes the left slice.
func splitByRank(py []ranked, pivot, nLeft int) (yl, yr []ranked) {
	yl = make([]ranked, 0, nLeft)
	yr = make([]ranked, 0, len(py)-nLeft)
	for _, p := range py {
		if p.rank < pivot {
			yl = append(yl, p)
		} else {
			yr = append(yr, p)
		}
	}
	return yl, yr
}

// byXY orders points by X, then Y.
func byXY(a, b Point) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// byYX orders points by Y, then X.
func byYX(a, b Point) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

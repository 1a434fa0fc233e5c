package closestpair

import (
	"fmt"
	"math"
)

// Point is an immutable 2-D point. Two points with equal coordinates are
// indistinguishable; duplicates are valid input.
type Point struct {
	X float64
	Y float64
}

// String renders p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// finite reports whether both coordinates are neither NaN nor ±Inf.
func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Pair is a candidate closest pair: two points and the distance between them.
//
// Invariant: for every valid Pair, Dist == Distance(A, B). Dist may be +Inf
// for two finite points whose distance overflows float64; such a pair is
// still valid. Use NewPair to build one; NoPair is the only Pair whose points
// carry no meaning.
type Pair struct {
	A    Point
	B    Point
	Dist float64

	valid bool
}

// NewPair returns the pair (a, b) with its Euclidean distance.
func NewPair(a, b Point) Pair {
	return Pair{A: a, B: b, Dist: Distance(a, b), valid: true}
}

// NoPair returns the "insufficient input" sentinel: zero points, Dist = +Inf.
func NoPair() Pair {
	return Pair{Dist: math.Inf(1)}
}

// Valid reports whether p describes a real pair, i.e. it is not NoPair().
func (p Pair) Valid() bool {
	return p.valid
}

// closer returns the closer of a and b; a wins ties and invalid pairs lose.
func closer(a, b Pair) Pair {
	if !a.valid || (b.valid && b.Dist < a.Dist) {
		return b
	}
	return a
}

// String renders p as "(ax, ay)-(bx, by) d=dist" or "no pair".
func (p Pair) String() string {
	if !p.Valid() {
		return "no pair"
	}
	return fmt.Sprintf("%v-%v d=%g", p.A, p.B, p.Dist)
}

// ranked is a point tagged with its position in the global x-order.
// The rank makes every point distinct, so the y-ordered view can be split by
// membership in the x-ordered halves even when coordinates repeat.
type ranked struct {
	Point
	rank int
}

// StripEvent describes one merge step of the recursion.
//
// Points is the strip in y-order; it aliases an internal scratch buffer and is
// only valid for the duration of the callback. Copy it to retain it.
type StripEvent struct {
	Depth  int     // recursion depth, 0 at the top-level call
	Size   int     // number of points in the subproblem
	Mid    float64 // x-coordinate of the dividing line
	Delta  float64 // best distance of the two halves, before the strip scan
	Points []Point // strip members, |p.X-Mid| < Delta, sorted by (Y, X)
}

// Stats collects counters from one Closest call.
type Stats struct {
	// Comparisons counts every distance evaluation (base cases and strips).
	Comparisons int
	// StripComparisons counts distance evaluations inside strip scans only.
	StripComparisons int
	// BaseCases counts brute-force leaves of the recursion.
	BaseCases int
	// Merges counts recursive (non-leaf) calls, i.e. strip scans.
	Merges int
	// MaxDepth is the deepest recursion level reached (0 for a single leaf).
	MaxDepth int
}

package closestpair_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/closestpair/closestpair"
)

const (
	// relTol is the relative tolerance for comparing distances from
	// different solvers.
	relTol = 1e-9

	// seedDet is the deterministic seed used by randomized tests.
	seedDet = int64(20240917)
)

// randomPoints returns n points with coordinates in [-scale, scale).
func randomPoints(r *rand.Rand, n int, scale float64) []closestpair.Point {
	pts := make([]closestpair.Point, n)
	for i := range pts {
		pts[i] = closestpair.Point{
			X: (r.Float64()*2 - 1) * scale,
			Y: (r.Float64()*2 - 1) * scale,
		}
	}
	return pts
}

// latticePoints returns n points with small integer coordinates in
// [0, k)×[0, k), so repeated x values and coincident points are frequent.
func latticePoints(r *rand.Rand, n, k int) []closestpair.Point {
	pts := make([]closestpair.Point, n)
	for i := range pts {
		pts[i] = closestpair.Point{X: float64(r.Intn(k)), Y: float64(r.Intn(k))}
	}
	return pts
}

// assertSameDist checks got against want within relTol (absolute near 0).
func assertSameDist(t *testing.T, want, got float64, msgAndArgs ...any) {
	t.Helper()
	tol := relTol * math.Max(1, math.Abs(want))
	assert.InDelta(t, want, got, tol, msgAndArgs...)
}

// assertConsistent checks the Pair invariant Dist == Distance(A, B).
func assertConsistent(t *testing.T, p closestpair.Pair) {
	t.Helper()
	assert.True(t, p.Valid(), "pair must not be the sentinel")
	assert.Equal(t, closestpair.Distance(p.A, p.B), p.Dist, "Dist must be derived from A and B")
}

// contains reports whether pt occurs in pts.
func contains(pts []closestpair.Point, pt closestpair.Point) bool {
	for _, p := range pts {
		if p == pt {
			return true
		}
	}
	return false
}

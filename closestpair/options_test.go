package closestpair_test

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/closestpair/closestpair"
)

// TestOptions_Violations checks invalid options surface ErrOptionViolation.
func TestOptions_Violations(t *testing.T) {
	pts := []closestpair.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}

	_, err := closestpair.Closest(pts, closestpair.WithBaseCaseSize(1))
	assert.ErrorIs(t, err, closestpair.ErrOptionViolation)

	_, err = closestpair.Closest(pts, closestpair.WithStats(nil))
	assert.ErrorIs(t, err, closestpair.ErrOptionViolation)

	// nil hooks are ignored
	_, err = closestpair.Closest(pts, closestpair.WithOnStrip(nil), closestpair.WithOnCompare(nil))
	assert.NoError(t, err)
}

// TestOptions_BaseCaseSize checks any cutoff gives the brute-force answer.
func TestOptions_BaseCaseSize(t *testing.T) {
	r := rand.New(rand.NewSource(seedDet))
	pts := latticePoints(r, 400, 50)
	want := closestpair.BruteForce(pts).Dist

	for _, k := range []int{2, 3, 5, 16, 64, 1000} {
		var st closestpair.Stats
		pair, err := closestpair.Closest(pts, closestpair.WithBaseCaseSize(k), closestpair.WithStats(&st))
		require.NoError(t, err, "k=%d", k)
		assertSameDist(t, want, pair.Dist, "k=%d", k)
		if k >= len(pts) {
			assert.Equal(t, 0, st.Merges, "k=%d: single leaf", k)
			assert.Equal(t, 1, st.BaseCases)
		}
	}
}

// TestOptions_StripBand instruments every merge step: strip members lie
// strictly inside (Mid-Delta, Mid+Delta), are in (Y, X) order, and every
// strip comparison involves only strip members.
func TestOptions_StripBand(t *testing.T) {
	r := rand.New(rand.NewSource(seedDet))
	sets := map[string][]closestpair.Point{
		"random":  randomPoints(r, 1500, 1000),
		"lattice": latticePoints(r, 800, 40),
	}

	for name, pts := range sets {
		t.Run(name, func(t *testing.T) {
			var (
				cur    closestpair.StripEvent
				events int
				checks int
			)
			onStrip := func(ev closestpair.StripEvent) {
				events++
				cur = ev
				cur.Points = slices.Clone(ev.Points)
				for _, p := range ev.Points {
					assert.Less(t, math.Abs(p.X-ev.Mid), ev.Delta, "strip member outside band")
				}
				assert.True(t, slices.IsSortedFunc(ev.Points, func(a, b closestpair.Point) int {
					if c := cmp.Compare(a.Y, b.Y); c != 0 {
						return c
					}
					return cmp.Compare(a.X, b.X)
				}), "strip must be in y-order")

				if ev.Depth == 0 {
					in := 0
					for _, p := range pts {
						if math.Abs(p.X-ev.Mid) < ev.Delta {
							in++
						}
					}
					assert.Equal(t, in, len(ev.Points), "top-level strip must be exactly the band")
					assert.Equal(t, len(pts), ev.Size)
				}
			}
			onCompare := func(p, q closestpair.Point, d float64) {
				checks++
				assert.Less(t, math.Abs(p.X-cur.Mid), cur.Delta)
				assert.Less(t, math.Abs(q.X-cur.Mid), cur.Delta)
				assert.True(t, contains(cur.Points, p) && contains(cur.Points, q))
				assert.Equal(t, closestpair.Distance(p, q), d)
			}

			var st closestpair.Stats
			pair, err := closestpair.Closest(pts,
				closestpair.WithOnStrip(onStrip),
				closestpair.WithOnCompare(onCompare),
				closestpair.WithStats(&st),
			)
			require.NoError(t, err)
			assertSameDist(t, closestpair.BruteForce(pts).Dist, pair.Dist)
			assert.Equal(t, st.Merges, events)
			assert.Equal(t, st.StripComparisons, checks)
		})
	}
}

// TestStats_Counters checks the recursion shape and that the divide-and-
// conquer solver does far fewer comparisons than brute force.
func TestStats_Counters(t *testing.T) {
	r := rand.New(rand.NewSource(seedDet))
	n := 2000
	pts := randomPoints(r, n, 1e5)

	var st closestpair.Stats
	_, err := closestpair.Closest(pts, closestpair.WithStats(&st))
	require.NoError(t, err)

	assert.Equal(t, st.Merges+1, st.BaseCases, "binary recursion: leaves = merges + 1")
	assert.LessOrEqual(t, st.StripComparisons, st.Comparisons)
	assert.Less(t, st.Comparisons, n*(n-1)/20)
	assert.GreaterOrEqual(t, st.MaxDepth, int(math.Log2(float64(n)/closestpair.DefaultBaseCaseSize)))
	assert.LessOrEqual(t, st.MaxDepth, int(math.Ceil(math.Log2(float64(n)))))
}

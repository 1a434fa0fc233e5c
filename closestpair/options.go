package closestpair

import "fmt"

// DefaultBaseCaseSize is the subproblem size at or below which the recursion
// switches to brute force.
const DefaultBaseCaseSize = 3

// Option configures Closest via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Closest is invoked.
type Option func(*Options)

// Options holds tunables and callbacks for one Closest call.
type Options struct {
	// BaseCaseSize is the brute-force cutoff. Must be >= 2.
	BaseCaseSize int

	// OnStrip is called once per merge step, after both halves are solved
	// and before the strip is scanned.
	OnStrip func(ev StripEvent)

	// OnCompare is called for every distance evaluated inside a strip scan.
	OnCompare func(p, q Point, d float64)

	// Stats, if non-nil, receives the counters of the call.
	Stats *Stats

	err error
}

// DefaultOptions returns Options with:
//   - BaseCaseSize = DefaultBaseCaseSize
//   - no-op hooks
//   - no stats sink.
func DefaultOptions() Options {
	return Options{
		BaseCaseSize: DefaultBaseCaseSize,
		OnStrip:      func(StripEvent) {},
		OnCompare:    func(Point, Point, float64) {},
	}
}

// WithBaseCaseSize sets the brute-force cutoff.
//
//	k >= 2: recurse only while the subproblem has more than k points
//	k <  2: invalid option → ErrOptionViolation
func WithBaseCaseSize(k int) Option {
	return func(o *Options) {
		if k < 2 {
			o.err = fmt.Errorf("%w: BaseCaseSize must be >= 2 (%d)", ErrOptionViolation, k)
			return
		}
		o.BaseCaseSize = k
	}
}

// WithOnStrip registers a callback invoked at every merge step.
func WithOnStrip(fn func(ev StripEvent)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStrip = fn
		}
	}
}

// WithOnCompare registers a callback invoked for every strip comparison.
func WithOnCompare(fn func(p, q Point, d float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCompare = fn
		}
	}
}

// WithStats makes Closest write its counters into st.
// A nil st is an option violation.
func WithStats(st *Stats) Option {
	return func(o *Options) {
		if st == nil {
			o.err = fmt.Errorf("%w: Stats sink is nil", ErrOptionViolation)
			return
		}
		o.Stats = st
	}
}

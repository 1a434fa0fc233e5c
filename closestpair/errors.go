package closestpair

import "errors"

var (
	// ErrInsufficientPoints indicates fewer than two points were supplied.
	// The accompanying Pair is always NoPair().
	ErrInsufficientPoints = errors.New("closestpair: need at least two points")
	// ErrNonFinite indicates a point with a NaN or infinite coordinate.
	ErrNonFinite = errors.New("closestpair: point coordinates must be finite")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("closestpair: invalid option supplied")
)

package pointio

import (
	"errors"
	"fmt"
)

var (
	// ErrOpen indicates the points file could not be opened.
	ErrOpen = errors.New("pointio: cannot open points file")
	// ErrSyntax indicates a token that is not a decimal number.
	ErrSyntax = errors.New("pointio: malformed coordinate")
	// ErrOddCoordinate indicates the input ended with an x lacking its y.
	ErrOddCoordinate = errors.New("pointio: dangling x coordinate without y")
)

// ParseError reports a malformed token and where it was found.
// It matches both ErrSyntax and the underlying strconv error under errors.Is.
type ParseError struct {
	Line  int    // 1-based line number
	Token string // offending text
	Err   error  // underlying strconv error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pointio: line %d: malformed coordinate %q: %v", e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrSyntax, e.Err}
}

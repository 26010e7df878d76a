package balltree

import "errors"

// Sentinel errors returned by this package. Use errors.Is to test for them;
// validation failures in New, Query and QueryParallel wrap these with
// additional context via fmt.Errorf("balltree: ...: %w", ...), while
// ErrNotBuilt and ErrAlreadyBuilt are returned unwrapped.
var (
	// ErrEmptyInput is returned when construction is attempted with N = 0 points.
	ErrEmptyInput = errors.New("balltree: empty input")

	// ErrInvalidK is returned when k <= 0 or k > N.
	ErrInvalidK = errors.New("balltree: invalid k")

	// ErrShapeMismatch is returned when a query's dimensionality does not
	// match the indexed dimensionality.
	ErrShapeMismatch = errors.New("balltree: shape mismatch")

	// ErrNotBuilt is returned when Query is called before Build.
	ErrNotBuilt = errors.New("balltree: index not built")

	// ErrAlreadyBuilt is returned when Build is called more than once.
	ErrAlreadyBuilt = errors.New("balltree: index already built")

	// ErrInvalidLeafSize is returned when leafSize <= 0.
	ErrInvalidLeafSize = errors.New("balltree: invalid leaf size")
)

package clustergo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when a caller-supplied parameter is out
	// of range: k outside [1, n], an empty dataset, or mismatched dimensions.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDegenerateInput is returned when a metric is undefined for the given
	// clustering, e.g. a silhouette score for K=1 or K=n. Callers typically
	// skip the metric point rather than abort.
	ErrDegenerateInput = errors.New("degenerate input")
)

// DimensionMismatchError indicates a row/centroid dimensionality mismatch.
//
// It unwraps to ErrInvalidParameter so callers can match the whole
// invalid-parameter family with errors.Is.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrInvalidParameter }

package econ

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidHorizon indicates a non-positive simulation horizon.
	ErrInvalidHorizon = errors.New("econ: horizon must be a positive number of periods")

	// ErrInvalidPath indicates a NaN or Inf capital value was produced.
	ErrInvalidPath = errors.New("econ: invalid capital value (NaN or Inf detected)")
)

// PathError wraps an error with the period at which it occurred.
type PathError struct {
	Period  int
	Capital float64
	Wrapped error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("period %d (k=%v): %s", e.Period, e.Capital, e.Wrapped)
}

func (e *PathError) Unwrap() error {
	return e.Wrapped
}

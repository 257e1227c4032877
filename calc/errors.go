package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned when a Function is evaluated outside of its domain.
	ErrDomain = errors.New("calc: input outside of function domain")

	// ErrDegenerateGeometry is returned by operations that have no
	// meaningful result for their inputs, such as normalizing a zero-length
	// vector or inverting a singular matrix.
	ErrDegenerateGeometry = errors.New("calc: degenerate geometry")

	// ErrOverlappingSegments is returned when the segments of a
	// [PiecewiseFunction] have overlapping ranges.
	ErrOverlappingSegments = errors.New("calc: overlapping piecewise segments")

	// ErrFractionOverflow is returned when the result of a [Fraction]
	// operation cannot be represented with a 64-bit numerator.
	ErrFractionOverflow = errors.New("calc: fraction overflows int64")

	ErrInvalidRange      = errors.New("calc: lower bound greater than upper bound")
	ErrZeroDenominator   = errors.New("calc: zero denominator")
	ErrDimensionMismatch = errors.New("calc: matrix dimension mismatch")
	ErrUnsupportedDegree = errors.New("calc: unsupported polynomial degree")
	ErrNoSignChange      = errors.New("calc: function does not change sign over interval")
)

// DomainError describes an evaluation outside of a function's domain.
type DomainError struct {
	Input  float64
	Domain Range
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("calc: %g is outside of domain %s", e.Input, e.Domain)
}

func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

func checkDomain(x float64, r Range) error {
	if !r.Contains(x) {
		return &DomainError{Input: x, Domain: r}
	}
	return nil
}

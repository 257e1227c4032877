package calc

import (
	"fmt"
	"math"
)

// Range is an interval of real numbers. Each bound is independently
// inclusive or exclusive. A Range with Lower > Upper is invalid; use
// [NewRange] to construct ranges from untrusted input.
//
// The zero value is the degenerate closed interval [0, 0].
type Range struct {
	Lower float64
	Upper float64
	// LowerOpen excludes Lower from the range.
	LowerOpen bool
	// UpperOpen excludes Upper from the range.
	UpperOpen bool
}

// NewRange returns the range between lower and upper with the given
// inclusivity. It fails if lower > upper or either bound is NaN.
func NewRange(lower, upper float64, lowerInclusive, upperInclusive bool) (Range, error) {
	if math.IsNaN(lower) || math.IsNaN(upper) || lower > upper {
		return Range{}, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, lower, upper)
	}
	return Range{
		Lower:     lower,
		Upper:     upper,
		LowerOpen: !lowerInclusive,
		UpperOpen: !upperInclusive,
	}, nil
}

// Closed returns [lower, upper].
func Closed(lower, upper float64) Range {
	return Range{Lower: lower, Upper: upper}
}

// ClosedOpen returns [lower, upper).
func ClosedOpen(lower, upper float64) Range {
	return Range{Lower: lower, Upper: upper, UpperOpen: true}
}

// OpenClosed returns (lower, upper].
func OpenClosed(lower, upper float64) Range {
	return Range{Lower: lower, Upper: upper, LowerOpen: true}
}

// Open returns (lower, upper).
func Open(lower, upper float64) Range {
	return Range{Lower: lower, Upper: upper, LowerOpen: true, UpperOpen: true}
}

// All returns the range containing every real number.
func All() Range {
	return Open(math.Inf(-1), math.Inf(1))
}

func (r Range) String() string {
	lb, ub := "[", "]"
	if r.LowerOpen {
		lb = "("
	}
	if r.UpperOpen {
		ub = ")"
	}
	return fmt.Sprintf("%s%g, %g%s", lb, r.Lower, r.Upper, ub)
}

// Contains reports whether x lies in the range.
func (r Range) Contains(x float64) bool {
	if x < r.Lower || (r.LowerOpen && x == r.Lower) {
		return false
	}
	if x > r.Upper || (r.UpperOpen && x == r.Upper) {
		return false
	}
	return true
}

// IsEmpty reports whether no number lies in the range.
func (r Range) IsEmpty() bool {
	return r.Lower > r.Upper || (r.Lower == r.Upper && (r.LowerOpen || r.UpperOpen))
}

// IsFinite reports whether both bounds are finite.
func (r Range) IsFinite() bool {
	return !math.IsInf(r.Lower, 0) && !math.IsInf(r.Upper, 0)
}

// Length returns Upper - Lower.
func (r Range) Length() float64 {
	return r.Upper - r.Lower
}

// Clamp returns the number in [Lower, Upper] nearest to x. Bounds are
// returned as-is even when they are exclusive.
func (r Range) Clamp(x float64) float64 {
	return min(max(x, r.Lower), r.Upper)
}

// Overlaps reports whether at least one number lies in both ranges.
func (r Range) Overlaps(o Range) bool {
	return !r.intersect(o).IsEmpty()
}

func (r Range) intersect(o Range) Range {
	out := r
	if o.Lower > out.Lower {
		out.Lower, out.LowerOpen = o.Lower, o.LowerOpen
	} else if o.Lower == out.Lower {
		out.LowerOpen = out.LowerOpen || o.LowerOpen
	}
	if o.Upper < out.Upper {
		out.Upper, out.UpperOpen = o.Upper, o.UpperOpen
	} else if o.Upper == out.Upper {
		out.UpperOpen = out.UpperOpen || o.UpperOpen
	}
	return out
}

// Hull returns the smallest range containing both r and o.
func (r Range) Hull(o Range) Range {
	out := r
	if o.Lower < out.Lower {
		out.Lower, out.LowerOpen = o.Lower, o.LowerOpen
	} else if o.Lower == out.Lower {
		out.LowerOpen = out.LowerOpen && o.LowerOpen
	}
	if o.Upper > out.Upper {
		out.Upper, out.UpperOpen = o.Upper, o.UpperOpen
	} else if o.Upper == out.Upper {
		out.UpperOpen = out.UpperOpen && o.UpperOpen
	}
	return out
}

// IndexOf returns the index of the first range that contains x, or -1.
func IndexOf(ranges []Range, x float64) int {
	for i, r := range ranges {
		if r.Contains(x) {
			return i
		}
	}
	return -1
}

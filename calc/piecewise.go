package calc

import (
	"fmt"
	"slices"
)

// Segment is one piece of a [PiecewiseFunction]: Func applies to inputs
// within Range.
type Segment struct {
	Range Range
	Func  Function
}

// PiecewiseFunction is a function made of segments with non-overlapping
// ranges, kept sorted by lower bound. Inputs on a boundary belong to the
// segment whose range includes them.
type PiecewiseFunction struct {
	segments []Segment
}

// NewPiecewiseFunction returns a piecewise function of the given segments. It
// fails with [ErrOverlappingSegments] if any two ranges overlap.
func NewPiecewiseFunction(segments ...Segment) (*PiecewiseFunction, error) {
	pw := &PiecewiseFunction{}
	for _, seg := range segments {
		if err := pw.Add(seg); err != nil {
			return nil, err
		}
	}
	return pw, nil
}

// Add inserts a segment, keeping segments sorted by lower bound.
func (pw *PiecewiseFunction) Add(seg Segment) error {
	if seg.Func == nil {
		return fmt.Errorf("calc: segment %s has no function", seg.Range)
	}
	if seg.Range.IsEmpty() {
		return fmt.Errorf("%w: empty segment %s", ErrInvalidRange, seg.Range)
	}
	for _, other := range pw.segments {
		if other.Range.Overlaps(seg.Range) {
			return fmt.Errorf("%w: %s and %s", ErrOverlappingSegments, other.Range, seg.Range)
		}
	}
	i, _ := slices.BinarySearchFunc(pw.segments, seg, func(a, b Segment) int {
		switch {
		case a.Range.Lower < b.Range.Lower:
			return -1
		case a.Range.Lower > b.Range.Lower:
			return 1
		default:
			return 0
		}
	})
	pw.segments = slices.Insert(pw.segments, i, seg)
	return nil
}

// Segments returns a copy of the segments in order.
func (pw *PiecewiseFunction) Segments() []Segment {
	return slices.Clone(pw.segments)
}

// Len returns the number of segments.
func (pw *PiecewiseFunction) Len() int {
	return len(pw.segments)
}

// Domain returns the smallest range covering all segments. Gaps between
// segments are part of the returned range but cannot be evaluated.
func (pw *PiecewiseFunction) Domain() Range {
	if len(pw.segments) == 0 {
		return Open(0, 0)
	}
	d := pw.segments[0].Range
	for _, seg := range pw.segments[1:] {
		d = d.Hull(seg.Range)
	}
	return d
}

// Segment returns the index of the segment containing x, or -1.
func (pw *PiecewiseFunction) Segment(x float64) int {
	for i, seg := range pw.segments {
		if seg.Range.Contains(x) {
			return i
		}
	}
	return -1
}

func (pw *PiecewiseFunction) Eval(x float64) (float64, error) {
	i := pw.Segment(x)
	if i < 0 {
		return 0, &DomainError{Input: x, Domain: pw.Domain()}
	}
	return pw.segments[i].Func.Eval(x)
}

// mapSegments builds a new piecewise function by transforming each segment's
// function.
func (pw *PiecewiseFunction) mapSegments(fn func(Segment) Function) *PiecewiseFunction {
	out := &PiecewiseFunction{segments: make([]Segment, len(pw.segments))}
	for i, seg := range pw.segments {
		out.segments[i] = Segment{Range: seg.Range, Func: fn(seg)}
	}
	return out
}

package calc

import "fmt"

// LinearInterpolation is the straight-line function through the two end
// points of Line. Its domain is the x extent of the line, unless Extrapolate
// is set, in which case it is defined for all reals.
type LinearInterpolation struct {
	Line        Line
	Extrapolate bool
}

// NewLinearInterpolation returns the function through p0 and p1. It fails with
// [ErrDegenerateGeometry] if both points have the same x coordinate.
func NewLinearInterpolation(p0, p1 Point, extrapolate bool) (LinearInterpolation, error) {
	l := Line{P0: p0, P1: p1}
	if l.IsVertical() {
		return LinearInterpolation{}, fmt.Errorf("interpolating %s and %s: %w", p0, p1, ErrDegenerateGeometry)
	}
	return LinearInterpolation{Line: l, Extrapolate: extrapolate}, nil
}

func (li LinearInterpolation) Domain() Range {
	if li.Extrapolate {
		return All()
	}
	return li.Line.XRange()
}

func (li LinearInterpolation) Eval(x float64) (float64, error) {
	if err := checkDomain(x, li.Domain()); err != nil {
		return 0, err
	}
	p := li.Polynomial()
	return p.eval(x), nil
}

// Polynomial returns the line as a degree one polynomial restricted to the
// interpolation's domain.
func (li LinearInterpolation) Polynomial() Polynomial {
	m, err := li.Line.Slope()
	if err != nil {
		// Only reachable for values not built by NewLinearInterpolation.
		return NewPolynomial().Restrict(Open(0, 0))
	}
	b := li.Line.P0.Y - m*li.Line.P0.X
	return NewPolynomial(b, m).Restrict(li.Domain())
}

// Polyline returns a piecewise linear function through the given points,
// whose x coordinates must be strictly increasing. Each segment covers
// [x_i, x_i+1), except the last, which also includes its end point.
func Polyline(points ...Point) (*PiecewiseFunction, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("polyline needs at least 2 points, got %d: %w", len(points), ErrDegenerateGeometry)
	}
	pw := &PiecewiseFunction{}
	for i := range len(points) - 1 {
		p0, p1 := points[i], points[i+1]
		if p1.X <= p0.X {
			return nil, fmt.Errorf("%w: polyline x coordinates must increase, got %g then %g", ErrInvalidRange, p0.X, p1.X)
		}
		li, err := NewLinearInterpolation(p0, p1, false)
		if err != nil {
			return nil, err
		}
		r := ClosedOpen(p0.X, p1.X)
		if i == len(points)-2 {
			r = Closed(p0.X, p1.X)
		}
		if err := pw.Add(Segment{Range: r, Func: li}); err != nil {
			return nil, err
		}
	}
	return pw, nil
}

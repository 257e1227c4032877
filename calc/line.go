package calc

import (
	"fmt"
	"math"
)

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// IsVertical reports whether both end points share an x coordinate.
func (l Line) IsVertical() bool {
	return l.P0.X == l.P1.X
}

// Slope returns dy/dx. It fails with [ErrDegenerateGeometry] for vertical
// lines.
func (l Line) Slope() (float64, error) {
	if l.IsVertical() {
		return 0, fmt.Errorf("slope of vertical line %s–%s: %w", l.P0, l.P1, ErrDegenerateGeometry)
	}
	return (l.P1.Y - l.P0.Y) / (l.P1.X - l.P0.X), nil
}

// YIntercept returns the y value at which the infinite extension of the line
// crosses x = 0.
func (l Line) YIntercept() (float64, error) {
	m, err := l.Slope()
	if err != nil {
		return 0, err
	}
	return l.P0.Y - m*l.P0.X, nil
}

// XRange returns the closed range of x values spanned by the line.
func (l Line) XRange() Range {
	return Closed(min(l.P0.X, l.P1.X), max(l.P0.X, l.P1.X))
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// Eval returns the point at parameter t, where t = 0 is P0 and t = 1 is P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Midpoint returns the point halfway along the line.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

// Nearest finds the point on the line nearest to pt, returning the squared
// distance and the parameter of that point.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// LineIntersection describes where two line segments cross.
type LineIntersection struct {
	// The parameter of the intersection on the receiver, in [0, 1].
	T float64
	// The parameter of the intersection on the other line, in [0, 1].
	U float64
}

// Intersect finds the intersection of two line segments. Parallel and
// coincident lines never intersect.
func (l Line) Intersect(o Line) (LineIntersection, bool) {
	const epsilon = 1e-9
	p0 := o.P0
	p1 := o.P1
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	det := dx*(l.P1.Y-l.P0.Y) - dy*(l.P1.X-l.P0.X)
	if math.Abs(det) < epsilon {
		// Lines are coincident (or nearly so).
		return LineIntersection{}, false
	}
	// position on l
	t := (dx*(p0.Y-l.P0.Y) - dy*(p0.X-l.P0.X)) / det
	if t >= -epsilon && t <= 1+epsilon {
		// position on o
		u := ((l.P0.X-p0.X)*(l.P1.Y-l.P0.Y) - (l.P0.Y-p0.Y)*(l.P1.X-l.P0.X)) / det
		if u >= 0.0 && u <= 1.0 {
			return LineIntersection{T: t, U: u}, true
		}
	}
	return LineIntersection{}, false
}

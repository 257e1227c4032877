package calc

import (
	"fmt"
	"math"
)

// Point is a position in the plane that paths move through. Displacements
// between points are [Vec2] values.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns pt moved by o.
func (pt Point) Translate(o Vec2) Point {
	return Point{X: pt.X + o.X, Y: pt.Y + o.Y}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub returns the displacement that moves o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{X: pt.X - o.X, Y: pt.Y - o.Y}
}

// Lerp returns the point a fraction t of the way from pt to o.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

func (pt Point) Midpoint(o Point) Point {
	return pt.Lerp(o, 0.5)
}

func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// Near reports whether pt and o are at most eps apart.
func (pt Point) Near(o Point, eps float64) bool {
	return pt.Distance(o) <= eps
}

// MoveTowards returns the point reached by moving from pt straight towards
// target by at most maxDist. It stops at target instead of overshooting it,
// and stays put for a non-positive maxDist.
func (pt Point) MoveTowards(target Point, maxDist float64) Point {
	d := target.Sub(pt)
	dist := d.Hypot()
	if dist <= maxDist {
		return target
	}
	if !(maxDist > 0) {
		return pt
	}
	return pt.Translate(d.Mul(maxDist / dist))
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

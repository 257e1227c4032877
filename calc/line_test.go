package calc

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	want := math.Sqrt(2.0)
	epsilon := 1e-9
	if d := math.Abs(l.Length() - want); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}
	diff(t, Pt(0.5, 0.5), l.Midpoint())
}

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(0.0, math.Inf(1))}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}

func TestLineSlope(t *testing.T) {
	l := Line{Pt(1, 3), Pt(3, 7)}
	m, err := l.Slope()
	require.NoError(t, err)
	diff(t, 2.0, m)
	b, err := l.YIntercept()
	require.NoError(t, err)
	diff(t, 1.0, b)
	diff(t, Closed(1, 3), Line{Pt(3, 7), Pt(1, 3)}.XRange())

	_, err = Line{Pt(1, 0), Pt(1, 5)}.Slope()
	require.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestIntersectLine(t *testing.T) {
	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	vLine := Line{Pt(10.0, -10.0), Pt(10.0, 10.0)}
	x, ok := hLine.Intersect(vLine)
	require.True(t, ok)
	diff(t, LineIntersection{T: 0.1, U: 0.5}, x, cmpopts.EquateApprox(0, 1e-7))

	vLine = Line{Pt(-10.0, -10.0), Pt(-10.0, 10.0)}
	if x, ok := hLine.Intersect(vLine); ok {
		t.Errorf("expected no intersections, got %v", x)
	}

	vLine = Line{Pt(10.0, 10.0), Pt(10.0, 20.0)}
	if x, ok := hLine.Intersect(vLine); ok {
		t.Errorf("expected no intersections, got %v", x)
	}

	pt, ok := hLine.CrossingPoint(Line{Pt(-10, -10), Pt(-10, -5)})
	require.True(t, ok)
	assertNear(t, pt, Pt(-10, 0), 1e-9)
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	distSq, tt := l.Nearest(Pt(5, 3))
	diff(t, 9.0, distSq)
	diff(t, 0.5, tt)
	distSq, tt = l.Nearest(Pt(-1, 0))
	diff(t, 1.0, distSq)
	diff(t, 0.0, tt)
}

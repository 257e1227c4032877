package calc

import (
	"math"
	"sort"
	"testing"
)

func checkRoots(t *testing.T, roots, expected []float64) {
	t.Helper()
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots, expected %d", len(roots), len(expected))
	}
	const epsilon = 1e-12
	sort.Float64s(roots)
	sort.Float64s(expected)
	for i := range roots {
		if math.Abs(roots[i]-expected[i]) > epsilon {
			t.Errorf("root %d is %v but we expected %v", i, roots[i], expected[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveQuadratic(1, -3, 2)), []float64{1, 2})
	checkRoots(t, slice(SolveQuadratic(1, 2, 1)), []float64{-1})
	checkRoots(t, slice(SolveQuadratic(1, 0, 1)), []float64{})
	checkRoots(t, slice(SolveQuadratic(1.0, 0.0, -5.0)), []float64{-math.Sqrt(5), math.Sqrt(5)})
	checkRoots(t, slice(SolveQuadratic(1.0, 0.0, 5.0)), []float64{})

	// Linear fallback.
	checkRoots(t, slice(SolveQuadratic(0.0, 1.0, 5.0)), []float64{-5.0})
	checkRoots(t, slice(SolveQuadratic(0, 0, 5)), []float64{})
	checkRoots(t, slice(SolveQuadratic(0, 0, 0)), []float64{})

	// Roots are sorted.
	roots, n := SolveQuadratic(-1, 1, 6)
	diff(t, []float64{-2, 3}, roots[:n])
}

func TestSolveCubic(t *testing.T) {
	slice := func(roots [3]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveCubic(1, 0, 0, -5)), []float64{math.Cbrt(5)})
	checkRoots(t, slice(SolveCubic(1.0, 0.0, -1.0, -5.0)), []float64{1.90416085913492})
	checkRoots(t, slice(SolveCubic(1.0, 0.0, -1.0, 0.0)), []float64{-1.0, 0.0, 1.0})
	checkRoots(t, slice(SolveCubic(1.0, 0.0, -3.0, -2.0)), []float64{-1.0, 2.0})
	checkRoots(t, slice(SolveCubic(1.0, 0.0, -3.0, 2.0)), []float64{-2.0, 1.0})
	checkRoots(t, slice(SolveCubic(1.0, 4.0, 5.0, 2.0-1e-12)),
		[]float64{
			-1.9999999999989995,
			-1.0000010000848456,
			-0.9999989999161546,
		},
	)
	checkRoots(t, slice(SolveCubic(1.0, 4.0, 5.0, 2.0+1e-12)), []float64{-2.0})
	checkRoots(t, slice(SolveCubic(0, 1, -3, 2)), []float64{1, 2})
}

func TestSolveITP(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x - 2 }
	x := SolveITP(f, 1, 2, 1e-12, 0, 0.2, f(1), f(2))
	if d := math.Abs(f(x)); d > 1e-10 {
		t.Errorf("%g > %g", d, 1e-10)
	}
}

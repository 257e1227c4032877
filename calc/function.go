package calc

import (
	"fmt"
	"math"
)

// Function is a real-valued function of one real variable, restricted to a
// domain. Eval fails with an error matching [ErrDomain] when x lies outside of
// the domain, unless the concrete type documents different behavior.
//
// The set of function shapes is closed: [Polynomial], [Quadratic],
// [*PiecewiseFunction], [BoundedFunction], [LinearInterpolation], and the
// opaque functions returned by [FuncOf], [Derivative] and [Integral].
// Calculus operators inspect the concrete type to choose between analytic
// and numeric strategies.
type Function interface {
	Eval(x float64) (float64, error)
	Domain() Range
}

var _ Function = Polynomial{}
var _ Function = Quadratic{}
var _ Function = (*PiecewiseFunction)(nil)
var _ Function = BoundedFunction{}
var _ Function = LinearInterpolation{}
var _ Function = opaque{}

// opaque is a function without known structure.
type opaque struct {
	fn     func(float64) (float64, error)
	domain Range
}

func (f opaque) Domain() Range { return f.domain }

func (f opaque) Eval(x float64) (float64, error) {
	if err := checkDomain(x, f.domain); err != nil {
		return 0, err
	}
	return f.fn(x)
}

// FuncOf returns a Function that evaluates fn over the given domain.
func FuncOf(fn func(x float64) float64, domain Range) Function {
	return opaque{
		fn:     func(x float64) (float64, error) { return fn(x), nil },
		domain: domain,
	}
}

// MustEval evaluates f at x and panics on error. It is meant for tests and
// for inputs already known to be in the domain.
func MustEval(f Function, x float64) float64 {
	y, err := f.Eval(x)
	if err != nil {
		panic(err)
	}
	return y
}

// BoundedFunction wraps a function and clamps its input to a range instead of
// failing on out-of-range inputs.
type BoundedFunction struct {
	Func  Function
	Range Range
}

// Bounded returns f with its input clamped to r.
func Bounded(f Function, r Range) BoundedFunction {
	return BoundedFunction{Func: f, Range: r}
}

// Domain returns the clamping range.
func (b BoundedFunction) Domain() Range { return b.Range }

func (b BoundedFunction) Eval(x float64) (float64, error) {
	return b.Func.Eval(b.Range.Clamp(x))
}

// Periodic returns a function that repeats f forever, mapping every input
// into f's domain by wrapping around its length. The domain of f must be
// finite and have a non-zero length.
func Periodic(f Function) (Function, error) {
	d := f.Domain()
	if !d.IsFinite() || d.Length() <= 0 {
		return nil, fmt.Errorf("repeating function over %s: %w", d, ErrInvalidRange)
	}
	return opaque{
		fn: func(x float64) (float64, error) {
			w := math.Mod(x-d.Lower, d.Length())
			if w < 0 {
				w += d.Length()
			}
			// An exclusive upper bound falls back to the lower bound and vice
			// versa, which is where the next repetition starts.
			if w == 0 && d.LowerOpen {
				w = d.Length()
			}
			return f.Eval(d.Lower + w)
		},
		domain: All(),
	}, nil
}

// Inverse finds x in [lo, hi] such that f(x) = y, using the ITP method. f
// must be continuous on the interval and f(x) - y must change sign between lo
// and hi.
func Inverse(f Function, y, lo, hi float64) (float64, error) {
	if !(lo <= hi) {
		return 0, fmt.Errorf("solving for %g over [%g, %g]: %w", y, lo, hi, ErrInvalidRange)
	}
	ylo, err := f.Eval(lo)
	if err != nil {
		return 0, err
	}
	yhi, err := f.Eval(hi)
	if err != nil {
		return 0, err
	}
	ylo -= y
	yhi -= y
	switch {
	case ylo == 0:
		return lo, nil
	case yhi == 0:
		return hi, nil
	case math.Signbit(ylo) == math.Signbit(yhi):
		return 0, fmt.Errorf("solving for %g over [%g, %g]: %w", y, lo, hi, ErrNoSignChange)
	}
	sign := 1.0
	if ylo > 0 {
		// SolveITP expects an increasing function.
		sign = -1
	}
	var evalErr error
	g := func(x float64) float64 {
		v, err := f.Eval(x)
		if err != nil && evalErr == nil {
			evalErr = err
		}
		return sign * (v - y)
	}
	x := SolveITP(g, lo, hi, 1e-12, 1, 0.2/(hi-lo), sign*ylo, sign*yhi)
	if evalErr != nil {
		return 0, evalErr
	}
	return x, nil
}

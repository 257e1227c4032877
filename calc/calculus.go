package calc

import (
	"fmt"
	"math"
)

// NumericOptions controls the numeric fallbacks used by the calculus
// operators for functions without a known closed form.
type NumericOptions struct {
	// Step is the h of the centered finite difference (f(x+h) − f(x−h)) / 2h.
	Step float64
	// Subdivisions is the number of trapezoids used by numeric integration.
	Subdivisions int
}

// DefaultNumeric is used by [Derivative], [Integral] and [Integrate].
var DefaultNumeric = NumericOptions{
	Step:         1e-5,
	Subdivisions: 1000,
}

func (opts NumericOptions) step() float64 {
	if opts.Step <= 0 {
		return DefaultNumeric.Step
	}
	return opts.Step
}

func (opts NumericOptions) subdivisions() int {
	if opts.Subdivisions < 1 {
		return DefaultNumeric.Subdivisions
	}
	return opts.Subdivisions
}

// Derivative returns the derivative of f. It is equivalent to calling
// [DerivativeOpt] with [DefaultNumeric].
func Derivative(f Function) Function {
	return DerivativeOpt(f, DefaultNumeric)
}

// DerivativeOpt returns the derivative of f.
//
// Polynomials, quadratics and linear interpolations are differentiated with
// the power rule. Piecewise functions are differentiated segment by segment.
// Integrals produced by [IntegralOpt] differentiate back to their source.
// Everything else is approximated with a centered finite difference using
// opts.Step, which fails near the edges of f's domain, where f(x±h) cannot
// be evaluated.
func DerivativeOpt(f Function, opts NumericOptions) Function {
	switch f := f.(type) {
	case Polynomial:
		return f.Derivative()
	case Quadratic:
		return f.Polynomial().Derivative()
	case LinearInterpolation:
		return f.Polynomial().Derivative()
	case *PiecewiseFunction:
		return f.mapSegments(func(seg Segment) Function {
			return DerivativeOpt(seg.Func, opts)
		})
	case numericIntegral:
		return f.f
	case piecewiseIntegral:
		return f.pw
	default:
		return numericDerivative{f: f, h: opts.step()}
	}
}

// Integral returns the antiderivative of f with constant of integration c. It
// is equivalent to calling [IntegralOpt] with [DefaultNumeric].
func Integral(f Function, c float64) Function {
	return IntegralOpt(f, c, DefaultNumeric)
}

// IntegralOpt returns the antiderivative of f with constant of integration c.
//
// Polynomials, quadratics and linear interpolations are integrated with the
// power rule and c becomes the constant term. Piecewise functions are
// integrated from the lower bound of their first segment, which evaluates to
// c, accumulating the area of earlier segments. Everything else is
// integrated numerically with the composite trapezoidal rule using
// opts.Subdivisions trapezoids, starting at the lower bound of f's domain
// (or 0 if the domain is unbounded below), which evaluates to c.
func IntegralOpt(f Function, c float64, opts NumericOptions) Function {
	switch f := f.(type) {
	case Polynomial:
		return f.Antiderivative(c)
	case Quadratic:
		return f.Polynomial().Antiderivative(c)
	case LinearInterpolation:
		return f.Polynomial().Antiderivative(c)
	case *PiecewiseFunction:
		return piecewiseIntegral{pw: f, c: c, opts: opts}
	default:
		from := f.Domain().Lower
		if math.IsInf(from, 0) {
			from = 0
		}
		return numericIntegral{f: f, c: c, from: from, n: opts.subdivisions()}
	}
}

// Integrate computes the definite integral of f from a to b. It is equivalent
// to calling [IntegrateOpt] with [DefaultNumeric].
func Integrate(f Function, a, b float64) (float64, error) {
	return IntegrateOpt(f, a, b, DefaultNumeric)
}

// IntegrateOpt computes the definite integral of f from a to b, analytically
// for polynomial shapes and with the trapezoidal rule otherwise. Gaps between
// the segments of a piecewise function contribute nothing.
func IntegrateOpt(f Function, a, b float64, opts NumericOptions) (float64, error) {
	if a == b {
		return 0, nil
	}
	if a > b {
		v, err := IntegrateOpt(f, b, a, opts)
		return -v, err
	}
	switch f := f.(type) {
	case Polynomial:
		return integratePolynomial(f, a, b)
	case Quadratic:
		return integratePolynomial(f.Polynomial(), a, b)
	case LinearInterpolation:
		return integratePolynomial(f.Polynomial(), a, b)
	case *PiecewiseFunction:
		d := f.Domain()
		if !d.Contains(a) {
			return 0, &DomainError{Input: a, Domain: d}
		}
		if !d.Contains(b) {
			return 0, &DomainError{Input: b, Domain: d}
		}
		var sum float64
		for _, seg := range f.segments {
			lo := max(a, seg.Range.Lower)
			hi := min(b, seg.Range.Upper)
			if lo >= hi {
				continue
			}
			v, err := integrateSegment(seg.Func, lo, hi, opts)
			if err != nil {
				return 0, err
			}
			sum += v
		}
		return sum, nil
	default:
		return trapezoid(f, a, b, opts.subdivisions())
	}
}

// integrateSegment integrates the function of a piecewise segment. Segments
// are usually half-open, and so are the functions restricted to them, but an
// exclusive bound does not change the area: f is integrated over the closure
// of its domain.
func integrateSegment(f Function, a, b float64, opts NumericOptions) (float64, error) {
	switch f := f.(type) {
	case Polynomial:
		return IntegrateOpt(f.Restrict(closure(f.Domain())), a, b, opts)
	case Quadratic:
		return IntegrateOpt(f, a, b, opts)
	case LinearInterpolation:
		p := f.Polynomial()
		return IntegrateOpt(p.Restrict(closure(p.Domain())), a, b, opts)
	case *PiecewiseFunction:
		return IntegrateOpt(f, a, b, opts)
	default:
		if d := f.Domain(); !d.LowerOpen && !d.UpperOpen {
			return IntegrateOpt(f, a, b, opts)
		}
		return IntegrateOpt(closedFunction{f}, a, b, opts)
	}
}

func closure(r Range) Range {
	return Closed(r.Lower, r.Upper)
}

// closedFunction extends f to the closure of its domain by evaluating f just
// inside of an exclusive bound.
type closedFunction struct {
	f Function
}

func (c closedFunction) Domain() Range { return closure(c.f.Domain()) }

func (c closedFunction) Eval(x float64) (float64, error) {
	d := c.f.Domain()
	switch {
	case d.LowerOpen && x == d.Lower:
		x = math.Nextafter(x, d.Upper)
	case d.UpperOpen && x == d.Upper:
		x = math.Nextafter(x, d.Lower)
	}
	return c.f.Eval(x)
}

func integratePolynomial(p Polynomial, a, b float64) (float64, error) {
	d := p.Domain()
	if err := checkDomain(a, d); err != nil {
		return 0, err
	}
	if err := checkDomain(b, d); err != nil {
		return 0, err
	}
	anti := p.Antiderivative(0)
	return anti.eval(b) - anti.eval(a), nil
}

// trapezoid applies the composite trapezoidal rule with n subdivisions.
func trapezoid(f Function, a, b float64, n int) (float64, error) {
	h := (b - a) / float64(n)
	ya, err := f.Eval(a)
	if err != nil {
		return 0, err
	}
	yb, err := f.Eval(b)
	if err != nil {
		return 0, err
	}
	sum := (ya + yb) / 2
	for i := 1; i < n; i++ {
		y, err := f.Eval(a + float64(i)*h)
		if err != nil {
			return 0, err
		}
		sum += y
	}
	return sum * h, nil
}

type numericDerivative struct {
	f Function
	h float64
}

func (d numericDerivative) Domain() Range { return d.f.Domain() }

func (d numericDerivative) Eval(x float64) (float64, error) {
	if err := checkDomain(x, d.Domain()); err != nil {
		return 0, err
	}
	y1, err := d.f.Eval(x + d.h)
	if err != nil {
		return 0, fmt.Errorf("differentiating at %g: %w", x, err)
	}
	y0, err := d.f.Eval(x - d.h)
	if err != nil {
		return 0, fmt.Errorf("differentiating at %g: %w", x, err)
	}
	return (y1 - y0) / (2 * d.h), nil
}

type numericIntegral struct {
	f    Function
	c    float64
	from float64
	n    int
}

func (i numericIntegral) Domain() Range { return i.f.Domain() }

func (i numericIntegral) Eval(x float64) (float64, error) {
	if err := checkDomain(x, i.Domain()); err != nil {
		return 0, err
	}
	if x == i.from {
		return i.c, nil
	}
	area, err := trapezoid(i.f, i.from, x, i.n)
	if err != nil {
		return 0, err
	}
	return i.c + area, nil
}

type piecewiseIntegral struct {
	pw   *PiecewiseFunction
	c    float64
	opts NumericOptions
}

func (i piecewiseIntegral) Domain() Range { return i.pw.Domain() }

func (i piecewiseIntegral) Eval(x float64) (float64, error) {
	idx := i.pw.Segment(x)
	if idx < 0 {
		return 0, &DomainError{Input: x, Domain: i.pw.Domain()}
	}
	acc := i.c
	for _, seg := range i.pw.segments[:idx] {
		v, err := integrateSegment(seg.Func, seg.Range.Lower, seg.Range.Upper, i.opts)
		if err != nil {
			return 0, err
		}
		acc += v
	}
	seg := i.pw.segments[idx]
	v, err := integrateSegment(seg.Func, seg.Range.Lower, x, i.opts)
	if err != nil {
		return 0, err
	}
	return acc + v, nil
}

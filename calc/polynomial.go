package calc

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Polynomial is a polynomial with real coefficients. Coefficients are stored
// by ascending power, with trailing zero coefficients removed, so two
// polynomials are equal exactly when their coefficient sequences are.
//
// The zero value is the zero polynomial over all reals.
type Polynomial struct {
	coeffs []float64
	// nil means all reals
	domain *Range
}

// NewPolynomial returns the polynomial c[0] + c[1] x + c[2] x² + ...
func NewPolynomial(c ...float64) Polynomial {
	return Polynomial{coeffs: trimZeros(slices.Clone(c))}
}

func trimZeros(c []float64) []float64 {
	n := len(c)
	for n > 0 && c[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}
	return c[:n]
}

// Restrict returns p with its domain limited to r.
func (p Polynomial) Restrict(r Range) Polynomial {
	p.domain = &r
	return p
}

// Domain returns the range p can be evaluated over.
func (p Polynomial) Domain() Range {
	if p.domain == nil {
		return All()
	}
	return *p.domain
}

// Coefficients returns a copy of the coefficients by ascending power. The zero
// polynomial has the single coefficient 0.
func (p Polynomial) Coefficients() []float64 {
	if len(p.coeffs) == 0 {
		return []float64{0}
	}
	return slices.Clone(p.coeffs)
}

// Coefficient returns the coefficient of x^i.
func (p Polynomial) Coefficient(i int) float64 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Degree returns the highest power with a non-zero coefficient. The zero
// polynomial has degree 0.
func (p Polynomial) Degree() int {
	return max(len(p.coeffs)-1, 0)
}

// Equal reports whether p and o have identical coefficients. Domains are not
// compared.
func (p Polynomial) Equal(o Polynomial) bool {
	return slices.Equal(p.coeffs, o.coeffs)
}

func (p Polynomial) Eval(x float64) (float64, error) {
	if err := checkDomain(x, p.Domain()); err != nil {
		return 0, err
	}
	return p.eval(x), nil
}

// eval evaluates using Horner's method, ignoring the domain.
func (p Polynomial) eval(x float64) float64 {
	var y float64
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}
	return y
}

func (p Polynomial) withCoeffs(c []float64) Polynomial {
	return Polynomial{coeffs: trimZeros(c), domain: p.domain}
}

func (p Polynomial) Add(o Polynomial) Polynomial {
	c := make([]float64, max(len(p.coeffs), len(o.coeffs)))
	for i := range c {
		c[i] = p.Coefficient(i) + o.Coefficient(i)
	}
	return p.withCoeffs(c)
}

func (p Polynomial) Sub(o Polynomial) Polynomial {
	return p.Add(o.Scale(-1))
}

func (p Polynomial) Mul(o Polynomial) Polynomial {
	if len(p.coeffs) == 0 || len(o.coeffs) == 0 {
		return p.withCoeffs(nil)
	}
	c := make([]float64, len(p.coeffs)+len(o.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range o.coeffs {
			c[i+j] += a * b
		}
	}
	return p.withCoeffs(c)
}

// Scale multiplies every coefficient by f.
func (p Polynomial) Scale(f float64) Polynomial {
	c := make([]float64, len(p.coeffs))
	for i, v := range p.coeffs {
		c[i] = v * f
	}
	return p.withCoeffs(c)
}

// Derivative returns the derivative of p, computed with the power rule.
func (p Polynomial) Derivative() Polynomial {
	if len(p.coeffs) <= 1 {
		return p.withCoeffs(nil)
	}
	c := make([]float64, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		c[i-1] = float64(i) * p.coeffs[i]
	}
	return p.withCoeffs(c)
}

// Antiderivative returns the antiderivative of p whose constant term is k.
func (p Polynomial) Antiderivative(k float64) Polynomial {
	c := make([]float64, len(p.coeffs)+1)
	c[0] = k
	for i, v := range p.coeffs {
		c[i+1] = v / float64(i+1)
	}
	return p.withCoeffs(c)
}

// Roots returns the real roots of p inside its domain, in ascending order.
// Only polynomials up to degree 3 are supported. The zero polynomial and
// non-zero constants have no roots.
func (p Polynomial) Roots() ([]float64, error) {
	var roots []float64
	switch len(p.coeffs) {
	case 0, 1:
	case 2:
		roots = []float64{-p.coeffs[0] / p.coeffs[1]}
	case 3:
		r, n := SolveQuadratic(p.coeffs[2], p.coeffs[1], p.coeffs[0])
		roots = r[:n]
	case 4:
		r, n := SolveCubic(p.coeffs[3], p.coeffs[2], p.coeffs[1], p.coeffs[0])
		roots = r[:n]
	default:
		return nil, fmt.Errorf("%w: roots of degree %d polynomial", ErrUnsupportedDegree, p.Degree())
	}
	d := p.Domain()
	roots = slices.DeleteFunc(roots, func(x float64) bool { return !d.Contains(x) })
	slices.Sort(roots)
	return slices.Compact(roots), nil
}

// Solve returns the inputs in p's domain for which p evaluates to y.
func (p Polynomial) Solve(y float64) ([]float64, error) {
	return p.Sub(NewPolynomial(y)).Roots()
}

func (p Polynomial) String() string {
	if len(p.coeffs) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c == 0 {
			continue
		}
		if sb.Len() > 0 {
			if c < 0 {
				sb.WriteString(" - ")
			} else {
				sb.WriteString(" + ")
			}
			c = math.Abs(c)
		}
		if c != 1 || i == 0 {
			fmt.Fprintf(&sb, "%g", c)
		}
		switch i {
		case 0:
		case 1:
			sb.WriteString("x")
		default:
			fmt.Fprintf(&sb, "x^%d", i)
		}
	}
	return sb.String()
}

// Quadratic is the function a·x² + b·x + c over all reals.
type Quadratic struct {
	A, B, C float64
}

// QuadraticFromVertex returns the parabola with the given vertex that passes
// through p.
func QuadraticFromVertex(vertex, p Point) (Quadratic, error) {
	dx := p.X - vertex.X
	if dx == 0 {
		return Quadratic{}, fmt.Errorf("parabola through vertex %s and %s: %w", vertex, p, ErrDegenerateGeometry)
	}
	a := (p.Y - vertex.Y) / (dx * dx)
	return Quadratic{
		A: a,
		B: -2 * a * vertex.X,
		C: a*vertex.X*vertex.X + vertex.Y,
	}, nil
}

// Kinematic returns the displacement over time of a body with constant
// acceleration accel, initial velocity v0 and initial position x0:
// x0 + v0·t + ½·accel·t².
func Kinematic(accel, v0, x0 float64) Quadratic {
	return Quadratic{A: accel / 2, B: v0, C: x0}
}

func (q Quadratic) Domain() Range { return All() }

func (q Quadratic) Eval(x float64) (float64, error) {
	return (q.A*x+q.B)*x + q.C, nil
}

// Polynomial returns q as a [Polynomial].
func (q Quadratic) Polynomial() Polynomial {
	return NewPolynomial(q.C, q.B, q.A)
}

// Roots returns the real roots of q. See [SolveQuadratic].
func (q Quadratic) Roots() ([2]float64, int) {
	return SolveQuadratic(q.A, q.B, q.C)
}

// Solve returns the inputs for which q evaluates to y.
func (q Quadratic) Solve(y float64) ([2]float64, int) {
	return SolveQuadratic(q.A, q.B, q.C-y)
}

// TimesToReach returns the non-negative inputs for which q evaluates to y,
// in ascending order. When q describes a displacement over time, these are
// the times at which the displacement is y.
func (q Quadratic) TimesToReach(y float64) []float64 {
	roots, n := q.Solve(y)
	var out []float64
	for _, t := range roots[:n] {
		if t >= 0 {
			out = append(out, t)
		}
	}
	return out
}

// Vertex returns the turning point of the parabola. Linear functions have no
// vertex.
func (q Quadratic) Vertex() (Point, error) {
	if q.A == 0 {
		return Point{}, fmt.Errorf("vertex of linear function: %w", ErrDegenerateGeometry)
	}
	x := -q.B / (2 * q.A)
	y, _ := q.Eval(x)
	return Pt(x, y), nil
}

func (q Quadratic) String() string {
	return q.Polynomial().String()
}

// Package calc provides the numeric and geometric primitives used to describe
// motion: exact fractions, ranges, 2D points, vectors and matrices, real
// functions of one variable, and calculus over those functions.
//
// # Numbers and ranges
//
// [Fraction] is an exact rational number. It is used wherever floating point
// drift would be visible, most notably for accumulating simulation time: ten
// steps of 0.1 seconds, converted with [FractionFromFloat], add up to exactly
// one second.
//
// [Range] is an interval whose bounds are independently inclusive or
// exclusive. Ranges are the domains of functions and the keys of piecewise
// functions.
//
// # Geometry
//
// [Point] is a position and [Vec2] is a displacement, velocity or
// acceleration. Keeping the two apart makes it explicit which operations make
// sense: points can be translated by vectors and subtracted from each other,
// vectors can additionally be scaled, rotated and normalized.
//
// [Line] is a line segment. [Affine] is a 2D affine transformation and
// [Matrix] a small dense matrix of arbitrary shape; both compose by
// multiplication, which is associative but not commutative.
//
// # Functions
//
// [Function] is a real function restricted to a domain. Evaluating a function
// outside of its domain fails with an error matching [ErrDomain] instead of
// silently extrapolating. The available shapes are
//
//   - [Polynomial], with coefficients by ascending power
//   - [Quadratic], a polynomial of degree two with vertex and root helpers
//   - [LinearInterpolation], the line through two points
//   - [PiecewiseFunction], non-overlapping segments each backed by a function
//   - [BoundedFunction], which clamps its input instead of failing
//   - opaque functions created by [FuncOf]
//
// # Calculus
//
// [Derivative] and [Integral] turn one function into another. Polynomial
// shapes are handled exactly with the power rule; piecewise functions are
// handled segment by segment; everything else falls back to a centered
// finite difference or the composite trapezoidal rule, whose precision is
// controlled by [NumericOptions]. [Integrate] computes definite integrals.
//
// [SolveQuadratic] and [SolveCubic] find real roots in closed form, and
// [Inverse] finds the input for which a monotonic function reaches a value.
package calc

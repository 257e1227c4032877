package calc

import (
	"fmt"
	"math"
)

// Affine describes a 2D affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v). Composition is associative but
// not commutative.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y, matching [Vec2.Rotate].
//
// The angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout creates an affine transform representing a rotation of th radians
// about center.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c.Negate()).ThenRotate(th).ThenTranslate(c)
}

// Coefficients returns the the coefficients of the transform.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenRotate creates aff followed by a rotation of th.
//
// Equivalent to "Rotate(th) * aff"
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Apply transforms a vector. Vectors are unaffected by translation.
func (aff Affine) Apply(v Vec2) Vec2 {
	return Vec2{
		X: aff.N0*v.X + aff.N2*v.Y,
		Y: aff.N1*v.X + aff.N3*v.Y,
	}
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform. It fails with
// [ErrDegenerateGeometry] when the determinant is zero.
func (aff Affine) Invert() (Affine, error) {
	det := aff.Determinant()
	if det == 0 {
		return Affine{}, fmt.Errorf("inverting affine transform: %w", ErrDegenerateGeometry)
	}
	invDet := 1 / det
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}, nil
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vec2 {
	return Vec2{
		X: aff.N4,
		Y: aff.N5,
	}
}

// Matrix returns the transform as a 3×3 augmented matrix.
func (aff Affine) Matrix() Matrix {
	return Matrix{
		rows: 3,
		cols: 3,
		data: []float64{
			aff.N0, aff.N2, aff.N4,
			aff.N1, aff.N3, aff.N5,
			0, 0, 1,
		},
	}
}

// AffineFromMatrix converts a 2×2 linear or 3×3 augmented matrix into an
// affine transform. The bottom row of a 3×3 matrix is ignored.
func AffineFromMatrix(m Matrix) (Affine, error) {
	switch {
	case m.rows == 2 && m.cols == 2:
		return Affine{m.At(0, 0), m.At(1, 0), m.At(0, 1), m.At(1, 1), 0, 0}, nil
	case m.rows == 3 && m.cols == 3:
		return Affine{m.At(0, 0), m.At(1, 0), m.At(0, 1), m.At(1, 1), m.At(0, 2), m.At(1, 2)}, nil
	default:
		return Affine{}, fmt.Errorf("%w: %d×%d is not a 2D transform", ErrDimensionMismatch, m.rows, m.cols)
	}
}

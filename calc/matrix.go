package calc

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a small dense matrix of reals stored in row-major order. Matrix
// values are immutable; all operations return new matrices.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix builds a matrix from rows, which must all have the same non-zero
// length.
func NewMatrix(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix{}, fmt.Errorf("%w: empty matrix", ErrDimensionMismatch)
	}
	m := Matrix{
		rows: len(rows),
		cols: len(rows[0]),
		data: make([]float64, 0, len(rows)*len(rows[0])),
	}
	for i, row := range rows {
		if len(row) != m.cols {
			return Matrix{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), m.cols)
		}
		m.data = append(m.data, row...)
	}
	return m, nil
}

// IdentityMatrix returns the n×n identity matrix.
func IdentityMatrix(n int) Matrix {
	m := zeroMatrix(n, n)
	for i := range n {
		m.data[i*n+i] = 1
	}
	return m
}

func zeroMatrix(rows, cols int) Matrix {
	return Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Dims returns the number of rows and columns.
func (m Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

// Rows returns a copy of the matrix as a slice of rows.
func (m Matrix) Rows() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = append([]float64(nil), m.data[i*m.cols:(i+1)*m.cols]...)
	}
	return out
}

func (m Matrix) String() string {
	var sb strings.Builder
	for i := range m.rows {
		sb.WriteString("|")
		for j := range m.cols {
			fmt.Fprintf(&sb, " %g", m.At(i, j))
		}
		sb.WriteString(" |\n")
	}
	return sb.String()
}

func (m Matrix) sameShape(o Matrix, op string) error {
	if m.rows != o.rows || m.cols != o.cols {
		return fmt.Errorf("%w: cannot %s %d×%d and %d×%d", ErrDimensionMismatch, op, m.rows, m.cols, o.rows, o.cols)
	}
	return nil
}

func (m Matrix) zipWith(o Matrix, fn func(a, b float64) float64) Matrix {
	out := zeroMatrix(m.rows, m.cols)
	for i := range out.data {
		out.data[i] = fn(m.data[i], o.data[i])
	}
	return out
}

func (m Matrix) Add(o Matrix) (Matrix, error) {
	if err := m.sameShape(o, "add"); err != nil {
		return Matrix{}, err
	}
	return m.zipWith(o, func(a, b float64) float64 { return a + b }), nil
}

func (m Matrix) Sub(o Matrix) (Matrix, error) {
	if err := m.sameShape(o, "subtract"); err != nil {
		return Matrix{}, err
	}
	return m.zipWith(o, func(a, b float64) float64 { return a - b }), nil
}

// Hadamard returns the element-wise product of m and o.
func (m Matrix) Hadamard(o Matrix) (Matrix, error) {
	if err := m.sameShape(o, "multiply element-wise"); err != nil {
		return Matrix{}, err
	}
	return m.zipWith(o, func(a, b float64) float64 { return a * b }), nil
}

// Scale multiplies every element by f.
func (m Matrix) Scale(f float64) Matrix {
	out := zeroMatrix(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = v * f
	}
	return out
}

func (m Matrix) Transpose() Matrix {
	out := zeroMatrix(m.cols, m.rows)
	for i := range m.rows {
		for j := range m.cols {
			out.data[j*m.rows+i] = m.At(i, j)
		}
	}
	return out
}

// Mul returns the matrix product m·o.
func (m Matrix) Mul(o Matrix) (Matrix, error) {
	if m.cols != o.rows {
		return Matrix{}, fmt.Errorf("%w: cannot multiply %d×%d by %d×%d", ErrDimensionMismatch, m.rows, m.cols, o.rows, o.cols)
	}
	out := zeroMatrix(m.rows, o.cols)
	for i := range m.rows {
		for j := range o.cols {
			var sum float64
			for k := range m.cols {
				sum += m.At(i, k) * o.At(k, j)
			}
			out.data[i*o.cols+j] = sum
		}
	}
	return out, nil
}

// MulVec multiplies the matrix by a column vector. 2×2 matrices act on v
// directly; 3×3 matrices treat v as the homogeneous point (x, y, 1).
func (m Matrix) MulVec(v Vec2) (Vec2, error) {
	switch {
	case m.rows == 2 && m.cols == 2:
		return Vec2{
			X: m.data[0]*v.X + m.data[1]*v.Y,
			Y: m.data[2]*v.X + m.data[3]*v.Y,
		}, nil
	case m.rows == 3 && m.cols == 3:
		w := m.data[6]*v.X + m.data[7]*v.Y + m.data[8]
		if w == 0 {
			return Vec2{}, fmt.Errorf("projecting %s: %w", v, ErrDegenerateGeometry)
		}
		return Vec2{
			X: (m.data[0]*v.X + m.data[1]*v.Y + m.data[2]) / w,
			Y: (m.data[3]*v.X + m.data[4]*v.Y + m.data[5]) / w,
		}, nil
	default:
		return Vec2{}, fmt.Errorf("%w: cannot multiply %d×%d by a 2D vector", ErrDimensionMismatch, m.rows, m.cols)
	}
}

// Determinant computes the determinant of a square matrix.
func (m Matrix) Determinant() (float64, error) {
	if m.rows != m.cols {
		return 0, fmt.Errorf("%w: determinant of %d×%d", ErrDimensionMismatch, m.rows, m.cols)
	}
	a := m.Rows()
	n := m.rows
	det := 1.0
	for c := range n {
		p := pivot(a, c)
		if a[p][c] == 0 {
			return 0, nil
		}
		if p != c {
			a[p], a[c] = a[c], a[p]
			det = -det
		}
		det *= a[c][c]
		for r := c + 1; r < n; r++ {
			f := a[r][c] / a[c][c]
			for k := c; k < n; k++ {
				a[r][k] -= f * a[c][k]
			}
		}
	}
	return det, nil
}

// Invert computes the inverse of a square matrix using Gauss-Jordan
// elimination with partial pivoting. It fails with [ErrDegenerateGeometry] if
// the matrix is singular, that is if a pivot is negligible relative to the
// norm of the matrix.
func (m Matrix) Invert() (Matrix, error) {
	if m.rows != m.cols {
		return Matrix{}, fmt.Errorf("%w: inverse of %d×%d", ErrDimensionMismatch, m.rows, m.cols)
	}
	n := m.rows
	a := m.Rows()
	inv := IdentityMatrix(n).Rows()
	tol := 1e-12 * m.norm()
	for c := range n {
		p := pivot(a, c)
		if math.Abs(a[p][c]) <= tol {
			return Matrix{}, fmt.Errorf("inverting singular matrix: %w", ErrDegenerateGeometry)
		}
		a[p], a[c] = a[c], a[p]
		inv[p], inv[c] = inv[c], inv[p]
		d := a[c][c]
		for k := range n {
			a[c][k] /= d
			inv[c][k] /= d
		}
		for r := range n {
			if r == c {
				continue
			}
			f := a[r][c]
			for k := range n {
				a[r][k] -= f * a[c][k]
				inv[r][k] -= f * inv[c][k]
			}
		}
	}
	return NewMatrix(inv)
}

// norm returns the maximum absolute row sum of m.
func (m Matrix) norm() float64 {
	var out float64
	for i := range m.rows {
		var sum float64
		for _, v := range m.data[i*m.cols : (i+1)*m.cols] {
			sum += math.Abs(v)
		}
		out = max(out, sum)
	}
	return out
}

// pivot returns the row at or below c with the largest magnitude in column c.
func pivot(a [][]float64, c int) int {
	p := c
	for r := c + 1; r < len(a); r++ {
		if math.Abs(a[r][c]) > math.Abs(a[p][c]) {
			p = r
		}
	}
	return p
}

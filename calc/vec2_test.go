package calc

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestVec2Arithmetic(t *testing.T) {
	diff(t, Vec(4, 6), Vec(1, 2).Add(Vec(3, 4)))
	diff(t, Vec(2, 4), Vec(1, 2).Mul(2))
	diff(t, 11.0, Vec(1, 2).Dot(Vec(3, 4)))
	diff(t, -2.0, Vec(1, 2).Cross(Vec(3, 4)))
	diff(t, Vec(3, 8), Vec(1, 2).Hadamard(Vec(3, 4)))
	diff(t, 5.0, Vec(3, 4).Hypot())
}

func TestVec2Normalize(t *testing.T) {
	n, err := Vec(3, 4).Normalize()
	require.NoError(t, err)
	diff(t, Vec(0.6, 0.8), n, cmpopts.EquateApprox(0, 1e-12))

	_, err = Vec(0, 0).Normalize()
	require.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestVec2Rotate(t *testing.T) {
	const epsilon = 1e-12
	opt := cmpopts.EquateApprox(0, epsilon)
	diff(t, Vec(0, 1), Vec(1, 0).Rotate(math.Pi/2), opt)
	diff(t, Vec(-1, 0), Vec(1, 0).Rotate(math.Pi), opt)
	diff(t, Vec(-4, 3), Vec(3, 4).Rotate(math.Pi/2), opt)
	diff(t, Vec(0, 2), VecFromPolar(2, math.Pi/2), opt)

	// Rotation agrees with the affine rotation.
	v := Vec(3, 4)
	diff(t, Rotate(0.3).Apply(v), v.Rotate(0.3), opt)
}

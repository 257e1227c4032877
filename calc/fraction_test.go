package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFractionReduce(t *testing.T) {
	diff(t, Frac(1, 2), Frac(2, 4))
	diff(t, Frac(1, 2), Frac(-2, -4))
	diff(t, Frac(-1, 2), Frac(3, -6))
	diff(t, Fraction{}, Frac(0, 5))
	diff(t, Whole(3), Frac(9, 3))

	if Frac(2, 4) != Frac(1, 2) {
		t.Error("2/4 and 1/2 compare unequal")
	}
	seen := map[Fraction]int{Frac(1, 2): 1}
	seen[Frac(50, 100)]++
	diff(t, 1, len(seen))
	diff(t, 2, seen[Frac(1, 2)])

	diff(t, int64(-1), Frac(3, -6).Num())
	diff(t, int64(2), Frac(3, -6).Den())
	diff(t, int64(1), Fraction{}.Den())
}

func TestFractionZeroDenominator(t *testing.T) {
	_, err := NewFraction(1, 0)
	require.ErrorIs(t, err, ErrZeroDenominator)

	_, err = Frac(1, 2).Div(Fraction{})
	require.ErrorIs(t, err, ErrZeroDenominator)
}

func TestFractionArithmetic(t *testing.T) {
	sum, err := Frac(1, 2).Add(Frac(1, 3))
	require.NoError(t, err)
	diff(t, Frac(5, 6), sum)
	d, err := Frac(1, 2).Sub(Frac(1, 3))
	require.NoError(t, err)
	diff(t, Frac(1, 6), d)
	p, err := Frac(1, 2).Mul(Frac(1, 3))
	require.NoError(t, err)
	diff(t, Frac(1, 6), p)
	q, err := Frac(1, 2).Div(Frac(1, 3))
	require.NoError(t, err)
	diff(t, Frac(3, 2), q)
	diff(t, Frac(-1, 2), Frac(1, 2).Neg())

	diff(t, -1, Frac(1, 3).Cmp(Frac(1, 2)))
	diff(t, 0, Frac(2, 6).Cmp(Frac(1, 3)))
	diff(t, true, Frac(-1, 2).Less(Fraction{}))
	diff(t, -1, Frac(-1, 2).Sign())
}

func TestFractionRounding(t *testing.T) {
	diff(t, int64(3), Frac(7, 2).Floor())
	diff(t, int64(4), Frac(7, 2).Ceil())
	diff(t, int64(-4), Frac(-7, 2).Floor())
	diff(t, int64(-3), Frac(-7, 2).Ceil())
	diff(t, int64(2), Whole(2).Floor())
	diff(t, int64(2), Whole(2).Ceil())
}

func TestFractionFromFloat(t *testing.T) {
	tenth, err := FractionFromFloat(0.1, DefaultMaxDenominator)
	require.NoError(t, err)
	diff(t, Frac(1, 10), tenth)

	var sum Fraction
	for range 10 {
		sum, err = sum.Add(tenth)
		require.NoError(t, err)
	}
	diff(t, Whole(1), sum)

	pi, err := FractionFromFloat(math.Pi, 1000)
	require.NoError(t, err)
	diff(t, Frac(355, 113), pi)

	half, err := FractionFromFloat(-0.5, 1)
	require.NoError(t, err)
	diff(t, Whole(-1), half)

	_, err = FractionFromFloat(math.NaN(), 10)
	require.Error(t, err)
}

func TestFractionOverflow(t *testing.T) {
	// Denominator too large: rounded.
	f, err := Frac(1, math.MaxInt64).Add(Frac(1, math.MaxInt64-1))
	require.NoError(t, err)
	assert.InDelta(t, 0, f.Float64(), 1e-9)
	assert.LessOrEqual(t, f.Den(), int64(math.MaxInt32))

	// Numerator too large: an error, not a panic.
	_, err = Whole(math.MaxInt64).Add(Whole(1))
	require.ErrorIs(t, err, ErrFractionOverflow)
	_, err = Whole(math.MinInt64).Sub(Whole(1))
	require.ErrorIs(t, err, ErrFractionOverflow)
	_, err = Whole(math.MaxInt64).Mul(Whole(2))
	require.ErrorIs(t, err, ErrFractionOverflow)
	_, err = Whole(math.MaxInt64).Div(Frac(1, 2))
	require.ErrorIs(t, err, ErrFractionOverflow)
	_, err = FractionFromFloat(1e19, DefaultMaxDenominator)
	require.ErrorIs(t, err, ErrFractionOverflow)
	_, err = FractionFromFloat(-1e19, DefaultMaxDenominator)
	require.ErrorIs(t, err, ErrFractionOverflow)
}

func TestFractionString(t *testing.T) {
	diff(t, "3/4", Frac(6, 8).String())
	diff(t, "-2", Frac(4, -2).String())
	diff(t, 0.75, Frac(3, 4).Float64())
}

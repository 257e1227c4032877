package calc

import (
	"fmt"
	"math"
	"math/big"
)

// DefaultMaxDenominator is the denominator bound used when approximating
// floating point numbers as fractions.
const DefaultMaxDenominator = 1_000_000

// Fraction is an exact rational number, always reduced to lowest terms with a
// positive denominator. Two fractions representing the same ratio are equal
// according to ==, and can be used as map keys. The zero value is 0/1.
//
// Arithmetic whose reduced result does not fit in 64 bits is rounded to the
// nearest fraction whose denominator fits in 32 bits. If even the rounded
// numerator does not fit, the operation fails with [ErrFractionOverflow].
type Fraction struct {
	num int64
	// denominator minus one, so that the zero value is 0/1
	dm1 int64
}

// NewFraction returns num/den in lowest terms.
func NewFraction(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	return fromRat(new(big.Rat).SetFrac64(num, den))
}

// Frac is like [NewFraction] but panics if den is zero.
func Frac(num, den int64) Fraction {
	f, err := NewFraction(num, den)
	if err != nil {
		panic(err)
	}
	return f
}

// Whole returns the fraction n/1.
func Whole(n int64) Fraction {
	return Fraction{num: n}
}

// FractionFromFloat returns the fraction closest to x whose denominator is at
// most maxDen. Values such as 0.1 that have no exact binary representation
// round-trip to their intended ratio (1/10) as long as maxDen allows it.
func FractionFromFloat(x float64, maxDen int64) (Fraction, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Fraction{}, fmt.Errorf("calc: cannot represent %g as a fraction", x)
	}
	if maxDen < 1 {
		maxDen = 1
	}
	r := new(big.Rat).SetFloat64(x)
	return fromRat(limitDenominator(r, big.NewInt(maxDen)))
}

func fromRat(r *big.Rat) (Fraction, error) {
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		r = limitDenominator(r, big.NewInt(math.MaxInt32))
		if !r.Num().IsInt64() {
			return Fraction{}, fmt.Errorf("%w: %s", ErrFractionOverflow, r.FloatString(0))
		}
	}
	return Fraction{
		num: r.Num().Int64(),
		dm1: r.Denom().Int64() - 1,
	}, nil
}

// limitDenominator finds the best rational approximation of r with a
// denominator no larger than maxDen, using the continued fraction expansion of
// r and picking the closer of the two final semiconvergents.
func limitDenominator(r *big.Rat, maxDen *big.Int) *big.Rat {
	if r.Denom().Cmp(maxDen) <= 0 {
		return r
	}
	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(r.Num())
	d := new(big.Int).Set(r.Denom())
	a, m := new(big.Int), new(big.Int)
	for d.Sign() != 0 {
		// Euclidean division floors for positive d.
		a.DivMod(n, d, m)
		q2 := new(big.Int).Mul(a, q1)
		q2.Add(q2, q0)
		if q2.Cmp(maxDen) > 0 {
			break
		}
		p2 := new(big.Int).Mul(a, p1)
		p2.Add(p2, p0)
		p0, q0, p1, q1 = p1, q1, p2, q2
		n, d = d, new(big.Int).Set(m)
	}
	k := new(big.Int).Sub(maxDen, q0)
	k.Div(k, q1)
	b1 := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	b2 := new(big.Rat).SetFrac(p1, q1)
	d1 := new(big.Rat).Sub(b1, r)
	d2 := new(big.Rat).Sub(b2, r)
	if d2.Abs(d2).Cmp(d1.Abs(d1)) <= 0 {
		return b2
	}
	return b1
}

// Num returns the numerator.
func (f Fraction) Num() int64 { return f.num }

// Den returns the denominator, which is always positive.
func (f Fraction) Den() int64 { return f.dm1 + 1 }

// Rat returns the fraction as a newly allocated [big.Rat].
func (f Fraction) Rat() *big.Rat {
	return new(big.Rat).SetFrac64(f.num, f.Den())
}

func (f Fraction) String() string {
	if f.Den() == 1 {
		return fmt.Sprintf("%d", f.num)
	}
	return fmt.Sprintf("%d/%d", f.num, f.Den())
}

// Float64 returns the nearest float64 value.
func (f Fraction) Float64() float64 {
	v, _ := f.Rat().Float64()
	return v
}

// Add returns f+o. Like the other arithmetic methods, it fails with
// [ErrFractionOverflow] if the result is out of range.
func (f Fraction) Add(o Fraction) (Fraction, error) {
	return fromRat(new(big.Rat).Add(f.Rat(), o.Rat()))
}

func (f Fraction) Sub(o Fraction) (Fraction, error) {
	return fromRat(new(big.Rat).Sub(f.Rat(), o.Rat()))
}

func (f Fraction) Mul(o Fraction) (Fraction, error) {
	return fromRat(new(big.Rat).Mul(f.Rat(), o.Rat()))
}

// Div returns f/o. It fails if o is zero.
func (f Fraction) Div(o Fraction) (Fraction, error) {
	if o.num == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	return fromRat(new(big.Rat).Quo(f.Rat(), o.Rat()))
}

// Equal reports whether f and o represent the same ratio.
func (f Fraction) Equal(o Fraction) bool {
	return f == o
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	return Fraction{num: -f.num, dm1: f.dm1}
}

// Cmp compares f and o and returns -1, 0 or +1.
func (f Fraction) Cmp(o Fraction) int {
	return f.Rat().Cmp(o.Rat())
}

// Less reports whether f < o.
func (f Fraction) Less(o Fraction) bool {
	return f.Cmp(o) < 0
}

func (f Fraction) Sign() int {
	switch {
	case f.num < 0:
		return -1
	case f.num > 0:
		return 1
	default:
		return 0
	}
}

// Floor returns the greatest integer less than or equal to f.
func (f Fraction) Floor() int64 {
	d := f.Den()
	q := f.num / d
	if f.num%d != 0 && f.num < 0 {
		q--
	}
	return q
}

// Ceil returns the least integer greater than or equal to f.
func (f Fraction) Ceil() int64 {
	d := f.Den()
	q := f.num / d
	if f.num%d != 0 && f.num > 0 {
		q++
	}
	return q
}

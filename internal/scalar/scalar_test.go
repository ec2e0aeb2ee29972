package scalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approxEqC(t *testing.T, want, got complex128) {
	t.Helper()
	assert.InDelta(t, real(want), real(got), Epsilon)
	assert.InDelta(t, imag(want), imag(got), Epsilon)
}

func TestApproxVsExactEquality(t *testing.T) {
	s := Real[Coeffs4](math.Sqrt(0.3)*math.Sqrt(0.3) - 0.3)
	z := Zero[Coeffs4]()

	// Not equal as values (float vs exact), but approximately equal.
	assert.False(t, s.Equal(z))
	assert.True(t, s.ApproxEq(z))
}

func TestSqrtI(t *testing.T) {
	s := FromIntCoeffs[Coeffs4]([]int64{0, 1, 0, 0})
	approxEqC(t, complex(1/math.Sqrt2, 1/math.Sqrt2), s.Float())
}

func TestMulSameOrder(t *testing.T) {
	s := FromIntCoeffs[Coeffs4]([]int64{1, 2, 3, 4})
	u := FromIntCoeffs[Coeffs4]([]int64{4, 5, 6, 7})
	su := s.Mul(u)

	assert.True(t, su.IsExact())
	approxEqC(t, s.Float()*u.Float(), su.Float())
}

func TestMulAcrossOrders(t *testing.T) {
	// Orders 3 and 5 combine exactly in order 15 with growable storage.
	s := FromPhase[CoeffsVar](NewRational(4, 3))
	u := FromPhase[CoeffsVar](NewRational(2, 5))
	su := s.Mul(u)

	assert.True(t, su.IsExact())
	assert.Equal(t, 15, su.coeffs.Len())
	assert.True(t, su.ApproxEq(FromPhase[CoeffsVar](NewRational(4, 3).Add(NewRational(2, 5)))))
}

func TestFromPhase(t *testing.T) {
	assert.True(t, FromPhase[Coeffs4](RatInt(0)).Equal(One[Coeffs4]()))
	assert.True(t, FromPhase[Coeffs4](RatInt(1)).ApproxEq(Real[Coeffs4](-1)))
	assert.True(t, FromPhase[Coeffs4](NewRational(1, 2)).ApproxEq(Complex[Coeffs4](0, 1)))
	assert.True(t, FromPhase[Coeffs4](NewRational(-1, 2)).ApproxEq(Complex[Coeffs4](0, -1)))
	assert.True(t, FromPhase[Coeffs4](NewRational(1, 4)).Equal(FromIntCoeffs[Coeffs4]([]int64{0, 1, 0, 0})))
	assert.True(t, FromPhase[Coeffs4](NewRational(3, 4)).Equal(FromIntCoeffs[Coeffs4]([]int64{0, 0, 0, 1})))
	assert.True(t, FromPhase[Coeffs4](NewRational(7, 4)).Equal(FromIntCoeffs[Coeffs4]([]int64{0, 0, 0, -1})))
}

func TestFromPhaseMultiplicative(t *testing.T) {
	// from_phase(p) * from_phase(q) == from_phase(p+q), fixed and growable.
	cases := [][2]Rational{
		{NewRational(1, 4), NewRational(1, 2)},
		{NewRational(3, 4), NewRational(3, 4)},
		{NewRational(-1, 2), NewRational(1, 4)},
		{NewRational(4, 3), NewRational(2, 5)},
		{NewRational(1, 7), NewRational(5, 3)},
	}
	for _, c := range cases {
		p, q := c[0], c[1]
		got4 := FromPhase[Coeffs4](p).Mul(FromPhase[Coeffs4](q))
		gotN := FromPhase[CoeffsVar](p).Mul(FromPhase[CoeffsVar](q))
		want := p.Add(q)
		assert.True(t, got4.ApproxEq(FromPhase[Coeffs4](want)), "fixed, p=%v q=%v", p, q)
		assert.True(t, gotN.ApproxEq(FromPhase[CoeffsVar](want)), "growable, p=%v q=%v", p, q)
	}
}

func TestFromPhaseDegradesToFloat(t *testing.T) {
	// Order 3 does not divide 4, so the fixed order-4 store cannot hold it.
	s := FromPhase[Coeffs4](NewRational(1, 3))
	require.False(t, s.IsExact())
	approxEqC(t, complex(math.Cos(math.Pi/3), math.Sin(math.Pi/3)), s.Float())
}

func TestAddition(t *testing.T) {
	s := FromIntCoeffs[CoeffsVar]([]int64{1, 2, 3, 4})
	u := FromIntCoeffs[CoeffsVar]([]int64{2, 3, 4, 5})
	su := FromIntCoeffs[CoeffsVar]([]int64{3, 5, 7, 9})
	assert.True(t, s.Add(u).Equal(su))
}

func TestAdditionAcrossOrders(t *testing.T) {
	one := One[CoeffsVar]()
	om := FromPhase[CoeffsVar](NewRational(1, 4))
	sum := one.Add(om)
	assert.True(t, sum.IsExact())
	approxEqC(t, 1+complex(1/math.Sqrt2, 1/math.Sqrt2), sum.Float())
}

func TestSqrt2Powers(t *testing.T) {
	assert.True(t, Sqrt2Pow[Coeffs4](0).Equal(One[Coeffs4]()))
	assert.True(t, Sqrt2Pow[Coeffs4](2).Equal(FromIntCoeffs[Coeffs4]([]int64{2})))
	assert.True(t, Sqrt2Pow[Coeffs4](1).ApproxEq(Real[Coeffs4](math.Sqrt2)))
	assert.True(t, Sqrt2Pow[Coeffs4](-1).ApproxEq(Real[Coeffs4](1/math.Sqrt2)))

	for k := -7; k <= 7; k++ {
		s := Sqrt2Pow[Coeffs4](k)
		assert.True(t, s.IsExact(), "k=%d", k)
		assert.True(t, s.ApproxEq(Real[Coeffs4](math.Pow(math.Sqrt2, float64(k)))), "k=%d", k)
	}
}

func TestSqrt2PowDegradesToFloat(t *testing.T) {
	// Coeffs2 cannot hold order 4, so odd powers degrade but stay accurate.
	s := Sqrt2Pow[Coeffs2](3)
	require.False(t, s.IsExact())
	approxEqC(t, complex(math.Pow(math.Sqrt2, 3), 0), s.Float())
}

func TestOnePlusPhase(t *testing.T) {
	assert.True(t, OnePlusPhase[CoeffsVar](RatInt(1)).ApproxEq(Zero[CoeffsVar]()))

	plus := OnePlusPhase[CoeffsVar](NewRational(1, 2))
	minus := OnePlusPhase[CoeffsVar](NewRational(-1, 2))
	assert.True(t, plus.Mul(minus).ApproxEq(Real[CoeffsVar](2)))
}

func TestFloatIsAbsorbing(t *testing.T) {
	e := FromIntCoeffs[Coeffs4]([]int64{1, 1, 0, 0})
	f := Real[Coeffs4](2)

	assert.False(t, e.Mul(f).IsExact())
	assert.False(t, f.Mul(e).IsExact())
	assert.False(t, e.Add(f).IsExact())
	approxEqC(t, e.Float()*2, e.Mul(f).Float())
	approxEqC(t, e.Float()+2, f.Add(e).Float())
}

func TestEquality(t *testing.T) {
	// Exact values of different orders compare via lcm re-expression.
	a := One[CoeffsVar]()
	b := FromIntCoeffs[CoeffsVar]([]int64{1, 0, 0, 0})
	assert.True(t, a.Equal(b))

	// Exact is never equal to float, even at the same value.
	assert.False(t, One[Coeffs4]().Equal(Real[Coeffs4](1)))
	assert.True(t, Real[Coeffs4](1).Equal(Real[Coeffs4](1)))
}

func TestMulInPlaceHelpers(t *testing.T) {
	s := One[CoeffsVar]()
	s.MulPhase(NewRational(1, 2))
	s.MulSqrt2Pow(2)
	assert.True(t, s.ApproxEq(Complex[CoeffsVar](0, 2)))
}

func TestConvert(t *testing.T) {
	s4 := FromIntCoeffs[Coeffs4]([]int64{1, 2, 3, 4})

	// Fixed to growable and back round-trips exactly.
	sn := Convert[CoeffsVar](s4)
	require.True(t, sn.IsExact())
	assert.True(t, sn.Equal(FromIntCoeffs[CoeffsVar]([]int64{1, 2, 3, 4})))
	back := Convert[Coeffs4](sn)
	require.True(t, back.IsExact())
	assert.True(t, back.Equal(s4))

	// Order 4 embeds in capacity 8.
	s8 := Convert[Coeffs8](s4)
	require.True(t, s8.IsExact())
	assert.True(t, s8.ApproxEq(Convert[Coeffs8](sn)))

	// Order 4 does not divide capacity 2: falls back to float.
	s2 := Convert[Coeffs2](s4)
	assert.False(t, s2.IsExact())
	approxEqC(t, s4.Float(), s2.Float())

	// Floats convert as floats.
	f := Convert[Coeffs4](Complex[CoeffsVar](1, -1))
	assert.False(t, f.IsExact())
	approxEqC(t, complex(1, -1), f.Float())
}

func TestFromIntCoeffsPanicsOnBadOrder(t *testing.T) {
	assert.Panics(t, func() { FromIntCoeffs[Coeffs4]([]int64{1, 2, 3}) })
}

func TestString(t *testing.T) {
	assert.Equal(t, "0", Zero[Coeffs4]().String())
	assert.Equal(t, "1", One[Coeffs4]().String())
	assert.Equal(t, "1 * om^1 + -1 * om^3", Sqrt2Pow[Coeffs4](1).String())
	assert.Equal(t, "1/2 + 2 * om^2", FromIntCoeffs[Coeffs4]([]int64{0, 0, 2, 0}).Add(Real4Half()).String())
}

// Real4Half returns 1/2 as an exact order-1 value; kept out of the main
// library surface on purpose.
func Real4Half() Scalar4 {
	var c Coeffs4
	pad, _ := c.Alloc(1)
	buf := make([]Rational, pad)
	buf[0] = NewRational(1, 2)
	return exact(c.Make(buf))
}

package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zxcore/zxcore/scalar"
)

func TestPublicPhaseArithmetic(t *testing.T) {
	// omega^8 at order 4 is a full turn
	s := scalar.One[scalar.Coeffs4]()
	p := scalar.NewRational(1, 4)
	for i := 0; i < 8; i++ {
		s = s.Mul(scalar.FromPhase[scalar.Coeffs4](p))
	}
	assert.True(t, s.IsOne())
}

func TestPublicSqrt2(t *testing.T) {
	s := scalar.Sqrt2[scalar.Coeffs4]().Mul(scalar.OneOverSqrt2[scalar.Coeffs4]())
	assert.True(t, s.IsOne())

	f := scalar.Sqrt2Pow[scalar.Coeffs4](3).Float()
	assert.InDelta(t, math.Pow(math.Sqrt2, 3), real(f), 1e-9)
	assert.InDelta(t, 0, imag(f), 1e-9)
}

func TestPublicConvert(t *testing.T) {
	s := scalar.FromPhase[scalar.CoeffsVar](scalar.NewRational(1, 3))
	assert.True(t, s.IsExact())

	// order 3 does not fit a fixed order-4 store
	d := scalar.Convert[scalar.Coeffs4](s)
	assert.False(t, d.IsExact())
	assert.True(t, d.ApproxEq(scalar.FromPhase[scalar.Coeffs4](scalar.NewRational(1, 3))))
}

package tensor

import (
	"math"
	"math/cmplx"

	"github.com/zxcore/zxcore/internal/scalar"
)

// Arith is the arithmetic a tensor element type must provide: identities,
// phase and sqrt(2)-power constants, the ring operations, and conversion
// from a diagram's arbitrary-order global scalar. Tensors carry their Arith
// the way they would carry a compute backend; the element type itself stays
// an opaque value type.
type Arith[T any] interface {
	Zero() T
	One() T
	// FromPhase returns e^{i*pi*p}.
	FromPhase(p scalar.Rational) T
	// Sqrt2Pow returns sqrt(2)^k.
	Sqrt2Pow(k int) T
	// FromScalar converts a diagram's global scalar into an element.
	FromScalar(s scalar.ScalarVar) T
	Add(a, b T) T
	Mul(a, b T) T
	// Eq is exact equality of elements.
	Eq(a, b T) bool
	// ApproxEq compares floating evaluations within a fixed tolerance.
	ApproxEq(a, b T) bool
	// Float evaluates an element as a complex128.
	Float(a T) complex128
}

// ExactArith implements Arith over exact scalars with coefficient store C.
type ExactArith[C scalar.CoeffStore[C]] struct{}

func (ExactArith[C]) Zero() scalar.Scalar[C] { return scalar.Zero[C]() }
func (ExactArith[C]) One() scalar.Scalar[C]  { return scalar.One[C]() }

func (ExactArith[C]) FromPhase(p scalar.Rational) scalar.Scalar[C] {
	return scalar.FromPhase[C](p)
}

func (ExactArith[C]) Sqrt2Pow(k int) scalar.Scalar[C] {
	return scalar.Sqrt2Pow[C](k)
}

func (ExactArith[C]) FromScalar(s scalar.ScalarVar) scalar.Scalar[C] {
	return scalar.Convert[C](s)
}

func (ExactArith[C]) Add(a, b scalar.Scalar[C]) scalar.Scalar[C] { return a.Add(b) }
func (ExactArith[C]) Mul(a, b scalar.Scalar[C]) scalar.Scalar[C] { return a.Mul(b) }

func (ExactArith[C]) Eq(a, b scalar.Scalar[C]) bool       { return a.Equal(b) }
func (ExactArith[C]) ApproxEq(a, b scalar.Scalar[C]) bool { return a.ApproxEq(b) }

func (ExactArith[C]) Float(a scalar.Scalar[C]) complex128 { return a.Float() }

// Arith4 is the arithmetic over fixed order-4 exact scalars, the usual
// choice for Clifford+T diagrams. It is an interface-typed value so that
// passing it to a generic constructor pins the element type.
var Arith4 Arith[scalar.Scalar4] = ExactArith[scalar.Coeffs4]{}

// ArithVar is the arithmetic over arbitrary-order exact scalars.
var ArithVar Arith[scalar.ScalarVar] = ExactArith[scalar.CoeffsVar]{}

// ArithComplex is the arithmetic over complex128.
var ArithComplex Arith[complex128] = ComplexArith{}

// ComplexArith implements Arith over plain complex128 values, for callers
// who opt out of exact arithmetic from the start.
type ComplexArith struct{}

func (ComplexArith) Zero() complex128 { return 0 }
func (ComplexArith) One() complex128  { return 1 }

func (ComplexArith) FromPhase(p scalar.Rational) complex128 {
	return cmplx.Exp(complex(0, math.Pi*p.Float()))
}

func (ComplexArith) Sqrt2Pow(k int) complex128 {
	return complex(math.Pow(math.Sqrt2, float64(k)), 0)
}

func (ComplexArith) FromScalar(s scalar.ScalarVar) complex128 { return s.Float() }

func (ComplexArith) Add(a, b complex128) complex128 { return a + b }
func (ComplexArith) Mul(a, b complex128) complex128 { return a * b }

func (ComplexArith) Eq(a, b complex128) bool { return a == b }

func (ComplexArith) ApproxEq(a, b complex128) bool {
	return math.Abs(real(a)-real(b)) <= scalar.Epsilon &&
		math.Abs(imag(a)-imag(b)) <= scalar.Epsilon
}

func (ComplexArith) Float(a complex128) complex128 { return a }

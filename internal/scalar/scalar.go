package scalar

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// Scalar is an exact or approximate complex number.
//
// The exact form holds an element of Q[omega] as a coefficient list in a
// CoeffStore; the approximate form is a complex128. Arithmetic across two
// exact values of different orders re-expresses both in the least common
// multiple order; when the concrete store cannot represent that order the
// result silently degrades to the float form. Float is absorbing: any
// operation involving a float operand yields a float.
type Scalar[C CoeffStore[C]] struct {
	coeffs C
	fval   complex128
	float  bool
}

// Scalar4 is the fixed order-4 scalar, the usual element type for tensors
// of Clifford+T diagrams.
type Scalar4 = Scalar[Coeffs4]

// Scalar8 is the fixed order-8 scalar.
type Scalar8 = Scalar[Coeffs8]

// ScalarVar is the arbitrary-order scalar backed by growable storage.
type ScalarVar = Scalar[CoeffsVar]

// Epsilon is the per-component tolerance used by ApproxEq.
const Epsilon = 1e-6

// Zero returns the additive identity in its minimal order.
func Zero[C CoeffStore[C]]() Scalar[C] {
	var c C
	pad, _ := c.Alloc(1)
	return exact(c.Make(make([]Rational, pad)))
}

// One returns the multiplicative identity in its minimal order.
func One[C CoeffStore[C]]() Scalar[C] {
	var c C
	pad, _ := c.Alloc(1)
	buf := make([]Rational, pad)
	buf[0] = RatInt(1)
	return exact(c.Make(buf))
}

// Complex returns the float scalar re + im*i.
func Complex[C CoeffStore[C]](re, im float64) Scalar[C] {
	return Scalar[C]{fval: complex(re, im), float: true}
}

// Real returns the float scalar re.
func Real[C CoeffStore[C]](re float64) Scalar[C] {
	return Complex[C](re, 0)
}

// FromPhase returns e^{i*pi*p} exactly when the order given by p's
// denominator is representable, and as a float otherwise.
func FromPhase[C CoeffStore[C]](p Rational) Scalar[C] {
	var c C
	num, den := p.Numer(), p.Denom()
	pad, ok := c.Alloc(int(den))
	if !ok {
		return Scalar[C]{fval: cmplx.Exp(complex(0, math.Pi*p.Float())), float: true}
	}
	num *= int64(pad)
	den *= int64(pad)
	num = remEuclid(num, 2*den)
	sign := RatInt(1)
	if num >= den {
		num -= den
		sign = RatInt(-1)
	}
	buf := make([]Rational, den)
	buf[num] = sign
	return exact(c.Make(buf))
}

// OnePlusPhase returns 1 + e^{i*pi*p}.
func OnePlusPhase[C CoeffStore[C]](p Rational) Scalar[C] {
	return One[C]().Add(FromPhase[C](p))
}

// Sqrt2 returns sqrt(2).
func Sqrt2[C CoeffStore[C]]() Scalar[C] { return Sqrt2Pow[C](1) }

// OneOverSqrt2 returns 1/sqrt(2).
func OneOverSqrt2[C CoeffStore[C]]() Scalar[C] { return Sqrt2Pow[C](-1) }

// Sqrt2Pow returns sqrt(2)^k. Even powers are plain rationals; odd powers
// use the order-4 identity sqrt(2) = omega - omega^3 for omega a primitive
// 8th root of unity. Stores that cannot hold order 4 degrade to a float.
func Sqrt2Pow[C CoeffStore[C]](k int) Scalar[C] {
	var c C
	pad, ok := c.Alloc(4)
	if !ok {
		return Scalar[C]{fval: complex(math.Pow(math.Sqrt2, float64(k)), 0), float: true}
	}
	buf := make([]Rational, 4*pad)
	if k%2 == 0 {
		buf[0] = pow2Rat(k / 2)
	} else {
		// sqrt(2)^k = 2^((k-1)/2) * (omega - omega^3)
		r := pow2Rat((k - 1) / 2)
		buf[pad] = r
		buf[3*pad] = r.Neg()
	}
	return exact(c.Make(buf))
}

// pow2Rat returns 2^k as a rational, for positive or negative k.
func pow2Rat(k int) Rational {
	if k < 0 {
		return NewRational(1, int64(1)<<uint(-k))
	}
	return RatInt(int64(1) << uint(k))
}

// FromIntCoeffs returns the exact scalar with the given integer coefficient
// list. It panics when the store cannot represent that order.
func FromIntCoeffs[C CoeffStore[C]](ks []int64) Scalar[C] {
	var c C
	pad, ok := c.Alloc(len(ks))
	if !ok {
		panic(fmt.Sprintf("scalar: order %d not representable by this coefficient store", len(ks)))
	}
	buf := make([]Rational, len(ks)*pad)
	for i, k := range ks {
		buf[i*pad] = RatInt(k)
	}
	return exact(c.Make(buf))
}

// Convert re-expresses a scalar of one storage type as another, preserving
// its value. When the source order does not divide the destination's fixed
// capacity the result degrades to a float.
func Convert[D CoeffStore[D], S CoeffStore[S]](s Scalar[S]) Scalar[D] {
	if s.float {
		return Scalar[D]{fval: s.fval, float: true}
	}
	var d D
	n := s.coeffs.Len()
	pad, ok := d.Alloc(n)
	if !ok {
		return Scalar[D]{fval: s.Float(), float: true}
	}
	buf := make([]Rational, n*pad)
	for i := 0; i < n; i++ {
		buf[i*pad] = s.coeffs.At(i)
	}
	return exact(d.Make(buf))
}

func exact[C CoeffStore[C]](c C) Scalar[C] {
	return Scalar[C]{coeffs: c}
}

// IsExact reports whether s holds an exact coefficient list.
func (s Scalar[C]) IsExact() bool { return !s.float }

// Float evaluates s as a complex128. For an exact value of order N this is
// the sum of coefficient[i] * omega^i with omega = e^{i*pi/N}.
func (s Scalar[C]) Float() complex128 {
	if s.float {
		return s.fval
	}
	n := s.coeffs.Len()
	omega := cmplx.Exp(complex(0, math.Pi/float64(n)))
	var sum complex128
	pw := complex(1, 0)
	for i := 0; i < n; i++ {
		sum += complex(s.coeffs.At(i).Float(), 0) * pw
		pw *= omega
	}
	return sum
}

// ToFloat returns s downgraded to its float form.
func (s Scalar[C]) ToFloat() Scalar[C] {
	return Scalar[C]{fval: s.Float(), float: true}
}

// Mul returns s * t. Exact operands of different orders are combined in
// their lcm order; an unrepresentable lcm degrades to a float product.
func (s Scalar[C]) Mul(t Scalar[C]) Scalar[C] {
	if s.float || t.float {
		return Scalar[C]{fval: s.Float() * t.Float(), float: true}
	}
	n0, n1 := s.coeffs.Len(), t.coeffs.Len()
	l, p0, p1 := lcmWithPadding(n0, n1)
	var c C
	pad, ok := c.Alloc(l)
	if !ok {
		return Scalar[C]{fval: s.Float() * t.Float(), float: true}
	}
	length := l * pad
	buf := make([]Rational, length)
	for i := 0; i < n0; i++ {
		ci := s.coeffs.At(i)
		if ci.IsZero() {
			continue
		}
		for j := 0; j < n1; j++ {
			cj := t.coeffs.At(j)
			if cj.IsZero() {
				continue
			}
			// Convolve modulo omega^length = -1: products landing at or
			// past the length fold back negated.
			pos := (i*p0 + j*p1) * pad % (2 * length)
			prod := ci.Mul(cj)
			if pos < length {
				buf[pos] = buf[pos].Add(prod)
			} else {
				buf[pos-length] = buf[pos-length].Sub(prod)
			}
		}
	}
	return exact(c.Make(buf))
}

// Add returns s + t under the same order-promotion rules as Mul.
func (s Scalar[C]) Add(t Scalar[C]) Scalar[C] {
	if s.float || t.float {
		return Scalar[C]{fval: s.Float() + t.Float(), float: true}
	}
	n0, n1 := s.coeffs.Len(), t.coeffs.Len()
	l, p0, p1 := lcmWithPadding(n0, n1)
	var c C
	pad, ok := c.Alloc(l)
	if !ok {
		return Scalar[C]{fval: s.Float() + t.Float(), float: true}
	}
	buf := make([]Rational, l*pad)
	for i := 0; i < n0; i++ {
		buf[i*p0*pad] = buf[i*p0*pad].Add(s.coeffs.At(i))
	}
	for i := 0; i < n1; i++ {
		buf[i*p1*pad] = buf[i*p1*pad].Add(t.coeffs.At(i))
	}
	return exact(c.Make(buf))
}

// MulPhase multiplies s in place by e^{i*pi*p}.
func (s *Scalar[C]) MulPhase(p Rational) {
	*s = s.Mul(FromPhase[C](p))
}

// MulSqrt2Pow multiplies s in place by sqrt(2)^k.
func (s *Scalar[C]) MulSqrt2Pow(k int) {
	*s = s.Mul(Sqrt2Pow[C](k))
}

// Equal reports exact equality. Exact values of different orders are
// compared after re-expression in their lcm order; an exact value is never
// equal to a float one.
func (s Scalar[C]) Equal(t Scalar[C]) bool {
	if s.float != t.float {
		return false
	}
	if s.float {
		return s.fval == t.fval
	}
	n0, n1 := s.coeffs.Len(), t.coeffs.Len()
	l, p0, p1 := lcmWithPadding(n0, n1)
	for i := 0; i < l; i++ {
		var c0, c1 Rational
		if i%p0 == 0 {
			c0 = s.coeffs.At(i / p0)
		}
		if i%p1 == 0 {
			c1 = t.coeffs.At(i / p1)
		}
		if c0 != c1 {
			return false
		}
	}
	return true
}

// ApproxEq compares the floating evaluations of s and t within Epsilon on
// each of the real and imaginary parts, regardless of representation.
func (s Scalar[C]) ApproxEq(t Scalar[C]) bool {
	c0, c1 := s.Float(), t.Float()
	return math.Abs(real(c0)-real(c1)) <= Epsilon &&
		math.Abs(imag(c0)-imag(c1)) <= Epsilon
}

// IsZero reports whether s is exactly zero.
func (s Scalar[C]) IsZero() bool { return s.Equal(Zero[C]()) }

// IsOne reports whether s is exactly one.
func (s Scalar[C]) IsOne() bool { return s.Equal(One[C]()) }

// String renders an exact value as a sum of "c * om^i" terms, omitting zero
// terms, with a bare "0" for zero. Float values render as complex numbers.
func (s Scalar[C]) String() string {
	if s.float {
		return fmt.Sprintf("%v", s.fval)
	}
	var b strings.Builder
	first := true
	for i := 0; i < s.coeffs.Len(); i++ {
		c := s.coeffs.At(i)
		if c.IsZero() {
			continue
		}
		if !first {
			b.WriteString(" + ")
		}
		first = false
		b.WriteString(c.String())
		if i != 0 {
			fmt.Fprintf(&b, " * om^%d", i)
		}
	}
	if first {
		return "0"
	}
	return b.String()
}

// lcmWithPadding returns the lcm of two storage lengths together with the
// index stretch factor for each operand.
func lcmWithPadding(n0, n1 int) (int, int, int) {
	if n0 == n1 {
		return n0, 1, 1
	}
	l := int(lcm(int64(n0), int64(n1)))
	return l, l / n0, l / n1
}

// Package scalar implements exact and approximate complex scalars for
// quantum diagram evaluation.
//
// Exact values are elements of the cyclotomic field Q[omega], where omega is
// a primitive 2N-th root of unity, stored as their first N rational
// coefficients. When an operation cannot stay inside a representable order,
// the value silently degrades to a 64-bit complex float.
package scalar

import (
	"fmt"
	"strconv"
)

// Rational is an exact rational number over int64 with value semantics.
//
// The zero value is the rational 0. Non-zero values are kept in canonical
// form: reduced, with a positive denominator. Rationals are used both as
// cyclotomic coefficients and as phases in units of half-turns (a phase p
// denotes the complex number e^{i*pi*p}).
type Rational struct {
	n int64
	d int64
}

// NewRational returns the canonical rational n/d. It panics if d is zero.
func NewRational(n, d int64) Rational {
	if d == 0 {
		panic("scalar: rational with zero denominator")
	}
	if n == 0 {
		return Rational{}
	}
	if d < 0 {
		n, d = -n, -d
	}
	g := gcd(abs64(n), d)
	return Rational{n: n / g, d: d / g}
}

// RatInt returns the rational n/1.
func RatInt(n int64) Rational {
	if n == 0 {
		return Rational{}
	}
	return Rational{n: n, d: 1}
}

// Numer returns the numerator.
func (r Rational) Numer() int64 { return r.n }

// Denom returns the denominator. The denominator of zero is 1.
func (r Rational) Denom() int64 {
	if r.d == 0 {
		return 1
	}
	return r.d
}

// IsZero reports whether r is zero.
func (r Rational) IsZero() bool { return r.n == 0 }

// IsOne reports whether r is one.
func (r Rational) IsOne() bool { return r.n == 1 && r.d == 1 }

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	return NewRational(r.Numer()*o.Denom()+o.Numer()*r.Denom(), r.Denom()*o.Denom())
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	return NewRational(r.Numer()*o.Denom()-o.Numer()*r.Denom(), r.Denom()*o.Denom())
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	if r.n == 0 || o.n == 0 {
		return Rational{}
	}
	return NewRational(r.n*o.n, r.d*o.d)
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{n: -r.n, d: r.d}
}

// Mod2 reduces r modulo 2, normalized into the half-open interval (-1, 1].
// Phases are half-turns, so this is reduction modulo a full turn.
func (r Rational) Mod2() Rational {
	n, d := r.Numer(), r.Denom()
	n = remEuclid(n, 2*d)
	if n > d {
		n -= 2 * d
	}
	return NewRational(n, d)
}

// Float returns the value of r as a float64.
func (r Rational) Float() float64 {
	return float64(r.Numer()) / float64(r.Denom())
}

// String renders r as "n" for integers and "n/d" otherwise.
func (r Rational) String() string {
	if r.Denom() == 1 {
		return strconv.FormatInt(r.Numer(), 10)
	}
	return fmt.Sprintf("%d/%d", r.Numer(), r.Denom())
}

// remEuclid returns n mod m with a non-negative result, for m > 0.
func remEuclid(n, m int64) int64 {
	n %= m
	if n < 0 {
		n += m
	}
	return n
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm returns the least common multiple of two positive integers.
func lcm(a, b int64) int64 {
	return a / gcd(a, b) * b
}

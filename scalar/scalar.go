// Copyright 2026 ZX Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides the public API for exact diagram scalars.
//
// A Scalar is a complex number that is either exact, an element of the
// cyclotomic field Q[omega] for omega a primitive 2N-th root of unity, or an
// approximate complex128. Exact values survive multiplication, addition and
// phase rotation without rounding; operations that leave the representable
// field degrade the value to a float, and floats are absorbing.
//
// Example:
//
//	s := scalar.FromPhase4(scalar.NewRational(1, 4))
//	s = s.Mul(scalar.Sqrt2Pow4(3))
//	fmt.Println(s, s.Float())
package scalar

import (
	"github.com/zxcore/zxcore/internal/scalar"
)

// Epsilon is the tolerance used by approximate comparisons.
const Epsilon = scalar.Epsilon

// Rational is an exact rational number with value semantics, used both for
// cyclotomic coefficients and for phases in half turns.
type Rational = scalar.Rational

// NewRational returns the canonical rational n/d. It panics if d is zero.
func NewRational(n, d int64) Rational { return scalar.NewRational(n, d) }

// RatInt returns the rational n/1.
func RatInt(n int64) Rational { return scalar.RatInt(n) }

// CoeffStore is the storage strategy for cyclotomic coefficients. Fixed
// stores cap the representable order and trade it for zero allocation,
// the variable store represents any order.
type CoeffStore[C any] = scalar.CoeffStore[C]

// Fixed and variable coefficient stores.
type (
	Coeffs1   = scalar.Coeffs1
	Coeffs2   = scalar.Coeffs2
	Coeffs4   = scalar.Coeffs4
	Coeffs8   = scalar.Coeffs8
	CoeffsVar = scalar.CoeffsVar
)

// Scalar is an exact-or-float complex scalar over coefficient store C.
type Scalar[C CoeffStore[C]] = scalar.Scalar[C]

// Scalar4 is the fixed order-4 scalar, sufficient for Clifford+T phases.
type Scalar4 = scalar.Scalar4

// Scalar8 is the fixed order-8 scalar.
type Scalar8 = scalar.Scalar8

// ScalarVar is the arbitrary-order scalar used for global diagram factors.
type ScalarVar = scalar.ScalarVar

// Zero returns the exact scalar 0.
func Zero[C CoeffStore[C]]() Scalar[C] { return scalar.Zero[C]() }

// One returns the exact scalar 1.
func One[C CoeffStore[C]]() Scalar[C] { return scalar.One[C]() }

// Complex returns the float scalar re + im*i.
func Complex[C CoeffStore[C]](re, im float64) Scalar[C] { return scalar.Complex[C](re, im) }

// Real returns the float scalar re.
func Real[C CoeffStore[C]](re float64) Scalar[C] { return scalar.Real[C](re) }

// FromPhase returns the exact unit scalar e^{i*pi*p} when the order fits the
// store, and its float evaluation otherwise.
func FromPhase[C CoeffStore[C]](p Rational) Scalar[C] { return scalar.FromPhase[C](p) }

// OnePlusPhase returns 1 + e^{i*pi*p}.
func OnePlusPhase[C CoeffStore[C]](p Rational) Scalar[C] { return scalar.OnePlusPhase[C](p) }

// Sqrt2 returns sqrt(2).
func Sqrt2[C CoeffStore[C]]() Scalar[C] { return scalar.Sqrt2[C]() }

// OneOverSqrt2 returns 1/sqrt(2).
func OneOverSqrt2[C CoeffStore[C]]() Scalar[C] { return scalar.OneOverSqrt2[C]() }

// Sqrt2Pow returns sqrt(2)^k for any integer k.
func Sqrt2Pow[C CoeffStore[C]](k int) Scalar[C] { return scalar.Sqrt2Pow[C](k) }

// FromIntCoeffs returns the exact scalar with the given integer coefficients
// over omega of order len(ks). It panics when the order does not fit C.
func FromIntCoeffs[C CoeffStore[C]](ks []int64) Scalar[C] { return scalar.FromIntCoeffs[C](ks) }

// Convert re-expresses a scalar over a different coefficient store,
// degrading to float when the order does not fit the target.
func Convert[D CoeffStore[D], S CoeffStore[S]](s Scalar[S]) Scalar[D] {
	return scalar.Convert[D](s)
}

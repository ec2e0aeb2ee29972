package tensor

import (
	"fmt"

	"github.com/zxcore/zxcore/internal/parallel"
	"github.com/zxcore/zxcore/internal/scalar"
)

// Ident returns the identity map on q qubits as a rank-2q tensor. The first
// q axes index the output wires and the last q axes the input wires.
func Ident[T any](q int, ar Arith[T]) *Tensor[T] {
	one, zero := ar.One(), ar.Zero()
	return FromShapeFn(qubitShape(2*q), ar, func(ix []int) T {
		for i := 0; i < q; i++ {
			if ix[i] != ix[q+i] {
				return zero
			}
		}
		return one
	})
}

// Delta returns the rank-q tensor that is 1 when all indices agree and 0
// otherwise.
func Delta[T any](q int, ar Arith[T]) *Tensor[T] {
	one, zero := ar.One(), ar.Zero()
	return FromShapeFn(qubitShape(q), ar, func(ix []int) T {
		all0, all1 := true, true
		for _, i := range ix {
			if i != 0 {
				all0 = false
			}
			if i != 1 {
				all1 = false
			}
		}
		if all0 || all1 {
			return one
		}
		return zero
	})
}

// CPhase returns the q-qubit controlled phase gate with phase p (in half
// turns) as a rank-2q tensor.
func CPhase[T any](p scalar.Rational, q int, ar Arith[T]) *Tensor[T] {
	t := Ident(q, ar)
	qs := make([]int, q)
	for i := range qs {
		qs[i] = i
	}
	t.CPhaseAt(p, qs)
	return t
}

// Hadamard returns the 2x2 Hadamard matrix.
func Hadamard[T any](ar Arith[T]) *Tensor[T] {
	n := ar.Sqrt2Pow(-1)
	minus := ar.FromPhase(scalar.RatInt(1))
	t := New(Shape{2, 2}, ar)
	t.data[0] = n
	t.data[1] = n
	t.data[2] = n
	t.data[3] = ar.Mul(minus, n)
	return t
}

func (t *Tensor[T]) checkAxes(qs []int) {
	for _, q := range qs {
		if q < 0 || q >= len(t.shape) {
			panic(fmt.Sprintf("tensor: axis %d out of range for rank-%d tensor", q, len(t.shape)))
		}
		if t.shape[q] != 2 {
			panic(fmt.Sprintf("tensor: axis %d has length %d, want 2", q, t.shape[q]))
		}
	}
}

// DeltaAt multiplies the tensor in place by a delta broadcast over the given
// axes, zeroing every element whose indices at qs are not all equal.
func (t *Tensor[T]) DeltaAt(qs []int) {
	t.checkAxes(qs)
	zero := t.ar.Zero()
	parallel.For(len(t.data), func(i int) {
		all0, all1 := true, true
		for _, q := range qs {
			b := i / t.stride[q] % 2
			if b != 0 {
				all0 = false
			}
			if b != 1 {
				all1 = false
			}
		}
		if !all0 && !all1 {
			t.data[i] = zero
		}
	}, parallel.DefaultConfig())
}

// CPhaseAt multiplies the tensor in place by a controlled phase broadcast
// over the given axes: elements whose indices at qs are all 1 pick up the
// phase p, all others are unchanged.
func (t *Tensor[T]) CPhaseAt(p scalar.Rational, qs []int) {
	t.checkAxes(qs)
	f := t.ar.FromPhase(p)
	parallel.For(len(t.data), func(i int) {
		for _, q := range qs {
			if i/t.stride[q]%2 != 1 {
				return
			}
		}
		t.data[i] = t.ar.Mul(t.data[i], f)
	}, parallel.DefaultConfig())
}

// HadamardAt applies a Hadamard to axis q in place, mixing each pair of
// elements that differ only in that index.
func (t *Tensor[T]) HadamardAt(q int) {
	t.checkAxes([]int{q})
	n := t.ar.Sqrt2Pow(-1)
	minus := t.ar.FromPhase(scalar.RatInt(1))
	sq := t.stride[q]
	parallel.For(len(t.data)/2, func(k int) {
		base := k/sq*(2*sq) + k%sq
		a, b := t.data[base], t.data[base+sq]
		t.data[base] = t.ar.Mul(n, t.ar.Add(a, b))
		t.data[base+sq] = t.ar.Mul(n, t.ar.Add(a, t.ar.Mul(minus, b)))
	}, parallel.DefaultConfig())
}

// SumAxis returns a new tensor with the given axis summed out.
func (t *Tensor[T]) SumAxis(axis int) *Tensor[T] {
	t.checkAxes([]int{axis})
	shape := make(Shape, 0, len(t.shape)-1)
	shape = append(shape, t.shape[:axis]...)
	shape = append(shape, t.shape[axis+1:]...)
	out := New(shape, t.ar)
	sa := t.stride[axis]
	for i, v := range t.data {
		lo := i % sa
		hi := i / (sa * t.shape[axis])
		j := hi*sa + lo
		out.data[j] = t.ar.Add(out.data[j], v)
	}
	return out
}

// SwapAxes returns a new tensor with axes a and b exchanged.
func (t *Tensor[T]) SwapAxes(a, b int) *Tensor[T] {
	t.checkAxes([]int{a, b})
	shape := t.shape.Clone()
	shape[a], shape[b] = shape[b], shape[a]
	ix := make([]int, len(shape))
	out := New(shape, t.ar)
	for i := range out.data {
		out.unravel(i, ix)
		ix[a], ix[b] = ix[b], ix[a]
		out.data[i] = t.At(ix...)
	}
	return out
}

// stackScaled stacks the tensor with a scaled copy of itself along a new
// leading axis: the result at index 0 is the original and at index 1 the
// original times f.
func (t *Tensor[T]) stackScaled(f T, scale bool) *Tensor[T] {
	shape := make(Shape, 0, len(t.shape)+1)
	shape = append(shape, 2)
	shape = append(shape, t.shape...)
	out := New(shape, t.ar)
	n := len(t.data)
	copy(out.data[:n], t.data)
	if scale {
		parallel.For(n, func(i int) {
			out.data[n+i] = t.ar.Mul(t.data[i], f)
		}, parallel.DefaultConfig())
	} else {
		copy(out.data[n:], t.data)
	}
	return out
}

// Package tensor builds dense numeric tensors from quantum-circuit-like
// diagram graphs and gate sequences.
//
// The element type is generic: anything with an Arith implementation works,
// in particular exact cyclotomic scalars and complex128. Diagram evaluation
// uses an incremental contraction strategy that sums out each vertex axis as
// soon as all of its edges are accounted for, which bounds intermediate
// tensor rank by the diagram's connectivity structure rather than its total
// vertex count.
package tensor

import (
	"fmt"
	"strings"

	"github.com/zxcore/zxcore/internal/parallel"
)

// Tensor is a dense, axis-ordered array of elements of type T. Data is laid
// out row-major; axes are not named, position alone determines meaning.
type Tensor[T any] struct {
	shape  Shape
	stride []int
	data   []T
	ar     Arith[T]
}

// New creates a tensor of the given shape filled with zeros.
func New[T any](shape Shape, ar Arith[T]) *Tensor[T] {
	t := &Tensor[T]{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]T, shape.NumElements()),
		ar:     ar,
	}
	zero := ar.Zero()
	for i := range t.data {
		t.data[i] = zero
	}
	return t
}

// FromShapeFn creates a tensor of the given shape whose element at each
// index vector ix is f(ix).
func FromShapeFn[T any](shape Shape, ar Arith[T], f func(ix []int) T) *Tensor[T] {
	t := New(shape, ar)
	ix := make([]int, len(shape))
	for i := range t.data {
		t.unravel(i, ix)
		t.data[i] = f(ix)
	}
	return t
}

// ScalarTensor creates a rank-0 tensor holding a single value.
func ScalarTensor[T any](ar Arith[T], v T) *Tensor[T] {
	t := New(Shape{}, ar)
	t.data[0] = v
	return t
}

// Shape returns the tensor's shape. The caller must not mutate it.
func (t *Tensor[T]) Shape() Shape { return t.shape }

// NDim returns the number of axes.
func (t *Tensor[T]) NDim() int { return len(t.shape) }

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int { return len(t.data) }

// Data returns the flat row-major element slice.
func (t *Tensor[T]) Data() []T { return t.data }

// Arith returns the arithmetic the tensor was built with.
func (t *Tensor[T]) Arith() Arith[T] { return t.ar }

// At returns the element at the given index vector.
func (t *Tensor[T]) At(ix ...int) T {
	return t.data[t.offset(ix)]
}

// SetAt assigns the element at the given index vector.
func (t *Tensor[T]) SetAt(v T, ix ...int) {
	t.data[t.offset(ix)] = v
}

func (t *Tensor[T]) offset(ix []int) int {
	if len(ix) != len(t.shape) {
		panic(fmt.Sprintf("tensor: got %d indices for a rank-%d tensor", len(ix), len(t.shape)))
	}
	off := 0
	for d, i := range ix {
		if i < 0 || i >= t.shape[d] {
			panic(fmt.Sprintf("tensor: index %d out of range for axis %d (length %d)", i, d, t.shape[d]))
		}
		off += i * t.stride[d]
	}
	return off
}

// unravel writes the index vector of flat position i into ix.
func (t *Tensor[T]) unravel(i int, ix []int) {
	for d := range t.shape {
		ix[d] = i / t.stride[d] % t.shape[d]
	}
}

// Clone returns a deep copy.
func (t *Tensor[T]) Clone() *Tensor[T] {
	out := &Tensor[T]{
		shape:  t.shape.Clone(),
		stride: append([]int(nil), t.stride...),
		data:   append([]T(nil), t.data...),
		ar:     t.ar,
	}
	return out
}

// Equal reports exact elementwise equality of two tensors of the same shape.
func (t *Tensor[T]) Equal(o *Tensor[T]) bool {
	if !t.shape.Equal(o.shape) {
		return false
	}
	for i := range t.data {
		if !t.ar.Eq(t.data[i], o.data[i]) {
			return false
		}
	}
	return true
}

// ApproxEqual reports elementwise approximate equality of the floating
// evaluations, within the scalar tolerance.
func (t *Tensor[T]) ApproxEqual(o *Tensor[T]) bool {
	if !t.shape.Equal(o.shape) {
		return false
	}
	for i := range t.data {
		if !t.ar.ApproxEq(t.data[i], o.data[i]) {
			return false
		}
	}
	return true
}

// Scale multiplies every element by v in place.
func (t *Tensor[T]) Scale(v T) {
	parallel.For(len(t.data), func(i int) {
		t.data[i] = t.ar.Mul(t.data[i], v)
	}, parallel.DefaultConfig())
}

// String renders the tensor with nested brackets, innermost rows with
// space-separated entries. A rank-0 tensor renders as its single element.
func (t *Tensor[T]) String() string {
	var b strings.Builder
	t.format(&b, 0, 0)
	return b.String()
}

func (t *Tensor[T]) format(b *strings.Builder, dim, off int) {
	if dim == len(t.shape) {
		fmt.Fprintf(b, "%v", t.data[off])
		return
	}
	if dim == len(t.shape)-1 {
		b.WriteString("[ ")
		for i := 0; i < t.shape[dim]; i++ {
			fmt.Fprintf(b, "%v ", t.data[off+i*t.stride[dim]])
		}
		b.WriteString("]")
		return
	}
	b.WriteString("[")
	for i := 0; i < t.shape[dim]; i++ {
		if i > 0 {
			b.WriteString("\n")
		}
		t.format(b, dim+1, off+i*t.stride[dim])
	}
	b.WriteString("]")
}

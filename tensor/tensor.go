// Copyright 2026 ZX Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for evaluating diagrams and
// circuits as dense tensors.
//
// Tensors are generic over their element type; the two stock choices are
// exact order-4 cyclotomic scalars, which represent Clifford+T amplitudes
// without rounding, and complex128:
//
//	t := tensor.FromGraph4(g)
//	f := tensor.FromGraphComplex(g)
//
// Diagram evaluation contracts one vertex at a time and sums out internal
// wires as soon as they are saturated, so memory follows the diagram's cut
// width rather than its total size.
package tensor

import (
	"github.com/zxcore/zxcore/internal/scalar"
	"github.com/zxcore/zxcore/internal/tensor"
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Tensor is a dense, axis-ordered array of elements of type T.
type Tensor[T any] = tensor.Tensor[T]

// Arith is the arithmetic a tensor element type must provide.
type Arith[T any] = tensor.Arith[T]

// ExactArith implements Arith over exact scalars with coefficient store C.
type ExactArith[C scalar.CoeffStore[C]] = tensor.ExactArith[C]

// ComplexArith implements Arith over complex128.
type ComplexArith = tensor.ComplexArith

// Ready-made arithmetics. Passing one of these to a generic constructor
// pins the element type.
var (
	// Arith4 is the arithmetic over fixed order-4 exact scalars.
	Arith4 = tensor.Arith4
	// ArithVar is the arithmetic over arbitrary-order exact scalars.
	ArithVar = tensor.ArithVar
	// ArithComplex is the arithmetic over complex128.
	ArithComplex = tensor.ArithComplex
)

// VertexKind labels the role of a diagram vertex.
type VertexKind = tensor.VertexKind

// Vertex kinds.
const (
	KindBoundary VertexKind = tensor.KindBoundary
	KindSpider   VertexKind = tensor.KindSpider
	KindXSpider  VertexKind = tensor.KindXSpider
	KindHBox     VertexKind = tensor.KindHBox
)

// EdgeKind labels a diagram edge as plain or Hadamard.
type EdgeKind = tensor.EdgeKind

// Edge kinds.
const (
	EdgePlain    EdgeKind = tensor.EdgePlain
	EdgeHadamard EdgeKind = tensor.EdgeHadamard
)

// IncidentEdge is one edge as seen from a fixed endpoint.
type IncidentEdge = tensor.IncidentEdge

// Graph is the diagram view the evaluator consumes.
type Graph = tensor.Graph

// GateKind enumerates the gate set the evaluator understands.
type GateKind = tensor.GateKind

// Gate kinds.
const (
	GateUnknown     GateKind = tensor.GateUnknown
	GateZPhase      GateKind = tensor.GateZPhase
	GateXPhase      GateKind = tensor.GateXPhase
	GateZ           GateKind = tensor.GateZ
	GateNot         GateKind = tensor.GateNot
	GateHadamard    GateKind = tensor.GateHadamard
	GateS           GateKind = tensor.GateS
	GateT           GateKind = tensor.GateT
	GateSdg         GateKind = tensor.GateSdg
	GateTdg         GateKind = tensor.GateTdg
	GateCZ          GateKind = tensor.GateCZ
	GateCNot        GateKind = tensor.GateCNot
	GateSwap        GateKind = tensor.GateSwap
	GateCCZ         GateKind = tensor.GateCCZ
	GateToff        GateKind = tensor.GateToff
	GateXCX         GateKind = tensor.GateXCX
	GateParityPhase GateKind = tensor.GateParityPhase
	GateInitAncilla GateKind = tensor.GateInitAncilla
	GatePostSelect  GateKind = tensor.GatePostSelect
)

// Gate is a single circuit operation.
type Gate = tensor.Gate

// Circuit is the gate-sequence view the evaluator consumes.
type Circuit = tensor.Circuit

// New creates a tensor of the given shape filled with zeros.
func New[T any](shape Shape, ar Arith[T]) *Tensor[T] { return tensor.New(shape, ar) }

// FromShapeFn creates a tensor whose element at index vector ix is f(ix).
func FromShapeFn[T any](shape Shape, ar Arith[T], f func(ix []int) T) *Tensor[T] {
	return tensor.FromShapeFn(shape, ar, f)
}

// ScalarTensor creates a rank-0 tensor holding a single value.
func ScalarTensor[T any](ar Arith[T], v T) *Tensor[T] { return tensor.ScalarTensor(ar, v) }

// Ident returns the identity map on q qubits as a rank-2q tensor.
func Ident[T any](q int, ar Arith[T]) *Tensor[T] { return tensor.Ident(q, ar) }

// Delta returns the rank-q tensor that is 1 when all indices agree.
func Delta[T any](q int, ar Arith[T]) *Tensor[T] { return tensor.Delta(q, ar) }

// CPhase returns the q-qubit controlled phase gate as a rank-2q tensor.
func CPhase[T any](p scalar.Rational, q int, ar Arith[T]) *Tensor[T] {
	return tensor.CPhase(p, q, ar)
}

// Hadamard returns the 2x2 Hadamard matrix.
func Hadamard[T any](ar Arith[T]) *Tensor[T] { return tensor.Hadamard(ar) }

// FromGraph evaluates a diagram to its tensor, one axis per boundary vertex,
// inputs first then outputs.
func FromGraph[T any](g Graph, ar Arith[T]) *Tensor[T] { return tensor.FromGraph(g, ar) }

// FromGraph4 evaluates a diagram over exact order-4 cyclotomic scalars.
func FromGraph4(g Graph) *Tensor[scalar.Scalar4] { return tensor.FromGraph4(g) }

// FromGraphComplex evaluates a diagram over complex128.
func FromGraphComplex(g Graph) *Tensor[complex128] { return tensor.FromGraphComplex(g) }

// FromCircuit evaluates a circuit to its rank-2q tensor, output axes first.
func FromCircuit[T any](c Circuit, ar Arith[T]) *Tensor[T] { return tensor.FromCircuit(c, ar) }

// FromCircuit4 evaluates a circuit over exact order-4 cyclotomic scalars.
func FromCircuit4(c Circuit) *Tensor[scalar.Scalar4] { return tensor.FromCircuit4(c) }

// FromCircuitComplex evaluates a circuit over complex128.
func FromCircuitComplex(c Circuit) *Tensor[complex128] { return tensor.FromCircuitComplex(c) }

// Copyright 2026 ZX Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gf2 provides the public API for linear algebra over the two
// element field.
//
// Matrices hold bits, addition is xor, and elimination uses a blocked
// Gaussian reduction that can mirror every row operation onto recorder
// callbacks, which is how callers extract the transformation matrix or its
// inverse alongside the reduced form.
//
// Example:
//
//	m := gf2.New([][]uint8{{1, 1, 0}, {1, 0, 1}, {0, 1, 1}})
//	rank := m.Clone().Gauss(true)
package gf2

import (
	"github.com/zxcore/zxcore/internal/gf2"
)

// Matrix is a dense matrix over GF(2).
type Matrix = gf2.Matrix

// OpRecorder receives a copy of every elementary operation performed during
// elimination. Matrix itself implements OpRecorder.
type OpRecorder = gf2.OpRecorder

// NoRecorder is an OpRecorder that discards all operations.
type NoRecorder = gf2.NoRecorder

// DefaultBlocksize is the chunk width used by Gauss.
const DefaultBlocksize = gf2.DefaultBlocksize

// New builds a matrix from explicit rows, reducing entries modulo 2. All
// rows must have equal length.
func New(rows [][]uint8) *Matrix { return gf2.New(rows) }

// Build constructs a rows-by-cols matrix from a predicate.
func Build(rows, cols int, f func(i, j int) bool) *Matrix { return gf2.Build(rows, cols, f) }

// Zeros returns the all-zero matrix of the given dimensions.
func Zeros(rows, cols int) *Matrix { return gf2.Zeros(rows, cols) }

// Ones returns the all-one matrix of the given dimensions.
func Ones(rows, cols int) *Matrix { return gf2.Ones(rows, cols) }

// Identity returns the dim-by-dim identity matrix.
func Identity(dim int) *Matrix { return gf2.Identity(dim) }

// UnitVector returns the dim-by-1 column with a single 1 in row i.
func UnitVector(dim, i int) *Matrix { return gf2.UnitVector(dim, i) }

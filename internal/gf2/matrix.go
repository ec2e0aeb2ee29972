// Package gf2 implements matrices and linear algebra over the two-element
// field, including blocked Gaussian elimination with operation recording.
// It is a standalone utility with no dependency on the scalar or tensor
// packages.
package gf2

import (
	"fmt"
	"strings"
)

// Matrix is a rows-by-cols matrix over GF(2). Entries are stored as 0/1
// bytes, row-major. Dimensions are fixed at construction; the elementary
// row and column operations mutate in place.
type Matrix struct {
	rows, cols int
	d          [][]uint8
}

// New builds a matrix from explicit 0/1 content. All rows must have the
// same length.
func New(rows [][]uint8) *Matrix {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	d := make([][]uint8, len(rows))
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("gf2: row %d has %d entries, want %d", i, len(row), cols))
		}
		d[i] = make([]uint8, cols)
		for j, v := range row {
			d[i][j] = v & 1
		}
	}
	return &Matrix{rows: len(rows), cols: cols, d: d}
}

// Build constructs a rows-by-cols matrix with a 1 wherever f(i, j) is true.
func Build(rows, cols int, f func(i, j int) bool) *Matrix {
	d := make([][]uint8, rows)
	for i := range d {
		d[i] = make([]uint8, cols)
		for j := range d[i] {
			if f(i, j) {
				d[i][j] = 1
			}
		}
	}
	return &Matrix{rows: rows, cols: cols, d: d}
}

// Zeros returns the all-zero matrix.
func Zeros(rows, cols int) *Matrix {
	return Build(rows, cols, func(int, int) bool { return false })
}

// Ones returns the all-one matrix.
func Ones(rows, cols int) *Matrix {
	return Build(rows, cols, func(int, int) bool { return true })
}

// Identity returns the dim-by-dim identity matrix.
func Identity(dim int) *Matrix {
	return Build(dim, dim, func(i, j int) bool { return i == j })
}

// UnitVector returns a dim-by-1 column vector with a single 1 at index i.
func UnitVector(dim, i int) *Matrix {
	return Build(dim, 1, func(r, _ int) bool { return r == i })
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the entry at row i, column j.
func (m *Matrix) At(i, j int) uint8 { return m.d[i][j] }

// Set assigns the entry at row i, column j.
func (m *Matrix) Set(i, j int, v uint8) { m.d[i][j] = v & 1 }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	d := make([][]uint8, m.rows)
	for i, row := range m.d {
		d[i] = append([]uint8(nil), row...)
	}
	return &Matrix{rows: m.rows, cols: m.cols, d: d}
}

// Equal reports whether both matrices have the same dimensions and entries.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.d {
		for j := range m.d[i] {
			if m.d[i][j] != o.d[i][j] {
				return false
			}
		}
	}
	return true
}

// Transpose returns the transpose as a new matrix.
func (m *Matrix) Transpose() *Matrix {
	return Build(m.cols, m.rows, func(i, j int) bool { return m.d[j][i] == 1 })
}

// Mul returns the GF(2) matrix product m * o. It panics when the inner
// dimensions do not match.
func (m *Matrix) Mul(o *Matrix) *Matrix {
	if m.cols != o.rows {
		panic(fmt.Sprintf("gf2: cannot multiply %dx%d by %dx%d", m.rows, m.cols, o.rows, o.cols))
	}
	out := Zeros(m.rows, o.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			if m.d[i][k] == 0 {
				continue
			}
			for j := 0; j < o.cols; j++ {
				out.d[i][j] ^= o.d[k][j]
			}
		}
	}
	return out
}

// RowAdd adds row r0 into row r1.
func (m *Matrix) RowAdd(r0, r1 int) {
	for j := 0; j < m.cols; j++ {
		m.d[r1][j] ^= m.d[r0][j]
	}
}

// ColAdd adds column c0 into column c1.
func (m *Matrix) ColAdd(c0, c1 int) {
	for i := 0; i < m.rows; i++ {
		m.d[i][c1] ^= m.d[i][c0]
	}
}

// RowSwap exchanges rows r0 and r1.
func (m *Matrix) RowSwap(r0, r1 int) {
	m.d[r0], m.d[r1] = m.d[r1], m.d[r0]
}

// ColSwap exchanges columns c0 and c1.
func (m *Matrix) ColSwap(c0, c1 int) {
	for i := 0; i < m.rows; i++ {
		m.d[i][c0], m.d[i][c1] = m.d[i][c1], m.d[i][c0]
	}
}

// String renders each row bracketed with space-separated entries.
func (m *Matrix) String() string {
	var b strings.Builder
	for _, row := range m.d {
		b.WriteString("[ ")
		for _, v := range row {
			fmt.Fprintf(&b, "%d ", v)
		}
		b.WriteString("]\n")
	}
	return b.String()
}

package gf2

// OpRecorder observes the elementary row and column operations applied
// during elimination. Mirroring row additions onto a separate identity
// matrix accumulates the transform G with G*M = M'; mirroring column
// additions in the reversed direction accumulates its inverse. Matrix
// itself implements OpRecorder.
type OpRecorder interface {
	RowAdd(r0, r1 int)
	ColAdd(c0, c1 int)
	RowSwap(r0, r1 int)
	ColSwap(c0, c1 int)
}

// NoRecorder is the default no-op recorder.
type NoRecorder struct{}

func (NoRecorder) RowAdd(_, _ int)  {}
func (NoRecorder) ColAdd(_, _ int)  {}
func (NoRecorder) RowSwap(_, _ int) {}
func (NoRecorder) ColSwap(_, _ int) {}

// DefaultBlocksize is the column block width used by Gauss. Blocking
// enables the Patel-Markov-Hayes duplicate-row elimination; a blocksize
// equal to the column count reduces it to plain duplicate-row removal
// before ordinary elimination.
const DefaultBlocksize = 3

// Gauss reduces m in place to echelon form and returns its rank. With
// fullReduce it computes the reduced row-echelon form, needed for matrix
// inversion and CNOT circuit synthesis.
func (m *Matrix) Gauss(fullReduce bool) int {
	return m.GaussWith(fullReduce, DefaultBlocksize, NoRecorder{}, NoRecorder{})
}

// GaussWith is Gauss with an explicit blocksize and recorders. Every row
// operation applied to m is mirrored onto rowRec in the same order, and
// every one is mirrored as the opposite-direction column operation onto
// colRec (so that colRec accumulates the inverse transform).
func (m *Matrix) GaussWith(fullReduce bool, blocksize int, rowRec, colRec OpRecorder) int {
	if blocksize <= 0 {
		panic("gf2: blocksize must be positive")
	}
	rows, cols := m.rows, m.cols
	numBlocks := (cols + blocksize - 1) / blocksize
	pivotRow := 0
	var pivotCols []int

	rowAdd := func(r0, r1 int) {
		m.RowAdd(r0, r1)
		rowRec.RowAdd(r0, r1)
		colRec.ColAdd(r1, r0)
	}
	rowSwap := func(r0, r1 int) {
		m.RowSwap(r0, r1)
		rowRec.RowSwap(r0, r1)
		colRec.ColSwap(r0, r1)
	}

	for sec := 0; sec < numBlocks; sec++ {
		i0 := sec * blocksize
		i1 := min(cols, i0+blocksize)

		// Rows with identical patterns on this block's columns collapse to
		// one pivot search: add the first occurrence into each later
		// duplicate (Patel-Markov-Hayes).
		chunks := make(map[string]int)
		for r := pivotRow; r < rows; r++ {
			ch := m.d[r][i0:i1]
			if allZero(ch) {
				continue
			}
			if r0, ok := chunks[string(ch)]; ok {
				rowAdd(r0, r)
			} else {
				chunks[string(ch)] = r
			}
		}

		for p := i0; p < i1; p++ {
			r0 := -1
			for r := pivotRow; r < rows; r++ {
				if m.d[r][p] != 0 {
					r0 = r
					break
				}
			}
			if r0 < 0 {
				continue
			}
			if r0 != pivotRow {
				rowSwap(r0, pivotRow)
			}
			for r1 := pivotRow + 1; r1 < rows; r1++ {
				if m.d[r1][p] != 0 {
					rowAdd(pivotRow, r1)
				}
			}
			pivotCols = append(pivotCols, p)
			pivotRow++
		}
	}

	rank := pivotRow

	if fullReduce && rank > 0 {
		// Backward pass: right to left, bottom up, clearing every pivot
		// column above its pivot. Pivot i sits in row i after the forward
		// pass, which the duplicate-row additions below preserve (they only
		// touch columns at or right of the added row's pivot).
		idx := rank - 1
		for sec := numBlocks - 1; sec >= 0 && idx >= 0; sec-- {
			i0 := sec * blocksize
			i1 := min(cols, i0+blocksize)

			chunks := make(map[string]int)
			for r := idx; r >= 0; r-- {
				ch := m.d[r][i0:i1]
				if allZero(ch) {
					continue
				}
				if r0, ok := chunks[string(ch)]; ok {
					rowAdd(r0, r)
				} else {
					chunks[string(ch)] = r
				}
			}

			for idx >= 0 && pivotCols[idx] >= i0 {
				p := pivotCols[idx]
				for r := 0; r < idx; r++ {
					if m.d[r][p] != 0 {
						rowAdd(idx, r)
					}
				}
				idx--
			}
		}
	}

	return rank
}

// Rank returns the rank of m, computed by elimination on a private copy.
func (m *Matrix) Rank() int {
	return m.Clone().Gauss(false)
}

// Inverse returns the inverse of m when it exists. Elimination to reduced
// row-echelon form runs on a copy while the row operations are mirrored
// onto an identity matrix; if full rank is reached that matrix is the
// inverse.
func (m *Matrix) Inverse() (*Matrix, bool) {
	if m.rows != m.cols {
		return nil, false
	}
	work := m.Clone()
	inv := Identity(m.rows)
	rank := work.GaussWith(true, DefaultBlocksize, inv, NoRecorder{})
	if rank < m.rows {
		return nil, false
	}
	return inv, true
}

func allZero(xs []uint8) bool {
	for _, x := range xs {
		if x != 0 {
			return false
		}
	}
	return true
}

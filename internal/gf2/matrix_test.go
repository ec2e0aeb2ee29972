package gf2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatMul(t *testing.T) {
	v := New([][]uint8{
		{1, 0, 1, 0},
		{1, 1, 1, 1},
		{0, 0, 1, 1},
	})
	w := New([][]uint8{
		{1, 1},
		{1, 0},
		{0, 0},
		{0, 1},
	})
	u := New([][]uint8{
		{1, 1},
		{0, 0},
		{0, 1},
	})

	assert.True(t, v.Mul(w).Equal(u))
}

func TestMulDimensionMismatchPanics(t *testing.T) {
	a := Zeros(2, 3)
	b := Zeros(2, 3)
	assert.Panics(t, func() { a.Mul(b) })
}

func TestTranspose(t *testing.T) {
	v := New([][]uint8{
		{1, 0, 1, 0},
		{1, 1, 1, 1},
		{0, 0, 1, 1},
	})
	vt := New([][]uint8{
		{1, 1, 0},
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 1},
	})

	assert.True(t, v.Transpose().Equal(vt))

	// No aliasing with the source.
	tr := v.Transpose()
	tr.Set(0, 0, 0)
	assert.Equal(t, uint8(1), v.At(0, 0))
}

func TestUnitVectors(t *testing.T) {
	v := New([][]uint8{
		{1, 0, 1, 0},
		{1, 1, 1, 1},
		{0, 0, 1, 1},
	})

	want := [][]uint8{
		{1, 1, 0},
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 1},
	}
	for i, col := range want {
		c := New([][]uint8{col}).Transpose()
		assert.True(t, v.Mul(UnitVector(4, i)).Equal(c), "column %d", i)
	}
}

func TestRowOps(t *testing.T) {
	v := New([][]uint8{
		{1, 0, 1, 0},
		{1, 1, 1, 1},
		{0, 0, 1, 1},
	})

	v.RowAdd(1, 2)
	assert.True(t, v.Equal(New([][]uint8{
		{1, 0, 1, 0},
		{1, 1, 1, 1},
		{1, 1, 0, 0},
	})))

	v.RowSwap(0, 1)
	assert.True(t, v.Equal(New([][]uint8{
		{1, 1, 1, 1},
		{1, 0, 1, 0},
		{1, 1, 0, 0},
	})))
}

func TestColOps(t *testing.T) {
	v := New([][]uint8{
		{1, 0, 1, 0},
		{1, 1, 1, 1},
		{0, 0, 1, 1},
	})

	v.ColAdd(2, 1)
	assert.True(t, v.Equal(New([][]uint8{
		{1, 1, 1, 0},
		{1, 0, 1, 1},
		{0, 1, 1, 1},
	})))

	v.ColSwap(0, 3)
	assert.True(t, v.Equal(New([][]uint8{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 1, 0},
	})))
}

func TestRowOpInvolutions(t *testing.T) {
	v := New([][]uint8{
		{1, 0, 1, 0},
		{1, 1, 1, 1},
		{0, 0, 1, 1},
	})
	orig := v.Clone()

	// Row-add twice restores the target row; row-swap twice is identity.
	v.RowAdd(0, 1)
	v.RowAdd(0, 1)
	assert.True(t, v.Equal(orig))

	v.RowSwap(0, 2)
	v.RowSwap(0, 2)
	assert.True(t, v.Equal(orig))
}

func TestBuildersAndString(t *testing.T) {
	assert.True(t, Ones(2, 2).Equal(New([][]uint8{{1, 1}, {1, 1}})))
	assert.True(t, Zeros(1, 3).Equal(New([][]uint8{{0, 0, 0}})))
	assert.Equal(t, "[ 1 0 ]\n[ 0 1 ]\n", Identity(2).String())
}

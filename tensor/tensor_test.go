package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zxcore/zxcore/scalar"
	"github.com/zxcore/zxcore/tensor"
)

type gateList struct {
	qubits int
	gates  []tensor.Gate
}

func (c gateList) NumQubits() int       { return c.qubits }
func (c gateList) Gates() []tensor.Gate { return c.gates }

func TestHadamardSquaresToIdentity(t *testing.T) {
	c := gateList{qubits: 1, gates: []tensor.Gate{
		{Kind: tensor.GateHadamard, Qubits: []int{0}},
		{Kind: tensor.GateHadamard, Qubits: []int{0}},
	}}
	assert.True(t, tensor.FromCircuit4(c).Equal(tensor.Ident(1, tensor.Arith4)))
}

func TestStringRendering(t *testing.T) {
	id := tensor.Ident(1, tensor.ArithComplex)
	assert.Equal(t, "[[ (1+0i) (0+0i) ]\n[ (0+0i) (1+0i) ]]", id.String())

	v := tensor.New(tensor.Shape{2}, tensor.ArithComplex)
	assert.Equal(t, "[ (0+0i) (0+0i) ]", v.String())
}

func TestExactStringRendering(t *testing.T) {
	h := tensor.Hadamard(tensor.Arith4)
	s := h.At(0, 0)
	// 1/sqrt(2) = (1/2) * (omega - omega^3) at order 4
	assert.Equal(t, "1/2 * om^1 + -1/2 * om^3", s.String())
}

func TestFromShapeFn(t *testing.T) {
	a := tensor.FromShapeFn(tensor.Shape{2, 2}, tensor.ArithComplex, func(ix []int) complex128 {
		return complex(float64(ix[0]*2+ix[1]), 0)
	})
	require.True(t, a.Shape().Equal(tensor.Shape{2, 2}))
	assert.Equal(t, complex128(3), a.At(1, 1))
}

func TestCPhasePublic(t *testing.T) {
	cz := tensor.CPhase(scalar.RatInt(1), 2, tensor.Arith4)
	minus := scalar.FromPhase[scalar.Coeffs4](scalar.RatInt(1))
	assert.True(t, cz.At(1, 1, 1, 1).Equal(minus))
}

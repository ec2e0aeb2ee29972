package tensor

import (
	"fmt"

	"github.com/zxcore/zxcore/internal/scalar"
)

// GateKind enumerates the gate set the evaluator understands.
type GateKind uint8

const (
	GateUnknown GateKind = iota
	GateZPhase
	GateXPhase
	GateZ
	GateNot
	GateHadamard
	GateS
	GateT
	GateSdg
	GateTdg
	GateCZ
	GateCNot
	GateSwap
	GateCCZ
	GateToff
	GateXCX
	GateParityPhase
	GateInitAncilla
	GatePostSelect
)

func (k GateKind) String() string {
	switch k {
	case GateUnknown:
		return "unknown"
	case GateZPhase:
		return "rz"
	case GateXPhase:
		return "rx"
	case GateZ:
		return "z"
	case GateNot:
		return "x"
	case GateHadamard:
		return "h"
	case GateS:
		return "s"
	case GateT:
		return "t"
	case GateSdg:
		return "sdg"
	case GateTdg:
		return "tdg"
	case GateCZ:
		return "cz"
	case GateCNot:
		return "cx"
	case GateSwap:
		return "swap"
	case GateCCZ:
		return "ccz"
	case GateToff:
		return "ccx"
	case GateXCX:
		return "xcx"
	case GateParityPhase:
		return "parity-phase"
	case GateInitAncilla:
		return "init-ancilla"
	case GatePostSelect:
		return "post-select"
	default:
		return fmt.Sprintf("GateKind(%d)", uint8(k))
	}
}

// Gate is a single circuit operation. Phase is only meaningful for the
// parameterized kinds and is given in half turns.
type Gate struct {
	Kind   GateKind
	Qubits []int
	Phase  scalar.Rational
}

// Circuit is the gate-sequence view the evaluator consumes.
type Circuit interface {
	NumQubits() int
	Gates() []Gate
}

// FromCircuit evaluates a circuit to its rank-2q tensor, output axes first.
//
// Gates are applied to the input axes of an identity map in reverse order.
// Every supported gate is symmetric as a tensor, so this yields the circuit
// itself rather than its transpose.
func FromCircuit[T any](c Circuit, ar Arith[T]) *Tensor[T] {
	a := Ident(c.NumQubits(), ar)
	gates := c.Gates()
	for i := len(gates) - 1; i >= 0; i-- {
		g := gates[i]
		switch g.Kind {
		case GateZPhase:
			a.CPhaseAt(g.Phase, g.Qubits)
		case GateZ, GateCZ, GateCCZ:
			a.CPhaseAt(scalar.RatInt(1), g.Qubits)
		case GateS:
			a.CPhaseAt(scalar.NewRational(1, 2), g.Qubits)
		case GateT:
			a.CPhaseAt(scalar.NewRational(1, 4), g.Qubits)
		case GateSdg:
			a.CPhaseAt(scalar.NewRational(-1, 2), g.Qubits)
		case GateTdg:
			a.CPhaseAt(scalar.NewRational(-1, 4), g.Qubits)
		case GateHadamard:
			a.HadamardAt(g.Qubits[0])
		case GateNot:
			a.HadamardAt(g.Qubits[0])
			a.CPhaseAt(scalar.RatInt(1), g.Qubits)
			a.HadamardAt(g.Qubits[0])
		case GateXPhase:
			a.HadamardAt(g.Qubits[0])
			a.CPhaseAt(g.Phase, g.Qubits)
			a.HadamardAt(g.Qubits[0])
		case GateCNot:
			a.HadamardAt(g.Qubits[1])
			a.CPhaseAt(scalar.RatInt(1), g.Qubits)
			a.HadamardAt(g.Qubits[1])
		case GateToff:
			a.HadamardAt(g.Qubits[2])
			a.CPhaseAt(scalar.RatInt(1), g.Qubits)
			a.HadamardAt(g.Qubits[2])
		case GateSwap:
			a = a.SwapAxes(g.Qubits[0], g.Qubits[1])
		case GateXCX:
			a.HadamardAt(g.Qubits[0])
			a.HadamardAt(g.Qubits[1])
			a.CPhaseAt(g.Phase, g.Qubits)
			a.HadamardAt(g.Qubits[0])
			a.HadamardAt(g.Qubits[1])
		case GateParityPhase, GateInitAncilla, GatePostSelect:
			panic(fmt.Sprintf("tensor: unsupported gate: %v", g.Kind))
		case GateUnknown:
			// unknown gates are quietly ignored
		}
	}
	return a
}

// FromCircuit4 evaluates a circuit over exact order-4 cyclotomic scalars.
func FromCircuit4(c Circuit) *Tensor[scalar.Scalar4] {
	return FromCircuit[scalar.Scalar4](c, Arith4)
}

// FromCircuitComplex evaluates a circuit over complex128.
func FromCircuitComplex(c Circuit) *Tensor[complex128] {
	return FromCircuit[complex128](c, ArithComplex)
}

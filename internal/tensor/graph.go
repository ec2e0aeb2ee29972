package tensor

import (
	"fmt"

	"github.com/zxcore/zxcore/internal/scalar"
)

// VertexKind labels the role of a diagram vertex.
type VertexKind uint8

const (
	KindBoundary VertexKind = iota
	KindSpider
	KindXSpider
	KindHBox
)

func (k VertexKind) String() string {
	switch k {
	case KindBoundary:
		return "boundary"
	case KindSpider:
		return "spider"
	case KindXSpider:
		return "x-spider"
	case KindHBox:
		return "h-box"
	default:
		return fmt.Sprintf("VertexKind(%d)", uint8(k))
	}
}

// EdgeKind labels a diagram edge as plain or Hadamard.
type EdgeKind uint8

const (
	EdgePlain EdgeKind = iota
	EdgeHadamard
)

// IncidentEdge is one edge as seen from a fixed endpoint.
type IncidentEdge struct {
	Neighbor int
	Kind     EdgeKind
}

// Graph is the diagram view the evaluator consumes. Vertex identifiers are
// arbitrary ints; Vertices, Inputs, Outputs and IncidentEdges must enumerate
// in a stable order.
type Graph interface {
	Vertices() []int
	NumVertices() int
	Kind(v int) VertexKind
	Phase(v int) scalar.Rational
	Degree(v int) int
	IncidentEdges(v int) []IncidentEdge
	Inputs() []int
	Outputs() []int
	Scalar() *scalar.ScalarVar
}

// FromGraph evaluates a diagram to its tensor. One axis of the result
// corresponds to each boundary vertex, inputs first then outputs, each in
// declared order.
//
// Vertices are absorbed one at a time and each internal vertex's axis is
// summed out as soon as all of its edges have been applied, so the rank of
// the intermediate tensor stays bounded by the size of the cut between
// processed and unprocessed vertices.
func FromGraph[T any](g Graph, ar Arith[T]) *Tensor[T] {
	for _, v := range g.Vertices() {
		if k := g.Kind(v); k != KindBoundary && k != KindSpider {
			panic(fmt.Sprintf("tensor: unsupported vertex kind: %v", k))
		}
	}

	var vs []int
	vs = append(vs, g.Inputs()...)
	for _, v := range g.Vertices() {
		if g.Kind(v) != KindBoundary {
			vs = append(vs, v)
		}
	}
	vs = append(vs, g.Outputs()...)

	if len(vs) < g.NumVertices() {
		panic("tensor: all boundary vertices must be an input or an output")
	}

	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}

	// open axes of the working tensor, front is axis 0
	var indexv []int
	// vertices already absorbed, mapped to their applied-edge count
	seen := make(map[int]int)

	a := ScalarTensor(ar, ar.One())
	fst := true
	numHad := 0

	for _, v := range vs {
		p := g.Phase(v)
		f := ar.One()
		scale := !p.IsZero()
		if scale {
			f = ar.FromPhase(p)
		}
		if fst {
			a = New(Shape{2}, ar)
			a.data[0] = ar.One()
			a.data[1] = f
			fst = false
		} else {
			a = a.stackScaled(f, scale)
		}

		indexv = append([]int{v}, indexv...)
		degV := 0

		for _, e := range g.IncidentEdges(v) {
			w := e.Neighbor
			if _, ok := seen[w]; !ok {
				continue
			}
			degV++
			seen[w]++

			vi := indexOf(indexv, v)
			wi := indexOf(indexv, w)

			if e.Kind == EdgePlain {
				a.DeltaAt([]int{vi, wi})
			} else {
				a.CPhaseAt(scalar.RatInt(1), []int{vi, wi})
				numHad++
			}

			// sum out any vertex whose edges are now all applied
			if g.Kind(v) != KindBoundary && g.Degree(v) == degV {
				a = a.SumAxis(vi)
				indexv = append(indexv[:vi], indexv[vi+1:]...)
				if wi > vi {
					wi--
				}
			}
			if g.Kind(w) != KindBoundary && g.Degree(w) == seen[w] {
				a = a.SumAxis(wi)
				indexv = append(indexv[:wi], indexv[wi+1:]...)
			}
		}
		seen[v] = degV
	}

	s := ar.Mul(ar.FromScalar(*g.Scalar()), ar.Sqrt2Pow(-numHad))
	a.Scale(s)
	return a
}

// FromGraph4 evaluates a diagram over exact order-4 cyclotomic scalars.
func FromGraph4(g Graph) *Tensor[scalar.Scalar4] {
	return FromGraph[scalar.Scalar4](g, Arith4)
}

// FromGraphComplex evaluates a diagram over complex128.
func FromGraphComplex(g Graph) *Tensor[complex128] {
	return FromGraph[complex128](g, ArithComplex)
}

func indexOf(xs []int, x int) int {
	for i, y := range xs {
		if y == x {
			return i
		}
	}
	panic("tensor: vertex missing from open index list")
}

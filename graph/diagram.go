// Copyright 2026 ZX Core Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides a mutable open diagram that can be evaluated to a
// tensor.
//
// A Diagram is a set of phased vertices joined by plain or Hadamard edges,
// together with ordered input and output lists naming its boundary vertices
// and a global scalar factor. Adjacency is stored in an undirected weighted
// lvlath graph; the edge weight carries the edge kind.
//
// Example:
//
//	d := graph.New()
//	in := d.AddVertex(graph.KindBoundary, scalar.RatInt(0))
//	s := d.AddVertex(graph.KindSpider, scalar.NewRational(1, 2))
//	out := d.AddVertex(graph.KindBoundary, scalar.RatInt(0))
//	d.AddEdge(in, s, graph.EdgePlain)
//	d.AddEdge(s, out, graph.EdgePlain)
//	d.SetInputs(in)
//	d.SetOutputs(out)
//	t := tensor.FromGraph4(d)
package graph

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvlath/core"

	"github.com/zxcore/zxcore/internal/scalar"
	"github.com/zxcore/zxcore/internal/tensor"
)

// Re-exported vertex and edge kinds, so diagram construction does not force
// an import of the tensor package.
const (
	KindBoundary = tensor.KindBoundary
	KindSpider   = tensor.KindSpider
	KindXSpider  = tensor.KindXSpider
	KindHBox     = tensor.KindHBox

	EdgePlain    = tensor.EdgePlain
	EdgeHadamard = tensor.EdgeHadamard
)

// Diagram is a mutable open diagram. Vertices are dense ints starting at 0.
// It implements the evaluator's Graph view; pass it to tensor.FromGraph.
//
// A Diagram is not safe for concurrent mutation.
type Diagram struct {
	adj     *core.Graph
	kinds   []tensor.VertexKind
	phases  []scalar.Rational
	inputs  []int
	outputs []int
	sc      scalar.ScalarVar
}

// New returns an empty diagram with scalar 1.
func New() *Diagram {
	adj, err := core.NewGraph(core.WithWeighted())
	if err != nil {
		panic(fmt.Sprintf("graph: new graph: %v", err))
	}
	return &Diagram{
		adj: adj,
		sc:  scalar.One[scalar.CoeffsVar](),
	}
}

// AddVertex adds a vertex of the given kind and phase and returns its id.
func (d *Diagram) AddVertex(kind tensor.VertexKind, phase scalar.Rational) int {
	v := len(d.kinds)
	if err := d.adj.AddVertex(strconv.Itoa(v)); err != nil {
		panic(fmt.Sprintf("graph: add vertex %d: %v", v, err))
	}
	d.kinds = append(d.kinds, kind)
	d.phases = append(d.phases, phase.Mod2())
	return v
}

// AddEdge joins two existing vertices with an edge of the given kind. It
// panics on unknown vertices or self loops.
func (d *Diagram) AddEdge(v, w int, kind tensor.EdgeKind) {
	if v == w {
		panic("graph: self loops are not allowed")
	}
	d.checkVertex(v)
	d.checkVertex(w)
	if _, err := d.adj.AddEdge(strconv.Itoa(v), strconv.Itoa(w), float64(kind)); err != nil {
		panic(fmt.Sprintf("graph: add edge %d-%d: %v", v, w, err))
	}
}

// SetInputs declares the ordered input boundary vertices.
func (d *Diagram) SetInputs(vs ...int) {
	for _, v := range vs {
		d.checkBoundary(v)
	}
	d.inputs = append([]int(nil), vs...)
}

// SetOutputs declares the ordered output boundary vertices.
func (d *Diagram) SetOutputs(vs ...int) {
	for _, v := range vs {
		d.checkBoundary(v)
	}
	d.outputs = append([]int(nil), vs...)
}

// SetPhase replaces the phase of a vertex, reduced modulo a full turn.
func (d *Diagram) SetPhase(v int, p scalar.Rational) {
	d.checkVertex(v)
	d.phases[v] = p.Mod2()
}

func (d *Diagram) checkVertex(v int) {
	if v < 0 || v >= len(d.kinds) {
		panic(fmt.Sprintf("graph: unknown vertex %d", v))
	}
}

func (d *Diagram) checkBoundary(v int) {
	d.checkVertex(v)
	if d.kinds[v] != tensor.KindBoundary {
		panic(fmt.Sprintf("graph: vertex %d is not a boundary vertex", v))
	}
}

// Vertices returns all vertex ids in insertion order.
func (d *Diagram) Vertices() []int {
	vs := make([]int, len(d.kinds))
	for i := range vs {
		vs[i] = i
	}
	return vs
}

// NumVertices returns the number of vertices.
func (d *Diagram) NumVertices() int { return len(d.kinds) }

// NumEdges returns the number of edges.
func (d *Diagram) NumEdges() int { return d.adj.EdgeCount() }

// Kind returns the kind of a vertex.
func (d *Diagram) Kind(v int) tensor.VertexKind {
	d.checkVertex(v)
	return d.kinds[v]
}

// Phase returns the phase of a vertex in half turns.
func (d *Diagram) Phase(v int) scalar.Rational {
	d.checkVertex(v)
	return d.phases[v]
}

// Degree returns the number of edges incident to a vertex.
func (d *Diagram) Degree(v int) int {
	return len(d.IncidentEdges(v))
}

// IncidentEdges returns the edges at v in a stable order.
func (d *Diagram) IncidentEdges(v int) []tensor.IncidentEdge {
	d.checkVertex(v)
	id := strconv.Itoa(v)
	es, err := d.adj.Neighbors(id)
	if err != nil {
		panic(fmt.Sprintf("graph: neighbors of %d: %v", v, err))
	}
	out := make([]tensor.IncidentEdge, 0, len(es))
	for _, e := range es {
		other := e.To
		if other == id {
			other = e.From
		}
		w, err := strconv.Atoi(other)
		if err != nil {
			panic(fmt.Sprintf("graph: bad vertex id %q", other))
		}
		out = append(out, tensor.IncidentEdge{Neighbor: w, Kind: tensor.EdgeKind(e.Weight)})
	}
	return out
}

// EdgeKindBetween reports the kind of the edge joining v and w, if any.
func (d *Diagram) EdgeKindBetween(v, w int) (tensor.EdgeKind, bool) {
	for _, e := range d.IncidentEdges(v) {
		if e.Neighbor == w {
			return e.Kind, true
		}
	}
	return 0, false
}

// Inputs returns the declared input vertices in order.
func (d *Diagram) Inputs() []int { return d.inputs }

// Outputs returns the declared output vertices in order.
func (d *Diagram) Outputs() []int { return d.outputs }

// Scalar returns the diagram's global scalar factor for in-place update.
func (d *Diagram) Scalar() *scalar.ScalarVar { return &d.sc }

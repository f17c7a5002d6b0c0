// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"errors"
	"fmt"

	"github.com/Jzow/Fornjot/math32"
	"github.com/Jzow/Fornjot/storage"
)

// GlobalVertexMismatchError reports a half-edge whose start vertex's global
// form is not one of the vertices of the half-edge's global form. This
// catches constructions that accidentally attach a half-edge to a global
// edge built from different, merely value-equal vertices.
type GlobalVertexMismatchError struct {
	// GlobalVertexFromHalfEdge is the global form of the half-edge's
	// start vertex.
	GlobalVertexFromHalfEdge storage.Handle[GlobalVertex]

	// GlobalVerticesFromGlobalForm are the vertices of the half-edge's
	// global form, in normalized order.
	GlobalVerticesFromGlobalForm [2]storage.Handle[GlobalVertex]
}

func (e GlobalVertexMismatchError) Error() string {
	return fmt.Sprintf(
		"global form of half-edge's start vertex (id %d) does not match the vertices of the half-edge's global form (ids %d, %d)",
		e.GlobalVertexFromHalfEdge.ID(),
		e.GlobalVerticesFromGlobalForm[0].ID(),
		e.GlobalVerticesFromGlobalForm[1].ID())
}

// VerticesCoincideOnCurveError reports a half-edge whose two boundary
// positions on its curve are closer than the configured minimum distance,
// making the edge degenerate.
type VerticesCoincideOnCurveError struct {
	Start    float32
	End      float32
	Distance float32
}

func (e VerticesCoincideOnCurveError) Error() string {
	return fmt.Sprintf(
		"vertices of half-edge on curve are coincident: start %v, end %v, distance %v",
		e.Start, e.End, e.Distance)
}

// CycleNotClosedError reports a cycle whose boundary does not close: the
// half-edge at Index does not end at the global vertex the next half-edge
// starts at.
type CycleNotClosedError struct {
	// Index is the position of the offending half-edge in the cycle.
	Index int

	// EndVertex is the global form of that half-edge's end vertex.
	EndVertex storage.Handle[GlobalVertex]

	// NextStartVertex is the global form of the next half-edge's start
	// vertex.
	NextStartVertex storage.Handle[GlobalVertex]
}

func (e CycleNotClosedError) Error() string {
	return fmt.Sprintf(
		"cycle is not closed: half-edge %d ends at global vertex id %d, next half-edge starts at global vertex id %d",
		e.Index, e.EndVertex.ID(), e.NextStartVertex.ID())
}

// ErrEmptyCycle reports a cycle with no half-edges, which bounds nothing.
var ErrEmptyCycle = errors.New("cycle has no half-edges")

// Validate checks the half-edge's invariants: the global form of the start
// vertex must be one of the vertices of the half-edge's global form
// (identity match, not value match), the boundary positions on the curve
// must not coincide, and the reachable global vertices must be separated.
func (e HalfEdge) Validate(config *ValidationConfig) []error {
	config = config.orDefault()
	var errs []error
	e.checkGlobalVertexIdentity(&errs)
	e.checkVertexCoincidence(config, &errs)
	checkVertexSeparation(e.globalVertices(), config, &errs)
	return errs
}

func (e HalfEdge) checkGlobalVertexIdentity(errs *[]error) {
	fromHalfEdge := e.startVertex.Value().GlobalForm()
	fromGlobalForm := e.globalForm.Value().VerticesInNormalizedOrder()

	if fromHalfEdge != fromGlobalForm[0] && fromHalfEdge != fromGlobalForm[1] {
		*errs = append(*errs, GlobalVertexMismatchError{
			GlobalVertexFromHalfEdge:     fromHalfEdge,
			GlobalVerticesFromGlobalForm: fromGlobalForm,
		})
	}
}

func (e HalfEdge) checkVertexCoincidence(config *ValidationConfig, errs *[]error) {
	distance := math32.Abs(e.boundary[0] - e.boundary[1])
	if distance < config.DistinctMinDistance {
		*errs = append(*errs, VerticesCoincideOnCurveError{
			Start:    e.boundary[0],
			End:      e.boundary[1],
			Distance: distance,
		})
	}
}

// Validate checks the cycle's invariants: it must have at least one
// half-edge, its boundary must close (each half-edge's end vertex coincides,
// by global-vertex identity, with the next half-edge's start vertex), and
// the reachable global vertices must be separated.
func (c Cycle) Validate(config *ValidationConfig) []error {
	config = config.orDefault()
	var errs []error

	if len(c.halfEdges) == 0 {
		return []error{ErrEmptyCycle}
	}

	c.checkClosed(&errs)
	checkVertexSeparation(c.globalVertices(), config, &errs)
	return errs
}

func (c Cycle) checkClosed(errs *[]error) {
	for i, he := range c.halfEdges {
		next := c.halfEdges[(i+1)%len(c.halfEdges)]

		end := he.Value().EndVertex().Value().GlobalForm()
		nextStart := next.Value().StartVertex().Value().GlobalForm()

		if end != nextStart {
			*errs = append(*errs, CycleNotClosedError{
				Index:           i,
				EndVertex:       end,
				NextStartVertex: nextStart,
			})
		}
	}
}

// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"fmt"

	"github.com/Jzow/Fornjot/storage"
)

// ValidationConfig carries the tolerances used by validation.
type ValidationConfig struct {
	// DistinctMinDistance is the minimum distance between distinct
	// objects. Objects closer than this are considered identical, which
	// is a defect when their identities differ.
	DistinctMinDistance float32
}

// DefaultValidationConfig returns the default validation configuration.
func DefaultValidationConfig() *ValidationConfig {
	return &ValidationConfig{
		DistinctMinDistance: 1e-5,
	}
}

func (c *ValidationConfig) orDefault() *ValidationConfig {
	if c == nil {
		return DefaultValidationConfig()
	}
	return c
}

// Validatable is implemented by every object type. Validate inspects the
// object and its reachable handles and returns all defects found, never
// stopping at the first. Validation never mutates anything; a nil config
// selects the default.
type Validatable interface {
	Validate(config *ValidationConfig) []error
}

// FirstValidationError validates the object and returns the first defect,
// or nil if the object is valid. It is a convenience for callers that only
// need a verdict.
func FirstValidationError(obj Validatable, config *ValidationConfig) error {
	errs := obj.Validate(config)
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// DistinctVerticesCoincideError reports two distinct global vertices whose
// positions are closer than the configured minimum distance. Within a shape
// this indicates a topological defect, not a legitimate coincidence.
type DistinctVerticesCoincideError struct {
	A        storage.Handle[GlobalVertex]
	B        storage.Handle[GlobalVertex]
	Distance float32
}

func (e DistinctVerticesCoincideError) Error() string {
	return fmt.Sprintf(
		"distinct global vertices (ids %d, %d) are coincident: positions %v, %v, distance %v",
		e.A.ID(), e.B.ID(),
		e.A.Value().Position(), e.B.Value().Position(),
		e.Distance)
}

// checkVertexSeparation checks the given global vertices pairwise: two
// vertices with different identities must not be closer than the configured
// minimum distance. Repeated handles for the same identity are fine and
// checked once.
func checkVertexSeparation(
	vertices []storage.Handle[GlobalVertex],
	config *ValidationConfig,
	errs *[]error,
) {
	var distinct []storage.Handle[GlobalVertex]
	seen := map[storage.Handle[GlobalVertex]]bool{}
	for _, v := range vertices {
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}

	for i, a := range distinct {
		for _, b := range distinct[i+1:] {
			d := a.Value().Position().DistanceTo(b.Value().Position())
			if d < config.DistinctMinDistance {
				*errs = append(*errs, DistinctVerticesCoincideError{
					A: a, B: b, Distance: d,
				})
			}
		}
	}
}

// globalVertices returns all global vertices reachable from the half-edge,
// possibly with repeats.
func (e HalfEdge) globalVertices() []storage.Handle[GlobalVertex] {
	global := e.globalForm.Value().Vertices()
	return []storage.Handle[GlobalVertex]{
		e.startVertex.Value().GlobalForm(),
		e.endVertex.Value().GlobalForm(),
		global[0],
		global[1],
	}
}

func (c Cycle) globalVertices() []storage.Handle[GlobalVertex] {
	var vertices []storage.Handle[GlobalVertex]
	for _, he := range c.halfEdges {
		vertices = append(vertices, he.Value().globalVertices()...)
	}
	return vertices
}

func (f Face) globalVertices() []storage.Handle[GlobalVertex] {
	var vertices []storage.Handle[GlobalVertex]
	for _, cycle := range f.AllCycles() {
		vertices = append(vertices, cycle.Value().globalVertices()...)
	}
	return vertices
}

// Validate on a [Surface] has no checks.
func (s Surface) Validate(config *ValidationConfig) []error {
	return nil
}

// Validate on a [GlobalVertex] has no checks on its own; vertex separation
// is a property of the shape the vertex is part of, and is checked by the
// objects that aggregate vertices.
func (v GlobalVertex) Validate(config *ValidationConfig) []error {
	return nil
}

// Validate on a [SurfaceVertex] has no checks. The consistency of the
// global form's position with the surface's parametrization is an invariant
// of the construction that produced the vertex, checked there.
func (v SurfaceVertex) Validate(config *ValidationConfig) []error {
	return nil
}

// Validate on a [GlobalEdge] has no checks.
func (e GlobalEdge) Validate(config *ValidationConfig) []error {
	return nil
}

// Validate checks vertex separation across all vertices reachable from the
// face.
func (f Face) Validate(config *ValidationConfig) []error {
	config = config.orDefault()
	var errs []error
	checkVertexSeparation(f.globalVertices(), config, &errs)
	return errs
}

// Validate checks vertex separation across all vertices reachable from the
// shell.
func (s Shell) Validate(config *ValidationConfig) []error {
	config = config.orDefault()
	var vertices []storage.Handle[GlobalVertex]
	for _, face := range s.faces {
		vertices = append(vertices, face.Value().globalVertices()...)
	}
	var errs []error
	checkVertexSeparation(vertices, config, &errs)
	return errs
}

// Validate checks vertex separation across all vertices reachable from the
// sketch.
func (s Sketch) Validate(config *ValidationConfig) []error {
	config = config.orDefault()
	var vertices []storage.Handle[GlobalVertex]
	for _, face := range s.faces {
		vertices = append(vertices, face.Value().globalVertices()...)
	}
	var errs []error
	checkVertexSeparation(vertices, config, &errs)
	return errs
}

// Validate checks vertex separation across all vertices reachable from the
// solid.
func (s Solid) Validate(config *ValidationConfig) []error {
	config = config.orDefault()
	var vertices []storage.Handle[GlobalVertex]
	for _, shell := range s.shells {
		for _, face := range shell.Value().Faces() {
			vertices = append(vertices, face.Value().globalVertices()...)
		}
	}
	var errs []error
	checkVertexSeparation(vertices, config, &errs)
	return errs
}

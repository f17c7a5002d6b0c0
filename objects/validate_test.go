// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jzow/Fornjot/geometry"
	"github.com/Jzow/Fornjot/math32"
	"github.com/Jzow/Fornjot/mesh"
	"github.com/Jzow/Fornjot/storage"
)

// lineSegment builds a fully linked half-edge between the given global
// vertices, as a line segment in the xy plane.
func lineSegment(
	o *Objects,
	start, end storage.Handle[GlobalVertex],
) storage.Handle[HalfEdge] {
	surface := o.XYPlane().Value().Geometry()

	sv0 := InsertSurfaceVertex(o, NewSurfaceVertex(
		surface.Project(start.Value().Position()), start))
	sv1 := InsertSurfaceVertex(o, NewSurfaceVertex(
		surface.Project(end.Value().Position()), end))

	edge := InsertGlobalEdge(o, NewGlobalEdge(start, end))

	curve := geometry.LineFromPoints(
		start.Value().Position(), end.Value().Position())

	return InsertHalfEdge(o, NewHalfEdge(
		curve, [2]float32{0, 1}, sv0, sv1, edge))
}

func globalVertexAt(o *Objects, x, y, z float32) storage.Handle[GlobalVertex] {
	return InsertGlobalVertex(o, NewGlobalVertex(math32.Vec3(x, y, z)))
}

func TestHalfEdgeValid(t *testing.T) {
	o := New()

	he := lineSegment(o, globalVertexAt(o, 0, 0, 0), globalVertexAt(o, 1, 0, 0))
	assert.NoError(t, FirstValidationError(*he.Value(), nil))
}

func TestHalfEdgeGlobalVertexMismatch(t *testing.T) {
	o := New()

	start := globalVertexAt(o, 0, 0, 0)
	end := globalVertexAt(o, 1, 0, 0)
	valid := lineSegment(o, start, end)

	// Rebuild the global form from fresh vertices that are equal in value
	// but not in identity.
	freshStart := globalVertexAt(o, 0, 0, 0)
	freshEnd := globalVertexAt(o, 1, 0, 0)
	freshEdge := InsertGlobalEdge(o, NewGlobalEdge(freshStart, freshEnd))

	v := valid.Value()
	invalid := NewHalfEdge(
		v.Curve(), v.Boundary(), v.StartVertex(), v.EndVertex(), freshEdge)

	errs := invalid.Validate(nil)
	require.NotEmpty(t, errs)

	var mismatch *GlobalVertexMismatchError
	for _, err := range errs {
		if e, ok := err.(GlobalVertexMismatchError); ok {
			mismatch = &e
		}
	}
	require.NotNil(t, mismatch)
	assert.Equal(t, start, mismatch.GlobalVertexFromHalfEdge)

	// Using the actual shared vertices makes validation pass again.
	sharedEdge := InsertGlobalEdge(o, NewGlobalEdge(start, end))
	repaired := NewHalfEdge(
		v.Curve(), v.Boundary(), v.StartVertex(), v.EndVertex(), sharedEdge)
	assert.Empty(t, repaired.Validate(nil))
}

func TestHalfEdgeVerticesAreCoincident(t *testing.T) {
	o := New()

	valid := lineSegment(o, globalVertexAt(o, 0, 0, 0), globalVertexAt(o, 1, 0, 0))
	v := valid.Value()

	invalid := NewHalfEdge(
		v.Curve(), [2]float32{0, 0}, v.StartVertex(), v.EndVertex(), v.GlobalForm())

	err := FirstValidationError(invalid, nil)
	require.Error(t, err)
	assert.IsType(t, VerticesCoincideOnCurveError{}, err)
}

func TestHalfEdgeDistinctVertexSeparation(t *testing.T) {
	config := &ValidationConfig{DistinctMinDistance: 0.1}

	check := func(epsilon float32) []error {
		o := New()
		he := lineSegment(o,
			globalVertexAt(o, 0, 0, 0), globalVertexAt(o, epsilon, 0, 0))
		return he.Value().Validate(config)
	}

	// Distinct vertices closer than the tolerance are a defect.
	errs := check(0.05)
	require.NotEmpty(t, errs)
	coincide := false
	for _, err := range errs {
		if _, ok := err.(DistinctVerticesCoincideError); ok {
			coincide = true
		}
	}
	assert.True(t, coincide)

	// At or above the tolerance they are legitimate.
	assert.Empty(t, check(0.1))
	assert.Empty(t, check(0.2))
}

// triangleCycle builds a closed cycle of three line segments through the
// given global vertices.
func triangleCycle(
	o *Objects,
	vertices [3]storage.Handle[GlobalVertex],
) storage.Handle[Cycle] {
	return InsertCycle(o, NewCycle([]storage.Handle[HalfEdge]{
		lineSegment(o, vertices[0], vertices[1]),
		lineSegment(o, vertices[1], vertices[2]),
		lineSegment(o, vertices[2], vertices[0]),
	}))
}

func TestCycleValid(t *testing.T) {
	o := New()

	cycle := triangleCycle(o, [3]storage.Handle[GlobalVertex]{
		globalVertexAt(o, 0, 0, 0),
		globalVertexAt(o, 1, 0, 0),
		globalVertexAt(o, 0, 1, 0),
	})
	assert.Empty(t, cycle.Value().Validate(nil))
}

func TestCycleNotClosed(t *testing.T) {
	o := New()

	v0 := globalVertexAt(o, 0, 0, 0)
	v1 := globalVertexAt(o, 1, 0, 0)
	v2 := globalVertexAt(o, 0, 1, 0)
	v3 := globalVertexAt(o, 1, 1, 0)

	// The second half-edge starts at a vertex the first doesn't end at.
	cycle := NewCycle([]storage.Handle[HalfEdge]{
		lineSegment(o, v0, v1),
		lineSegment(o, v2, v3),
	})

	errs := cycle.Validate(nil)
	require.NotEmpty(t, errs)

	notClosed := 0
	for _, err := range errs {
		if _, ok := err.(CycleNotClosedError); ok {
			notClosed++
		}
	}
	// Both seams are broken: v1 != v2 and v3 != v0.
	assert.Equal(t, 2, notClosed)
}

func TestCycleEmpty(t *testing.T) {
	errs := NewCycle(nil).Validate(nil)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrEmptyCycle)
}

func TestCycleMinimumDistance(t *testing.T) {
	config := &ValidationConfig{DistinctMinDistance: 0.1}

	check := func(epsilon float32) []error {
		o := New()
		cycle := triangleCycle(o, [3]storage.Handle[GlobalVertex]{
			globalVertexAt(o, 0, 0, 0),
			globalVertexAt(o, epsilon, 0, 0),
			globalVertexAt(o, 0, 1, 0),
		})
		return cycle.Value().Validate(config)
	}

	require.NotEmpty(t, check(0.05))
	assert.Empty(t, check(0.2))
}

func TestValidationAggregatesAllDefects(t *testing.T) {
	o := New()

	valid := lineSegment(o, globalVertexAt(o, 0, 0, 0), globalVertexAt(o, 1, 0, 0))
	v := valid.Value()

	// Degenerate boundary and a mismatched global form at once.
	freshEdge := InsertGlobalEdge(o, NewGlobalEdge(
		globalVertexAt(o, 0, 0, 0), globalVertexAt(o, 1, 0, 0)))
	invalid := NewHalfEdge(
		v.Curve(), [2]float32{0, 0}, v.StartVertex(), v.EndVertex(), freshEdge)

	errs := invalid.Validate(nil)
	assert.GreaterOrEqual(t, len(errs), 2)
}

func TestFaceValidatesVertexSeparation(t *testing.T) {
	o := New()
	config := &ValidationConfig{DistinctMinDistance: 0.1}

	cycle := triangleCycle(o, [3]storage.Handle[GlobalVertex]{
		globalVertexAt(o, 0, 0, 0),
		globalVertexAt(o, 0.05, 0, 0),
		globalVertexAt(o, 0, 1, 0),
	})
	face := NewFace(o.XYPlane(), cycle, nil, mesh.DefaultColor())

	assert.NotEmpty(t, face.Validate(config))
}

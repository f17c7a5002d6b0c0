// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jzow/Fornjot/geometry"
	"github.com/Jzow/Fornjot/math32"
	"github.com/Jzow/Fornjot/mesh"
	"github.com/Jzow/Fornjot/objects"
	"github.com/Jzow/Fornjot/partial"
	"github.com/Jzow/Fornjot/storage"
)

// sharedEdgeCycle builds a cycle of two half-edges that traverse the same
// edge in opposite directions, sharing one global edge and both global
// vertices.
func sharedEdgeCycle(o *objects.Objects) storage.Handle[objects.Cycle] {
	plane := geometry.XYPlane()

	there := &partial.HalfEdge{}
	there.UpdateAsLineSegment(plane, [2]math32.Vector2{
		math32.Vec2(0, 0), math32.Vec2(1, 0),
	})
	there.InferVertexPositionsIfNecessary(plane)

	back := &partial.HalfEdge{}
	back.UpdateAsLineSegment(plane, [2]math32.Vector2{
		math32.Vec2(1, 0), math32.Vec2(0, 0),
	})
	back.InferVertexPositionsIfNecessary(plane)
	back.StartVertex.GlobalForm = there.EndVertex.GlobalForm
	back.EndVertex.GlobalForm = there.StartVertex.GlobalForm

	shared := &partial.GlobalEdge{
		Vertices: [2]*partial.GlobalVertex{
			there.StartVertex.GlobalForm,
			there.EndVertex.GlobalForm,
		},
	}
	there.GlobalForm = shared
	back.GlobalForm = shared

	cycle := &partial.Cycle{HalfEdges: []*partial.HalfEdge{there, back}}
	h, err := cycle.Build(o)
	if err != nil {
		panic(err)
	}
	return h
}

func TestGlobalVertexTransform(t *testing.T) {
	o := objects.New()
	iso := math32.NewIsometryTranslation(math32.Vec3(0, 0, 5))

	v := objects.InsertGlobalVertex(o,
		objects.NewGlobalVertex(math32.Vec3(1, 2, 3)))

	moved := NewCache().GlobalVertex(v, iso, o)
	assert.NotEqual(t, v, moved)
	assert.Equal(t, math32.Vec3(1, 2, 8), moved.Value().Position())

	// The source is untouched; the store is append-only.
	assert.Equal(t, math32.Vec3(1, 2, 3), v.Value().Position())
}

func TestCacheReturnsOneCopyPerSource(t *testing.T) {
	o := objects.New()
	iso := math32.NewIsometryTranslation(math32.Vec3(1, 0, 0))

	v := objects.InsertGlobalVertex(o,
		objects.NewGlobalVertex(math32.Vec3(0, 0, 0)))

	cache := NewCache()
	first := cache.GlobalVertex(v, iso, o)
	second := cache.GlobalVertex(v, iso, o)
	assert.Equal(t, first, second)

	// A fresh cache is a fresh operation, producing a fresh copy.
	third := NewCache().GlobalVertex(v, iso, o)
	assert.NotEqual(t, first, third)
}

func TestSurfaceVertexKeepsSurfacePosition(t *testing.T) {
	o := objects.New()
	iso := math32.NewIsometryTranslation(math32.Vec3(0, 0, 5))

	global := objects.InsertGlobalVertex(o,
		objects.NewGlobalVertex(math32.Vec3(1, 2, 0)))
	sv := objects.InsertSurfaceVertex(o,
		objects.NewSurfaceVertex(math32.Vec2(1, 2), global))

	moved := NewCache().SurfaceVertex(sv, iso, o)

	// The 2D position is defined relative to the surface and passes
	// through unchanged; only the global form moves.
	assert.Equal(t, math32.Vec2(1, 2), moved.Value().Position())
	assert.Equal(t, math32.Vec3(1, 2, 5),
		moved.Value().GlobalForm().Value().Position())
}

func TestCycleSharedStructureStaysShared(t *testing.T) {
	o := objects.New()
	iso := math32.NewIsometryTranslation(math32.Vec3(0, 0, 2)).
		Mul(math32.NewIsometryRotation(math32.Vec3(0, 0, 1), math32.Pi/2))

	cycle := sharedEdgeCycle(o)
	source := cycle.Value().HalfEdges()
	sharedSource := source[0].Value().GlobalForm()
	require.Equal(t, sharedSource, source[1].Value().GlobalForm())

	moved := NewCache().Cycle(cycle, iso, o)
	result := moved.Value().HalfEdges()

	// The two half-edges still share a single, new global edge identity.
	sharedResult := result[0].Value().GlobalForm()
	assert.Equal(t, sharedResult, result[1].Value().GlobalForm())
	assert.NotEqual(t, sharedSource, sharedResult)

	// Global vertices stayed shared as well, so the cycle still closes.
	assert.Empty(t, moved.Value().Validate(nil))

	// Transformed positions equal applying the motion directly.
	for i, he := range source {
		sourceStart := he.Value().StartVertex().Value().
			GlobalForm().Value().Position()
		resultStart := result[i].Value().StartVertex().Value().
			GlobalForm().Value().Position()
		want := iso.TransformPoint(sourceStart)
		assert.InDelta(t, want.X, resultStart.X, 1e-6)
		assert.InDelta(t, want.Y, resultStart.Y, 1e-6)
		assert.InDelta(t, want.Z, resultStart.Z, 1e-6)
	}
}

func TestFaceTransform(t *testing.T) {
	o := objects.New()
	iso := math32.NewIsometryTranslation(math32.Vec3(0, 0, 3))

	face := objects.InsertFace(o, objects.NewFace(
		o.XYPlane(), sharedEdgeCycle(o), nil, mesh.DefaultColor()))

	moved := NewCache().Face(face, iso, o)

	assert.NotEqual(t, face, moved)
	assert.Equal(t, face.Value().Color(), moved.Value().Color())

	// The surface moved with the rest of the face.
	movedOrigin := moved.Value().Surface().Value().Geometry().
		PointAt(math32.Vec2(0, 0))
	assert.Equal(t, math32.Vec3(0, 0, 3), movedOrigin)
}

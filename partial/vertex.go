// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partial

import (
	"github.com/Jzow/Fornjot/math32"
	"github.com/Jzow/Fornjot/objects"
	"github.com/Jzow/Fornjot/storage"
)

// GlobalVertex is a partial [objects.GlobalVertex].
type GlobalVertex struct {
	// Position is the position of the vertex in model space. nil means
	// unset; helpers like [HalfEdge.InferVertexPositionsIfNecessary] can
	// fill it in from context.
	Position *math32.Vector3
}

// FromGlobalVertex snapshots a full global vertex into its partial
// counterpart. An identity already visited through the cache yields the
// existing partial instance.
func FromGlobalVertex(
	h storage.Handle[objects.GlobalVertex],
	cache *FullToPartialCache,
) *GlobalVertex {
	if p, ok := cache.globalVertices[h]; ok {
		return p
	}
	position := h.Value().Position()
	p := &GlobalVertex{Position: &position}
	cache.globalVertices[h] = p
	return p
}

// Build commits this partial vertex, returning the handle of the new full
// object.
func (v *GlobalVertex) Build(o *objects.Objects) (storage.Handle[objects.GlobalVertex], error) {
	return v.build(o, newBuildCache())
}

func (v *GlobalVertex) build(
	o *objects.Objects,
	cache *buildCache,
) (storage.Handle[objects.GlobalVertex], error) {
	if h, ok := cache.globalVertices[v]; ok {
		return h, nil
	}
	if v.Position == nil {
		return storage.Handle[objects.GlobalVertex]{},
			MissingFieldError{Object: "GlobalVertex", Field: "Position"}
	}

	h := objects.InsertGlobalVertex(o, objects.NewGlobalVertex(*v.Position))
	cache.globalVertices[v] = h
	return h, nil
}

// SurfaceVertex is a partial [objects.SurfaceVertex].
type SurfaceVertex struct {
	// Position is the position of the vertex in surface coordinates.
	Position *math32.Vector2

	// GlobalForm is the vertex's global form. Sharing the same partial
	// instance between several parents makes them share one identity
	// when built.
	GlobalForm *GlobalVertex
}

// FromSurfaceVertex snapshots a full surface vertex into its partial
// counterpart, recursively snapshotting the global form.
func FromSurfaceVertex(
	h storage.Handle[objects.SurfaceVertex],
	cache *FullToPartialCache,
) *SurfaceVertex {
	if p, ok := cache.surfaceVertices[h]; ok {
		return p
	}
	position := h.Value().Position()
	p := &SurfaceVertex{
		Position:   &position,
		GlobalForm: FromGlobalVertex(h.Value().GlobalForm(), cache),
	}
	cache.surfaceVertices[h] = p
	return p
}

// Build commits this partial vertex and any unbuilt children, returning the
// handle of the new full object.
func (v *SurfaceVertex) Build(o *objects.Objects) (storage.Handle[objects.SurfaceVertex], error) {
	return v.build(o, newBuildCache())
}

func (v *SurfaceVertex) build(
	o *objects.Objects,
	cache *buildCache,
) (storage.Handle[objects.SurfaceVertex], error) {
	var zero storage.Handle[objects.SurfaceVertex]

	if h, ok := cache.surfaceVertices[v]; ok {
		return h, nil
	}
	if v.Position == nil {
		return zero, MissingFieldError{Object: "SurfaceVertex", Field: "Position"}
	}
	if v.GlobalForm == nil {
		return zero, MissingFieldError{Object: "SurfaceVertex", Field: "GlobalForm"}
	}

	globalForm, err := v.GlobalForm.build(o, cache)
	if err != nil {
		return zero, err
	}

	h := objects.InsertSurfaceVertex(o,
		objects.NewSurfaceVertex(*v.Position, globalForm))
	cache.surfaceVertices[v] = h
	return h, nil
}

// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partial

import (
	"github.com/Jzow/Fornjot/geometry"
	"github.com/Jzow/Fornjot/math32"
	"github.com/Jzow/Fornjot/objects"
	"github.com/Jzow/Fornjot/storage"
)

// GlobalEdge is a partial [objects.GlobalEdge].
type GlobalEdge struct {
	// Vertices are the two vertices bounding the edge.
	Vertices [2]*GlobalVertex
}

// FromGlobalEdge snapshots a full global edge into its partial counterpart,
// recursively snapshotting the bounding vertices.
func FromGlobalEdge(
	h storage.Handle[objects.GlobalEdge],
	cache *FullToPartialCache,
) *GlobalEdge {
	if p, ok := cache.globalEdges[h]; ok {
		return p
	}
	vertices := h.Value().Vertices()
	p := &GlobalEdge{
		Vertices: [2]*GlobalVertex{
			FromGlobalVertex(vertices[0], cache),
			FromGlobalVertex(vertices[1], cache),
		},
	}
	cache.globalEdges[h] = p
	return p
}

// Build commits this partial edge and any unbuilt children, returning the
// handle of the new full object.
func (e *GlobalEdge) Build(o *objects.Objects) (storage.Handle[objects.GlobalEdge], error) {
	return e.build(o, newBuildCache())
}

func (e *GlobalEdge) build(
	o *objects.Objects,
	cache *buildCache,
) (storage.Handle[objects.GlobalEdge], error) {
	var zero storage.Handle[objects.GlobalEdge]

	if h, ok := cache.globalEdges[e]; ok {
		return h, nil
	}
	if e.Vertices[0] == nil || e.Vertices[1] == nil {
		return zero, MissingFieldError{Object: "GlobalEdge", Field: "Vertices"}
	}

	a, err := e.Vertices[0].build(o, cache)
	if err != nil {
		return zero, err
	}
	b, err := e.Vertices[1].build(o, cache)
	if err != nil {
		return zero, err
	}

	h := objects.InsertGlobalEdge(o, objects.NewGlobalEdge(a, b))
	cache.globalEdges[e] = h
	return h, nil
}

// HalfEdge is a partial [objects.HalfEdge].
type HalfEdge struct {
	// Curve is the curve the half-edge is defined on.
	Curve geometry.Curve

	// Boundary is the half-edge's boundary on the curve, start position
	// first.
	Boundary *[2]float32

	// StartVertex and EndVertex are the half-edge's vertices in surface
	// coordinates.
	StartVertex *SurfaceVertex
	EndVertex   *SurfaceVertex

	// GlobalForm is the half-edge's undirected global form. If left
	// unset, it is inferred at build time from the global forms of
	// StartVertex and EndVertex.
	GlobalForm *GlobalEdge
}

// FromHalfEdge snapshots a full half-edge into its partial counterpart,
// recursively snapshotting the vertices and the global form.
func FromHalfEdge(
	h storage.Handle[objects.HalfEdge],
	cache *FullToPartialCache,
) *HalfEdge {
	if p, ok := cache.halfEdges[h]; ok {
		return p
	}
	boundary := h.Value().Boundary()
	p := &HalfEdge{
		Curve:       h.Value().Curve(),
		Boundary:    &boundary,
		StartVertex: FromSurfaceVertex(h.Value().StartVertex(), cache),
		EndVertex:   FromSurfaceVertex(h.Value().EndVertex(), cache),
		GlobalForm:  FromGlobalEdge(h.Value().GlobalForm(), cache),
	}
	cache.halfEdges[h] = p
	return p
}

// UpdateAsLineSegment updates the half-edge to be a line segment between
// the given points in the given surface's coordinates. Existing vertex
// instances are kept and updated in place, so sharing with other parts of a
// partial graph survives.
func (e *HalfEdge) UpdateAsLineSegment(surface geometry.Surface, points [2]math32.Vector2) {
	start := surface.PointAt(points[0])
	end := surface.PointAt(points[1])

	e.Curve = geometry.LineFromPoints(start, end)
	e.Boundary = &[2]float32{0, 1}

	if e.StartVertex == nil {
		e.StartVertex = &SurfaceVertex{}
	}
	if e.EndVertex == nil {
		e.EndVertex = &SurfaceVertex{}
	}
	p0, p1 := points[0], points[1]
	e.StartVertex.Position = &p0
	e.EndVertex.Position = &p1
}

// InferVertexPositionsIfNecessary fills in any unset vertex positions from
// the half-edge's curve and boundary: global positions by evaluating the
// curve, surface positions by projecting onto the given surface. Vertex
// positions that are already set are left alone.
func (e *HalfEdge) InferVertexPositionsIfNecessary(surface geometry.Surface) {
	if e.Curve == nil || e.Boundary == nil {
		return
	}

	if e.StartVertex == nil {
		e.StartVertex = &SurfaceVertex{}
	}
	if e.EndVertex == nil {
		e.EndVertex = &SurfaceVertex{}
	}

	vertices := [2]*SurfaceVertex{e.StartVertex, e.EndVertex}
	for i, vertex := range vertices {
		position := e.Curve.PointAt(e.Boundary[i])

		if vertex.Position == nil {
			uv := surface.Project(position)
			vertex.Position = &uv
		}
		if vertex.GlobalForm == nil {
			vertex.GlobalForm = &GlobalVertex{}
		}
		if vertex.GlobalForm.Position == nil {
			p := position
			vertex.GlobalForm.Position = &p
		}
	}
}

// Build commits this partial half-edge and any unbuilt children, bottom-up,
// returning the handle of the new full object. An unset GlobalForm defaults
// to a global edge over the global forms of StartVertex and EndVertex.
func (e *HalfEdge) Build(o *objects.Objects) (storage.Handle[objects.HalfEdge], error) {
	return e.build(o, newBuildCache())
}

func (e *HalfEdge) build(
	o *objects.Objects,
	cache *buildCache,
) (storage.Handle[objects.HalfEdge], error) {
	var zero storage.Handle[objects.HalfEdge]

	if h, ok := cache.halfEdges[e]; ok {
		return h, nil
	}
	if e.Curve == nil {
		return zero, MissingFieldError{Object: "HalfEdge", Field: "Curve"}
	}
	if e.Boundary == nil {
		return zero, MissingFieldError{Object: "HalfEdge", Field: "Boundary"}
	}
	if e.StartVertex == nil {
		return zero, MissingFieldError{Object: "HalfEdge", Field: "StartVertex"}
	}
	if e.EndVertex == nil {
		return zero, MissingFieldError{Object: "HalfEdge", Field: "EndVertex"}
	}

	startVertex, err := e.StartVertex.build(o, cache)
	if err != nil {
		return zero, err
	}
	endVertex, err := e.EndVertex.build(o, cache)
	if err != nil {
		return zero, err
	}

	globalForm := e.GlobalForm
	if globalForm == nil {
		globalForm = &GlobalEdge{
			Vertices: [2]*GlobalVertex{
				e.StartVertex.GlobalForm,
				e.EndVertex.GlobalForm,
			},
		}
	}
	global, err := globalForm.build(o, cache)
	if err != nil {
		return zero, err
	}

	h := objects.InsertHalfEdge(o, objects.NewHalfEdge(
		e.Curve, *e.Boundary, startVertex, endVertex, global))
	cache.halfEdges[e] = h
	return h, nil
}

// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"github.com/Jzow/Fornjot/geometry"
	"github.com/Jzow/Fornjot/storage"
)

// GlobalEdge is an edge, defined in global (3D) coordinates: the two
// vertices that bound it.
//
// The vertices are stored in the order they were passed to construction,
// which carries no meaning; a global edge is shared between the two
// half-edges that traverse it in opposite directions. Comparisons must go
// through [GlobalEdge.VerticesInNormalizedOrder].
type GlobalEdge struct {
	vertices [2]storage.Handle[GlobalVertex]
}

// NewGlobalEdge constructs a new [GlobalEdge] from its two bounding
// vertices.
func NewGlobalEdge(a, b storage.Handle[GlobalVertex]) GlobalEdge {
	return GlobalEdge{vertices: [2]storage.Handle[GlobalVertex]{a, b}}
}

// Vertices returns the bounding vertices in construction order.
func (e GlobalEdge) Vertices() [2]storage.Handle[GlobalVertex] {
	return e.vertices
}

// VerticesInNormalizedOrder returns the bounding vertices in a canonical
// order, so that the results for two global edges over the same vertices
// are comparable regardless of construction order.
func (e GlobalEdge) VerticesInNormalizedOrder() [2]storage.Handle[GlobalVertex] {
	a, b := e.vertices[0], e.vertices[1]
	if b.ID() < a.ID() {
		a, b = b, a
	}
	return [2]storage.Handle[GlobalVertex]{a, b}
}

// HalfEdge is a directed edge: a bounded portion of a curve, traversed in a
// defined direction.
//
// The boundary is a pair of positions in the curve's 1D coordinate space.
// The start and end vertices are the corresponding vertices in surface
// coordinates, and the global form is the undirected [GlobalEdge] shared
// with the half-edge traversing the same edge in the opposite direction,
// when one exists.
type HalfEdge struct {
	curve       geometry.Curve
	boundary    [2]float32
	startVertex storage.Handle[SurfaceVertex]
	endVertex   storage.Handle[SurfaceVertex]
	globalForm  storage.Handle[GlobalEdge]
}

// NewHalfEdge constructs a new [HalfEdge].
func NewHalfEdge(
	curve geometry.Curve,
	boundary [2]float32,
	startVertex, endVertex storage.Handle[SurfaceVertex],
	globalForm storage.Handle[GlobalEdge],
) HalfEdge {
	return HalfEdge{
		curve:       curve,
		boundary:    boundary,
		startVertex: startVertex,
		endVertex:   endVertex,
		globalForm:  globalForm,
	}
}

// Curve returns the curve the half-edge is defined on.
func (e HalfEdge) Curve() geometry.Curve {
	return e.curve
}

// Boundary returns the boundary of the half-edge on its curve, start
// position first.
func (e HalfEdge) Boundary() [2]float32 {
	return e.boundary
}

// StartVertex returns the vertex the half-edge starts at.
func (e HalfEdge) StartVertex() storage.Handle[SurfaceVertex] {
	return e.startVertex
}

// EndVertex returns the vertex the half-edge ends at.
func (e HalfEdge) EndVertex() storage.Handle[SurfaceVertex] {
	return e.endVertex
}

// SurfaceVertices returns the start and end vertices, in that order.
func (e HalfEdge) SurfaceVertices() [2]storage.Handle[SurfaceVertex] {
	return [2]storage.Handle[SurfaceVertex]{e.startVertex, e.endVertex}
}

// GlobalForm returns the global form of the half-edge.
func (e HalfEdge) GlobalForm() storage.Handle[GlobalEdge] {
	return e.globalForm
}

// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform applies rigid motions to object graphs.
//
// Objects reference each other by identity, and the same object is commonly
// reachable from many parents. A naive recursive transform would transform
// such an object once per incoming path, producing multiple new identities
// for what should be one transformed object and breaking the closure and
// coincidence invariants of the graph. The [Cache] prevents that: it
// memoizes the transformed handle per source identity, guaranteeing exactly
// one transformed copy per distinct source object.
//
// A cache is scoped to one top-level transform operation. Create one, pass
// it to the calls that belong to the operation, discard it.
package transform

import (
	"github.com/Jzow/Fornjot/math32"
	"github.com/Jzow/Fornjot/objects"
	"github.com/Jzow/Fornjot/storage"
)

// Cache maps already-transformed source identities to the handles of their
// transformed copies. The methods on Cache transform the respective object
// type, inserting new objects into the given stores as they go.
type Cache struct {
	surfaces        map[storage.Handle[objects.Surface]]storage.Handle[objects.Surface]
	globalVertices  map[storage.Handle[objects.GlobalVertex]]storage.Handle[objects.GlobalVertex]
	surfaceVertices map[storage.Handle[objects.SurfaceVertex]]storage.Handle[objects.SurfaceVertex]
	globalEdges     map[storage.Handle[objects.GlobalEdge]]storage.Handle[objects.GlobalEdge]
	halfEdges       map[storage.Handle[objects.HalfEdge]]storage.Handle[objects.HalfEdge]
	cycles          map[storage.Handle[objects.Cycle]]storage.Handle[objects.Cycle]
	faces           map[storage.Handle[objects.Face]]storage.Handle[objects.Face]
	shells          map[storage.Handle[objects.Shell]]storage.Handle[objects.Shell]
	sketches        map[storage.Handle[objects.Sketch]]storage.Handle[objects.Sketch]
	solids          map[storage.Handle[objects.Solid]]storage.Handle[objects.Solid]
}

// NewCache returns a new, empty transform cache.
func NewCache() *Cache {
	return &Cache{
		surfaces:        map[storage.Handle[objects.Surface]]storage.Handle[objects.Surface]{},
		globalVertices:  map[storage.Handle[objects.GlobalVertex]]storage.Handle[objects.GlobalVertex]{},
		surfaceVertices: map[storage.Handle[objects.SurfaceVertex]]storage.Handle[objects.SurfaceVertex]{},
		globalEdges:     map[storage.Handle[objects.GlobalEdge]]storage.Handle[objects.GlobalEdge]{},
		halfEdges:       map[storage.Handle[objects.HalfEdge]]storage.Handle[objects.HalfEdge]{},
		cycles:          map[storage.Handle[objects.Cycle]]storage.Handle[objects.Cycle]{},
		faces:           map[storage.Handle[objects.Face]]storage.Handle[objects.Face]{},
		shells:          map[storage.Handle[objects.Shell]]storage.Handle[objects.Shell]{},
		sketches:        map[storage.Handle[objects.Sketch]]storage.Handle[objects.Sketch]{},
		solids:          map[storage.Handle[objects.Solid]]storage.Handle[objects.Solid]{},
	}
}

// Surface transforms a surface by mapping its carrier geometry through the
// motion.
func (c *Cache) Surface(
	h storage.Handle[objects.Surface],
	iso math32.Isometry,
	o *objects.Objects,
) storage.Handle[objects.Surface] {
	if t, ok := c.surfaces[h]; ok {
		return t
	}
	t := objects.InsertSurface(o,
		objects.NewSurface(h.Value().Geometry().Transform(iso)))
	c.surfaces[h] = t
	return t
}

// GlobalVertex transforms a global vertex by mapping its position through
// the motion.
func (c *Cache) GlobalVertex(
	h storage.Handle[objects.GlobalVertex],
	iso math32.Isometry,
	o *objects.Objects,
) storage.Handle[objects.GlobalVertex] {
	if t, ok := c.globalVertices[h]; ok {
		return t
	}
	t := objects.InsertGlobalVertex(o,
		objects.NewGlobalVertex(iso.TransformPoint(h.Value().Position())))
	c.globalVertices[h] = t
	return t
}

// SurfaceVertex transforms a surface vertex. The 2D position is defined in
// surface coordinates and thus invariant under the motion; transforming the
// surface takes care of it. Only the global form is transformed.
func (c *Cache) SurfaceVertex(
	h storage.Handle[objects.SurfaceVertex],
	iso math32.Isometry,
	o *objects.Objects,
) storage.Handle[objects.SurfaceVertex] {
	if t, ok := c.surfaceVertices[h]; ok {
		return t
	}
	t := objects.InsertSurfaceVertex(o, objects.NewSurfaceVertex(
		h.Value().Position(),
		c.GlobalVertex(h.Value().GlobalForm(), iso, o),
	))
	c.surfaceVertices[h] = t
	return t
}

// GlobalEdge transforms a global edge by transforming its bounding
// vertices.
func (c *Cache) GlobalEdge(
	h storage.Handle[objects.GlobalEdge],
	iso math32.Isometry,
	o *objects.Objects,
) storage.Handle[objects.GlobalEdge] {
	if t, ok := c.globalEdges[h]; ok {
		return t
	}
	vertices := h.Value().Vertices()
	t := objects.InsertGlobalEdge(o, objects.NewGlobalEdge(
		c.GlobalVertex(vertices[0], iso, o),
		c.GlobalVertex(vertices[1], iso, o),
	))
	c.globalEdges[h] = t
	return t
}

// HalfEdge transforms a half-edge: the curve is mapped through the motion,
// the boundary is defined in curve coordinates and passes through
// unchanged, and the vertices and global form are transformed.
func (c *Cache) HalfEdge(
	h storage.Handle[objects.HalfEdge],
	iso math32.Isometry,
	o *objects.Objects,
) storage.Handle[objects.HalfEdge] {
	if t, ok := c.halfEdges[h]; ok {
		return t
	}
	e := h.Value()
	t := objects.InsertHalfEdge(o, objects.NewHalfEdge(
		e.Curve().Transform(iso),
		e.Boundary(),
		c.SurfaceVertex(e.StartVertex(), iso, o),
		c.SurfaceVertex(e.EndVertex(), iso, o),
		c.GlobalEdge(e.GlobalForm(), iso, o),
	))
	c.halfEdges[h] = t
	return t
}

// Cycle transforms a cycle by transforming its half-edges.
func (c *Cache) Cycle(
	h storage.Handle[objects.Cycle],
	iso math32.Isometry,
	o *objects.Objects,
) storage.Handle[objects.Cycle] {
	if t, ok := c.cycles[h]; ok {
		return t
	}
	halfEdges := make([]storage.Handle[objects.HalfEdge], 0, h.Value().Len())
	for _, he := range h.Value().HalfEdges() {
		halfEdges = append(halfEdges, c.HalfEdge(he, iso, o))
	}
	t := objects.InsertCycle(o, objects.NewCycle(halfEdges))
	c.cycles[h] = t
	return t
}

// Face transforms a face by transforming its surface and cycles. The color
// carries no position and passes through unchanged.
func (c *Cache) Face(
	h storage.Handle[objects.Face],
	iso math32.Isometry,
	o *objects.Objects,
) storage.Handle[objects.Face] {
	if t, ok := c.faces[h]; ok {
		return t
	}
	f := h.Value()
	interiors := make([]storage.Handle[objects.Cycle], 0, len(f.Interiors()))
	for _, interior := range f.Interiors() {
		interiors = append(interiors, c.Cycle(interior, iso, o))
	}
	t := objects.InsertFace(o, objects.NewFace(
		c.Surface(f.Surface(), iso, o),
		c.Cycle(f.Exterior(), iso, o),
		interiors,
		f.Color(),
	))
	c.faces[h] = t
	return t
}

// Shell transforms a shell by transforming its faces.
func (c *Cache) Shell(
	h storage.Handle[objects.Shell],
	iso math32.Isometry,
	o *objects.Objects,
) storage.Handle[objects.Shell] {
	if t, ok := c.shells[h]; ok {
		return t
	}
	faces := make([]storage.Handle[objects.Face], 0, len(h.Value().Faces()))
	for _, face := range h.Value().Faces() {
		faces = append(faces, c.Face(face, iso, o))
	}
	t := objects.InsertShell(o, objects.NewShell(faces))
	c.shells[h] = t
	return t
}

// Sketch transforms a sketch by transforming its faces.
func (c *Cache) Sketch(
	h storage.Handle[objects.Sketch],
	iso math32.Isometry,
	o *objects.Objects,
) storage.Handle[objects.Sketch] {
	if t, ok := c.sketches[h]; ok {
		return t
	}
	faces := make([]storage.Handle[objects.Face], 0, len(h.Value().Faces()))
	for _, face := range h.Value().Faces() {
		faces = append(faces, c.Face(face, iso, o))
	}
	t := objects.InsertSketch(o, objects.NewSketch(faces))
	c.sketches[h] = t
	return t
}

// Solid transforms a solid by transforming its shells.
func (c *Cache) Solid(
	h storage.Handle[objects.Solid],
	iso math32.Isometry,
	o *objects.Objects,
) storage.Handle[objects.Solid] {
	if t, ok := c.solids[h]; ok {
		return t
	}
	shells := make([]storage.Handle[objects.Shell], 0, len(h.Value().Shells()))
	for _, shell := range h.Value().Shells() {
		shells = append(shells, c.Shell(shell, iso, o))
	}
	t := objects.InsertSolid(o, objects.NewSolid(shells))
	c.solids[h] = t
	return t
}

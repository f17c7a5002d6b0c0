// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package objects defines the topological object types that make up a shape
// and the stores that hold them.
//
// Objects are immutable once inserted and reference each other through
// [storage.Handle] values, so the same object can be shared between any
// number of parents without being duplicated. Changing a shape means
// building new objects, typically through package partial, never editing
// objects in place.
//
// Insertion and validation are decoupled: the stores happily hold invalid
// objects, and invalidity is only discovered when a caller validates. This
// allows intermediate, intentionally-invalid states during multi-step
// constructions.
package objects

import (
	"github.com/Jzow/Fornjot/geometry"
	"github.com/Jzow/Fornjot/storage"
)

// Objects is the set of stores for all object types of one modeling
// session. Its lifetime is the session's; there is no persistence.
type Objects struct {
	Cycles          storage.Store[Cycle]
	Faces           storage.Store[Face]
	GlobalEdges     storage.Store[GlobalEdge]
	GlobalVertices  storage.Store[GlobalVertex]
	HalfEdges       storage.Store[HalfEdge]
	Shells          storage.Store[Shell]
	Sketches        storage.Store[Sketch]
	Solids          storage.Store[Solid]
	SurfaceVertices storage.Store[SurfaceVertex]
	Surfaces        storage.Store[Surface]

	xyPlane storage.Handle[Surface]
	xzPlane storage.Handle[Surface]
	yzPlane storage.Handle[Surface]
}

// New returns a new, empty set of stores.
func New() *Objects {
	return &Objects{}
}

// XYPlane returns the canonical handle for the xy plane. All calls on the
// same Objects return the same handle.
func (o *Objects) XYPlane() storage.Handle[Surface] {
	if o.xyPlane.IsZero() {
		o.xyPlane = InsertSurface(o, NewSurface(geometry.XYPlane()))
	}
	return o.xyPlane
}

// XZPlane returns the canonical handle for the xz plane.
func (o *Objects) XZPlane() storage.Handle[Surface] {
	if o.xzPlane.IsZero() {
		o.xzPlane = InsertSurface(o, NewSurface(geometry.XZPlane()))
	}
	return o.xzPlane
}

// YZPlane returns the canonical handle for the yz plane.
func (o *Objects) YZPlane() storage.Handle[Surface] {
	if o.yzPlane.IsZero() {
		o.yzPlane = InsertSurface(o, NewSurface(geometry.YZPlane()))
	}
	return o.yzPlane
}

// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"github.com/Jzow/Fornjot/math32"
	"github.com/Jzow/Fornjot/storage"
)

// GlobalVertex is a vertex, defined in global (3D) model coordinates.
//
// GlobalVertex exists to distinguish between vertices and points at the type
// level. This is a relevant distinction, as vertices are part of a shape
// that help define its topology. Points, on the other hand, might be used to
// approximate a shape for various purposes, without presenting any deeper
// truth about the shape's structure.
//
// Vertices must be unique within a shape: two distinct vertices whose
// positions are closer than [ValidationConfig.DistinctMinDistance] indicate
// a topological defect, not a legitimate geometric coincidence.
type GlobalVertex struct {
	position math32.Vector3
}

// NewGlobalVertex constructs a new [GlobalVertex] from a position.
func NewGlobalVertex(position math32.Vector3) GlobalVertex {
	return GlobalVertex{position: position}
}

// Position returns the position of the vertex.
func (v GlobalVertex) Position() math32.Vector3 {
	return v.position
}

// SurfaceVertex is a vertex, defined in surface (2D) coordinates, paired
// with its global form.
//
// The global form's 3D position must be consistent with evaluating the
// vertex's surface at the 2D position. This consistency is not maintained
// automatically; in particular, transforming only the global form while
// leaving the surface alone breaks it. It must be verified as a separate
// invariant where it matters.
type SurfaceVertex struct {
	position   math32.Vector2
	globalForm storage.Handle[GlobalVertex]
}

// NewSurfaceVertex constructs a new [SurfaceVertex] from a position in
// surface coordinates and the vertex's global form.
func NewSurfaceVertex(position math32.Vector2, globalForm storage.Handle[GlobalVertex]) SurfaceVertex {
	return SurfaceVertex{position: position, globalForm: globalForm}
}

// Position returns the position of the vertex on the surface.
func (v SurfaceVertex) Position() math32.Vector2 {
	return v.position
}

// GlobalForm returns the global form of the vertex.
func (v SurfaceVertex) GlobalForm() storage.Handle[GlobalVertex] {
	return v.globalForm
}

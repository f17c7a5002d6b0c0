// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"github.com/Jzow/Fornjot/storage"
)

// insert reserves a fresh identity in the given store and binds the content
// to it. Insert on a fresh reservation cannot fail.
func insert[T any](store *storage.Store[T], content T) storage.Handle[T] {
	handle := store.Reserve()
	if err := store.Insert(handle, content); err != nil {
		panic(err)
	}
	return handle
}

// InsertCycle inserts the cycle into its store and returns its handle.
func InsertCycle(o *Objects, c Cycle) storage.Handle[Cycle] {
	return insert(&o.Cycles, c)
}

// InsertFace inserts the face into its store and returns its handle.
func InsertFace(o *Objects, f Face) storage.Handle[Face] {
	return insert(&o.Faces, f)
}

// InsertGlobalEdge inserts the global edge into its store and returns its
// handle.
func InsertGlobalEdge(o *Objects, e GlobalEdge) storage.Handle[GlobalEdge] {
	return insert(&o.GlobalEdges, e)
}

// InsertGlobalVertex inserts the global vertex into its store and returns
// its handle.
func InsertGlobalVertex(o *Objects, v GlobalVertex) storage.Handle[GlobalVertex] {
	return insert(&o.GlobalVertices, v)
}

// InsertHalfEdge inserts the half-edge into its store and returns its
// handle.
func InsertHalfEdge(o *Objects, e HalfEdge) storage.Handle[HalfEdge] {
	return insert(&o.HalfEdges, e)
}

// InsertShell inserts the shell into its store and returns its handle.
func InsertShell(o *Objects, s Shell) storage.Handle[Shell] {
	return insert(&o.Shells, s)
}

// InsertSketch inserts the sketch into its store and returns its handle.
func InsertSketch(o *Objects, s Sketch) storage.Handle[Sketch] {
	return insert(&o.Sketches, s)
}

// InsertSolid inserts the solid into its store and returns its handle.
func InsertSolid(o *Objects, s Solid) storage.Handle[Solid] {
	return insert(&o.Solids, s)
}

// InsertSurfaceVertex inserts the surface vertex into its store and returns
// its handle.
func InsertSurfaceVertex(o *Objects, v SurfaceVertex) storage.Handle[SurfaceVertex] {
	return insert(&o.SurfaceVertices, v)
}

// InsertSurface inserts the surface into its store and returns its handle.
func InsertSurface(o *Objects, s Surface) storage.Handle[Surface] {
	return insert(&o.Surfaces, s)
}

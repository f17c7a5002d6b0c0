// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package partial provides mutable, possibly-incomplete counterparts of the
// object types, for incremental construction and editing.
//
// A partial object mirrors a full object, but every field is optional and
// handle-typed fields hold pointers to other partial objects instead of
// committed handles. Two partial objects that share a child share it by
// pointer; when the graph is built, a shared pointer becomes a shared
// identity.
//
// The typical workflow is a round trip: snapshot an existing object graph
// with one of the From functions, edit the partial graph, then commit it
// with Build. The snapshot cache keeps an object that is reachable through
// several paths as a single partial instance, so edits made through one
// path are visible through all of them, and the rebuilt graph preserves the
// original's sharing instead of silently fanning it out.
package partial

import (
	"github.com/Jzow/Fornjot/objects"
	"github.com/Jzow/Fornjot/storage"
)

// FullToPartialCache maps the identities visited by a snapshot to the
// partial instances created for them. It is scoped to one snapshot
// operation: create one, pass it to the From calls that belong together,
// discard it.
type FullToPartialCache struct {
	surfaces        map[storage.Handle[objects.Surface]]*Surface
	globalVertices  map[storage.Handle[objects.GlobalVertex]]*GlobalVertex
	surfaceVertices map[storage.Handle[objects.SurfaceVertex]]*SurfaceVertex
	globalEdges     map[storage.Handle[objects.GlobalEdge]]*GlobalEdge
	halfEdges       map[storage.Handle[objects.HalfEdge]]*HalfEdge
	cycles          map[storage.Handle[objects.Cycle]]*Cycle
	faces           map[storage.Handle[objects.Face]]*Face
	shells          map[storage.Handle[objects.Shell]]*Shell
	sketches        map[storage.Handle[objects.Sketch]]*Sketch
	solids          map[storage.Handle[objects.Solid]]*Solid
}

// NewFullToPartialCache returns a new, empty snapshot cache.
func NewFullToPartialCache() *FullToPartialCache {
	return &FullToPartialCache{
		surfaces:        map[storage.Handle[objects.Surface]]*Surface{},
		globalVertices:  map[storage.Handle[objects.GlobalVertex]]*GlobalVertex{},
		surfaceVertices: map[storage.Handle[objects.SurfaceVertex]]*SurfaceVertex{},
		globalEdges:     map[storage.Handle[objects.GlobalEdge]]*GlobalEdge{},
		halfEdges:       map[storage.Handle[objects.HalfEdge]]*HalfEdge{},
		cycles:          map[storage.Handle[objects.Cycle]]*Cycle{},
		faces:           map[storage.Handle[objects.Face]]*Face{},
		shells:          map[storage.Handle[objects.Shell]]*Shell{},
		sketches:        map[storage.Handle[objects.Sketch]]*Sketch{},
		solids:          map[storage.Handle[objects.Solid]]*Solid{},
	}
}

// buildCache maps the partial instances visited by one top-level Build call
// to the handles built for them, so that a partial object shared by pointer
// is committed exactly once. Each top-level Build creates a fresh cache,
// which is why building the same partial graph twice yields two disjoint
// sets of identities.
type buildCache struct {
	surfaces        map[*Surface]storage.Handle[objects.Surface]
	globalVertices  map[*GlobalVertex]storage.Handle[objects.GlobalVertex]
	surfaceVertices map[*SurfaceVertex]storage.Handle[objects.SurfaceVertex]
	globalEdges     map[*GlobalEdge]storage.Handle[objects.GlobalEdge]
	halfEdges       map[*HalfEdge]storage.Handle[objects.HalfEdge]
	cycles          map[*Cycle]storage.Handle[objects.Cycle]
	faces           map[*Face]storage.Handle[objects.Face]
	shells          map[*Shell]storage.Handle[objects.Shell]
}

func newBuildCache() *buildCache {
	return &buildCache{
		surfaces:        map[*Surface]storage.Handle[objects.Surface]{},
		globalVertices:  map[*GlobalVertex]storage.Handle[objects.GlobalVertex]{},
		surfaceVertices: map[*SurfaceVertex]storage.Handle[objects.SurfaceVertex]{},
		globalEdges:     map[*GlobalEdge]storage.Handle[objects.GlobalEdge]{},
		halfEdges:       map[*HalfEdge]storage.Handle[objects.HalfEdge]{},
		cycles:          map[*Cycle]storage.Handle[objects.Cycle]{},
		faces:           map[*Face]storage.Handle[objects.Face]{},
		shells:          map[*Shell]storage.Handle[objects.Shell]{},
	}
}

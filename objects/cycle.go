// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"slices"

	"github.com/Jzow/Fornjot/storage"
)

// Cycle is a closed loop of half-edges that bounds a region on a surface.
//
// Each half-edge's end vertex must coincide, by global-vertex identity, with
// the next half-edge's start vertex, wrapping around at the end. This is
// checked by validation, not construction.
type Cycle struct {
	halfEdges []storage.Handle[HalfEdge]
}

// NewCycle constructs a new [Cycle] from its half-edges, in traversal
// order.
func NewCycle(halfEdges []storage.Handle[HalfEdge]) Cycle {
	return Cycle{halfEdges: slices.Clone(halfEdges)}
}

// HalfEdges returns the half-edges of the cycle, in traversal order.
func (c Cycle) HalfEdges() []storage.Handle[HalfEdge] {
	return c.halfEdges
}

// Len returns the number of half-edges in the cycle.
func (c Cycle) Len() int {
	return len(c.halfEdges)
}

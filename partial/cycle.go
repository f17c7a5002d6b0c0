// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partial

import (
	"github.com/Jzow/Fornjot/objects"
	"github.com/Jzow/Fornjot/storage"
)

// Cycle is a partial [objects.Cycle].
type Cycle struct {
	// HalfEdges are the half-edges that make up the cycle, in traversal
	// order.
	HalfEdges []*HalfEdge
}

// FromCycle snapshots a full cycle into its partial counterpart,
// recursively snapshotting the half-edges.
func FromCycle(
	h storage.Handle[objects.Cycle],
	cache *FullToPartialCache,
) *Cycle {
	if p, ok := cache.cycles[h]; ok {
		return p
	}
	p := &Cycle{}
	cache.cycles[h] = p
	for _, halfEdge := range h.Value().HalfEdges() {
		p.HalfEdges = append(p.HalfEdges, FromHalfEdge(halfEdge, cache))
	}
	return p
}

// Build commits this partial cycle and any unbuilt children, bottom-up,
// returning the handle of the new full object.
func (c *Cycle) Build(o *objects.Objects) (storage.Handle[objects.Cycle], error) {
	return c.build(o, newBuildCache())
}

func (c *Cycle) build(
	o *objects.Objects,
	cache *buildCache,
) (storage.Handle[objects.Cycle], error) {
	var zero storage.Handle[objects.Cycle]

	if h, ok := cache.cycles[c]; ok {
		return h, nil
	}

	halfEdges := make([]storage.Handle[objects.HalfEdge], 0, len(c.HalfEdges))
	for _, halfEdge := range c.HalfEdges {
		if halfEdge == nil {
			return zero, MissingFieldError{Object: "Cycle", Field: "HalfEdges"}
		}
		h, err := halfEdge.build(o, cache)
		if err != nil {
			return zero, err
		}
		halfEdges = append(halfEdges, h)
	}

	h := objects.InsertCycle(o, objects.NewCycle(halfEdges))
	cache.cycles[c] = h
	return h, nil
}

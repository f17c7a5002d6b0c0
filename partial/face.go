// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partial

import (
	"github.com/Jzow/Fornjot/geometry"
	"github.com/Jzow/Fornjot/mesh"
	"github.com/Jzow/Fornjot/objects"
	"github.com/Jzow/Fornjot/storage"
)

// Surface is a partial [objects.Surface].
type Surface struct {
	// Geometry is the carrier geometry of the surface.
	Geometry geometry.Surface
}

// FromSurface snapshots a full surface into its partial counterpart.
func FromSurface(
	h storage.Handle[objects.Surface],
	cache *FullToPartialCache,
) *Surface {
	if p, ok := cache.surfaces[h]; ok {
		return p
	}
	p := &Surface{Geometry: h.Value().Geometry()}
	cache.surfaces[h] = p
	return p
}

// Build commits this partial surface, returning the handle of the new full
// object.
func (s *Surface) Build(o *objects.Objects) (storage.Handle[objects.Surface], error) {
	return s.build(o, newBuildCache())
}

func (s *Surface) build(
	o *objects.Objects,
	cache *buildCache,
) (storage.Handle[objects.Surface], error) {
	if h, ok := cache.surfaces[s]; ok {
		return h, nil
	}
	if s.Geometry == nil {
		return storage.Handle[objects.Surface]{},
			MissingFieldError{Object: "Surface", Field: "Geometry"}
	}

	h := objects.InsertSurface(o, objects.NewSurface(s.Geometry))
	cache.surfaces[s] = h
	return h, nil
}

// Face is a partial [objects.Face].
type Face struct {
	// Surface is the surface the face is defined on.
	Surface *Surface

	// Exterior is the cycle bounding the face on the outside.
	Exterior *Cycle

	// Interiors are the cycles bounding holes in the face.
	Interiors []*Cycle

	// Color is the color of the face. nil defaults to
	// [mesh.DefaultColor] at build time.
	Color *mesh.Color
}

// FromFace snapshots a full face into its partial counterpart, recursively
// snapshotting the surface and cycles.
func FromFace(
	h storage.Handle[objects.Face],
	cache *FullToPartialCache,
) *Face {
	if p, ok := cache.faces[h]; ok {
		return p
	}
	color := h.Value().Color()
	p := &Face{
		Surface:  FromSurface(h.Value().Surface(), cache),
		Exterior: FromCycle(h.Value().Exterior(), cache),
		Color:    &color,
	}
	cache.faces[h] = p
	for _, interior := range h.Value().Interiors() {
		p.Interiors = append(p.Interiors, FromCycle(interior, cache))
	}
	return p
}

// Build commits this partial face and any unbuilt children, bottom-up,
// returning the handle of the new full object.
func (f *Face) Build(o *objects.Objects) (storage.Handle[objects.Face], error) {
	return f.build(o, newBuildCache())
}

func (f *Face) build(
	o *objects.Objects,
	cache *buildCache,
) (storage.Handle[objects.Face], error) {
	var zero storage.Handle[objects.Face]

	if h, ok := cache.faces[f]; ok {
		return h, nil
	}
	if f.Surface == nil {
		return zero, MissingFieldError{Object: "Face", Field: "Surface"}
	}
	if f.Exterior == nil {
		return zero, MissingFieldError{Object: "Face", Field: "Exterior"}
	}

	surface, err := f.Surface.build(o, cache)
	if err != nil {
		return zero, err
	}
	exterior, err := f.Exterior.build(o, cache)
	if err != nil {
		return zero, err
	}

	interiors := make([]storage.Handle[objects.Cycle], 0, len(f.Interiors))
	for _, interior := range f.Interiors {
		if interior == nil {
			return zero, MissingFieldError{Object: "Face", Field: "Interiors"}
		}
		h, err := interior.build(o, cache)
		if err != nil {
			return zero, err
		}
		interiors = append(interiors, h)
	}

	color := mesh.DefaultColor()
	if f.Color != nil {
		color = *f.Color
	}

	h := objects.InsertFace(o, objects.NewFace(surface, exterior, interiors, color))
	cache.faces[f] = h
	return h, nil
}

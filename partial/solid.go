// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partial

import (
	"github.com/Jzow/Fornjot/objects"
	"github.com/Jzow/Fornjot/storage"
)

// Shell is a partial [objects.Shell].
type Shell struct {
	// Faces are the faces that make up the shell.
	Faces []*Face
}

// FromShell snapshots a full shell into its partial counterpart,
// recursively snapshotting the faces.
func FromShell(
	h storage.Handle[objects.Shell],
	cache *FullToPartialCache,
) *Shell {
	if p, ok := cache.shells[h]; ok {
		return p
	}
	p := &Shell{}
	cache.shells[h] = p
	for _, face := range h.Value().Faces() {
		p.Faces = append(p.Faces, FromFace(face, cache))
	}
	return p
}

// Build commits this partial shell and any unbuilt children, bottom-up,
// returning the handle of the new full object.
func (s *Shell) Build(o *objects.Objects) (storage.Handle[objects.Shell], error) {
	return s.build(o, newBuildCache())
}

func (s *Shell) build(
	o *objects.Objects,
	cache *buildCache,
) (storage.Handle[objects.Shell], error) {
	var zero storage.Handle[objects.Shell]

	if h, ok := cache.shells[s]; ok {
		return h, nil
	}

	faces := make([]storage.Handle[objects.Face], 0, len(s.Faces))
	for _, face := range s.Faces {
		if face == nil {
			return zero, MissingFieldError{Object: "Shell", Field: "Faces"}
		}
		h, err := face.build(o, cache)
		if err != nil {
			return zero, err
		}
		faces = append(faces, h)
	}

	h := objects.InsertShell(o, objects.NewShell(faces))
	cache.shells[s] = h
	return h, nil
}

// Sketch is a partial [objects.Sketch].
type Sketch struct {
	// Faces are the faces that make up the sketch.
	Faces []*Face
}

// FromSketch snapshots a full sketch into its partial counterpart,
// recursively snapshotting the faces.
func FromSketch(
	h storage.Handle[objects.Sketch],
	cache *FullToPartialCache,
) *Sketch {
	if p, ok := cache.sketches[h]; ok {
		return p
	}
	p := &Sketch{}
	cache.sketches[h] = p
	for _, face := range h.Value().Faces() {
		p.Faces = append(p.Faces, FromFace(face, cache))
	}
	return p
}

// Build commits this partial sketch and any unbuilt children, bottom-up,
// returning the handle of the new full object.
func (s *Sketch) Build(o *objects.Objects) (storage.Handle[objects.Sketch], error) {
	cache := newBuildCache()

	faces := make([]storage.Handle[objects.Face], 0, len(s.Faces))
	for _, face := range s.Faces {
		if face == nil {
			return storage.Handle[objects.Sketch]{},
				MissingFieldError{Object: "Sketch", Field: "Faces"}
		}
		h, err := face.build(o, cache)
		if err != nil {
			return storage.Handle[objects.Sketch]{}, err
		}
		faces = append(faces, h)
	}

	return objects.InsertSketch(o, objects.NewSketch(faces)), nil
}

// Solid is a partial [objects.Solid].
type Solid struct {
	// Shells are the shells that bound the solid.
	Shells []*Shell
}

// FromSolid snapshots a full solid into its partial counterpart,
// recursively snapshotting the shells.
func FromSolid(
	h storage.Handle[objects.Solid],
	cache *FullToPartialCache,
) *Solid {
	if p, ok := cache.solids[h]; ok {
		return p
	}
	p := &Solid{}
	cache.solids[h] = p
	for _, shell := range h.Value().Shells() {
		p.Shells = append(p.Shells, FromShell(shell, cache))
	}
	return p
}

// Build commits this partial solid and any unbuilt children, bottom-up,
// returning the handle of the new full object.
func (s *Solid) Build(o *objects.Objects) (storage.Handle[objects.Solid], error) {
	cache := newBuildCache()

	shells := make([]storage.Handle[objects.Shell], 0, len(s.Shells))
	for _, shell := range s.Shells {
		if shell == nil {
			return storage.Handle[objects.Solid]{},
				MissingFieldError{Object: "Solid", Field: "Shells"}
		}
		h, err := shell.build(o, cache)
		if err != nil {
			return storage.Handle[objects.Solid]{}, err
		}
		shells = append(shells, h)
	}

	return objects.InsertSolid(o, objects.NewSolid(shells)), nil
}

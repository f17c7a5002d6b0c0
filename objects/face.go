// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"slices"

	"github.com/Jzow/Fornjot/mesh"
	"github.com/Jzow/Fornjot/storage"
)

// Face is a bounded region of a surface: the surface itself, the exterior
// cycle that bounds the region, and any interior cycles that bound holes in
// it.
type Face struct {
	surface   storage.Handle[Surface]
	exterior  storage.Handle[Cycle]
	interiors []storage.Handle[Cycle]
	color     mesh.Color
}

// NewFace constructs a new [Face].
func NewFace(
	surface storage.Handle[Surface],
	exterior storage.Handle[Cycle],
	interiors []storage.Handle[Cycle],
	color mesh.Color,
) Face {
	return Face{
		surface:   surface,
		exterior:  exterior,
		interiors: slices.Clone(interiors),
		color:     color,
	}
}

// Surface returns the surface the face is defined on.
func (f Face) Surface() storage.Handle[Surface] {
	return f.surface
}

// Exterior returns the cycle that bounds the face on the outside.
func (f Face) Exterior() storage.Handle[Cycle] {
	return f.exterior
}

// Interiors returns the cycles that bound holes in the face.
func (f Face) Interiors() []storage.Handle[Cycle] {
	return f.interiors
}

// AllCycles returns the exterior cycle followed by the interior cycles.
func (f Face) AllCycles() []storage.Handle[Cycle] {
	return append([]storage.Handle[Cycle]{f.exterior}, f.interiors...)
}

// Color returns the color of the face.
func (f Face) Color() mesh.Color {
	return f.color
}

// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"slices"

	"github.com/Jzow/Fornjot/storage"
)

// Sketch is a two-dimensional shape: a set of faces defined in the same
// surface, typically used as the starting point of a construction.
type Sketch struct {
	faces []storage.Handle[Face]
}

// NewSketch constructs a new [Sketch] from its faces.
func NewSketch(faces []storage.Handle[Face]) Sketch {
	return Sketch{faces: slices.Clone(faces)}
}

// Faces returns the faces of the sketch.
func (s Sketch) Faces() []storage.Handle[Face] {
	return s.faces
}

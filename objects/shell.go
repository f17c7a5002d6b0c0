// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"slices"

	"github.com/Jzow/Fornjot/storage"
)

// Shell is a connected set of faces that, together, bound a volume.
type Shell struct {
	faces []storage.Handle[Face]
}

// NewShell constructs a new [Shell] from its faces.
func NewShell(faces []storage.Handle[Face]) Shell {
	return Shell{faces: slices.Clone(faces)}
}

// Faces returns the faces of the shell.
func (s Shell) Faces() []storage.Handle[Face] {
	return s.faces
}

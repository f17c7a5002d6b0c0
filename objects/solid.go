// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"slices"

	"github.com/Jzow/Fornjot/storage"
)

// Solid is a volume in 3D space, bounded by one or more shells: one outer
// boundary, plus one shell per cavity.
type Solid struct {
	shells []storage.Handle[Shell]
}

// NewSolid constructs a new [Solid] from its shells.
func NewSolid(shells []storage.Handle[Shell]) Solid {
	return Solid{shells: slices.Clone(shells)}
}

// Shells returns the shells that bound the solid.
func (s Solid) Shells() []storage.Handle[Shell] {
	return s.shells
}

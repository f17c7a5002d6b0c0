// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"github.com/Jzow/Fornjot/geometry"
)

// Surface is a two-dimensional object: the carrier geometry that faces and
// surface vertices are defined on.
type Surface struct {
	geometry geometry.Surface
}

// NewSurface constructs a new [Surface] from its carrier geometry.
func NewSurface(geometry geometry.Surface) Surface {
	return Surface{geometry: geometry}
}

// Geometry returns the carrier geometry of the surface.
func (s Surface) Geometry() geometry.Surface {
	return s.geometry
}

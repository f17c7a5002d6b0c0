// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"github.com/Jzow/Fornjot/math32"
)

// Surface is a two-dimensional geometric carrier, parameterized by a 2D
// surface coordinate.
type Surface interface {
	// PointAt returns the model-space point at the given surface
	// coordinates.
	PointAt(uv math32.Vector2) math32.Vector3

	// Project converts a point in model coordinates to the surface
	// coordinates of the closest point on the surface. Like
	// [Curve.Project], this never fails for points off the surface.
	Project(point math32.Vector3) math32.Vector2

	// Transform returns this surface mapped through the given rigid
	// motion.
	Transform(iso math32.Isometry) Surface
}

// Plane is a plane through Origin, spanned by the vectors U and V. The
// surface coordinates (u, v) map to Origin + U*u + V*v.
type Plane struct {
	Origin math32.Vector3
	U      math32.Vector3
	V      math32.Vector3
}

// XYPlane returns the xy plane with its canonical parametrization.
func XYPlane() Plane {
	return Plane{U: math32.Vec3(1, 0, 0), V: math32.Vec3(0, 1, 0)}
}

// XZPlane returns the xz plane with its canonical parametrization.
func XZPlane() Plane {
	return Plane{U: math32.Vec3(1, 0, 0), V: math32.Vec3(0, 0, 1)}
}

// YZPlane returns the yz plane with its canonical parametrization.
func YZPlane() Plane {
	return Plane{U: math32.Vec3(0, 1, 0), V: math32.Vec3(0, 0, 1)}
}

// PointAt returns the model-space point at the given surface coordinates.
func (p Plane) PointAt(uv math32.Vector2) math32.Vector3 {
	return p.Origin.
		Add(p.U.MulScalar(uv.X)).
		Add(p.V.MulScalar(uv.Y))
}

// Project converts a point in model coordinates to surface coordinates, by
// projecting it onto the plane.
func (p Plane) Project(point math32.Vector3) math32.Vector2 {
	rel := point.Sub(p.Origin)
	return math32.Vec2(
		rel.Dot(p.U)/p.U.LengthSquared(),
		rel.Dot(p.V)/p.V.LengthSquared(),
	)
}

// Transform returns this plane mapped through the given rigid motion.
func (p Plane) Transform(iso math32.Isometry) Surface {
	return Plane{
		Origin: iso.TransformPoint(p.Origin),
		U:      iso.TransformVector(p.U),
		V:      iso.TransformVector(p.V),
	}
}

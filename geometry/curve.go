// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geometry provides the continuous geometric carriers that the
// topological object graph is layered over: curves and surfaces.
//
// The nomenclature is inspired by Boundary Representation Modelling
// Techniques by Ian Stroud: "curve" refers to unbounded one-dimensional
// geometry, while edges are bounded portions of curves. "Curve" doesn't
// imply that a shape needs to be curved; straight lines are included.
package geometry

import (
	"github.com/Jzow/Fornjot/math32"
)

// Curve is a one-dimensional geometric carrier, parameterized by a single
// curve coordinate.
type Curve interface {
	// PointAt returns the model-space point at the given curve coordinate.
	PointAt(t float32) math32.Vector3

	// Project converts a point in model coordinates to the curve
	// coordinate of the closest point on the curve.
	//
	// Projecting first makes this robust against floating point accuracy
	// issues, but it also means a point far off the curve never results
	// in an error. Callers are advised to be careful about the points
	// they pass.
	Project(point math32.Vector3) float32

	// Transform returns this curve mapped through the given rigid motion.
	Transform(iso math32.Isometry) Curve

	// Approx appends points approximating the curve to out. tolerance
	// defines how far the approximation is allowed to deviate from the
	// actual curve. The points at the curve's boundary are not included;
	// they belong to the vertices bounding the edge.
	Approx(tolerance float32, out *[]math32.Vector3)
}

// Line is a straight line through Origin with the given Direction. The
// curve coordinate t maps to Origin + Direction*t, so the direction's
// length defines the coordinate scale.
type Line struct {
	Origin    math32.Vector3
	Direction math32.Vector3
}

// LineFromPoints returns the line through the two given points, with curve
// coordinate 0 at a and 1 at b.
func LineFromPoints(a, b math32.Vector3) Line {
	return Line{Origin: a, Direction: b.Sub(a)}
}

// PointAt returns the model-space point at the given curve coordinate.
func (l Line) PointAt(t float32) math32.Vector3 {
	return l.Origin.Add(l.Direction.MulScalar(t))
}

// Project converts a point in model coordinates to a curve coordinate, by
// projecting it onto the line.
func (l Line) Project(point math32.Vector3) float32 {
	return point.Sub(l.Origin).Dot(l.Direction) / l.Direction.LengthSquared()
}

// Transform returns this line mapped through the given rigid motion.
func (l Line) Transform(iso math32.Isometry) Curve {
	return Line{
		Origin:    iso.TransformPoint(l.Origin),
		Direction: iso.TransformVector(l.Direction),
	}
}

// Approx appends nothing: a line is already exact.
func (l Line) Approx(tolerance float32, out *[]math32.Vector3) {}

// Circle is a circle around Center, spanned by the two radius vectors A and
// B. The curve coordinate t (an angle in radians) maps to
// Center + A*cos(t) + B*sin(t).
type Circle struct {
	Center math32.Vector3
	A      math32.Vector3
	B      math32.Vector3
}

// CircleInPlane returns a circle of the given radius around center, lying
// in the plane spanned by the given unit vectors u and v.
func CircleInPlane(center math32.Vector3, radius float32, u, v math32.Vector3) Circle {
	return Circle{
		Center: center,
		A:      u.MulScalar(radius),
		B:      v.MulScalar(radius),
	}
}

// Radius returns the radius of the circle.
func (c Circle) Radius() float32 {
	return c.A.Length()
}

// PointAt returns the model-space point at the given angle.
func (c Circle) PointAt(t float32) math32.Vector3 {
	return c.Center.
		Add(c.A.MulScalar(math32.Cos(t))).
		Add(c.B.MulScalar(math32.Sin(t)))
}

// Project converts a point in model coordinates to the angle of the closest
// point on the circle, in [0, 2*Pi).
func (c Circle) Project(point math32.Vector3) float32 {
	rel := point.Sub(c.Center)
	x := rel.Dot(c.A) / c.A.LengthSquared()
	y := rel.Dot(c.B) / c.B.LengthSquared()

	t := math32.Atan2(y, x)
	if t < 0 {
		t += 2 * math32.Pi
	}
	return t
}

// Transform returns this circle mapped through the given rigid motion.
func (c Circle) Transform(iso math32.Isometry) Curve {
	return Circle{
		Center: iso.TransformPoint(c.Center),
		A:      iso.TransformVector(c.A),
		B:      iso.TransformVector(c.B),
	}
}

// Approx appends points approximating the full circle to out, starting
// after angle 0. The number of points is chosen so the polygon deviates
// from the circle by at most tolerance.
func (c Circle) Approx(tolerance float32, out *[]math32.Vector3) {
	n := numPointsForCircle(tolerance, c.Radius())
	for i := 1; i < n; i++ {
		t := 2 * math32.Pi * float32(i) / float32(n)
		*out = append(*out, c.PointAt(t))
	}
}

// numPointsForCircle computes the number of polygon vertices needed to stay
// within tolerance of a circle of the given radius, with a minimum of 3.
func numPointsForCircle(tolerance, radius float32) int {
	if tolerance >= radius {
		return 3
	}
	n := int(math32.Ceil(math32.Pi / math32.Acos(1-tolerance/radius)))
	if n < 3 {
		n = 3
	}
	return n
}

// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jzow/Fornjot/math32"
)

func TestLine(t *testing.T) {
	line := LineFromPoints(math32.Vec3(1, 0, 0), math32.Vec3(3, 0, 0))

	assert.Equal(t, math32.Vec3(1, 0, 0), line.PointAt(0))
	assert.Equal(t, math32.Vec3(3, 0, 0), line.PointAt(1))
	assert.Equal(t, math32.Vec3(2, 0, 0), line.PointAt(0.5))

	assert.InDelta(t, 0.5, line.Project(math32.Vec3(2, 0, 0)), 1e-6)

	// Points off the line project onto it.
	assert.InDelta(t, 0.5, line.Project(math32.Vec3(2, 7, -3)), 1e-6)

	var out []math32.Vector3
	line.Approx(0.1, &out)
	assert.Empty(t, out)
}

func TestLineTransform(t *testing.T) {
	line := LineFromPoints(math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0))
	moved := line.Transform(math32.NewIsometryTranslation(math32.Vec3(0, 0, 5)))

	assert.Equal(t, math32.Vec3(0, 0, 5), moved.PointAt(0))
	assert.Equal(t, math32.Vec3(1, 0, 5), moved.PointAt(1))
}

func TestCircle(t *testing.T) {
	circle := CircleInPlane(
		math32.Vec3(0, 0, 0), 2,
		math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0),
	)

	assert.InDelta(t, 2, circle.Radius(), 1e-6)
	assert.Equal(t, math32.Vec3(2, 0, 0), circle.PointAt(0))

	p := circle.PointAt(math32.Pi / 2)
	assert.InDelta(t, 0, p.X, 1e-6)
	assert.InDelta(t, 2, p.Y, 1e-6)

	assert.InDelta(t, math32.Pi/2, circle.Project(math32.Vec3(0, 2, 0)), 1e-6)
	// Projection is robust against points off the circle.
	assert.InDelta(t, math32.Pi/2, circle.Project(math32.Vec3(0, 5, 1)), 1e-6)
}

func TestCircleApprox(t *testing.T) {
	circle := CircleInPlane(
		math32.Vec3(0, 0, 0), 1,
		math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0),
	)

	var coarse []math32.Vector3
	circle.Approx(1, &coarse)
	assert.Len(t, coarse, 2) // 3 points minus the boundary point at angle 0

	var fine []math32.Vector3
	circle.Approx(0.01, &fine)
	assert.Greater(t, len(fine), len(coarse))

	// All approximation points lie on the circle.
	for _, p := range fine {
		assert.InDelta(t, 1, p.Length(), 1e-5)
	}
}

func TestPlane(t *testing.T) {
	plane := XYPlane()

	assert.Equal(t, math32.Vec3(2, 3, 0), plane.PointAt(math32.Vec2(2, 3)))
	assert.Equal(t, math32.Vec2(2, 3), plane.Project(math32.Vec3(2, 3, 0)))
	// Points off the plane project onto it.
	assert.Equal(t, math32.Vec2(2, 3), plane.Project(math32.Vec3(2, 3, 9)))
}

func TestPlaneTransform(t *testing.T) {
	plane := XYPlane()
	rotated := plane.Transform(
		math32.NewIsometryRotation(math32.Vec3(1, 0, 0), math32.Pi/2))

	p := rotated.PointAt(math32.Vec2(1, 1))
	assert.InDelta(t, 1, p.X, 1e-6)
	assert.InDelta(t, 0, p.Y, 1e-6)
	assert.InDelta(t, 1, p.Z, 1e-6)
}

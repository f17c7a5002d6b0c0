// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-5

func assertVec3InDelta(t *testing.T, want, got Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tolerance)
	assert.InDelta(t, want.Y, got.Y, tolerance)
	assert.InDelta(t, want.Z, got.Z, tolerance)
}

func TestIsometryIdentity(t *testing.T) {
	id := NewIsometryIdentity()
	p := Vec3(1, 2, 3)
	assert.Equal(t, p, id.TransformPoint(p))
	assert.Equal(t, p, id.TransformVector(p))
}

func TestIsometryTranslation(t *testing.T) {
	tr := NewIsometryTranslation(Vec3(1, 0, -2))
	assert.Equal(t, Vec3(2, 2, 1), tr.TransformPoint(Vec3(1, 2, 3)))

	// Directions are not affected by translation.
	assert.Equal(t, Vec3(1, 2, 3), tr.TransformVector(Vec3(1, 2, 3)))
}

func TestIsometryRotation(t *testing.T) {
	rot := NewIsometryRotation(Vec3(0, 0, 1), Pi/2)
	assertVec3InDelta(t, Vec3(0, 1, 0), rot.TransformPoint(Vec3(1, 0, 0)))
	assertVec3InDelta(t, Vec3(-1, 0, 0), rot.TransformPoint(Vec3(0, 1, 0)))
}

func TestIsometryMul(t *testing.T) {
	rot := NewIsometryRotation(Vec3(0, 0, 1), Pi/2)
	tr := NewIsometryTranslation(Vec3(1, 0, 0))

	// tr.Mul(rot) rotates first, then translates.
	combined := tr.Mul(rot)
	assertVec3InDelta(t, Vec3(1, 1, 0), combined.TransformPoint(Vec3(1, 0, 0)))
}

func TestIsometryInverse(t *testing.T) {
	iso := NewIsometryTranslation(Vec3(1, 2, 3)).
		Mul(NewIsometryRotation(Vec3(0, 1, 0), Pi/3))
	p := Vec3(4, -5, 6)
	assertVec3InDelta(t, p, iso.Inverse().TransformPoint(iso.TransformPoint(p)))
}

func TestIsometryPreservesDistance(t *testing.T) {
	iso := NewIsometryTranslation(Vec3(2, -1, 5)).
		Mul(NewIsometryRotation(Vec3(1, 0, 0), 1.2))
	a := Vec3(1, 2, 3)
	b := Vec3(-4, 0, 2)
	assert.InDelta(t,
		a.DistanceTo(b),
		iso.TransformPoint(a).DistanceTo(iso.TransformPoint(b)),
		tolerance)
}

// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3(t *testing.T) {
	assert.Equal(t, Vector3{5, 10, -2}, Vec3(5, 10, -2))
	assert.Equal(t, Vector3{3, 3, 3}, Vector3Scalar(3))

	v := Vector3{}
	v.Set(-1, 7, 2)
	assert.Equal(t, Vector3{-1, 7, 2}, v)

	assert.Equal(t, Vec3(1, 3, 5), Vec3(0, 1, 2).Add(Vec3(1, 2, 3)))
	assert.Equal(t, Vec3(-1, -1, -1), Vec3(0, 1, 2).Sub(Vec3(1, 2, 3)))
	assert.Equal(t, Vec3(2, 4, 6), Vec3(1, 2, 3).MulScalar(2))
	assert.Equal(t, Vec3(1, 2, 3), Vec3(2, 4, 6).DivScalar(2))
	assert.Equal(t, Vec3(-1, 2, -3), Vec3(1, -2, 3).Negate())

	assert.Equal(t, float32(14), Vec3(1, 2, 3).Dot(Vec3(1, 2, 3)))
	assert.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))

	assert.Equal(t, float32(5), Vec3(3, 4, 0).Length())
	assert.Equal(t, float32(25), Vec3(3, 4, 0).LengthSquared())
	assert.Equal(t, Vec3(0, 0, 1), Vec3(0, 0, 4).Normal())

	assert.Equal(t, float32(5), Vec3(1, 1, 1).DistanceTo(Vec3(4, 5, 1)))
}

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	assert.Equal(t, Vec2(1, 3), Vec2(0, 1).Add(Vec2(1, 2)))
	assert.Equal(t, Vec2(-1, -1), Vec2(0, 1).Sub(Vec2(1, 2)))
	assert.Equal(t, float32(5), Vec2(3, 4).Length())
	assert.Equal(t, float32(5), Vec2(0, 0).DistanceTo(Vec2(3, 4)))
}

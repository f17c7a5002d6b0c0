// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Isometry is a rigid motion in 3D space: a rotation followed by a
// translation. Isometries preserve distances, which is what makes them safe
// to apply to a shape without changing its topology.
type Isometry struct {
	Rotation    Quat
	Translation Vector3
}

// NewIsometry returns a new [Isometry] with the given rotation and translation.
func NewIsometry(rotation Quat, translation Vector3) Isometry {
	return Isometry{Rotation: rotation, Translation: translation}
}

// NewIsometryIdentity returns the identity isometry, which maps every point
// to itself.
func NewIsometryIdentity() Isometry {
	return Isometry{Rotation: NewQuatIdentity()}
}

// NewIsometryTranslation returns a pure translation by the given vector.
func NewIsometryTranslation(translation Vector3) Isometry {
	return Isometry{Rotation: NewQuatIdentity(), Translation: translation}
}

// NewIsometryRotation returns a pure rotation around the given axis by the
// given angle (radians). The axis is assumed to be normalized.
func NewIsometryRotation(axis Vector3, angle float32) Isometry {
	return Isometry{Rotation: NewQuatAxisAngle(axis, angle)}
}

// TransformPoint returns the given point mapped through this isometry:
// rotated, then translated.
func (i Isometry) TransformPoint(p Vector3) Vector3 {
	return i.Rotation.MulVector3(p).Add(i.Translation)
}

// TransformVector returns the given direction vector mapped through this
// isometry. Directions are only rotated; the translation does not apply.
func (i Isometry) TransformVector(v Vector3) Vector3 {
	return i.Rotation.MulVector3(v)
}

// Mul returns the composition of this isometry with the other given one,
// such that the other is applied first.
func (i Isometry) Mul(other Isometry) Isometry {
	return Isometry{
		Rotation:    i.Rotation.Mul(other.Rotation),
		Translation: i.Rotation.MulVector3(other.Translation).Add(i.Translation),
	}
}

// Inverse returns the inverse of this isometry.
// Applying an isometry and then its inverse maps every point to itself,
// up to floating point round-off.
func (i Isometry) Inverse() Isometry {
	inv := i.Rotation.Conjugate()
	return Isometry{
		Rotation:    inv,
		Translation: inv.MulVector3(i.Translation).Negate(),
	}
}

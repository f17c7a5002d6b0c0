// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jzow/Fornjot/math32"
)

func TestPushVertexDeduplicates(t *testing.T) {
	m := New()

	a := m.PushVertex(math32.Vec3(0, 0, 0))
	b := m.PushVertex(math32.Vec3(1, 0, 0))
	c := m.PushVertex(math32.Vec3(0, 0, 0))

	assert.Equal(t, a, c)
	assert.NotEqual(t, a, b)
	assert.Len(t, m.Vertices(), 2)
	assert.Equal(t, []Index{0, 1, 0}, m.Indices())
}

func TestPushTriangleSharesVertices(t *testing.T) {
	m := New()

	m.PushTriangle([3]math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0),
	}, DefaultColor())
	m.PushTriangle([3]math32.Vector3{
		math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0), math32.Vec3(1, 1, 0),
	}, DefaultColor())

	// Two triangles sharing an edge use four vertices, not six.
	assert.Len(t, m.Vertices(), 4)
	assert.Len(t, m.Indices(), 6)
	assert.Len(t, m.Triangles(), 2)
}

func TestContainsTriangle(t *testing.T) {
	m := New()

	a := math32.Vec3(0, 0, 0)
	b := math32.Vec3(1, 0, 0)
	c := math32.Vec3(0, 1, 0)
	m.PushTriangle([3]math32.Vector3{a, b, c}, DefaultColor())

	// Any combination of the same three points matches.
	assert.True(t, m.ContainsTriangle([3]math32.Vector3{a, b, c}))
	assert.True(t, m.ContainsTriangle([3]math32.Vector3{b, c, a}))
	assert.True(t, m.ContainsTriangle([3]math32.Vector3{c, b, a}))

	assert.False(t, m.ContainsTriangle(
		[3]math32.Vector3{a, b, math32.Vec3(0, 0, 1)}))
}

func TestWriteSTL(t *testing.T) {
	m := New()
	m.PushTriangle([3]math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0),
	}, DefaultColor())

	var buf bytes.Buffer
	require.NoError(t, m.WriteSTL(&buf))

	// 80-byte header, 4-byte count, 50 bytes per triangle.
	assert.Equal(t, 80+4+50, buf.Len())

	count := binary.LittleEndian.Uint32(buf.Bytes()[80:84])
	assert.Equal(t, uint32(1), count)
}

// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides a triangle mesh for display and export.
//
// The mesh deduplicates vertex positions into a vertex table and builds an
// index list, which is the form display and export consumers want.
package mesh

import (
	"github.com/Jzow/Fornjot/math32"
)

// Index refers to a vertex in a mesh.
type Index = uint32

// Color is an RGBA color with 8 bits per channel.
type Color [4]uint8

// DefaultColor returns the default triangle color, red. This is an
// arbitrary choice.
func DefaultColor() Color {
	return Color{255, 0, 0, 255}
}

// Triangle is a triangle of a [Mesh]: three points plus a color.
type Triangle struct {
	Points [3]math32.Vector3
	Color  Color
}

// Mesh is a triangle mesh with deduplicated vertices.
type Mesh struct {
	vertices []math32.Vector3
	indices  []Index

	indicesByVertex map[math32.Vector3]Index
	triangles       []Triangle
}

// New returns a new empty [Mesh].
func New() *Mesh {
	return &Mesh{
		indicesByVertex: make(map[math32.Vector3]Index),
	}
}

// PushVertex adds a vertex to the mesh and returns its index. A position
// that is already part of the mesh is not duplicated; its existing index is
// appended to the index list and returned.
func (m *Mesh) PushVertex(vertex math32.Vector3) Index {
	index, ok := m.indicesByVertex[vertex]
	if !ok {
		index = Index(len(m.vertices))
		m.vertices = append(m.vertices, vertex)
		m.indicesByVertex[vertex] = index
	}
	m.indices = append(m.indices, index)
	return index
}

// PushTriangle adds a triangle to the mesh, adding its points to the vertex
// table as needed.
func (m *Mesh) PushTriangle(points [3]math32.Vector3, color Color) {
	for _, point := range points {
		m.PushVertex(point)
	}
	m.triangles = append(m.triangles, Triangle{Points: points, Color: color})
}

// ContainsTriangle reports whether a triangle with any combination of the
// provided points is part of the mesh. Triangle identity is defined by the
// set of the three points; order and rotation don't matter.
func (m *Mesh) ContainsTriangle(points [3]math32.Vector3) bool {
	points = normalizeTriangle(points)
	for _, t := range m.triangles {
		if normalizeTriangle(t.Points) == points {
			return true
		}
	}
	return false
}

// Vertices returns the deduplicated vertex table.
func (m *Mesh) Vertices() []math32.Vector3 {
	return m.vertices
}

// Indices returns the index list, three consecutive indices per triangle.
func (m *Mesh) Indices() []Index {
	return m.indices
}

// Triangles returns the triangles of the mesh, in insertion order.
func (m *Mesh) Triangles() []Triangle {
	return m.triangles
}

// normalizeTriangle orders the points of a triangle deterministically, so
// that triangles with the same point set compare equal.
func normalizeTriangle(points [3]math32.Vector3) [3]math32.Vector3 {
	for i := 0; i < 2; i++ {
		for j := i + 1; j < 3; j++ {
			if lessVec3(points[j], points[i]) {
				points[i], points[j] = points[j], points[i]
			}
		}
	}
	return points
}

func lessVec3(a, b math32.Vector3) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

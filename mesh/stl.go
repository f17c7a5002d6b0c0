// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Jzow/Fornjot/math32"
)

// WriteSTL writes the mesh to w in binary STL format. STL carries no color
// information; triangle colors are dropped.
func (m *Mesh) WriteSTL(w io.Writer) error {
	var header [80]byte
	copy(header[:], "fornjot mesh")
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("writing STL header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.triangles))); err != nil {
		return fmt.Errorf("writing STL triangle count: %w", err)
	}

	for _, t := range m.triangles {
		normal := math32.Normal(t.Points[0], t.Points[1], t.Points[2])
		record := [12]float32{
			normal.X, normal.Y, normal.Z,
			t.Points[0].X, t.Points[0].Y, t.Points[0].Z,
			t.Points[1].X, t.Points[1].Y, t.Points[1].Z,
			t.Points[2].X, t.Points[2].Y, t.Points[2].Z,
		}
		if err := binary.Write(w, binary.LittleEndian, record); err != nil {
			return fmt.Errorf("writing STL triangle: %w", err)
		}
		// Attribute byte count, unused.
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("writing STL triangle: %w", err)
		}
	}
	return nil
}

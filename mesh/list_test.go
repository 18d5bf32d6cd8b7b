// seehuhn.de/go/stlvec - draw STL meshes as vector line art
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/stlvec/fix"
)

func pt(x, y, z int) Point3 {
	return Point3{X: fix.FromInt(x), Y: fix.FromInt(y), Z: fix.FromInt(z)}
}

func tri(a, b, c Point3) Triangle3 {
	return Triangle3{a, b, c}
}

func TestTriangleListSentinel(t *testing.T) {
	l := NewTriangleList(3)
	assert.Equal(t, 3, l.Cap())
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Slot(0).IsNull())

	for i := range 3 {
		require.True(t, l.Append(tri(pt(i, 0, 0), pt(0, 1, 0), pt(0, 0, 1))))
		assert.True(t, l.Slot(l.Len()).IsNull(), "after %d appends", i+1)
	}
	assert.True(t, l.Full())
	assert.False(t, l.Append(tri(pt(9, 9, 9), pt(1, 1, 1), pt(2, 2, 2))))
	assert.Equal(t, 3, l.Len())
	assert.True(t, l.Slot(3).IsNull())

	l.Reset()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Triangles())
	assert.True(t, l.Slot(0).IsNull())
}

func TestTriangleListAliasing(t *testing.T) {
	l := NewTriangleList(2)
	l.Append(tri(pt(1, 2, 3), pt(4, 5, 6), pt(7, 8, 9)))
	tris := l.Triangles()
	tris[0][0].X = fix.FromInt(10)
	assert.Equal(t, fix.FromInt(10), l.Slot(0)[0].X)

	// the sentinel is not reachable through the returned slice
	assert.Equal(t, 1, cap(tris))
}

func TestZeroValueList(t *testing.T) {
	var l TriangleList
	assert.Equal(t, 0, l.Cap())
	assert.True(t, l.Full())
	assert.False(t, l.Append(tri(pt(1, 0, 0), pt(0, 1, 0), pt(0, 0, 1))))
}

func TestBounds(t *testing.T) {
	tris := []Triangle3{
		tri(pt(1, 2, 3), pt(-4, 5, 0), pt(2, -1, 7)),
		tri(pt(0, 0, 0), pt(3, 3, -2), pt(-1, 8, 1)),
	}
	box, err := Bounds(tris)
	require.NoError(t, err)
	assert.Equal(t, pt(-4, -1, -2), box.Min)
	assert.Equal(t, pt(3, 8, 7), box.Max)
	assert.Equal(t, pt(7, 9, 9), box.Size())

	// every vertex is inside, and every bound is attained
	var hit [6]bool
	for _, tr := range tris {
		for _, p := range tr {
			assert.True(t, box.Contains(p))
			hit[0] = hit[0] || p.X == box.Min.X
			hit[1] = hit[1] || p.Y == box.Min.Y
			hit[2] = hit[2] || p.Z == box.Min.Z
			hit[3] = hit[3] || p.X == box.Max.X
			hit[4] = hit[4] || p.Y == box.Max.Y
			hit[5] = hit[5] || p.Z == box.Max.Z
		}
	}
	assert.Equal(t, [6]bool{true, true, true, true, true, true}, hit)
}

func TestBoundsEmpty(t *testing.T) {
	_, err := Bounds(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestBoxCenter(t *testing.T) {
	box := Box3{Min: pt(-4, 0, 2), Max: pt(6, 3, 2)}
	c := box.Center()
	assert.Equal(t, fix.FromInt(1), c.X)
	assert.Equal(t, fix.FromInt(1)+fix.Half, c.Y)
	assert.Equal(t, fix.FromInt(2), c.Z)

	wide := Box3{Min: pt(-20000, 0, 0), Max: pt(20000, 100, 0)}
	assert.Equal(t, fix.Fix(0), wide.Center().X)
	assert.Equal(t, fix.FromInt(50), wide.Center().Y)

	vp := Viewport(100, 50)
	assert.Equal(t, Point2{X: fix.FromInt(50), Y: fix.FromInt(25)}, vp.Center())
	assert.True(t, vp.Contains(Point2{}))
	assert.False(t, vp.Contains(Point2{X: -1}))
}

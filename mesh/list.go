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

import "errors"

// ErrEmpty is returned when an operation needs at least one triangle.
var ErrEmpty = errors.New("mesh: no triangles")

// TriangleList is an ordered sequence of triangles with a capacity which
// is fixed when the list is created.  The storage holds one extra slot,
// so that the logical end of the list is always followed by a null
// triangle (all coordinates zero).
//
// The zero value is a list with capacity zero.
type TriangleList struct {
	buf []Triangle3
	n   int
}

// NewTriangleList allocates a list which can hold up to capacity triangles.
// No further allocations happen during the lifetime of the list.
func NewTriangleList(capacity int) *TriangleList {
	if capacity < 0 {
		capacity = 0
	}
	return &TriangleList{buf: make([]Triangle3, capacity+1)}
}

// Cap returns the maximal number of triangles.
func (l *TriangleList) Cap() int {
	if len(l.buf) == 0 {
		return 0
	}
	return len(l.buf) - 1
}

// Len returns the number of triangles in the list.
func (l *TriangleList) Len() int {
	return l.n
}

// Full reports whether no more triangles can be appended.
func (l *TriangleList) Full() bool {
	return l.n >= l.Cap()
}

// Reset empties the list, keeping its storage.
func (l *TriangleList) Reset() {
	l.n = 0
	if len(l.buf) > 0 {
		l.buf[0] = Triangle3{}
	}
}

// Append adds t to the end of the list and moves the terminating null
// triangle one slot further.  It reports false, and leaves the list
// unchanged, if the list is full.
func (l *TriangleList) Append(t Triangle3) bool {
	if l.Full() {
		return false
	}
	l.buf[l.n] = t
	l.n++
	l.buf[l.n] = Triangle3{}
	return true
}

// Triangles returns the triangles in the list, without the terminating
// null triangle.  The returned slice aliases the list's storage, so
// modifying its elements transforms the list in place.
func (l *TriangleList) Triangles() []Triangle3 {
	return l.buf[:l.n:l.n]
}

// Slot returns the storage slot i, for 0 <= i <= Len().  Slot Len() is the
// terminating null triangle.
func (l *TriangleList) Slot(i int) *Triangle3 {
	return &l.buf[i]
}

// Bounds returns the smallest box which contains every vertex of the
// given triangles.  It returns [ErrEmpty] if tris is empty.
func Bounds(tris []Triangle3) (Box3, error) {
	if len(tris) == 0 {
		return Box3{}, ErrEmpty
	}
	box := Box3{Min: tris[0][0], Max: tris[0][0]}
	for i := range tris {
		for _, p := range tris[i] {
			box.Extend(p)
		}
	}
	return box, nil
}

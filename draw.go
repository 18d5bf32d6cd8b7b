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

package stlvec

import (
	"seehuhn.de/go/stlvec/fix"
	"seehuhn.de/go/stlvec/mesh"
)

// Plotter receives the output of a [Renderer].  Coordinates are integer
// screen coordinates; they are not clipped to the viewport.
type Plotter interface {
	MoveTo(x, y int)
	LineTo(x, y int)
}

// Wedge returns the two-dimensional cross product of the edge vectors
// p0-p1 and p1-p2 of t.  This is twice the signed area of t.
// The result wraps around if it is outside the Q16.16 range.
func Wedge(t *mesh.Triangle2) fix.Fix {
	e1 := t[0].Sub(t[1])
	e2 := t[1].Sub(t[2])
	return fix.Mul(e1.X, e2.Y) - fix.Mul(e2.X, e1.Y)
}

// FrontFacing reports whether t faces the viewer, i.e. whether its
// vertices run clockwise on a screen with the y axis pointing down.
// Triangles with zero area count as front-facing.
//
// This agrees with the sign of [Wedge] whenever Wedge does not wrap.
// For very large triangles the products are computed at reduced
// precision instead of wrapping.
func FrontFacing(t *mesh.Triangle2) bool {
	e1 := t[0].Sub(t[1])
	e2 := t[1].Sub(t[2])
	a, errA := fix.MulChecked(e1.X, e2.Y)
	b, errB := fix.MulChecked(e2.X, e1.Y)
	if errA != nil || errB != nil {
		a = fix.Mul(e1.X>>8, e2.Y>>8)
		b = fix.Mul(e2.X>>8, e1.Y>>8)
	}
	return a >= b
}

// Outline sends the closed outline of t to p: one MoveTo and three LineTo
// calls, with coordinates truncated to integers.
func Outline(p Plotter, t *mesh.Triangle2) {
	x0, y0 := t[0].Int()
	x1, y1 := t[1].Int()
	x2, y2 := t[2].Int()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	p.LineTo(x2, y2)
	p.LineTo(x0, y0)
}

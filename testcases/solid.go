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

package testcases

// cube returns the twelve facets of an axis-aligned cube with the
// given corner and edge length.  All facets are oriented
// counter-clockwise when seen from outside.
func cube(x, y, z, s float64) []facet {
	p := func(i, j, k float64) [3]float64 {
		return [3]float64{x + i*s, y + j*s, z + k*s}
	}
	var res []facet
	res = append(res, quad(p(0, 0, 0), p(0, 1, 0), p(1, 1, 0), p(1, 0, 0))...) // -z
	res = append(res, quad(p(0, 0, 1), p(1, 0, 1), p(1, 1, 1), p(0, 1, 1))...) // +z
	res = append(res, quad(p(0, 0, 0), p(1, 0, 0), p(1, 0, 1), p(0, 0, 1))...) // -y
	res = append(res, quad(p(0, 1, 0), p(0, 1, 1), p(1, 1, 1), p(1, 1, 0))...) // +y
	res = append(res, quad(p(0, 0, 0), p(0, 0, 1), p(0, 1, 1), p(0, 1, 0))...) // -x
	res = append(res, quad(p(1, 0, 0), p(1, 1, 0), p(1, 1, 1), p(1, 0, 1))...) // +x
	return res
}

// octahedron returns the eight facets of a regular octahedron centered
// at the origin, with vertices at distance r on the axes.
func octahedron(r float64) []facet {
	var res []facet
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				a := [3]float64{sx * r, 0, 0}
				b := [3]float64{0, sy * r, 0}
				c := [3]float64{0, 0, sz * r}
				if sx*sy*sz < 0 {
					b, c = c, b
				}
				res = append(res, tri(a, b, c))
			}
		}
	}
	return res
}

// For a closed convex solid exactly half of the surface faces the
// viewer, unless faces are seen edge-on.
var solidCases = []TestCase{
	{
		Name:   "cube",
		STL:    solid("cube", cube(0, 0, 0, 10)...),
		Width:  500,
		Height: 800,
		Want:   Result{Facets: 12, Drawn: 6, Culled: 6},
	},
	{
		Name:   "cube_offset",
		STL:    solid("offset", cube(1000, -2000, 300, 25)...),
		Width:  500,
		Height: 800,
		Want:   Result{Facets: 12, Drawn: 6, Culled: 6},
	},
	{
		Name:   "octahedron",
		STL:    solid("octahedron", octahedron(7.5)...),
		Width:  320,
		Height: 240,
		Want:   Result{Facets: 8, Drawn: 4, Culled: 4},
	},
}

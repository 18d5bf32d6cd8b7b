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

import "seehuhn.de/go/stlvec/stl"

// row returns n copies of the basic facet, shifted along the x axis.
func row(n int) []facet {
	var res []facet
	for i := range n {
		dx := float64(20 * i)
		res = append(res, tri(
			[3]float64{dx, 0, 0},
			[3]float64{dx + 10, 0, 0},
			[3]float64{dx, 10, 0}))
	}
	return res
}

var limitsCases = []TestCase{
	{
		Name:     "capacity",
		STL:      solid("row", row(5)...),
		Width:    500,
		Height:   800,
		Capacity: 3,
		Want: Result{
			Err:     stl.ErrCapacity,
			Facets:  3,
			Dropped: 2,
			Drawn:   3,
		},
	},
	{
		Name:   "huge_cube",
		STL:    solid("huge", cube(-16000, -16000, -16000, 32000)...),
		Width:  500,
		Height: 800,
		Want:   Result{Facets: 12, Drawn: 6, Culled: 6},
	},
	{
		Name:   "tiny_cube",
		STL:    solid("tiny", cube(1, 1, 1, 0.01)...),
		Width:  100,
		Height: 100,
		Want:   Result{Facets: 12, Drawn: 6, Culled: 6},
	},
	{
		Name: "long_fractions",
		STL: `solid digits
  facet normal 0 0 1
    outer loop
      vertex 0.000000000001 -0.333333333333 0.999999999999
      vertex 12.345678901234 0.000000000000 1.000000000000
      vertex 0.100000000000 9.876543210987 0.999999999999
    endloop
  endfacet
endsolid digits
`,
		Width:  200,
		Height: 200,
		Want:   Result{Facets: 1, Drawn: 1},
	},
	{
		// Numerals with exponents are read as zero.  This collapses the
		// first facet onto the y axis.
		Name: "exponents",
		STL: `solid exponents
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1.5e1 0 0
      vertex 0 10 0
    endloop
  endfacet
  facet normal 0 0 1
    outer loop
      vertex +0 -0.0 0
      vertex +10 0 0
      vertex 0 10.000 0
    endloop
  endfacet
endsolid exponents
`,
		Width:  100,
		Height: 100,
		Want:   Result{Facets: 2, Drawn: 2},
	},
}

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

var (
	origin = [3]float64{0, 0, 0}
	unitX  = [3]float64{10, 0, 0}
	unitY  = [3]float64{0, 10, 0}
	unitXY = [3]float64{10, 10, 0}
)

var basicCases = []TestCase{
	{
		Name:   "single_facet",
		STL:    solid("single", tri(origin, unitX, unitY)),
		Width:  100,
		Height: 100,
		Want:   Result{Facets: 1, Drawn: 1},
	},
	{
		Name:   "back_facet",
		STL:    solid("back", tri(origin, unitY, unitX)),
		Width:  100,
		Height: 100,
		Want:   Result{Facets: 1, Culled: 1},
	},
	{
		Name:   "two_sided",
		STL:    solid("two", tri(origin, unitX, unitY), tri(origin, unitY, unitX)),
		Width:  100,
		Height: 100,
		Want:   Result{Facets: 2, Drawn: 1, Culled: 1},
	},
	{
		Name: "null_facets",
		STL: solid("nulls",
			tri(origin, origin, origin),
			tri(origin, unitX, unitY),
			tri(origin, origin, origin)),
		Width:  100,
		Height: 100,
		Want:   Result{Facets: 1, Null: 2, Drawn: 1},
	},
	{
		Name:   "flat_square",
		STL:    solid("square", quad(origin, unitX, unitXY, unitY)...),
		Width:  500,
		Height: 800,
		Want:   Result{Facets: 2, Drawn: 2},
	},
	{
		Name:   "landscape",
		STL:    solid("wide", tri(origin, unitX, unitY)),
		Width:  640,
		Height: 480,
		Want:   Result{Facets: 1, Drawn: 1},
	},
}

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

import (
	"seehuhn.de/go/stlvec"
	"seehuhn.de/go/stlvec/fix"
	"seehuhn.de/go/stlvec/mesh"
	"seehuhn.de/go/stlvec/stl"
)

var errorCases = []TestCase{
	{
		Name:   "truncated",
		STL:    solid("ok", tri(origin, unitX, unitY)) + "vertex 1 2 3\nvertex 4 5 6\n",
		Width:  100,
		Height: 100,
		Want:   Result{Err: stl.ErrTruncated},
	},
	{
		Name:   "bad_numeral",
		STL:    "solid bad\nvertex 1 x 2\nvertex 0 0 0\nvertex 0 0 0\nendsolid bad\n",
		Width:  100,
		Height: 100,
		Want:   Result{Err: fix.ErrSyntax},
	},
	{
		Name:   "out_of_range",
		STL:    "solid big\nvertex 40000 0 0\nvertex 0 0 0\nvertex 0 1 0\nendsolid big\n",
		Width:  100,
		Height: 100,
		Want:   Result{Err: fix.ErrRange},
	},
	{
		Name:   "single_point",
		STL:    solid("point", tri([3]float64{1, 1, 1}, [3]float64{1, 1, 1}, [3]float64{1, 1, 1})),
		Width:  100,
		Height: 100,
		Want:   Result{Err: stlvec.ErrDegenerate},
	},
	{
		Name:   "empty",
		STL:    "solid empty\nendsolid empty\n",
		Width:  100,
		Height: 100,
		Want:   Result{Err: mesh.ErrEmpty},
	},
	{
		Name:   "only_null",
		STL:    solid("nulls", tri(origin, origin, origin), tri(origin, origin, origin)),
		Width:  100,
		Height: 100,
		Want:   Result{Err: mesh.ErrEmpty},
	},
	{
		Name:   "scale_overflow",
		STL:    solid("tiny", cube(1, 1, 1, 0.01)...),
		Width:  500,
		Height: 800,
		Want:   Result{Err: stlvec.ErrScale},
	},
	{
		Name:   "too_wide",
		STL:    solid("wide", tri([3]float64{-20000, 0, 0}, [3]float64{20000, 0, 0}, [3]float64{0, 100, 0})),
		Width:  100,
		Height: 100,
		Want:   Result{Err: fix.ErrOverflow},
	},
}

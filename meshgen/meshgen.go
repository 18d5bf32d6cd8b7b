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

// Package meshgen builds simple solids and tessellates them into STL
// facets, for use as test input and demonstration models.
//
// Solids are described as signed distance functions and converted to
// triangles with marching cubes.
package meshgen

import (
	"fmt"
	"io"
	"slices"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"seehuhn.de/go/stlvec/stl"
)

// DefaultCells is the marching cubes resolution along the longest axis
// of a solid.  The result stays well below the default triangle capacity
// of the renderer for all named solids.
const DefaultCells = 12

// named maps solid names to constructors.  All solids fit into a
// 40×40×40 cube centered at the origin.
var named = map[string]func() (sdf.SDF3, error){
	"box": func() (sdf.SDF3, error) {
		return sdf.Box3D(v3.Vec{X: 40, Y: 30, Z: 20}, 0)
	},
	"cylinder": func() (sdf.SDF3, error) {
		return sdf.Cylinder3D(40, 15, 0)
	},
	"sphere": func() (sdf.SDF3, error) {
		return sdf.Sphere3D(20)
	},
	"bracket": bracket,
}

// bracket is a plate with a hole drilled through it, sitting on a
// smaller block.
func bracket() (sdf.SDF3, error) {
	plate, err := sdf.Box3D(v3.Vec{X: 40, Y: 40, Z: 10}, 2)
	if err != nil {
		return nil, err
	}
	hole, err := sdf.Cylinder3D(20, 8, 0)
	if err != nil {
		return nil, err
	}
	foot, err := sdf.Box3D(v3.Vec{X: 40, Y: 10, Z: 20}, 0)
	if err != nil {
		return nil, err
	}
	foot = sdf.Transform3D(foot, sdf.Translate3d(v3.Vec{Y: -15, Z: -10}))
	return sdf.Union3D(sdf.Difference3D(plate, hole), foot), nil
}

// Names returns the names of the available solids in sorted order.
func Names() []string {
	res := make([]string, 0, len(named))
	for name := range named {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// Solid returns the named solid.
func Solid(name string) (sdf.SDF3, error) {
	mk, ok := named[name]
	if !ok {
		return nil, fmt.Errorf("meshgen: unknown solid %q", name)
	}
	return mk()
}

// Facets tessellates s with the given number of cells along the longest
// axis.
func Facets(s sdf.SDF3, cells int) []stl.Facet {
	tris := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
	res := make([]stl.Facet, 0, len(tris))
	for _, t := range tris {
		var f stl.Facet
		for j := range 3 {
			f[j] = [3]float64{t[j].X, t[j].Y, t[j].Z}
		}
		res = append(res, f)
	}
	return res
}

// WriteSTL tessellates the named solid and writes it to w in ASCII STL
// format.  It returns the number of facets written.
func WriteSTL(w io.Writer, name string, cells int) (int, error) {
	s, err := Solid(name)
	if err != nil {
		return 0, err
	}
	facets := Facets(s, cells)
	return len(facets), stl.Encode(w, name, facets)
}

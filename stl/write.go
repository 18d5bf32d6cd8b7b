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

package stl

import (
	"bufio"
	"io"
	"math"
	"strconv"

	"seehuhn.de/go/stlvec/mesh"
)

// Facet is a triangle in floating-point coordinates, as produced by mesh
// generators.  The vertices are in counter-clockwise order when seen from
// outside the solid.
type Facet [3][3]float64

// FromTriangle converts a fixed-point triangle to a [Facet].
func FromTriangle(t mesh.Triangle3) Facet {
	var f Facet
	for i, p := range t {
		f[i] = [3]float64{p.X.Float64(), p.Y.Float64(), p.Z.Float64()}
	}
	return f
}

// Normal returns the unit normal of f, or the zero vector for a
// degenerate facet.
func (f Facet) Normal() [3]float64 {
	var u, v [3]float64
	for i := range 3 {
		u[i] = f[1][i] - f[0][i]
		v[i] = f[2][i] - f[0][i]
	}
	n := [3]float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
	l := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if l == 0 {
		return [3]float64{}
	}
	return [3]float64{n[0] / l, n[1] / l, n[2] / l}
}

// Encode writes the facets as an ASCII STL solid with the given name.
// Coordinates are written in plain decimal notation with six fractional
// digits, so that the output can be read back by [Ingest].
func Encode(w io.Writer, name string, facets []Facet) error {
	bw := bufio.NewWriter(w)
	var num []byte
	coords := func(prefix string, c [3]float64) {
		bw.WriteString(prefix)
		for _, x := range c {
			num = strconv.AppendFloat(num[:0], x, 'f', 6, 64)
			bw.WriteByte(' ')
			bw.Write(num)
		}
		bw.WriteByte('\n')
	}

	bw.WriteString("solid " + name + "\n")
	for _, f := range facets {
		coords("  facet normal", f.Normal())
		bw.WriteString("    outer loop\n")
		for _, v := range f {
			coords("      vertex", v)
		}
		bw.WriteString("    endloop\n")
		bw.WriteString("  endfacet\n")
	}
	bw.WriteString("endsolid " + name + "\n")
	return bw.Flush()
}

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
	"strconv"
	"strings"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name     string // lowercase a-z and _ only
	STL      string // the ASCII STL input
	Width    int    // viewport width in pixels
	Height   int    // viewport height in pixels
	Capacity int    // triangle capacity (zero means the default)
	Want     Result
}

// Result is the expected outcome of rendering a test case.
//
// If Err is set, rendering must fail with an error matching Err
// (in the sense of errors.Is).  The counts are only checked when
// triangles were drawn.
type Result struct {
	Err error

	Facets  int // triangles stored
	Null    int // null facets skipped
	Dropped int // facets beyond the capacity
	Drawn   int // front-facing triangles
	Culled  int // back-facing triangles
}

// facet is a triangle given by its nine vertex coordinates.
type facet [9]float64

// solid formats the facets as an ASCII STL document.
func solid(name string, facets ...facet) string {
	b := &strings.Builder{}
	b.WriteString("solid " + name + "\n")
	for _, f := range facets {
		b.WriteString("  facet normal 0 0 0\n    outer loop\n")
		for i := 0; i < 9; i += 3 {
			b.WriteString("      vertex")
			for _, x := range f[i : i+3] {
				b.WriteByte(' ')
				b.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
			}
			b.WriteByte('\n')
		}
		b.WriteString("    endloop\n  endfacet\n")
	}
	b.WriteString("endsolid " + name + "\n")
	return b.String()
}

// tri builds a facet from three vertices.
func tri(a, b, c [3]float64) facet {
	return facet{a[0], a[1], a[2], b[0], b[1], b[2], c[0], c[1], c[2]}
}

// quad splits the quadrilateral abcd into two facets with the same
// orientation.
func quad(a, b, c, d [3]float64) []facet {
	return []facet{tri(a, b, c), tri(a, c, d)}
}

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

package stlvec_test

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/stlvec"
	"seehuhn.de/go/stlvec/fix"
	"seehuhn.de/go/stlvec/mesh"
	"seehuhn.de/go/stlvec/plot/record"
	"seehuhn.de/go/stlvec/stl"
	"seehuhn.de/go/stlvec/testcases"
)

// facets formats the given triangles as ASCII STL.
func facets(tris ...[9]float64) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("solid test\n")
	for _, t := range tris {
		buf.WriteString("facet normal 0 0 0\nouter loop\n")
		for i := 0; i < 9; i += 3 {
			fmt.Fprintf(buf, "vertex %g %g %g\n", t[i], t[i+1], t[i+2])
		}
		buf.WriteString("endloop\nendfacet\n")
	}
	buf.WriteString("endsolid test\n")
	return buf.Bytes()
}

func tri2(x0, y0, x1, y1, x2, y2 int) *mesh.Triangle2 {
	return &mesh.Triangle2{
		{X: fix.FromInt(x0), Y: fix.FromInt(y0)},
		{X: fix.FromInt(x1), Y: fix.FromInt(y1)},
		{X: fix.FromInt(x2), Y: fix.FromInt(y2)},
	}
}

func TestFrontFacing(t *testing.T) {
	cases := []struct {
		name string
		tri  *mesh.Triangle2
		want bool
	}{
		{"clockwise", tri2(0, 0, 10, 0, 0, 10), true},
		{"counterclockwise", tri2(0, 0, 0, 10, 10, 0), false},
		{"collinear", tri2(0, 0, 5, 5, 10, 10), true},
		{"point", tri2(3, 3, 3, 3, 3, 3), true},
		{"large clockwise", tri2(-15000, -15000, 15000, -15000, -15000, 15000), true},
		{"large counterclockwise", tri2(-15000, -15000, -15000, 15000, 15000, -15000), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, stlvec.FrontFacing(c.tri))
		})
	}
}

func TestWedge(t *testing.T) {
	w := stlvec.Wedge(tri2(0, 0, 10, 0, 0, 10))
	assert.Equal(t, fix.FromInt(100), w)
	w = stlvec.Wedge(tri2(0, 0, 0, 10, 10, 0))
	assert.Equal(t, fix.FromInt(-100), w)
}

func TestOutline(t *testing.T) {
	tri := &mesh.Triangle2{
		{X: 0x18000, Y: 0x2FFFF},
		{X: fix.FromInt(7), Y: 0},
		{X: -0x8000, Y: fix.FromInt(4)},
	}
	var rec record.Recorder
	stlvec.Outline(&rec, tri)
	assert.Equal(t, "M 1 2 L 7 0 L -1 4 L 1 2", rec.String())
}

func TestFitScale(t *testing.T) {
	cube := mesh.Box3{Max: mesh.Point3{X: fix.FromInt(10), Y: fix.FromInt(10), Z: fix.FromInt(10)}}
	s, err := stlvec.FitScale(cube, mesh.Viewport(100, 200))
	require.NoError(t, err)
	assert.Equal(t, fix.Fix(10*0x9E37), s)

	flat := mesh.Box3{Max: mesh.Point3{X: fix.FromInt(20), Y: fix.FromInt(10)}}
	s, err = stlvec.FitScale(flat, mesh.Viewport(100, 100))
	require.NoError(t, err)
	assert.Equal(t, fix.Fix(5*0x9E37), s)

	_, err = stlvec.FitScale(mesh.Box3{}, mesh.Viewport(100, 100))
	assert.ErrorIs(t, err, stlvec.ErrDegenerate)

	_, err = stlvec.FitScale(cube, mesh.Viewport(0, 100))
	assert.ErrorIs(t, err, stlvec.ErrViewport)

	tiny := mesh.Box3{Max: mesh.Point3{X: 1, Y: 1, Z: 1}}
	_, err = stlvec.FitScale(tiny, mesh.Viewport(100, 100))
	assert.ErrorIs(t, err, stlvec.ErrScale)
	assert.ErrorIs(t, err, fix.ErrOverflow)

	// 40000 units do not fit into a fix.Fix, so Max-Min wraps around
	wide := mesh.Box3{
		Min: mesh.Point3{X: fix.FromInt(-20000)},
		Max: mesh.Point3{X: fix.FromInt(20000), Y: fix.FromInt(100)},
	}
	_, err = stlvec.FitScale(wide, mesh.Viewport(100, 100))
	assert.ErrorIs(t, err, stlvec.ErrScale)
	assert.ErrorIs(t, err, fix.ErrOverflow)
}

func TestRenderTooWide(t *testing.T) {
	r := stlvec.NewRenderer(0)
	var rec record.Recorder
	err := r.Render(facets(
		[9]float64{-20000, 0, 0, 20000, 0, 0, 0, 100, 0},
	), mesh.Viewport(100, 100), &rec)
	assert.ErrorIs(t, err, stlvec.ErrScale)
	assert.Empty(t, rec.Commands)

	// the mesh is left untouched
	tris := r.Triangles()
	require.Len(t, tris, 1)
	assert.Equal(t, fix.FromInt(-20000), tris[0][0].X)
}

func TestProject(t *testing.T) {
	p := stlvec.Project(mesh.Point3{X: fix.FromInt(1), Y: fix.FromInt(2), Z: fix.FromInt(8)})
	assert.Equal(t, mesh.Point2{X: fix.FromInt(3), Y: fix.FromInt(3)}, p)

	p = stlvec.Project(mesh.Point3{Z: fix.FromInt(-8)})
	assert.Equal(t, mesh.Point2{X: fix.FromInt(-2), Y: fix.FromInt(-1)}, p)
}

func TestRenderSingleFacet(t *testing.T) {
	r := stlvec.NewRenderer(16)
	var rec record.Recorder
	err := r.Render(facets([9]float64{0, 0, 0, 10, 0, 0, 0, 10, 0}), mesh.Viewport(100, 100), &rec)
	require.NoError(t, err)

	assert.Equal(t, "M 19 19 L 80 19 L 19 80 L 19 19", rec.String())
	for _, c := range rec.Commands {
		assert.True(t, c.X >= 0 && c.X < 100 && c.Y >= 0 && c.Y < 100, "%v", c)
	}

	st := r.Stats()
	assert.Equal(t, 1, st.Facets)
	assert.Equal(t, 1, st.Drawn)
	assert.Equal(t, 0, st.Culled)
	assert.Equal(t, fix.Fix(10*0x9E37), st.Scale)
}

func TestRenderCullsBackFaces(t *testing.T) {
	r := stlvec.NewRenderer(16)
	var rec record.Recorder
	err := r.Render(facets(
		[9]float64{0, 0, 0, 0, 10, 0, 10, 0, 0},
		[9]float64{0, 0, 0, 10, 0, 0, 0, 10, 0},
	), mesh.Viewport(100, 100), &rec)
	require.NoError(t, err)

	assert.Len(t, rec.Commands, 4)
	assert.Equal(t, 1, r.Stats().Culled)
	assert.Equal(t, 1, r.Stats().Drawn)
}

func TestRenderCapacity(t *testing.T) {
	r := stlvec.NewRenderer(2)
	var rec record.Recorder
	err := r.Render(facets(
		[9]float64{0, 0, 0, 10, 0, 0, 0, 10, 0},
		[9]float64{10, 0, 0, 10, 10, 0, 0, 10, 0},
		[9]float64{0, 0, 5, 10, 0, 5, 0, 10, 5},
	), mesh.Viewport(100, 100), &rec)
	assert.ErrorIs(t, err, stl.ErrCapacity)
	assert.Len(t, rec.Commands, 8)
	assert.Equal(t, 1, r.Stats().Dropped)

	// an incomplete facet after the list is full is dropped like the others
	text := append(facets(
		[9]float64{0, 0, 0, 10, 0, 0, 0, 10, 0},
		[9]float64{10, 0, 0, 10, 10, 0, 0, 10, 0},
	), "vertex 1 2 3\n"...)
	rec.Reset()
	err = r.Render(text, mesh.Viewport(100, 100), &rec)
	assert.ErrorIs(t, err, stl.ErrCapacity)
	assert.NotErrorIs(t, err, stl.ErrTruncated)
	assert.Len(t, rec.Commands, 8)
	assert.Equal(t, 1, r.Stats().Dropped)
}

func TestLoadFrom(t *testing.T) {
	r := stlvec.NewRenderer(0)
	require.NoError(t, r.LoadFrom(bytes.NewReader(facets([9]float64{0, 0, 0, 10, 0, 0, 0, 10, 0}))))
	require.NoError(t, r.Setup(mesh.Viewport(100, 100)))
	var rec record.Recorder
	r.Draw(&rec)
	assert.Equal(t, "M 19 19 L 80 19 L 19 80 L 19 19", rec.String())
}

func TestRenderErrors(t *testing.T) {
	r := stlvec.NewRenderer(0)
	assert.Equal(t, stlvec.DefaultCapacity, r.Cap())

	// Setup needs a freshly loaded mesh.
	assert.ErrorIs(t, r.Setup(mesh.Viewport(10, 10)), stlvec.ErrNotReady)
	require.NoError(t, r.Load(facets([9]float64{0, 0, 0, 1, 0, 0, 0, 1, 0})))
	require.NoError(t, r.Setup(mesh.Viewport(10, 10)))
	assert.ErrorIs(t, r.Setup(mesh.Viewport(10, 10)), stlvec.ErrNotReady)

	err := r.Render(facets([9]float64{1, 1, 1, 1, 1, 1, 1, 1, 1}), mesh.Viewport(10, 10), &record.Recorder{})
	assert.ErrorIs(t, err, stlvec.ErrDegenerate)

	err = r.Render([]byte("solid empty\nendsolid empty\n"), mesh.Viewport(10, 10), &record.Recorder{})
	assert.ErrorIs(t, err, mesh.ErrEmpty)

	err = r.Render([]byte("vertex 1 2 3\nvertex 4 5 6\n"), mesh.Viewport(10, 10), &record.Recorder{})
	assert.ErrorIs(t, err, stl.ErrTruncated)
}

func TestCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				r := stlvec.NewRenderer(tc.Capacity)
				var rec record.Recorder
				viewport := mesh.Viewport(tc.Width, tc.Height)
				err := r.Render([]byte(tc.STL), viewport, &rec)

				want := tc.Want
				if want.Err != nil {
					require.ErrorIs(t, err, want.Err)
				} else {
					require.NoError(t, err)
				}
				if want.Err != nil && !errors.Is(want.Err, stl.ErrCapacity) {
					return
				}

				st := r.Stats()
				assert.Equal(t, want.Facets, st.Facets, "facets")
				assert.Equal(t, want.Null, st.Null, "null")
				assert.Equal(t, want.Dropped, st.Dropped, "dropped")
				assert.Equal(t, want.Drawn, st.Drawn, "drawn")
				assert.Equal(t, want.Culled, st.Culled, "culled")

				require.Len(t, rec.Commands, 4*want.Drawn)
				for i, c := range rec.Commands {
					wantOp := record.LineTo
					if i%4 == 0 {
						wantOp = record.MoveTo
					}
					assert.Equal(t, wantOp, c.Op)
					assert.True(t, c.X >= 0 && c.X <= tc.Width && c.Y >= 0 && c.Y <= tc.Height,
						"command %d outside viewport: %v", i, c)
				}
			})
		}
	}
}

// TestSetupMatchesFloat compares the fixed-point transform with the same
// transform computed in floating point.
func TestSetupMatchesFloat(t *testing.T) {
	input := [][9]float64{
		{0, 0, 0, 20, 0, 0, 0, 10, 0},
		{0, 0, 0, 0, 0, 5, 20, 0, 0},
		{0, 0, 0, 0, 10, 0, 0, 0, 5},
		{20, 0, 0, 0, 0, 5, 0, 10, 0},
	}
	r := stlvec.NewRenderer(8)
	require.NoError(t, r.Load(facets(input...)))
	viewport := mesh.Viewport(300, 200)
	require.NoError(t, r.Setup(viewport))

	st := r.Stats()
	c := st.Model.Center()
	vc := viewport.Center()
	s := st.Scale.Float64()
	shear := mgl64.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0.25, 0.125, 1, 0,
		0, 0, 0, 1,
	}
	m := mgl64.Translate3D(vc.X.Float64(), vc.Y.Float64(), 0).
		Mul4(shear).
		Mul4(mgl64.Scale3D(s, s, s)).
		Mul4(mgl64.Translate3D(-c.X.Float64(), -c.Y.Float64(), -c.Z.Float64()))

	proj := r.Projected()
	require.Len(t, proj, len(input))
	for i, in := range input {
		for j := range 3 {
			v := m.Mul4x1(mgl64.Vec4{in[3*j], in[3*j+1], in[3*j+2], 1})
			got := proj[i][j]
			assert.InDelta(t, v.X(), got.X.Float64(), 0.01, "triangle %d vertex %d", i, j)
			assert.InDelta(t, v.Y(), got.Y.Float64(), 0.01, "triangle %d vertex %d", i, j)
			assert.True(t, viewport.Contains(got))
		}
	}
}

func BenchmarkRender(b *testing.B) {
	var tris [][9]float64
	for i := range 64 {
		x := float64(i % 8)
		y := float64(i / 8)
		tris = append(tris,
			[9]float64{x, y, 0, x + 1, y, 0, x, y + 1, 1},
			[9]float64{x + 1, y, 0, x + 1, y + 1, 1, x, y + 1, 1})
	}
	text := facets(tris...)
	r := stlvec.NewRenderer(len(tris))
	var rec record.Recorder
	viewport := mesh.Viewport(500, 800)

	b.ReportAllocs()
	for b.Loop() {
		rec.Reset()
		if err := r.Render(text, viewport, &rec); err != nil {
			b.Fatal(err)
		}
	}
}

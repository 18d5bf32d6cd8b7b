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
	"errors"
	"fmt"

	"seehuhn.de/go/stlvec/fix"
	"seehuhn.de/go/stlvec/mesh"
)

// goldenMargin is 1/φ ≈ 0.618 in Q16.16.  The fitted scale is multiplied
// by this factor, so that the model still fits when it is rotated.
const goldenMargin fix.Fix = 0x9E37

var (
	// ErrDegenerate indicates that all vertices of the model coincide.
	ErrDegenerate = errors.New("stlvec: model has zero extent")

	// ErrViewport indicates a viewport with non-positive width or height.
	ErrViewport = errors.New("stlvec: invalid viewport")

	// ErrScale indicates that the model is too small to be scaled up to
	// the viewport size within the Q16.16 range.
	ErrScale = errors.New("stlvec: scale factor out of range")
)

// Translate moves every vertex of tris by -c, in place.
func Translate(tris []mesh.Triangle3, c mesh.Point3) {
	for i := range tris {
		for j := range tris[i] {
			tris[i][j] = tris[i][j].Sub(c)
		}
	}
}

// Scale multiplies every vertex coordinate of tris by s, in place.
func Scale(tris []mesh.Triangle3, s fix.Fix) {
	for i := range tris {
		for j := range tris[i] {
			tris[i][j] = tris[i][j].Scale(s)
		}
	}
}

// FitScale returns the uniform scale factor which maps a model with the
// given bounding box into a cube centered at the origin, with edge length
// equal to the smaller side of the viewport, and then shrinks the result
// by 1/φ.
//
// Axes along which the model is flat do not constrain the scale.  If the
// model extent along some axis does not fit into a [fix.Fix], the error
// wraps both [ErrScale] and [fix.ErrOverflow].
func FitScale(model mesh.Box3, viewport mesh.Box2) (fix.Fix, error) {
	vs := viewport.Size()
	if vs.X <= 0 || vs.Y <= 0 {
		return 0, ErrViewport
	}
	half := min(vs.X, vs.Y) >> 1
	drawBox := mesh.Box3{
		Min: mesh.Point3{X: -half, Y: -half, Z: -half},
		Max: mesh.Point3{X: half, Y: half, Z: half},
	}
	want := drawBox.Size()
	have := model.Size()

	var ratio fix.Fix
	found, overflow := false, false
	for _, ax := range [][2]fix.Fix{{want.X, have.X}, {want.Y, have.Y}, {want.Z, have.Z}} {
		if ax[1] < 0 {
			// Max-Min wrapped: the model is wider than 32767 units
			return 0, fmt.Errorf("%w: model extent %v: %w", ErrScale, ax[1], fix.ErrOverflow)
		}
		if ax[1] == 0 {
			continue
		}
		r, err := fix.DivChecked(ax[0], ax[1])
		if err != nil {
			overflow = true
			continue
		}
		if !found || r < ratio {
			ratio = r
			found = true
		}
	}
	switch {
	case found:
		return fix.Mul(ratio, goldenMargin), nil
	case overflow:
		return 0, fmt.Errorf("%w: %w", ErrScale, fix.ErrOverflow)
	default:
		return 0, ErrDegenerate
	}
}

// Project maps a model point to the screen using a fixed oblique view:
// the z axis is drawn sheared by (1/4, 1/8).
func Project(p mesh.Point3) mesh.Point2 {
	return mesh.Point2{
		X: p.X + p.Z>>2,
		Y: p.Y + p.Z>>3,
	}
}

// ProjectAll projects the triangles in src and moves them by offset.
// The result is written to dst, which must have the same length as src.
func ProjectAll(dst []mesh.Triangle2, src []mesh.Triangle3, offset mesh.Vec2) {
	for i := range src {
		for j := range src[i] {
			dst[i][j] = Project(src[i][j]).Add(offset)
		}
	}
}

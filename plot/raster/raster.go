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

// Package raster draws plotter output as antialiased lines into an
// in-memory image.
//
// Lines are stroked by converting every segment into a filled outline,
// a rectangle plus optional caps, and computing the exact area coverage
// of the union of these outlines for each pixel.
package raster

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge represents a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser converts line drawings to pixel coverage values.
// The caller creates one instance and reuses it; internal buffers grow
// as needed but never shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates.
	// Must be a non-empty rectangle with integer-aligned coordinates.
	Clip rect.Rect

	// Width is the stroke line width in user-space units.
	Width float64

	// Cap is the shape of the line ends.  Round caps also give round
	// joins, since both ends of every segment are capped.
	Cap graphics.LineCapStyle

	// smallPathThreshold is the largest bounding box area, in pixels,
	// for which 2D buffers are used.  Larger drawings use an active
	// edge list.
	smallPathThreshold int

	cover     []float32
	area      []float32
	edges     []edge
	activeIdx []int
	rowXMin   []int
	rowXMax   []int
	crossings []float64

	edgeBBoxFirst bool
	edgeDevXMin   float64
	edgeDevXMax   float64
	edgeDevYMin   float64
	edgeDevYMax   float64
}

// NewRasteriser creates a new Rasteriser with the given clip rectangle,
// an identity transformation and one unit wide lines with butt caps.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters for the given clip rectangle,
// keeping the allocated buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.smallPathThreshold = smallPathThreshold

	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
	r.crossings = r.crossings[:0]
}

// FillNonZero rasterises the polygons described by p, using the nonzero
// winding rule.  Open subpaths are closed implicitly.  Curve segments are replaced by straight lines to their
// end points.
//
// Coverage is delivered row by row via the emit callback.  The coverage
// slice is only valid for the duration of the callback.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.beginEdges()

	var current, subpath vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != subpath {
				r.addEdge(current, subpath)
			}
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++
		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			coordIdx += coordCount(cmd)
			next := p.Coords[coordIdx-1]
			r.addEdge(current, next)
			current = next
		case path.CmdClose:
			if current != subpath {
				r.addEdge(current, subpath)
			}
			current = subpath
		}
	}
	if current != subpath {
		r.addEdge(current, subpath)
	}

	r.fill(emit)
}

// Stroke rasterises the outlines of all segments in p, using the current
// Width and Cap.  Curve segments are replaced by straight lines to their
// end points.  Coverage is delivered as for [Rasteriser.FillNonZero].
func (r *Rasteriser) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.beginEdges()

	var current, subpath vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++
		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			coordIdx += coordCount(cmd)
			next := p.Coords[coordIdx-1]
			r.addStrokeSegment(current, next)
			current = next
		case path.CmdClose:
			if current != subpath {
				r.addStrokeSegment(current, subpath)
			}
			current = subpath
		}
	}

	r.fill(emit)
}

func coordCount(cmd path.Command) int {
	switch cmd {
	case path.CmdQuadTo:
		return 2
	case path.CmdCubeTo:
		return 3
	default:
		return 1
	}
}

// addStrokeSegment adds the outline of the line from a to b, including
// the caps at both ends.  All outlines have the same orientation, so that
// overlapping outlines add up under the nonzero rule.
func (r *Rasteriser) addStrokeSegment(a, b vec.Vec2) {
	hw := r.Width / 2
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		switch r.Cap {
		case graphics.LineCapRound:
			r.addDisc(a, hw)
		case graphics.LineCapSquare:
			r.addQuad(
				vec.Vec2{X: a.X - hw, Y: a.Y + hw},
				vec.Vec2{X: a.X + hw, Y: a.Y + hw},
				vec.Vec2{X: a.X + hw, Y: a.Y - hw},
				vec.Vec2{X: a.X - hw, Y: a.Y - hw})
		}
		return
	}

	u := d.Mul(1 / l)
	n := vec.Vec2{X: -u.Y * hw, Y: u.X * hw}
	if r.Cap == graphics.LineCapSquare {
		a = a.Sub(u.Mul(hw))
		b = b.Add(u.Mul(hw))
	}
	r.addQuad(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
	if r.Cap == graphics.LineCapRound {
		r.addDisc(a, hw)
		r.addDisc(b, hw)
	}
}

func (r *Rasteriser) addQuad(p0, p1, p2, p3 vec.Vec2) {
	r.addEdge(p0, p1)
	r.addEdge(p1, p2)
	r.addEdge(p2, p3)
	r.addEdge(p3, p0)
}

// addDisc adds a regular polygon with discSegments corners, approximating
// a circle of the given radius.
func (r *Rasteriser) addDisc(c vec.Vec2, radius float64) {
	prev := c.Add(unitCircle[0].Mul(radius))
	for k := 1; k <= discSegments; k++ {
		next := c.Add(unitCircle[k%discSegments].Mul(radius))
		r.addEdge(prev, next)
		prev = next
	}
}

// unitCircle holds the corners used by addDisc, in the same rotational
// direction as the outlines built by addStrokeSegment.
var unitCircle = func() (res [discSegments]vec.Vec2) {
	for k := range res {
		phi := -2 * math.Pi * float64(k) / discSegments
		res[k] = vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}
	}
	return res
}()

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true
}

// addEdge adds an edge from user space coordinates, transforming to
// device space.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	dx0 := r.CTM[0]*p0.X + r.CTM[2]*p0.Y + r.CTM[4]
	dy0 := r.CTM[1]*p0.X + r.CTM[3]*p0.Y + r.CTM[5]
	dx1 := r.CTM[0]*p1.X + r.CTM[2]*p1.Y + r.CTM[4]
	dy1 := r.CTM[1]*p1.X + r.CTM[3]*p1.Y + r.CTM[5]

	dy := dy1 - dy0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: dx0, y0: dy0,
		x1: dx1, y1: dy1,
		dxdy: (dx1 - dx0) / dy,
	})

	if r.edgeBBoxFirst {
		r.edgeDevXMin = min(dx0, dx1)
		r.edgeDevXMax = max(dx0, dx1)
		r.edgeDevYMin = min(dy0, dy1)
		r.edgeDevYMax = max(dy0, dy1)
		r.edgeBBoxFirst = false
	} else {
		r.edgeDevXMin = min(r.edgeDevXMin, dx0, dx1)
		r.edgeDevXMax = max(r.edgeDevXMax, dx0, dx1)
		r.edgeDevYMin = min(r.edgeDevYMin, dy0, dy1)
		r.edgeDevYMax = max(r.edgeDevYMax, dy0, dy1)
	}
}

// fill rasterises the collected edges.
func (r *Rasteriser) fill(emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.edgeDevXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.edgeDevXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.edgeDevYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.edgeDevYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmall(xMin, xMax, yMin, yMax, emit)
	} else {
		r.fillLarge(xMin, xMax, yMin, yMax, emit)
	}
}

const (
	// discSegments is the number of corners of the polygon used for
	// round caps.
	discSegments = 16

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the default for Rasteriser.smallPathThreshold.
	smallPathThreshold = 65536

	// zeroLengthThreshold is the length below which a segment is drawn
	// as a dot.
	zeroLengthThreshold = 1e-10
)

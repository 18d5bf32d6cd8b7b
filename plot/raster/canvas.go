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

package raster

import (
	"image"
	"image/png"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/stlvec"
)

// Canvas is a [stlvec.Plotter] which draws black lines onto a white
// grayscale image.  Lines are collected until the image is requested,
// and then stroked in one pass.
type Canvas struct {
	img *image.Gray
	r   *Rasteriser
	p   path.Data

	started bool
}

var _ stlvec.Plotter = (*Canvas)(nil)

// NewCanvas allocates a width×height image.  Lines are lineWidth pixels
// wide and have round ends.
func NewCanvas(width, height int, lineWidth float64) *Canvas {
	c := &Canvas{
		img: image.NewGray(image.Rect(0, 0, width, height)),
		r:   NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)}),
	}
	// Integer plotter coordinates address pixel centers.
	c.r.CTM = matrix.Matrix{1, 0, 0, 1, 0.5, 0.5}
	c.r.Width = lineWidth
	c.r.Cap = graphics.LineCapRound
	c.Clear()
	return c
}

// Clear paints the image white and discards pending lines.
func (c *Canvas) Clear() {
	for i := range c.img.Pix {
		c.img.Pix[i] = 0xFF
	}
	c.reset()
}

// MoveTo starts a new polyline.
func (c *Canvas) MoveTo(x, y int) {
	c.p.MoveTo(vec.Vec2{X: float64(x), Y: float64(y)})
	c.started = true
}

// LineTo adds a line from the current point.  A LineTo before the first
// MoveTo starts at the origin.
func (c *Canvas) LineTo(x, y int) {
	if !c.started {
		c.p.MoveTo(vec.Vec2{})
		c.started = true
	}
	c.p.LineTo(vec.Vec2{X: float64(x), Y: float64(y)})
}

// Image draws all pending lines and returns the image.  The image is
// owned by c and changes on subsequent drawing.
func (c *Canvas) Image() *image.Gray {
	if len(c.p.Cmds) > 0 {
		c.r.Stroke(&c.p, c.blend)
		c.reset()
	}
	return c.img
}

// WritePNG draws all pending lines and writes the image to w in PNG
// format.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

func (c *Canvas) reset() {
	c.p.Cmds = c.p.Cmds[:0]
	c.p.Coords = c.p.Coords[:0]
	c.started = false
}

// blend darkens the image in proportion to the coverage.
func (c *Canvas) blend(y, xMin int, coverage []float32) {
	row := c.img.Pix[y*c.img.Stride+xMin:]
	for i, a := range coverage {
		row[i] = uint8(float32(row[i])*(1-a) + 0.5)
	}
}

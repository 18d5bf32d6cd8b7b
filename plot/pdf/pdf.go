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

// Package pdf writes plotter output as a single-page PDF file.
//
// The page has the size of the viewport, with one PDF unit per pixel.
// Screen coordinates have the origin at the top left, so the page
// content is flipped vertically.
package pdf

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/stlvec"
)

// Options control the appearance of the page.
type Options struct {
	// LineWidth is the stroke width in pixels.  The default is 1.
	LineWidth float64

	// Border, if set, draws a frame around the viewport.
	Border bool
}

// Writer is a [stlvec.Plotter] which draws onto a PDF page.
// All commands are collected into one path, which is stroked by
// [Writer.Close].
type Writer struct {
	page  *document.Page
	empty bool
}

var _ stlvec.Plotter = (*Writer)(nil)

// Create starts a new PDF file for a width×height viewport.
func Create(fname string, width, height int, opt *Options) (*Writer, error) {
	if opt == nil {
		opt = &Options{}
	}
	w, h := float64(width), float64(height)
	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	lw := opt.LineWidth
	if lw <= 0 {
		lw = 1
	}
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(lw)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	if opt.Border {
		page.Rectangle(0, 0, w, h)
		page.Stroke()
	}

	return &Writer{page: page, empty: true}, nil
}

// MoveTo starts a new subpath.
func (w *Writer) MoveTo(x, y int) {
	w.page.MoveTo(float64(x), float64(y))
	w.empty = false
}

// LineTo adds a line segment to the current subpath.  A LineTo before the
// first MoveTo starts at the origin.
func (w *Writer) LineTo(x, y int) {
	if w.empty {
		w.page.MoveTo(0, 0)
		w.empty = false
	}
	w.page.LineTo(float64(x), float64(y))
}

// Close strokes the collected path and writes the file.
func (w *Writer) Close() error {
	if !w.empty {
		w.page.Stroke()
	}
	return w.page.Close()
}

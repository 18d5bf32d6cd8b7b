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

// Package display draws plotter output onto pixel displays supported by
// the TinyGo drivers, one pixel wide and without antialiasing.
package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"

	"seehuhn.de/go/stlvec"
)

// Screen is a [stlvec.Plotter] which sets pixels on a display.
// Points outside the display are skipped, so lines running off the edge
// are clipped.
type Screen struct {
	// Color is used for lines and text.
	Color color.RGBA

	// Font is used by Caption.  If nil, a 9pt monospaced font is used.
	Font tinyfont.Fonter

	d      drivers.Displayer
	w, h   int
	x0, y0 int
}

var _ stlvec.Plotter = (*Screen)(nil)

// New returns a plotter which draws white lines on d.
func New(d drivers.Displayer) *Screen {
	w, h := d.Size()
	return &Screen{
		Color: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		d:     d,
		w:     int(w),
		h:     int(h),
	}
}

// MoveTo sets the pen position.
func (s *Screen) MoveTo(x, y int) {
	s.x0, s.y0 = x, y
}

// LineTo draws a line from the pen position to (x, y), both end points
// included, and moves the pen.
func (s *Screen) LineTo(x, y int) {
	s.line(s.x0, s.y0, x, y)
	s.x0, s.y0 = x, y
}

// line uses Bresenham's algorithm.
func (s *Screen) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		s.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (s *Screen) set(x, y int) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.d.SetPixel(int16(x), int16(y), s.Color)
}

// Caption writes one line of text with its baseline at y, centered
// horizontally.
func (s *Screen) Caption(y int, text string) {
	font := s.Font
	if font == nil {
		font = &freemono.Regular9pt7b
	}
	_, width := tinyfont.LineWidth(font, text)
	x := (s.w - int(width)) / 2
	tinyfont.WriteLine(s.d, font, int16(x), int16(y), text, s.Color)
}

// Display sends the drawing to the hardware.
func (s *Screen) Display() error {
	return s.d.Display()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

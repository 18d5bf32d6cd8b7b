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

// Package svg writes plotter output as an SVG document.
//
// The document contains a border around the viewport and a single path
// element which receives all drawing commands.  This makes it easy to
// check the layout of a mesh in a web browser before sending it to a
// vector display.
package svg

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/stlvec"
)

// Writer is a [stlvec.Plotter] which produces SVG output.
//
// Write errors are sticky: after the first error, all further output is
// discarded and the error is returned by [Writer.Close].
type Writer struct {
	w   *bufio.Writer
	buf []byte
	err error
}

var _ stlvec.Plotter = (*Writer)(nil)

// Options control the appearance of the document.
type Options struct {
	// LineWidth is the stroke width in pixels.  If zero, the SVG default
	// of 1 is used.
	LineWidth float64

	// NoBorder suppresses the frame around the viewport.
	NoBorder bool
}

// NewWriter writes the SVG header for a width×height viewport to w
// and returns a plotter for the drawing.  The caller must call
// [Writer.Close] to complete the document.
func NewWriter(w io.Writer, width, height int, opt *Options) *Writer {
	if opt == nil {
		opt = &Options{}
	}
	s := &Writer{w: bufio.NewWriter(w)}
	s.printf("<svg width='%d' height='%d' xmlns='http://www.w3.org/2000/svg' version='1.1'>\n",
		width, height)
	if !opt.NoBorder {
		s.printf(" <!-- border -->\n")
		s.printf(" <path fill='none' stroke='black' d='M 0 0 L %d %d L %d %d L %d %d L 0 0'/>\n",
			0, height, width, height, width, 0)
	}
	s.printf("  <path fill='none' stroke='black' fill-opacity='0.45'")
	if opt.LineWidth > 0 {
		s.printf(" stroke-width='%s'", strconv.FormatFloat(opt.LineWidth, 'g', -1, 64))
	}
	s.printf(" d='")
	return s
}

// MoveTo appends a "move to" command to the path.
func (s *Writer) MoveTo(x, y int) {
	s.cmd('M', x, y)
}

// LineTo appends a "line to" command to the path.
func (s *Writer) LineTo(x, y int) {
	s.cmd('L', x, y)
}

func (s *Writer) cmd(op byte, x, y int) {
	if s.err != nil {
		return
	}
	s.buf = append(s.buf[:0], ' ', op, ' ')
	s.buf = strconv.AppendInt(s.buf, int64(x), 10)
	s.buf = append(s.buf, ' ')
	s.buf = strconv.AppendInt(s.buf, int64(y), 10)
	s.buf = append(s.buf, " \n"...)
	_, s.err = s.w.Write(s.buf)
}

// Close terminates the path and the document and flushes the output.
// It does not close the underlying writer.
func (s *Writer) Close() error {
	s.printf("'  />\n</svg>\n")
	if s.err != nil {
		return s.err
	}
	return s.w.Flush()
}

func (s *Writer) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

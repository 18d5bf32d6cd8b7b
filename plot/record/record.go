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

// Package record provides a plotter which stores the commands it receives.
// Recorded drawings can be inspected, converted to a [path.Data] for the
// seehuhn geom and pdf packages, or replayed onto another plotter.
package record

import (
	"strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stlvec"
)

// Op is the kind of a plotter command.
type Op byte

// These are the plotter commands.
const (
	MoveTo Op = 'M'
	LineTo Op = 'L'
)

// Command is one recorded plotter call.
type Command struct {
	Op   Op
	X, Y int
}

// Recorder is a [stlvec.Plotter] which keeps all commands in memory.
// The zero value is ready to use.
type Recorder struct {
	Commands []Command
}

var _ stlvec.Plotter = (*Recorder)(nil)

// MoveTo records a "move to" command.
func (r *Recorder) MoveTo(x, y int) {
	r.Commands = append(r.Commands, Command{Op: MoveTo, X: x, Y: y})
}

// LineTo records a "line to" command.
func (r *Recorder) LineTo(x, y int) {
	r.Commands = append(r.Commands, Command{Op: LineTo, X: x, Y: y})
}

// Reset discards all recorded commands, keeping the allocated memory.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Replay sends all recorded commands to p.
func (r *Recorder) Replay(p stlvec.Plotter) {
	for _, c := range r.Commands {
		switch c.Op {
		case MoveTo:
			p.MoveTo(c.X, c.Y)
		case LineTo:
			p.LineTo(c.X, c.Y)
		}
	}
}

// Path converts the recording into a path.  Every "move to" starts a new
// subpath.  A "line to" before the first "move to" starts at the origin.
func (r *Recorder) Path() *path.Data {
	p := &path.Data{}
	started := false
	for _, c := range r.Commands {
		pt := vec.Vec2{X: float64(c.X), Y: float64(c.Y)}
		switch {
		case c.Op == MoveTo:
			p.MoveTo(pt)
			started = true
		case !started:
			p.MoveTo(vec.Vec2{}).LineTo(pt)
			started = true
		default:
			p.LineTo(pt)
		}
	}
	return p
}

// Bounds returns the smallest rectangle which contains all recorded
// points.  If nothing was recorded, the zero rectangle is returned.
func (r *Recorder) Bounds() rect.Rect {
	if len(r.Commands) == 0 {
		return rect.Rect{}
	}
	c := r.Commands[0]
	b := rect.Rect{LLx: float64(c.X), LLy: float64(c.Y), URx: float64(c.X), URy: float64(c.Y)}
	for _, c := range r.Commands[1:] {
		x, y := float64(c.X), float64(c.Y)
		b.LLx = min(b.LLx, x)
		b.LLy = min(b.LLy, y)
		b.URx = max(b.URx, x)
		b.URy = max(b.URy, y)
	}
	return b
}

// String returns the recording in SVG path syntax, for example
// "M 1 2 L 3 4".
func (r *Recorder) String() string {
	var buf []byte
	for i, c := range r.Commands {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, byte(c.Op), ' ')
		buf = strconv.AppendInt(buf, int64(c.X), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(c.Y), 10)
	}
	return string(buf)
}

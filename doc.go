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

// Package stlvec turns ASCII STL meshes into "move to" and "line to"
// commands for vector displays, using only Q16.16 fixed-point arithmetic.
//
// One render pass consists of four steps, all performed by a [Renderer]:
//
//   - Load scans the STL text into a fixed-capacity triangle list.
//   - Setup computes the bounding box, centers and scales the model to
//     the viewport, and projects it to 2D with a fixed oblique view.
//   - Draw skips back-facing triangles and sends the outline of every
//     remaining triangle to a [Plotter].
//
// [Renderer.Render] performs all steps in order.
package stlvec

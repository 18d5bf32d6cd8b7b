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
	"io"
	"log/slog"

	"seehuhn.de/go/stlvec/fix"
	"seehuhn.de/go/stlvec/mesh"
	"seehuhn.de/go/stlvec/stl"
)

// DefaultCapacity is the number of triangles a [Renderer] holds when no
// other capacity is given.
const DefaultCapacity = 1024

// ErrNotReady is returned by [Renderer.Setup] if no mesh was loaded since
// the last call to Setup.  The transform is applied to the vertices in
// place and must run exactly once per load.
var ErrNotReady = errors.New("stlvec: no freshly loaded mesh")

// Stats describes the most recent render pass.
type Stats struct {
	Facets  int // triangles stored by Load
	Null    int // null facets skipped by Load
	Dropped int // facets which did not fit

	Model mesh.Box3 // bounding box before the transform
	Scale fix.Fix   // scale factor chosen by Setup

	Drawn  int // triangles sent to the plotter
	Culled int // back-facing triangles skipped
}

// Renderer holds the state of the pipeline between its steps.
// All buffers are allocated once, in [NewRenderer], and reused by
// subsequent passes.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	// Logger, if set, receives a debug record for each pipeline step.
	Logger *slog.Logger

	list     *mesh.TriangleList
	proj     []mesh.Triangle2
	viewport mesh.Box2
	loaded   bool
	ready    bool
	stats    Stats
}

// NewRenderer returns a renderer which holds up to capacity triangles.
// If capacity is not positive, [DefaultCapacity] is used.
func NewRenderer(capacity int) *Renderer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Renderer{
		list: mesh.NewTriangleList(capacity),
		proj: make([]mesh.Triangle2, 0, capacity),
	}
}

// Cap returns the triangle capacity of r.
func (r *Renderer) Cap() int {
	return r.list.Cap()
}

// Load replaces the current mesh with the facets in the ASCII STL text.
// An error wrapping [stl.ErrCapacity] means that the mesh was loaded
// only partially; the renderer can still be used in this case.
func (r *Renderer) Load(text []byte) error {
	res, err := stl.Ingest(r.list, text)
	r.stats = Stats{Facets: res.Facets, Null: res.Null, Dropped: res.Dropped}
	r.proj = r.proj[:0]
	r.ready = false
	r.loaded = err == nil || errors.Is(err, stl.ErrCapacity)
	r.logger().Debug("load",
		"facets", res.Facets, "null", res.Null, "dropped", res.Dropped)
	return err
}

// LoadFrom loads a mesh from rd.  See [Renderer.Load].
func (r *Renderer) LoadFrom(rd io.Reader) error {
	text, err := io.ReadAll(rd)
	if err != nil {
		return err
	}
	return r.Load(text)
}

// Triangles returns the stored triangles.  Before Setup these are in
// model coordinates, after Setup they are centered and scaled.
// The slice aliases the internal list.
func (r *Renderer) Triangles() []mesh.Triangle3 {
	return r.list.Triangles()
}

// Projected returns the screen-space triangles computed by Setup.
// The slice is reused by the next call to Setup.
func (r *Renderer) Projected() []mesh.Triangle2 {
	return r.proj
}

// Stats returns information about the most recent pass.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Setup fits the loaded mesh into the viewport and projects it.
//
// The mesh is moved so that the center of its bounding box is at the
// origin, scaled uniformly to fit (see [FitScale]), projected with
// [Project] and finally moved to the center of the viewport.
// The model vertices are modified in place.
func (r *Renderer) Setup(viewport mesh.Box2) error {
	if !r.loaded || r.ready {
		return ErrNotReady
	}
	tris := r.list.Triangles()
	model, err := mesh.Bounds(tris)
	if err != nil {
		return err
	}
	scale, err := FitScale(model, viewport)
	if err != nil {
		return err
	}

	Translate(tris, model.Center())
	Scale(tris, scale)
	r.proj = r.proj[:len(tris)]
	ProjectAll(r.proj, tris, viewport.Center())

	r.viewport = viewport
	r.stats.Model = model
	r.stats.Scale = scale
	r.ready = true
	r.logger().Debug("setup",
		"model", model, "scale", scale, "viewport", viewport)
	return nil
}

// Draw sends the outlines of all front-facing triangles to p, in input
// order.  Draw may be called repeatedly after a successful Setup; if
// Setup has not succeeded, nothing is drawn.
func (r *Renderer) Draw(p Plotter) {
	drawn := 0
	for i := range r.proj {
		t := &r.proj[i]
		if !FrontFacing(t) {
			continue
		}
		Outline(p, t)
		drawn++
	}
	r.stats.Drawn = drawn
	r.stats.Culled = len(r.proj) - drawn
	r.logger().Debug("draw", "drawn", drawn, "culled", r.stats.Culled)
}

// Render runs a complete pass: Load, Setup and Draw.
//
// If the mesh did not fit into the renderer, the truncated mesh is
// still drawn and the error wrapping [stl.ErrCapacity] is returned
// afterwards.
func (r *Renderer) Render(text []byte, viewport mesh.Box2, p Plotter) error {
	loadErr := r.Load(text)
	if loadErr != nil && !errors.Is(loadErr, stl.ErrCapacity) {
		return loadErr
	}
	err := r.Setup(viewport)
	if err != nil {
		return err
	}
	r.Draw(p)
	return loadErr
}

func (r *Renderer) logger() *slog.Logger {
	if r.Logger == nil {
		return discard
	}
	return r.Logger
}

var discard = slog.New(slog.DiscardHandler)

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

// Package mesh defines the fixed-point geometry types used by the STL
// renderer: points, triangles and boxes in model space (3D) and in
// screen space (2D), and a fixed-capacity triangle list.
package mesh

import "seehuhn.de/go/stlvec/fix"

// Point3 is a mesh vertex.
type Point3 struct {
	X, Y, Z fix.Fix
}

// Vec3 is a displacement in model space.
type Vec3 = Point3

// Sub returns p-q.
func (p Point3) Sub(q Point3) Vec3 {
	return Vec3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Add returns p+v.
func (p Point3) Add(v Vec3) Point3 {
	return Point3{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Scale multiplies every coordinate of p by s.
func (p Point3) Scale(s fix.Fix) Point3 {
	return Point3{X: fix.Mul(p.X, s), Y: fix.Mul(p.Y, s), Z: fix.Mul(p.Z, s)}
}

// IsZero reports whether all coordinates of p are zero.
func (p Point3) IsZero() bool {
	return p.X == 0 && p.Y == 0 && p.Z == 0
}

// Triangle3 is one mesh facet.  The vertices are kept in the winding
// order of the input.
type Triangle3 [3]Point3

// IsNull reports whether all nine coordinates are zero.  The null
// triangle marks the end of a [TriangleList] and is never real geometry.
func (t *Triangle3) IsNull() bool {
	return t[0].IsZero() && t[1].IsZero() && t[2].IsZero()
}

// Box3 is an axis-aligned box in model space.
type Box3 struct {
	Min, Max Point3
}

// Size returns the extent of b along each axis.
func (b Box3) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the point half way between Min and Max.
// This is exact even when Size overflows.
func (b Box3) Center() Point3 {
	d := b.Size()
	return Point3{
		X: b.Min.X + fix.Fix(uint32(d.X)>>1),
		Y: b.Min.Y + fix.Fix(uint32(d.Y)>>1),
		Z: b.Min.Z + fix.Fix(uint32(d.Z)>>1),
	}
}

// Contains reports whether p lies inside b, boundary included.
func (b Box3) Contains(p Point3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Extend grows b so that it contains p.
func (b *Box3) Extend(p Point3) {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Min.Z = min(b.Min.Z, p.Z)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	b.Max.Z = max(b.Max.Z, p.Z)
}

// Point2 is a point in screen space.
type Point2 struct {
	X, Y fix.Fix
}

// Vec2 is a displacement in screen space.
type Vec2 = Point2

// Sub returns p-q.
func (p Point2) Sub(q Point2) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p+v.
func (p Point2) Add(v Vec2) Point2 {
	return Point2{X: p.X + v.X, Y: p.Y + v.Y}
}

// Int truncates both coordinates to integers.
func (p Point2) Int() (x, y int) {
	return p.X.Int(), p.Y.Int()
}

// Triangle2 is a projected facet.
type Triangle2 [3]Point2

// Box2 is an axis-aligned rectangle in screen space.
type Box2 struct {
	Min, Max Point2
}

// Viewport returns the box from the origin to (width, height).
func Viewport(width, height int) Box2 {
	return Box2{Max: Point2{X: fix.FromInt(width), Y: fix.FromInt(height)}}
}

// Size returns the width and height of b.
func (b Box2) Size() Vec2 {
	return b.Max.Sub(b.Min)
}

// Center returns the point half way between Min and Max.
func (b Box2) Center() Point2 {
	d := b.Size()
	return Point2{X: b.Min.X + d.X>>1, Y: b.Min.Y + d.Y>>1}
}

// Contains reports whether p lies inside b, boundary included.
func (b Box2) Contains(p Point2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

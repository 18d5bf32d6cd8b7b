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

// Package stl reads and writes the ASCII variant of the STL mesh format.
//
// The reader anchors only on the literal marker "vertex " and ignores all
// other STL syntax (solid names, facet normals, loop keywords), so that it
// can run on small targets which have the mesh compiled in as a string.
package stl

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/stlvec/fix"
	"seehuhn.de/go/stlvec/mesh"
)

var (
	// ErrTruncated indicates that the input ended in the middle of a
	// facet, with fewer than three vertices.
	ErrTruncated = errors.New("stl: facet is incomplete")

	// ErrCapacity indicates that facets were dropped because the
	// triangle list was full.  The list is still valid in this case.
	ErrCapacity = errors.New("stl: triangle capacity exceeded")
)

// SyntaxError describes a malformed vertex coordinate.
type SyntaxError struct {
	Offset int64 // byte offset of the coordinate in the input
	Err    error // the error from the numeral parser
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("stl: bad coordinate at offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Result summarizes one call to [Ingest].
type Result struct {
	// Facets is the number of triangles stored in the list.
	Facets int

	// Null is the number of facets skipped because all coordinates were
	// zero.
	Null int

	// Dropped is the number of facets which did not fit into the list.
	Dropped int
}

var vertexMarker = []byte("vertex ")

// Ingest replaces the contents of l with the facets found in text.
//
// Each facet consists of the three coordinate triples following the next
// three occurrences of "vertex ".  Facets with all nine coordinates equal
// to zero are skipped, since the null triangle terminates the list.  Once
// l is full, the remaining facets are counted but not stored, and Ingest
// returns an error wrapping [ErrCapacity] together with the complete,
// usable list.
//
// If the text ends after the first or second vertex of a facet, Ingest
// stops with [ErrTruncated]; the facets read so far remain in l.  When l
// is already full, the incomplete facet counts as dropped and the error
// wraps [ErrCapacity] instead.
func Ingest(l *mesh.TriangleList, text []byte) (Result, error) {
	l.Reset()

	var res Result
	pos := 0
	for {
		var t mesh.Triangle3
		for i := range t {
			k := bytes.Index(text[pos:], vertexMarker)
			if k < 0 {
				if i > 0 && l.Full() {
					// a facet without room in l is dropped, complete or not
					res.Dropped++
				}
				switch {
				case i > 0 && !l.Full():
					return res, ErrTruncated
				case res.Dropped > 0:
					return res, fmt.Errorf("%w: %d facets dropped", ErrCapacity, res.Dropped)
				default:
					return res, nil
				}
			}
			pos += k + len(vertexMarker)

			if l.Full() {
				continue
			}
			p, n, err := parseTriple(text, pos)
			if err != nil {
				return res, err
			}
			t[i] = p
			pos = n
		}

		switch {
		case l.Full():
			res.Dropped++
		case t.IsNull():
			res.Null++
		default:
			l.Append(t)
			res.Facets++
		}
	}
}

// Read reads all of r and passes the text to [Ingest].
func Read(l *mesh.TriangleList, r io.Reader) (Result, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return Result{}, err
	}
	return Ingest(l, text)
}

// parseTriple parses three coordinates starting at text[pos:] and
// returns the position after the last one.
func parseTriple(text []byte, pos int) (mesh.Point3, int, error) {
	var c [3]fix.Fix
	for i := range c {
		for pos < len(text) && isSpace(text[pos]) {
			pos++
		}
		x, n, err := fix.ParseDecimal(text[pos:])
		if err != nil {
			return mesh.Point3{}, pos, &SyntaxError{Offset: int64(pos), Err: err}
		}
		c[i] = x
		pos += n
	}
	return mesh.Point3{X: c[0], Y: c[1], Z: c[2]}, pos, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

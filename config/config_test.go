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

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/stlvec"
	"seehuhn.de/go/stlvec/fix"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, stlvec.DefaultCapacity, c.Capacity)

	vp := c.Viewport()
	assert.Equal(t, fix.FromInt(500), vp.Max.X)
	assert.Equal(t, fix.FromInt(800), vp.Max.Y)
}

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader("width = 640\nformat = \"png\"\nline_width = 1.5\n"))
	require.NoError(t, err)
	want := Default()
	want.Width = 640
	want.Format = "png"
	want.LineWidth = 1.5
	assert.Equal(t, want, c)
}

func TestDecodeErrors(t *testing.T) {
	cases := []string{
		"width = 0\n",
		"height = -3\n",
		"capacity = 0\n",
		"format = \"gif\"\n",
		"line_width = 0.0\n",
	}
	for _, in := range cases {
		_, err := Decode(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrInvalid, in)
	}

	_, err := Decode(strings.NewReader("colour = \"red\"\n"))
	assert.Error(t, err)
	_, err = Decode(strings.NewReader("width = \"wide\"\n"))
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	c := Default()
	c.Height = 480
	c.Border = false

	buf := &bytes.Buffer{}
	require.NoError(t, c.Encode(buf))
	d, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, c, d)
}

func TestLoad(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "stlvec.toml")
	require.NoError(t, os.WriteFile(fname, []byte("capacity = 16\n"), 0o644))
	c, err := Load(fname)
	require.NoError(t, err)
	assert.Equal(t, 16, c.Capacity)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

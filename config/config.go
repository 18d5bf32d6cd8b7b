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

// Package config reads the settings for the stlvec command line tools
// from TOML files.
//
// A complete file looks like this:
//
//	width = 500
//	height = 800
//	capacity = 1024
//	format = "svg"
//	line_width = 1.0
//	border = true
//
// Missing keys keep their default values.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/stlvec"
	"seehuhn.de/go/stlvec/mesh"
)

// Formats lists the supported output formats.
var Formats = []string{"svg", "pdf", "png"}

// ErrInvalid is wrapped by all errors returned from [Config.Validate].
var ErrInvalid = errors.New("config: invalid setting")

// Config holds the settings for one rendering run.
type Config struct {
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Capacity  int     `toml:"capacity"`
	Format    string  `toml:"format"`
	LineWidth float64 `toml:"line_width"`
	Border    bool    `toml:"border"`
}

// Default returns the default settings.  The viewport matches the layout
// of a typical portrait vector display.
func Default() *Config {
	return &Config{
		Width:     500,
		Height:    800,
		Capacity:  stlvec.DefaultCapacity,
		Format:    "svg",
		LineWidth: 1,
		Border:    true,
	}
}

// Decode reads settings from r, on top of the defaults.
// Unknown keys are an error.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads settings from the named file.
func Load(fname string) (*Config, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return c, nil
}

// Encode writes c to w in TOML format.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks that all settings are in range.
func (c *Config) Validate() error {
	// Viewport coordinates must be representable in Q16.16.
	const maxSize = 1 << 14
	switch {
	case c.Width <= 0 || c.Width > maxSize:
		return fmt.Errorf("%w: width %d", ErrInvalid, c.Width)
	case c.Height <= 0 || c.Height > maxSize:
		return fmt.Errorf("%w: height %d", ErrInvalid, c.Height)
	case c.Capacity <= 0:
		return fmt.Errorf("%w: capacity %d", ErrInvalid, c.Capacity)
	case !slices.Contains(Formats, c.Format):
		return fmt.Errorf("%w: format %q", ErrInvalid, c.Format)
	case c.LineWidth <= 0:
		return fmt.Errorf("%w: line width %g", ErrInvalid, c.LineWidth)
	}
	return nil
}

// Viewport returns the screen box described by c.
func (c *Config) Viewport() mesh.Box2 {
	return mesh.Viewport(c.Width, c.Height)
}

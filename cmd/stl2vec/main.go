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

// Stl2vec renders an ASCII STL file as a wireframe drawing.
//
// Usage:
//
//	stl2vec [flags] input.stl
//
// The output format is SVG, PDF or PNG.  Settings are read from an
// optional TOML file and can be overridden by command line flags.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/stlvec"
	"seehuhn.de/go/stlvec/config"
	"seehuhn.de/go/stlvec/plot/pdf"
	"seehuhn.de/go/stlvec/plot/raster"
	"seehuhn.de/go/stlvec/plot/svg"
	"seehuhn.de/go/stlvec/stl"
)

var (
	configFile string
	outFile    string
	verbose    bool
	showStats  bool

	width, height, capacity int
	format                  string
	lineWidth               float64
	noBorder                bool
)

var rootCmd = &cobra.Command{
	Use:   "stl2vec [flags] input.stl",
	Short: "Render an ASCII STL file as a wireframe drawing",
	Long: "Render an ASCII STL file as a wireframe drawing, using the same\n" +
		"fixed-point pipeline as the vector display firmware.",
	Args:          cobra.ExactArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&configFile, "config", "c", "", "read settings from this TOML file")
	f.StringVarP(&outFile, "output", "o", "", "output file (default: standard output)")
	f.BoolVarP(&verbose, "verbose", "v", false, "log the pipeline steps")
	f.BoolVar(&showStats, "stats", false, "print statistics to standard error")
	f.IntVar(&width, "width", 0, "viewport width in pixels")
	f.IntVar(&height, "height", 0, "viewport height in pixels")
	f.IntVar(&capacity, "capacity", 0, "maximum number of triangles")
	f.StringVarP(&format, "format", "f", "", "output format: svg, pdf or png")
	f.Float64Var(&lineWidth, "line-width", 0, "line width in pixels")
	f.BoolVar(&noBorder, "no-border", false, "omit the frame around the viewport")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "stl2vec:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger.Debug("config", "width", cfg.Width, "height", cfg.Height,
		"capacity", cfg.Capacity, "format", cfg.Format)

	fd, err := os.Open(args[0])
	if err != nil {
		return err
	}
	r := stlvec.NewRenderer(cfg.Capacity)
	r.Logger = logger
	err = r.LoadFrom(fd)
	fd.Close()
	if errors.Is(err, stl.ErrCapacity) {
		logger.Warn("mesh truncated", "file", args[0], "err", err)
	} else if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if err := r.Setup(cfg.Viewport()); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	if err := draw(r, cfg); err != nil {
		return err
	}

	if showStats {
		st := r.Stats()
		fmt.Fprintf(os.Stderr, "facets:  %d (%d null, %d dropped)\n", st.Facets, st.Null, st.Dropped)
		fmt.Fprintf(os.Stderr, "drawn:   %d\n", st.Drawn)
		fmt.Fprintf(os.Stderr, "culled:  %d\n", st.Culled)
		fmt.Fprintf(os.Stderr, "scale:   %s\n", st.Scale)
	}
	return nil
}

// loadConfig combines the defaults, the config file and the flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, err
		}
	}

	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Width = width
	}
	if f.Changed("height") {
		cfg.Height = height
	}
	if f.Changed("capacity") {
		cfg.Capacity = capacity
	}
	if f.Changed("format") {
		cfg.Format = format
	}
	if f.Changed("line-width") {
		cfg.LineWidth = lineWidth
	}
	if noBorder {
		cfg.Border = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// draw sends the prepared drawing to the backend selected by cfg.
func draw(r *stlvec.Renderer, cfg *config.Config) (err error) {
	switch cfg.Format {
	case "pdf":
		if outFile == "" {
			return errors.New("PDF output needs an output file")
		}
		w, err := pdf.Create(outFile, cfg.Width, cfg.Height,
			&pdf.Options{LineWidth: cfg.LineWidth, Border: cfg.Border})
		if err != nil {
			return err
		}
		r.Draw(w)
		return w.Close()
	}

	out := io.Writer(os.Stdout)
	if outFile != "" {
		f, createErr := os.Create(outFile)
		if createErr != nil {
			return createErr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}

	switch cfg.Format {
	case "png":
		c := raster.NewCanvas(cfg.Width, cfg.Height, cfg.LineWidth)
		if cfg.Border {
			drawBorder(c, cfg.Width, cfg.Height)
		}
		r.Draw(c)
		return c.WritePNG(out)
	default:
		w := svg.NewWriter(out, cfg.Width, cfg.Height,
			&svg.Options{LineWidth: cfg.LineWidth, NoBorder: !cfg.Border})
		r.Draw(w)
		return w.Close()
	}
}

func drawBorder(p stlvec.Plotter, w, h int) {
	p.MoveTo(0, 0)
	p.LineTo(0, h-1)
	p.LineTo(w-1, h-1)
	p.LineTo(w-1, 0)
	p.LineTo(0, 0)
}

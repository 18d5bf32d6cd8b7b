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

// Stlview shows the wireframe drawing of an ASCII STL file in a window.
//
// Press R to reload the file, for example after re-exporting it from a
// CAD program, and Escape to quit.
package main

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spf13/cobra"

	"seehuhn.de/go/stlvec"
	"seehuhn.de/go/stlvec/config"
	"seehuhn.de/go/stlvec/plot/record"
	"seehuhn.de/go/stlvec/stl"
)

var (
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "stlview [flags] input.stl",
	Short:         "Show an ASCII STL file as a wireframe drawing",
	Args:          cobra.ExactArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "read settings from this TOML file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log the pipeline steps")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "stlview:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
	}

	v := &viewer{
		fname:  args[0],
		cfg:    cfg,
		r:      stlvec.NewRenderer(cfg.Capacity),
		logger: logger,
	}
	v.r.Logger = logger
	if err := v.load(); err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("stlview: " + args[0])
	err := ebiten.RunGame(v)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// viewer implements ebiten.Game.  The drawing is computed once per load
// and replayed on every frame.
type viewer struct {
	fname  string
	cfg    *config.Config
	r      *stlvec.Renderer
	rec    record.Recorder
	status string
	logger *slog.Logger
}

func (v *viewer) load() error {
	text, err := os.ReadFile(v.fname)
	if err != nil {
		return err
	}
	v.rec.Reset()
	err = v.r.Render(text, v.cfg.Viewport(), &v.rec)
	if err != nil && !errors.Is(err, stl.ErrCapacity) {
		return fmt.Errorf("%s: %w", v.fname, err)
	}
	if err != nil {
		v.logger.Warn("mesh truncated", "file", v.fname, "err", err)
	}

	st := v.r.Stats()
	v.status = fmt.Sprintf("%d facets, %d drawn, %d culled", st.Facets, st.Drawn, st.Culled)
	v.logger.Info("loaded", "file", v.fname, "facets", st.Facets, "drawn", st.Drawn)
	return nil
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := v.load(); err != nil {
			v.logger.Error("reload failed", "err", err)
			v.status = err.Error()
		}
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	p := &screenPlotter{
		dst:   screen,
		width: float32(v.cfg.LineWidth),
		clr:   color.RGBA{R: 0x4a, G: 0xdf, B: 0x6a, A: 0xff},
	}
	v.rec.Replay(p)
	ebitenutil.DebugPrint(screen, v.status)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cfg.Width, v.cfg.Height
}

// screenPlotter draws plotter commands onto an ebiten image.
type screenPlotter struct {
	dst   *ebiten.Image
	x, y  float32
	width float32
	clr   color.Color
}

func (p *screenPlotter) MoveTo(x, y int) {
	p.x, p.y = float32(x)+0.5, float32(y)+0.5
}

func (p *screenPlotter) LineTo(x, y int) {
	x1, y1 := float32(x)+0.5, float32(y)+0.5
	vector.StrokeLine(p.dst, p.x, p.y, x1, y1, p.width, p.clr, true)
	p.x, p.y = x1, y1
}

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

// Mkmesh writes ASCII STL files for testing and demonstration.
//
// Usage:
//
//	mkmesh list
//	mkmesh solid [-n cells] [-o file.stl] name
//	mkmesh testcases [--pdf] dir
//
// The testcases command exports all rendering test cases as STL files,
// optionally together with a PDF rendering of each for visual
// inspection.
package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"seehuhn.de/go/stlvec"
	"seehuhn.de/go/stlvec/mesh"
	"seehuhn.de/go/stlvec/meshgen"
	"seehuhn.de/go/stlvec/plot/pdf"
	"seehuhn.de/go/stlvec/plot/record"
	"seehuhn.de/go/stlvec/stl"
	"seehuhn.de/go/stlvec/testcases"
)

var rootCmd = &cobra.Command{
	Use:           "mkmesh",
	Short:         "Write ASCII STL files for testing",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available solids",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range meshgen.Names() {
			fmt.Println(name)
		}
	},
}

var (
	cells   int
	outFile string
)

var solidCmd = &cobra.Command{
	Use:   "solid name",
	Short: "Tessellate a solid and write it as ASCII STL",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolid,
}

var withPDF bool

var testcasesCmd = &cobra.Command{
	Use:   "testcases dir",
	Short: "Export the rendering test cases as STL files",
	Args:  cobra.ExactArgs(1),
	RunE:  runTestcases,
}

func init() {
	solidCmd.Flags().IntVarP(&cells, "cells", "n", meshgen.DefaultCells, "marching cubes resolution")
	solidCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default: standard output)")
	testcasesCmd.Flags().BoolVar(&withPDF, "pdf", false, "also render each test case to PDF")

	rootCmd.AddCommand(listCmd, solidCmd, testcasesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mkmesh:", err)
		os.Exit(1)
	}
}

func runSolid(cmd *cobra.Command, args []string) (err error) {
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

	n, err := meshgen.WriteSTL(out, args[0], cells)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s: %d facets\n", args[0], n)
	return nil
}

func runTestcases(cmd *cobra.Command, args []string) error {
	dir := args[0]
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			stlPath := filepath.Join(dir, name+".stl")
			if err := os.WriteFile(stlPath, []byte(tc.STL), 0644); err != nil {
				return err
			}
			if !withPDF || tc.Want.Err != nil && !errors.Is(tc.Want.Err, stl.ErrCapacity) {
				continue
			}
			pdfPath := filepath.Join(dir, name+".pdf")
			if err := renderPDF(tc, pdfPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	return nil
}

func renderPDF(tc testcases.TestCase, pdfPath string) error {
	r := stlvec.NewRenderer(tc.Capacity)
	var rec record.Recorder
	err := r.Render([]byte(tc.STL), mesh.Viewport(tc.Width, tc.Height), &rec)
	if err != nil && !errors.Is(err, stl.ErrCapacity) {
		return err
	}

	w, err := pdf.Create(pdfPath, tc.Width, tc.Height, &pdf.Options{Border: true})
	if err != nil {
		return err
	}
	rec.Replay(w)
	return w.Close()
}

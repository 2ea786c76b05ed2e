// seehuhn.de/go/tile - render Bézier profiles into image pyramid tiles
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

// Command genpdf generates reference images for the tile tests.
// It writes each scene as a PDF file and renders it to PNG using
// Ghostscript.  Run from the module root directory.
//
// The PDF output ignores fill alpha, so reference images for scenes with
// translucent shapes only show the outlines correctly.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/tile"
	"seehuhn.de/go/tile/pdfcanvas"
	"seehuhn.de/go/tile/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(sc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath, sc.Width, sc.Height); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(sc testcases.Scene, pdfPath string) error {
	c, err := pdfcanvas.Create(pdfPath, sc.Width, sc.Height)
	if err != nil {
		return err
	}
	err = tile.Draw(c, sc.Shapes, sc.Frame())
	if cerr := c.Close(); err == nil {
		err = cerr
	}
	return err
}

func renderPNG(pdfPath, pngPath string, width, height int) error {
	// -sDEVICE=pngalpha: RGBA output with transparent background
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pngalpha",
		"-r72",
		fmt.Sprintf("-dDEVICEWIDTHPOINTS=%d", width),
		fmt.Sprintf("-dDEVICEHEIGHTPOINTS=%d", height),
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

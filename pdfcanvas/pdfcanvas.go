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

// Package pdfcanvas implements a [tile.Canvas] which writes a tile as a
// single-page vector PDF file.
//
// One device pixel corresponds to one PDF point.  The fill alpha and the
// anti-aliasing setting are ignored; the viewer decides about both.
package pdfcanvas

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/tile"
)

// Canvas draws into a PDF page.
type Canvas struct {
	page *document.Page
	rule tile.FillRule

	inPath     bool
	hasCurrent bool
	err        error
}

// Create starts a new PDF file containing one page of the given size in
// pixels.  The caller must call Close to complete the file.
func Create(fileName string, width, height int) (*Canvas, error) {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	// Tiles have their origin at the top left, PDF at the bottom left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	return &Canvas{page: page, rule: tile.EvenOdd}, nil
}

// Close writes the page and closes the file.
func (c *Canvas) Close() error {
	if c.inPath {
		// a path object must be ended by a painting operator
		c.page.Fill()
	}
	return c.page.Close()
}

// SetFillColor implements the [tile.Canvas] interface.
func (c *Canvas) SetFillColor(col tile.Color) {
	c.page.SetFillColor(fillColor(col))
}

// fillColor converts a tile colour to a PDF colour, dropping alpha.
func fillColor(col tile.Color) color.DeviceRGB {
	return color.DeviceRGB{clamp(col.R), clamp(col.G), clamp(col.B)}
}

func clamp(x float64) float64 {
	return min(max(x, 0), 1)
}

// SetFillRule implements the [tile.Canvas] interface.
func (c *Canvas) SetFillRule(r tile.FillRule) {
	c.rule = r
}

// SetAntialias implements the [tile.Canvas] interface.
func (c *Canvas) SetAntialias(bool) {}

// BeginPath implements the [tile.Canvas] interface.
func (c *Canvas) BeginPath() {
	c.hasCurrent = false
	c.err = nil
}

// MoveTo implements the [tile.Canvas] interface.
func (c *Canvas) MoveTo(p vec.Vec2) {
	c.page.MoveTo(p.X, p.Y)
	c.inPath = true
	c.hasCurrent = true
}

// CurveTo implements the [tile.Canvas] interface.
func (c *Canvas) CurveTo(c1, c2, p vec.Vec2) {
	if !c.hasCurrent {
		c.err = tile.ErrNoCurrentPoint
		return
	}
	c.page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
}

// ClosePath implements the [tile.Canvas] interface.
func (c *Canvas) ClosePath() {
	if c.hasCurrent {
		c.page.ClosePath()
	}
}

// Fill implements the [tile.Canvas] interface.
func (c *Canvas) Fill() error {
	err := c.err
	if !c.inPath {
		c.BeginPath()
		return err
	}

	if c.rule == tile.EvenOdd {
		c.page.FillEvenOdd()
	} else {
		c.page.Fill()
	}
	c.inPath = false
	c.BeginPath()
	return err
}

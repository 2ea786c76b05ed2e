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

// Package tile renders closed, filled cubic Bézier shapes ("profiles")
// into the tiles of a multi-resolution image pyramid.
//
// A tile is addressed by column, row and zoom level.  At level s, one
// tile pixel covers 2^s world units, and the tile at (column, row) has
// its top-left corner at world position (column*width*2^s, row*height*2^s).
// Shapes are filled with the even-odd rule and composited in order, so
// that later shapes are painted over earlier ones.
package tile

import (
	"fmt"
	"image"
	"log/slog"
)

// Default tile parameters.
const (
	DefaultWidth  = 256
	DefaultHeight = 256
)

// Renderer renders tiles of a fixed size.
type Renderer struct {
	Width, Height int

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	// Antialias enables anti-aliasing of shape outlines.
	Antialias bool
}

// NewRenderer returns a Renderer for 256×256 tiles with anti-aliasing
// enabled.
func NewRenderer() *Renderer {
	return &Renderer{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Flatness:  defaultFlatness,
		Antialias: true,
	}
}

// RenderTile renders the tile at the given column, row and zoom level,
// using a [Renderer] for tiles of the given size.
func RenderTile(shapes []*Shape, column, row, level, width, height int) (*image.RGBA, error) {
	r := NewRenderer()
	r.Width = width
	r.Height = height
	return r.Render(shapes, column, row, level)
}

// Render renders the tile at the given column, row and zoom level.
// Shapes are drawn in order.  The background of the tile is transparent.
//
// If any of the shapes is invalid, no tile is rendered and the error
// identifies the first invalid shape.
func (r *Renderer) Render(shapes []*Shape, column, row, level int) (*image.RGBA, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("invalid tile size %dx%d", r.Width, r.Height)
	}
	f := NewFrame(column, row, level, r.Width, r.Height)

	c := NewRaster(r.Width, r.Height)
	c.Aliased = !r.Antialias
	if r.Flatness > 0 {
		c.Rasteriser().Flatness = r.Flatness
	}

	if err := Draw(c, shapes, f); err != nil {
		return nil, err
	}

	Logger().Debug("tile rendered",
		slog.Int("column", column),
		slog.Int("row", row),
		slog.Int("level", level),
		slog.Int("shapes", len(shapes)),
		slog.String("frame", f.String()))
	return c.Image(), nil
}

// Draw draws the shapes on c, in order, using the frame f.
//
// All shapes are checked before drawing starts.  If a shape is invalid,
// c is left unchanged.
func Draw(c Canvas, shapes []*Shape, f Frame) error {
	for i, s := range shapes {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	for i, s := range shapes {
		if err := s.Draw(c, f); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
		Logger().Debug("shape drawn",
			slog.Int("index", i),
			slog.Int("keys", s.NumKeys()),
			slog.Any("color", s.Color))
	}
	return nil
}

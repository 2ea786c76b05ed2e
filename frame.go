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

package tile

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Frame describes the window of world space covered by one tile.
// A world point p maps to the device point Scale*(p - Origin).
type Frame struct {
	OriginX, OriginY float64 // world coordinates of the top-left tile corner
	Width, Height    int     // tile size in pixels
	Scale            float64 // device pixels per world unit
}

// NewFrame returns the frame of the tile at the given column and row of
// the given zoom level.  At level s, one tile pixel covers 2^s world
// units.  Negative levels zoom in.
func NewFrame(column, row, level, width, height int) Frame {
	factor := math.Ldexp(1, level)
	return Frame{
		OriginX: math.Ldexp(float64(column)*float64(width), level),
		OriginY: math.Ldexp(float64(row)*float64(height), level),
		Width:   width,
		Height:  height,
		Scale:   1 / factor,
	}
}

// Apply maps a point from world coordinates to device coordinates.
func (f Frame) Apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.Scale * (p.X - f.OriginX),
		Y: f.Scale * (p.Y - f.OriginY),
	}
}

// Invert maps a point from device coordinates back to world coordinates.
func (f Frame) Invert(d vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: d.X/f.Scale + f.OriginX,
		Y: d.Y/f.Scale + f.OriginY,
	}
}

// Matrix returns the world-to-device map of the frame as a transformation
// matrix.
func (f Frame) Matrix() matrix.Matrix {
	return matrix.Matrix{
		f.Scale, 0,
		0, f.Scale,
		-f.Scale * f.OriginX, -f.Scale * f.OriginY,
	}
}

// String returns a compact description of the frame, for log messages.
func (f Frame) String() string {
	return fmt.Sprintf("%dx%d@(%g,%g)/%g", f.Width, f.Height, f.OriginX, f.OriginY, f.Scale)
}

// FileName returns the conventional file name of a tile in an image
// pyramid, "<row>_<column>_<level>.<ext>".
func FileName(column, row, level int, ext string) string {
	return fmt.Sprintf("%d_%d_%d.%s", row, column, level, ext)
}

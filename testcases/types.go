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

// Package testcases contains named scenes for testing the tile renderer.
package testcases

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/tile"
)

// Scene is one tile rendering test.
type Scene struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Shapes []*tile.Shape // in world coordinates, drawn in order
	Column int
	Row    int
	Level  int
	Width  int // tile width in pixels
	Height int // tile height in pixels
}

// Frame returns the tile frame of the scene.
func (s Scene) Frame() tile.Frame {
	return tile.NewFrame(s.Column, s.Row, s.Level, s.Width, s.Height)
}

// Colours used by the scenes.
var (
	Red         = tile.Color{R: 1, A: 1}
	Green       = tile.Color{G: 1, A: 1}
	Blue        = tile.Color{B: 1, A: 1}
	Black       = tile.Color{A: 1}
	HalfBlue    = tile.Color{B: 1, A: 0.5}
	QuarterGray = tile.Color{R: 0.5, G: 0.5, B: 0.5, A: 0.25}
)

// kappa for cubic Bézier approximation of a quarter circle
const kappa = 0.5522847498307936

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// lineSegment returns a cubic segment which traces the straight line
// from a to b.
func lineSegment(a, b vec.Vec2) tile.Segment {
	d := b.Sub(a)
	return tile.Segment{
		C1:  a.Add(d.Mul(1.0 / 3)),
		C2:  a.Add(d.Mul(2.0 / 3)),
		End: b,
	}
}

// Polygon builds a shape with straight edges through the given corners.
func Polygon(c tile.Color, corners ...vec.Vec2) *tile.Shape {
	segs := make([]tile.Segment, len(corners))
	for i := range corners {
		segs[i] = lineSegment(corners[i], corners[(i+1)%len(corners)])
	}
	return tile.NewShape(c, corners[0], segs...)
}

// Rectangle builds an axis-aligned rectangle.
func Rectangle(c tile.Color, x0, y0, x1, y1 float64) *tile.Shape {
	return Polygon(c, pt(x0, y0), pt(x1, y0), pt(x1, y1), pt(x0, y1))
}

// Circle builds an approximate circle from four cubic Bézier segments.
func Circle(c tile.Color, cx, cy, r float64) *tile.Shape {
	k := r * kappa
	s := &tile.Shape{Color: c}
	for _, p := range []vec.Vec2{
		pt(cx+r, cy),
		pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r),
		pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy),
		pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r),
		pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy),
	} {
		s.AddKey(p)
	}
	return s
}

// Record builds a shape the way a profile stream record does: the key
// points are given without the closing end point.
func Record(c tile.Color, coords ...float64) *tile.Shape {
	s := &tile.Shape{Color: c}
	for i := 0; i+1 < len(coords); i += 2 {
		s.AddKeyXY(coords[i], coords[i+1])
	}
	return s
}

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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/tile"
)

var fillCases = []Scene{
	{
		Name:   "single_segment_record",
		Shapes: []*tile.Shape{Record(Red, 40, 200, 60, 20, 220, 120)},
		Width:  256,
		Height: 256,
	},
	{
		Name:   "rectangle",
		Shapes: []*tile.Shape{Rectangle(Green, 32, 32, 224, 160)},
		Width:  256,
		Height: 256,
	},
	{
		Name:   "circle",
		Shapes: []*tile.Shape{Circle(Blue, 128, 128, 100)},
		Width:  256,
		Height: 256,
	},
	{
		Name:   "star_evenodd",
		Shapes: []*tile.Shape{star(Black, 128, 128, 110)},
		Width:  256,
		Height: 256,
	},
	{
		Name:   "figure_eight",
		Shapes: []*tile.Shape{figureEight(Red, 128, 128, 100, 60)},
		Width:  256,
		Height: 256,
	},
	{
		Name:   "partly_outside",
		Shapes: []*tile.Shape{Circle(Green, 0, 256, 120)},
		Width:  256,
		Height: 256,
	},
}

// star builds a self-intersecting five-pointed star.  With the even-odd
// rule, the central pentagon stays empty.
func star(c tile.Color, cx, cy, r float64) *tile.Shape {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return Polygon(c, pts[0], pts[2], pts[4], pts[1], pts[3])
}

// figureEight builds a loop which crosses itself once, using two cubic
// segments.
func figureEight(c tile.Color, cx, cy, rx, ry float64) *tile.Shape {
	return Record(c,
		cx, cy,
		cx+rx, cy-2*ry, cx+rx, cy+2*ry, cx, cy,
		cx-rx, cy-2*ry, cx-rx, cy+2*ry,
	)
}

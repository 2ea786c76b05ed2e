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

import "seehuhn.de/go/tile"

// The zoom scenes all show the same profile, a circle of radius 300
// centred at world position (640, 384), through different tiles.
var zoomCases = []Scene{
	{
		Name:   "level0_col2_row1",
		Shapes: []*tile.Shape{Circle(Blue, 640, 384, 300)},
		Column: 2,
		Row:    1,
		Level:  0,
		Width:  256,
		Height: 256,
	},
	{
		Name:   "level1_col1_row0",
		Shapes: []*tile.Shape{Circle(Blue, 640, 384, 300)},
		Column: 1,
		Row:    0,
		Level:  1,
		Width:  256,
		Height: 256,
	},
	{
		Name:   "level2_col0_row0",
		Shapes: []*tile.Shape{Circle(Blue, 640, 384, 300)},
		Level:  2,
		Width:  256,
		Height: 256,
	},
	{
		Name:   "level_minus1_col5_row3",
		Shapes: []*tile.Shape{Circle(Blue, 640, 384, 300)},
		Column: 5,
		Row:    3,
		Level:  -1,
		Width:  256,
		Height: 256,
	},
	{
		Name:   "small_tile",
		Shapes: []*tile.Shape{Circle(Red, 40, 24, 20)},
		Column: 1,
		Level:  0,
		Width:  32,
		Height: 48,
	},
}

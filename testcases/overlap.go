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

var overlapCases = []Scene{
	{
		Name: "opaque_over_opaque",
		Shapes: []*tile.Shape{
			Rectangle(Red, 20, 20, 160, 160),
			Rectangle(Green, 96, 96, 236, 236),
		},
		Width:  256,
		Height: 256,
	},
	{
		Name: "translucent_over_opaque",
		Shapes: []*tile.Shape{
			Rectangle(Red, 20, 20, 160, 160),
			Rectangle(HalfBlue, 96, 96, 236, 236),
		},
		Width:  256,
		Height: 256,
	},
	{
		Name: "translucent_stack",
		Shapes: []*tile.Shape{
			Circle(QuarterGray, 100, 128, 80),
			Circle(QuarterGray, 156, 128, 80),
			Circle(HalfBlue, 128, 100, 60),
		},
		Width:  256,
		Height: 256,
	},
}

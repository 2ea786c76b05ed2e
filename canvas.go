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
	"errors"

	"seehuhn.de/go/geom/vec"
)

// ErrNoCurrentPoint is returned by Fill if a path segment was added
// before the first MoveTo.
var ErrNoCurrentPoint = errors.New("path segment without current point")

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// Canvas is a drawing target for filled paths.  All coordinates are in
// device space: x grows to the right and y grows downwards, in pixels.
//
// The fill state (colour, rule, anti-aliasing) persists across paths.
// Fill consumes the current path.
type Canvas interface {
	SetFillColor(c Color)
	SetFillRule(r FillRule)
	SetAntialias(on bool)

	BeginPath()
	MoveTo(p vec.Vec2)
	CurveTo(c1, c2, p vec.Vec2)
	ClosePath()
	Fill() error
}

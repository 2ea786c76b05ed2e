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
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestFrameLevelZero(t *testing.T) {
	f := NewFrame(0, 0, 0, 256, 256)
	for _, p := range []vec.Vec2{{X: 0, Y: 0}, {X: 17.5, Y: -3}, {X: 256, Y: 1000}} {
		if got := f.Apply(p); got != p {
			t.Errorf("Apply(%v) = %v, want identity", p, got)
		}
	}
}

func TestFrameOrigin(t *testing.T) {
	cases := []struct {
		column, row, level int
		width, height      int
		ox, oy, scale      float64
	}{
		{0, 0, 0, 256, 256, 0, 0, 1},
		{1, 0, 0, 256, 256, 256, 0, 1},
		{2, 3, 0, 256, 128, 512, 384, 1},
		{2, 3, 1, 256, 128, 1024, 768, 0.5},
		{2, 3, 2, 256, 128, 2048, 1536, 0.25},
		{2, 3, -1, 256, 128, 256, 192, 2},
		{-1, 0, 0, 256, 256, -256, 0, 1},
	}
	for _, tc := range cases {
		f := NewFrame(tc.column, tc.row, tc.level, tc.width, tc.height)
		if f.OriginX != tc.ox || f.OriginY != tc.oy || f.Scale != tc.scale {
			t.Errorf("NewFrame(%d, %d, %d): got %s, want origin (%g, %g), scale %g",
				tc.column, tc.row, tc.level, f, tc.ox, tc.oy, tc.scale)
		}
	}
}

// TestFrameZoom checks that one level up doubles the origin and halves
// the scale.
func TestFrameZoom(t *testing.T) {
	for level := -3; level < 5; level++ {
		f0 := NewFrame(3, 5, level, 256, 256)
		f1 := NewFrame(3, 5, level+1, 256, 256)
		if f1.OriginX != 2*f0.OriginX || f1.OriginY != 2*f0.OriginY {
			t.Errorf("level %d: origin %g,%g -> %g,%g", level,
				f0.OriginX, f0.OriginY, f1.OriginX, f1.OriginY)
		}
		if f1.Scale != f0.Scale/2 {
			t.Errorf("level %d: scale %g -> %g", level, f0.Scale, f1.Scale)
		}
	}
}

func TestFrameInvert(t *testing.T) {
	frames := []Frame{
		NewFrame(0, 0, 0, 256, 256),
		NewFrame(7, 2, 3, 256, 256),
		NewFrame(1, 9, -2, 100, 50),
	}
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 123.25, Y: -7}, {X: 1e4, Y: 3e3}}
	for _, f := range frames {
		for _, p := range pts {
			q := f.Invert(f.Apply(p))
			if math.Abs(q.X-p.X) > 1e-9 || math.Abs(q.Y-p.Y) > 1e-9 {
				t.Errorf("%s: Invert(Apply(%v)) = %v", f, p, q)
			}
		}
	}
}

func TestFrameMatrix(t *testing.T) {
	f := NewFrame(4, 1, 2, 256, 256)
	m := f.Matrix()
	for _, p := range []vec.Vec2{{X: 0, Y: 0}, {X: 4096, Y: 1024}, {X: 5000, Y: 1500}} {
		want := f.Apply(p)
		got := vec.Vec2{
			X: m[0]*p.X + m[2]*p.Y + m[4],
			Y: m[1]*p.X + m[3]*p.Y + m[5],
		}
		if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
			t.Errorf("matrix maps %v to %v, want %v", p, got, want)
		}
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(3, 7, 2, "png"); got != "7_3_2.png" {
		t.Errorf("got %q, want %q", got, "7_3_2.png")
	}
	if got := FileName(0, 0, -1, "pdf"); got != "0_0_-1.pdf" {
		t.Errorf("got %q, want %q", got, "0_0_-1.pdf")
	}
}

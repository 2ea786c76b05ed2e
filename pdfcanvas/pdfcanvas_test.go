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
package pdfcanvas

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/tile"
)

func TestWriteTile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "tile.pdf")
	c, err := Create(name, 256, 256)
	if err != nil {
		t.Fatal(err)
	}

	s := &tile.Shape{Color: tile.Color{R: 1, A: 0.5}}
	for _, p := range []vec.Vec2{{X: 40, Y: 200}, {X: 60, Y: 20}, {X: 220, Y: 120}} {
		s.AddKey(p)
	}
	if err := tile.Draw(c, []*tile.Shape{s}, tile.NewFrame(0, 0, 0, 256, 256)); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output is not a PDF file")
	}
}

func TestNoCurrentPoint(t *testing.T) {
	name := filepath.Join(t.TempDir(), "tile.pdf")
	c, err := Create(name, 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	c.BeginPath()
	c.CurveTo(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 3, Y: 3})
	if err := c.Fill(); !errors.Is(err, tile.ErrNoCurrentPoint) {
		t.Errorf("got %v, want %v", err, tile.ErrNoCurrentPoint)
	}
}

func TestFillColor(t *testing.T) {
	cases := []struct {
		in   tile.Color
		want color.DeviceRGB
	}{
		{tile.Color{R: 1, A: 1}, color.DeviceRGB{1, 0, 0}},
		{tile.Color{R: 0.25, G: 0.5, B: 0.75, A: 0.5}, color.DeviceRGB{0.25, 0.5, 0.75}},
		{tile.Color{R: 2, G: -1, B: 0.5}, color.DeviceRGB{1, 0, 0.5}},
	}
	for _, tc := range cases {
		if got := fillColor(tc.in); got != tc.want {
			t.Errorf("fillColor(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

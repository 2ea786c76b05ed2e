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

// Command export writes the test scenes to JSON, for use by external
// reference renderers.  Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"
	"strconv"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/tile"
	"seehuhn.de/go/tile/testcases"
)

func main() {
	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			out.Scenes = append(out.Scenes, toJSON(category, sc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/scenes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScene struct {
	Name   string      `json:"name"`
	Column int         `json:"column"`
	Row    int         `json:"row"`
	Level  int         `json:"level"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Shapes []jsonShape `json:"shapes"`
}

type jsonShape struct {
	Color [4]float64  `json:"rgba"`
	Keys  [][]float64 `json:"keys"`

	// Path is the closed outline in world coordinates, as SVG path data.
	Path string `json:"path"`
}

func toJSON(category string, sc testcases.Scene) jsonScene {
	js := jsonScene{
		Name:   category + "_" + sc.Name,
		Column: sc.Column,
		Row:    sc.Row,
		Level:  sc.Level,
		Width:  sc.Width,
		Height: sc.Height,
	}
	for _, s := range sc.Shapes {
		js.Shapes = append(js.Shapes, shapeToJSON(s))
	}
	return js
}

func shapeToJSON(s *tile.Shape) jsonShape {
	c := s.Color
	jsh := jsonShape{
		Color: [4]float64{c.R, c.G, c.B, c.A},
	}
	for _, k := range s.Keys() {
		jsh.Keys = append(jsh.Keys, []float64{k.X, k.Y})
	}
	if segs, err := s.Closed(); err == nil {
		jsh.Path = svgPath(s.Start(), segs)
	}
	return jsh
}

func svgPath(start vec.Vec2, segs []tile.Segment) string {
	var buf []byte
	appendPt := func(x, y float64) {
		buf = append(buf, ' ')
		buf = appendNum(buf, x)
		buf = append(buf, ',')
		buf = appendNum(buf, y)
	}

	buf = append(buf, 'M')
	appendPt(start.X, start.Y)
	for _, seg := range segs {
		buf = append(buf, " C"...)
		appendPt(seg.C1.X, seg.C1.Y)
		appendPt(seg.C2.X, seg.C2.Y)
		appendPt(seg.End.X, seg.End.Y)
	}
	buf = append(buf, " Z"...)
	return string(buf)
}

func appendNum(buf []byte, x float64) []byte {
	return strconv.AppendFloat(buf, x, 'g', -1, 64)
}

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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// call is one recorded Canvas operation.
type call struct {
	op  string
	pts []vec.Vec2
}

// recorder is a Canvas which records all operations.
type recorder struct {
	calls []call
	color Color
	rule  FillRule
}

func (r *recorder) SetFillColor(c Color)      { r.color = c; r.add("color") }
func (r *recorder) SetFillRule(rule FillRule) { r.rule = rule; r.add("rule") }
func (r *recorder) SetAntialias(bool)         { r.add("aa") }
func (r *recorder) BeginPath()                { r.add("begin") }
func (r *recorder) MoveTo(p vec.Vec2)         { r.add("M", p) }
func (r *recorder) CurveTo(c1, c2, p vec.Vec2) {
	r.add("C", c1, c2, p)
}
func (r *recorder) ClosePath()  { r.add("Z") }
func (r *recorder) Fill() error { r.add("fill"); return nil }

func (r *recorder) add(op string, pts ...vec.Vec2) {
	r.calls = append(r.calls, call{op: op, pts: pts})
}

// curves returns the arguments of all CurveTo calls.
func (r *recorder) curves() [][]vec.Vec2 {
	var res [][]vec.Vec2
	for _, c := range r.calls {
		if c.op == "C" {
			res = append(res, c.pts)
		}
	}
	return res
}

func shapeWithKeys(n int) *Shape {
	s := &Shape{Color: Color{R: 1, A: 1}}
	for i := range n {
		s.AddKeyXY(float64(10*i), float64(i*i))
	}
	return s
}

func TestShapeClosingOverride(t *testing.T) {
	s := &Shape{Color: Color{R: 1, A: 1}}
	s.AddKeyXY(0, 0)
	s.AddKeyXY(1, 0)
	s.AddKeyXY(1, 1)
	s.AddKeyXY(5, 5) // replaced by the start point

	rec := &recorder{}
	if err := s.Draw(rec, NewFrame(0, 0, 0, 256, 256)); err != nil {
		t.Fatal(err)
	}

	curves := rec.curves()
	if len(curves) != 1 {
		t.Fatalf("got %d curves, want 1", len(curves))
	}
	want := []vec.Vec2{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}
	for i, p := range curves[0] {
		if p != want[i] {
			t.Errorf("curve point %d: got %v, want %v", i, p, want[i])
		}
	}
	if rec.rule != EvenOdd {
		t.Errorf("fill rule %v, want %v", rec.rule, EvenOdd)
	}
	if rec.color != s.Color {
		t.Errorf("fill colour %v, want %v", rec.color, s.Color)
	}
}

func TestShapeCallOrder(t *testing.T) {
	s := shapeWithKeys(7)
	rec := &recorder{}
	if err := s.Draw(rec, NewFrame(0, 0, 0, 256, 256)); err != nil {
		t.Fatal(err)
	}

	want := []string{"color", "rule", "aa", "begin", "M", "C", "C", "Z", "fill"}
	if len(rec.calls) != len(want) {
		t.Fatalf("got %d calls, want %d", len(rec.calls), len(want))
	}
	for i, c := range rec.calls {
		if c.op != want[i] {
			t.Errorf("call %d: got %s, want %s", i, c.op, want[i])
		}
	}
}

func TestShapeSegmentCount(t *testing.T) {
	cases := []struct {
		keys     int
		segments int
	}{
		{3, 1},
		{4, 1},
		{6, 2},
		{7, 2},
		{9, 3},
		{10, 3},
	}
	for _, tc := range cases {
		s := shapeWithKeys(tc.keys)
		rec := &recorder{}
		if err := s.Draw(rec, NewFrame(0, 0, 0, 256, 256)); err != nil {
			t.Errorf("%d keys: %v", tc.keys, err)
			continue
		}
		curves := rec.curves()
		if len(curves) != tc.segments {
			t.Errorf("%d keys: got %d segments, want %d", tc.keys, len(curves), tc.segments)
			continue
		}
		if end := curves[len(curves)-1][2]; end != s.Start() {
			t.Errorf("%d keys: last segment ends at %v, want %v", tc.keys, end, s.Start())
		}
	}
}

func TestShapeInvalid(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 8} {
		s := shapeWithKeys(n)
		if err := s.Validate(); !errors.Is(err, ErrInvalidShape) {
			t.Errorf("%d keys: Validate returned %v", n, err)
		}

		rec := &recorder{}
		err := s.Draw(rec, NewFrame(0, 0, 0, 256, 256))
		if !errors.Is(err, ErrInvalidShape) {
			t.Errorf("%d keys: Draw returned %v", n, err)
		}
		if len(rec.calls) != 0 {
			t.Errorf("%d keys: %d canvas calls for an invalid shape", n, len(rec.calls))
		}
	}
}

func TestShapeKeys(t *testing.T) {
	for _, n := range []int{0, 1, 3, 5, 7} {
		s := shapeWithKeys(n)
		if got := s.NumKeys(); got != n {
			t.Errorf("NumKeys: got %d, want %d", got, n)
		}
		keys := s.Keys()
		if len(keys) != n {
			t.Fatalf("Keys: got %d keys, want %d", len(keys), n)
		}
		for i, k := range keys {
			want := vec.Vec2{X: float64(10 * i), Y: float64(i * i)}
			if k != want {
				t.Errorf("key %d: got %v, want %v", i, k, want)
			}
		}
	}
}

func TestShapeFrameApplied(t *testing.T) {
	s := &Shape{Color: Color{B: 1, A: 1}}
	s.AddKeyXY(512, 256)
	s.AddKeyXY(520, 256)
	s.AddKeyXY(520, 264)

	rec := &recorder{}
	f := NewFrame(1, 1, 1, 256, 128) // origin (512, 256), scale 1/2
	if err := s.Draw(rec, f); err != nil {
		t.Fatal(err)
	}
	if m := rec.calls[4]; m.op != "M" || m.pts[0] != (vec.Vec2{}) {
		t.Errorf("got %s %v, want M (0, 0)", m.op, m.pts)
	}
	c := rec.curves()[0]
	if c[0] != (vec.Vec2{X: 4, Y: 0}) || c[1] != (vec.Vec2{X: 4, Y: 4}) {
		t.Errorf("wrong control points %v", c[:2])
	}
}

func TestShapePath(t *testing.T) {
	s := shapeWithKeys(4)
	p, err := s.Path()
	if err != nil {
		t.Fatal(err)
	}
	want := []path.Command{path.CmdMoveTo, path.CmdCubeTo, path.CmdClose}
	if len(p.Cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(p.Cmds), len(want))
	}
	for i, cmd := range p.Cmds {
		if cmd != want[i] {
			t.Errorf("command %d: got %v, want %v", i, cmd, want[i])
		}
	}
	if last := p.Coords[len(p.Coords)-1]; last != s.Start() {
		t.Errorf("path ends at %v, want %v", last, s.Start())
	}
}

func TestDrawValidatesFirst(t *testing.T) {
	shapes := []*Shape{shapeWithKeys(4), shapeWithKeys(7), shapeWithKeys(2)}
	rec := &recorder{}
	err := Draw(rec, shapes, NewFrame(0, 0, 0, 256, 256))
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("got %v, want %v", err, ErrInvalidShape)
	}
	if len(rec.calls) != 0 {
		t.Errorf("canvas received %d calls before the error", len(rec.calls))
	}

	rec = &recorder{}
	if err := Draw(rec, shapes[:2], NewFrame(0, 0, 0, 256, 256)); err != nil {
		t.Fatal(err)
	}
	fills := 0
	for _, c := range rec.calls {
		if c.op == "fill" {
			fills++
		}
	}
	if fills != 2 {
		t.Errorf("got %d fills, want 2", fills)
	}
}

func TestShapeLiteral(t *testing.T) {
	s := &Shape{Color: Color{G: 1, A: 1}}
	if n := s.NumKeys(); n != 0 {
		t.Errorf("literal shape has %d keys, want 0", n)
	}
	if err := s.Validate(); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("got %v, want %v", err, ErrInvalidShape)
	}

	// keys added to a literal shape behave as for any other shape
	s.AddKeyXY(0, 0)
	s.AddKeyXY(4, 0)
	s.AddKeyXY(4, 4)
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	if s.Start() != (vec.Vec2{}) {
		t.Errorf("start %v, want (0, 0)", s.Start())
	}
}

func TestNewShape(t *testing.T) {
	start := vec.Vec2{X: 1, Y: 2}
	segs := []Segment{
		{C1: vec.Vec2{X: 3, Y: 2}, C2: vec.Vec2{X: 4, Y: 5}, End: vec.Vec2{X: 6, Y: 7}},
		{C1: vec.Vec2{X: 5, Y: 9}, C2: vec.Vec2{X: 2, Y: 8}, End: vec.Vec2{X: 9, Y: 9}},
	}
	s := NewShape(Color{R: 1, A: 1}, start, segs...)

	ref := &Shape{Color: Color{R: 1, A: 1}}
	ref.AddKey(start)
	for _, seg := range segs {
		ref.AddKey(seg.C1)
		ref.AddKey(seg.C2)
		ref.AddKey(seg.End)
	}

	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	if s.NumKeys() != 7 || ref.NumKeys() != 7 {
		t.Fatalf("got %d and %d keys, want 7", s.NumKeys(), ref.NumKeys())
	}
	a, b := s.Keys(), ref.Keys()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("key %d: got %v, want %v", i, a[i], b[i])
		}
	}

	// a key added later extends the curve instead of replacing the start
	s.AddKeyXY(0, 0)
	if s.Start() != start || s.NumKeys() != 8 {
		t.Errorf("after AddKey: start %v, %d keys", s.Start(), s.NumKeys())
	}

	// Segments returns a copy
	got := s.Segments()
	got[0].End = vec.Vec2{X: -1, Y: -1}
	if s.Segments()[0] != segs[0] {
		t.Error("Segments exposes internal storage")
	}
}

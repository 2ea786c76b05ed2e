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
	"fmt"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrInvalidShape is returned when a shape does not describe a closed
// curve that can be drawn.
var ErrInvalidShape = errors.New("invalid shape")

// Color is a fill colour. The components are conventionally in [0, 1],
// but are not validated.
type Color struct {
	R, G, B, A float64
}

// Segment is one cubic Bézier segment. The start point of a segment is
// the end point of the previous segment, or the shape's start point for
// the first segment.
type Segment struct {
	C1, C2 vec.Vec2 // control points
	End    vec.Vec2
}

// Shape is a closed curve made of cubic Bézier segments, filled with a
// single colour.
//
// Shapes are built key by key with [Shape.AddKey], or from a start point
// and whole segments with [NewShape]. The first key is the start point of
// the curve and every following group of three keys forms one segment.  When the curve is drawn, the last segment always ends at
// the start point, whatever end point was stored for it.  If the keys end
// with two unpaired control points, these form an extra closing segment
// back to the start point.
//
// The zero Shape, or a literal which only sets Color, has no keys.
type Shape struct {
	Color Color

	start    vec.Vec2
	segments []Segment
	hasStart bool
	pending  []vec.Vec2 // at most two keys not yet forming a segment
}

// NewShape returns a shape with the given start point and segments.  The
// result is the same as adding the start point and the key points of all
// segments, in order, with [Shape.AddKey].
func NewShape(c Color, start vec.Vec2, segs ...Segment) *Shape {
	s := &Shape{Color: c}
	s.AddKey(start)
	s.segments = append(s.segments, segs...)
	return s
}

// AddKey appends a key point to the shape.
func (s *Shape) AddKey(p vec.Vec2) {
	if !s.hasStart {
		s.start = p
		s.hasStart = true
		return
	}
	s.pending = append(s.pending, p)
	if len(s.pending) == 3 {
		s.segments = append(s.segments, Segment{
			C1:  s.pending[0],
			C2:  s.pending[1],
			End: s.pending[2],
		})
		s.pending = s.pending[:0]
	}
}

// Start returns the first key of the shape.  The curve starts and ends
// there.
func (s *Shape) Start() vec.Vec2 {
	return s.start
}

// Segments returns the complete segments of the shape, with their end
// points as stored.  Use [Shape.Closed] for the segments as drawn.
func (s *Shape) Segments() []Segment {
	return slices.Clone(s.segments)
}

// AddKeyXY appends the key point (x, y) to the shape.
func (s *Shape) AddKeyXY(x, y float64) {
	s.AddKey(vec.Vec2{X: x, Y: y})
}

// NumKeys returns the number of keys added to the shape.
func (s *Shape) NumKeys() int {
	if !s.hasStart {
		return 0
	}
	return 1 + 3*len(s.segments) + len(s.pending)
}

// Keys returns the key points of the shape, in the order they were added.
func (s *Shape) Keys() []vec.Vec2 {
	if !s.hasStart {
		return nil
	}
	keys := make([]vec.Vec2, 0, s.NumKeys())
	keys = append(keys, s.start)
	for _, seg := range s.segments {
		keys = append(keys, seg.C1, seg.C2, seg.End)
	}
	return append(keys, s.pending...)
}

// Validate checks whether the shape can be drawn.
//
// A shape needs at least three keys: the start point and two control
// points of a segment back to the start.  After the start point, keys are
// consumed in groups of three; a group of two forms a final closing
// segment, while a single leftover key (for example with 5 or 8 keys)
// cannot form a segment and the shape is rejected.
func (s *Shape) Validate() error {
	n := s.NumKeys()
	if n < 3 || len(s.pending) == 1 {
		return fmt.Errorf("%w: %d keys", ErrInvalidShape, n)
	}
	return nil
}

// Closed returns the segments of the shape as they are drawn.  The end
// point of the last segment is replaced by the start point.
func (s *Shape) Closed() ([]Segment, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	segs := make([]Segment, len(s.segments), len(s.segments)+1)
	copy(segs, s.segments)
	if len(s.pending) == 2 {
		segs = append(segs, Segment{C1: s.pending[0], C2: s.pending[1]})
	}
	segs[len(segs)-1].End = s.start
	return segs, nil
}

// Path returns the closed outline of the shape in world coordinates.
func (s *Shape) Path() (*path.Data, error) {
	segs, err := s.Closed()
	if err != nil {
		return nil, err
	}
	p := (&path.Data{}).MoveTo(s.start)
	for _, seg := range segs {
		p = p.CubeTo(seg.C1, seg.C2, seg.End)
	}
	return p.Close(), nil
}

// Draw fills the shape on c, using the even-odd rule.  Points are mapped
// from world coordinates to device coordinates using f.
//
// If the shape is invalid, an error wrapping [ErrInvalidShape] is returned
// and c is not touched.
func (s *Shape) Draw(c Canvas, f Frame) error {
	segs, err := s.Closed()
	if err != nil {
		return err
	}

	c.SetFillColor(s.Color)
	c.SetFillRule(EvenOdd)
	c.SetAntialias(true)

	start := f.Apply(s.start)
	c.BeginPath()
	c.MoveTo(start)
	last := len(segs) - 1
	for i, seg := range segs {
		end := start
		if i < last {
			end = f.Apply(seg.End)
		}
		c.CurveTo(f.Apply(seg.C1), f.Apply(seg.C2), end)
	}
	c.ClosePath()
	return c.Fill()
}

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

// Package profile reads and writes streams of Bézier profiles.
//
// A stream is a sequence of whitespace-separated decimal numbers.  Each
// profile is stored as one record
//
//	r g b a n x1 y1 x2 y2 ... x3n y3n
//
// where r, g, b, a is the fill colour, n is the number of curve segments,
// and the 3n points are the key points of the profile.  The first point
// is the start of the closed curve; the curve returns there at the end.
package profile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"seehuhn.de/go/tile"
)

// ErrParse matches all errors returned for malformed input.
var ErrParse = errors.New("malformed profile stream")

// ParseError describes a malformed profile record.
type ParseError struct {
	Record int    // 1-based record number
	Field  string // name of the offending field
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("profile %d, field %s: %v", e.Record, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrParse].
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// maxSegments is the largest segment count for which the number of key
// points, 3n, is representable.
const maxSegments = math.MaxInt / 3

// Reader reads profiles from a stream.
type Reader struct {
	s      *bufio.Scanner
	record int
}

// NewReader returns a Reader which reads from r.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &Reader{s: s}
}

// Read reads the next profile.  At the end of the stream, Read returns
// io.EOF.  A stream which ends in the middle of a record gives a
// [*ParseError] wrapping io.ErrUnexpectedEOF.
func (r *Reader) Read() (*tile.Shape, error) {
	r.record++

	var comp [4]float64
	for i, name := range []string{"r", "g", "b", "a"} {
		x, err := r.float()
		if i == 0 && err == io.EOF {
			r.record--
			return nil, io.EOF
		}
		if err != nil {
			return nil, r.wrap(name, err)
		}
		comp[i] = x
	}

	word, err := r.word()
	if err != nil {
		return nil, r.wrap("n", err)
	}
	n, err := strconv.Atoi(word)
	if err != nil {
		return nil, r.wrap("n", err)
	}
	if n < 0 {
		return nil, r.wrap("n", fmt.Errorf("negative segment count %d", n))
	} else if n > maxSegments {
		return nil, r.wrap("n", fmt.Errorf("segment count %d too large", n))
	}

	shape := &tile.Shape{
		Color: tile.Color{R: comp[0], G: comp[1], B: comp[2], A: comp[3]},
	}
	for i := range 3 * n {
		x, err := r.float()
		if err != nil {
			return nil, r.wrap(fmt.Sprintf("x%d", i+1), err)
		}
		y, err := r.float()
		if err != nil {
			return nil, r.wrap(fmt.Sprintf("y%d", i+1), err)
		}
		shape.AddKeyXY(x, y)
	}
	return shape, nil
}

// ReadAll reads profiles until the end of the stream.  If any record is
// malformed, no profiles are returned.
func (r *Reader) ReadAll() ([]*tile.Shape, error) {
	var shapes []*tile.Shape
	for {
		s, err := r.Read()
		if err == io.EOF {
			return shapes, nil
		} else if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}
}

// word returns the next word of the stream, or io.EOF.
func (r *Reader) word() (string, error) {
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.s.Text(), nil
}

func (r *Reader) float() (float64, error) {
	word, err := r.word()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(word, 64)
}

func (r *Reader) wrap(field string, err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return &ParseError{Record: r.record, Field: field, Err: err}
}

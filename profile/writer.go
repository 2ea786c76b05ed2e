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

package profile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/tile"
)

// Writer writes profiles to a stream, one record per line.
type Writer struct {
	w   *bufio.Writer
	buf []byte
}

// NewWriter returns a Writer which writes to w.
// Call Flush after the last profile.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write writes one profile.  The number of keys of s must be a positive
// multiple of three.
func (w *Writer) Write(s *tile.Shape) error {
	keys := s.Keys()
	if len(keys) == 0 || len(keys)%3 != 0 {
		return fmt.Errorf("%w: %d keys cannot be stored", tile.ErrInvalidShape, len(keys))
	}

	b := w.buf[:0]
	for _, x := range []float64{s.Color.R, s.Color.G, s.Color.B, s.Color.A} {
		b = strconv.AppendFloat(b, x, 'g', -1, 64)
		b = append(b, ' ')
	}
	b = strconv.AppendInt(b, int64(len(keys)/3), 10)
	for _, k := range keys {
		b = append(b, ' ')
		b = strconv.AppendFloat(b, k.X, 'g', -1, 64)
		b = append(b, ' ')
		b = strconv.AppendFloat(b, k.Y, 'g', -1, 64)
	}
	b = append(b, '\n')
	w.buf = b

	_, err := w.w.Write(b)
	return err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

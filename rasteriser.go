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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a line segment in device coordinates, oriented top to bottom.
type edge struct {
	x0, y0 float64 // upper end point
	x1, y1 float64 // lower end point
	dxdy   float64
	dir    float32 // +1 if the path runs downwards along the edge, -1 otherwise
}

// Rasteriser converts paths to pixel coverage values, the fraction of
// each pixel's area which lies inside the filled path.  Coverage is
// computed exactly for the flattened path, which gives anti-aliased
// output.
//
// Create one instance and reuse it for several paths; internal buffers
// grow as needed but never shrink.  A Rasteriser is not safe for
// concurrent use.
type Rasteriser struct {
	// CTM maps path coordinates to device coordinates.
	// Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts the output to this device rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments which replace it.  Must be positive.
	Flatness float64

	edges  []edge
	active []int     // indices of edges crossing the current scanline
	cover  []float32 // per pixel: signed height of edges, carried to the right
	area   []float32 // per pixel: signed area right of the edges within the pixel

	// device space bounding box of all edges
	bbox     rect.Rect
	bboxUsed bool
}

// NewRasteriser returns a Rasteriser with the given clip rectangle, the
// identity CTM and the default flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset restores the defaults of [NewRasteriser], keeping the capacity
// of the internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.cover = r.cover[:0]
	r.area = r.area[:0]
}

// FillNonZero fills p using the nonzero winding rule.
// See [Rasteriser.Fill] for the emit callback.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.Fill(p, NonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
// See [Rasteriser.Fill] for the emit callback.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.Fill(p, EvenOdd, emit)
}

// Fill fills p using the given rule.  Open subpaths are closed implicitly.
//
// The coverage is reported one scanline at a time, from top to bottom:
// coverage[i] is the coverage of pixel (xMin+i, y).  Runs of zero
// coverage at both ends of a scanline are not reported, and scanlines
// without coverage are skipped.  The coverage slice is only valid during
// the call to emit.
func (r *Rasteriser) Fill(p *path.Data, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	r.collectEdges(p)
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := float64(y + 1)

		for next < len(r.edges) && r.edges[next].y0 < bottom {
			r.active = append(r.active, next)
			next++
		}
		k := 0
		for _, i := range r.active {
			if r.edges[i].y1 > top {
				r.active[k] = i
				k++
			}
		}
		r.active = r.active[:k]
		if k == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], top, bottom, xMin, xMax)
		}
		integrate(r.cover, r.area, rule)

		if coverage, offset := trimZeros(r.cover); coverage != nil {
			emit(y, xMin+offset, coverage)
		}
	}
}

// collectEdges flattens p into r.edges, in device coordinates.
func (r *Rasteriser) collectEdges(p *path.Data) {
	r.edges = r.edges[:0]
	r.bboxUsed = false

	var current, subpath vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.addEdge(current, subpath)
			}
			current = p.Coords[k]
			subpath = current
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			open = true
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1])
			current = p.Coords[k+1]
			open = true
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			current = p.Coords[k+2]
			open = true
			k += 3
		case path.CmdClose:
			r.addEdge(current, subpath)
			current = subpath
			open = false
		}
	}
	if open {
		r.addEdge(current, subpath)
	}
}

// toDevice maps a point from path coordinates to device coordinates.
func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4],
		Y: r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5],
	}
}

// deviceLength returns the device space length of the path space vector v.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}.Length()
}

// flattenQuadratic replaces the quadratic Bézier curve p0, p1, p2 by line
// segments.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	// the curve deviates from its chord by at most |p0 - 2p1 + p2|/4
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)) / 4
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, q)
		prev = q
	}
}

// flattenCubic replaces the cubic Bézier curve p0, p1, p2, p3 by line
// segments.  The number of segments is chosen using Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	m := max(
		r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)),
	)
	n := 1
	if m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, q)
		prev = q
	}
}

// addEdge adds the line segment from a to b, given in path coordinates.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	a = r.toDevice(a)
	b = r.toDevice(b)

	dir := float32(1)
	if b.Y < a.Y {
		a, b = b, a
		dir = -1
	}
	if b.Y-a.Y < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / (b.Y - a.Y),
		dir:  dir,
	})

	box := rect.Rect{LLx: min(a.X, b.X), LLy: a.Y, URx: max(a.X, b.X), URy: b.Y}
	if !r.bboxUsed {
		r.bbox = box
		r.bboxUsed = true
	} else {
		r.bbox.LLx = min(r.bbox.LLx, box.LLx)
		r.bbox.LLy = min(r.bbox.LLy, box.LLy)
		r.bbox.URx = max(r.bbox.URx, box.URx)
		r.bbox.URy = max(r.bbox.URy, box.URy)
	}
}

// Coverage accumulation:
//
// A piece of an edge inside pixel column x, with signed height h and
// mean horizontal position xMid, contributes
//
//	cover[x] += h
//	area[x]  += h * (x + 1 - xMid)
//
// The area term is the part of the pixel to the right of the edge.  All
// pixels further right are covered by the full height h, which
// integrate carries along as a running sum of cover.  Pieces left of the
// clip region fully cover the first pixel.

// accumulate adds the part of e between the scanline boundaries top and
// bottom to r.cover and r.area, which hold pixel columns xMin to xMax-1.
func (r *Rasteriser) accumulate(e *edge, top, bottom float64, xMin, xMax int) {
	ya := max(top, e.y0)
	yb := min(bottom, e.y1)
	if yb <= ya {
		return
	}
	h := e.dir * float32(yb-ya)

	xa := e.x0 + e.dxdy*(ya-e.y0)
	xb := e.x0 + e.dxdy*(yb-e.y0)
	if xa > xb {
		xa, xb = xb, xa
	}

	first := int(math.Floor(xa))
	last := int(math.Floor(xb))
	switch {
	case last < xMin:
		r.cover[0] += h
		r.area[0] += h
		return
	case first >= xMax:
		return
	case first == last:
		r.deposit(first, h, (xa+xb)/2, xMin, xMax)
		return
	}

	// For a straight edge, the height inside a pixel column is
	// proportional to the width inside that column.
	for x := first; x <= last; x++ {
		left := max(xa, float64(x))
		right := min(xb, float64(x+1))
		if right <= left {
			continue
		}
		share := float32((right - left) / (xb - xa))
		r.deposit(x, h*share, (left+right)/2, xMin, xMax)
	}
}

// deposit records a piece of an edge in pixel column x.
func (r *Rasteriser) deposit(x int, h float32, xMid float64, xMin, xMax int) {
	switch {
	case x < xMin:
		r.cover[0] += h
		r.area[0] += h
	case x < xMax:
		i := x - xMin
		r.cover[i] += h
		r.area[i] += h * float32(float64(x+1)-xMid)
	}
}

// integrate converts the accumulated cover and area values of one
// scanline into coverage values.  The result is stored in cover.
func integrate(cover, area []float32, rule FillRule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		cover[i] = coverage(raw, rule)
	}
}

// coverage maps a signed winding area to a coverage value in [0, 1].
func coverage(raw float32, rule FillRule) float32 {
	if raw < 0 {
		raw = -raw
	}
	if rule == EvenOdd {
		raw -= 2 * float32(math.Floor(float64(raw/2)))
		if raw > 1 {
			raw = 2 - raw
		}
		return raw
	}
	return min(raw, 1)
}

// trimZeros returns coverage without leading and trailing zeros, and the
// number of leading zeros removed.  If all values are zero, nil is
// returned.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the default curve flattening tolerance, in device
	// pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	// Flatter edges do not change the coverage and are dropped.
	horizontalEdgeThreshold = 1e-10
)

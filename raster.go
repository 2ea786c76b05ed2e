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
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Raster is a [Canvas] which paints into an RGBA image.  Each fill is
// composited over the existing image content using the alpha-over
// operator.
//
// A Raster is not safe for concurrent use.
type Raster struct {
	// Aliased disables anti-aliasing, regardless of SetAntialias.
	Aliased bool

	img  *image.RGBA
	mask *image.Alpha
	rast *Rasteriser

	fill      color.NRGBA64
	rule      FillRule
	antialias bool

	path       *path.Data
	hasCurrent bool
	err        error
}

// NewRaster returns a Raster with a fully transparent image of the given
// size.
func NewRaster(width, height int) *Raster {
	bounds := image.Rect(0, 0, width, height)
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Raster{
		img:       image.NewRGBA(bounds),
		mask:      image.NewAlpha(bounds),
		rast:      NewRasteriser(clip),
		fill:      color.NRGBA64{A: 0xffff},
		antialias: true,
		path:      &path.Data{},
	}
}

// Image returns the image the Raster paints into.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Rasteriser returns the rasteriser used for filling paths.  The
// returned value can be used to change the flatness.
func (r *Raster) Rasteriser() *Rasteriser {
	return r.rast
}

// EncodePNG writes the image in PNG format.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

// SetFillColor implements the [Canvas] interface.
func (r *Raster) SetFillColor(c Color) {
	r.fill = color.NRGBA64{
		R: channel16(c.R),
		G: channel16(c.G),
		B: channel16(c.B),
		A: channel16(c.A),
	}
}

// channel16 converts a colour component to 16 bits, clamping it to [0, 1].
func channel16(x float64) uint16 {
	x = min(max(x, 0), 1)
	return uint16(x*0xffff + 0.5)
}

// SetFillRule implements the [Canvas] interface.
func (r *Raster) SetFillRule(rule FillRule) {
	r.rule = rule
}

// SetAntialias implements the [Canvas] interface.
func (r *Raster) SetAntialias(on bool) {
	r.antialias = on
}

// BeginPath implements the [Canvas] interface.
func (r *Raster) BeginPath() {
	r.path = &path.Data{}
	r.hasCurrent = false
	r.err = nil
}

// MoveTo implements the [Canvas] interface.
func (r *Raster) MoveTo(p vec.Vec2) {
	r.path = r.path.MoveTo(p)
	r.hasCurrent = true
}

// CurveTo implements the [Canvas] interface.
func (r *Raster) CurveTo(c1, c2, p vec.Vec2) {
	if !r.hasCurrent {
		r.err = ErrNoCurrentPoint
		return
	}
	r.path = r.path.CubeTo(c1, c2, p)
}

// ClosePath implements the [Canvas] interface.
func (r *Raster) ClosePath() {
	if r.hasCurrent {
		r.path = r.path.Close()
	}
}

// Fill implements the [Canvas] interface.  It paints the current path
// with the fill colour and starts a new, empty path.
func (r *Raster) Fill() error {
	p, err := r.path, r.err
	r.BeginPath()
	if err != nil {
		return err
	}

	aa := r.antialias && !r.Aliased
	touched := image.Rectangle{}
	r.rast.Fill(p, r.rule, func(y, xMin int, coverage []float32) {
		row := r.mask.Pix[r.mask.PixOffset(xMin, y):]
		for i, c := range coverage {
			row[i] = coverageToAlpha(c, aa)
		}
		touched = touched.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
	})
	if touched.Empty() {
		return nil
	}

	src := image.NewUniform(r.fill)
	draw.DrawMask(r.img, touched, src, image.Point{}, r.mask, touched.Min, draw.Over)

	for y := touched.Min.Y; y < touched.Max.Y; y++ {
		i := r.mask.PixOffset(touched.Min.X, y)
		clear(r.mask.Pix[i : i+touched.Dx()])
	}
	return nil
}

func coverageToAlpha(c float32, antialias bool) uint8 {
	if !antialias {
		if c >= 0.5 {
			return 0xff
		}
		return 0
	}
	return uint8(min(max(c, 0), 1)*0xff + 0.5)
}

// seehuhn.de/go/chaos - chaos-game fractal images
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

package chaos

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// DefaultRibbonSamples is the number of line segments used per spline
// when drawing skeleton and ribbon outlines.
const DefaultRibbonSamples = 256

// Skeleton returns the splines as open polylines in world coordinates,
// one subpath per spline, each with the given number of segments.
func (g *Game) Skeleton(samples int) *path.Data {
	samples = max(samples, 1)
	p := &path.Data{}
	for _, s := range g.Splines {
		start, end := s.Domain()
		for i := 0; i <= samples; i++ {
			pt := s.At(sampleParam(start, end, i, samples)).XY()
			if i == 0 {
				p = p.MoveTo(pt)
			} else {
				p = p.LineTo(pt)
			}
		}
	}
	return p
}

// Ribbon returns the closed outlines of the ribbons around the splines,
// in world coordinates. Each ribbon extends Thickness/2 to either side of
// its spline, so every point produced by a map before truncation lies
// inside the ribbon of its spline.
func (g *Game) Ribbon(samples int) *path.Data {
	samples = max(samples, 1)
	half := g.Thickness / 2

	left := make([]vec.Vec2, samples+1)
	right := make([]vec.Vec2, samples+1)
	p := &path.Data{}
	for _, s := range g.Splines {
		start, end := s.Domain()
		for i := 0; i <= samples; i++ {
			t := sampleParam(start, end, i, samples)
			base := s.At(t)
			d := secant(s, t, base).XY()

			// unit normal, same orientation as in TransformWith
			var n vec.Vec2
			if l := d.Length(); l != 0 {
				n = vec.Vec2{X: d.Y / l, Y: -d.X / l}
			}
			c := base.XY()
			left[i] = c.Add(n.Mul(half))
			right[i] = c.Sub(n.Mul(half))
		}

		p = p.MoveTo(left[0])
		for _, pt := range left[1:] {
			p = p.LineTo(pt)
		}
		for i := samples; i >= 0; i-- {
			p = p.LineTo(right[i])
		}
		p = p.Close()
	}
	return p
}

// DeviceMatrix returns the transformation from world coordinates to the
// pixel coordinates of a w×h image, with the y axis pointing down. It is
// the continuous version of the pixel mapping used by Render.
func (g *Game) DeviceMatrix(w, h int) matrix.Matrix {
	sx := float64(w) / g.Width
	sy := float64(h) / g.Height
	return matrix.Matrix{
		sx, 0,
		0, -sy,
		-g.Bounds.LLx * sx, float64(h) + g.Bounds.LLy*sy,
	}
}

// RenderRibbon draws the ribbons around the splines into a w×h grayscale
// image, black on white, with anti-aliased edges.
func (g *Game) RenderRibbon(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	r := NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
	r.CTM = g.DeviceMatrix(w, h)
	r.FillNonZero(g.Ribbon(DefaultRibbonSamples), func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+xMin:]
		for i, c := range coverage {
			row[i] = 255 - byte(min(255, int(c*256)))
		}
	})
	return img
}

// sampleParam returns the i-th of n+1 equally spaced parameters in
// [start, end], hitting both ends exactly.
func sampleParam(start, end float64, i, n int) float64 {
	if i == n {
		return end
	}
	return start + (end-start)*float64(i)/float64(n)
}

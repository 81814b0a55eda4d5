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

package export

import (
	"seehuhn.de/go/chaos"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// skeletonGray is the colour of the skeleton overlay in PDF output.
const skeletonGray = 0.6

// WritePDF writes the raster as a single page PDF file, one point per
// pixel, with ink drawn as black rectangles. If g is not nil, the
// skeleton splines of g are stroked on top.
func WritePDF(name string, im *chaos.Raster, g *chaos.Game) error {
	paper := &pdf.Rectangle{
		URx: float64(im.W),
		URy: float64(im.H),
	}
	page, err := document.CreateSinglePage(name, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, float64(im.W), float64(im.H))
	page.Fill()

	// PDF origin is bottom-left, raster rows start at the top.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(im.H)})

	// One rectangle per horizontal run of ink.
	page.SetFillColor(color.DeviceGray(0))
	haveInk := false
	for y := range im.H {
		x := 0
		for x < im.W {
			if !im.IsInk(x, y) {
				x++
				continue
			}
			start := x
			for x < im.W && im.IsInk(x, y) {
				x++
			}
			page.Rectangle(float64(start), float64(y), float64(x-start), 1)
			haveInk = true
		}
	}
	if haveInk {
		page.Fill()
	}

	if g != nil {
		m := g.DeviceMatrix(im.W, im.H)
		page.SetStrokeColor(color.DeviceGray(skeletonGray))
		page.SetLineWidth(0.5)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		skel := g.Skeleton(chaos.DefaultRibbonSamples)
		k := 0
		for _, cmd := range skel.Cmds {
			p := skel.Coords[k]
			x := m[0]*p.X + m[2]*p.Y + m[4]
			y := m[1]*p.X + m[3]*p.Y + m[5]
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(x, y)
			case path.CmdLineTo:
				page.LineTo(x, y)
			}
			k++
		}
		page.Stroke()
	}

	return page.Close()
}

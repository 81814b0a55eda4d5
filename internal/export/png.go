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

// Package export writes chaos game images in formats other than PPM.
package export

import (
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// WritePNG writes img as a grayscale PNG, magnified by the integer factor
// scale. Every source pixel becomes a scale×scale block.
func WritePNG(w io.Writer, img image.Image, scale int) error {
	scale = max(scale, 1)
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return png.Encode(w, dst)
}

// WritePNGFile writes img to the named file, see WritePNG.
func WritePNGFile(name string, img image.Image, scale int) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = WritePNG(f, img, scale)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

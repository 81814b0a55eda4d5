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
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/kelindar/bitmap"
)

// Raster is a binary image. Every pixel is either background (value 1,
// drawn white) or ink (value 0, drawn black). Row 0 is the top row.
//
// Raster implements image.Image, with the color.Gray values 255 for
// background and 0 for ink.
type Raster struct {
	W, H int

	ink bitmap.Bitmap // bit y*W+x is set for ink pixels
}

// NewRaster returns a raster of the given size with all pixels set to
// background. Both dimensions must be positive, and the number of pixels
// must fit into a uint32.
func NewRaster(w, h int) *Raster {
	if w <= 0 || h <= 0 || uint64(w)*uint64(h) > math.MaxUint32 {
		panic(fmt.Sprintf("invalid raster size %dx%d", w, h))
	}
	r := &Raster{W: w, H: h}
	r.ink.Grow(uint32(w*h - 1))
	return r
}

// SetInk marks pixel (x, y) as ink.
func (r *Raster) SetInk(x, y int) {
	r.ink.Set(r.index(x, y))
}

// IsInk reports whether pixel (x, y) is ink.
// Pixels outside the raster are reported as background.
func (r *Raster) IsInk(x, y int) bool {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return false
	}
	return r.ink.Contains(r.index(x, y))
}

// Value returns the pixel value: 0 for ink, 1 for background.
func (r *Raster) Value(x, y int) uint8 {
	if r.IsInk(x, y) {
		return 0
	}
	return 1
}

// InkCount returns the number of ink pixels.
func (r *Raster) InkCount() int {
	return r.ink.Count()
}

// Equal reports whether r and other have the same size and pixels.
func (r *Raster) Equal(other *Raster) bool {
	if r.W != other.W || r.H != other.H || r.InkCount() != other.InkCount() {
		return false
	}
	equal := true
	r.ink.Range(func(i uint32) {
		if equal && !other.ink.Contains(i) {
			equal = false
		}
	})
	return equal
}

func (r *Raster) index(x, y int) uint32 {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		panic(fmt.Sprintf("pixel (%d, %d) outside %dx%d raster", x, y, r.W, r.H))
	}
	return uint32(y*r.W + x)
}

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.W, r.H)
}

// At implements the image.Image interface.
func (r *Raster) At(x, y int) color.Color {
	return color.Gray{Y: 255 * r.Value(x, y)}
}

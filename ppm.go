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
	"bufio"
	"fmt"
	"io"
	"os"
)

// WritePPM writes the raster as a binary PPM (P6) image. Each pixel is
// stored as three equal bytes, 0 for ink and 255 for background.
func WritePPM(w io.Writer, r *Raster) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", r.W, r.H); err != nil {
		return err
	}

	row := make([]byte, 3*r.W)
	for y := range r.H {
		for x := range r.W {
			v := 255 * r.Value(x, y)
			row[3*x], row[3*x+1], row[3*x+2] = v, v, v
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePPMFile writes the raster to the named file, see WritePPM.
func WritePPMFile(name string, r *Raster) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = WritePPM(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

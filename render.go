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
	"context"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is the number of iterations between two checks of
// the context in RenderContext.
const cancelCheckInterval = 1024

// NewRand returns the random number generator used for a render with the
// given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// Render runs the chaos game for the given number of iterations and
// returns a w×h raster with every visited pixel set to ink.
//
// The result depends only on the Game, the arguments and the seed:
// repeated calls produce identical rasters.
func (g *Game) Render(w, h, iterations int, seed uint64) *Raster {
	im, _ := g.RenderContext(context.Background(), w, h, iterations, seed)
	return im
}

// RenderContext is like Render, but stops early with the context's error
// if ctx is cancelled.
func (g *Game) RenderContext(ctx context.Context, w, h, iterations int, seed uint64) (*Raster, error) {
	rng := NewRand(seed)
	im := NewRaster(w, h)

	p := g.Center()
	for i := range iterations {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		p = g.Transform(p, rng)
		x, y := g.pixel(p, w, h)
		im.SetInk(x, h-y-1)
	}
	return im, nil
}

// pixel maps a point inside the bounding box to pixel coordinates with
// the y axis pointing up. Points on the upper or right edge of the box
// land in the last row or column.
func (g *Game) pixel(p Vec3, w, h int) (int, int) {
	x := int((p.X - g.Bounds.LLx) / g.Width * float64(w))
	y := int((p.Y - g.Bounds.LLy) / g.Height * float64(h))
	if x == w {
		x--
	}
	if y == h {
		y--
	}
	return x, y
}

// RenderAll renders one image per seed. Up to workers renders run
// concurrently; workers <= 0 means no limit. The result has the same
// order as seeds.
func (g *Game) RenderAll(ctx context.Context, w, h, iterations int, seeds []uint64, workers int) ([]*Raster, error) {
	res := make([]*Raster, len(seeds))

	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, seed := range seeds {
		eg.Go(func() error {
			im, err := g.RenderContext(ctx, w, h, iterations, seed)
			if err != nil {
				return err
			}
			res[i] = im
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// Copyright 2010-2011 Anders Wallin (anders.e.e.wallin "at" gmail.com)
//
// This file is part of OpenCAMlib
// (see https://github.com/aewallin/opencamlib).
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 2.1 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package ocl

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"
)

// RenderImage rasterizes the surface wireframe into an RGBA image of
// the given size. The xy extent of the initial square is fitted to the
// image with a small margin; edges are shaded by their mean sampled
// height, darker for lower z. This is a diagnostics exporter, not a
// visualization layer.
func (s *CutterLocationSurface) RenderImage(width, height int) *image.RGBA {
	assert(width > 0 && height > 0)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	margin := 1.05 * s.far
	sx := float64(width) / (2 * margin)
	sy := float64(height) / (2 * margin)

	zmin := math.Inf(1)
	zmax := math.Inf(-1)
	for _, p := range s.Vertices() {
		zmin = math.Min(zmin, p.Z)
		zmax = math.Max(zmax, p.Z)
	}

	g := s.g
	r := vector.NewRasterizer(width, height)
	for _, e := range g.Edges() {
		if g.Twin(e) < e {
			continue // one pass per undirected edge
		}
		p1 := g.Position(g.Source(e))
		p2 := g.Position(g.Target(e))

		r.Reset(width, height)
		strokeSegment(r,
			float32((p1.X+margin)*sx), float32((margin-p1.Y)*sy),
			float32((p2.X+margin)*sx), float32((margin-p2.Y)*sy),
			0.75)
		c := heightShade(0.5*(p1.Z+p2.Z), zmin, zmax)
		r.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	}
	return img
}

// WritePNG renders the surface wireframe and writes it as a PNG file.
func (s *CutterLocationSurface) WritePNG(path string, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ocl: writing png: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, s.RenderImage(width, height)); err != nil {
		return fmt.Errorf("ocl: encoding png: %w", err)
	}
	return nil
}

// strokeSegment appends a segment, stroked as a thin filled quad of
// half-width hw pixels, to the rasterizer path.
func strokeSegment(r *vector.Rasterizer, x1, y1, x2, y2, hw float32) {
	dx := x2 - x1
	dy := y2 - y1
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx := -dy / l * hw
	ny := dx / l * hw
	r.MoveTo(x1+nx, y1+ny)
	r.LineTo(x2+nx, y2+ny)
	r.LineTo(x2-nx, y2-ny)
	r.LineTo(x1-nx, y1-ny)
	r.ClosePath()
}

// heightShade maps a z value in [zmin, zmax] to a gray level, darker
// for lower heights. A flat range maps to a single mid gray.
func heightShade(z, zmin, zmax float64) color.Color {
	t := 0.5
	if zmax > zmin {
		t = (z - zmin) / (zmax - zmin)
	}
	v := uint8(32 + t*128)
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

/*
Copyright © 2020 the GridClip authors.
This file is part of GridClip.

GridClip is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GridClip is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GridClip.  If not, see <http://www.gnu.org/licenses/>.*/

package gridclip

import (
	"fmt"
	"image/color"
	"io"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/carto"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	outlineColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	clearFill    = color.NRGBA{R: 0, G: 255, B: 0, A: 0}
)

// Render draws the cells of r that hold data as a PNG image of the
// given pixel width, colored on a linear scale, and draws the outlines
// of any given polygons on top. No-data cells are left transparent.
func Render(w io.Writer, r *Raster, width int, outlines ...geom.Polygonal) error {
	if r == nil || r.Bounds == nil {
		return fmt.Errorf("%w: nil raster", ErrInvalidArgument)
	}
	if width <= 0 {
		return fmt.Errorf("%w: image width must be positive; have %d", ErrInvalidArgument, width)
	}
	b := r.Bounds
	m := carto.NewRasterMap(b.Max.Y, b.Min.Y, b.Max.X, b.Min.X, width)

	vals := r.Values()
	if len(vals) > 0 {
		cmap := carto.NewColorMap(carto.Linear)
		cmap.AddArray(vals)
		cmap.Set()
		for row := 0; row < r.Ny; row++ {
			for col := 0; col < r.Nx; col++ {
				v := r.Value(row, col)
				if r.IsNoData(v) {
					continue
				}
				fill := cmap.GetColor(v)
				ls := draw.LineStyle{Width: 0.1 * vg.Millimeter, Color: fill}
				if err := m.DrawVector(CellSquare(r, row, col), fill, ls, draw.GlyphStyle{}); err != nil {
					return fmt.Errorf("gridclip: drawing cell (%d, %d): %v", row, col, err)
				}
			}
		}
	}

	ls := draw.LineStyle{Width: 0.25 * vg.Millimeter, Color: outlineColor}
	for i, p := range outlines {
		if err := m.DrawVector(p, clearFill, ls, draw.GlyphStyle{}); err != nil {
			return fmt.Errorf("gridclip: drawing outline %d: %v", i, err)
		}
	}
	return m.WriteTo(w)
}

// DrawFeatures writes a PNG map of the outlines of the given features.
func DrawFeatures(w io.Writer, features ...*Feature) error {
	if len(features) == 0 {
		return fmt.Errorf("%w: no features to draw", ErrInvalidArgument)
	}
	shapes := make([]geom.Geom, len(features))
	stroke := make([]color.NRGBA, len(features))
	fill := make([]color.NRGBA, len(features))
	for i, f := range features {
		if err := checkFeature(f); err != nil {
			return err
		}
		shapes[i] = f.Polygonal
		stroke[i] = outlineColor
		fill[i] = clearFill
	}
	return carto.DrawShapes(w, stroke, fill, 0.25*vg.Millimeter, 0, shapes...)
}

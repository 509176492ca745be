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

	"github.com/ctessum/cdf"
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/ctessum/geom/proj"
	"github.com/ctessum/sparse"
	goshp "github.com/jonas-p/go-shp"
)

const valuesVar = "values"

// WriteNetCDF writes r to w as a NetCDF file with one variable,
// "values" [y, x], and the grid geometry as global attributes.
func (r *Raster) WriteNetCDF(w cdf.ReaderWriterAt) error {
	// A zero length marks a record dimension in NetCDF.
	if r.Ny == 0 || r.Nx == 0 {
		return fmt.Errorf("%w: cannot save an empty %dx%d raster", ErrInvalidArgument, r.Ny, r.Nx)
	}
	h := cdf.NewHeader([]string{"y", "x"}, []int{r.Ny, r.Nx})
	h.AddAttribute("", "comment", "GridClip raster")
	h.AddAttribute("", "x0", []float64{r.Bounds.Min.X})
	h.AddAttribute("", "y0", []float64{r.Bounds.Max.Y})
	h.AddAttribute("", "dx", []float64{r.Dx})
	h.AddAttribute("", "dy", []float64{r.Dy})
	h.AddAttribute("", "nodata", []float64{r.NoData})
	if r.Prj != "" {
		h.AddAttribute("", "proj4", r.Prj)
	}
	h.AddVariable(valuesVar, []string{"y", "x"}, []float64{0})
	h.AddAttribute(valuesVar, "description", "Cell values; row 0 is the northernmost row")
	h.Define()

	f, err := cdf.Create(w, h)
	if err != nil {
		return fmt.Errorf("gridclip: creating NetCDF file: %v", err)
	}
	end := f.Header.Lengths(valuesVar)
	start := make([]int, len(end))
	if _, err := f.Writer(valuesVar, start, end).Write(r.Data.Elements); err != nil {
		return fmt.Errorf("gridclip: writing NetCDF values: %v", err)
	}
	return nil
}

func scalarAttribute(h *cdf.Header, name string) (float64, error) {
	v, ok := h.GetAttribute("", name).([]float64)
	if !ok || len(v) != 1 {
		return 0, fmt.Errorf("gridclip: NetCDF file is missing attribute %q", name)
	}
	return v[0], nil
}

// ReadNetCDF reads a raster written by WriteNetCDF.
func ReadNetCDF(rw cdf.ReaderWriterAt) (*Raster, error) {
	f, err := cdf.Open(rw)
	if err != nil {
		return nil, fmt.Errorf("gridclip: opening NetCDF file: %v", err)
	}
	dims := f.Header.Lengths(valuesVar)
	if len(dims) != 2 {
		return nil, fmt.Errorf("gridclip: NetCDF file has no 2-D %q variable", valuesVar)
	}
	r := &Raster{Ny: dims[0], Nx: dims[1]}
	var x0, y0 float64
	for _, a := range []struct {
		name string
		v    *float64
	}{{"x0", &x0}, {"y0", &y0}, {"dx", &r.Dx}, {"dy", &r.Dy}, {"nodata", &r.NoData}} {
		if *a.v, err = scalarAttribute(f.Header, a.name); err != nil {
			return nil, err
		}
	}
	r.Bounds = &geom.Bounds{
		Min: geom.Point{X: x0, Y: y0 - float64(r.Ny)*r.Dy},
		Max: geom.Point{X: x0 + float64(r.Nx)*r.Dx, Y: y0},
	}
	if p, ok := f.Header.GetAttribute("", "proj4").(string); ok && p != "" {
		r.Prj = p
		if r.SR, err = proj.Parse(p); err != nil {
			return nil, fmt.Errorf("gridclip: NetCDF projection: %v", err)
		}
	}
	r.Data = sparse.ZerosDense(r.Ny, r.Nx)
	rd := f.Reader(valuesVar, []int{0, 0}, dims)
	buf := rd.Zero(r.Ny * r.Nx)
	if _, err := rd.Read(buf); err != nil {
		return nil, fmt.Errorf("gridclip: reading NetCDF values: %v", err)
	}
	copy(r.Data.Elements, buf.([]float64))
	return r, nil
}

// WriteCellsShapefile writes one square polygon for every cell of r
// that holds data, with the cell's row, column and value.
func (r *Raster) WriteCellsShapefile(filename string) error {
	fields := []goshp.Field{
		goshp.NumberField("Row", 10),
		goshp.NumberField("Col", 10),
		goshp.FloatField("Value", 14, 6),
	}
	base := shpBase(filename)
	e, err := shp.NewEncoderFromFields(base+".shp", goshp.POLYGON, fields...)
	if err != nil {
		return fmt.Errorf("gridclip: creating cell shapefile: %v", err)
	}
	for row := 0; row < r.Ny; row++ {
		for col := 0; col < r.Nx; col++ {
			v := r.Value(row, col)
			if r.IsNoData(v) {
				continue
			}
			if err := e.EncodeFields(CellSquare(r, row, col), row, col, v); err != nil {
				e.Close()
				return fmt.Errorf("gridclip: writing cell (%d, %d): %v", row, col, err)
			}
		}
	}
	e.Close()
	return writePrj(base, r.Prj)
}

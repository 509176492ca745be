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

// Package gridclip rasterizes polygon features onto regular grids and
// classifies grid cells against polygon geometry.
package gridclip

import (
	"errors"
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"
	"github.com/ctessum/sparse"
)

// Version gives the version number.
const Version = "0.3.0"

// ErrInvalidArgument is returned when a required input is nil or
// malformed.
var ErrInvalidArgument = errors.New("gridclip: invalid argument")

// DefaultNoData is the no-data sentinel of new rasters.
const DefaultNoData = -1.

// Grid gives read-only access to a raster's geometry and values.
// Row 0, column 0 is the cell in the maximum-Y, minimum-X corner of
// the extent; Y decreases as row increases.
type Grid interface {
	// CellSize returns the cell width and height.
	CellSize() (dx, dy float64)

	// Extent returns the bounds of the grid.
	Extent() *geom.Bounds

	// Rows and Columns return the grid dimensions.
	Rows() int
	Columns() int

	// StartRow, EndRow, StartColumn and EndColumn give the range
	// of a full-grid scan. End indices are exclusive.
	StartRow() int
	EndRow() int
	StartColumn() int
	EndColumn() int

	// Value returns the value stored at (row, col).
	Value(row, col int) float64

	// NoDataValue returns the no-data sentinel.
	NoDataValue() float64

	// CellToProj returns the center of cell (row, col) in the
	// grid's coordinate system.
	CellToProj(row, col int) geom.Point
}

// Raster is a regular grid of values held in memory.
type Raster struct {
	// Nx and Ny are the number of columns and rows.
	Nx, Ny int

	// Dx and Dy are the cell width and height.
	Dx, Dy float64

	// Bounds is the extent of the grid.
	Bounds *geom.Bounds

	// Data holds the cell values with shape [Ny, Nx].
	Data *sparse.DenseArray

	// NoData marks cells without a value.
	NoData float64

	// SR is the spatial reference of the grid, if known, and Prj
	// the definition it was parsed from.
	SR  *proj.SR
	Prj string
}

// cellCount returns the number of cells of size d needed to span w.
func cellCount(w, d float64) int {
	n := w / d
	if f := math.Floor(n); n-f < 1.e-9 {
		return int(f)
	}
	return int(math.Ceil(n))
}

// NewRaster creates a raster covering extent with cells of size dx by
// dy. The grid is anchored at the minimum-X, maximum-Y corner of
// extent; the opposite edges are moved outward to a whole number of
// cells. All cells are set to DefaultNoData.
func NewRaster(extent *geom.Bounds, dx, dy float64, sr *proj.SR) (*Raster, error) {
	if extent == nil {
		return nil, fmt.Errorf("%w: nil raster extent", ErrInvalidArgument)
	}
	if !(dx > 0) || !(dy > 0) {
		return nil, fmt.Errorf("%w: cell size must be positive; have %gx%g", ErrInvalidArgument, dx, dy)
	}
	if extent.Empty() {
		return nil, fmt.Errorf("%w: empty raster extent", ErrInvalidArgument)
	}
	r := &Raster{
		Nx:     cellCount(extent.Max.X-extent.Min.X, dx),
		Ny:     cellCount(extent.Max.Y-extent.Min.Y, dy),
		Dx:     dx,
		Dy:     dy,
		NoData: DefaultNoData,
		SR:     sr,
	}
	r.Bounds = &geom.Bounds{
		Min: geom.Point{X: extent.Min.X, Y: extent.Max.Y - float64(r.Ny)*dy},
		Max: geom.Point{X: extent.Min.X + float64(r.Nx)*dx, Y: extent.Max.Y},
	}
	r.Data = sparse.ZerosDense(r.Ny, r.Nx)
	r.Fill(r.NoData)
	return r, nil
}

// Fill sets every cell to v.
func (r *Raster) Fill(v float64) {
	for i := range r.Data.Elements {
		r.Data.Elements[i] = v
	}
}

// CellSize returns the cell width and height.
func (r *Raster) CellSize() (dx, dy float64) { return r.Dx, r.Dy }

// Extent returns the bounds of the raster.
func (r *Raster) Extent() *geom.Bounds { return r.Bounds }

// Rows returns the number of rows.
func (r *Raster) Rows() int { return r.Ny }

// Columns returns the number of columns.
func (r *Raster) Columns() int { return r.Nx }

func (r *Raster) StartRow() int    { return 0 }
func (r *Raster) EndRow() int      { return r.Ny }
func (r *Raster) StartColumn() int { return 0 }
func (r *Raster) EndColumn() int   { return r.Nx }

// NoDataValue returns the no-data sentinel.
func (r *Raster) NoDataValue() float64 { return r.NoData }

func (r *Raster) inside(row, col int) bool {
	return row >= 0 && row < r.Ny && col >= 0 && col < r.Nx
}

// Value returns the value at (row, col), or NoData if the cell is
// outside the grid.
func (r *Raster) Value(row, col int) float64 {
	if !r.inside(row, col) {
		return r.NoData
	}
	return r.Data.Get(row, col)
}

// SetValue sets the value at (row, col).
func (r *Raster) SetValue(row, col int, v float64) error {
	if !r.inside(row, col) {
		return fmt.Errorf("gridclip: cell (%d, %d) is outside of the %dx%d raster", row, col, r.Ny, r.Nx)
	}
	r.Data.Set(v, row, col)
	return nil
}

// IsNoData reports whether v is the no-data sentinel or NaN.
func (r *Raster) IsNoData(v float64) bool {
	return v == r.NoData || math.IsNaN(v)
}

// CellToProj returns the center of cell (row, col).
func (r *Raster) CellToProj(row, col int) geom.Point {
	return geom.Point{
		X: r.Bounds.Min.X + (float64(col)+0.5)*r.Dx,
		Y: r.Bounds.Max.Y - (float64(row)+0.5)*r.Dy,
	}
}

// ProjToCell returns the cell containing p. ok is false if p is
// outside of the raster. Points on a shared cell edge belong to the
// cell below and to the right.
func (r *Raster) ProjToCell(p geom.Point) (row, col int, ok bool) {
	col = int(math.Floor((p.X - r.Bounds.Min.X) / r.Dx))
	row = int(math.Floor((r.Bounds.Max.Y - p.Y) / r.Dy))
	return row, col, r.inside(row, col)
}

// CellBounds returns the rectangle covered by cell (row, col).
func (r *Raster) CellBounds(row, col int) *geom.Bounds {
	return &geom.Bounds{
		Min: geom.Point{
			X: r.Bounds.Min.X + float64(col)*r.Dx,
			Y: r.Bounds.Max.Y - float64(row+1)*r.Dy,
		},
		Max: geom.Point{
			X: r.Bounds.Min.X + float64(col+1)*r.Dx,
			Y: r.Bounds.Max.Y - float64(row)*r.Dy,
		},
	}
}

// Values returns the values of all cells that hold data, in
// row-major order.
func (r *Raster) Values() []float64 {
	var o []float64
	for _, v := range r.Data.Elements {
		if !r.IsNoData(v) {
			o = append(o, v)
		}
	}
	return o
}

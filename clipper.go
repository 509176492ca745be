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
	"math"
	"sort"

	"github.com/ctessum/geom"
	"github.com/gonum/floats"
)

// CellIndex identifies a raster cell.
type CellIndex struct {
	Row, Col int
}

// Result maps the cells selected by a classification to their values.
type Result map[CellIndex]float64

// Indices returns the cells in r sorted by row, then column.
func (r Result) Indices() []CellIndex {
	o := make([]CellIndex, 0, len(r))
	for i := range r {
		o = append(o, i)
	}
	sort.Slice(o, func(i, j int) bool {
		if o[i].Row != o[j].Row {
			return o[i].Row < o[j].Row
		}
		return o[i].Col < o[j].Col
	})
	return o
}

// Clipper classifies the cells of one grid against polygon features.
// It holds a snapshot of the grid geometry taken at construction;
// values are read from the grid on every call.
type Clipper struct {
	grid       Grid
	dx, dy     float64
	extent     geom.Bounds
	rows, cols int
	legacy     bool
}

// ClipperOption configures a Clipper.
type ClipperOption func(*Clipper)

// WithLegacyRange makes candidate ranges stop one row and one column
// short of the grid edge. Use it to reproduce classifications made by
// older tools, which never visit the last row or column.
func WithLegacyRange() ClipperOption {
	return func(c *Clipper) { c.legacy = true }
}

// NewClipper returns a Clipper bound to g.
func NewClipper(g Grid, opts ...ClipperOption) (*Clipper, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidArgument)
	}
	c := &Clipper{grid: g, rows: g.Rows(), cols: g.Columns()}
	c.dx, c.dy = g.CellSize()
	if e := g.Extent(); e != nil {
		c.extent = *e
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// span is a half-open index range.
type span struct{ first, end int }

func (s span) empty() bool { return s.first >= s.end }

// rangeStrategy returns the candidate rows and columns of a sweep.
type rangeStrategy func() (rows, cols span)

// cellPredicate reports whether the cell at (row, col) with value v
// belongs in the result.
type cellPredicate func(row, col int, v float64) bool

// toSpan maps the real-valued interval [lo, hi) measured in cells from
// the grid origin onto a clamped index range.
func (c *Clipper) toSpan(lo, hi float64, count int) span {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return span{}
	}
	limit := count
	if c.legacy {
		limit = count - 1
	}
	first := math.Max(math.Floor(lo), 0)
	end := math.Min(math.Ceil(hi), float64(limit))
	if first >= end {
		return span{}
	}
	return span{first: int(first), end: int(end)}
}

// envelopeRange returns the cells that could overlap the rectangle b.
func (c *Clipper) envelopeRange(b *geom.Bounds) rangeStrategy {
	return func() (rows, cols span) {
		if b == nil || b.Empty() || !(c.dx > 0) || !(c.dy > 0) {
			return span{}, span{}
		}
		rows = c.toSpan((c.extent.Max.Y-b.Max.Y)/c.dy, (c.extent.Max.Y-b.Min.Y)/c.dy, c.rows)
		cols = c.toSpan((b.Min.X-c.extent.Min.X)/c.dx, (b.Max.X-c.extent.Min.X)/c.dx, c.cols)
		return rows, cols
	}
}

// fullRange returns every cell of the grid.
func (c *Clipper) fullRange() (rows, cols span) {
	return span{c.grid.StartRow(), c.grid.EndRow()}, span{c.grid.StartColumn(), c.grid.EndColumn()}
}

// sweep visits every candidate cell and calls visit for the ones that
// satisfy keep.
func (c *Clipper) sweep(r rangeStrategy, keep cellPredicate, visit func(CellIndex, float64)) {
	rows, cols := r()
	if rows.empty() || cols.empty() {
		return
	}
	for row := rows.first; row < rows.end; row++ {
		for col := cols.first; col < cols.end; col++ {
			v := c.grid.Value(row, col)
			if keep(row, col, v) {
				visit(CellIndex{Row: row, Col: col}, v)
			}
		}
	}
}

// square returns the polygon of cell (row, col).
func (c *Clipper) square(row, col int) geom.Polygon {
	return squareAround(c.grid.CellToProj(row, col), c.dx, c.dy)
}

// collect runs a sweep and gathers the selected cells.
func (c *Clipper) collect(r rangeStrategy, keep cellPredicate) Result {
	o := make(Result)
	c.sweep(r, keep, func(i CellIndex, v float64) { o[i] = v })
	return o
}

func checkFeature(f *Feature) error {
	if f == nil || f.Polygonal == nil {
		return fmt.Errorf("%w: nil feature", ErrInvalidArgument)
	}
	return nil
}

// IntersectingCenterNotContained returns the cells whose squares
// intersect f but whose centers are not inside f.
func (c *Clipper) IntersectingCenterNotContained(f *Feature) (Result, error) {
	if err := checkFeature(f); err != nil {
		return nil, err
	}
	return c.collect(c.envelopeRange(f.Bounds()), func(row, col int, _ float64) bool {
		sq := c.square(row, col)
		return Intersects(sq, f.Polygonal) && !ContainsPoint(f.Polygonal, sq.Centroid())
	}), nil
}

// WithValue returns every cell of the grid whose value, truncated to
// an integer, equals v.
func (c *Clipper) WithValue(v int) Result {
	return c.collect(c.fullRange, func(_, _ int, val float64) bool {
		return !math.IsNaN(val) && int(val) == v
	})
}

// IntersectingNoData returns the cells that intersect f and hold a
// negative value.
func (c *Clipper) IntersectingNoData(f *Feature) (Result, error) {
	if err := checkFeature(f); err != nil {
		return nil, err
	}
	return c.collect(c.envelopeRange(f.Bounds()), func(row, col int, v float64) bool {
		return v < 0 && Intersects(c.square(row, col), f.Polygonal)
	}), nil
}

// ValueOutsideFeature returns the cells within the envelope of f that
// hold a non-negative value but do not intersect f.
func (c *Clipper) ValueOutsideFeature(f *Feature) (Result, error) {
	if err := checkFeature(f); err != nil {
		return nil, err
	}
	return c.collect(c.envelopeRange(f.Bounds()), func(row, col int, v float64) bool {
		return v >= 0 && !Intersects(c.square(row, col), f.Polygonal)
	}), nil
}

// Sum returns the total of the values greater than the no-data value
// among the cells within the envelope of f.
func (c *Clipper) Sum(f *Feature) (float64, error) {
	if err := checkFeature(f); err != nil {
		return 0, err
	}
	noData := c.grid.NoDataValue()
	var vals []float64
	c.sweep(c.envelopeRange(f.Bounds()), func(_, _ int, v float64) bool {
		return v > noData
	}, func(_ CellIndex, v float64) { vals = append(vals, v) })
	return floats.Sum(vals), nil
}

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

import "github.com/ctessum/geom"

// CellSquare returns the square covered by cell (row, col) of g as a
// closed ring of five points.
func CellSquare(g Grid, row, col int) geom.Polygon {
	dx, dy := g.CellSize()
	return squareAround(g.CellToProj(row, col), dx, dy)
}

func squareAround(c geom.Point, w, h float64) geom.Polygon {
	x0, x1 := c.X-w/2, c.X+w/2
	y0, y1 := c.Y-h/2, c.Y+h/2
	return geom.Polygon{{
		{X: x0, Y: y0},
		{X: x0, Y: y1},
		{X: x1, Y: y1},
		{X: x1, Y: y0},
		{X: x0, Y: y0},
	}}
}

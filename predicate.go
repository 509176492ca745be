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
	"math"

	"github.com/ctessum/geom"
)

// areaTolerance is the fraction of a cell's area below which an
// overlap is treated as contact along an edge.
const areaTolerance = 1.e-9

// Intersects reports whether cell and p share interior area.
// Touching along an edge or at a vertex is not an intersection, and a
// polygon whose rings are all collinear has no interior.
func Intersects(cell geom.Polygon, p geom.Polygonal) bool {
	if p == nil || !cell.Bounds().Overlaps(p.Bounds()) || flat(p) {
		return false
	}
	if ContainsPoint(p, cell.Centroid()) {
		return true
	}
	cellArea := math.Abs(cell.Area())
	if cellArea == 0 {
		return false
	}
	return math.Abs(cell.Intersection(p).Area()) > areaTolerance*cellArea
}

// flat reports whether every ring of p lies on a single line.
func flat(p geom.Polygonal) bool {
	for _, pp := range p.Polygons() {
		for _, r := range pp {
			if !collinear(r) {
				return false
			}
		}
	}
	return true
}

func collinear(r []geom.Point) bool {
	for i := 1; i < len(r); i++ {
		u := geom.Point{X: r[i].X - r[0].X, Y: r[i].Y - r[0].Y}
		if u.X == 0 && u.Y == 0 {
			continue
		}
		for _, pt := range r[i+1:] {
			v := geom.Point{X: pt.X - r[0].X, Y: pt.Y - r[0].Y}
			cross := u.X*v.Y - u.Y*v.X
			if math.Abs(cross) > 1.e-12*math.Hypot(u.X, u.Y)*math.Hypot(v.X, v.Y) {
				return false
			}
		}
		return true
	}
	return true
}

// ContainsPoint reports whether pt is strictly inside p. Points on
// the boundary are not contained.
func ContainsPoint(p geom.Polygonal, pt geom.Point) bool {
	if p == nil {
		return false
	}
	return pt.Within(p) == geom.Inside
}

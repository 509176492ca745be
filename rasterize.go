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
	"strings"
	"time"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
	"github.com/sirupsen/logrus"
)

// Mode specifies which cells a feature is burned into.
type Mode int

const (
	// AllTouched burns every cell that shares area with the feature.
	AllTouched Mode = iota

	// CenterInside burns the cells whose centers are inside the feature.
	CenterInside
)

func (m Mode) String() string {
	switch m {
	case AllTouched:
		return "all_touched"
	case CenterInside:
		return "center_inside"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode returns the Mode named s.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all_touched", "alltouched", "":
		return AllTouched, nil
	case "center_inside", "centerinside", "center":
		return CenterInside, nil
	default:
		return 0, fmt.Errorf("%w: unknown rasterization mode %q", ErrInvalidArgument, s)
	}
}

// RasterizeOptions configures Rasterize. Start from
// DefaultRasterizeOptions to get the default no-data value.
type RasterizeOptions struct {
	// CellSize is the width and height of the output cells.
	CellSize float64

	// Field is the attribute holding each feature's value.
	Field string

	// NoData is stored in cells that no feature selects.
	NoData float64

	// Extent is the area to cover. If nil, the combined envelope of
	// the features is used.
	Extent *geom.Bounds

	// Aligned moves the extent outward to multiples of CellSize, so
	// that rasters of different feature sets share cell edges.
	Aligned bool

	Mode Mode

	// Log receives progress information. If nil, the standard
	// logrus logger is used.
	Log logrus.FieldLogger
}

// DefaultRasterizeOptions returns options for burning field into cells
// of the given size.
func DefaultRasterizeOptions(cellSize float64, field string) RasterizeOptions {
	return RasterizeOptions{
		CellSize: cellSize,
		Field:    field,
		NoData:   DefaultNoData,
		Mode:     AllTouched,
	}
}

type indexedFeature struct {
	*Feature
	i int
}

// alignBounds returns b with its edges moved outward to multiples of d.
func alignBounds(b *geom.Bounds, d float64) *geom.Bounds {
	return &geom.Bounds{
		Min: geom.Point{X: math.Floor(b.Min.X/d) * d, Y: math.Floor(b.Min.Y/d) * d},
		Max: geom.Point{X: math.Ceil(b.Max.X/d) * d, Y: math.Ceil(b.Max.Y/d) * d},
	}
}

// Rasterize creates a raster holding the o.Field value of the features
// in fs. Where several features select a cell, the one that comes last
// in fs wins.
func Rasterize(fs *FeatureSet, o RasterizeOptions) (*Raster, error) {
	if fs == nil {
		return nil, fmt.Errorf("%w: nil feature set", ErrInvalidArgument)
	}
	if !(o.CellSize > 0) {
		return nil, fmt.Errorf("%w: cell size must be positive; have %g", ErrInvalidArgument, o.CellSize)
	}
	log := o.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	start := time.Now()

	vals := make([]float64, len(fs.Features))
	index := rtree.NewTree(25, 50)
	for i, f := range fs.Features {
		if f == nil || f.Polygonal == nil {
			return nil, fmt.Errorf("%w: feature %d is nil", ErrInvalidArgument, i)
		}
		v, err := f.Float(o.Field)
		if err != nil {
			return nil, fmt.Errorf("gridclip: rasterizing feature %d: %v", i, err)
		}
		vals[i] = v
		index.Insert(&indexedFeature{Feature: f, i: i})
	}

	extent := o.Extent
	if extent == nil {
		if len(fs.Features) == 0 {
			return nil, fmt.Errorf("%w: no features and no extent to rasterize", ErrInvalidArgument)
		}
		extent = fs.Bounds()
	}
	if o.Aligned {
		extent = alignBounds(extent, o.CellSize)
	}
	r, err := NewRaster(extent, o.CellSize, o.CellSize, fs.SR)
	if err != nil {
		return nil, err
	}
	r.NoData = o.NoData
	r.Prj = fs.Prj
	r.Fill(o.NoData)

	selects := func(f *Feature, sq geom.Polygon) bool {
		if o.Mode == CenterInside {
			return ContainsPoint(f.Polygonal, sq.Centroid())
		}
		return Intersects(sq, f.Polygonal)
	}

	burned := 0
	for row := 0; row < r.Ny; row++ {
		for col := 0; col < r.Nx; col++ {
			candidates := index.SearchIntersect(r.CellBounds(row, col))
			if len(candidates) == 0 {
				continue
			}
			fi := make([]*indexedFeature, len(candidates))
			for j, c := range candidates {
				fi[j] = c.(*indexedFeature)
			}
			sort.Slice(fi, func(a, b int) bool { return fi[a].i > fi[b].i })
			sq := CellSquare(r, row, col)
			for _, f := range fi {
				if selects(f.Feature, sq) {
					r.Data.Set(vals[f.i], row, col)
					burned++
					break
				}
			}
		}
	}
	log.WithFields(logrus.Fields{
		"features": len(fs.Features),
		"rows":     r.Ny,
		"cols":     r.Nx,
		"cells":    burned,
		"mode":     o.Mode,
		"elapsed":  time.Since(start),
	}).Info("gridclip: rasterized features")
	return r, nil
}

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

package gridcliputil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/gridclip"
	"github.com/spatialmodel/gridclip/srs"
	"github.com/spf13/cast"
)

// ErrProjectionMismatch is returned when features and a raster are in
// different spatial references.
var ErrProjectionMismatch = errors.New("gridclip: features and raster have different projections")

// checkProjections makes sure the raster and features can be compared
// cell by cell. Inputs without a spatial reference are assumed to match.
func checkProjections(r *gridclip.Raster, fs *gridclip.FeatureSet) error {
	switch {
	case r.SR == nil && fs.SR == nil:
		return nil
	case r.SR == nil || fs.SR == nil:
		Log.WithFields(logrus.Fields{
			"raster":   r.Prj,
			"features": fs.Prj,
		}).Warn("gridclip: projection is missing; assuming raster and features match")
		return nil
	case !r.SR.Equal(fs.SR, 3):
		return fmt.Errorf("%w: raster %q, features %q", ErrProjectionMismatch, r.Prj, fs.Prj)
	}
	return nil
}

// Operation is a cell classification run by the classify command.
type Operation int

// Classifications.
const (
	Boundary Operation = iota
	Value
	NoData
	Outside
	Sum
)

var operationNames = []string{"boundary", "value", "nodata", "outside", "sum"}

func (o Operation) String() string {
	if o < 0 || int(o) >= len(operationNames) {
		return fmt.Sprintf("Operation(%d)", int(o))
	}
	return operationNames[o]
}

// ParseOperation returns the Operation named s.
func ParseOperation(s string) (Operation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range operationNames {
		if s == n {
			return Operation(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown operation %q; valid operations are %s",
		gridclip.ErrInvalidArgument, s, strings.Join(operationNames, ", "))
}

// checkOutputFile makes sure that the output file is specified and its
// directory exists.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf("gridclip: output file is not specified")
	}
	dir := filepath.Dir(f)
	if _, err := os.Stat(dir); err != nil {
		return "", fmt.Errorf("gridclip: the output file directory doesn't exist: %v", err)
	}
	return f, nil
}

// outputWriter returns a buffered writer to the named file, or to
// stdout if filename is empty, and a function that flushes and closes it.
func outputWriter(filename string, stdout io.Writer) (io.Writer, func() error, error) {
	if filename == "" {
		w := bufio.NewWriter(stdout)
		return w, w.Flush, nil
	}
	if _, err := checkOutputFile(filename); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(filename)
	if err != nil {
		return nil, nil, err
	}
	w := bufio.NewWriter(f)
	return w, func() error {
		if err := w.Flush(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}

// loadProjections adds the definitions in a TOML catalog to the
// default registry.
func loadProjections(filename string) error {
	if filename == "" {
		return nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("gridclip: opening projection catalog: %v", err)
	}
	defer f.Close()
	return srs.Default().LoadTOML(f)
}

// ParseDefinition returns the spatial reference identified by s, which
// may be an EPSG code with or without the "EPSG:" prefix, or a name.
func ParseDefinition(s string) (srs.Definition, error) {
	s = strings.TrimSpace(s)
	code := s
	if i := strings.Index(s, ":"); i >= 0 && strings.EqualFold(s[:i], srs.EPSG) {
		code = s[i+1:]
	}
	if c, err := cast.ToIntE(code); err == nil {
		return srs.Lookup(c)
	}
	return srs.LookupName(s)
}

// openRaster reads a raster saved as NetCDF.
func openRaster(filename string) (*gridclip.Raster, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("gridclip: opening raster: %v", err)
	}
	defer f.Close()
	return gridclip.ReadNetCDF(f)
}

// Rasterize rasterizes the polygons in inputShp, writes the raster to
// outputNC, and, if outputShp is not empty, the cells that hold data
// to outputShp.
func Rasterize(inputShp, outputNC, outputShp string, o gridclip.RasterizeOptions) error {
	if inputShp == "" {
		return fmt.Errorf("gridclip: input shapefile is not specified")
	}
	outputNC, err := checkOutputFile(outputNC)
	if err != nil {
		return err
	}
	fs, err := gridclip.ReadShapefile(inputShp)
	if err != nil {
		return err
	}
	r, err := gridclip.Rasterize(fs, o)
	if err != nil {
		return err
	}
	f, err := os.Create(outputNC)
	if err != nil {
		return fmt.Errorf("gridclip: creating raster file: %v", err)
	}
	if err := r.WriteNetCDF(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if outputShp != "" {
		if _, err := checkOutputFile(outputShp); err != nil {
			return err
		}
		if err := r.WriteCellsShapefile(outputShp); err != nil {
			return err
		}
	}
	return nil
}

// Classify runs op on the raster in rasterNC against every polygon in
// featuresShp and writes the selected cells to w as 'row,col,value'
// lines, ordered by row and column. A cell selected by more than one
// feature is written once. The Value operation does not use features.
// The Sum operation writes a 'feature,sum' line for each feature.
func Classify(rasterNC, featuresShp string, op Operation, value int, legacyRange bool, w io.Writer) error {
	start := time.Now()
	r, err := openRaster(rasterNC)
	if err != nil {
		return err
	}
	var opts []gridclip.ClipperOption
	if legacyRange {
		opts = append(opts, gridclip.WithLegacyRange())
	}
	c, err := gridclip.NewClipper(r, opts...)
	if err != nil {
		return err
	}

	var fs *gridclip.FeatureSet
	if op != Value {
		if featuresShp == "" {
			return fmt.Errorf("gridclip: operation %s needs a features shapefile", op)
		}
		if fs, err = gridclip.ReadShapefile(featuresShp); err != nil {
			return err
		}
		if err := checkProjections(r, fs); err != nil {
			return err
		}
	}

	result := make(gridclip.Result)
	switch op {
	case Value:
		result = c.WithValue(value)
	case Sum:
		for i, f := range fs.Features {
			s, err := c.Sum(f)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%d,%s\n", i, formatValue(s)); err != nil {
				return err
			}
		}
		Log.WithFields(logrus.Fields{
			"features": len(fs.Features),
			"elapsed":  time.Since(start),
		}).Info("gridclip: summed features")
		return nil
	default:
		classify := map[Operation]func(*gridclip.Feature) (gridclip.Result, error){
			Boundary: c.IntersectingCenterNotContained,
			NoData:   c.IntersectingNoData,
			Outside:  c.ValueOutsideFeature,
		}[op]
		if classify == nil {
			return fmt.Errorf("%w: unknown operation %s", gridclip.ErrInvalidArgument, op)
		}
		for _, f := range fs.Features {
			res, err := classify(f)
			if err != nil {
				return err
			}
			for i, v := range res {
				result[i] = v
			}
		}
	}
	for _, i := range result.Indices() {
		if _, err := fmt.Fprintf(w, "%d,%d,%s\n", i.Row, i.Col, formatValue(result[i])); err != nil {
			return err
		}
	}
	Log.WithFields(logrus.Fields{
		"operation": op,
		"cells":     len(result),
		"elapsed":   time.Since(start),
	}).Info("gridclip: classified cells")
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Reproject converts (x, y) between the spatial references named by
// from and to and writes the result to w as 'x,y'.
func Reproject(from, to string, x, y float64, w io.Writer) error {
	src, err := ParseDefinition(from)
	if err != nil {
		return err
	}
	dst, err := ParseDefinition(to)
	if err != nil {
		return err
	}
	ox, oy, err := srs.Transform(src, dst, x, y)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s,%s\n", formatValue(ox), formatValue(oy))
	return err
}

// Render draws the raster in rasterNC, with the outlines of the
// polygons in featuresShp if it is not empty, to the PNG file outputPNG.
func Render(rasterNC, featuresShp, outputPNG string, width int) error {
	outputPNG, err := checkOutputFile(outputPNG)
	if err != nil {
		return err
	}
	r, err := openRaster(rasterNC)
	if err != nil {
		return err
	}
	var outlines []geom.Polygonal
	if featuresShp != "" {
		fs, err := gridclip.ReadShapefile(featuresShp)
		if err != nil {
			return err
		}
		for _, f := range fs.Features {
			outlines = append(outlines, f.Polygonal)
		}
	}
	f, err := os.Create(outputPNG)
	if err != nil {
		return err
	}
	if err := gridclip.Render(f, r, width, outlines...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

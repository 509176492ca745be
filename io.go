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
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/ctessum/geom/proj"
	goshp "github.com/jonas-p/go-shp"
	gogeom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// shpStringLength is the width of attribute fields in written shapefiles.
const shpStringLength = 50

func shpBase(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// ReadShapefile reads the polygons in a shapefile, with all of their
// attributes. If a .prj file is next to the shapefile, it sets the
// spatial reference of the result.
func ReadShapefile(filename string) (*FeatureSet, error) {
	d, err := shp.NewDecoder(filename)
	if err != nil {
		return nil, fmt.Errorf("gridclip: opening shapefile: %v", err)
	}
	defer d.Close()

	fs := new(FeatureSet)
	if b, err := ioutil.ReadFile(shpBase(filename) + ".prj"); err == nil {
		fs.Prj = strings.TrimSpace(string(b))
		if fs.SR, err = proj.Parse(fs.Prj); err != nil {
			return nil, fmt.Errorf("gridclip: reading %s.prj: %v", shpBase(filename), err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	var names []string
	for _, f := range d.Fields() {
		names = append(names, f.String())
	}
	for {
		g, fields, more := d.DecodeRowFields(names...)
		if !more {
			break
		}
		if err := d.Error(); err != nil {
			return nil, fmt.Errorf("gridclip: reading shapefile %s: %v", filename, err)
		}
		p, ok := g.(geom.Polygonal)
		if !ok {
			return nil, fmt.Errorf("gridclip: shapefile %s: record %d is %T, not a polygon",
				filename, len(fs.Features), g)
		}
		for k, v := range fields {
			fields[k] = strings.Trim(v, " \x00")
		}
		fs.Add(p, fields)
	}
	if err := d.Error(); err != nil {
		return nil, fmt.Errorf("gridclip: reading shapefile %s: %v", filename, err)
	}
	return fs, nil
}

// WriteShapefile writes the features in fs to a polygon shapefile with
// the named attributes as text fields. If fs.Prj is set, a .prj file
// is written as well.
func WriteShapefile(filename string, fs *FeatureSet, attributes ...string) error {
	if fs == nil {
		return fmt.Errorf("%w: nil feature set", ErrInvalidArgument)
	}
	base := shpBase(filename)
	for _, ext := range []string{".shp", ".prj", ".dbf", ".shx"} {
		os.Remove(base + ext)
	}
	fields := make([]goshp.Field, len(attributes))
	for i, a := range attributes {
		fields[i] = goshp.StringField(a, shpStringLength)
	}
	e, err := shp.NewEncoderFromFields(base+".shp", goshp.POLYGON, fields...)
	if err != nil {
		return fmt.Errorf("gridclip: creating shapefile: %v", err)
	}
	for i, f := range fs.Features {
		vals := make([]interface{}, len(attributes))
		for j, a := range attributes {
			vals[j] = f.Attributes[a]
		}
		if err := e.EncodeFields(f.Polygonal, vals...); err != nil {
			e.Close()
			return fmt.Errorf("gridclip: writing feature %d: %v", i, err)
		}
	}
	e.Close()
	return writePrj(base, fs.Prj)
}

func writePrj(base, prj string) error {
	if prj == "" {
		return nil
	}
	f, err := os.Create(base + ".prj")
	if err != nil {
		return fmt.Errorf("gridclip: creating prj file: %v", err)
	}
	fmt.Fprint(f, prj)
	return f.Close()
}

// ReadGeoJSON reads a single GeoJSON polygon or multipolygon geometry.
func ReadGeoJSON(r io.Reader) (*Feature, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	g, err := geojson.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("gridclip: decoding GeoJSON: %v", err)
	}
	p, ok := g.(geom.Polygonal)
	if !ok {
		return nil, fmt.Errorf("gridclip: GeoJSON geometry is %T, not a polygon", g)
	}
	return NewFeature(p, nil), nil
}

// WriteGeoJSON writes the geometry of f as GeoJSON.
func WriteGeoJSON(w io.Writer, f *Feature) error {
	if err := checkFeature(f); err != nil {
		return err
	}
	b, err := geojson.Encode(f.Polygonal)
	if err != nil {
		return fmt.Errorf("gridclip: encoding GeoJSON: %v", err)
	}
	_, err = w.Write(b)
	return err
}

// ParseWKT parses a POLYGON or MULTIPOLYGON in well-known text.
func ParseWKT(s string) (geom.Polygonal, error) {
	t, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, fmt.Errorf("gridclip: parsing WKT: %v", err)
	}
	switch g := t.(type) {
	case *gogeom.Polygon:
		return fromGoGeomPolygon(g), nil
	case *gogeom.MultiPolygon:
		o := make(geom.MultiPolygon, g.NumPolygons())
		for i := range o {
			o[i] = fromGoGeomPolygon(g.Polygon(i))
		}
		return o, nil
	default:
		return nil, fmt.Errorf("gridclip: WKT geometry is %T, not a polygon", t)
	}
}

func fromGoGeomPolygon(p *gogeom.Polygon) geom.Polygon {
	o := make(geom.Polygon, p.NumLinearRings())
	for i := range o {
		coords := p.LinearRing(i).Coords()
		ring := make([]geom.Point, len(coords))
		for j, c := range coords {
			ring[j] = geom.Point{X: c.X(), Y: c.Y()}
		}
		o[i] = ring
	}
	return o
}

func toGoGeomCoords(p geom.Polygon) [][]gogeom.Coord {
	o := make([][]gogeom.Coord, len(p))
	for i, r := range p {
		o[i] = make([]gogeom.Coord, len(r))
		for j, pt := range r {
			o[i][j] = gogeom.Coord{pt.X, pt.Y}
		}
	}
	return o
}

// FormatWKT returns p in well-known text.
func FormatWKT(p geom.Polygonal) (string, error) {
	var t gogeom.T
	var err error
	switch g := p.(type) {
	case geom.Polygon:
		t, err = gogeom.NewPolygon(gogeom.XY).SetCoords(toGoGeomCoords(g))
	default:
		polys := p.Polygons()
		coords := make([][][]gogeom.Coord, len(polys))
		for i, pp := range polys {
			coords[i] = toGoGeomCoords(pp)
		}
		t, err = gogeom.NewMultiPolygon(gogeom.XY).SetCoords(coords)
	}
	if err != nil {
		return "", fmt.Errorf("gridclip: formatting WKT: %v", err)
	}
	return wkt.Marshal(t)
}

// PolygonCoordinates returns the points of every ring of p, in order.
func PolygonCoordinates(p geom.Polygonal) []geom.Point {
	var o []geom.Point
	for _, pp := range p.Polygons() {
		for _, r := range pp {
			o = append(o, r...)
		}
	}
	return o
}

// CoordinatesFromWKT returns the points of the polygon or multipolygon s.
func CoordinatesFromWKT(s string) ([]geom.Point, error) {
	p, err := ParseWKT(s)
	if err != nil {
		return nil, err
	}
	return PolygonCoordinates(p), nil
}

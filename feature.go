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

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"
	"github.com/spf13/cast"
)

// Feature is a polygon with attribute data.
type Feature struct {
	geom.Polygonal
	Attributes map[string]string
}

// NewFeature returns a feature holding g. Rings of g that are not
// closed are closed.
func NewFeature(g geom.Polygonal, attributes map[string]string) *Feature {
	if attributes == nil {
		attributes = make(map[string]string)
	}
	return &Feature{Polygonal: closeRings(g), Attributes: attributes}
}

// closeRings returns g with the first point of every ring repeated at
// its end where it is missing.
func closeRings(g geom.Polygonal) geom.Polygonal {
	closeRing := func(r []geom.Point) []geom.Point {
		if len(r) > 0 && r[0] != r[len(r)-1] {
			r = append(r[:len(r):len(r)], r[0])
		}
		return r
	}
	switch t := g.(type) {
	case geom.Polygon:
		o := make(geom.Polygon, len(t))
		for i, r := range t {
			o[i] = closeRing(r)
		}
		return o
	case geom.MultiPolygon:
		o := make(geom.MultiPolygon, len(t))
		for i, p := range t {
			o[i] = closeRings(p).(geom.Polygon)
		}
		return o
	default:
		return g
	}
}

// Envelope returns the bounding rectangle of f.
func (f *Feature) Envelope() *geom.Bounds {
	return f.Polygonal.Bounds()
}

// Float returns the named attribute as a number.
func (f *Feature) Float(name string) (float64, error) {
	s, ok := f.Attributes[name]
	if !ok {
		return 0, fmt.Errorf("gridclip: feature has no attribute %q", name)
	}
	v, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, fmt.Errorf("gridclip: attribute %q: %v", name, err)
	}
	return v, nil
}

// FeatureSet is an ordered collection of features that share a
// spatial reference.
type FeatureSet struct {
	Features []*Feature

	// SR is the parsed spatial reference and Prj the text it was
	// parsed from (proj4 or WKT). Prj is written to .prj files.
	SR  *proj.SR
	Prj string
}

// Add appends a feature holding g with the given attributes.
func (fs *FeatureSet) Add(g geom.Polygonal, attributes map[string]string) *Feature {
	f := NewFeature(g, attributes)
	fs.Features = append(fs.Features, f)
	return f
}

// Bounds returns the combined envelope of the features.
func (fs *FeatureSet) Bounds() *geom.Bounds {
	b := geom.NewBounds()
	for _, f := range fs.Features {
		b.Extend(f.Bounds())
	}
	return b
}

// Transform returns a copy of fs with every geometry transformed by t.
// The copy's spatial reference is set to sr, parsed from prj.
func (fs *FeatureSet) Transform(t proj.Transformer, sr *proj.SR, prj string) (*FeatureSet, error) {
	o := &FeatureSet{SR: sr, Prj: prj, Features: make([]*Feature, len(fs.Features))}
	for i, f := range fs.Features {
		g, err := f.Polygonal.Transform(t)
		if err != nil {
			return nil, fmt.Errorf("gridclip: transforming feature %d: %v", i, err)
		}
		p, ok := g.(geom.Polygonal)
		if !ok {
			return nil, fmt.Errorf("gridclip: transformed feature %d is %T, not polygonal", i, g)
		}
		attrs := make(map[string]string, len(f.Attributes))
		for k, v := range f.Attributes {
			attrs[k] = v
		}
		o.Features[i] = &Feature{Polygonal: p, Attributes: attrs}
	}
	return o, nil
}

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

package srs

import (
	"fmt"
	"sync"

	"github.com/ctessum/geom/proj"
	"github.com/golang/groupcache/lru"
	"github.com/spatialmodel/gridclip/internal/hash"
)

// cacheSize is the number of parsed references and transformers kept.
const cacheSize = 64

type cache struct {
	mu sync.Mutex
	c  *lru.Cache
}

var defaultCache = &cache{c: lru.New(cacheSize)}

// sr returns the parsed reference for d.
func (c *cache) sr(d Definition) (*proj.SR, error) {
	if d.Proj4 == "" {
		return nil, fmt.Errorf("srs: %s has no proj4 string", d)
	}
	key := hash.Key("sr", d.Proj4)
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.c.Get(key); ok {
		return v.(*proj.SR), nil
	}
	sr, err := proj.Parse(d.Proj4)
	if err != nil {
		return nil, fmt.Errorf("srs: parsing %s: %v", d, err)
	}
	c.c.Add(key, sr)
	return sr, nil
}

// transformer returns a cached transformer from src to dst.
func (c *cache) transformer(src, dst Definition) (proj.Transformer, error) {
	key := hash.Key("transform", src.Proj4, dst.Proj4)
	c.mu.Lock()
	v, ok := c.c.Get(key)
	c.mu.Unlock()
	if ok {
		return v.(proj.Transformer), nil
	}
	t, err := newTransformer(src, dst)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.c.Add(key, t)
	c.mu.Unlock()
	return t, nil
}

// newTransformer builds a transformer that goes through WGS84 long/lat
// when the two references differ. Each leg has a WGS84 end, which keeps
// proj from looking up a WGS84 definition by name during datum shifts.
func newTransformer(src, dst Definition) (proj.Transformer, error) {
	srcSR, err := src.SR()
	if err != nil {
		return nil, err
	}
	dstSR, err := dst.SR()
	if err != nil {
		return nil, err
	}
	if srcSR.Equal(dstSR, 3) {
		return func(x, y float64) (float64, float64, error) { return x, y, nil }, nil
	}
	pivot, err := WGS84.SR()
	if err != nil {
		return nil, err
	}
	toLL, err := srcSR.NewTransform(pivot)
	if err != nil {
		return nil, fmt.Errorf("srs: transform %s to %s: %v", src, WGS84, err)
	}
	fromLL, err := pivot.NewTransform(dstSR)
	if err != nil {
		return nil, fmt.Errorf("srs: transform %s to %s: %v", WGS84, dst, err)
	}
	return func(x, y float64) (float64, float64, error) {
		lon, lat, err := toLL(x, y)
		if err != nil {
			return 0, 0, err
		}
		return fromLL(lon, lat)
	}, nil
}

// Transformer returns a function converting coordinates from src to
// dst. It may be reused for any number of points, e.g. with
// geom.T.Transform.
func Transformer(src, dst Definition) (proj.Transformer, error) {
	return defaultCache.transformer(Normalize(src), Normalize(dst))
}

// Transform converts one point from src to dst.
func Transform(src, dst Definition, x, y float64) (float64, float64, error) {
	t, err := Transformer(src, dst)
	if err != nil {
		return 0, 0, err
	}
	return t(x, y)
}

// LongLatFromRT90 converts RT90 2.5 gon V coordinates (easting,
// northing) to WGS84 longitude and latitude in degrees.
func LongLatFromRT90(x, y float64) (lon, lat float64, err error) {
	return Transform(RT90, WGS84, x, y)
}

// LongLatFromSweref99TM converts SWEREF99 TM coordinates to WGS84
// longitude and latitude in degrees.
func LongLatFromSweref99TM(x, y float64) (lon, lat float64, err error) {
	return Transform(SWEREF99TM, WGS84, x, y)
}

// RT90FromSweref99TM converts SWEREF99 TM coordinates to RT90 2.5 gon V.
func RT90FromSweref99TM(x, y float64) (float64, float64, error) {
	return Transform(SWEREF99TM, RT90, x, y)
}

// RT90FromLongLat converts WGS84 longitude and latitude to RT90 2.5 gon V.
func RT90FromLongLat(lon, lat float64) (float64, float64, error) {
	return Transform(WGS84, RT90, lon, lat)
}

// Sweref99TMFromRT90 converts RT90 2.5 gon V coordinates to SWEREF99 TM.
func Sweref99TMFromRT90(x, y float64) (float64, float64, error) {
	return Transform(RT90, SWEREF99TM, x, y)
}

// Sweref99TMFromLongLat converts WGS84 longitude and latitude to SWEREF99 TM.
func Sweref99TMFromLongLat(lon, lat float64) (float64, float64, error) {
	return Transform(WGS84, SWEREF99TM, lon, lat)
}

// LatitudeFromRT90 returns the WGS84 latitude of an RT90 point.
func LatitudeFromRT90(x, y float64) (float64, error) {
	return LatitudeFromCoordinate(RT90, x, y)
}

// LatitudeFromSweref99TM returns the WGS84 latitude of a SWEREF99 TM point.
func LatitudeFromSweref99TM(x, y float64) (float64, error) {
	return LatitudeFromCoordinate(SWEREF99TM, x, y)
}

// LatitudeFromCoordinate returns the WGS84 latitude of a point in d.
// The zero Definition means SWEREF99 TM.
func LatitudeFromCoordinate(d Definition, x, y float64) (float64, error) {
	if d.IsZero() {
		d = SWEREF99TM
	}
	_, lat, err := Transform(d, WGS84, x, y)
	return lat, err
}

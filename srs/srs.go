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

// Package srs holds named spatial reference definitions and converts
// coordinates between them. Definitions are immutable values; legacy
// codes and names resolve to their canonical record at lookup time.
package srs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ctessum/geom/proj"
)

// EPSG is the authority name used by the built-in definitions.
const EPSG = "EPSG"

// ErrUnknownProjection is returned when a code or name does not
// match any definition.
var ErrUnknownProjection = errors.New("srs: unknown projection")

// Definition describes one spatial reference system.
type Definition struct {
	Authority string `toml:"authority"`
	Code      int    `toml:"code"`
	Name      string `toml:"name"`
	Proj4     string `toml:"proj4"`
}

// String returns the authority and code, e.g. "EPSG:3006".
func (d Definition) String() string {
	return fmt.Sprintf("%s:%d", d.Authority, d.Code)
}

// IsZero reports whether d is the zero Definition.
func (d Definition) IsZero() bool {
	return d == Definition{}
}

// SR returns the parsed spatial reference. Parsed references are cached.
func (d Definition) SR() (*proj.SR, error) {
	return defaultCache.sr(d)
}

// Built-in definitions.
var (
	SWEREF99TM = Definition{
		Authority: EPSG, Code: 3006, Name: "SWEREF99 TM",
		Proj4: "+proj=utm +zone=33 +ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +units=m +no_defs",
	}
	RT90 = Definition{
		Authority: EPSG, Code: 3021, Name: "RT90 2.5 gon V",
		Proj4: "+proj=tmerc +lat_0=0 +lon_0=15.80827777777778 +k=1 +x_0=1500000 +y_0=0 +ellps=bessel " +
			"+towgs84=419.384,99.3335,591.345,0.850389,1.81728,-7.86224,-0.99496 +units=m +no_defs",
	}
	WGS84 = Definition{
		Authority: EPSG, Code: 4326, Name: "WGS 84",
		Proj4: "+proj=longlat +datum=WGS84 +no_defs",
	}
)

// sweref99Local returns a SWEREF99 local zone definition with
// central meridian lon0.
func sweref99Local(code int, name string, lon0 float64) Definition {
	return Definition{
		Authority: EPSG,
		Code:      code,
		Name:      "SWEREF99 " + name,
		Proj4: fmt.Sprintf("+proj=tmerc +lat_0=0 +lon_0=%g +k=1 +x_0=150000 +y_0=0 "+
			"+ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +units=m +no_defs", lon0),
	}
}

var builtins = []Definition{
	SWEREF99TM,
	sweref99Local(3007, "12 00", 12),
	sweref99Local(3008, "13 30", 13.5),
	sweref99Local(3009, "15 00", 15),
	sweref99Local(3010, "16 30", 16.5),
	sweref99Local(3011, "18 00", 18),
	sweref99Local(3012, "14 15", 14.25),
	sweref99Local(3013, "15 45", 15.75),
	sweref99Local(3014, "17 15", 17.25),
	sweref99Local(3015, "18 45", 18.75),
	sweref99Local(3016, "20 15", 20.25),
	sweref99Local(3017, "21 45", 21.75),
	sweref99Local(3018, "23 15", 23.25),
	RT90,
	WGS84,
}

// Legacy codes that have been used by mistake for a Swedish system.
var codeAliases = map[int]int{
	4619: 3006,
	2400: 3021,
}

// Legacy names, compared after normalizeName.
var nameAliases = map[string]int{
	"rt90_25_gon_w": 3021,
	"rt90 25 gon w": 3021,
	"sweref99_tm":   3006,
}

// swedish lists the codes SwedishProjection accepts.
var swedish = map[int]bool{
	3006: true, 3007: true, 3008: true, 3009: true, 3010: true, 3011: true,
	3012: true, 3013: true, 3014: true, 3015: true, 3016: true, 3017: true,
	3018: true, 3021: true,
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the built-in definition for an EPSG code.
// Legacy alias codes resolve to their canonical definition.
func Lookup(code int) (Definition, error) {
	return defaultRegistry.Lookup(code)
}

// LookupName returns the built-in definition with the given name.
// Matching is case-insensitive and accepts legacy names.
func LookupName(name string) (Definition, error) {
	return defaultRegistry.LookupName(name)
}

// Normalize returns the canonical definition for d. Definitions with
// a legacy authority code or name are replaced by the record they
// stand for; anything else is returned unchanged.
func Normalize(d Definition) Definition {
	return defaultRegistry.Normalize(d)
}

// SwedishProjection returns the definition of a Swedish reference
// system (SWEREF99 TM, the SWEREF99 local zones, or RT90 2.5 gon V).
func SwedishProjection(code int) (Definition, error) {
	if c, ok := codeAliases[code]; ok {
		code = c
	}
	if !swedish[code] {
		return Definition{}, fmt.Errorf("%w: %d is not a Swedish reference system", ErrUnknownProjection, code)
	}
	return Lookup(code)
}

// IsSameProjection reports whether a and b describe the same system:
// either their projection strings match, or their authority and code
// match after legacy aliases are resolved.
func IsSameProjection(a, b Definition) bool {
	if a.Proj4 != "" && a.Proj4 == b.Proj4 {
		return true
	}
	a, b = Normalize(a), Normalize(b)
	return a.Authority != "" && strings.EqualFold(a.Authority, b.Authority) && a.Code == b.Code
}

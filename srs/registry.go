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
	"io"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// Registry is a set of definitions indexed by code and name.
// It is safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	byCode      map[int]Definition
	byName      map[string]int
	codeAliases map[int]int
}

var defaultRegistry = NewRegistry()

// Default returns the registry used by the package-level lookup
// functions. Definitions added to it are visible to Lookup.
func Default() *Registry { return defaultRegistry }

// NewRegistry returns a registry holding the built-in definitions
// and legacy aliases.
func NewRegistry() *Registry {
	r := &Registry{
		byCode:      make(map[int]Definition),
		byName:      make(map[string]int),
		codeAliases: make(map[int]int),
	}
	for _, d := range builtins {
		r.add(d)
	}
	for from, to := range codeAliases {
		r.codeAliases[from] = to
	}
	for name, code := range nameAliases {
		r.byName[name] = code
	}
	return r
}

// Add registers d, replacing any definition with the same code.
func (r *Registry) Add(d Definition) error {
	if d.Code == 0 {
		return fmt.Errorf("srs: definition %q has no code", d.Name)
	}
	if d.Proj4 == "" {
		return fmt.Errorf("srs: definition %s has no proj4 string", d)
	}
	if d.Authority == "" {
		d.Authority = EPSG
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(d)
	return nil
}

func (r *Registry) add(d Definition) {
	r.byCode[d.Code] = d
	if d.Name != "" {
		r.byName[normalizeName(d.Name)] = d.Code
	}
}

// AddAlias makes code resolve to target.
func (r *Registry) AddAlias(code, target int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byCode[target]; !ok {
		return fmt.Errorf("%w: alias target %d", ErrUnknownProjection, target)
	}
	r.codeAliases[code] = target
	return nil
}

// Lookup returns the definition for code, resolving aliases.
func (r *Registry) Lookup(code int) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.codeAliases[code]; ok {
		code = c
	}
	d, ok := r.byCode[code]
	if !ok {
		return Definition{}, fmt.Errorf("%w: code %d", ErrUnknownProjection, code)
	}
	return d, nil
}

// LookupName returns the definition with the given name, resolving aliases.
func (r *Registry) LookupName(name string) (Definition, error) {
	r.mu.RLock()
	code, ok := r.byName[normalizeName(name)]
	r.mu.RUnlock()
	if !ok {
		return Definition{}, fmt.Errorf("%w: name %q", ErrUnknownProjection, name)
	}
	return r.Lookup(code)
}

// Normalize returns the registered definition that d refers to, or d
// itself if it is not known to the registry.
func (r *Registry) Normalize(d Definition) Definition {
	if d.Authority == "" || strings.EqualFold(d.Authority, EPSG) {
		r.mu.RLock()
		_, aliased := r.codeAliases[d.Code]
		r.mu.RUnlock()
		if aliased {
			if c, err := r.Lookup(d.Code); err == nil {
				return c
			}
		}
	}
	if d.Name != "" {
		name := normalizeName(d.Name)
		r.mu.RLock()
		code, ok := r.byName[name]
		r.mu.RUnlock()
		_, legacy := nameAliases[name]
		if ok && (legacy || d.Code == 0 || d.Code == code) {
			if c, err := r.Lookup(code); err == nil {
				return c
			}
		}
	}
	if d.Proj4 == "" && d.Code != 0 {
		if c, err := r.Lookup(d.Code); err == nil {
			return c
		}
	}
	return d
}

// catalog is the TOML layout read by LoadTOML.
type catalog struct {
	Projection []Definition `toml:"projection"`
	Alias      []struct {
		Code   int    `toml:"code"`
		Name   string `toml:"name"`
		Target int    `toml:"target"`
	} `toml:"alias"`
}

// LoadTOML adds the definitions and aliases in a TOML catalog, e.g.:
//
//	[[projection]]
//	authority = "EPSG"
//	code = 3847
//	name = "SWEREF99 / RT90 2.5 gon V emulation"
//	proj4 = "+proj=tmerc ..."
//
//	[[alias]]
//	code = 2400
//	target = 3021
func (r *Registry) LoadTOML(rd io.Reader) error {
	var c catalog
	if _, err := toml.DecodeReader(rd, &c); err != nil {
		return fmt.Errorf("srs: reading projection catalog: %v", err)
	}
	for _, d := range c.Projection {
		if err := r.Add(d); err != nil {
			return err
		}
	}
	for _, a := range c.Alias {
		if a.Name != "" {
			r.mu.Lock()
			_, ok := r.byCode[a.Target]
			if ok {
				r.byName[normalizeName(a.Name)] = a.Target
			}
			r.mu.Unlock()
			if !ok {
				return fmt.Errorf("%w: alias target %d", ErrUnknownProjection, a.Target)
			}
		}
		if a.Code != 0 {
			if err := r.AddAlias(a.Code, a.Target); err != nil {
				return err
			}
		}
	}
	return nil
}

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
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ctessum/geom"
	"github.com/gonum/floats"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/gridclip"
	"github.com/spatialmodel/gridclip/srs"
	"github.com/spf13/cast"
)

func init() {
	Log.Out = ioutil.Discard
}

func rect(x0, y0, x1, y1 float64) geom.Polygon {
	return geom.Polygon{{
		{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}, {X: x0, Y: y0},
	}}
}

// writeTestShapefile writes two adjacent 100 m squares with values 1
// and 2 in SWEREF99 TM and returns the file name.
func writeTestShapefile(t *testing.T, dir string) string {
	return writeSquares(t, filepath.Join(dir, "features.shp"), srs.SWEREF99TM.Proj4)
}

func writeSquares(t *testing.T, filename, prj string) string {
	fs := new(gridclip.FeatureSet)
	fs.Add(rect(0, 0, 100, 100), map[string]string{"DataValue": "1"})
	fs.Add(rect(100, 0, 200, 100), map[string]string{"DataValue": "2"})
	fs.Prj = prj
	if err := gridclip.WriteShapefile(filename, fs, "DataValue"); err != nil {
		t.Fatal(err)
	}
	return filename
}

func lines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestEndToEnd(t *testing.T) {
	dir := t.TempDir()
	shp := writeTestShapefile(t, dir)
	nc := filepath.Join(dir, "raster.nc")
	cells := filepath.Join(dir, "cells.shp")

	o := gridclip.DefaultRasterizeOptions(25, "DataValue")
	o.Mode = gridclip.CenterInside
	o.Log = Log
	if err := Rasterize(shp, nc, cells, o); err != nil {
		t.Fatal(err)
	}

	t.Run("value", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Classify(nc, "", Value, 2, false, &buf); err != nil {
			t.Fatal(err)
		}
		l := lines(buf.String())
		if len(l) != 16 {
			t.Fatalf("have %d cells, want 16:\n%s", len(l), buf.String())
		}
		if l[0] != "0,4,2" {
			t.Errorf("first line: have %q, want %q", l[0], "0,4,2")
		}
		for _, ll := range l {
			if !strings.HasSuffix(ll, ",2") {
				t.Errorf("line %q", ll)
			}
		}
	})

	for _, op := range []Operation{Boundary, NoData, Outside} {
		t.Run(op.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Classify(nc, shp, op, 0, false, &buf); err != nil {
				t.Fatal(err)
			}
			if l := lines(buf.String()); len(l) != 0 {
				t.Errorf("have %d cells, want none:\n%s", len(l), buf.String())
			}
		})
	}

	t.Run("sum", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Classify(nc, shp, Sum, 0, false, &buf); err != nil {
			t.Fatal(err)
		}
		if have, want := buf.String(), "0,16\n1,32\n"; have != want {
			t.Errorf("have %q, want %q", have, want)
		}
	})

	t.Run("legacy", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Classify(nc, shp, Sum, 0, true, &buf); err != nil {
			t.Fatal(err)
		}
		if have, want := buf.String(), "0,12\n1,18\n"; have != want {
			t.Errorf("have %q, want %q", have, want)
		}
	})

	t.Run("missing features", func(t *testing.T) {
		if err := Classify(nc, "", Boundary, 0, false, ioutil.Discard); err == nil {
			t.Error("want error")
		}
	})

	t.Run("other projection", func(t *testing.T) {
		rt90 := writeSquares(t, filepath.Join(dir, "rt90.shp"), srs.RT90.Proj4)
		for _, op := range []Operation{Boundary, Sum} {
			err := Classify(nc, rt90, op, 0, false, ioutil.Discard)
			if !errors.Is(err, ErrProjectionMismatch) {
				t.Errorf("%s: have error %v, want %v", op, err, ErrProjectionMismatch)
			}
		}
	})

	t.Run("no projection", func(t *testing.T) {
		bare := writeSquares(t, filepath.Join(dir, "bare.shp"), "")
		var buf bytes.Buffer
		if err := Classify(nc, bare, Sum, 0, false, &buf); err != nil {
			t.Fatal(err)
		}
		if have, want := buf.String(), "0,16\n1,32\n"; have != want {
			t.Errorf("have %q, want %q", have, want)
		}
	})

	t.Run("cells", func(t *testing.T) {
		fs, err := gridclip.ReadShapefile(cells)
		if err != nil {
			t.Fatal(err)
		}
		if len(fs.Features) != 32 {
			t.Errorf("have %d cells, want 32", len(fs.Features))
		}
		if fs.Prj != srs.SWEREF99TM.Proj4 {
			t.Errorf("projection: have %q", fs.Prj)
		}
	})

	t.Run("render", func(t *testing.T) {
		png := filepath.Join(dir, "raster.png")
		if err := Render(nc, shp, png, 100); err != nil {
			t.Fatal(err)
		}
		b, err := ioutil.ReadFile(png)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(b, []byte("\x89PNG")) {
			t.Error("output is not a PNG image")
		}
	})
}

func TestRasterizeErrors(t *testing.T) {
	dir := t.TempDir()
	o := gridclip.DefaultRasterizeOptions(25, "DataValue")
	if err := Rasterize("", filepath.Join(dir, "r.nc"), "", o); err == nil {
		t.Error("missing input: want error")
	}
	if err := Rasterize(writeTestShapefile(t, dir), filepath.Join(dir, "missing", "r.nc"), "", o); err == nil {
		t.Error("missing output directory: want error")
	}
}

func TestParseOperation(t *testing.T) {
	for _, op := range []Operation{Boundary, Value, NoData, Outside, Sum} {
		have, err := ParseOperation(strings.ToUpper(op.String()))
		if err != nil {
			t.Fatal(err)
		}
		if have != op {
			t.Errorf("have %v, want %v", have, op)
		}
	}
	if _, err := ParseOperation("inside"); !errors.Is(err, gridclip.ErrInvalidArgument) {
		t.Errorf("unknown operation: %v", err)
	}
}

func TestParseDefinition(t *testing.T) {
	for s, want := range map[string]srs.Definition{
		"EPSG:3006":     srs.SWEREF99TM,
		"epsg:3021":     srs.RT90,
		"3021":          srs.RT90,
		"2400":          srs.RT90,
		"rt90_25_gon_w": srs.RT90,
		"SWEREF99 TM":   srs.SWEREF99TM,
	} {
		have, err := ParseDefinition(s)
		if err != nil {
			t.Errorf("%q: %v", s, err)
			continue
		}
		if have != want {
			t.Errorf("%q: have %v, want %v", s, have, want)
		}
	}
	if _, err := ParseDefinition("EPSG:1"); !errors.Is(err, srs.ErrUnknownProjection) {
		t.Errorf("unknown code: %v", err)
	}
}

func TestReproject(t *testing.T) {
	const x, y = 1628294., 6580994.
	var buf bytes.Buffer
	if err := Reproject("EPSG:3021", "EPSG:3006", x, y, &buf); err != nil {
		t.Fatal(err)
	}
	parts := strings.Split(strings.TrimSpace(buf.String()), ",")
	if len(parts) != 2 {
		t.Fatalf("output %q", buf.String())
	}
	wantX, wantY, err := srs.Sweref99TMFromRT90(x, y)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []float64{wantX, wantY} {
		have := cast.ToFloat64(parts[i])
		if !floats.EqualWithinAbsOrRel(have, want, 1.e-6, 1.e-9) {
			t.Errorf("coordinate %d: have %g, want %g", i, have, want)
		}
	}
}

func TestVersion(t *testing.T) {
	var buf bytes.Buffer
	Root.SetOutput(&buf)
	defer Root.SetOutput(nil)
	Root.SetArgs([]string{"version"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	if want := "GridClip v" + gridclip.Version; !strings.Contains(buf.String(), want) {
		t.Errorf("have %q, want %q", buf.String(), want)
	}
}

func TestSetConfigLogLevel(t *testing.T) {
	defer func() {
		Cfg.Set("log_level", "info")
		Log.SetLevel(logrus.InfoLevel)
	}()
	Cfg.Set("log_level", "warning")
	if err := setConfig(); err != nil {
		t.Fatal(err)
	}
	if Log.Level != logrus.WarnLevel {
		t.Errorf("have level %v, want %v", Log.Level, logrus.WarnLevel)
	}
	Cfg.Set("log_level", "loud")
	if err := setConfig(); err == nil {
		t.Error("invalid level: want error")
	}
}

func TestProjectionsCatalog(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "projections.toml")
	catalog := `
[[projection]]
code = 3152
name = "ST74"
proj4 = "+proj=tmerc +lat_0=0 +lon_0=18.0328332 +k=0.99999506 +x_0=100182.7406 +y_0=-6500620.1207 +ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +units=m +no_defs"
`
	if err := ioutil.WriteFile(filename, []byte(catalog), os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if err := loadProjections(filename); err != nil {
		t.Fatal(err)
	}
	d, err := ParseDefinition("EPSG:3152")
	if err != nil {
		t.Fatal(err)
	}
	if d.Name != "ST74" {
		t.Errorf("name: have %q", d.Name)
	}
	if err := loadProjections(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing catalog: want error")
	}
}

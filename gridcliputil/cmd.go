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

// Package gridcliputil holds the command-line interface of GridClip.
package gridcliputil

import (
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/gridclip"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// Log is the logger used by the commands.
var Log = logrus.StandardLogger()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "log_level",
			usage: `
              log_level sets the logging level: debug, info, warning or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "projections",
			usage: `
              projections specifies a TOML file of additional spatial reference
              definitions and code aliases.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "input.shp",
			usage: `
              input.shp is the polygon shapefile to rasterize.`,
			shorthand:  "i",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{rasterizeCmd.Flags()},
		},
		{
			name: "field",
			usage: `
              field is the shapefile attribute holding the value to burn
              into the raster.`,
			defaultVal: "DataValue",
			flagsets:   []*pflag.FlagSet{rasterizeCmd.Flags()},
		},
		{
			name: "cell_size",
			usage: `
              cell_size is the width and height of the raster cells, in the
              units of the shapefile's projection.`,
			defaultVal: 25.0,
			flagsets:   []*pflag.FlagSet{rasterizeCmd.Flags()},
		},
		{
			name: "mode",
			usage: `
              mode selects the cells a feature is burned into: all_touched
              burns every cell that shares area with the feature, and
              center_inside burns the cells whose centers are inside it.`,
			defaultVal: gridclip.AllTouched.String(),
			flagsets:   []*pflag.FlagSet{rasterizeCmd.Flags()},
		},
		{
			name: "aligned",
			usage: `
              aligned moves the raster edges outward to multiples of cell_size.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{rasterizeCmd.Flags()},
		},
		{
			name: "nodata",
			usage: `
              nodata is the value of cells that no feature is burned into.`,
			defaultVal: gridclip.DefaultNoData,
			flagsets:   []*pflag.FlagSet{rasterizeCmd.Flags()},
		},
		{
			name: "output.nc",
			usage: `
              output.nc is the NetCDF file the raster is written to.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{rasterizeCmd.Flags()},
		},
		{
			name: "output.shp",
			usage: `
              output.shp, if set, is a shapefile to write the cells that
              hold data to.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{rasterizeCmd.Flags()},
		},
		{
			name: "raster.nc",
			usage: `
              raster.nc is a raster written by the rasterize command.`,
			shorthand:  "r",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{classifyCmd.Flags(), renderCmd.Flags()},
		},
		{
			name: "features.shp",
			usage: `
              features.shp is a polygon shapefile to classify the raster
              cells against, or to draw on top of the raster.`,
			shorthand:  "f",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{classifyCmd.Flags(), renderCmd.Flags()},
		},
		{
			name: "operation",
			usage: `
              operation is the classification to run. boundary selects cells
              that intersect a feature but whose centers are not inside it;
              value selects cells holding the integer given by --value;
              nodata selects cells without data that intersect a feature;
              outside selects cells with data in a feature's envelope that
              do not intersect it; sum totals the data in each feature's
              envelope.`,
			defaultVal: "boundary",
			flagsets:   []*pflag.FlagSet{classifyCmd.Flags()},
		},
		{
			name: "value",
			usage: `
              value is the cell value selected by the value operation.`,
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{classifyCmd.Flags()},
		},
		{
			name: "legacy_range",
			usage: `
              legacy_range leaves out the last row and column of every
              candidate range, matching classifications made by older tools.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{classifyCmd.Flags()},
		},
		{
			name: "output",
			usage: `
              output is the file results are written to. If empty, results
              are written to standard output.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{classifyCmd.Flags(), reprojectCmd.Flags()},
		},
		{
			name: "from",
			usage: `
              from is the spatial reference of the input coordinate, as an
              EPSG code (3021 or EPSG:3021) or a name.`,
			defaultVal: "EPSG:3021",
			flagsets:   []*pflag.FlagSet{reprojectCmd.Flags()},
		},
		{
			name: "to",
			usage: `
              to is the spatial reference to convert the coordinate to.`,
			defaultVal: "EPSG:3006",
			flagsets:   []*pflag.FlagSet{reprojectCmd.Flags()},
		},
		{
			name: "x",
			usage: `
              x is the easting or longitude of the input coordinate.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{reprojectCmd.Flags()},
		},
		{
			name: "y",
			usage: `
              y is the northing or latitude of the input coordinate.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{reprojectCmd.Flags()},
		},
		{
			name: "output.png",
			usage: `
              output.png is the image file to write.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "width",
			usage: `
              width is the image width in pixels.`,
			defaultVal: 1000,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("GRIDCLIP")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				set.Bool(option.name, option.defaultVal.(bool), option.usage)
			case int:
				set.Int(option.name, option.defaultVal.(int), option.usage)
			case float64:
				set.Float64(option.name, option.defaultVal.(float64), option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(rasterizeCmd)
	Root.AddCommand(classifyCmd)
	Root.AddCommand(reprojectCmd)
	Root.AddCommand(renderCmd)
}

// setConfig reads in the configuration file, if there is one, and
// applies the logging and projection settings.
func setConfig() error {
	if cfgpath := os.ExpandEnv(Cfg.GetString("config")); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("gridclip: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("log_level"))
	if err != nil {
		return fmt.Errorf("gridclip: %v", err)
	}
	Log.SetLevel(level)
	return loadProjections(os.ExpandEnv(Cfg.GetString("projections")))
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "gridclip",
	Short: "Rasterize polygons and classify raster cells.",
	Long: `GridClip rasterizes polygon shapefiles onto regular grids, classifies
the grid cells against polygon features, and converts coordinates between
the Swedish national spatial reference systems.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'GRIDCLIP_var' where 'var' is the
name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of GridClip.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("GridClip v%s\n", gridclip.Version)
	},
	DisableAutoGenTag: true,
}

var rasterizeCmd = &cobra.Command{
	Use:   "rasterize",
	Short: "Rasterize a polygon shapefile",
	Long: `rasterize burns an attribute of the polygons in a shapefile into a
regular grid and saves the grid as NetCDF. Where features overlap, the one
that comes last in the shapefile wins.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := gridclip.ParseMode(Cfg.GetString("mode"))
		if err != nil {
			return err
		}
		o := gridclip.DefaultRasterizeOptions(Cfg.GetFloat64("cell_size"), Cfg.GetString("field"))
		o.Mode = mode
		o.Aligned = Cfg.GetBool("aligned")
		o.NoData = Cfg.GetFloat64("nodata")
		o.Log = Log
		return Rasterize(
			os.ExpandEnv(Cfg.GetString("input.shp")),
			os.ExpandEnv(Cfg.GetString("output.nc")),
			os.ExpandEnv(Cfg.GetString("output.shp")),
			o,
		)
	},
	DisableAutoGenTag: true,
}

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify raster cells against polygons",
	Long: `classify selects cells of a raster by value or by their relation to
the polygons in a shapefile, and writes one 'row,col,value' line per
selected cell. The sum operation writes one 'feature,sum' line per feature.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := ParseOperation(Cfg.GetString("operation"))
		if err != nil {
			return err
		}
		w, closeOut, err := outputWriter(os.ExpandEnv(Cfg.GetString("output")), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		err = Classify(
			os.ExpandEnv(Cfg.GetString("raster.nc")),
			os.ExpandEnv(Cfg.GetString("features.shp")),
			op, Cfg.GetInt("value"), Cfg.GetBool("legacy_range"), w,
		)
		if cerr := closeOut(); err == nil {
			err = cerr
		}
		return err
	},
	DisableAutoGenTag: true,
}

var reprojectCmd = &cobra.Command{
	Use:   "reproject",
	Short: "Convert a coordinate between spatial references",
	Long: `reproject converts the coordinate given by --x and --y from the
spatial reference --from to --to and prints the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, closeOut, err := outputWriter(os.ExpandEnv(Cfg.GetString("output")), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		err = Reproject(Cfg.GetString("from"), Cfg.GetString("to"),
			Cfg.GetFloat64("x"), Cfg.GetFloat64("y"), w)
		if cerr := closeOut(); err == nil {
			err = cerr
		}
		return err
	},
	DisableAutoGenTag: true,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw a raster as a PNG image",
	Long: `render draws the cells of a raster that hold data, colored by value,
with the outlines of the polygons in --features.shp on top.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Render(
			os.ExpandEnv(Cfg.GetString("raster.nc")),
			os.ExpandEnv(Cfg.GetString("features.shp")),
			os.ExpandEnv(Cfg.GetString("output.png")),
			Cfg.GetInt("width"),
		)
	},
	DisableAutoGenTag: true,
}

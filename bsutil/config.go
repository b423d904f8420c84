/*
Copyright © 2026 the backscatter authors.
This file is part of backscatter.

backscatter is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

backscatter is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with backscatter.  If not, see <http://www.gnu.org/licenses/>.
*/

package bsutil

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/backscatter"
	"github.com/spf13/cast"
)

// expandPath expands environment variables in a file path.
func expandPath(p string) string { return os.ExpandEnv(p) }

// outputFormats maps output file extensions to formats.
var outputFormats = map[string]string{
	".csv":  "csv",
	".xlsx": "xlsx",
	".png":  "png",
	".svg":  "svg",
	".pdf":  "pdf",
}

// outputFormat returns the output format implied by the extension of f.
func outputFormat(f string) (string, error) {
	ext := strings.ToLower(filepath.Ext(f))
	format, ok := outputFormats[ext]
	if !ok {
		return "", fmt.Errorf("bsutil: unsupported output file extension %q in %s; use .csv, .xlsx, .png, .svg or .pdf", ext, f)
	}
	return format, nil
}

// checkOutputFile makes sure that the output file is specified, its
// directory exists and its format is supported, and expands any
// environment variables.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`bsutil: you need to specify an output file configuration variable (for example: OutputFile="output.csv")`)
	}
	f = expandPath(f)
	if _, err := outputFormat(f); err != nil {
		return f, err
	}
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("bsutil: the OutputFile directory doesn't exist: %v", err)
	}
	return f, nil
}

// toFloat64SliceE converts a configuration value to a slice of floats.
// The value may be a list from a configuration file or a JSON array
// string from the command line. Empty values give a nil slice.
func toFloat64SliceE(s interface{}) ([]float64, error) {
	switch v := s.(type) {
	case nil:
		return nil, nil
	case []float64:
		return v, nil
	case []interface{}:
		o := make([]float64, len(v))
		for i, val := range v {
			f, err := cast.ToFloat64E(val)
			if err != nil {
				return nil, err
			}
			o[i] = f
		}
		return o, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		var o []float64
		if err := json.Unmarshal([]byte(v), &o); err != nil {
			return nil, err
		}
		return o, nil
	default:
		return nil, fmt.Errorf("invalid type %T", s)
	}
}

// getFloat64E returns the value of key as a float. Unlike
// viper.GetFloat64, values that can't be converted are an error
// rather than zero. Unset keys are zero.
func getFloat64E(cfg *viper.Viper, key string) (float64, error) {
	v := cfg.Get(key)
	if v == nil {
		return 0, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("bsutil: %s: %v", key, err)
	}
	return f, nil
}

// getIntE is the integer version of getFloat64E.
func getIntE(cfg *viper.Viper, key string) (int, error) {
	v := cfg.Get(key)
	if v == nil {
		return 0, nil
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("bsutil: %s: %v", key, err)
	}
	return i, nil
}

// AngleConfig reads the incidence angles from a viper configuration.
func AngleConfig(cfg *viper.Viper) (*backscatter.AngleSeries, error) {
	degrees, err := toFloat64SliceE(cfg.Get("Angles.Degrees"))
	if err != nil {
		return nil, fmt.Errorf("bsutil: parsing Angles.Degrees: %v", err)
	}
	var a *backscatter.AngleSeries
	if len(degrees) > 0 {
		a = backscatter.NewAngleSeries(degrees)
	} else {
		min, err := getFloat64E(cfg, "Angles.Min")
		if err != nil {
			return nil, err
		}
		max, err := getFloat64E(cfg, "Angles.Max")
		if err != nil {
			return nil, err
		}
		n, err := getIntE(cfg, "Angles.N")
		if err != nil {
			return nil, err
		}
		a, err = backscatter.AngleSpan(min, max, n)
		if err != nil {
			return nil, err
		}
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// CalibrationsConfig returns the built-in calibrations merged with any
// calibrations in the file named by the CalibrationFile variable.
func CalibrationsConfig(cfg *viper.Viper) (backscatter.Calibrations, error) {
	cals := backscatter.DefaultCalibrations()
	fname := cfg.GetString("CalibrationFile")
	if fname == "" {
		return cals, nil
	}
	f, err := os.Open(expandPath(fname))
	if err != nil {
		return nil, fmt.Errorf("bsutil: opening calibration file: %v", err)
	}
	defer f.Close()
	extra, err := backscatter.LoadCalibrations(f)
	if err != nil {
		return nil, fmt.Errorf("bsutil: reading %s: %w", fname, err)
	}
	cals.Merge(extra)
	return cals, nil
}

// ScenarioConfig unmarshals a viper configuration into a validated
// model scenario.
func ScenarioConfig(cfg *viper.Viper) (*backscatter.Scenario, error) {
	cals, err := CalibrationsConfig(cfg)
	if err != nil {
		return nil, err
	}
	cal, err := cals.Get(cfg.GetString("Calibration"))
	if err != nil {
		return nil, err
	}
	angles, err := AngleConfig(cfg)
	if err != nil {
		return nil, err
	}
	s := &backscatter.Scenario{Calibration: cal, Angles: angles}
	for _, v := range []struct {
		key string
		val *float64
	}{
		{"SMC", &s.SMC},
		{"Alpha", &s.Alpha},
		{"Tau", &s.Tau},
	} {
		if *v.val, err = getFloat64E(cfg, v.key); err != nil {
			return nil, err
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// PlotSize is the size of plot output, in inches.
type PlotSize struct {
	Width, Height float64
}

// plotSize reads the plot size from a viper configuration and checks
// that it is positive.
func plotSize(cfg *viper.Viper) (PlotSize, error) {
	var size PlotSize
	var err error
	if size.Width, err = getFloat64E(cfg, "PlotWidth"); err != nil {
		return size, err
	}
	if size.Height, err = getFloat64E(cfg, "PlotHeight"); err != nil {
		return size, err
	}
	if !(size.Width > 0 && size.Height > 0) || math.IsInf(size.Width, 1) || math.IsInf(size.Height, 1) {
		return size, fmt.Errorf("bsutil: PlotWidth and PlotHeight must be finite and > 0 but are %g and %g", size.Width, size.Height)
	}
	return size, nil
}

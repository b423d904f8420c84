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
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/backscatter"
)

func TestScenarioConfigFile(t *testing.T) {
	testdata, err := filepath.Abs("testdata")
	if err != nil {
		t.Fatal(err)
	}
	os.Setenv("BACKSCATTER_TESTDATA", testdata)
	defer os.Unsetenv("BACKSCATTER_TESTDATA")

	cfg := viper.New()
	cfg.SetConfigFile("testdata/config.toml")
	if err := cfg.ReadInConfig(); err != nil {
		t.Fatal(err)
	}
	s, err := ScenarioConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if s.Calibration.Name != "C-VV" || s.Calibration.C3 != 2.5 {
		t.Errorf("calibration: %v", s.Calibration)
	}
	if want := []float64{20, 30, 40, 50}; !reflect.DeepEqual(s.Angles.Degrees, want) {
		t.Errorf("angles: want %v, got %v", want, s.Angles.Degrees)
	}
	if s.SMC != 25 || s.Alpha != 0.12 || s.Tau != 0.3 {
		t.Errorf("scalars: %+v", s)
	}
}

func TestAngleConfig(t *testing.T) {
	cfg := viper.New()
	cfg.Set("Angles.Min", 20.0)
	cfg.Set("Angles.Max", 40.0)
	cfg.Set("Angles.N", 3)
	a, err := AngleConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if want := []float64{20, 30, 40}; !reflect.DeepEqual(a.Degrees, want) {
		t.Errorf("span: want %v, got %v", want, a.Degrees)
	}

	cfg.Set("Angles.Degrees", "[5, 10]")
	a, err = AngleConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if want := []float64{5, 10}; !reflect.DeepEqual(a.Degrees, want) {
		t.Errorf("list: want %v, got %v", want, a.Degrees)
	}

	cfg.Set("Angles.Degrees", []interface{}{int64(0), 10.0})
	if _, err = AngleConfig(cfg); !errors.Is(err, backscatter.ErrDomain) {
		t.Errorf("want ErrDomain, got %v", err)
	}

	cfg.Set("Angles.Degrees", "[5, ")
	if _, err = AngleConfig(cfg); err == nil {
		t.Error("expected a parse error")
	}
}

func TestToFloat64SliceE(t *testing.T) {
	tests := []struct {
		in   interface{}
		want []float64
	}{
		{in: nil, want: nil},
		{in: "", want: nil},
		{in: "[1.5, 2]", want: []float64{1.5, 2}},
		{in: []interface{}{int64(3), 4.5, "6"}, want: []float64{3, 4.5, 6}},
		{in: []float64{7}, want: []float64{7}},
	}
	for _, test := range tests {
		got, err := toFloat64SliceE(test.in)
		if err != nil {
			t.Errorf("%#v: %v", test.in, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%#v: want %v, got %v", test.in, test.want, got)
		}
	}
	if _, err := toFloat64SliceE(42); err == nil {
		t.Error("expected an error for an int")
	}
}

func TestOutputFormat(t *testing.T) {
	for f, want := range map[string]string{
		"a.csv":   "csv",
		"b.XLSX":  "xlsx",
		"c/d.png": "png",
		"e.svg":   "svg",
		"f.pdf":   "pdf",
	} {
		got, err := outputFormat(f)
		if err != nil || got != want {
			t.Errorf("%s: want %s, got %s (%v)", f, want, got, err)
		}
	}
	if _, err := outputFormat("g.shp"); err == nil {
		t.Error("expected an error for .shp")
	}
}

func TestScenarioConfigBadEnv(t *testing.T) {
	os.Setenv("BACKSCATTER_SMC", "wet")
	defer os.Unsetenv("BACKSCATTER_SMC")
	cfg := newConfig()
	cfg.Set("Calibration", backscatter.DefaultCalibration)
	cfg.Set("Angles.Degrees", "[30]")
	if _, err := ScenarioConfig(cfg); err == nil {
		t.Error("SMC=wet should not be read as zero")
	}

	os.Setenv("BACKSCATTER_SMC", "12.5")
	s, err := ScenarioConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if s.SMC != 12.5 {
		t.Errorf("SMC: want 12.5, got %g", s.SMC)
	}
}

func TestPlotSize(t *testing.T) {
	cfg := viper.New()
	cfg.Set("PlotWidth", "5")
	cfg.Set("PlotHeight", 3)
	size, err := plotSize(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if size != (PlotSize{Width: 5, Height: 3}) {
		t.Errorf("got %+v", size)
	}
	cfg.Set("PlotHeight", 0)
	if _, err := plotSize(cfg); err == nil {
		t.Error("expected an error for zero height")
	}
	cfg.Set("PlotHeight", "tall")
	if _, err := plotSize(cfg); err == nil {
		t.Error("expected an error for text height")
	}
}

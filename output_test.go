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

package backscatter

import (
	"bytes"
	"encoding/csv"
	"math"
	"reflect"
	"strconv"
	"testing"

	"github.com/tealeg/xlsx"
)

func TestWriteCSV(t *testing.T) {
	s := testScenario()
	r, err := s.Cloud()
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := WriteCSV(&b, r.Table(s.Angles)); err != nil {
		t.Fatal(err)
	}
	recs, err := csv.NewReader(&b).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"theta_deg", "theta_rad", "Canopy", "Volume", "Soil"}; !reflect.DeepEqual(recs[0], want) {
		t.Errorf("header: want %v, got %v", want, recs[0])
	}
	if len(recs) != s.Angles.Len()+1 {
		t.Fatalf("want %d rows, got %d", s.Angles.Len()+1, len(recs))
	}
	for i, rec := range recs[1:] {
		deg, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			t.Fatal(err)
		}
		canopy, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			t.Fatal(err)
		}
		if deg != s.Angles.Degrees[i] || canopy != r.Canopy[i] {
			t.Errorf("row %d: %v", i, rec)
		}
	}
}

func TestWriteCSVNonFinite(t *testing.T) {
	a := NewAngleSeries([]float64{30})
	soil := BareSoilModel(a.Radians[0], 10)
	tbl := (&Result{Canopy: []float64{soil}, Volume: []float64{math.Inf(-1)}, Soil: []float64{soil}}).Table(a)
	var b bytes.Buffer
	if err := WriteCSV(&b, tbl); err != nil {
		t.Fatal(err)
	}
	recs, err := csv.NewReader(&b).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if recs[1][3] != "-Inf" {
		t.Errorf("volume: want -Inf, got %s", recs[1][3])
	}
}

func TestTableCheck(t *testing.T) {
	a := NewAngleSeries([]float64{10, 20})
	bad := SoilTable(a, []float64{-5})
	if err := bad.Check(); err == nil {
		t.Error("expected a length error")
	}
	if err := WriteCSV(&bytes.Buffer{}, bad); err == nil {
		t.Error("WriteCSV should check the table")
	}

	short := SoilTable(&AngleSeries{Degrees: []float64{10, 20}, Radians: []float64{0.1}}, []float64{-5, -6})
	if err := short.Check(); err == nil {
		t.Error("expected a radians length error")
	}
	if err := WriteCSV(&bytes.Buffer{}, short); err == nil {
		t.Error("WriteCSV should reject mismatched radians")
	}
}

func TestWriteXLSX(t *testing.T) {
	s := testScenario()
	soil, err := s.BareSoil()
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := WriteXLSX(&b, s, SoilTable(s.Angles, soil)); err != nil {
		t.Fatal(err)
	}
	f, err := xlsx.OpenBinary(b.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	rs, ok := f.Sheet[ResultSheet]
	if !ok {
		t.Fatalf("missing sheet %s", ResultSheet)
	}
	if len(rs.Rows) != s.Angles.Len()+1 {
		t.Fatalf("want %d rows, got %d", s.Angles.Len()+1, len(rs.Rows))
	}
	if h := rs.Rows[0].Cells[2].Value; h != BareSoilColumn {
		t.Errorf("header: want %s, got %s", BareSoilColumn, h)
	}
	v, err := strconv.ParseFloat(rs.Rows[1].Cells[2].Value, 64)
	if err != nil {
		t.Fatal(err)
	}
	if different(v, soil[0], 1e-9) {
		t.Errorf("first value: want %g, got %g", soil[0], v)
	}

	ps, ok := f.Sheet[ParameterSheet]
	if !ok {
		t.Fatalf("missing sheet %s", ParameterSheet)
	}
	params := make(map[string]string)
	for _, row := range ps.Rows {
		params[row.Cells[0].Value] = row.Cells[1].Value
	}
	if params["Calibration"] != DefaultCalibration {
		t.Errorf("calibration: %q", params["Calibration"])
	}
	if params["Scenario"] == "" {
		t.Error("missing scenario key")
	}
}

func TestWritePlot(t *testing.T) {
	s := testScenario()
	r, err := s.Cloud()
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := WritePlot(&b, "png", 4, 3, s, r.Table(s.Angles)); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG image")
	}
}

func TestPlotTableSkipsNonFinite(t *testing.T) {
	s := testScenario()
	s.Tau = 0
	r, err := s.Cloud()
	if err != nil {
		t.Fatal(err)
	}
	// The volume term is -Inf everywhere without vegetation.
	if _, err := PlotTable(s, r.Table(s.Angles)); err != nil {
		t.Fatal(err)
	}
	inf := []float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	if _, err := PlotTable(s, SoilTable(s.Angles, inf)); err == nil {
		t.Error("expected an error when there is nothing to plot")
	}
}

func TestWritePlotSize(t *testing.T) {
	s := testScenario()
	soil, err := s.BareSoil()
	if err != nil {
		t.Fatal(err)
	}
	for _, size := range [][2]float64{{0, 0}, {-3, -2}, {4, 0}, {math.NaN(), 3}, {math.Inf(1), 3}} {
		var b bytes.Buffer
		if err := WritePlot(&b, "png", size[0], size[1], s, SoilTable(s.Angles, soil)); err == nil {
			t.Errorf("%gx%g: expected an error", size[0], size[1])
		}
	}
}

func TestFiniteRange(t *testing.T) {
	min, max, ok := FiniteRange([]float64{math.Inf(-1), -3, math.NaN(), 7, 2})
	if !ok || min != -3 || max != 7 {
		t.Errorf("got %g, %g, %v", min, max, ok)
	}
	if _, _, ok := FiniteRange([]float64{math.Inf(-1)}); ok {
		t.Error("no finite values should not be ok")
	}
}

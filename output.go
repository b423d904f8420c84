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
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spatialmodel/backscatter/internal/hash"
	"github.com/tealeg/xlsx"
	"gonum.org/v1/gonum/floats"
)

// BareSoilColumn is the column name of bare-soil model output.
const BareSoilColumn = "BareSoil"

// Table holds named backscatter series [dB] aligned with a set of angles.
type Table struct {
	Angles  *AngleSeries
	Names   []string
	Columns [][]float64
}

// Table returns r as a table with columns Canopy, Volume and Soil.
func (r *Result) Table(a *AngleSeries) *Table {
	return &Table{
		Angles:  a,
		Names:   ComponentNames,
		Columns: [][]float64{r.Canopy, r.Volume, r.Soil},
	}
}

// SoilTable returns bare-soil backscatter as a single-column table.
func SoilTable(a *AngleSeries, soil []float64) *Table {
	return &Table{
		Angles:  a,
		Names:   []string{BareSoilColumn},
		Columns: [][]float64{soil},
	}
}

// Check makes sure every column is aligned with the angles.
func (t *Table) Check() error {
	if t.Angles == nil {
		return fmt.Errorf("backscatter: table has no angles")
	}
	if len(t.Angles.Radians) != t.Angles.Len() {
		return fmt.Errorf("backscatter: table has %d angles in degrees but %d in radians",
			t.Angles.Len(), len(t.Angles.Radians))
	}
	if len(t.Names) != len(t.Columns) {
		return fmt.Errorf("backscatter: table has %d names but %d columns", len(t.Names), len(t.Columns))
	}
	for i, c := range t.Columns {
		if len(c) != t.Angles.Len() {
			return fmt.Errorf("backscatter: column %s has %d values but there are %d angles",
				t.Names[i], len(c), t.Angles.Len())
		}
	}
	return nil
}

// FiniteRange returns the minimum and maximum of the finite values in x.
// ok is false if x has no finite values.
func FiniteRange(x []float64) (min, max float64, ok bool) {
	f := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			f = append(f, v)
		}
	}
	if len(f) == 0 {
		return math.NaN(), math.NaN(), false
	}
	return floats.Min(f), floats.Max(f), true
}

func (t *Table) header() []string {
	return append([]string{"theta_deg", "theta_rad"}, t.Names...)
}

func (t *Table) row(i int) []float64 {
	o := []float64{t.Angles.Degrees[i], t.Angles.Radians[i]}
	for _, c := range t.Columns {
		o = append(o, c[i])
	}
	return o
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCSV writes the table as comma-separated values, one row per
// incidence angle.
func WriteCSV(w io.Writer, t *Table) error {
	if err := t.Check(); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(t.header()); err != nil {
		return fmt.Errorf("backscatter: writing csv: %v", err)
	}
	for i := 0; i < t.Angles.Len(); i++ {
		vals := t.row(i)
		rec := make([]string, len(vals))
		for j, v := range vals {
			rec[j] = formatFloat(v)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("backscatter: writing csv: %v", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Sheet names used by WriteXLSX.
const (
	ResultSheet    = "Backscatter"
	ParameterSheet = "Parameters"
)

// setFloat writes v to c. Spreadsheets have no NaN or infinity,
// so those are written as text.
func setFloat(c *xlsx.Cell, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		c.SetString(formatFloat(v))
		return
	}
	c.SetFloat(v)
}

// WriteXLSX writes the table to an Excel workbook, with a second sheet
// listing the scenario parameters that produced it.
func WriteXLSX(w io.Writer, s *Scenario, t *Table) error {
	if err := t.Check(); err != nil {
		return err
	}
	f := xlsx.NewFile()
	rs, err := f.AddSheet(ResultSheet)
	if err != nil {
		return fmt.Errorf("backscatter: writing xlsx: %v", err)
	}
	row := rs.AddRow()
	for _, h := range t.header() {
		row.AddCell().SetString(h)
	}
	for i := 0; i < t.Angles.Len(); i++ {
		row = rs.AddRow()
		for _, v := range t.row(i) {
			setFloat(row.AddCell(), v)
		}
	}

	ps, err := f.AddSheet(ParameterSheet)
	if err != nil {
		return fmt.Errorf("backscatter: writing xlsx: %v", err)
	}
	addText := func(name, val string) {
		row := ps.AddRow()
		row.AddCell().SetString(name)
		row.AddCell().SetString(val)
	}
	addNum := func(name string, val float64) {
		row := ps.AddRow()
		row.AddCell().SetString(name)
		setFloat(row.AddCell(), val)
	}
	addText("Calibration", s.Calibration.Name)
	addNum("FrequencyGHz", s.Calibration.FrequencyGHz)
	addText("Polarization", s.Calibration.Polarization)
	addNum("C1", s.Calibration.C1)
	addNum("C2", s.Calibration.C2)
	addNum("C3", s.Calibration.C3)
	addNum("D", s.Calibration.D)
	addNum("SMC", s.SMC)
	addNum("Alpha", s.Alpha)
	addNum("Tau", s.Tau)
	addText("Scenario", hash.Key(s))
	addText("Version", Version)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("backscatter: writing xlsx: %v", err)
	}
	return nil
}

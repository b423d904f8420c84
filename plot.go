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
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// finiteXYs returns the (x, y) pairs where y is finite. plotter lines
// reject NaN and infinite values.
func finiteXYs(x, y []float64) plotter.XYs {
	xy := make(plotter.XYs, 0, len(x))
	for i := range x {
		if math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			continue
		}
		xy = append(xy, struct{ X, Y float64 }{X: x[i], Y: y[i]})
	}
	return xy
}

// PlotTable creates a line chart of the table columns [dB] against
// incidence angle [degrees]. A column with no finite values is left
// out of the chart.
func PlotTable(s *Scenario, t *Table) (*plot.Plot, error) {
	if err := t.Check(); err != nil {
		return nil, err
	}
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = fmt.Sprintf("%s: mv=%g%%", s.Calibration.Name, s.SMC)
	if len(t.Names) != 1 || t.Names[0] != BareSoilColumn {
		p.Title.Text += fmt.Sprintf(", ω=%g, τ=%g", s.Alpha, s.Tau)
	}
	p.X.Label.Text = "Incidence angle (°)"
	p.Y.Label.Text = "σ⁰ (dB)"
	p.Legend.Top = true

	var lines []interface{}
	for i, name := range t.Names {
		xy := finiteXYs(t.Angles.Degrees, t.Columns[i])
		if len(xy) == 0 {
			continue
		}
		lines = append(lines, name, xy)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("backscatter: plotting table: no finite values")
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return nil, err
	}
	return p, nil
}

// WritePlot plots the table and writes it to w in the given image format
// (e.g. "png", "svg", "pdf"). width and height are in inches.
func WritePlot(w io.Writer, format string, width, height float64, s *Scenario, t *Table) error {
	if !(width > 0 && height > 0) || math.IsInf(width, 1) || math.IsInf(height, 1) {
		return fmt.Errorf("backscatter: plot size is %g x %g inches but both must be finite and > 0", width, height)
	}
	p, err := PlotTable(s, t)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("backscatter: writing plot: %v", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

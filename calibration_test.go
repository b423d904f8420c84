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
	"strings"
	"testing"

	"github.com/kr/pretty"
)

const testCalibrations = `
[Calibration.C-VV]
FrequencyGHz = 5.3
Polarization = "VV"
C1 = -27.0
C2 = 25.0
C3 = 2.5
D = 0.25

[Calibration.L-HH]
FrequencyGHz = 1.25
Polarization = "HH"
C1 = -32.0
C2 = 26.0
C3 = 3.1
D = 0.31
`

func TestLoadCalibrations(t *testing.T) {
	cals, err := LoadCalibrations(strings.NewReader(testCalibrations))
	if err != nil {
		t.Fatal(err)
	}
	want := Calibrations{
		"C-VV": {Name: "C-VV", FrequencyGHz: 5.3, Polarization: "VV", C1: -27, C2: 25, C3: 2.5, D: 0.25},
		"L-HH": {Name: "L-HH", FrequencyGHz: 1.25, Polarization: "HH", C1: -32, C2: 26, C3: 3.1, D: 0.31},
	}
	if diff := pretty.Diff(cals, want); len(diff) != 0 {
		t.Errorf("calibrations differ:\n%v", diff)
	}
}

func TestLoadCalibrationsErrors(t *testing.T) {
	tests := map[string]string{
		"empty":   ``,
		"missing": "[Calibration.X]\nC1 = 1.0\nC2 = 2.0\nD = 0.1\n",
		"syntax":  "[Calibration.X\nC1 = 1.0\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadCalibrations(strings.NewReader(data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestCalibrationsMerge(t *testing.T) {
	cals := DefaultCalibrations()
	extra, err := LoadCalibrations(strings.NewReader(testCalibrations))
	if err != nil {
		t.Fatal(err)
	}
	cals.Merge(extra)
	if diff := pretty.Diff(cals.Names(), []string{"C-HH", "C-VV", "L-HH"}); len(diff) != 0 {
		t.Errorf("names differ: %v", diff)
	}
	p, err := cals.Get(DefaultCalibration)
	if err != nil {
		t.Fatal(err)
	}
	if p != DefaultCosineParams {
		t.Errorf("default calibration: got %v", p)
	}
	if _, err := cals.Get("X-band"); err == nil {
		t.Error("expected an error for a missing calibration")
	}
}

func TestDefaultCosineParams(t *testing.T) {
	p := DefaultCosineParams
	if p.C1 != -29.2 || p.C2 != 27.2 || p.C3 != 2.8 || p.D != 0.28 {
		t.Errorf("coefficients: %v", p)
	}
	if p.FrequencyGHz != 5.3 || p.Polarization != "HH" {
		t.Errorf("sensor: %v", p)
	}
	if err := p.Validate(); err != nil {
		t.Error(err)
	}
}

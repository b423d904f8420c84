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
	"sort"

	"github.com/BurntSushi/toml"
)

// CosineParams holds the coefficients of the cosine-law bare-soil model,
//
//	σ⁰(θ, mv) = C1 + C2·cos(θ)^C3 + D·mv   [dB]
//
// The coefficients are calibrated for one radar frequency and polarization.
// Soil moisture mv is volumetric percent, so D is in dB per percent.
// Nothing checks that a parameter set matches the sensor it is used for.
type CosineParams struct {
	Name         string
	FrequencyGHz float64 // radar frequency [GHz]
	Polarization string  // e.g. HH, VV, HV

	C1 float64 // [dB]
	C2 float64 // [dB]
	C3 float64 // cosine exponent [-]
	D  float64 // moisture sensitivity [dB/%]
}

// DefaultCalibration is the name under which DefaultCosineParams is
// registered in DefaultCalibrations.
const DefaultCalibration = "C-HH"

// DefaultCosineParams is a C-band (5.3 GHz), HH-polarized calibration.
var DefaultCosineParams = CosineParams{
	Name:         DefaultCalibration,
	FrequencyGHz: 5.3,
	Polarization: "HH",
	C1:           -29.2,
	C2:           27.2,
	C3:           2.8,
	D:            0.28,
}

func (p CosineParams) String() string {
	return fmt.Sprintf("%s (%g GHz %s): C1=%g C2=%g C3=%g D=%g",
		p.Name, p.FrequencyGHz, p.Polarization, p.C1, p.C2, p.C3, p.D)
}

// Validate checks that all coefficients are finite.
func (p CosineParams) Validate() error {
	vals := []float64{p.C1, p.C2, p.C3, p.D}
	names := []string{"C1", "C2", "C3", "D"}
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("backscatter: calibration %s: %s=%g is not finite", p.Name, names[i], v)
		}
	}
	return nil
}

// Calibrations holds named cosine-model parameter sets.
type Calibrations map[string]CosineParams

// DefaultCalibrations returns the built-in calibrations.
func DefaultCalibrations() Calibrations {
	return Calibrations{DefaultCalibration: DefaultCosineParams}
}

// Get returns the calibration with the given name.
func (c Calibrations) Get(name string) (CosineParams, error) {
	p, ok := c[name]
	if !ok {
		return CosineParams{}, fmt.Errorf("backscatter: no calibration named %q; available calibrations are %v", name, c.Names())
	}
	return p, nil
}

// Names returns the sorted calibration names.
func (c Calibrations) Names() []string {
	names := make([]string, 0, len(c))
	for n := range c {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Merge adds the calibrations in o to c, replacing any with the same name.
func (c Calibrations) Merge(o Calibrations) {
	for n, p := range o {
		c[n] = p
	}
}

// LoadCalibrations reads calibrations from TOML data formatted as:
//
//	[Calibration.C-VV]
//	FrequencyGHz = 5.3
//	Polarization = "VV"
//	C1 = -27.0
//	C2 = 25.0
//	C3 = 2.5
//	D = 0.25
//
// C1, C2, C3 and D are required.
func LoadCalibrations(r io.Reader) (Calibrations, error) {
	var f struct {
		Calibration map[string]CosineParams
	}
	md, err := toml.DecodeReader(r, &f)
	if err != nil {
		return nil, fmt.Errorf("backscatter: decoding calibrations: %v", err)
	}
	if len(f.Calibration) == 0 {
		return nil, fmt.Errorf("backscatter: no [Calibration.<name>] tables found")
	}
	o := make(Calibrations)
	for name, p := range f.Calibration {
		for _, k := range []string{"C1", "C2", "C3", "D"} {
			if !md.IsDefined("Calibration", name, k) {
				return nil, fmt.Errorf("backscatter: calibration %s is missing coefficient %s", name, k)
			}
		}
		p.Name = name
		if err := p.Validate(); err != nil {
			return nil, err
		}
		o[name] = p
	}
	return o, nil
}

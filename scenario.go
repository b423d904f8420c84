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
	"math"
)

// Scenario is a complete set of model inputs. Unlike the model functions,
// which propagate NaN and ±Inf for out-of-domain inputs, a Scenario is
// validated before it is evaluated.
type Scenario struct {
	Calibration CosineParams
	Angles      *AngleSeries

	SMC   float64 // volumetric soil moisture [%]
	Alpha float64 // single-scattering albedo [-]
	Tau   float64 // optical depth [-]
}

// Validate checks that all inputs are within the model domain.
// Violations wrap ErrDomain.
func (s *Scenario) Validate() error {
	if err := s.Calibration.Validate(); err != nil {
		return err
	}
	if err := s.Angles.Validate(); err != nil {
		return err
	}
	if !(s.SMC >= 0) || math.IsInf(s.SMC, 1) {
		return fmt.Errorf("backscatter: soil moisture is %g but must be finite and >= 0: %w", s.SMC, ErrDomain)
	}
	if !(s.Alpha >= 0 && s.Alpha <= 1) {
		return fmt.Errorf("backscatter: single-scattering albedo is %g but must be in [0, 1]: %w", s.Alpha, ErrDomain)
	}
	if !(s.Tau >= 0) || math.IsInf(s.Tau, 1) {
		return fmt.Errorf("backscatter: optical depth is %g but must be finite and >= 0: %w", s.Tau, ErrDomain)
	}
	return nil
}

// BareSoil validates s and returns the bare-soil backscatter [dB] at each angle.
func (s *Scenario) BareSoil() ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return BareSoilSeries(s.Calibration, s.Angles.Radians, s.SMC), nil
}

// Cloud validates s and returns the cloud-model backscatter at each angle.
func (s *Scenario) Cloud() (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	m := CloudModel{Soil: s.Calibration}
	return m.EvaluateSeries(s.Angles.Radians, s.SMC, s.Alpha, s.Tau), nil
}

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

import "math"

// SoilModel computes the backscatter of bare soil in dB at incidence angle
// theta [radians] and volumetric soil moisture mv [%].
type SoilModel interface {
	BareSoil(theta, mv float64) float64
}

// BareSoil implements SoilModel using the cosine-law model.
// cos(theta) must be positive: angles beyond 90° raise a negative base to
// a fractional power and the result is NaN.
func (p CosineParams) BareSoil(theta, mv float64) float64 {
	cθ := p.C1 + p.C2*math.Pow(math.Cos(theta), p.C3)
	return cθ + p.D*mv
}

// BareSoilModel returns the bare-soil backscatter [dB] for DefaultCosineParams.
func BareSoilModel(theta, mv float64) float64 {
	return DefaultCosineParams.BareSoil(theta, mv)
}

// BareSoilSeries evaluates m at each angle in theta [radians].
func BareSoilSeries(m SoilModel, theta []float64, mv float64) []float64 {
	o := make([]float64, len(theta))
	for i, t := range theta {
		o[i] = m.BareSoil(t, mv)
	}
	return o
}

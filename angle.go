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

	"gonum.org/v1/gonum/floats"
)

// AngleSeries holds an ordered set of incidence angles. Degrees and
// Radians are index-aligned.
type AngleSeries struct {
	Degrees []float64
	Radians []float64
}

// DegToRad converts an angle from degrees to radians.
func DegToRad(d float64) float64 { return d * math.Pi / 180 }

// NewAngleSeries creates an AngleSeries from angles in degrees.
func NewAngleSeries(degrees []float64) *AngleSeries {
	a := &AngleSeries{
		Degrees: make([]float64, len(degrees)),
		Radians: make([]float64, len(degrees)),
	}
	copy(a.Degrees, degrees)
	for i, d := range degrees {
		a.Radians[i] = DegToRad(d)
	}
	return a
}

// AngleSpan returns n evenly spaced angles from minDeg to maxDeg degrees,
// including both end points.
func AngleSpan(minDeg, maxDeg float64, n int) (*AngleSeries, error) {
	switch {
	case n < 1:
		return nil, fmt.Errorf("backscatter: angle span needs at least one angle, got n=%d", n)
	case minDeg > maxDeg:
		return nil, fmt.Errorf("backscatter: angle span minimum (%g°) is greater than maximum (%g°)", minDeg, maxDeg)
	case n == 1:
		if minDeg != maxDeg {
			return nil, fmt.Errorf("backscatter: a single-angle span needs equal minimum and maximum, got %g° and %g°", minDeg, maxDeg)
		}
		return NewAngleSeries([]float64{minDeg}), nil
	}
	return NewAngleSeries(floats.Span(make([]float64, n), minDeg, maxDeg)), nil
}

// Len returns the number of angles in the series.
func (a *AngleSeries) Len() int { return len(a.Degrees) }

// Validate checks that every angle lies strictly between 0° and 90°,
// where the cosine terms of the models are positive.
func (a *AngleSeries) Validate() error {
	if a == nil || a.Len() == 0 {
		return fmt.Errorf("backscatter: no incidence angles specified: %w", ErrDomain)
	}
	if len(a.Radians) != len(a.Degrees) {
		return fmt.Errorf("backscatter: angle series has %d degree values but %d radian values",
			len(a.Degrees), len(a.Radians))
	}
	for i, d := range a.Degrees {
		if !(d > 0 && d < 90) {
			return fmt.Errorf("backscatter: incidence angle %d is %g° but must be in (0°, 90°): %w", i, d, ErrDomain)
		}
	}
	return nil
}

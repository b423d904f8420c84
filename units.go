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

// DB2Lin converts a power ratio in decibels to the linear domain.
func DB2Lin(x float64) float64 {
	return math.Pow(10, x/10)
}

// Lin2DB converts a linear power ratio to decibels. x must be > 0 for a
// finite result: Lin2DB(0) is -Inf and negative values give NaN.
func Lin2DB(x float64) float64 {
	return 10 * math.Log10(x)
}

// DB2LinSeries applies DB2Lin to each element of x and returns the results
// in a new slice.
func DB2LinSeries(x []float64) []float64 {
	o := make([]float64, len(x))
	for i, v := range x {
		o[i] = DB2Lin(v)
	}
	return o
}

// Lin2DBSeries applies Lin2DB to each element of x and returns the results
// in a new slice.
func Lin2DBSeries(x []float64) []float64 {
	o := make([]float64, len(x))
	for i, v := range x {
		o[i] = Lin2DB(v)
	}
	return o
}

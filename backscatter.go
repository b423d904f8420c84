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

// Package backscatter computes radar backscatter coefficients for
// vegetation-covered soil. It provides an empirical cosine-law bare-soil
// model and a water-cloud model that attenuates the soil contribution
// through a vegetation layer and adds the layer's own volume scattering.
//
// The model functions are pure: angles are in radians, backscatter values
// are in dB, and out-of-domain inputs propagate NaN or ±Inf following
// IEEE 754 arithmetic. Scenario is the validated entry point for inputs
// that arrive from configuration files or the command line.
package backscatter

import "errors"

// Version gives the version number.
const Version = "1.0.0"

// ErrDomain is returned (wrapped) when a scenario input falls outside the
// physically valid range of the models.
var ErrDomain = errors.New("value outside of model domain")

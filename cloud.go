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

// Names of the cloud-model output components.
const (
	Canopy = "Canopy"
	Volume = "Volume"
	Soil   = "Soil"
)

// ComponentNames lists the cloud-model output components in output order.
var ComponentNames = []string{Canopy, Volume, Soil}

// TwoWayAttenuation returns γ², the fraction of power that survives a round
// trip through a vegetation layer of optical depth tau at incidence angle
// theta [radians]. It is 1 when tau is 0 and approaches 0 as tau grows
// or theta approaches 90°.
func TwoWayAttenuation(theta, tau float64) float64 {
	return math.Exp(-2 * tau / math.Cos(theta))
}

// Components holds the cloud-model backscatter at a single incidence angle.
type Components struct {
	Canopy float64 // total backscatter
	Volume float64 // vegetation volume scattering
	Soil   float64 // attenuated soil scattering
}

// Linear returns c converted from dB to the linear domain.
func (c Components) Linear() Components {
	return Components{
		Canopy: DB2Lin(c.Canopy),
		Volume: DB2Lin(c.Volume),
		Soil:   DB2Lin(c.Soil),
	}
}

// CloudModel is a three-layer water-cloud model: soil scattering attenuated
// by a vegetation layer, plus the layer's own volume scattering.
// A nil Soil uses DefaultCosineParams.
type CloudModel struct {
	Soil SoilModel
}

func (m CloudModel) soil() SoilModel {
	if m.Soil == nil {
		return DefaultCosineParams
	}
	return m.Soil
}

// Evaluate returns the backscatter components [dB] at incidence angle
// theta [radians] for soil moisture smc [%], single-scattering albedo
// alpha and optical depth tau. The components are added as powers in the
// linear domain. A zero linear term gives -Inf dB (e.g. the volume term
// when alpha or tau is zero).
func (m CloudModel) Evaluate(theta, smc, alpha, tau float64) Components {
	γ2 := TwoWayAttenuation(theta, tau)
	soil := DB2Lin(m.soil().BareSoil(theta, smc))

	vol := 3 * alpha * math.Cos(theta) / 4 * (1 - γ2)
	soil *= γ2
	return Components{
		Canopy: Lin2DB(vol + soil),
		Volume: Lin2DB(vol),
		Soil:   Lin2DB(soil),
	}
}

// EvaluateSeries evaluates the model at each angle in theta [radians].
func (m CloudModel) EvaluateSeries(theta []float64, smc, alpha, tau float64) *Result {
	r := newResult(len(theta))
	for i, t := range theta {
		c := m.Evaluate(t, smc, alpha, tau)
		r.Canopy[i], r.Volume[i], r.Soil[i] = c.Canopy, c.Volume, c.Soil
	}
	return r
}

// CloudModelDefault evaluates the cloud model with DefaultCosineParams.
func CloudModelDefault(theta, smc, alpha, tau float64) Components {
	return CloudModel{}.Evaluate(theta, smc, alpha, tau)
}

// Result holds cloud-model backscatter [dB] for a series of incidence angles.
// All three series are index-aligned with the input angles.
type Result struct {
	Canopy []float64
	Volume []float64
	Soil   []float64
}

func newResult(n int) *Result {
	return &Result{
		Canopy: make([]float64, n),
		Volume: make([]float64, n),
		Soil:   make([]float64, n),
	}
}

// Len returns the number of angles in the result.
func (r *Result) Len() int { return len(r.Canopy) }

// Map returns the result keyed by component name.
func (r *Result) Map() map[string][]float64 {
	return map[string][]float64{
		Canopy: r.Canopy,
		Volume: r.Volume,
		Soil:   r.Soil,
	}
}

// Get returns the component with the given name.
func (r *Result) Get(name string) ([]float64, error) {
	v, ok := r.Map()[name]
	if !ok {
		return nil, fmt.Errorf("backscatter: invalid component %q; valid options are %v", name, ComponentNames)
	}
	return v, nil
}

// At returns the components at index i.
func (r *Result) At(i int) Components {
	return Components{Canopy: r.Canopy[i], Volume: r.Volume[i], Soil: r.Soil[i]}
}

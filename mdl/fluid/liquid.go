// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Liquid implements an incompressible liquid with constant properties
type Liquid struct {
	Rho float64 // density [kg/m³]
	Mu  float64 // dynamic viscosity [Pa·s]
	Pv  float64 // vapour pressure at flowing temperature [Pa abs]; optional
}

// add model to factory
func init() {
	allocators["liquid"] = func() Model { return new(Liquid) }
}

// Init initialises model. Density and viscosity are required; a state
// resolved without them is flagged incomplete rather than failing.
func (o *Liquid) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "rho":
			o.Rho = p.V
		case "mu":
			o.Mu = p.V
		case "pv":
			o.Pv = p.V
		default:
			return chk.Err("liquid: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Liquid) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // light hydrocarbon liquid
			&dbf.P{N: "rho", V: 850.0},
			&dbf.P{N: "mu", V: 1.2e-3},
			&dbf.P{N: "pv", V: 12.0e3},
		}
	}
	return dbf.Params{
		&dbf.P{N: "rho", V: o.Rho},
		&dbf.P{N: "mu", V: o.Mu},
		&dbf.P{N: "pv", V: o.Pv},
	}
}

// Phase returns the phase tag
func (o Liquid) Phase() string { return "liquid" }

// VapourPressure returns the vapour pressure at flowing temperature [Pa abs]
func (o Liquid) VapourPressure() float64 { return o.Pv }

// State resolves the liquid state; pressure and temperature do not alter
// the constant properties
func (o Liquid) State(p, T float64) (s State) {
	s.Rho = o.Rho
	s.Mu = o.Mu
	s.Complete = o.Rho > 0 && o.Mu > 0
	return
}

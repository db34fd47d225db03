// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Gas implements an ideal gas with compressibility factor:
//   ρ(p,T) = p・M / (Z・R・T)
type Gas struct {
	M  float64 // molecular weight [kg/kmol]
	Z  float64 // compressibility factor [-]
	K  float64 // specific-heat ratio cp/cv [-]
	Mu float64 // dynamic viscosity [Pa·s]

	// derived
	notes []string // defaults supplied during Init
}

// add model to factory
func init() {
	allocators["gas"] = func() Model { return new(Gas) }
}

// Init initialises model. Z, k and viscosity receive defaults when absent;
// molecular weight has no sensible default and stays zero if not given.
func (o *Gas) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "M":
			o.M = p.V
		case "Z":
			o.Z = p.V
		case "k":
			o.K = p.V
		case "mu":
			o.Mu = p.V
		default:
			return chk.Err("gas: parameter named %q is incorrect", p.N)
		}
	}
	if o.Z == 0 {
		o.Z = 1.0
		o.notes = append(o.notes, "gas: compressibility factor Z defaulted to 1.0")
	}
	if o.K == 0 {
		o.K = 1.4
		o.notes = append(o.notes, "gas: specific-heat ratio k defaulted to 1.4")
	}
	if o.Mu == 0 {
		o.Mu = 1.8e-5
		o.notes = append(o.notes, "gas: viscosity defaulted to 1.8e-5 Pa·s")
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Gas) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // propane-like hydrocarbon vapour
			&dbf.P{N: "M", V: 44.0},
			&dbf.P{N: "Z", V: 0.92},
			&dbf.P{N: "k", V: 1.15},
			&dbf.P{N: "mu", V: 1.1e-5},
		}
	}
	return dbf.Params{
		&dbf.P{N: "M", V: o.M},
		&dbf.P{N: "Z", V: o.Z},
		&dbf.P{N: "k", V: o.K},
		&dbf.P{N: "mu", V: o.Mu},
	}
}

// Phase returns the phase tag
func (o Gas) Phase() string { return "gas" }

// State resolves the gas state at p [Pa abs] and T [K]
func (o Gas) State(p, T float64) (s State) {
	s.Z = o.Z
	s.Kratio = o.K
	s.Mu = o.Mu
	s.Notes = o.notes
	if o.M <= 0 || p <= 0 || T <= 0 {
		return // incomplete: molecular weight is required
	}
	s.Rho = p * o.M / (o.Z * Rgas * T)
	s.Sonic = math.Sqrt(o.K * o.Z * Rgas * T / o.M)
	s.Complete = true
	return
}

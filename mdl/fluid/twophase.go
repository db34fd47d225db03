// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// TwoPhase implements a homogeneous vapour/liquid mixture. The mixture
// density follows from the vapour quality x:
//   1/ρ = x/ρg + (1-x)/ρl
type TwoPhase struct {
	X    float64 // vapour mass quality [-]
	M    float64 // vapour molecular weight [kg/kmol]
	Z    float64 // vapour compressibility factor [-]
	K    float64 // vapour specific-heat ratio [-]
	RhoL float64 // liquid density [kg/m³]
	MuL  float64 // liquid viscosity [Pa·s]
	MuG  float64 // vapour viscosity [Pa·s]

	// derived
	notes []string
}

// add model to factory
func init() {
	allocators["twophase"] = func() Model { return new(TwoPhase) }
}

// Init initialises model
func (o *TwoPhase) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "x":
			o.X = p.V
		case "M":
			o.M = p.V
		case "Z":
			o.Z = p.V
		case "k":
			o.K = p.V
		case "rhol":
			o.RhoL = p.V
		case "mul":
			o.MuL = p.V
		case "mug":
			o.MuG = p.V
		default:
			return chk.Err("twophase: parameter named %q is incorrect", p.N)
		}
	}
	if o.X < 0 || o.X > 1 {
		return chk.Err("twophase: vapour quality x=%g must be within [0,1]", o.X)
	}
	if o.Z == 0 {
		o.Z = 1.0
		o.notes = append(o.notes, "twophase: vapour compressibility Z defaulted to 1.0")
	}
	if o.K == 0 {
		o.K = 1.4
		o.notes = append(o.notes, "twophase: vapour specific-heat ratio k defaulted to 1.4")
	}
	if o.MuG == 0 {
		o.MuG = 1.8e-5
		o.notes = append(o.notes, "twophase: vapour viscosity defaulted to 1.8e-5 Pa·s")
	}
	return
}

// GetPrms gets (an example of) parameters
func (o TwoPhase) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "x", V: 0.2},
			&dbf.P{N: "M", V: 44.0},
			&dbf.P{N: "Z", V: 0.92},
			&dbf.P{N: "k", V: 1.15},
			&dbf.P{N: "rhol", V: 520.0},
			&dbf.P{N: "mul", V: 1.0e-4},
			&dbf.P{N: "mug", V: 1.1e-5},
		}
	}
	return dbf.Params{
		&dbf.P{N: "x", V: o.X},
		&dbf.P{N: "M", V: o.M},
		&dbf.P{N: "Z", V: o.Z},
		&dbf.P{N: "k", V: o.K},
		&dbf.P{N: "rhol", V: o.RhoL},
		&dbf.P{N: "mul", V: o.MuL},
		&dbf.P{N: "mug", V: o.MuG},
	}
}

// Phase returns the phase tag
func (o TwoPhase) Phase() string { return "twophase" }

// State resolves the mixture state at p [Pa abs] and T [K]
func (o TwoPhase) State(p, T float64) (s State) {
	s.Z = o.Z
	s.Kratio = o.K
	s.Notes = o.notes
	if o.M <= 0 || o.RhoL <= 0 || o.MuL <= 0 || p <= 0 || T <= 0 {
		return
	}
	rhog := p * o.M / (o.Z * Rgas * T)
	s.Rho = 1.0 / (o.X/rhog + (1.0-o.X)/o.RhoL)
	// McAdams mixture viscosity
	s.Mu = 1.0 / (o.X/o.MuG + (1.0-o.X)/o.MuL)
	if o.X > 0 {
		s.Sonic = math.Sqrt(o.K * o.Z * Rgas * T / o.M)
	}
	s.Complete = true
	return
}

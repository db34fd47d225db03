// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// thermodynamic constants for water
const (
	MSteam    = 18.01528  // molecular weight [kg/kmol]
	TcWater   = 647.096   // critical temperature [K]
	TbWater   = 373.15    // normal boiling temperature [K]
	HvapWater = 2.2564e6  // latent heat at normal boiling point [J/kg]
)

// Steam implements water vapour treated as a real gas plus the saturation
// and latent-heat correlations needed by relief calculations
type Steam struct {
	Z  float64 // compressibility factor [-]
	K  float64 // specific-heat ratio cp/cv [-]
	Mu float64 // dynamic viscosity [Pa·s]

	// derived
	notes []string
}

// add model to factory
func init() {
	allocators["steam"] = func() Model { return new(Steam) }
}

// Init initialises model; all parameters are optional with steam defaults
func (o *Steam) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "Z":
			o.Z = p.V
		case "k":
			o.K = p.V
		case "mu":
			o.Mu = p.V
		default:
			return chk.Err("steam: parameter named %q is incorrect", p.N)
		}
	}
	if o.Z == 0 {
		o.Z = 0.96
		o.notes = append(o.notes, "steam: compressibility factor Z defaulted to 0.96")
	}
	if o.K == 0 {
		o.K = 1.33
		o.notes = append(o.notes, "steam: specific-heat ratio k defaulted to 1.33")
	}
	if o.Mu == 0 {
		o.Mu = 1.6e-5
		o.notes = append(o.notes, "steam: viscosity defaulted to 1.6e-5 Pa·s")
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Steam) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "Z", V: 0.96},
			&dbf.P{N: "k", V: 1.33},
			&dbf.P{N: "mu", V: 1.6e-5},
		}
	}
	return dbf.Params{
		&dbf.P{N: "Z", V: o.Z},
		&dbf.P{N: "k", V: o.K},
		&dbf.P{N: "mu", V: o.Mu},
	}
}

// Phase returns the phase tag
func (o Steam) Phase() string { return "steam" }

// State resolves the steam state at p [Pa abs] and T [K]
func (o Steam) State(p, T float64) (s State) {
	s.Z = o.Z
	s.Kratio = o.K
	s.Mu = o.Mu
	s.Notes = o.notes
	if p <= 0 || T <= 0 {
		return
	}
	s.Rho = p * MSteam / (o.Z * Rgas * T)
	s.Sonic = math.Sqrt(o.K * o.Z * Rgas * T / MSteam)
	s.Complete = true
	return
}

// Tsat computes the saturation temperature [K] at p [Pa abs] using the
// Antoine correlation for water (valid roughly 1 kPa to 16 MPa)
func Tsat(p float64) float64 {
	// Antoine with log10(p[mmHg]) = A - B/(C + T[°C])
	const A, B, C = 8.14019, 1810.94, 244.485
	pmmHg := p / 133.322387415
	TdegC := B/(A-math.Log10(pmmHg)) - C
	return TdegC + 273.15
}

// LatentHeat computes the latent heat of vaporisation of water [J/kg] at
// temperature T [K] using Watson's relation anchored at the normal boiling
// point; zero above the critical temperature
func LatentHeat(T float64) float64 {
	if T >= TcWater {
		return 0
	}
	return HvapWater * math.Pow((TcWater-T)/(TcWater-TbWater), 0.38)
}

// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyd

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Orifice implements a sharp-edged orifice segment:
//   W = Cd・Y・A2・√(2・ρ・ΔP / (1-β⁴))
// solved for the pressure drop given the mass flow
type Orifice struct {
	D    float64 // pipe inner diameter [m]
	Beta float64 // bore/pipe diameter ratio [-]
	Cd   float64 // discharge coefficient [-]; 0.61 when unset
	Y    float64 // gas expansibility factor [-]; 1 when unset
}

// add model to factory
func init() {
	allocators["orifice"] = func() Model { return new(Orifice) }
}

// Init initialises parameters
func (o *Orifice) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "d":
			o.D = p.V
		case "beta":
			o.Beta = p.V
		case "cd":
			o.Cd = p.V
		case "y":
			o.Y = p.V
		default:
			return chk.Err("orifice: parameter named %q is incorrect", p.N)
		}
	}
	if o.Beta <= 0 || o.Beta >= 1 {
		return chk.Err("orifice: beta ratio %g must be within (0,1)", o.Beta)
	}
	if o.Cd == 0 {
		o.Cd = 0.61
	}
	if o.Y == 0 {
		o.Y = 1.0
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Orifice) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "d", V: 0.1023},
			&dbf.P{N: "beta", V: 0.6},
			&dbf.P{N: "cd", V: 0.61},
		}
	}
	return dbf.Params{
		&dbf.P{N: "d", V: o.D},
		&dbf.P{N: "beta", V: o.Beta},
		&dbf.P{N: "cd", V: o.Cd},
		&dbf.P{N: "y", V: o.Y},
	}
}

// Kind returns the kind tag
func (o Orifice) Kind() string { return "orifice" }

// Calc computes the orifice pressure drop
func (o *Orifice) Calc(bc BoundaryCond) (res Results) {

	if bc.W <= 0 || o.D <= 0 || bc.Fluid == nil {
		return
	}
	st := bc.Fluid.State(bc.P, bc.T)
	if !st.Complete {
		return
	}
	res.Defined = true

	// pipe velocity and Reynolds number
	area := math.Pi * o.D * o.D / 4.0
	res.Vel = bc.W / (st.Rho * area)
	res.Re = st.Rho * res.Vel * o.D / st.Mu

	// bore area and pressure drop
	d2 := o.Beta * o.D
	a2 := math.Pi * d2 * d2 / 4.0
	b4 := math.Pow(o.Beta, 4.0)
	q := bc.W / (o.Cd * o.Y * a2)
	res.DPOrifice = q * q * (1.0 - b4) / (2.0 * st.Rho)

	res.finish(bc.P)

	// gas: Mach at the bore and choked status
	if st.Sonic > 0 {
		vb := bc.W / (st.Rho * a2)
		res.Mach = vb / st.Sonic
		choked, rc := Choked(bc.P, res.Pout, st.Kratio)
		res.Pcrit = bc.P * rc
		if res.Mach >= 1.0 {
			choked = true
		}
		if choked {
			res.Choked = true
			res.warnf("gas flow through orifice is choked: Mach=%g at the bore", res.Mach)
		}
	}
	return
}

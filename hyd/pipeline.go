// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyd

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"

	"github.com/may3rd/psvcalc/mdl/fluid"
)

// iteration bounds for the isothermal mean-density solve
const (
	isoMaxIt = 50
	isoTol   = 1e-8
)

// Pipeline implements the straight-pipe/fittings segment model with the
// Darcy-Weisbach pressure drop
//   ΔP = K・ρ・v²/2,   K = (f・L/D + Σ count・k + K_user)・SF
// Gas flow adds the Mach number and a density correction along the
// segment: the adiabatic model integrates the pressure profile, the
// isothermal model evaluates density at the mean pressure.
type Pipeline struct {

	// geometry
	D     float64 // inner diameter [m]
	L     float64 // length [m]
	Rough float64 // absolute roughness [m]
	DZ    float64 // elevation change along flow direction, outlet minus inlet [m]

	// resistance
	Fittings []Fitting // fitting counts and coefficients
	Kuser    float64   // additional user resistance coefficient [-]
	SF       float64   // safety factor on total K [-]; 1 when unset
	DPU      float64   // user-specified extra pressure drop [Pa]

	// options
	Isothermal bool // gas: evaluate density at mean pressure instead of adiabatic integration
	Colebrook  bool // turbulent friction by Colebrook iteration instead of Churchill
}

// add model to factory
func init() {
	allocators["pipeline"] = func() Model { return new(Pipeline) }
}

// Init initialises scalar parameters; fittings are attached directly
func (o *Pipeline) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "d":
			o.D = p.V
		case "l":
			o.L = p.V
		case "rough":
			o.Rough = p.V
		case "dz":
			o.DZ = p.V
		case "kuser":
			o.Kuser = p.V
		case "sf":
			o.SF = p.V
		case "dpuser":
			o.DPU = p.V
		case "isothermal":
			o.Isothermal = p.V > 0
		case "colebrook":
			o.Colebrook = p.V > 0
		default:
			return chk.Err("pipeline: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Pipeline) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "d", V: 0.1023},  // 4" sch 40
			&dbf.P{N: "l", V: 25.0},
			&dbf.P{N: "rough", V: 4.6e-5}, // commercial steel
			&dbf.P{N: "dz", V: 0.0},
			&dbf.P{N: "kuser", V: 0.0},
			&dbf.P{N: "sf", V: 1.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "d", V: o.D},
		&dbf.P{N: "l", V: o.L},
		&dbf.P{N: "rough", V: o.Rough},
		&dbf.P{N: "dz", V: o.DZ},
		&dbf.P{N: "kuser", V: o.Kuser},
		&dbf.P{N: "sf", V: o.SF},
		&dbf.P{N: "dpuser", V: o.DPU},
	}
}

// Kind returns the kind tag
func (o Pipeline) Kind() string { return "pipeline" }

// Calc computes the pressure-drop results for the given boundary condition
func (o *Pipeline) Calc(bc BoundaryCond) (res Results) {

	// missing mass flow or diameter: not yet computed, not an error
	if bc.W <= 0 || o.D <= 0 || bc.Fluid == nil {
		return
	}
	st := bc.Fluid.State(bc.P, bc.T)
	if !st.Complete {
		return
	}
	res.Defined = true

	// velocity and Reynolds number at the inlet
	area := math.Pi * o.D * o.D / 4.0
	res.Vel = bc.W / (st.Rho * area)
	res.Re = st.Rho * res.Vel * o.D / st.Mu

	// friction factor
	name := "churchill"
	if o.Colebrook {
		name = "colebrook"
	}
	f, it, conv, err := FrictionFactor(res.Re, o.Rough/o.D, name)
	if err != nil {
		res.Defined = false
		return
	}
	res.Fric = f
	res.Iters = it
	if !conv {
		res.warnf("Colebrook iteration did not converge after %d iterations; using last estimate f=%g", it, f)
	}

	// total resistance coefficient
	kfit := 0.0
	for _, ft := range o.Fittings {
		kfit += float64(ft.Count) * ft.K
	}
	sf := o.SF
	if sf == 0 {
		sf = 1.0
	}
	res.Ktotal = (f*o.L/o.D + kfit + o.Kuser) * sf

	// elevation and user contributions
	res.DPElevation = st.Rho * fluid.Grav * o.DZ
	res.DPUser = o.DPU

	// friction contribution
	if st.Sonic > 0 {
		o.calcGas(&res, bc, st, area)
	} else {
		res.DPFriction = res.Ktotal * st.Rho * res.Vel * res.Vel / 2.0
	}

	res.finish(bc.P)

	// choked-flow status
	if st.Sonic > 0 {
		choked, rc := Choked(bc.P, res.Pout, st.Kratio)
		res.Pcrit = bc.P * rc
		if res.Mach >= 1.0 {
			choked = true
		}
		if choked {
			res.Choked = true
			res.warnf("gas flow is choked: Mach=%g, outlet pressure %g Pa is at or below critical pressure %g Pa", res.Mach, res.Pout, res.Pcrit)
		}
	}
	return
}

// calcGas computes the friction drop and Mach number of a gas segment
func (o *Pipeline) calcGas(res *Results, bc BoundaryCond, st fluid.State, area float64) {

	G := bc.W / area // mass flux [kg/(m²·s)]

	if o.Isothermal {

		// fixed-point iteration on the mean-pressure density
		dp := res.Ktotal * st.Rho * res.Vel * res.Vel / 2.0
		converged := false
		it := 0
		for it = 1; it <= isoMaxIt; it++ {
			pm := bc.P - dp/2.0
			if pm <= 0 {
				res.warnf("isothermal mean pressure became non-positive; pressure drop larger than upstream pressure")
				break
			}
			stm := bc.Fluid.State(pm, bc.T)
			vm := G / stm.Rho
			dpNew := res.Ktotal * stm.Rho * vm * vm / 2.0
			if math.Abs(dpNew-dp) < isoTol*bc.P {
				dp = dpNew
				converged = true
				break
			}
			dp = dpNew
		}
		res.Iters += it
		if !converged && len(res.Warnings) == 0 {
			res.warnf("isothermal density iteration did not converge after %d iterations; using last estimate", isoMaxIt)
		}
		res.DPFriction = dp

	} else {

		// adiabatic: integrate dp/dx = -K・G²/(2・ρ(p,T(p))) over x in [0,1]
		// with T(p) = T1・(p/P1)^((k-1)/k); the resistance is distributed
		// uniformly along the segment. the profile is non-stiff, hence the
		// explicit Dormand-Prince pair
		expn := (st.Kratio - 1.0) / st.Kratio
		fcn := func(fv la.Vector, dx, x float64, y la.Vector) {
			p := y[0]
			if p <= 0 {
				chk.Panic("pressure became non-positive during adiabatic integration")
			}
			T := bc.T * math.Pow(p/bc.P, expn)
			sl := bc.Fluid.State(p, T)
			fv[0] = -res.Ktotal * G * G / (2.0 * sl.Rho)
		}

		y := la.Vector{bc.P}
		err := func() (e error) {
			defer func() {
				if r := recover(); r != nil {
					e = chk.Err("%v", r)
				}
			}()
			conf := ode.NewConfig("dopri5", "", nil)
			conf.SetTols(1e-8, 1e-8)
			sol := ode.NewSolver(1, conf, fcn, nil, nil)
			defer sol.Free()
			sol.Solve(y, 0, 1)
			return
		}()
		if err != nil {
			// fall back to the inlet-density estimate
			res.DPFriction = res.Ktotal * st.Rho * res.Vel * res.Vel / 2.0
			res.warnf("adiabatic integration failed (%v); using inlet-density estimate", err)
		} else {
			res.DPFriction = bc.P - y[0]
		}
	}

	// Mach number: maximum of inlet and outlet values
	res.Mach = res.Vel / st.Sonic
	pout := bc.P - res.DPFriction
	if pout > 0 {
		Tout := bc.T
		if !o.Isothermal {
			Tout = bc.T * math.Pow(pout/bc.P, (st.Kratio-1.0)/st.Kratio)
		}
		sout := bc.Fluid.State(pout, Tout)
		if sout.Complete && sout.Sonic > 0 {
			machOut := G / sout.Rho / sout.Sonic
			if machOut > res.Mach {
				res.Mach = machOut
			}
		}
	}
}

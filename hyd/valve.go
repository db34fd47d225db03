// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyd

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// valve sizing constants (ISA, SI working set)
const (
	valveNliq  = 0.865 // Q[m³/h] = Nliq・Cv・√(ΔP[bar]/G)
	valveNgas  = 27.3  // W[kg/h] = Ngas・Cv・Y・√(x・P1[bar]・ρ1[kg/m³])
	valveFF    = 0.96  // liquid critical pressure ratio factor (fixed)
	valveMaxIt = 50
	valveTol   = 1e-12
)

// ControlValve implements a control-valve segment sized with the ISA
// equations. The input mode selects which quantity is solved:
// by default the pressure drop follows from the boundary mass flow;
// with DPInput the flow follows from the given pressure drop.
type ControlValve struct {
	Cv float64 // liquid flow coefficient [US gpm/psi^0.5]
	Cg float64 // gas flow coefficient; used as Cv = Cg/C1 when Cv is absent
	C1 float64 // Cg/Cv ratio; 33.3 when unset
	FL float64 // liquid pressure-recovery factor [-]; 0.9 when unset
	XT float64 // terminal pressure-drop ratio [-]; 0.7 when unset

	DPInput bool    // pressure drop is the input; solve mass flow
	DP      float64 // given pressure drop for DPInput mode [Pa]
}

// add model to factory
func init() {
	allocators["control_valve"] = func() Model { return new(ControlValve) }
}

// Init initialises parameters
func (o *ControlValve) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "cv":
			o.Cv = p.V
		case "cg":
			o.Cg = p.V
		case "c1":
			o.C1 = p.V
		case "fl":
			o.FL = p.V
		case "xt":
			o.XT = p.V
		case "dpinput":
			o.DPInput = p.V > 0
		case "dp":
			o.DP = p.V
		default:
			return chk.Err("control_valve: parameter named %q is incorrect", p.N)
		}
	}
	if o.C1 == 0 {
		o.C1 = 33.3
	}
	if o.FL == 0 {
		o.FL = 0.9
	}
	if o.XT == 0 {
		o.XT = 0.7
	}
	if o.Cv == 0 && o.Cg > 0 {
		o.Cv = o.Cg / o.C1
	}
	return
}

// GetPrms gets (an example of) parameters
func (o ControlValve) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "cv", V: 120.0},
			&dbf.P{N: "fl", V: 0.9},
			&dbf.P{N: "xt", V: 0.72},
		}
	}
	return dbf.Params{
		&dbf.P{N: "cv", V: o.Cv},
		&dbf.P{N: "cg", V: o.Cg},
		&dbf.P{N: "c1", V: o.C1},
		&dbf.P{N: "fl", V: o.FL},
		&dbf.P{N: "xt", V: o.XT},
		&dbf.P{N: "dp", V: o.DP},
	}
}

// Kind returns the kind tag
func (o ControlValve) Kind() string { return "control_valve" }

// Calc computes the valve pressure drop (or flow, in DPInput mode)
func (o *ControlValve) Calc(bc BoundaryCond) (res Results) {

	if o.Cv <= 0 || bc.Fluid == nil {
		return
	}
	if !o.DPInput && bc.W <= 0 {
		return
	}
	st := bc.Fluid.State(bc.P, bc.T)
	if !st.Complete {
		return
	}
	res.Defined = true

	if st.Sonic > 0 {
		o.calcGas(&res, bc, st.Rho)
	} else {
		o.calcLiquid(&res, bc, st.Rho)
	}

	res.finish(bc.P)
	return
}

// calcLiquid applies the ISA liquid equation with the FL choking limit
func (o *ControlValve) calcLiquid(res *Results, bc BoundaryCond, rho float64) {

	G := rho / 1000.0 // specific gravity

	// maximum (choked) pressure drop; vapour pressure from the fluid model
	// when it provides one, zero otherwise
	pv := 0.0
	if liq, ok := bc.Fluid.(interface{ VapourPressure() float64 }); ok {
		pv = liq.VapourPressure()
	}
	dpMax := o.FL * o.FL * (bc.P - valveFF*pv)

	if o.DPInput {
		dp := o.DP
		if dp >= dpMax {
			dp = dpMax
			res.Choked = true
			res.warnf("liquid flow is choked: given pressure drop %g Pa exceeds the FL limit %g Pa", o.DP, dpMax)
		}
		Q := valveNliq * o.Cv * math.Sqrt(dp/1e5/G) // [m³/h]
		res.Wcalc = Q * rho / 3600.0
		res.DPValve = o.DP
		return
	}

	Q := bc.W / rho * 3600.0 // [m³/h]
	dp := G * math.Pow(Q/(valveNliq*o.Cv), 2.0) * 1e5
	if dp >= dpMax {
		dp = dpMax
		res.Choked = true
		res.warnf("liquid flow is choked: required pressure drop exceeds the FL limit %g Pa", dpMax)
	}
	res.DPValve = dp
}

// calcGas applies the ISA gas equation with the xT choking limit. The
// pressure-drop ratio x solves  Y(x)・√x = W/(Ngas・Cv・√(P1・ρ1))  with
// Y = 1 - x/(3・xT), by Newton iteration on s = √x.
func (o *ControlValve) calcGas(res *Results, bc BoundaryCond, rho float64) {

	p1bar := bc.P / 1e5

	if o.DPInput {
		x := o.DP / bc.P
		if x >= o.XT {
			x = o.XT
			res.Choked = true
			res.warnf("gas flow is choked: pressure-drop ratio %g is at or above xT=%g", o.DP/bc.P, o.XT)
		}
		Y := 1.0 - x/(3.0*o.XT)
		Wh := valveNgas * o.Cv * Y * math.Sqrt(x*p1bar*rho) // [kg/h]
		res.Wcalc = Wh / 3600.0
		res.DPValve = o.DP
		return
	}

	t := bc.W * 3600.0 / (valveNgas * o.Cv * math.Sqrt(p1bar*rho))
	sT := math.Sqrt(o.XT)
	tMax := (2.0 / 3.0) * sT
	if t >= tMax {
		res.Choked = true
		res.DPValve = o.XT * bc.P
		res.warnf("gas flow is choked: valve passes at most %g kg/s at this inlet condition", tMax*valveNgas*o.Cv*math.Sqrt(p1bar*rho)/3600.0)
		return
	}

	// Newton on g(s) = s - s³/(3・xT) - t
	s := t
	it := 0
	converged := false
	for it = 1; it <= valveMaxIt; it++ {
		g := s - s*s*s/(3.0*o.XT) - t
		dg := 1.0 - s*s/o.XT
		snew := s - g/dg
		if snew < 0 {
			snew = 0
		}
		if snew > sT {
			snew = sT
		}
		if math.Abs(snew-s) < valveTol {
			s = snew
			converged = true
			break
		}
		s = snew
	}
	res.Iters = it
	if !converged {
		res.warnf("valve pressure-drop iteration did not converge after %d iterations; using last estimate", valveMaxIt)
	}
	res.DPValve = s * s * bc.P
}

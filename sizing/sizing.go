// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sizing implements pressure-relief-valve orifice sizing per
// API-520 for gas, liquid and steam relief
package sizing

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/may3rd/psvcalc/hyd"
	"github.com/may3rd/psvcalc/uni"
)

// iteration bounds for the viscosity-correction solve
const (
	kvMaxIt = 50
	kvTol   = 1e-6
)

// Inputs holds one relief scenario's sizing envelope. Working units are
// the API-520 SI set: kg/h, m³/h, kPa absolute, K, cP, mm².
type Inputs struct {
	Method string `json:"method"` // "gas", "liquid" or "steam"

	W  float64 `json:"w"`  // relieving mass flow [kg/h]
	Q  float64 `json:"q"`  // liquid volumetric flow [m³/h]; derived from W and G when zero
	P1 float64 `json:"p1"` // relieving pressure [kPa abs]
	P2 float64 `json:"p2"` // total backpressure [kPa abs]
	T  float64 `json:"t"`  // relieving temperature [K]

	BackpressureType string `json:"backpressure"` // "superimposed" or "builtup"
	ValveType        string `json:"valvetype"`    // "conventional" or "bellows"

	// gas/steam properties
	M      float64 `json:"m"` // molecular weight [kg/kmol]
	Z      float64 `json:"z"` // compressibility factor [-]; 1 when unset
	Kratio float64 `json:"k"` // specific-heat ratio [-]; 1.4 when unset

	// liquid properties
	G    float64 `json:"g"`  // specific gravity (water = 1)
	MuCP float64 `json:"mu"` // viscosity [cP]; inviscid when unset

	// coefficients
	Kd float64 `json:"kd"` // discharge coefficient; 0.975 gas/steam, 0.65 liquid when unset
	Kc float64 `json:"kc"` // rupture-disk combination factor; 1 when unset
}

// Outputs holds the computed sizing envelope of one relief scenario
type Outputs struct {
	AreaReq     float64 // required area per valve [mm²]
	Orifice     string  // selected API-526 letter
	AreaSel     float64 // selected bore area [mm²]
	PercentUsed float64 // AreaReq/AreaSel×100 [%]
	RatedCap    float64 // rated capacity of the selected bore per valve [kg/h]
	NumValves   int     // number of valves sharing the load

	Critical bool // critical (choked) flow at the nozzle

	// correction factors applied
	C, Kb, Kw, Kv, KN, KSH float64

	KvConv Convergence // viscosity-correction iteration outcome

	Warnings []string // convergence and feasibility reports
	Messages []string // advisory messages
}

// warnf appends a formatted warning
func (o *Outputs) warnf(msg string, prm ...interface{}) {
	o.Warnings = append(o.Warnings, io.Sf(msg, prm...))
}

// msgf appends a formatted advisory message
func (o *Outputs) msgf(msg string, prm ...interface{}) {
	o.Messages = append(o.Messages, io.Sf(msg, prm...))
}

// Size computes the required orifice area for one relief scenario and
// selects the standard orifice. An invalid method or non-physical
// pressures are caller errors; data-level findings go to Warnings.
func Size(in Inputs) (out Outputs, err error) {

	// defaults
	if in.Z == 0 {
		in.Z = 1.0
	}
	if in.Kratio == 0 {
		in.Kratio = 1.4
	}
	if in.Kc == 0 {
		in.Kc = 1.0
	}
	if in.Kd == 0 {
		if in.Method == "liquid" {
			in.Kd = 0.65
		} else {
			in.Kd = 0.975
		}
	}
	if in.P1 <= 0 {
		return out, chk.Err("relieving pressure P1=%g kPa must be positive absolute", in.P1)
	}

	// backpressure exceeding relieving pressure is an infeasible scenario
	if in.P2 >= in.P1 {
		out.warnf("backpressure %g kPa is at or above relieving pressure %g kPa; scenario is infeasible", in.P2, in.P1)
		return out, nil
	}

	switch in.Method {
	case "gas":
		err = sizeGas(&out, in)
	case "liquid":
		err = sizeLiquid(&out, in)
	case "steam":
		err = sizeSteam(&out, in)
	default:
		return out, chk.Err("sizing method %q is invalid; options are \"gas\", \"liquid\" and \"steam\"", in.Method)
	}
	if err != nil {
		return
	}

	// built-up backpressure on a conventional valve is an application
	// advisory once it exceeds 10% of the gauge relieving pressure
	if in.BackpressureType == "builtup" && in.ValveType != "bellows" {
		pg1 := in.P1 - uni.Patm/1000.0
		pg2 := in.P2 - uni.Patm/1000.0
		if pg1 > 0 && pg2 > 0.1*pg1 {
			out.msgf("built-up backpressure is %.0f%% of the gauge relieving pressure; consider a balanced-bellows valve", 100.0*pg2/pg1)
		}
	}

	selectBore(&out, in)
	return
}

// sizeGas applies the API-520 gas equations, selecting the critical or
// subcritical form from the backpressure ratio
func sizeGas(out *Outputs, in Inputs) error {
	if in.M <= 0 {
		return chk.Err("gas sizing requires a positive molecular weight; M=%g is invalid", in.M)
	}
	if in.T <= 0 {
		return chk.Err("gas sizing requires a positive temperature; T=%g is invalid", in.T)
	}

	r := in.P2 / in.P1
	out.Critical, _ = hyd.Choked(in.P1, in.P2, in.Kratio)
	out.C = CGas(in.Kratio)
	out.Kb = Kb(gaugeRatio(in.P1, in.P2), in.ValveType)
	out.KN, out.KSH, out.Kw, out.Kv = 1, 1, 1, 1

	root := math.Sqrt(in.T * in.Z / in.M)
	if out.Critical || in.ValveType == "bellows" {
		// critical-flow form; the bellows curve Kb covers high backpressure
		out.AreaReq = in.W * root / (out.C * in.Kd * in.P1 * out.Kb * in.Kc)
		if out.Critical {
			out.msgf("critical (choked) flow at the nozzle: P2/P1 = %.3f ≤ rc = %.3f", r, hyd.CritPressureRatio(in.Kratio))
		}
	} else {
		// subcritical flow through a conventional valve
		f2 := F2(in.Kratio, r)
		out.AreaReq = 17.9 * in.W / (f2 * in.Kd * in.Kc) *
			math.Sqrt(in.T*in.Z/(in.M*in.P1*(in.P1-in.P2)))
		out.msgf("subcritical flow at the nozzle: P2/P1 = %.3f > rc = %.3f; F2 = %.4f", r, hyd.CritPressureRatio(in.Kratio), f2)
	}
	return nil
}

// sizeLiquid applies the API-520 liquid equation with the iterative
// viscosity correction
func sizeLiquid(out *Outputs, in Inputs) error {
	if in.G <= 0 {
		return chk.Err("liquid sizing requires a positive specific gravity; G=%g is invalid", in.G)
	}
	Q := in.Q
	if Q == 0 {
		if in.W <= 0 {
			return chk.Err("liquid sizing requires a volumetric or mass flow")
		}
		Q = in.W / (in.G * 1000.0) // [m³/h]
	}

	out.Kw = Kw(gaugeRatio(in.P1, in.P2), in.ValveType)
	out.C, out.Kb, out.KN, out.KSH = 0, 1, 1, 1

	base := 11.78 * Q * math.Sqrt(in.G/(in.P1-in.P2)) / (in.Kd * out.Kw * in.Kc)

	// inviscid service
	if in.MuCP <= 0 {
		out.Kv = 1.0
		out.KvConv = Convergence{Converged: true, Value: 1.0}
		out.AreaReq = base
		return nil
	}

	// viscous service: iterate area => Reynolds number => Kv => area
	qlmin := Q * 1000.0 / 60.0 // [L/min]
	area := base
	kv := 1.0
	conv := false
	it := 0
	for it = 1; it <= kvMaxIt; it++ {
		Re := 18800.0 * qlmin * in.G / (in.MuCP * math.Sqrt(area))
		kv = Kv(Re)
		anew := base / kv
		if math.Abs(anew-area) < kvTol*area {
			area = anew
			conv = true
			break
		}
		area = anew
	}
	out.Kv = kv
	out.KvConv = Convergence{Converged: conv, Value: kv, Iterations: it}
	out.AreaReq = area
	if !conv {
		out.warnf("viscosity correction did not converge after %d iterations; using last estimate Kv=%g", kvMaxIt, kv)
	}
	return nil
}

// sizeSteam applies the API-520 steam equation with the Napier and
// superheat corrections
func sizeSteam(out *Outputs, in Inputs) error {
	if in.W <= 0 {
		return chk.Err("steam sizing requires a positive mass flow; W=%g is invalid", in.W)
	}

	out.Critical, _ = hyd.Choked(in.P1, in.P2, in.Kratio)
	out.Kb = Kb(gaugeRatio(in.P1, in.P2), in.ValveType)
	out.KN = KN(in.P1)
	out.KSH = KSH(in.T, in.P1)
	out.Kw, out.Kv, out.C = 1, 1, 0

	out.AreaReq = 190.5 * in.W / (in.P1 * in.Kd * out.Kb * in.Kc * out.KN * out.KSH)
	return nil
}

// selectBore selects the smallest sufficient standard orifice, splitting
// the load over several valves when even the largest bore is insufficient
func selectBore(out *Outputs, in Inputs) {

	if out.AreaReq <= 0 {
		return
	}

	out.NumValves = 1
	req := out.AreaReq
	b, ok := SelectOrifice(req)
	if !ok {
		// divide the load and re-size per valve; the equations are linear
		// in flow, so the per-valve area is the total over n
		largest := Orifices[len(Orifices)-1]
		out.NumValves = int(math.Ceil(req / largest.Area))
		req = out.AreaReq / float64(out.NumValves)
		b, _ = SelectOrifice(req)
		out.msgf("required area %.0f mm² exceeds the largest standard orifice (%s); load split across %d valves", out.AreaReq, largest.Letter, out.NumValves)
	}

	out.AreaReq = req
	out.Orifice = b.Letter
	out.AreaSel = b.Area
	out.PercentUsed = req / b.Area * 100.0

	// rated capacity of the selected bore per valve
	switch in.Method {
	case "gas":
		if out.Critical || in.ValveType == "bellows" {
			out.RatedCap = b.Area * out.C * in.Kd * in.P1 * out.Kb * in.Kc / math.Sqrt(in.T*in.Z/in.M)
		} else {
			out.RatedCap = in.W / float64(out.NumValves) * b.Area / req
		}
	case "liquid":
		// volumetric rating converted back to mass flow
		qRated := b.Area * in.Kd * out.Kw * in.Kc * out.Kv / (11.78 * math.Sqrt(in.G/(in.P1-in.P2)))
		out.RatedCap = qRated * in.G * 1000.0
	case "steam":
		out.RatedCap = b.Area * in.P1 * in.Kd * out.Kb * in.Kc * out.KN * out.KSH / 190.5
	}
}

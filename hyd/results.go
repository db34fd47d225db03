// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyd

import "github.com/cpmech/gosl/io"

// Results holds the derived quantities of one segment computation. The
// record is recomputed whole on every call; fields are never patched
// individually. Defined is false when a required input is missing (e.g.
// zero mass flow or diameter) and all other fields are then meaningless.
type Results struct {

	// flow characterisation
	Defined bool    // inputs were sufficient to compute anything
	Re      float64 // Reynolds number [-]
	Fric    float64 // Darcy friction factor [-]
	Vel     float64 // velocity at segment inlet [m/s]
	Mach    float64 // Mach number (gas only) [-]
	Ktotal  float64 // total resistance coefficient incl. safety factor [-]

	// pressure drop contributions [Pa]
	DPFriction  float64 // straight pipe + fittings
	DPElevation float64 // static head along flow direction
	DPValve     float64 // control valve
	DPOrifice   float64 // orifice
	DPUser      float64 // user-specified extra drop
	DPTotal     float64 // sum of all contributions

	// derived pressures
	DPNorm float64 // DPTotal normalised by upstream pressure [-]
	Pcrit  float64 // gas critical pressure P1·rc [Pa]; zero for liquids
	Pout   float64 // outlet absolute pressure [Pa]

	// control valve, pressure-drop input mode
	Wcalc float64 // mass flow computed from the given pressure drop [kg/s]

	// status
	Choked   bool     // sonic/choked condition reached (gas)
	Iters    int      // iterations used by internal solves
	Warnings []string // infeasibility and convergence reports; never errors
}

// warnf appends a formatted warning
func (o *Results) warnf(msg string, prm ...interface{}) {
	o.Warnings = append(o.Warnings, io.Sf(msg, prm...))
}

// finish totalises contributions, normalises and flags negative outlet
// pressure as an infeasible-network warning
func (o *Results) finish(p1 float64) {
	o.DPTotal = o.DPFriction + o.DPElevation + o.DPValve + o.DPOrifice + o.DPUser
	if p1 > 0 {
		o.DPNorm = o.DPTotal / p1
	}
	o.Pout = p1 - o.DPTotal
	if o.Pout < 0 {
		o.warnf("negative computed pressure at segment outlet: %g Pa; network is infeasible", o.Pout)
	}
}

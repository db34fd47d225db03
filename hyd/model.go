// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hyd implements hydraulic models for pipe, control-valve and
// orifice segments: friction factors, pressure drop, Mach number and
// choked-flow status
package hyd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/may3rd/psvcalc/mdl/fluid"
)

// BoundaryCond holds the boundary state a segment inherits from the node
// fixed by its declared flow direction
type BoundaryCond struct {
	P     float64     // upstream absolute pressure [Pa]
	T     float64     // upstream temperature [K]
	W     float64     // mass flow rate [kg/s]
	Fluid fluid.Model // fluid supplying state properties along the segment
}

// Fitting holds one fitting type contributing resistance to a segment
type Fitting struct {
	Name  string  `json:"name"`  // e.g. "elbow90"
	Count int     `json:"count"` // number of fittings of this type
	K     float64 `json:"k"`     // resistance coefficient of one fitting [-]
}

// Model defines segment hydraulic models
type Model interface {
	Init(prms dbf.Params) error      // initialises scalar parameters
	GetPrms(example bool) dbf.Params // gets (an example of) parameters
	Kind() string                    // kind tag: "pipeline", "control_valve", "orifice"
	Calc(bc BoundaryCond) Results    // computes the pressure-drop results
}

// New allocates a segment model of the given kind
func New(kind string) (Model, error) {
	allocator, ok := allocators[kind]
	if !ok {
		return nil, chk.Err("segment kind %q is not available in 'hyd' database", kind)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

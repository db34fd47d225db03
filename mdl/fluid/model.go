// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements models to resolve fluid state properties
// (density, viscosity, compressibility, specific-heat ratio) per phase
package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Rgas is the universal gas constant [J/(kmol·K)]
const Rgas = 8314.462618

// Grav is the gravity acceleration [m/s²]
const Grav = 9.80665

// State holds resolved fluid properties at one pressure and temperature.
// Complete is false when a required property is missing for the phase;
// callers then leave derived results undefined instead of failing.
type State struct {
	Rho      float64  // density [kg/m³]
	Mu       float64  // dynamic viscosity [Pa·s]
	Z        float64  // compressibility factor [-]
	Kratio   float64  // specific-heat ratio cp/cv [-]
	Sonic    float64  // sonic velocity [m/s]; zero for liquids
	Complete bool     // all required properties are resolved
	Notes    []string // defaults supplied for missing correlation inputs
}

// Model defines fluid state models
type Model interface {
	Init(prms dbf.Params) error      // initialises model from parameters
	GetPrms(example bool) dbf.Params // gets (an example of) parameters
	Phase() string                   // phase tag: "gas", "liquid", "steam", "twophase"
	State(p, T float64) State        // resolves state at absolute pressure [Pa] and temperature [K]
}

// New allocates a fluid model for the given phase
func New(phase string) (Model, error) {
	allocator, ok := allocators[phase]
	if !ok {
		return nil, chk.Err("fluid phase %q is not available in 'fluid' database", phase)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

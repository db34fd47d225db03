// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package uni implements conversion of magnitudes between engineering units
package uni

import (
	"github.com/cpmech/gosl/chk"
)

// Unit holds the affine map from one unit to the base unit of its quantity
// kind. A value v in this unit equals v*Factor + Offset in the base unit.
type Unit struct {
	Factor float64 // multiplicative factor to base unit
	Offset float64 // additive offset to base unit; e.g. gauge pressures, °C
}

// registry maps quantity kind => unit name => unit data. The base units are
// SI: Pa, K, kg/s, m, kg/m³, Pa·s, m², m³/s
var registry = map[string]map[string]Unit{
	"pressure": {
		"Pa":    {1, 0},
		"kPa":   {1e3, 0},
		"MPa":   {1e6, 0},
		"bar":   {1e5, 0},
		"barg":  {1e5, Patm},
		"atm":   {Patm, 0},
		"psi":   {6894.757293168, 0},
		"psig":  {6894.757293168, Patm},
		"kgcm2": {98066.5, 0},
		"mmH2O": {9.80665, 0},
	},
	"temperature": {
		"K": {1, 0},
		"C": {1, 273.15},
		"F": {5.0 / 9.0, 459.67 * 5.0 / 9.0},
		"R": {5.0 / 9.0, 0},
	},
	"massflow": {
		"kg/s": {1, 0},
		"kg/h": {1.0 / 3600.0, 0},
		"t/h":  {1000.0 / 3600.0, 0},
		"lb/h": {0.45359237 / 3600.0, 0},
	},
	"length": {
		"m":  {1, 0},
		"mm": {1e-3, 0},
		"cm": {1e-2, 0},
		"in": {0.0254, 0},
		"ft": {0.3048, 0},
	},
	"density": {
		"kg/m3": {1, 0},
		"g/cm3": {1e3, 0},
		"lb/ft3": {16.018463374, 0},
	},
	"viscosity": {
		"Pa.s": {1, 0},
		"cP":   {1e-3, 0},
		"P":    {0.1, 0},
	},
	"area": {
		"m2":  {1, 0},
		"cm2": {1e-4, 0},
		"mm2": {1e-6, 0},
		"in2": {0.00064516, 0},
	},
	"volflow": {
		"m3/s": {1, 0},
		"m3/h": {1.0 / 3600.0, 0},
		"gpm":  {6.30901964e-5, 0},
	},
}

// Patm is the standard atmospheric pressure [Pa]
const Patm = 101325.0

// Convert converts value from one unit to another within the same quantity
// kind. Both units must be stated explicitly; there is no inference.
func Convert(value float64, from, to, kind string) (float64, error) {
	units, ok := registry[kind]
	if !ok {
		return 0, chk.Err("quantity kind %q is not registered", kind)
	}
	uf, ok := units[from]
	if !ok {
		return 0, chk.Err("unit %q is not registered for quantity kind %q", from, kind)
	}
	ut, ok := units[to]
	if !ok {
		return 0, chk.Err("unit %q is not registered for quantity kind %q", to, kind)
	}
	base := value*uf.Factor + uf.Offset
	return (base - ut.Offset) / ut.Factor, nil
}

// ToBase converts value from the given unit to the base unit of kind
func ToBase(value float64, from, kind string) (float64, error) {
	units, ok := registry[kind]
	if !ok {
		return 0, chk.Err("quantity kind %q is not registered", kind)
	}
	uf, ok := units[from]
	if !ok {
		return 0, chk.Err("unit %q is not registered for quantity kind %q", from, kind)
	}
	return value*uf.Factor + uf.Offset, nil
}

// FromBase converts value from the base unit of kind to the given unit
func FromBase(value float64, to, kind string) (float64, error) {
	units, ok := registry[kind]
	if !ok {
		return 0, chk.Err("quantity kind %q is not registered", kind)
	}
	ut, ok := units[to]
	if !ok {
		return 0, chk.Err("unit %q is not registered for quantity kind %q", to, kind)
	}
	return (value - ut.Offset) / ut.Factor, nil
}

// Units returns the names of all units registered for kind
func Units(kind string) (names []string) {
	for name := range registry[kind] {
		names = append(names, name)
	}
	return
}

// Kinds returns the names of all registered quantity kinds
func Kinds() (names []string) {
	for name := range registry {
		names = append(names, name)
	}
	return
}

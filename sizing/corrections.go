// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sizing

import (
	"math"

	"github.com/may3rd/psvcalc/mdl/fluid"
	"github.com/may3rd/psvcalc/uni"
)

// Convergence reports the outcome of an iterative solve as a first-class
// value: either the converged result or the last best estimate together
// with the iteration count
type Convergence struct {
	Converged  bool
	Value      float64
	Iterations int
}

// Kb computes the gas/steam backpressure correction factor. Conventional
// valves vent to an atmosphere-equivalent and use Kb = 1; balanced-bellows
// valves follow the API-520 correction curve, here a piecewise-linear fit
// of the 10%-overpressure curve with the 0.30 floor.
//  ratio -- gauge backpressure over gauge relieving pressure, the axis of
//           the published curve
func Kb(ratio float64, valveType string) float64 {
	if valveType != "bellows" {
		return 1.0
	}
	if ratio <= 0.3 {
		return 1.0
	}
	kb := 1.0 - 1.35*(ratio-0.3)
	if kb < 0.3 {
		kb = 0.3
	}
	return kb
}

// gaugeRatio converts a pair of absolute pressures [kPa] to the
// gauge-over-gauge ratio the backpressure curves are published against.
// Sub-atmospheric pressures fall off the curves and map to 0 (no
// correction)
func gaugeRatio(p1, p2 float64) float64 {
	pg1 := p1 - uni.Patm/1000.0
	pg2 := p2 - uni.Patm/1000.0
	if pg1 <= 0 || pg2 <= 0 {
		return 0
	}
	return pg2 / pg1
}

// Kw computes the liquid backpressure correction factor for
// balanced-bellows valves (piecewise-linear fit of API-520 figure 31);
// conventional valves use 1
//  ratio -- gauge backpressure over gauge relieving pressure
func Kw(ratio float64, valveType string) float64 {
	if valveType != "bellows" {
		return 1.0
	}
	if ratio <= 0.15 {
		return 1.0
	}
	kw := 1.0 - 1.6*(ratio-0.15)
	if kw < 0.2 {
		kw = 0.2
	}
	return kw
}

// Kv computes the liquid viscosity correction factor from the orifice
// Reynolds number, capped at 1 for inviscid service
func Kv(Re float64) float64 {
	if Re <= 0 {
		return 1.0
	}
	kv := 1.0 / (0.9935 + 2.878/math.Sqrt(Re) + 342.75/math.Pow(Re, 1.5))
	if kv > 1.0 {
		kv = 1.0
	}
	return kv
}

// KN computes the Napier correction factor for steam above 10,339 kPa
//  p1 -- relieving pressure [kPa abs]
func KN(p1 float64) float64 {
	if p1 <= 10339.0 {
		return 1.0
	}
	return (0.02764*p1 - 1000.0) / (0.03324*p1 - 1061.0)
}

// KSH computes the steam superheat correction factor: 1 at or below
// saturation, decreasing with superheat (curve fit of the API-520
// superheat table)
//  T  -- relieving temperature [K]
//  p1 -- relieving pressure [kPa abs]
func KSH(T, p1 float64) float64 {
	tsat := fluid.Tsat(p1 * 1000.0)
	if T <= tsat {
		return 1.0
	}
	return 1.0 / (1.0 + 0.00109*(T-tsat))
}

// CGas computes the coefficient C of the critical-flow gas equation (SI
// working set, dimensionless part 0.03948):
//  C = 0.03948・√( k・(2/(k+1))^((k+1)/(k-1)) )
func CGas(k float64) float64 {
	return 0.03948 * math.Sqrt(k*math.Pow(2.0/(k+1.0), (k+1.0)/(k-1.0)))
}

// F2 computes the subcritical gas flow coefficient
//  r -- absolute backpressure over absolute relieving pressure
func F2(k, r float64) float64 {
	kk := k / (k - 1.0)
	return math.Sqrt(kk * math.Pow(r, 2.0/k) * (1.0 - math.Pow(r, (k-1.0)/k)) / (1.0 - r))
}

// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form reference solutions used to verify
// the hydraulic and fire-case models
package ana

import "math"

// PoiseuilleDP computes the Hagen-Poiseuille pressure drop of laminar pipe
// flow, equivalent to Darcy-Weisbach with f = 64/Re:
//   ΔP = 128・μ・L・W / (π・ρ・D⁴)
func PoiseuilleDP(W, rho, mu, D, L float64) float64 {
	return 128.0 * mu * L * W / (math.Pi * rho * math.Pow(D, 4.0))
}

// IsothermalPipeP2 computes the outlet pressure of isothermal compressible
// pipe flow with the acceleration term neglected:
//   P1² - P2² = K・G²・Z・R・T/M
// where G is the mass flux [kg/(m²·s)], R the universal gas constant
// [J/(kmol·K)] and M the molecular weight [kg/kmol]. Returns zero when the
// pressure drop exceeds the upstream pressure (infeasible).
func IsothermalPipeP2(p1, K, G, Z, R, T, M float64) float64 {
	d := p1*p1 - K*G*G*Z*R*T/M
	if d <= 0 {
		return 0
	}
	return math.Sqrt(d)
}

// HorizVesselWettedCyl computes the wetted area of the cylindrical shell
// of a horizontal vessel with liquid level h from the bottom:
//   A = L・D・acos(1 - 2h/D)
// Limits: h=0 => 0, h=D/2 => half shell, h=D => full shell.
func HorizVesselWettedCyl(D, L, h float64) float64 {
	if h <= 0 {
		return 0
	}
	if h >= D {
		return math.Pi * D * L
	}
	return L * D * math.Acos(1.0-2.0*h/D)
}

// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyd

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ReLaminarMax is the Reynolds number below which the flow is laminar and
// f = 64/Re applies directly, without iteration
const ReLaminarMax = 2300.0

// iteration bounds for the Colebrook solve
const (
	fricMaxIt = 100
	fricTol   = 1e-10
)

// Laminar computes the laminar friction factor f = 64/Re
func Laminar(Re float64) float64 {
	return 64.0 / Re
}

// Churchill computes the Darcy friction factor with Churchill's explicit
// equation, valid over all flow regimes, as a function of Reynolds number
// and relative roughness ε/D
func Churchill(Re, relRough float64) float64 {
	a := math.Pow(2.457*math.Log(1.0/(math.Pow(7.0/Re, 0.9)+0.27*relRough)), 16.0)
	b := math.Pow(37530.0/Re, 16.0)
	return 8.0 * math.Pow(math.Pow(8.0/Re, 12.0)+1.0/math.Pow(a+b, 1.5), 1.0/12.0)
}

// Colebrook solves the implicit Colebrook-White equation
//   1/√f = -2・log10( ε/(3.7・D) + 2.51/(Re・√f) )
// by fixed-point iteration on x = 1/√f. It returns the friction factor,
// the number of iterations taken and whether the iteration converged
// within the tolerance; on non-convergence the last iterate is returned.
func Colebrook(Re, relRough float64) (f float64, it int, converged bool) {
	x := 2.0 // corresponds to f = 0.25
	for it = 1; it <= fricMaxIt; it++ {
		xnew := -2.0 * math.Log10(relRough/3.7+2.51*x/Re)
		if math.Abs(xnew-x) < fricTol {
			x = xnew
			converged = true
			break
		}
		x = xnew
	}
	f = 1.0 / (x * x)
	return
}

// FrictionFactor selects the friction correlation: the laminar law below
// Re = 2300 and, above, the correlation named by name ("churchill" is the
// default and keeps the transition continuous; "colebrook" is the
// classical iterative solve)
func FrictionFactor(Re, relRough float64, name string) (f float64, it int, converged bool, err error) {
	if Re <= 0 {
		return 0, 0, false, chk.Err("friction factor requires positive Reynolds number; Re=%g is invalid", Re)
	}
	if Re < ReLaminarMax {
		return Laminar(Re), 0, true, nil
	}
	switch name {
	case "", "churchill":
		return Churchill(Re, relRough), 0, true, nil
	case "colebrook":
		f, it, converged = Colebrook(Re, relRough)
		return f, it, converged, nil
	}
	return 0, 0, false, chk.Err("friction correlation %q is not available; options are \"churchill\" and \"colebrook\"", name)
}

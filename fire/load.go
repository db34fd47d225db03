// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fire

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/may3rd/psvcalc/mdl/fluid"
)

// heat absorption constants of Q = C・F・A^0.82 in the SI working set
// (A in m², Q in W), per API-521 §4.4.13
const (
	CAdequate   = 43200.0 // prompt firefighting and drainage available
	CInadequate = 70900.0 // neither available
	FMinimum    = 0.3     // largest environmental credit allowed
)

// Load holds the fire-case relief load of one equipment item
type Load struct {
	Awet     float64  // wetted area within the fire zone [m²]
	C        float64  // heat absorption constant used [W/m^1.64]
	F        float64  // environmental factor used [-]
	Q        float64  // absorbed heat [W]
	Lambda   float64  // latent heat of vaporisation used [J/kg]
	W        float64  // relief rate [kg/s]; 0 when Lambda is missing
	Warnings []string // data-level findings
}

// warnf appends a formatted warning
func (o *Load) warnf(msg string, prm ...interface{}) {
	o.Warnings = append(o.Warnings, io.Sf(msg, prm...))
}

// HeatLoad computes the API-521 fire-case heat absorption and relief rate
// for one equipment item.
//  level    -- liquid level above the item's lowest point [m]
//  adequate -- prompt firefighting and drainage available
//  F        -- environmental factor; 1 when zero, floored at 0.3
//  lambda   -- latent heat at the relieving temperature [J/kg]; the relief
//              rate is left undefined when missing
func HeatLoad(g Geometry, level float64, adequate bool, F, lambda float64) (res Load) {
	res.F = F
	if res.F == 0 {
		res.F = 1.0
	}
	if res.F < FMinimum {
		res.warnf("environmental factor %g is below the minimum credit; using %g", res.F, FMinimum)
		res.F = FMinimum
	}
	res.C = CInadequate
	if adequate {
		res.C = CAdequate
	}
	res.Awet = g.WettedArea(level)
	res.Q = res.C * res.F * math.Pow(res.Awet, 0.82)
	res.Lambda = lambda
	if lambda <= 0 {
		res.warnf("latent heat is missing; relief rate is undefined")
		return
	}
	res.W = res.Q / lambda
	return
}

// HeatLoadWater computes the fire-case load of a vessel holding water or
// steam condensate, taking the latent heat from the relieving temperature
//  T -- relieving temperature [K]
func HeatLoadWater(g Geometry, level float64, adequate bool, F, T float64) Load {
	return HeatLoad(g, level, adequate, F, fluid.LatentHeat(T))
}

// Rule1013 reports whether the low-pressure side of an exchanger passes
// the 10/13 tube-rupture exclusion: test pressure of the low side at or
// above 10/13 of the high-side design pressure. The check classifies the
// scenario's credibility only; it never alters a computed load.
func Rule1013(lowTest, highDesign float64) bool {
	return lowTest >= 10.0/13.0*highDesign
}

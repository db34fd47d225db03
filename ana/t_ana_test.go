// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_ana01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ana01. Poiseuille equals Darcy with f=64/Re")

	W, rho, mu, D, L := 0.5, 900.0, 0.5, 0.05, 10.0

	// Darcy-Weisbach with the laminar friction factor
	area := math.Pi * D * D / 4.0
	v := W / (rho * area)
	Re := rho * v * D / mu
	f := 64.0 / Re
	dpDarcy := f * L / D * rho * v * v / 2.0

	chk.Float64(tst, "ΔP", 1e-9, PoiseuilleDP(W, rho, mu, D, L), dpDarcy)
}

func Test_ana02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ana02. isothermal pipe limits")

	// zero resistance: no pressure drop
	p2 := IsothermalPipeP2(3.0e5, 0, 100.0, 1.0, 8314.462618, 300.0, 28.97)
	chk.Float64(tst, "P2 @ K=0", 1e-9, p2, 3.0e5)

	// infeasible drop returns zero
	p2 = IsothermalPipeP2(1.0e3, 1e6, 500.0, 1.0, 8314.462618, 300.0, 28.97)
	chk.Float64(tst, "P2 infeasible", 1e-15, p2, 0)
}

func Test_ana03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ana03. horizontal vessel wetted shell limits")

	D, L := 3.0, 12.0
	full := math.Pi * D * L

	chk.Float64(tst, "empty", 1e-15, HorizVesselWettedCyl(D, L, 0), 0)
	chk.Float64(tst, "half", 1e-12, HorizVesselWettedCyl(D, L, D/2.0), full/2.0)
	chk.Float64(tst, "full", 1e-12, HorizVesselWettedCyl(D, L, D), full)

	// wetted area grows monotonically with level
	prev := -1.0
	for h := 0.0; h <= D; h += D / 20.0 {
		a := HorizVesselWettedCyl(D, L, h)
		if a < prev {
			tst.Errorf("wetted area must not decrease with level: %g < %g\n", a, prev)
			return
		}
		prev = a
	}
}

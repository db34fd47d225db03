// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyd

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_cv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cv01. liquid valve: flow/pressure-drop round trip")

	vlv := new(ControlValve)
	err := vlv.Init(dbf.Params{
		&dbf.P{N: "cv", V: 120.0},
		&dbf.P{N: "fl", V: 0.9},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	liq := testLiquid(tst, 850.0, 1.2e-3)
	bc := BoundaryCond{P: 6.0e5, T: 308.15, W: 10.0, Fluid: liq}
	res := vlv.Calc(bc)
	if !res.Defined {
		tst.Errorf("result must be defined\n")
		return
	}
	if res.DPValve <= 0 || res.Choked {
		tst.Errorf("expected an unchoked positive pressure drop; got %g\n", res.DPValve)
		return
	}
	chk.Float64(tst, "ΔP total", 1e-9, res.DPTotal, res.DPValve)

	// feed the computed drop back in pressure-drop input mode
	inv := new(ControlValve)
	err = inv.Init(dbf.Params{
		&dbf.P{N: "cv", V: 120.0},
		&dbf.P{N: "fl", V: 0.9},
		&dbf.P{N: "dpinput", V: 1},
		&dbf.P{N: "dp", V: res.DPValve},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	rinv := inv.Calc(BoundaryCond{P: bc.P, T: bc.T, Fluid: liq})
	chk.Float64(tst, "recovered W", 1e-9, rinv.Wcalc, bc.W)

	// doubling Cv quarters the pressure drop
	big := new(ControlValve)
	err = big.Init(dbf.Params{&dbf.P{N: "cv", V: 240.0}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	rbig := big.Calc(bc)
	chk.Float64(tst, "ΔP scaling", 1e-9, rbig.DPValve, res.DPValve/4.0)
}

func Test_cv02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cv02. liquid valve choking at the FL limit")

	vlv := new(ControlValve)
	err := vlv.Init(dbf.Params{
		&dbf.P{N: "cv", V: 20.0},
		&dbf.P{N: "fl", V: 0.9},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	liq := testLiquid(tst, 850.0, 1.2e-3)
	bc := BoundaryCond{P: 4.0e5, T: 308.15, W: 40.0, Fluid: liq}
	res := vlv.Calc(bc)
	if !res.Defined {
		tst.Errorf("result must be defined\n")
		return
	}
	if !res.Choked {
		tst.Errorf("small valve at high flow must choke\n")
		return
	}
	dpMax := 0.9 * 0.9 * bc.P // zero vapour pressure here
	chk.Float64(tst, "ΔP at FL limit", 1e-9, res.DPValve, dpMax)
	if len(res.Warnings) == 0 {
		tst.Errorf("choked valve must carry a warning\n")
		return
	}
}

func Test_cv03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cv03. gas valve: round trip and xT choking")

	vlv := new(ControlValve)
	err := vlv.Init(dbf.Params{
		&dbf.P{N: "cv", V: 350.0},
		&dbf.P{N: "xt", V: 0.72},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	gas := testGas(tst, 28.97, 1.0, 1.4, 1.8e-5)
	bc := BoundaryCond{P: 8.0e5, T: 320.0, W: 2.5, Fluid: gas}
	res := vlv.Calc(bc)
	if !res.Defined {
		tst.Errorf("result must be defined\n")
		return
	}
	if res.Choked {
		tst.Errorf("case must be unchoked; ΔP=%g\n", res.DPValve)
		return
	}
	if chk.Verbose {
		io.Pf("x = ΔP/P1 = %g (xT=0.72), iters=%d\n", res.DPValve/bc.P, res.Iters)
	}

	// pressure-drop input mode recovers the flow
	inv := new(ControlValve)
	err = inv.Init(dbf.Params{
		&dbf.P{N: "cv", V: 350.0},
		&dbf.P{N: "xt", V: 0.72},
		&dbf.P{N: "dpinput", V: 1},
		&dbf.P{N: "dp", V: res.DPValve},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	rinv := inv.Calc(BoundaryCond{P: bc.P, T: bc.T, Fluid: gas})
	chk.Float64(tst, "recovered W", 1e-6, rinv.Wcalc, bc.W)

	// flow beyond the terminal ratio chokes at ΔP = xT・P1
	bc.W = 50.0
	res = vlv.Calc(bc)
	if !res.Choked {
		tst.Errorf("excessive flow must choke the valve\n")
		return
	}
	chk.Float64(tst, "ΔP at xT", 1e-9, res.DPValve, 0.72*bc.P)
}

func Test_cv04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cv04. Cg fallback and parameter validation")

	vlv := new(ControlValve)
	err := vlv.Init(dbf.Params{&dbf.P{N: "cg", V: 3330.0}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Cv from Cg", 1e-12, vlv.Cv, 100.0)
	chk.Float64(tst, "FL default", 1e-15, vlv.FL, 0.9)
	chk.Float64(tst, "xT default", 1e-15, vlv.XT, 0.7)

	err = vlv.Init(dbf.Params{&dbf.P{N: "kv", V: 1.0}})
	if err == nil {
		tst.Errorf("unknown parameter must cause an error\n")
		return
	}

	// no Cv at all: result undefined
	empty := new(ControlValve)
	res := empty.Calc(BoundaryCond{P: 1.0e5, T: 300.0, W: 1.0, Fluid: testLiquid(tst, 1000.0, 1e-3)})
	if res.Defined {
		tst.Errorf("valve without Cv must leave the result undefined\n")
		return
	}
}

func Test_orf01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orf01. orifice pressure drop")

	orf, err := New("orifice")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = orf.Init(dbf.Params{
		&dbf.P{N: "d", V: 0.1023},
		&dbf.P{N: "beta", V: 0.6},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	liq := testLiquid(tst, 998.0, 1.0e-3)
	bc := BoundaryCond{P: 5.0e5, T: 293.15, W: 8.0, Fluid: liq}
	res := orf.Calc(bc)
	if !res.Defined {
		tst.Errorf("result must be defined\n")
		return
	}

	d2 := 0.6 * 0.1023
	a2 := math.Pi * d2 * d2 / 4.0
	q := bc.W / (0.61 * a2)
	dp := q * q * (1.0 - math.Pow(0.6, 4.0)) / (2.0 * 998.0)
	chk.Float64(tst, "ΔP orifice", 1e-6, res.DPOrifice, dp)

	// halving Cd quadruples the drop
	o := orf.(*Orifice)
	o.Cd = 0.305
	r2 := o.Calc(bc)
	chk.Float64(tst, "Cd scaling", 1e-6, r2.DPOrifice, 4.0*dp)

	// invalid beta is a caller error
	bad := new(Orifice)
	err = bad.Init(dbf.Params{
		&dbf.P{N: "d", V: 0.1},
		&dbf.P{N: "beta", V: 1.2},
	})
	if err == nil {
		tst.Errorf("beta > 1 must cause an error\n")
		return
	}
}

func Test_orf02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orf02. gas orifice Mach and choking")

	orf := new(Orifice)
	err := orf.Init(dbf.Params{
		&dbf.P{N: "d", V: 0.0779},
		&dbf.P{N: "beta", V: 0.3},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	gas := testGas(tst, 28.97, 1.0, 1.4, 1.8e-5)
	bc := BoundaryCond{P: 3.0e5, T: 300.0, W: 0.6, Fluid: gas}
	res := orf.Calc(bc)
	if !res.Defined {
		tst.Errorf("result must be defined\n")
		return
	}
	if res.Mach <= 0 {
		tst.Errorf("gas orifice must report a bore Mach number\n")
		return
	}
	if res.Mach >= 1.0 && !res.Choked {
		tst.Errorf("sonic bore must be flagged choked\n")
		return
	}
}

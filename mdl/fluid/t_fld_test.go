// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_fld01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld01. gas state")

	mdl, err := New("gas")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	p := 381325.0 // [Pa abs]
	T := 453.15   // [K]
	s := mdl.State(p, T)
	if !s.Complete {
		tst.Errorf("gas state must be complete\n")
		return
	}
	rho := p * 44.0 / (0.92 * Rgas * T)
	chk.Float64(tst, "rho", 1e-12, s.Rho, rho)
	chk.Float64(tst, "sonic", 1e-12, s.Sonic, math.Sqrt(1.15*0.92*Rgas*T/44.0))
	chk.Float64(tst, "Z", 1e-15, s.Z, 0.92)
	chk.Float64(tst, "k", 1e-15, s.Kratio, 1.15)
}

func Test_fld02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld02. gas defaults for missing correlation inputs")

	mdl := new(Gas)
	err := mdl.Init(dbf.Params{&dbf.P{N: "M", V: 28.97}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	s := mdl.State(101325.0, 293.15)
	if !s.Complete {
		tst.Errorf("state with defaulted Z and k must be complete\n")
		return
	}
	chk.Float64(tst, "Z default", 1e-15, s.Z, 1.0)
	chk.Float64(tst, "k default", 1e-15, s.Kratio, 1.4)
	if len(s.Notes) != 3 {
		tst.Errorf("three defaults must be recorded; got %d\n", len(s.Notes))
		return
	}
	if chk.Verbose {
		for _, n := range s.Notes {
			io.Pf("note: %v\n", n)
		}
	}
}

func Test_fld03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld03. liquid state and missing inputs")

	mdl, err := New("liquid")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	s := mdl.State(550000.0, 313.15)
	chk.Float64(tst, "rho", 1e-15, s.Rho, 850.0)
	chk.Float64(tst, "mu", 1e-15, s.Mu, 1.2e-3)
	if !s.Complete {
		tst.Errorf("liquid state must be complete\n")
		return
	}

	// missing viscosity => incomplete, not an error
	empty := new(Liquid)
	empty.Rho = 1000.0
	s = empty.State(101325.0, 293.15)
	if s.Complete {
		tst.Errorf("liquid without viscosity must be incomplete\n")
		return
	}
}

func Test_fld04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld04. steam saturation and latent heat")

	// atmospheric boiling point
	T := Tsat(101325.0)
	chk.Float64(tst, "Tsat(1 atm)", 0.5, T, 373.15)

	// saturation temperature rises with pressure
	if Tsat(1.0e6) <= Tsat(2.0e5) {
		tst.Errorf("Tsat must increase with pressure\n")
		return
	}

	// latent heat at normal boiling point and near critical
	chk.Float64(tst, "latent @ Tb", 1e-9, LatentHeat(TbWater), HvapWater)
	if LatentHeat(640.0) >= LatentHeat(400.0) {
		tst.Errorf("latent heat must decrease towards the critical point\n")
		return
	}
	chk.Float64(tst, "latent @ Tc", 1e-15, LatentHeat(TcWater), 0)

	mdl, err := New("steam")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(nil)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	s := mdl.State(1.0e6, 500.0)
	if !s.Complete {
		tst.Errorf("steam state must be complete\n")
		return
	}
	chk.Float64(tst, "rho", 1e-12, s.Rho, 1.0e6*MSteam/(0.96*Rgas*500.0))
}

func Test_fld05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld05. two-phase mixture density")

	mdl, err := New("twophase")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	p := 500000.0
	T := 320.0
	s := mdl.State(p, T)
	if !s.Complete {
		tst.Errorf("two-phase state must be complete\n")
		return
	}
	rhog := p * 44.0 / (0.92 * Rgas * T)
	rho := 1.0 / (0.2/rhog + 0.8/520.0)
	chk.Float64(tst, "rho mixture", 1e-12, s.Rho, rho)

	// mixture density is bounded by the phase densities
	if s.Rho <= rhog || s.Rho >= 520.0 {
		tst.Errorf("mixture density %g must lie between %g and %g\n", s.Rho, rhog, 520.0)
		return
	}

	// quality out of range is a caller error
	bad := new(TwoPhase)
	err = bad.Init(dbf.Params{&dbf.P{N: "x", V: 1.5}})
	if err == nil {
		tst.Errorf("x=1.5 must cause an error\n")
		return
	}
}

// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_prj01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prj01. reading project file")

	prj, err := ReadPrj("data", "relief01.prj")
	if err != nil {
		tst.Errorf("ReadPrj failed: %v\n", err)
		return
	}
	if prj.Key != "relief01" {
		tst.Errorf("project key %q is incorrect\n", prj.Key)
		return
	}
	if prj.Units != "SI" {
		tst.Errorf("display units %q are incorrect\n", prj.Units)
		return
	}

	// fluids are allocated and initialised
	f := prj.GetFluid("propane-vap")
	if f == nil || f.Model == nil {
		tst.Errorf("fluid 'propane-vap' must be allocated\n")
		return
	}
	if f.Model.Phase() != "gas" {
		tst.Errorf("phase %q is incorrect\n", f.Model.Phase())
		return
	}
	s := f.Model.State(600000.0, 453.15)
	if !s.Complete {
		tst.Errorf("gas state must be complete\n")
		return
	}
	chk.Float64(tst, "rho", 1e-12, s.Rho, 600000.0*44.0/(0.92*8314.462618*453.15))

	// nodes carry the resolved fluid model
	if len(prj.Net.Nodes) != 3 {
		tst.Errorf("3 nodes expected\n")
		return
	}
	if prj.Net.Nodes[0].Fluid == nil {
		tst.Errorf("node fluid reference must be resolved\n")
		return
	}

	// segment models are allocated; fittings are attached to the pipeline
	seg := prj.GetSegment("inlet-line")
	if seg == nil || seg.Model == nil {
		tst.Errorf("segment 'inlet-line' must be allocated\n")
		return
	}
	if seg.Model.Kind() != "pipeline" {
		tst.Errorf("kind %q is incorrect\n", seg.Model.Kind())
		return
	}
	if len(seg.Fittings) != 2 {
		tst.Errorf("2 fitting entries expected\n")
		return
	}
	if seg.Direction != "forward" {
		tst.Errorf("direction must default to forward\n")
		return
	}

	// the assembled network sorts and propagates
	warnings := prj.Net.Sort()
	if len(warnings) != 0 {
		tst.Errorf("line network must sort without warnings: %v\n", warnings)
		return
	}
	pr, err := prj.Net.Propagate(prj.W)
	if err != nil {
		tst.Errorf("Propagate failed: %v\n", err)
		return
	}
	res := pr.Seg["inlet-line"]
	if !res.Defined {
		tst.Errorf("inlet-line result must be defined\n")
		return
	}
	if res.DPTotal <= 0 {
		tst.Errorf("inlet-line must lose pressure\n")
		return
	}
	if chk.Verbose {
		io.Pf("inlet-line: dP = %g Pa, Mach = %g\n", res.DPTotal, res.Mach)
	}

	// scenarios: sizing inputs decode into the working set
	sc := prj.Scenarios[0]
	if !sc.Governing || sc.Sizing.Method != "gas" {
		tst.Errorf("scenario 'blocked-outlet' decoded incorrectly\n")
		return
	}
	chk.Float64(tst, "sizing P1", 1e-15, sc.Sizing.P1, 381.325)

	// fire sub-record: geometry allocated with head type from extra flags
	fc := prj.Scenarios[1]
	if fc.Fire == nil || fc.Fire.Geo == nil {
		tst.Errorf("fire geometry must be allocated\n")
		return
	}
	load, err := fc.FireLoad()
	if err != nil {
		tst.Errorf("FireLoad failed: %v\n", err)
		return
	}
	if load.Awet <= 0 || load.W <= 0 {
		tst.Errorf("fire load must be defined: %+v\n", load)
		return
	}
	chk.Float64(tst, "lambda from file", 1e-15, load.Lambda, 300000.0)

	// a scenario without a fire sub-record cannot compute a fire load
	_, err = sc.FireLoad()
	if err == nil {
		tst.Errorf("missing fire sub-record must cause an error\n")
		return
	}
}

func Test_prj02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prj02. broken references and bad input")

	// missing file
	_, err := ReadPrj("data", "nosuchproject.prj")
	if err == nil {
		tst.Errorf("missing file must cause an error\n")
		return
	}

	// broken references are caller errors, checked one by one on
	// variations of a minimal project
	dir := "/tmp/psvcalc/inp"
	nodes := `"nodes" : [
    {"id":"a", "p":200000.0, "t":300.0, "fluid":"air"},
    {"id":"b", "t":300.0, "fluid":"air"}
  ]`
	air := `{"name":"air", "phase":"gas", "prms":[{"n":"M","v":28.97}]}`
	pipe := `{"id":"s1", "kind":"pipeline", "start":"a", "end":"b",
    "prms":[{"n":"d","v":0.05}, {"n":"l","v":10.0}]}`

	ok := io.Sf(`{"fluids":[%s], %s, "segments":[%s]}`, air, nodes, pipe)
	io.WriteStringToFileD(dir, "ok.prj", ok)
	if _, err := ReadPrj(dir, "ok.prj"); err != nil {
		tst.Errorf("minimal project must read: %v\n", err)
		return
	}

	bad := map[string]string{
		"undefined fluid": io.Sf(`{"fluids":[%s], "nodes":[{"id":"a", "fluid":"helium"}], "segments":[]}`, air),
		"undefined node":  io.Sf(`{"fluids":[%s], %s, "segments":[{"id":"s1", "kind":"pipeline", "start":"a", "end":"z"}]}`, air, nodes),
		"unknown kind":    io.Sf(`{"fluids":[%s], %s, "segments":[{"id":"s1", "kind":"duct", "start":"a", "end":"b"}]}`, air, nodes),
		"unknown phase":   `{"fluids":[{"name":"x", "phase":"plasma"}], "nodes":[], "segments":[]}`,
		"bad direction":   io.Sf(`{"fluids":[%s], %s, "segments":[{"id":"s1", "kind":"pipeline", "start":"a", "end":"b", "direction":"sideways"}]}`, air, nodes),
		"duplicate fluid": io.Sf(`{"fluids":[%s,%s], "nodes":[], "segments":[]}`, air, air),
		"duplicate node":  io.Sf(`{"fluids":[%s], "nodes":[{"id":"a"},{"id":"a"}], "segments":[]}`, air),
		"fittings on orifice": io.Sf(`{"fluids":[%s], %s, "segments":[{"id":"s1", "kind":"orifice", "start":"a", "end":"b",
      "prms":[{"n":"d","v":0.05},{"n":"beta","v":0.6}], "fittings":[{"name":"x","count":1,"k":0.5}]}]}`, air, nodes),
		"bad scenario path": io.Sf(`{"fluids":[%s], %s, "segments":[%s],
      "scenarios":[{"name":"sc1", "path":["nosuchseg"]}]}`, air, nodes, pipe),
	}
	for name, txt := range bad {
		fn := "bad.prj"
		io.WriteStringToFileD(dir, fn, txt)
		if _, err := ReadPrj(dir, fn); err == nil {
			tst.Errorf("%s must cause an error\n", name)
			return
		} else if chk.Verbose {
			io.Pf("%-20s => %v\n", name, err)
		}
	}
}

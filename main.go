// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/may3rd/psvcalc/inp"
	"github.com/may3rd/psvcalc/sizing"
	"github.com/may3rd/psvcalc/uni"
)

// report separators
const (
	thick = "============================================================================"
	thin  = "----------------------------------------------------------------------------"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".prj", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nPsvcalc Version 1.0 -- Relief Hydraulics and PSV Sizing\n")
		io.Pf("Copyright 2024 The Psvcalc Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// read project
	prj, err := inp.ReadPrj(filepath.Dir(fnamepath), filepath.Base(fnamepath))
	if err != nil {
		chk.Panic("cannot read project file:\n%v", err)
	}
	if verbose && prj.Desc != "" {
		io.Pf("%v\n\n", prj.Desc)
	}

	// network propagation
	warnings := prj.Net.Sort()
	pr, err := prj.Net.Propagate(prj.W)
	if err != nil {
		chk.Panic("network propagation failed:\n%v", err)
	}
	warnings = append(warnings, pr.Warnings...)

	// per-segment report
	io.Pf("%s\n", thick)
	io.Pf("network results (W = %g kg/s)\n", prj.W)
	io.Pf("%s\n", thin)
	io.Pf("%-12s%14s%14s%10s%10s%8s\n", "segment", "dP", "Pout", "vel", "Mach", "choked")
	for _, s := range prj.Net.Segments {
		r := pr.Seg[s.ID]
		if !r.Defined {
			io.Pf("%-12s%62s\n", s.ID, "(undefined)")
			continue
		}
		io.Pf("%-12s%14s%14s%8.2f m/s%10.3f%8v\n", s.ID,
			showPressure(prj.Units, r.DPTotal), showPressure(prj.Units, r.Pout),
			r.Vel, r.Mach, r.Choked)
	}

	// scenario sizing report
	for _, sc := range prj.Scenarios {
		io.Pf("\n%s\n", thick)
		gov := ""
		if sc.Governing {
			gov = " (governing)"
		}
		io.Pf("scenario %q, cause %q%s\n", sc.Name, sc.Cause, gov)
		io.Pf("%s\n", thin)

		// fire load, if the scenario carries a fire sub-record
		if sc.Fire != nil {
			load, err := sc.FireLoad()
			if err != nil {
				chk.Panic("fire load failed:\n%v", err)
			}
			io.Pf("fire: Awet = %.2f m2, Q = %.4g W, relief rate = %.1f kg/h\n",
				load.Awet, load.Q, load.W*3600.0)
			warnings = append(warnings, load.Warnings...)
		}

		// relief path pressure losses
		if len(sc.Path) > 0 {
			tot, err := prj.Net.PathTotals(pr, sc.Path)
			if err != nil {
				chk.Panic("path totals failed:\n%v", err)
			}
			io.Pf("path: dP = %s, max vel = %.2f m/s, max Mach = %.3f, choked = %v\n",
				showPressure(prj.Units, tot.DPTotal), tot.MaxVel, tot.MaxMach, tot.Choked)
		}

		// valve sizing
		res, err := sizing.Size(sc.Sizing)
		if err != nil {
			chk.Panic("sizing failed:\n%v", err)
		}
		io.Pf("sizing (%s): area = %.2f mm2 => orifice %q (%.2f mm2), %.1f%% used\n",
			sc.Sizing.Method, res.AreaReq, res.Orifice, res.AreaSel, res.PercentUsed)
		io.Pf("         %d valve(s), rated capacity %.0f kg/h each, critical = %v\n",
			res.NumValves, res.RatedCap, res.Critical)
		for _, m := range res.Messages {
			io.Pf("note: %v\n", m)
		}
		warnings = append(warnings, res.Warnings...)
	}

	// merged warnings
	if len(warnings) > 0 {
		io.Pf("\n%s\n", thick)
		for _, w := range warnings {
			io.PfYel("warning: %v\n", w)
		}
	}
}

// showPressure formats a base-SI pressure [Pa] per the project's display
// unit preference; internal computation never leaves base units
func showPressure(units string, p float64) string {
	if units == "field" {
		v, err := uni.Convert(p, "Pa", "psi", "pressure")
		if err == nil {
			return io.Sf("%.2f psi", v)
		}
	}
	return io.Sf("%.2f kPa", p/1000.0)
}

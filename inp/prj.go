// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the project data read from a (.prj) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/may3rd/psvcalc/fire"
	"github.com/may3rd/psvcalc/hyd"
	"github.com/may3rd/psvcalc/mdl/fluid"
	"github.com/may3rd/psvcalc/net"
	"github.com/may3rd/psvcalc/sizing"
)

// FluidDef holds one fluid definition
type FluidDef struct {

	// input
	Name  string     `json:"name"`  // name referenced by nodes
	Phase string     `json:"phase"` // model name: "gas", "liquid", "steam", "twophase"
	Prms  dbf.Params `json:"prms"`  // model parameters

	// derived
	Model fluid.Model // pointer to actual fluid model
}

// SegmentDef holds one segment definition
type SegmentDef struct {

	// input
	ID        string        `json:"id"`
	Kind      string        `json:"kind"` // "pipeline", "control_valve", "orifice"
	Start     string        `json:"start"`
	End       string        `json:"end"`
	Direction string        `json:"direction"` // "forward" (default) or "backward"
	Prms      dbf.Params    `json:"prms"`      // scalar model parameters
	Fittings  []hyd.Fitting `json:"fittings"`  // pipeline fittings, if any

	// derived
	Model hyd.Model // pointer to actual segment model
}

// FireDef holds the fire sub-record of a scenario
type FireDef struct {

	// input
	Geometry string     `json:"geometry"` // e.g. "horizontal_vessel"
	Extra    string     `json:"extra"`    // extra flags (in keycode format). ex: "!head:hemi"
	Prms     dbf.Params `json:"prms"`     // geometry parameters
	Level    float64    `json:"level"`    // liquid level [m]
	Adequate bool       `json:"adequate"` // prompt firefighting and drainage
	F        float64    `json:"envfactor"`
	Lambda   float64    `json:"lambda"` // latent heat [J/kg]; water correlation when zero

	// derived
	Geo fire.Geometry // pointer to actual geometry model
}

// ScenarioDef holds one relief scenario
type ScenarioDef struct {
	Name      string        `json:"name"`
	Cause     string        `json:"cause"` // e.g. "blocked_outlet", "fire", "tube_rupture"
	Governing bool          `json:"governing"`
	Path      []string      `json:"path"`   // segment IDs of the relief path
	Sizing    sizing.Inputs `json:"sizing"` // relieving conditions and method
	Fire      *FireDef      `json:"fire"`   // fire sub-record, if cause is fire
}

// Project holds all project data
type Project struct {

	// input
	Desc      string         `json:"desc"`
	Units     string         `json:"units"` // display unit system; presentation only
	W         float64        `json:"w"`     // network mass flow [kg/s]
	Fluids    []*FluidDef    `json:"fluids"`
	Nodes     []*net.Node    `json:"nodes"`
	Segments  []*SegmentDef  `json:"segments"`
	Scenarios []*ScenarioDef `json:"scenarios"`

	// derived
	Key string       // project key; e.g. myplant.prj => myplant
	Net *net.Network // network with resolved models

	fluids map[string]*FluidDef
}

// GetFluid returns a fluid definition
//  Note: returns nil if not found
func (o *Project) GetFluid(name string) *FluidDef {
	return o.fluids[name]
}

// GetSegment returns a segment definition
//  Note: returns nil if not found
func (o *Project) GetSegment(id string) *SegmentDef {
	for _, s := range o.Segments {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// ReadPrj reads all project data from a .prj JSON file, allocates the
// fluid, segment and fire-geometry models and assembles the network.
// Broken references and unknown model names are caller errors.
func ReadPrj(dir, fn string) (o *Project, err error) {

	// new project
	o = new(Project)

	// read file
	path := filepath.Join(dir, fn)
	if _, serr := os.Stat(path); serr != nil {
		return nil, chk.Err("cannot read project file %q", path)
	}
	b := io.ReadFile(path)

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, err
	}
	o.Key = io.FnKey(fn)

	// alloc/init: fluids
	o.fluids = make(map[string]*FluidDef)
	for _, f := range o.Fluids {
		if _, ok := o.fluids[f.Name]; ok {
			return nil, chk.Err("fluid %q is defined twice", f.Name)
		}
		f.Model, err = fluid.New(f.Phase)
		if err != nil {
			return nil, err
		}
		err = f.Model.Init(f.Prms)
		if err != nil {
			return nil, err
		}
		o.fluids[f.Name] = f
	}

	// resolve node fluid references
	nodes := make(map[string]*net.Node)
	for _, n := range o.Nodes {
		if _, ok := nodes[n.ID]; ok {
			return nil, chk.Err("node %q is defined twice", n.ID)
		}
		if n.Fname != "" {
			f := o.fluids[n.Fname]
			if f == nil {
				return nil, chk.Err("node %q references undefined fluid %q", n.ID, n.Fname)
			}
			n.Fluid = f.Model
		}
		nodes[n.ID] = n
	}

	// alloc/init: segments
	segs := make([]*net.Segment, len(o.Segments))
	for i, s := range o.Segments {
		if nodes[s.Start] == nil {
			return nil, chk.Err("segment %q references undefined node %q", s.ID, s.Start)
		}
		if nodes[s.End] == nil {
			return nil, chk.Err("segment %q references undefined node %q", s.ID, s.End)
		}
		if s.Direction == "" {
			s.Direction = "forward"
		}
		if s.Direction != "forward" && s.Direction != "backward" {
			return nil, chk.Err("segment %q: direction %q is incorrect; options are \"forward\" and \"backward\"", s.ID, s.Direction)
		}
		s.Model, err = hyd.New(s.Kind)
		if err != nil {
			return nil, err
		}
		err = s.Model.Init(s.Prms)
		if err != nil {
			return nil, err
		}
		if len(s.Fittings) > 0 {
			pipe, ok := s.Model.(*hyd.Pipeline)
			if !ok {
				return nil, chk.Err("segment %q: fittings apply to pipelines only, not %q", s.ID, s.Kind)
			}
			pipe.Fittings = s.Fittings
		}
		segs[i] = &net.Segment{ID: s.ID, Start: s.Start, End: s.End, Direction: s.Direction, Model: s.Model}
	}

	// assemble network; evaluation order is computed by the caller's Sort
	o.Net = &net.Network{Nodes: o.Nodes, Segments: segs}

	// alloc/init: scenario fire geometries and check relief paths
	for _, sc := range o.Scenarios {
		for _, id := range sc.Path {
			if o.GetSegment(id) == nil {
				return nil, chk.Err("scenario %q references undefined segment %q", sc.Name, id)
			}
		}
		if sc.Fire != nil {
			sc.Fire.Geo, err = fire.New(sc.Fire.Geometry)
			if err != nil {
				return nil, err
			}
			err = sc.Fire.Geo.Init(sc.Fire.Prms, sc.Fire.Extra)
			if err != nil {
				return nil, err
			}
		}
	}
	return
}

// FireLoad computes the fire-case relief load of this scenario
func (o *ScenarioDef) FireLoad() (res fire.Load, err error) {
	if o.Fire == nil || o.Fire.Geo == nil {
		return res, chk.Err("scenario %q has no fire sub-record", o.Name)
	}
	if o.Fire.Lambda > 0 {
		return fire.HeatLoad(o.Fire.Geo, o.Fire.Level, o.Fire.Adequate, o.Fire.F, o.Fire.Lambda), nil
	}
	return fire.HeatLoadWater(o.Fire.Geo, o.Fire.Level, o.Fire.Adequate, o.Fire.F, o.Sizing.T), nil
}

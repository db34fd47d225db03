// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package net implements pressure propagation along a directed network of
// hydraulic segments
package net

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/may3rd/psvcalc/hyd"
	"github.com/may3rd/psvcalc/mdl/fluid"
)

// Node holds one network node. The position is layout information only and
// never enters the physics. Pressure and temperature are in base SI units
// (Pa abs, K); display units are a presentation concern.
type Node struct {
	ID    string      `json:"id"`
	X     float64     `json:"x"` // layout position, non-physical
	Y     float64     `json:"y"` // layout position, non-physical
	P     float64     `json:"p"` // boundary absolute pressure [Pa]; zero when unknown
	T     float64     `json:"t"` // temperature [K]
	Fname string      `json:"fluid"` // fluid name reference
	Fluid fluid.Model `json:"-"`     // resolved fluid model
}

// Segment holds one directed segment. Direction fixes which endpoint is
// the pressure boundary: "forward" takes the start node, "backward" the
// end node. Exactly one sub-type model is authoritative per segment.
type Segment struct {
	ID        string    `json:"id"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Direction string    `json:"direction"` // "forward" or "backward"
	Model     hyd.Model `json:"-"`         // pipeline, control_valve or orifice model
}

// Network holds nodes and segments plus the evaluation order computed by
// Sort. The network itself stays immutable during Propagate; all working
// state lives in the returned record.
type Network struct {
	Nodes    []*Node
	Segments []*Segment

	// derived
	order  []int // topological evaluation order over Segments
	cyclic bool  // a cycle was found; remaining segments keep declared order
}

// Propagation holds the outcome of one propagation pass
type Propagation struct {
	Seg      map[string]hyd.Results // per-segment results keyed by segment ID
	NodeP    map[string]float64     // resolved node pressures [Pa abs]
	Warnings []string               // merged warnings, segment-prefixed
}

// Totals holds aggregate results over a caller-specified path
type Totals struct {
	DPTotal  float64  // sum of segment total pressure drops [Pa]
	MaxVel   float64  // maximum velocity over the path [m/s]
	MaxMach  float64  // maximum Mach number over the path [-]
	Choked   bool     // any segment choked
	Warnings []string // merged warnings over the path
}

// node returns a node by ID
func (o *Network) node(id string) *Node {
	for _, n := range o.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// boundary returns the boundary and downstream node IDs of a segment
func (o *Segment) boundary() (from, to string) {
	if o.Direction == "backward" {
		return o.End, o.Start
	}
	return o.Start, o.End
}

// Sort computes the topological evaluation order of the segments (Kahn's
// algorithm over the declared flow directions). It must be called once
// after every structural change. A cycle through a declared-pressure node
// is broken there; fully unconstrained cycles are not resolved: their
// segments keep the declared order and a warning is returned, since
// constraining cyclic subgraphs is the caller's modelling responsibility.
func (o *Network) Sort() (warnings []string) {

	// build adjacency: segment index consuming each node
	indeg := make(map[string]int)
	for _, n := range o.Nodes {
		indeg[n.ID] = 0
	}
	for _, s := range o.Segments {
		_, to := s.boundary()
		indeg[to]++
	}

	// nodes with fixed boundary pressure or no incoming segment are ready:
	// a declared pressure resolves the node regardless of what feeds it
	ready := []string{}
	for _, n := range o.Nodes {
		if indeg[n.ID] == 0 || n.P > 0 {
			ready = append(ready, n.ID)
		}
	}

	o.order = make([]int, 0, len(o.Segments))
	done := make([]bool, len(o.Segments))
	for len(ready) > 0 {
		nid := ready[0]
		ready = ready[1:]
		for i, s := range o.Segments {
			if done[i] {
				continue
			}
			from, to := s.boundary()
			if from != nid {
				continue
			}
			o.order = append(o.order, i)
			done[i] = true
			indeg[to]--
			if indeg[to] == 0 {
				ready = append(ready, to)
			}
		}
	}

	// remaining segments are on cycles; keep declared order
	o.cyclic = false
	for i := range o.Segments {
		if !done[i] {
			o.order = append(o.order, i)
			o.cyclic = true
		}
	}
	if o.cyclic {
		warnings = append(warnings, "network contains a cyclic subgraph; cyclic segments are evaluated in declared order")
	}
	return
}

// Propagate evaluates every segment with the boundary state of the node
// fixed by its direction and writes the outlet pressure forward to the
// shared node. The mass flow W [kg/s] applies to all segments (one relief
// path). Calling twice with identical inputs yields identical outputs.
func (o *Network) Propagate(W float64) (pr *Propagation, err error) {

	if o.order == nil {
		return nil, chk.Err("network is not sorted; call Sort after structural changes")
	}

	pr = &Propagation{
		Seg:   make(map[string]hyd.Results),
		NodeP: make(map[string]float64),
	}
	temp := make(map[string]float64)

	// seed node states from declared boundaries
	for _, n := range o.Nodes {
		if n.P > 0 {
			pr.NodeP[n.ID] = n.P
		}
		if n.T > 0 {
			temp[n.ID] = n.T
		}
	}

	for _, idx := range o.order {
		s := o.Segments[idx]
		from, to := s.boundary()
		nb := o.node(from)
		if nb == nil {
			return nil, chk.Err("segment %q references unknown node %q", s.ID, from)
		}
		p, ok := pr.NodeP[from]
		if !ok {
			pr.Warnings = append(pr.Warnings, io.Sf("segment %q: boundary node %q has no resolved pressure; segment skipped", s.ID, from))
			pr.Seg[s.ID] = hyd.Results{}
			continue
		}
		bc := hyd.BoundaryCond{P: p, T: temp[from], W: W, Fluid: nb.Fluid}
		res := s.Model.Calc(bc)
		pr.Seg[s.ID] = res
		for _, w := range res.Warnings {
			pr.Warnings = append(pr.Warnings, io.Sf("segment %q: %s", s.ID, w))
		}

		// write outlet state forward unless the downstream node is itself a
		// declared boundary
		if res.Defined {
			if nd := o.node(to); nd != nil && nd.P == 0 {
				pr.NodeP[to] = res.Pout
				if _, has := temp[to]; !has {
					temp[to] = temp[from]
				}
			}
		}
	}
	return
}

// PathTotals aggregates results along the caller-specified path of segment
// IDs: total pressure drop by summation in the order given, maximum
// velocity and Mach number, choked status and merged warnings. An unknown
// segment ID is a caller error.
func (o *Network) PathTotals(pr *Propagation, segIDs []string) (tot Totals, err error) {
	for _, id := range segIDs {
		res, ok := pr.Seg[id]
		if !ok {
			return tot, chk.Err("path refers to unknown segment %q", id)
		}
		if !res.Defined {
			tot.Warnings = append(tot.Warnings, io.Sf("segment %q has no defined result", id))
			continue
		}
		tot.DPTotal += res.DPTotal
		if res.Vel > tot.MaxVel {
			tot.MaxVel = res.Vel
		}
		if res.Mach > tot.MaxMach {
			tot.MaxMach = res.Mach
		}
		if res.Choked {
			tot.Choked = true
		}
		tot.Warnings = append(tot.Warnings, res.Warnings...)
	}
	return
}

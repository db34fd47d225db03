// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fire implements external-fire relief loads per API-521: wetted
// surface area from explicit liquid level, heat absorption and relief rate
package fire

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// FireZoneHeight is the elevation above grade below which surfaces are
// assumed exposed to the pool fire [m]
const FireZoneHeight = 7.6

// Geometry computes the wetted surface area of one equipment item from an
// explicit liquid level. Level is measured from the lowest point of the
// item [m]; the returned area excludes any surface above the fire zone.
type Geometry interface {
	Init(prms dbf.Params, extra string) error
	GetPrms() dbf.Params
	Kind() string
	WettedArea(level float64) float64
}

// headDepth returns the axial depth of one head [m]
func headDepth(head string, d float64) float64 {
	switch head {
	case "hemi":
		return d / 2.0
	case "flat":
		return 0
	}
	// ellipsoidal 2:1 is the default
	return d / 4.0
}

// headArea returns the outside surface area of one head [m²]
func headArea(head string, d float64) float64 {
	switch head {
	case "hemi":
		return math.Pi * d * d / 2.0
	case "flat":
		return math.Pi * d * d / 4.0
	}
	return 1.084 * d * d
}

// clamp bounds x to [0, hi]
func clamp(x, hi float64) float64 {
	if x < 0 {
		return 0
	}
	if x > hi {
		return hi
	}
	return x
}

// Vertical implements vertical vessels and columns: a cylindrical shell
// between two heads, axis vertical. Level is measured from the bottom of
// the lower head; the head wetted area grows with the level inside the
// head, so the total is non-linear near empty and near full.
type Vertical struct {
	D    float64 // inside diameter [m]
	L    float64 // tangent-to-tangent length [m]
	Elev float64 // elevation of the vessel bottom above grade [m]
	Head string  // "ell2", "hemi" or "flat"
	kind string
}

// Horizontal implements horizontal vessels: a cylindrical shell between
// two heads, axis horizontal. Level runs from 0 (empty) to D (full).
type Horizontal struct {
	D    float64
	L    float64
	Elev float64
	Head string
}

// Sphere implements spherical storage. Level runs from 0 to D.
type Sphere struct {
	D    float64
	Elev float64
}

// Tank implements flat-bottom atmospheric storage tanks resting on grade
type Tank struct {
	D float64
	H float64 // shell height [m]
}

// allocators maps geometry names to allocation functions
var allocators = map[string]func() Geometry{}

// New allocates a wetted-area geometry by name
func New(name string) (Geometry, error) {
	if alloc, ok := allocators[name]; ok {
		return alloc(), nil
	}
	return nil, chk.Err("geometry %q is not available in 'fire' database", name)
}

func init() {
	allocators["vertical_vessel"] = func() Geometry { return &Vertical{kind: "vertical_vessel"} }
	allocators["column"] = func() Geometry { return &Vertical{kind: "column"} }
	allocators["horizontal_vessel"] = func() Geometry { return &Horizontal{} }
	allocators["sphere"] = func() Geometry { return &Sphere{} }
	allocators["tank"] = func() Geometry { return &Tank{} }
}

// Init initialises this model from parameters. The head type is read from
// the extra string, e.g. "!head:hemi"; ellipsoidal 2:1 is the default.
func (o *Vertical) Init(prms dbf.Params, extra string) error {
	o.Head = "ell2"
	if s, found := io.Keycode(extra, "head"); found {
		o.Head = s
	}
	for _, p := range prms {
		switch p.N {
		case "d":
			o.D = p.V
		case "l":
			o.L = p.V
		case "elev":
			o.Elev = p.V
		default:
			return chk.Err("vertical_vessel: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.D <= 0 {
		return chk.Err("vertical_vessel: diameter d=%g must be positive", o.D)
	}
	return nil
}

// GetPrms gets all parameters
func (o Vertical) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "d", V: o.D},
		&dbf.P{N: "l", V: o.L},
		&dbf.P{N: "elev", V: o.Elev},
	}
}

// Kind returns the geometry name
func (o Vertical) Kind() string { return o.kind }

// WettedArea computes the wetted surface area from the liquid level
func (o Vertical) WettedArea(level float64) float64 {
	hd := headDepth(o.Head, o.D)
	h := clamp(level, 2.0*hd+o.L)
	// wetted surface above the fire zone takes no heat
	h = clamp(h, FireZoneHeight-o.Elev)
	if h <= 0 {
		return 0
	}
	var a float64
	if hd > 0 {
		a = headArea(o.Head, o.D) * clamp(h/hd, 1.0)
	} else {
		a = headArea(o.Head, o.D) // flat bottom wets at once
	}
	a += math.Pi * o.D * clamp(h-hd, o.L)
	if h > hd+o.L && hd > 0 {
		a += headArea(o.Head, o.D) * clamp((h-hd-o.L)/hd, 1.0)
	}
	return a
}

// Init initialises this model from parameters
func (o *Horizontal) Init(prms dbf.Params, extra string) error {
	o.Head = "ell2"
	if s, found := io.Keycode(extra, "head"); found {
		o.Head = s
	}
	for _, p := range prms {
		switch p.N {
		case "d":
			o.D = p.V
		case "l":
			o.L = p.V
		case "elev":
			o.Elev = p.V
		default:
			return chk.Err("horizontal_vessel: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.D <= 0 {
		return chk.Err("horizontal_vessel: diameter d=%g must be positive", o.D)
	}
	return nil
}

// GetPrms gets all parameters
func (o Horizontal) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "d", V: o.D},
		&dbf.P{N: "l", V: o.L},
		&dbf.P{N: "elev", V: o.Elev},
	}
}

// Kind returns the geometry name
func (o Horizontal) Kind() string { return "horizontal_vessel" }

// WettedArea computes the wetted surface area from the liquid level.
// The shell strip follows the circular-segment arc; hemispherical heads
// use the exact spherical-zone area and flat heads the circular segment.
func (o Horizontal) WettedArea(level float64) float64 {
	h := clamp(level, o.D)
	h = clamp(h, FireZoneHeight-o.Elev)
	if h <= 0 {
		return 0
	}
	a := o.L * o.D * math.Acos(1.0-2.0*h/o.D)
	switch o.Head {
	case "flat":
		r := o.D / 2.0
		seg := r*r*math.Acos(1.0-h/r) - (r-h)*math.Sqrt(h*(o.D-h))
		a += 2.0 * seg
	default:
		// spherical zone, exact for hemispherical heads and a close
		// proportional estimate for ellipsoidal ones
		a += 2.0 * headArea(o.Head, o.D) * h / o.D
	}
	return a
}

// Init initialises this model from parameters
func (o *Sphere) Init(prms dbf.Params, extra string) error {
	for _, p := range prms {
		switch p.N {
		case "d":
			o.D = p.V
		case "elev":
			o.Elev = p.V
		default:
			return chk.Err("sphere: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.D <= 0 {
		return chk.Err("sphere: diameter d=%g must be positive", o.D)
	}
	return nil
}

// GetPrms gets all parameters
func (o Sphere) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "d", V: o.D},
		&dbf.P{N: "elev", V: o.Elev},
	}
}

// Kind returns the geometry name
func (o Sphere) Kind() string { return "sphere" }

// WettedArea computes the spherical-zone area below the liquid level
func (o Sphere) WettedArea(level float64) float64 {
	h := clamp(level, o.D)
	h = clamp(h, FireZoneHeight-o.Elev)
	return math.Pi * o.D * h
}

// Init initialises this model from parameters
func (o *Tank) Init(prms dbf.Params, extra string) error {
	for _, p := range prms {
		switch p.N {
		case "d":
			o.D = p.V
		case "h":
			o.H = p.V
		default:
			return chk.Err("tank: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.D <= 0 {
		return chk.Err("tank: diameter d=%g must be positive", o.D)
	}
	return nil
}

// GetPrms gets all parameters
func (o Tank) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "d", V: o.D},
		&dbf.P{N: "h", V: o.H},
	}
}

// Kind returns the geometry name
func (o Tank) Kind() string { return "tank" }

// WettedArea computes the bottom plate plus the wetted shell strip
func (o Tank) WettedArea(level float64) float64 {
	h := clamp(level, o.H)
	h = clamp(h, FireZoneHeight)
	if h <= 0 {
		return 0
	}
	return math.Pi*o.D*o.D/4.0 + math.Pi*o.D*h
}

// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sizing

// Bore holds one standard orifice designation
type Bore struct {
	Letter string  // API-526 letter
	Area   float64 // effective bore area [mm²]
}

// Orifices holds the standard API-526 orifice sizes, smallest first.
// Areas are the effective areas (0.110 through 26.0 in²) in mm².
var Orifices = []Bore{
	{"D", 70.97},
	{"E", 126.45},
	{"F", 198.06},
	{"G", 324.52},
	{"H", 506.45},
	{"J", 830.32},
	{"K", 1185.81},
	{"L", 1840.64},
	{"M", 2322.58},
	{"N", 2799.99},
	{"P", 4116.12},
	{"Q", 7129.02},
	{"R", 10322.56},
	{"T", 16774.16},
}

// SelectOrifice returns the smallest standard orifice whose area is greater
// than or equal to the required area. ok is false when even the largest
// standard orifice is insufficient.
func SelectOrifice(required float64) (b Bore, ok bool) {
	for _, o := range Orifices {
		if o.Area >= required {
			return o, true
		}
	}
	return Orifices[len(Orifices)-1], false
}

// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyd

import "math"

// CritPressureRatio computes the critical (sonic) pressure ratio of an
// ideal gas with specific-heat ratio k:
//   rc = (2/(k+1))^(k/(k-1))
func CritPressureRatio(k float64) float64 {
	return math.Pow(2.0/(k+1.0), k/(k-1.0))
}

// Choked reports whether gas flow between upstream pressure p1 and
// downstream pressure p2 is choked. The boundary is inclusive: p2/p1
// exactly at the critical ratio is choked. The ratio used is returned so
// callers can render the verdict together with its justification.
func Choked(p1, p2, k float64) (choked bool, rc float64) {
	rc = CritPressureRatio(k)
	if p1 <= 0 {
		return false, rc
	}
	return p2/p1 <= rc, rc
}

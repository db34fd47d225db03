// Copyright 2024 The Psvcalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyd

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotFriction plots friction factor curves (Moody style) for a set of
// relative roughnesses over a Reynolds number decade range
//  relRoughs -- e.g. []float64{0, 1e-5, 1e-4, 1e-3, 1e-2}
func PlotFriction(reMin, reMax float64, npts int, relRoughs []float64) {
	lre := utl.LinSpace(math.Log10(reMin), math.Log10(reMax), npts)
	for _, rr := range relRoughs {
		F := make([]float64, npts)
		Re := make([]float64, npts)
		for i, l := range lre {
			Re[i] = math.Pow(10.0, l)
			if Re[i] < ReLaminarMax {
				F[i] = Laminar(Re[i])
			} else {
				F[i] = Churchill(Re[i], rr)
			}
		}
		plt.Plot(lre, F, &plt.A{L: io.Sf("e/D=%g", rr), NoClip: true})
	}
	plt.Gll("$\\log_{10}(Re)$", "$f$", nil)
}

// PlotFrictionEnd saves the friction plot
func PlotFrictionEnd(dirout, fnkey string) {
	plt.Save(dirout, fnkey)
}

// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/ango12138/AxialOpt/inp"
	"github.com/ango12138/AxialOpt/meanline"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotExpansion draws the expansion path in the h-s plane: static and
// stagnation states of every station joined in flow order
func PlotExpansion(sim *inp.Simulation, sol *meanline.Solution) {
	var S, H, S0, H0 []float64
	for i, cs := range sol.Cascades {
		if i == 0 {
			S = append(S, cs.In.S)
			H = append(H, cs.In.H/1e3)
			S0 = append(S0, cs.In0.S)
			H0 = append(H0, cs.In0.H/1e3)
		}
		S = append(S, cs.Out.S)
		H = append(H, cs.Out.H/1e3)
		S0 = append(S0, cs.Out0.S)
		H0 = append(H0, cs.Out0.H/1e3)
	}
	if sim.Dif.Model != "no" {
		S = append(S, sol.Exit.S)
		H = append(H, sol.Exit.H/1e3)
	}
	plt.Reset(true, &plt.A{Eps: true, Prop: 0.75, WidthPt: 300})
	plt.Plot(S, H, &plt.A{C: "b", M: "o", L: "static", NoClip: true})
	plt.Plot(S0, H0, &plt.A{C: "r", M: "s", Ls: "--", L: "stagnation", NoClip: true})
	plt.Gll("$s$ [J/(kg K)]", "$h$ [kJ/kg]", nil)
	plt.Save(sim.DirOut, sim.Key+"_hs")
}

// PlotTriangles draws the inlet and outlet velocity triangles of every
// cascade, stacked along the vertical axis
func PlotTriangles(sim *inp.Simulation, sol *meanline.Solution) {
	plt.Reset(true, &plt.A{Eps: true, Prop: 1.2, WidthPt: 350})
	y := 0.0
	for _, cs := range sol.Cascades {
		triangle(cs.VmIn, cs.VIn, cs.AngInAbs, cs.WIn, cs.AngIn, y, io.Sf("cascade %d in", cs.Index+1))
		y -= 1.2 * math.Max(cs.VIn, cs.WIn)
		triangle(cs.VmOut, cs.VOut, cs.AngOutAbs, cs.WOut, cs.AngOut, y, io.Sf("cascade %d out", cs.Index+1))
		y -= 1.2 * math.Max(cs.VOut, cs.WOut)
	}
	plt.Equal()
	plt.Gll("$v_\\theta$ [m/s]", "$v_m$ [m/s]", nil)
	plt.Save(sim.DirOut, sim.Key+"_vel")
}

// PlotAnnulus draws the meridional annulus shape: hub and tip lines of each
// cascade at the solved mean radius
func PlotAnnulus(sim *inp.Simulation, sol *meanline.Solution) {
	x := 0.0
	var X, Hub, Tip []float64
	for _, cs := range sol.Cascades {
		rin := cs.RadMean - 0.5*cs.HeightIn
		rout := cs.RadMean - 0.5*cs.HeightOut
		X = append(X, x, x+cs.AxialChord)
		Hub = append(Hub, rin, rout)
		Tip = append(Tip, rin+cs.HeightIn, rout+cs.HeightOut)
		x += 1.25 * cs.AxialChord // row spacing
	}
	Z := utl.LinSpace(X[0], X[len(X)-1], 11)
	R := make([]float64, len(Z))
	for i := range R {
		R[i] = sol.DiamMean / 2
	}
	plt.Reset(true, &plt.A{Eps: true, Prop: 0.75, WidthPt: 300})
	plt.Plot(X, Hub, &plt.A{C: "b", L: "hub", NoClip: true})
	plt.Plot(X, Tip, &plt.A{C: "r", L: "tip", NoClip: true})
	plt.Plot(Z, R, &plt.A{C: "gray", Ls: "--", L: "mean", NoClip: true})
	plt.Equal()
	plt.Gll("$z$ [m]", "$r$ [m]", nil)
	plt.Save(sim.DirOut, sim.Key+"_annulus")
}

// triangle draws one velocity triangle with its apex at (0, y)
func triangle(vm, v, angAbs, w, angRel, y float64, label string) {
	vθ := v * math.Sin(angAbs)
	wθ := w * math.Sin(angRel)
	plt.Plot([]float64{0, vθ}, []float64{y, y - vm}, &plt.A{C: "b", NoClip: true})
	plt.Plot([]float64{0, wθ}, []float64{y, y - vm}, &plt.A{C: "r", NoClip: true})
	plt.Plot([]float64{wθ, vθ}, []float64{y - vm, y - vm}, &plt.A{C: "k", NoClip: true})
	plt.Text(0, y, label, &plt.A{Ha: "left", Fsz: 7})
}

// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. single-stage R125 case")

	sim := ReadSim("data/onestage-r125.sim", false)
	if sim == nil {
		tst.Errorf("test failed\n")
		return
	}

	chk.String(tst, sim.Key, "onestage-r125")
	chk.String(tst, sim.Bcs.Fluid, "r125")
	chk.String(tst, sim.Trb.Loss, "ko")
	chk.String(tst, sim.Trb.Coeff, "p0")
	chk.String(tst, sim.Trb.Objective, "ts")
	chk.String(tst, sim.Dif.Model, "no")
	chk.IntAssert(sim.Trb.Nstages, 1)
	chk.IntAssert(sim.Ncascades(), 2)
	chk.IntAssert(sim.NumVars(), 13)

	chk.Float64(tst, "T01", 1e-15, sim.Bcs.T01, 428.15)
	chk.Float64(tst, "P01", 1e-15, sim.Bcs.P01, 36.18e5)
	chk.Float64(tst, "Pout", 1e-15, sim.Bcs.Pout, 15.69e5)
	chk.Float64(tst, "powerisen", 1e-15, sim.Bcs.PowerIsen, 250e3)

	// defaults filled in
	chk.Float64(tst, "gap", 1e-15, sim.Trb.Gap, 4e-4)
	chk.Float64(tst, "tte", 1e-15, sim.Trb.TteRatio, 0.05)
	chk.IntAssert(sim.Opt.MaxIter, 40)

	// stator/rotor default angle signs
	io.Pforan("beta: ini = %v\n", sim.Vars.Beta.Ini)
	if at(sim.Vars.Beta.Ini, 0) <= 0 {
		tst.Errorf("stator outlet angle guess should be positive\n")
		return
	}
	if at(sim.Vars.Beta.Ini, 1) >= 0 {
		tst.Errorf("rotor outlet angle guess should be negative\n")
		return
	}

	// bounds and guess have consistent lengths and ordering
	x := sim.InitialGuess()
	lo, hi := sim.Bounds()
	chk.IntAssert(len(x), 13)
	chk.IntAssert(len(lo), 13)
	chk.IntAssert(len(hi), 13)
	for i := range x {
		if x[i] < lo[i] || x[i] > hi[i] {
			tst.Errorf("guess outside bounds at %d: %g not in [%g,%g]\n", i, x[i], lo[i], hi[i])
			return
		}
	}

	// applied constraints
	if c := sim.Constraints.Get("flare_angle"); c == nil || c.Max == nil {
		tst.Errorf("flare_angle constraint should be applied with an upper bound\n")
		return
	}
	if c := sim.Constraints.Get("RPM"); c != nil {
		tst.Errorf("RPM constraint should not be applied\n")
		return
	}
	if _, pinned := sim.Constraints.PinnedRPM(); pinned {
		tst.Errorf("RPM should not be pinned\n")
		return
	}
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. two-stage air case with diffuser")

	sim := ReadSim("data/twostage-air-dif.sim", false)
	if sim == nil {
		tst.Errorf("test failed\n")
		return
	}

	chk.IntAssert(sim.Trb.Nstages, 2)
	chk.IntAssert(sim.Ncascades(), 4)
	chk.IntAssert(sim.NumVars(), 23)
	chk.String(tst, sim.Trb.Loss, "am")
	chk.String(tst, sim.Trb.Coeff, "s")
	chk.String(tst, sim.Trb.Objective, "tt")
	chk.String(tst, sim.Dif.Model, "1d")

	// diffuser parameters
	var ar float64
	for _, p := range sim.Dif.Prms {
		if p.N == "ar" {
			ar = p.V
		}
	}
	chk.Float64(tst, "ar", 1e-15, ar, 2.5)

	// pinned shaft speed
	rpm, pinned := sim.Constraints.PinnedRPM()
	if !pinned {
		tst.Errorf("RPM should be pinned\n")
		return
	}
	chk.Float64(tst, "rpm", 1e-15, rpm, 9000)

	// default output directory derives from the key
	chk.String(tst, sim.DirOut, "/tmp/axialopt/twostage-air-dif")
}

func Test_readerr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("readerr01. validation catches bad input")

	base := func() *Simulation {
		o := &Simulation{}
		o.Bcs = BcsData{Fluid: "air", T01: 1100, P01: 8e5, Pout: 2e5, Mdot: 12}
		o.SetDefault()
		return o
	}
	if err := base().Validate(); err != nil {
		tst.Errorf("base case should be valid:\n%v", err)
		return
	}

	for _, tc := range []struct {
		about string
		mod   func(o *Simulation)
	}{
		{"missing fluid", func(o *Simulation) { o.Bcs.Fluid = "" }},
		{"bad pressures", func(o *Simulation) { o.Bcs.Pout = 9e5 }},
		{"no flow or power", func(o *Simulation) { o.Bcs.Mdot = 0 }},
		{"bad loss name", func(o *Simulation) { o.Trb.Loss = "craig-cox" }},
		{"bad coeff name", func(o *Simulation) { o.Trb.Coeff = "zeta" }},
		{"bad objective", func(o *Simulation) { o.Trb.Objective = "poly" }},
		{"bad diffuser", func(o *Simulation) { o.Dif.Model = "conical" }},
		{"span length", func(o *Simulation) { o.Vars.W.Ini = []float64{0.9, 0.5, 0.5} }},
		{"min above max", func(o *Simulation) { o.Vars.Ws.Min = []float64{2.0} }},
		{"guess outside", func(o *Simulation) { o.Vars.Ds.Ini = []float64{99.0} }},
		{"unknown constraint", func(o *Simulation) {
			o.Constraints["blade_count"] = &Constraint{Applied: true, Ref: 1}
		}},
	} {
		o := base()
		tc.mod(o)
		if err := o.Validate(); err == nil {
			tst.Errorf("Validate should fail: %s\n", tc.about)
			return
		} else if chk.Verbose {
			io.Pf("%s => %v\n", tc.about, err)
		}
	}
}

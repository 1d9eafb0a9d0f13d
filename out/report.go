// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out writes post-processing artifacts for a solved turbine design:
// a plain-text report with per-cascade tables and figures of the expansion
// path, the velocity triangles and the annulus shape.
package out

import (
	"bytes"
	"math"

	"github.com/ango12138/AxialOpt/inp"
	"github.com/ango12138/AxialOpt/meanline"
	"github.com/cpmech/gosl/io"
)

// Report writes a text summary of the solution to dirout/key.txt and echoes
// it to the screen when verbose
func Report(sim *inp.Simulation, sol *meanline.Solution, verbose bool) {

	deg := 180.0 / math.Pi
	var b bytes.Buffer

	// summary
	io.Ff(&b, "AxialOpt design report: %s\n", sim.Key)
	io.Ff(&b, "fluid               = %s\n", sim.Bcs.Fluid)
	io.Ff(&b, "number of stages    = %d\n", sim.Trb.Nstages)
	io.Ff(&b, "loss model          = %s\n", sim.Trb.Loss)
	io.Ff(&b, "diffuser model      = %s\n", sim.Dif.Model)
	io.Ff(&b, "\n")
	io.Ff(&b, "mass flow rate      = %12.5f kg/s\n", sol.Mdot)
	io.Ff(&b, "isentropic drop     = %12.5f kJ/kg\n", sol.Dhs/1e3)
	io.Ff(&b, "spouting velocity   = %12.5f m/s\n", sol.V0)
	io.Ff(&b, "shaft speed         = %12.5f rpm\n", sol.RPM)
	io.Ff(&b, "mean diameter       = %12.5f m\n", sol.DiamMean)
	io.Ff(&b, "shaft power         = %12.5f kW\n", sol.Power/1e3)
	io.Ff(&b, "total-to-static eff = %12.6f\n", sol.EtaTS)
	io.Ff(&b, "total-to-total eff  = %12.6f\n", sol.EtaTT)
	for i, r := range sol.Reaction {
		io.Ff(&b, "reaction stage %d    = %12.6f\n", i+1, r)
	}
	if sim.Dif.Model != "no" {
		io.Ff(&b, "diffuser recovery   = %12.6f\n", sol.Diffuser.Recovery)
	}

	// per-cascade tables
	for _, cs := range sol.Cascades {
		kind := "stator"
		if cs.Rotor {
			kind = "rotor"
		}
		io.Ff(&b, "\ncascade %d (%s)\n", cs.Index+1, kind)
		io.Ff(&b, "  T out            = %12.4f K\n", cs.Out.T)
		io.Ff(&b, "  p out            = %12.4f kPa\n", cs.Out.P/1e3)
		io.Ff(&b, "  angle in         = %12.4f deg\n", cs.AngIn*deg)
		io.Ff(&b, "  angle out        = %12.4f deg\n", cs.AngOut*deg)
		io.Ff(&b, "  Mach out         = %12.4f\n", cs.MaOut)
		io.Ff(&b, "  Reynolds         = %12.4e\n", cs.Re)
		io.Ff(&b, "  height           = %12.5f m\n", cs.Height)
		io.Ff(&b, "  chord            = %12.5f m\n", cs.Chord)
		io.Ff(&b, "  pitch            = %12.5f m\n", cs.Pitch)
		io.Ff(&b, "  blades           = %12d\n", cs.Nblades)
		io.Ff(&b, "  hub-to-tip       = %12.5f\n", cs.Rht)
		io.Ff(&b, "  flare angle      = %12.4f deg\n", cs.Flare*deg)
		io.Ff(&b, "  loss: profile    = %12.6f\n", cs.Loss.Profile)
		io.Ff(&b, "  loss: secondary  = %12.6f\n", cs.Loss.Secondary)
		io.Ff(&b, "  loss: trail edge = %12.6f\n", cs.Loss.TrailingEdge)
		io.Ff(&b, "  loss: clearance  = %12.6f\n", cs.Loss.Clearance)
		io.Ff(&b, "  loss: total      = %12.6f\n", cs.Loss.Total)
		io.Ff(&b, "  coeff predicted  = %12.6f (%s)\n", cs.CoeffPred, sim.Trb.Coeff)
		io.Ff(&b, "  coeff measured   = %12.6f\n", cs.CoeffMeas)
		io.Ff(&b, "  residual         = %12.3e\n", cs.Residual)
	}

	io.WriteFileVD(sim.DirOut, sim.Key+".txt", &b)
	if verbose {
		io.Pf("%s\n", b.String())
	}
}

// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/ango12138/AxialOpt/inp"
	"github.com/ango12138/AxialOpt/meanline"
	"github.com/ango12138/AxialOpt/opt"
	"github.com/ango12138/AxialOpt/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nAxialOpt -- Meanline Design Optimization of Axial Turbines\n")
		io.Pf("Copyright 2016 The AxialOpt Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"generate figures", "doplot", doplot,
		))
	}

	// simulation data
	sim := inp.ReadSim(fnamepath, true)

	// problem and evaluator
	prb, err := meanline.NewProblem(sim)
	if err != nil {
		chk.Panic("cannot allocate problem:\n%v", err)
	}
	eva := meanline.NewEvaluator(prb)
	eva.Verbose = verbose

	// nonlinear program
	lo, up := sim.Bounds()
	nlp := &opt.Problem{
		Objective: eva.Objective,
		InEq:      eva.Inequalities,
		Eq:        eva.Equalities,
		Lower:     lo,
		Upper:     up,
	}
	stg := opt.DefaultSettings()
	if sim.Opt.MaxIter > 0 {
		stg.MaxIter = sim.Opt.MaxIter
	}
	if sim.Opt.MaxFev > 0 {
		stg.MaxFev = sim.Opt.MaxFev
	}
	if sim.Opt.TolCon > 0 {
		stg.TolCon = sim.Opt.TolCon
	}
	if sim.Opt.TolStep > 0 {
		stg.TolStep = sim.Opt.TolStep
	}
	if sim.Opt.TolFun > 0 {
		stg.TolFun = sim.Opt.TolFun
	}
	if sim.Opt.TolOpt > 0 {
		stg.TolOpt = sim.Opt.TolOpt
	}

	// solve
	res, err := opt.Solve(nlp, sim.InitialGuess(), stg)
	if err != nil {
		chk.Panic("optimization failed:\n%v", err)
	}
	if verbose {
		io.Pf("\nstatus = %v  iterations = %d  evaluations = %d  max violation = %g\n",
			res.Status, res.Iter, res.Fev, res.MaxViol)
	}

	// post-process the best design
	sol, err := prb.Evaluate(res.X)
	if err != nil {
		chk.Panic("cannot evaluate final design:\n%v", err)
	}
	out.Report(sim, sol, verbose)
	if doplot {
		out.PlotExpansion(sim, sol)
		out.PlotTriangles(sim, sol)
		out.PlotAnnulus(sim, sol)
	}
}

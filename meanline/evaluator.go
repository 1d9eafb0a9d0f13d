// Copyright 2016 The AxialOpt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meanline

import (
	"math"

	"github.com/ango12138/AxialOpt/inp"
	"github.com/cpmech/gosl/io"
)

// Penalty is the finite value returned for the objective and for every
// residual when a trial point cannot be evaluated. It only needs to be
// ordered worse than any feasible value (efficiencies live in (0,1), so the
// objective is in (-1,0) at feasible points).
const Penalty = 10.0

// Evaluator maps design vectors to the scalar objective and the scaled
// constraint residuals consumed by the optimization driver. All methods are
// pure: errors raised inside the pipeline degrade to finite penalties so that
// the driver can probe infeasible points during line searches.
type Evaluator struct {
	Prb     *Problem // the bound problem
	Verbose bool     // print a warning when a trial point degrades to a penalty
}

// NewEvaluator returns a new evaluator
func NewEvaluator(prb *Problem) *Evaluator {
	return &Evaluator{Prb: prb}
}

// Objective returns the negated efficiency (minimization convention) or the
// penalty value for infeasible points
func (o *Evaluator) Objective(x []float64) float64 {
	sol, err := o.Prb.Evaluate(x)
	if err != nil {
		o.warn(err)
		return Penalty
	}
	η := sol.EtaTS
	if o.Prb.Sim.Trb.Objective == "tt" {
		η = sol.EtaTT
	}
	if math.IsNaN(η) || math.IsInf(η, 0) {
		return Penalty
	}
	return -η
}

// Inequalities returns the scaled inequality residuals in canonical order;
// residual ≤ 0 means satisfied. A constraint bound that is absent contributes
// no residual. The vector length is fixed by the configuration alone.
func (o *Evaluator) Inequalities(x []float64) []float64 {
	sol, err := o.Prb.Evaluate(x)
	if err != nil {
		o.warn(err)
		res := make([]float64, o.NumInequalities())
		for i := range res {
			res[i] = Penalty
		}
		return res
	}
	return o.inequalities(sol)
}

// Equalities returns the scaled equality residuals: the loss-correlation
// consistency residual of every cascade followed by the exit pressure match
func (o *Evaluator) Equalities(x []float64) []float64 {
	sol, err := o.Prb.Evaluate(x)
	if err != nil {
		o.warn(err)
		res := make([]float64, o.NumEqualities())
		for i := range res {
			res[i] = Penalty
		}
		return res
	}
	res := make([]float64, 0, o.NumEqualities())
	for _, cs := range sol.Cascades {
		res = append(res, cs.Residual)
	}
	res = append(res, sol.Exit.P/o.Prb.Sim.Bcs.Pout-1.0)
	return res
}

// NumInequalities returns the inequality residual count, computable from the
// configuration alone (needed to emit well-formed penalty vectors)
func (o *Evaluator) NumInequalities() (num int) {
	cs := o.Prb.Sim.Constraints
	for _, name := range constraintOrder(o.Prb) {
		c := cs.Get(name)
		if c == nil {
			continue
		}
		nb := 0
		if c.Min != nil {
			nb++
		}
		if c.Max != nil {
			nb++
		}
		num += nb * o.numValues(name)
	}
	return
}

// NumEqualities returns the equality residual count
func (o *Evaluator) NumEqualities() int {
	return o.Prb.Sim.Ncascades() + 1
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// warn reports a degraded evaluation when verbose mode is on
func (o *Evaluator) warn(err error) {
	if o.Verbose {
		io.Pfred("meanline: trial point degraded to penalty: %v\n", err)
	}
}

// constraintOrder filters the canonical name list for this configuration:
// a pinned RPM is enforced directly in the pipeline and the diffuser Mach
// only exists when a diffuser is present
func constraintOrder(prb *Problem) (names []string) {
	_, pinned := prb.Sim.Constraints.PinnedRPM()
	for _, name := range inp.ConstraintNames {
		if name == "RPM" && pinned {
			continue
		}
		if name == "Ma_diffuser" && prb.Sim.Dif.Model == "no" {
			continue
		}
		names = append(names, name)
	}
	return
}

// numValues returns how many physical values one constraint name yields
func (o *Evaluator) numValues(name string) int {
	n := o.Prb.Sim.Ncascades()
	switch name {
	case "flare_angle", "r_ht", "Ma_rel", "height", "chord":
		return n
	case "reaction":
		return o.Prb.Sim.Trb.Nstages
	case "beta_in_stator", "beta_in_rotor":
		return n / 2
	case "Ma_diffuser", "RPM":
		return 1
	}
	return 0
}

// values extracts the physical values of one constraint name from a solution
func (o *Evaluator) values(name string, sol *Solution) (vals []float64) {
	deg := 180.0 / math.Pi
	for _, cs := range sol.Cascades {
		switch name {
		case "flare_angle":
			vals = append(vals, cs.Flare*deg)
		case "r_ht":
			vals = append(vals, cs.Rht)
		case "Ma_rel":
			vals = append(vals, cs.MaOut)
		case "height":
			vals = append(vals, cs.Height)
		case "chord":
			vals = append(vals, cs.Chord)
		case "beta_in_stator":
			if !cs.Rotor {
				vals = append(vals, cs.AngIn*deg)
			}
		case "beta_in_rotor":
			if cs.Rotor {
				vals = append(vals, cs.AngIn*deg)
			}
		}
	}
	switch name {
	case "reaction":
		vals = sol.Reaction
	case "Ma_diffuser":
		vals = []float64{sol.Diffuser.MaIn}
	case "RPM":
		vals = []float64{sol.RPM}
	}
	return
}

// inequalities assembles the scaled residual vector from a solved design
func (o *Evaluator) inequalities(sol *Solution) []float64 {
	cset := o.Prb.Sim.Constraints
	res := make([]float64, 0, o.NumInequalities())
	for _, name := range constraintOrder(o.Prb) {
		c := cset.Get(name)
		if c == nil {
			continue
		}
		for _, v := range o.values(name, sol) {
			if c.Min != nil {
				res = append(res, (*c.Min-v)/c.Ref)
			}
			if c.Max != nil {
				res = append(res, (v-*c.Max)/c.Ref)
			}
		}
	}
	return res
}
